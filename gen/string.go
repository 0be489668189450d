package gen

import (
	"github.com/lucaskalb/proptest/internal/random"
	"github.com/lucaskalb/proptest/internal/stream"
	"github.com/lucaskalb/proptest/shrink"
)

// Named ASCII alphabets for String and its variants. The default alphabet,
// used when none is given, is the full [0x01, 0x7F] codepoint range of
// spec.md §4.3, built by defaultASCIIAlphabet.
const (
	AlphabetLower    = "abcdefghijklmnopqrstuvwxyz"
	AlphabetUpper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	AlphabetAlpha    = AlphabetLower + AlphabetUpper
	AlphabetDigits   = "0123456789"
	AlphabetAlphaNum = AlphabetAlpha + AlphabetDigits
)

func defaultASCIIAlphabet() []rune {
	rs := make([]rune, 0, 0x7F)
	for c := rune(0x01); c <= 0x7F; c++ {
		rs = append(rs, c)
	}
	return rs
}

// String generates strings whose codepoints are drawn from alphabet (the
// default ASCII range [0x01, 0x7F] if alphabet is empty), with length in
// [size.Min, size.Max]. Shrinking truncates from the tail (length
// size-shrink, reusing the same strategy as SliceOf), then, once that
// stabilizes, from the head.
func String(alphabet []rune, size Size) Generator[string] {
	if len(alphabet) == 0 {
		alphabet = defaultASCIIAlphabet()
	}
	lo, hi := size.Min, size.Max
	if hi < lo {
		hi = lo
	}
	return Func[string](func(r *random.Random) shrink.Shrinkable[string] {
		n := lo
		if hi > lo {
			n = r.Size(lo, hi+1)
		}
		rs := make([]rune, n)
		for i := range rs {
			rs[i] = alphabet[r.Size(0, len(alphabet))]
		}

		tailShrunk := shrink.Map(shrink.IntRange(int64(n-lo), 0, int64(n-lo)), func(d int64) string {
			newLen := lo + int(d)
			if newLen <= 0 {
				return ""
			}
			return string(rs[:newLen])
		})

		withHeadTrunc := shrink.AndThen(tailShrunk, func(leaf shrink.Shrinkable[string]) stream.Stream[shrink.Shrinkable[string]] {
			return headTruncations([]rune(leaf.Value()))
		})

		return withHeadTrunc
	})
}

// headTruncations yields, for a rune slice of length L, the strings
// obtained by dropping the first 1, 2, ..., L runes, longest suffix first.
func headTruncations(rs []rune) stream.Stream[shrink.Shrinkable[string]] {
	return headTruncAt(rs, 1)
}

func headTruncAt(rs []rune, drop int) stream.Stream[shrink.Shrinkable[string]] {
	if drop > len(rs) {
		return stream.Empty[shrink.Shrinkable[string]]()
	}
	return stream.Cons(shrink.Of(string(rs[drop:])), func() stream.Stream[shrink.Shrinkable[string]] {
		return headTruncAt(rs, drop+1)
	})
}

// StringAlpha generates strings over the ASCII alphabetic alphabet.
func StringAlpha(size Size) Generator[string] { return String([]rune(AlphabetAlpha), size) }

// StringAlphaNum generates strings over the ASCII alphanumeric alphabet.
func StringAlphaNum(size Size) Generator[string] { return String([]rune(AlphabetAlphaNum), size) }

// StringDigits generates strings of ASCII digits.
func StringDigits(size Size) Generator[string] { return String([]rune(AlphabetDigits), size) }
