package gen

import (
	"github.com/lucaskalb/proptest/internal/random"
	"github.com/lucaskalb/proptest/shrink"
)

// SetOf generates a []T of distinct elements (by Go equality) with length in
// [size.Min, size.Max], drawing from elem and rejecting duplicates until the
// target size is met or a retry budget is exhausted (in which case the
// shorter set is kept; this is a deliberate relaxation of size.Max in
// exchange for termination).
//
// Shrinking only ever truncates a prefix of the insertion order (binary
// search toward size.Min), unlike the bulk element shrink SliceOf performs.
// The original C++ implementation this is grounded on (generator/set.hpp)
// backs its set by a value-ordered std::set, so shrinking a std::set
// produces its lexicographically smallest subsets; preserving Go's
// insertion order here (deliberately diverging from that value order) keeps
// the reported counterexample in the order the elements were actually
// generated, which is the easier one for a caller to read.
func SetOf[T comparable](elem Generator[T], size Size) Generator[[]T] {
	lo, hi := size.Min, size.Max
	if hi < lo {
		hi = lo
	}
	const maxAttemptsPerElement = 50
	return Func[[]T](func(r *random.Random) shrink.Shrinkable[[]T] {
		target := lo
		if hi > lo {
			target = r.Size(lo, hi+1)
		}
		seen := make(map[T]struct{}, target)
		elems := make([]T, 0, target)
		for len(elems) < target {
			progressed := false
			for attempt := 0; attempt < maxAttemptsPerElement; attempt++ {
				v := elem.Generate(r).Value()
				if _, dup := seen[v]; dup {
					continue
				}
				seen[v] = struct{}{}
				elems = append(elems, v)
				progressed = true
				break
			}
			if !progressed {
				break
			}
		}
		n := len(elems)
		effLo := lo
		if effLo > n {
			effLo = n
		}
		return shrink.Map(shrink.IntRange(int64(n-effLo), 0, int64(n-effLo)), func(d int64) []T {
			newLen := effLo + int(d)
			if newLen <= 0 {
				return []T{}
			}
			out := make([]T, newLen)
			copy(out, elems[:newLen])
			return out
		})
	})
}
