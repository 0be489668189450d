package shrink

import "github.com/lucaskalb/proptest/internal/stream"

// Int builds the canonical numeric shrink tree for a signed integer
// (spec.md §4.2): the shrinks of n > 0 are 0, n/2, n-n/4, n-n/8, ...
// converging to n-1, each further shrinkable toward the same limit;
// symmetric for n < 0, targeting 0 from below. Zero has empty shrinks.
// Every candidate lies strictly closer to 0 than its parent, so every
// root-to-leaf path is finite (spec.md §8, property 2).
func Int(n int64) Shrinkable[int64] {
	return With(n, func() stream.Stream[Shrinkable[int64]] {
		return intCandidateStream(int64CandidatesTowardZero(n), 0)
	})
}

func int64CandidatesTowardZero(n int64) []int64 {
	if n == 0 {
		return nil
	}
	cands := make([]int64, 0, 8)
	cands = append(cands, 0)
	if n > 0 {
		gap := n
		for gap > 1 {
			gap /= 2
			cands = append(cands, n-gap)
		}
	} else {
		gap := -n
		for gap > 1 {
			gap /= 2
			cands = append(cands, n+gap)
		}
	}
	return cands
}

func intCandidateStream(cands []int64, i int) stream.Stream[Shrinkable[int64]] {
	if i >= len(cands) {
		return stream.Empty[Shrinkable[int64]]()
	}
	return stream.Cons(Int(cands[i]), func() stream.Stream[Shrinkable[int64]] {
		return intCandidateStream(cands, i+1)
	})
}

// Uint builds the canonical numeric shrink tree for an unsigned integer,
// always targeting 0.
func Uint(n uint64) Shrinkable[uint64] {
	return With(n, func() stream.Stream[Shrinkable[uint64]] {
		return uintCandidateStream(uint64CandidatesTowardZero(n), 0)
	})
}

func uint64CandidatesTowardZero(n uint64) []uint64 {
	if n == 0 {
		return nil
	}
	cands := make([]uint64, 0, 8)
	cands = append(cands, 0)
	gap := n
	for gap > 1 {
		gap /= 2
		cands = append(cands, n-gap)
	}
	return cands
}

func uintCandidateStream(cands []uint64, i int) stream.Stream[Shrinkable[uint64]] {
	if i >= len(cands) {
		return stream.Empty[Shrinkable[uint64]]()
	}
	return stream.Cons(Uint(cands[i]), func() stream.Stream[Shrinkable[uint64]] {
		return uintCandidateStream(cands, i+1)
	})
}

// IntRange builds a shrink tree for a value known to lie in [lo, hi]. The
// tree targets 0 if the range contains it, otherwise the bound nearest zero
// (lo for an all-positive range, hi for an all-negative one).
func IntRange(v, lo, hi int64) Shrinkable[int64] {
	target := lo
	if lo <= 0 && 0 <= hi {
		target = 0
	} else if lo > 0 {
		target = lo
	} else {
		target = hi
	}
	return rangeShrink(v, target, lo, hi)
}

func rangeShrink(v, target, lo, hi int64) Shrinkable[int64] {
	return With(v, func() stream.Stream[Shrinkable[int64]] {
		cands := rangeCandidatesToward(v, target)
		filtered := cands[:0:0]
		for _, c := range cands {
			if c >= lo && c <= hi {
				filtered = append(filtered, c)
			}
		}
		return rangeCandidateStream(filtered, target, lo, hi, 0)
	})
}

func rangeCandidatesToward(v, target int64) []int64 {
	if v == target {
		return nil
	}
	cands := make([]int64, 0, 8)
	cands = append(cands, target)
	d := v - target
	if d < 0 {
		d = -d
	}
	gap := d
	for gap > 1 {
		gap /= 2
		if v > target {
			cands = append(cands, v-gap)
		} else {
			cands = append(cands, v+gap)
		}
	}
	return cands
}

func rangeCandidateStream(cands []int64, target, lo, hi int64, i int) stream.Stream[Shrinkable[int64]] {
	if i >= len(cands) {
		return stream.Empty[Shrinkable[int64]]()
	}
	return stream.Cons(rangeShrink(cands[i], target, lo, hi), func() stream.Stream[Shrinkable[int64]] {
		return rangeCandidateStream(cands, target, lo, hi, i+1)
	})
}
