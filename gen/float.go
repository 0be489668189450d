package gen

import (
	"math"

	"github.com/lucaskalb/proptest/internal/random"
	"github.com/lucaskalb/proptest/internal/stream"
	"github.com/lucaskalb/proptest/shrink"
)

// Float64 generates a float64 by reinterpreting random bits (spec.md §3):
// any bit pattern may result, including subnormals and NaN. The shrink
// tree targets 0.
func Float64() Generator[float64] {
	return Func[float64](func(r *random.Random) shrink.Shrinkable[float64] {
		return shrinkFloat64(r.Float64())
	})
}

// Float32 generates a float32 by reinterpreting random bits.
func Float32() Generator[float32] {
	return Func[float32](func(r *random.Random) shrink.Shrinkable[float32] {
		return shrink.Map(shrinkFloat64(float64(r.Float32())), func(v float64) float32 { return float32(v) })
	})
}

func shrinkFloat64(v float64) shrink.Shrinkable[float64] {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return shrink.With(v, func() stream.Stream[shrink.Shrinkable[float64]] {
			return stream.One(shrink.Of(0.0))
		})
	}
	return shrink.With(v, func() stream.Stream[shrink.Shrinkable[float64]] {
		return floatCandidateStream(floatCandidatesTowardZero(v), 0)
	})
}

// floatCandidatesTowardZero produces a finite sequence converging to 0: 0
// itself, the truncated integer part (if different from v and from 0),
// then successive halvings, stopping once the magnitude collapses to 0,
// drops below 1e-9, or a fixed iteration cap is hit, guaranteeing
// termination of every root-to-leaf path.
func floatCandidatesTowardZero(v float64) []float64 {
	if v == 0 {
		return nil
	}
	cands := make([]float64, 0, 16)
	cands = append(cands, 0)
	if t := math.Trunc(v); t != v && t != 0 {
		cands = append(cands, t)
	}
	half := v
	for i := 0; i < 64; i++ {
		half /= 2
		if half == 0 {
			break
		}
		cands = append(cands, half)
		if math.Abs(half) < 1e-9 {
			break
		}
	}
	return cands
}

func floatCandidateStream(cands []float64, i int) stream.Stream[shrink.Shrinkable[float64]] {
	if i >= len(cands) {
		return stream.Empty[shrink.Shrinkable[float64]]()
	}
	return stream.Cons(shrinkFloat64(cands[i]), func() stream.Stream[shrink.Shrinkable[float64]] {
		return floatCandidateStream(cands, i+1)
	})
}
