package gen

import (
	"math"

	"github.com/lucaskalb/proptest/internal/random"
	"github.com/lucaskalb/proptest/internal/stream"
	"github.com/lucaskalb/proptest/shrink"
)

// boundarySetInt64 returns the default integer boundary set (spec.md §6)
// clamped to [lo, hi]: 0, +-1, min, max, min+1, max-1, and the midpoint of
// [lo, hi] and its +-1. The bounds of the next narrower integer type (e.g.
// the int16 bounds for an int32 range) are not included.
func boundarySetInt64(lo, hi int64) []int64 {
	half := lo + int64(uint64(hi-lo)/2)
	raw := []int64{0, 1, -1, lo, hi, lo + 1, hi - 1, half, half + 1, half - 1}
	out := make([]int64, 0, len(raw))
	seen := make(map[int64]struct{}, len(raw))
	for _, v := range raw {
		if v < lo || v > hi {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Int64Range generates int64 values uniformly in [lo, hi], occasionally
// favoring a boundary value, shrinking toward 0 when it lies in [lo, hi]
// and otherwise toward the endpoint nearest zero.
func Int64Range(lo, hi int64) Generator[int64] {
	if hi < lo {
		lo, hi = hi, lo
	}
	boundaries := boundarySetInt64(lo, hi)
	return Func[int64](func(r *random.Random) shrink.Shrinkable[int64] {
		var v int64
		if len(boundaries) > 0 && r.Bool(0.1) {
			v = boundaries[r.Size(0, len(boundaries))]
		} else {
			v = r.Int63Range(lo, hi)
		}
		return shrink.IntRange(v, lo, hi)
	})
}

// Int64 generates arbitrary int64 values across the full range.
func Int64() Generator[int64] {
	return Func[int64](func(r *random.Random) shrink.Shrinkable[int64] {
		boundaries := boundarySetInt64(math.MinInt64, math.MaxInt64)
		var v int64
		if r.Bool(0.1) {
			v = boundaries[r.Size(0, len(boundaries))]
		} else {
			v = r.Int64()
		}
		return shrink.Int(v)
	})
}

// Int32Range generates int32 values uniformly in [lo, hi].
func Int32Range(lo, hi int32) Generator[int32] {
	return mapInt64Gen(Int64Range(int64(lo), int64(hi)), func(v int64) int32 { return int32(v) })
}

// Int32 generates arbitrary int32 values.
func Int32() Generator[int32] { return Int32Range(math.MinInt32, math.MaxInt32) }

// Int16Range generates int16 values uniformly in [lo, hi].
func Int16Range(lo, hi int16) Generator[int16] {
	return mapInt64Gen(Int64Range(int64(lo), int64(hi)), func(v int64) int16 { return int16(v) })
}

// Int16 generates arbitrary int16 values.
func Int16() Generator[int16] { return Int16Range(math.MinInt16, math.MaxInt16) }

// Int8Range generates int8 values uniformly in [lo, hi].
func Int8Range(lo, hi int8) Generator[int8] {
	return mapInt64Gen(Int64Range(int64(lo), int64(hi)), func(v int64) int8 { return int8(v) })
}

// Int8 generates arbitrary int8 values.
func Int8() Generator[int8] { return Int8Range(math.MinInt8, math.MaxInt8) }

// IntRange generates platform int values uniformly in [lo, hi].
func IntRange(lo, hi int) Generator[int] {
	return mapInt64Gen(Int64Range(int64(lo), int64(hi)), func(v int64) int { return int(v) })
}

// Int generates arbitrary int values, using Size if non-zero to bound the
// magnitude (max(|Min|, |Max|)), otherwise defaulting to [-100, 100] as the
// teacher's generator did.
func Int(size Size) Generator[int] {
	m := size.Max
	if size.Min < 0 && -size.Min > m {
		m = -size.Min
	}
	if m <= 0 {
		m = 100
	}
	return IntRange(-m, m)
}

func mapInt64Gen[T any](g Generator[int64], f func(int64) T) Generator[T] {
	return Func[T](func(r *random.Random) shrink.Shrinkable[T] {
		return shrink.Map(g.Generate(r), f)
	})
}

// UintRange generates uint64 values uniformly in [lo, hi].
func UintRange(lo, hi uint64) Generator[uint64] {
	if hi < lo {
		lo, hi = hi, lo
	}
	return Func[uint64](func(r *random.Random) shrink.Shrinkable[uint64] {
		v := r.Uint64Range(lo, hi)
		return shrink.Map(shrink.Uint(v-lo), func(d uint64) uint64 { return d + lo })
	})
}

// Uint64 generates arbitrary uint64 values.
func Uint64() Generator[uint64] { return UintRange(0, math.MaxUint64) }

// Uint32 generates arbitrary uint32 values.
func Uint32() Generator[uint32] {
	return mapUintGen(UintRange(0, math.MaxUint32), func(v uint64) uint32 { return uint32(v) })
}

// Uint16 generates arbitrary uint16 values.
func Uint16() Generator[uint16] {
	return mapUintGen(UintRange(0, math.MaxUint16), func(v uint64) uint16 { return uint16(v) })
}

// Uint8 generates arbitrary uint8 values.
func Uint8() Generator[uint8] {
	return mapUintGen(UintRange(0, math.MaxUint8), func(v uint64) uint8 { return uint8(v) })
}

func mapUintGen[T any](g Generator[uint64], f func(uint64) T) Generator[T] {
	return Func[T](func(r *random.Random) shrink.Shrinkable[T] {
		return shrink.Map(g.Generate(r), f)
	})
}

// Bool generates boolean values uniformly, shrinking to false.
func Bool() Generator[bool] {
	return Func[bool](func(r *random.Random) shrink.Shrinkable[bool] {
		v := r.Bool(0.5)
		return boolShrinkable(v)
	})
}

func boolShrinkable(v bool) shrink.Shrinkable[bool] {
	if !v {
		return shrink.Of(false)
	}
	return shrink.With(true, func() stream.Stream[shrink.Shrinkable[bool]] {
		return stream.One(shrink.Of(false))
	})
}
