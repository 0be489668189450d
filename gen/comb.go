package gen

import (
	"fmt"

	"github.com/lucaskalb/proptest/internal/random"
	"github.com/lucaskalb/proptest/internal/stream"
	"github.com/lucaskalb/proptest/shrink"
)

// Map transforms every generated value (and its shrink tree) through f.
func Map[T, U any](g Generator[T], f func(T) U) Generator[U] {
	return Func[U](func(r *random.Random) shrink.Shrinkable[U] {
		return shrink.Map(g.Generate(r), f)
	})
}

// ErrExhausted is returned by Filter's generator when retrying repeatedly
// fails to satisfy the predicate.
type ErrExhausted struct {
	Attempts int
}

func (e *ErrExhausted) Error() string {
	return fmt.Sprintf("gen: filter exhausted after %d attempts", e.Attempts)
}

// DefaultFilterTolerance bounds both the initial retry budget in Filter and
// the consecutive-rejection tolerance passed down into the shrink tree,
// matching the original combinator's default.
const DefaultFilterTolerance = 5

// Filter restricts g to values satisfying pred, retrying up to
// maxAttempts (DefaultFilterTolerance*20 if 0) times before panicking with
// *ErrExhausted; the property runner recovers that panic as a discard
// (spec.md §4.4, §7).
func Filter[T any](g Generator[T], pred func(T) bool, maxAttempts int) Generator[T] {
	if maxAttempts <= 0 {
		maxAttempts = DefaultFilterTolerance * 20
	}
	return Func[T](func(r *random.Random) shrink.Shrinkable[T] {
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			cand := g.Generate(r)
			if pred(cand.Value()) {
				return shrink.Filter(cand, pred, DefaultFilterTolerance)
			}
		}
		panic(&ErrExhausted{Attempts: maxAttempts})
	})
}

// Weighted pairs a generator with its relative selection weight for
// WeightedOneOf.
type Weighted[T any] struct {
	Weight float64
	Gen    Generator[T]
}

// OneOf picks uniformly among gens each run. The resulting shrink tree
// migrates toward earlier-listed generators first: once the chosen
// generator's own shrinks are exhausted, remaining candidates re-generate
// fresh values from gens[0], gens[1], ... in order (spec.md §9), so a
// property failing on a later alternative tends to shrink toward a
// counterexample expressed with the simplest alternative.
func OneOf[T any](gens ...Generator[T]) Generator[T] {
	ws := make([]Weighted[T], len(gens))
	for i, g := range gens {
		ws[i] = Weighted[T]{Weight: 1, Gen: g}
	}
	return WeightedOneOf(ws...)
}

// WeightedOneOf is OneOf with explicit, possibly non-uniform weights.
func WeightedOneOf[T any](ws ...Weighted[T]) Generator[T] {
	if len(ws) == 0 {
		panic("gen: WeightedOneOf requires at least one alternative")
	}
	total := 0.0
	for _, w := range ws {
		total += w.Weight
	}
	return Func[T](func(r *random.Random) shrink.Shrinkable[T] {
		pick := pickWeighted(r, ws, total)
		chosen := ws[pick].Gen.Generate(r)
		return withAlternatives(r, ws, chosen)
	})
}

func pickWeighted[T any](r *random.Random, ws []Weighted[T], total float64) int {
	if total <= 0 {
		return r.Size(0, len(ws))
	}
	// r.Float64 reinterprets raw bits, so draw a uniform [0, 1) fraction here.
	roll := float64(r.Uint64()>>11) / float64(uint64(1)<<53) * total
	acc := 0.0
	for i, w := range ws {
		acc += w.Weight
		if roll < acc {
			return i
		}
	}
	return len(ws) - 1
}

// withAlternatives layers, after chosen's own shrink tree is exhausted at a
// leaf, one fresh draw from each generator in ws (in order), each fully
// shrinkable in turn. The draws replay from a saved sub-seed, so every call
// of a leaf's Shrinks yields the same alternatives.
func withAlternatives[T any](r *random.Random, ws []Weighted[T], chosen shrink.Shrinkable[T]) shrink.Shrinkable[T] {
	saved := random.New(r.Uint64())
	return shrink.AndThen(chosen, func(leaf shrink.Shrinkable[T]) stream.Stream[shrink.Shrinkable[T]] {
		return alternativesStream(saved.Copy(), ws, 0)
	})
}

func alternativesStream[T any](r *random.Random, ws []Weighted[T], idx int) stream.Stream[shrink.Shrinkable[T]] {
	if idx >= len(ws) {
		return stream.Empty[shrink.Shrinkable[T]]()
	}
	alt := ws[idx].Gen.Generate(r)
	return stream.Cons(alt, func() stream.Stream[shrink.Shrinkable[T]] {
		return alternativesStream[T](r, ws, idx+1)
	})
}

// Derive builds a U from a T drawn from g and a continuation f, layering two
// shrink strategies: first T's own shrinks (each re-run through f to
// produce a fresh U), then, once those are exhausted, the U leaf's own
// shrink tree (grounded on original_source/combinator/derive.hpp). This is
// the flatMap/bind combinator of spec.md §4.4; the order is deliberate and
// differs from an implementation that shrinks the inner U value first.
// Every U is drawn from a copy of the same saved sub-seed, so re-deriving
// for a given T is deterministic.
func Derive[T, U any](g Generator[T], f func(T) Generator[U]) Generator[U] {
	return Func[U](func(r *random.Random) shrink.Shrinkable[U] {
		t := g.Generate(r)
		saved := random.New(r.Uint64())
		return shrink.FlatMap(t, func(tv T) shrink.Shrinkable[U] {
			return f(tv).Generate(saved.Copy())
		})
	})
}

// Bind is an alias for Derive, matching the naming used by monadic-style
// generator composition elsewhere in the ecosystem.
func Bind[T, U any](g Generator[T], f func(T) Generator[U]) Generator[U] {
	return Derive(g, f)
}
