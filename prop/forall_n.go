package prop

import (
	"testing"

	"github.com/lucaskalb/proptest/gen"
)

// ForAll2 checks a two-argument property. Shrinking is coordinate-wise: the
// first argument is shrunk to a local minimum before the second argument is
// ever touched, per gen.Tuple2Of's shrink tree (spec.md §4.5).
func ForAll2[A, B any](t *testing.T, cfg Config, ga gen.Generator[A], gb gen.Generator[B], body func(*testing.T, A, B)) {
	t.Helper()
	ForAll(t, cfg, gen.Tuple2Of(ga, gb), func(st *testing.T, p gen.Tuple2[A, B]) {
		body(st, p.First, p.Second)
	})
}

// ForAll3 checks a three-argument property, shrinking left to right.
func ForAll3[A, B, C any](t *testing.T, cfg Config, ga gen.Generator[A], gb gen.Generator[B], gc gen.Generator[C], body func(*testing.T, A, B, C)) {
	t.Helper()
	ForAll(t, cfg, gen.Tuple3Of(ga, gb, gc), func(st *testing.T, p gen.Tuple3[A, B, C]) {
		body(st, p.First, p.Second, p.Third)
	})
}

// ForAll4 checks a four-argument property, shrinking left to right.
func ForAll4[A, B, C, D any](t *testing.T, cfg Config, ga gen.Generator[A], gb gen.Generator[B], gc gen.Generator[C], gd gen.Generator[D], body func(*testing.T, A, B, C, D)) {
	t.Helper()
	ForAll(t, cfg, gen.Tuple4Of(ga, gb, gc, gd), func(st *testing.T, p gen.Tuple4[A, B, C, D]) {
		body(st, p.First, p.Second, p.Third, p.Fourth)
	})
}
