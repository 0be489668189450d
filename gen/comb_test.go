package gen

import (
	"testing"

	"github.com/lucaskalb/proptest/internal/random"
)

func TestMapTransformsValueAndShrinks(t *testing.T) {
	g := Map(IntRange(0, 10), func(v int) string { return "n" })
	r := random.New(60)
	s := g.Generate(r)
	v := s.Value()
	if v != "n" {
		t.Fatalf("got %q, want %q", v, "n")
	}
	it := s.Shrinks().Iterator()
	for it.HasNext() {
		if c := it.Next().Value(); c != "n" {
			t.Fatalf("shrink got %q, want %q", c, "n")
		}
	}
}

func TestFilterOnlyProducesMatching(t *testing.T) {
	g := Filter(IntRange(0, 100), func(v int) bool { return v%2 == 0 }, 0)
	r := random.New(61)
	for i := 0; i < 100; i++ {
		v := g.Generate(r).Value()
		if v%2 != 0 {
			t.Fatalf("Filter produced odd value %d", v)
		}
	}
}

func TestFilterPanicsWhenUnsatisfiable(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic when predicate can never be satisfied")
		}
		if _, ok := r.(*ErrExhausted); !ok {
			t.Fatalf("expected *ErrExhausted, got %T", r)
		}
	}()
	g := Filter(IntRange(0, 10), func(v int) bool { return false }, 5)
	r := random.New(62)
	g.Generate(r)
}

func TestOneOfPicksFromAllAlternatives(t *testing.T) {
	g := OneOf(Just(1), Just(2), Just(3))
	r := random.New(63)
	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		seen[g.Generate(r).Value()] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected to see all 3 alternatives, saw %v", seen)
	}
}

func TestDeriveBuildsDependentGenerator(t *testing.T) {
	// Derive a slice of exactly n zeros, where n itself is generated.
	g := Derive(IntRange(1, 5), func(n int) Generator[[]int] {
		return SliceOf(Just(0), Size{Min: n, Max: n})
	})
	r := random.New(64)
	for i := 0; i < 50; i++ {
		xs := g.Generate(r).Value()
		if len(xs) < 1 || len(xs) > 5 {
			t.Fatalf("derived slice length %d out of [1,5]", len(xs))
		}
		for _, v := range xs {
			if v != 0 {
				t.Fatalf("derived slice element %d != 0", v)
			}
		}
	}
}
