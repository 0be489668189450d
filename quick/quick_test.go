package quick

import (
	"testing"

	"github.com/lucaskalb/proptest/gen"
	"github.com/lucaskalb/proptest/internal/random"
)

func TestEqualPassesOnEqualValues(t *testing.T) {
	Equal(t, []int{1, 2, 3}, []int{1, 2, 3})
}

func TestEqualOnGeneratedSlices(t *testing.T) {
	g := gen.SliceOf(gen.Just(7), gen.Size{Min: 3, Max: 3})
	r := random.New(5)
	got := g.Generate(r).Value()
	Equal(t, got, []int{7, 7, 7})
}

func TestEqualSlicesOnGeneratedValues(t *testing.T) {
	g := gen.SliceOf(gen.Just(3), gen.Size{Min: 2, Max: 2})
	r := random.New(9)
	got := g.Generate(r).Value()
	EqualSlices(t, got, []int{3, 3})
}
