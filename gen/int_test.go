package gen

import (
	"testing"

	"github.com/lucaskalb/proptest/internal/random"
)

func TestIntRangeWithinBounds(t *testing.T) {
	g := IntRange(-10, 10)
	r := random.New(1)
	for i := 0; i < 200; i++ {
		v := g.Generate(r).Value()
		if v < -10 || v > 10 {
			t.Fatalf("IntRange(-10,10) produced %d, out of bounds", v)
		}
	}
}

func TestIntRangeShrinksStayInBounds(t *testing.T) {
	g := IntRange(0, 100)
	r := random.New(2)
	for i := 0; i < 50; i++ {
		s := g.Generate(r)
		it := s.Shrinks().Iterator()
		for it.HasNext() {
			v := it.Next().Value()
			if v < 0 || v > 100 {
				t.Fatalf("shrink produced %d, out of [0,100]", v)
			}
		}
	}
}

func TestBoolShrinksTrueToFalse(t *testing.T) {
	trueShrinkable := boolShrinkable(true)
	children := trueShrinkable.Shrinks()
	if children.IsEmpty() {
		t.Fatal("true should shrink to false")
	}
	if children.Head().Value() != false {
		t.Fatalf("true shrunk to %v, want false", children.Head().Value())
	}
	if !boolShrinkable(false).Shrinks().IsEmpty() {
		t.Fatal("false should have no shrinks")
	}
}

func TestUintRangeWithinBounds(t *testing.T) {
	g := UintRange(5, 50)
	r := random.New(3)
	for i := 0; i < 200; i++ {
		v := g.Generate(r).Value()
		if v < 5 || v > 50 {
			t.Fatalf("UintRange(5,50) produced %d, out of bounds", v)
		}
	}
}
