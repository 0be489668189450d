package shrink

import (
	"testing"

	"github.com/lucaskalb/proptest/quick"
)

func TestIntShrinksTowardZero(t *testing.T) {
	s := Int(8)
	got := collectValues(s.Shrinks())
	quick.EqualSlices(t, got, []int64{0, 4, 6, 7})
}

func TestIntZeroHasNoShrinks(t *testing.T) {
	if !Int(0).Shrinks().IsEmpty() {
		t.Fatal("Int(0) should have no shrinks")
	}
}

func TestIntNegativeShrinksTowardZero(t *testing.T) {
	s := Int(-8)
	got := collectValues(s.Shrinks())
	quick.EqualSlices(t, got, []int64{0, -4, -6, -7})
}

func TestIntRangeStaysInBounds(t *testing.T) {
	s := IntRange(8, 0, 10)
	seen := map[int64]bool{}
	var walk func(Shrinkable[int64])
	walk = func(sh Shrinkable[int64]) {
		v := sh.Value()
		if v < 0 || v > 10 {
			t.Fatalf("shrink candidate %d out of range [0,10]", v)
		}
		if seen[v] {
			return
		}
		seen[v] = true
		it := sh.Shrinks().Iterator()
		for it.HasNext() {
			walk(it.Next())
		}
	}
	walk(s)
}

func TestIntRangeTargetsNearestZero(t *testing.T) {
	// range entirely positive: target is the lower bound.
	s := IntRange(20, 10, 30)
	got := collectValues(s.Shrinks())
	if len(got) == 0 {
		t.Fatal("expected at least one shrink")
	}
	if got[0] != 10 {
		t.Fatalf("first shrink = %d, want target 10 (nearest bound to zero)", got[0])
	}
}

func TestUintShrinksTowardZero(t *testing.T) {
	s := Uint(8)
	got := collectValues(s.Shrinks())
	quick.EqualSlices(t, got, []uint64{0, 4, 6, 7})
}
