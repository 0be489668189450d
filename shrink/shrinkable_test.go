package shrink

import (
	"testing"

	"github.com/lucaskalb/proptest/internal/stream"
)

func TestOfHasNoShrinks(t *testing.T) {
	s := Of(5)
	if !s.Shrinks().IsEmpty() {
		t.Fatal("Of(v) should have an empty shrink stream")
	}
}

func TestMapPreservesTreeShape(t *testing.T) {
	s := Int(8)
	doubled := Map(s, func(v int64) int64 { return v * 2 })
	if doubled.Value() != 16 {
		t.Fatalf("doubled value = %d, want 16", doubled.Value())
	}
	origChildren := collectValues(s.Shrinks())
	doubledChildren := collectValues(doubled.Shrinks())
	if len(origChildren) != len(doubledChildren) {
		t.Fatalf("shrink tree width changed: %d vs %d", len(origChildren), len(doubledChildren))
	}
	for i := range origChildren {
		if doubledChildren[i] != origChildren[i]*2 {
			t.Fatalf("child %d not doubled: %d vs %d*2", i, doubledChildren[i], origChildren[i])
		}
	}
}

func collectValues[T any](s stream.Stream[Shrinkable[T]]) []T {
	var out []T
	it := s.Iterator()
	for it.HasNext() {
		out = append(out, it.Next().Value())
	}
	return out
}

func TestAndThenAttachesAtLeaves(t *testing.T) {
	leaf := Of(1)
	extended := AndThen(leaf, func(l Shrinkable[int]) stream.Stream[Shrinkable[int]] {
		return stream.One(Of(0))
	})
	children := collectValues(extended.Shrinks())
	if len(children) != 1 || children[0] != 0 {
		t.Fatalf("got %v, want [0]", children)
	}
}

func TestFlatMapOrdersTShrinksBeforeU(t *testing.T) {
	// T shrinks 8 -> [0,4,6,7]; f always derives a value with its own
	// (different) shrink tree. The first-level children of the FlatMap
	// result must come from re-deriving with each of T's shrinks, not from
	// U's own shrink tree.
	s := Int(8)
	derived := FlatMap(s, func(tv int64) Shrinkable[string] {
		return Of(tagOf(tv))
	})
	children := collectValues(derived.Shrinks())
	want := []string{tagOf(0), tagOf(4), tagOf(6), tagOf(7)}
	if len(children) != len(want) {
		t.Fatalf("got %v, want %v", children, want)
	}
	for i := range want {
		if children[i] != want[i] {
			t.Fatalf("got %v, want %v", children, want)
		}
	}
}

func tagOf(v int64) string {
	switch v {
	case 0:
		return "zero"
	case 4:
		return "four"
	case 6:
		return "six"
	case 7:
		return "seven"
	case 8:
		return "eight"
	default:
		return "other"
	}
}

func TestFilterCutsAfterTolerance(t *testing.T) {
	// A tree offering only odd candidates under an even-predicate must be
	// pruned to empty once tolerance consecutive rejections occur.
	odds := With(10, func() stream.Stream[Shrinkable[int]] {
		return stream.FromSlice([]int{1, 3, 5, 7, 9}, Of[int])
	})
	filtered := Filter(odds, func(v int) bool { return v%2 == 0 }, 3)
	if !filtered.Shrinks().IsEmpty() {
		t.Fatal("expected all-odd shrink stream to be pruned to empty")
	}
}

func TestFilterKeepsMatching(t *testing.T) {
	mixed := With(10, func() stream.Stream[Shrinkable[int]] {
		return stream.FromSlice([]int{1, 2, 3, 4}, Of[int])
	})
	filtered := Filter(mixed, func(v int) bool { return v%2 == 0 }, 5)
	got := collectValues(filtered.Shrinks())
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Fatalf("got %v, want [2 4]", got)
	}
}
