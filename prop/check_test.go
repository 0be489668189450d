package prop

import (
	"errors"
	"testing"

	"github.com/lucaskalb/proptest/gen"
	"github.com/lucaskalb/proptest/prop/assert"
)

func TestCheckPassesForATrueProperty(t *testing.T) {
	rep := Check("add-identity", Config{Seed: 1, Examples: 50}, gen.Int(gen.Size{}), func(x int) error {
		if x+0 != x {
			return errors.New("identity broken")
		}
		return nil
	})
	if rep.Failed {
		t.Fatalf("expected property to pass, got failure: %s", rep.Message)
	}
	if rep.Passed != 50 {
		t.Fatalf("expected 50 passed examples, got %d", rep.Passed)
	}
}

func TestCheckShrinksToMinimalCounterexample(t *testing.T) {
	// A property false for any v > 3 shrinks toward the boundary 4.
	rep := Check("too-big", Config{Seed: 2, Examples: 30, MaxShrink: 200}, gen.IntRange(0, 1000), func(v int) error {
		if v > 3 {
			return errors.New("v too big")
		}
		return nil
	})
	if !rep.Failed {
		t.Fatal("expected property to be falsifiable")
	}
	if rep.Counterexample != "4" {
		t.Fatalf("expected shrunk counterexample 4, got %s", rep.Counterexample)
	}
}

func TestCheckHonorsDiscard(t *testing.T) {
	rep := Check("discard-odds", Config{Seed: 3, Examples: 20, MaxDiscardRatio: 50}, gen.IntRange(0, 100), func(v int) error {
		assert.DiscardIf(v%2 != 0, "odd")
		if v < 0 {
			return errors.New("unreachable")
		}
		return nil
	})
	if rep.Failed {
		t.Fatalf("expected property to pass, got: %s", rep.Message)
	}
}

func TestForAllPassesForATrueProperty(t *testing.T) {
	ForAll(t, Config{Seed: 4, Examples: 20}, gen.IntRange(-10, 10), func(st *testing.T, v int) {
		if v < -10 || v > 10 {
			st.Fatalf("out of range: %d", v)
		}
	})
}

func TestForAll2ChecksBothArguments(t *testing.T) {
	ForAll2(t, Config{Seed: 5, Examples: 20}, gen.IntRange(0, 10), gen.IntRange(0, 10), func(st *testing.T, a, b int) {
		if a+b < 0 {
			st.Fatalf("sum went negative: %d + %d", a, b)
		}
	})
}
