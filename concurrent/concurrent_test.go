package concurrent

import (
	"sync/atomic"
	"testing"

	"github.com/lucaskalb/proptest/gen"
	"github.com/lucaskalb/proptest/prop"
	"github.com/lucaskalb/proptest/stateful"
)

// counterState is a system whose only invariant the postCheck verifies: the
// total number of increments actually applied, regardless of how the two
// rear sequences interleaved.
type counterState struct {
	n int64
}

type incAction struct{}

func (incAction) Precondition(system counterState, model int) bool { return true }
func (incAction) Run(system *counterState, model *int) bool {
	atomic.AddInt64(&system.n, 1)
	*model++
	return true
}

func TestRunRearSequencesBothExecute(t *testing.T) {
	actions := stateful.ActionsOf[counterState, int](gen.Size{Min: 3, Max: 3},
		gen.Just[stateful.Action[counterState, int]](incAction{}),
	)
	front := stateful.ActionsOf[counterState, int](gen.Size{Min: 0, Max: 0},
		gen.Just[stateful.Action[counterState, int]](incAction{}),
	)

	var totalLogged int
	Run(t, prop.Config{Seed: 1, Examples: 10},
		gen.Just(counterState{}),
		func(s counterState) int { return 0 },
		front, actions, actions,
		func(system counterState, model int, log Log) {
			totalLogged = len(log)
			if totalLogged != 6 {
				t.Fatalf("expected 6 logged steps (3+3), got %d", totalLogged)
			}
		},
	)
}
