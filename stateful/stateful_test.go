package stateful

import (
	"testing"

	"github.com/lucaskalb/proptest/gen"
	"github.com/lucaskalb/proptest/internal/random"
	"github.com/lucaskalb/proptest/prop"
)

// counter is a trivial system under test: an int that Inc/Dec actions
// mutate, checked against a model that tracks the same value independently.
type incAction struct{}

func (incAction) Precondition(system int, model int) bool { return true }
func (incAction) Run(system *int, model *int) bool {
	*system++
	*model++
	return *system == *model
}

type decAction struct{}

func (decAction) Precondition(system int, model int) bool { return system > 0 }
func (decAction) Run(system *int, model *int) bool {
	*system--
	*model--
	return *system == *model
}

func TestActionsOfRespectsLengthBounds(t *testing.T) {
	g := ActionsOf[int, int](gen.Size{Min: 1, Max: 10},
		gen.Just[Action[int, int]](incAction{}),
		gen.Just[Action[int, int]](decAction{}),
	)
	r := random.New(1)
	for i := 0; i < 50; i++ {
		actions := g.Generate(r).Value()
		if len(actions) < 1 || len(actions) > 10 {
			t.Fatalf("action sequence length %d out of [1,10]", len(actions))
		}
	}
}

func TestRunCounterModelStaysInSync(t *testing.T) {
	actions := ActionsOf[int, int](gen.Size{Min: 0, Max: 20},
		gen.Just[Action[int, int]](incAction{}),
		gen.Just[Action[int, int]](decAction{}),
	)
	Run(t, prop.Config{Seed: 1, Examples: 30}, gen.Just(0), func(s int) int { return s }, actions)
}
