// Package stateful runs a generated sequence of actions against a system
// under test and, optionally, a parallel model, failing as soon as a
// precondition-satisfying action's Run reports false (spec.md §4.6),
// grounded on original_source/combinator/stateful_class.hpp.
package stateful

import (
	"testing"

	"github.com/lucaskalb/proptest/gen"
	"github.com/lucaskalb/proptest/prop"
	"github.com/lucaskalb/proptest/prop/assert"
)

// EmptyModel is used when a property has no separate model to track,
// matching the original's EmptyModel sentinel.
type EmptyModel struct{}

// Action is one step of a stateful sequence: Precondition gates whether it
// may run against the current system/model state, and Run performs it,
// reporting whether the system's invariant still held afterward.
type Action[S any, M any] interface {
	Precondition(system S, model M) bool
	Run(system *S, model *M) bool
}

// ActionsOf builds a generator of action sequences by picking uniformly
// among gens for each slot, with length in size (spec.md §6's default
// container size if size is the zero Size). The resulting []Action[S,M]
// shrinks by truncating and bulk-shrinking the sequence the same way
// gen.SliceOf does for any other element type, which is exactly how this
// package gets "drop irrelevant trailing/interior actions" shrinking for
// free.
func ActionsOf[S any, M any](size gen.Size, gens ...gen.Generator[Action[S, M]]) gen.Generator[[]Action[S, M]] {
	if size.Max == 0 && size.Min == 0 {
		size = gen.DefaultContainerSize
	}
	return gen.SliceOf(gen.OneOf(gens...), size)
}

// Run checks that, starting from an initial system and model built by
// newModel, every generated action sequence leaves Run reporting true at
// each precondition-satisfying step. A violation is reported the same way
// any other property failure is (spec.md §4.5): shrunk coordinate-wise,
// here over the action slice (so a shorter, still-failing subsequence is
// preferred) composed with the initial system's own shrink tree.
func Run[S any, M any](t *testing.T, cfg prop.Config, initial gen.Generator[S], newModel func(S) M, actions gen.Generator[[]Action[S, M]]) {
	t.Helper()
	prop.ForAll2(t, cfg, initial, actions, func(st *testing.T, system S, acts []Action[S, M]) {
		model := newModel(system)
		for i, a := range acts {
			if !a.Precondition(system, model) {
				continue
			}
			assert.Require(a.Run(&system, &model), "action #%d failed its invariant", i)
		}
	})
}
