// Package concurrent runs a front action sequence linearly, then two rear
// action sequences against the same system from separate goroutines,
// recording their interleaving order, grounded on
// original_source/combinator/{concurrency,concurrency_class}.hpp.
//
// The original busy-waits each rear goroutine's readiness with
// `while (!thread_ready) {}` before releasing both at once. Go has
// sync.WaitGroup for exactly this rendezvous, so the readiness barrier here
// is a WaitGroup plus a start channel instead of a spin loop. Joining the two
// rear goroutines and propagating whichever one failed its invariant first
// uses errgroup.Group rather than a second WaitGroup, the same join-and-
// collect-first-error idiom cmd/rapidx uses to run suites concurrently.
package concurrent

import (
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/lucaskalb/proptest/gen"
	"github.com/lucaskalb/proptest/prop"
	"github.com/lucaskalb/proptest/prop/assert"
	"github.com/lucaskalb/proptest/stateful"
)

// Step is a single interleaving log entry: which rear sequence (1 or 2)
// executed the action at this position.
type Step struct {
	Worker int
	Index  int
}

// Log is the recorded order in which the two rear sequences' actions
// actually executed, for a single run. Its ordering is the whole point of
// the concurrent runner: different runs of the same action lists may
// produce different Logs depending on the scheduler.
type Log []Step

// Run checks that, after a front sequence runs linearly, two rear sequences
// run concurrently against the same system without ever reporting a failed
// action, for every generated (initial, front, rear1, rear2) tuple. An
// optional postCheck runs once both rear sequences have joined, the usual
// place to assert a linearization invariant against the final state.
//
// Shrinking a concurrent failure is not implemented: the original's own
// handleShrink is an empty stub, left that way because which interleaving
// reproduces a race is scheduler-dependent and a shrunk action list found
// under one interleaving may not reproduce under another (spec.md §9 notes
// this as an open question). A failing run is reported at its full,
// unshrunk size.
func Run[S any, M any](
	t *testing.T,
	cfg prop.Config,
	initial gen.Generator[S],
	newModel func(S) M,
	front gen.Generator[[]stateful.Action[S, M]],
	rear1 gen.Generator[[]stateful.Action[S, M]],
	rear2 gen.Generator[[]stateful.Action[S, M]],
	postCheck func(system S, model M, log Log),
) {
	t.Helper()
	type input struct {
		system S
		front  []stateful.Action[S, M]
		rear1  []stateful.Action[S, M]
		rear2  []stateful.Action[S, M]
	}
	g := gen.Construct4(initial, front, rear1, rear2, func(s S, f, r1, r2 []stateful.Action[S, M]) input {
		return input{system: s, front: f, rear1: r1, rear2: r2}
	})
	prop.ForAll(t, cfg, g, func(st *testing.T, in input) {
		system := in.system
		model := newModel(system)

		for i, a := range in.front {
			if !a.Precondition(system, model) {
				continue
			}
			assert.Require(a.Run(&system, &model), "front action #%d failed its invariant", i)
		}

		log := runRear(&system, &model, in.rear1, in.rear2)

		if postCheck != nil {
			postCheck(system, model, log)
		}
	})
}

// runRear starts both rear sequences from separate goroutines, releasing
// them together only once both have signalled readiness, and returns the
// order in which their actions actually executed. A failed action's
// assert.Failed panic is recovered inside its goroutine, turned into a
// returned error so errgroup can join cleanly, and re-raised after both
// sequences have finished so the enclosing prop.ForAll body sees the same
// panic it would have seen from a sequential run.
func runRear[S any, M any](system *S, model *M, rear1, rear2 []stateful.Action[S, M]) Log {
	var ready sync.WaitGroup
	ready.Add(2)
	start := make(chan struct{})

	var mu sync.Mutex
	var log Log

	record := func(worker, idx int) {
		mu.Lock()
		log = append(log, Step{Worker: worker, Index: idx})
		mu.Unlock()
	}

	var g errgroup.Group

	runOne := func(worker int, actions []stateful.Action[S, M]) error {
		ready.Done()
		<-start
		for i, a := range actions {
			if !a.Precondition(*system, *model) {
				continue
			}
			if failure := recoverFailed(func() {
				assert.Require(a.Run(system, model), "rear%d action #%d failed its invariant", worker, i)
			}); failure != nil {
				return failure
			}
			record(worker, i)
		}
		return nil
	}

	g.Go(func() error { return runOne(1, rear1) })
	g.Go(func() error { return runOne(2, rear2) })

	ready.Wait()
	close(start)

	if err := g.Wait(); err != nil {
		panic(err)
	}

	return log
}

// recoverFailed runs fn and, if it panics with *assert.Failed, recovers it
// and returns it as an error instead of letting it unwind the goroutine
// stack; any other panic propagates unchanged.
func recoverFailed(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*assert.Failed)
			if !ok {
				panic(r)
			}
			err = f
		}
	}()
	fn()
	return nil
}
