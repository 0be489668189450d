package prop

import (
	"fmt"

	"github.com/lucaskalb/proptest/gen"
	"github.com/lucaskalb/proptest/internal/random"
	"github.com/lucaskalb/proptest/prop/assert"
	"github.com/lucaskalb/proptest/shrink"
)

// Report is the outcome of a Check call: either every example passed, or a
// shrunk counterexample was found.
type Report struct {
	Name           string
	Passed         int
	Discarded      int
	ShrinkSteps    int
	Seed           int64
	Failed         bool
	Message        string
	Counterexample string
}

// Check runs a property outside of testing.T, for standalone CLI use
// (cmd/rapidx) where there is no *testing.T to hang subtests off. body
// reports failure the same way a ForAll body does: panic via
// prop/assert.Fail/Require, or return a non-nil error.
func Check[T any](name string, cfg Config, g gen.Generator[T], body func(T) error) Report {
	seed := cfg.effectiveSeed()
	r := random.New(uint64(seed))
	maxDiscards := cfg.maxDiscards()
	discards := 0
	passed := 0

	for passed < cfg.examples() {
		s := safeGenerate(g, r)
		if s == nil {
			discards++
			if discards > maxDiscards {
				return Report{Name: name, Passed: passed, Discarded: discards, Seed: seed,
					Failed: true, Message: fmt.Sprintf("too many discarded inputs (%d)", discards)}
			}
			continue
		}

		o, msg := checkOne(body, s.Value())
		switch o {
		case outcomeDiscard:
			discards++
			if discards > maxDiscards {
				return Report{Name: name, Passed: passed, Discarded: discards, Seed: seed,
					Failed: true, Message: fmt.Sprintf("too many discarded inputs (%d)", discards)}
			}
			continue
		case outcomeFail:
			return shrinkAndReport(name, cfg, seed, passed, body, *s, msg)
		}
		passed++
	}
	return Report{Name: name, Passed: passed, Discarded: discards, Seed: seed}
}

func checkOne[T any](body func(T) error, v T) (o outcome, msg string) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch e := r.(type) {
		case *assert.Discarded:
			o, msg = outcomeDiscard, e.Error()
		case *assert.Failed:
			o, msg = outcomeFail, e.Error()
		case *gen.ErrExhausted:
			o, msg = outcomeDiscard, e.Error()
		default:
			panic(r)
		}
	}()
	if err := body(v); err != nil {
		return outcomeFail, err.Error()
	}
	return outcomePass, ""
}

func shrinkAndReport[T any](name string, cfg Config, seed int64, examplesRun int, body func(T) error, s shrink.Shrinkable[T], firstMsg string) Report {
	min := s.Value()
	minMsg := firstMsg
	steps := 0
	cur := s

	for steps < cfg.maxShrink() {
		it := cur.Shrinks().Iterator()
		advanced := false
		for it.HasNext() {
			cand := it.Next()
			steps++
			o, msg := checkOne(body, cand.Value())
			if o == outcomeFail {
				min = cand.Value()
				minMsg = msg
				cur = cand
				advanced = true
				break
			}
			if steps >= cfg.maxShrink() {
				break
			}
		}
		if !advanced {
			break
		}
	}

	return Report{
		Name: name, Passed: examplesRun, ShrinkSteps: steps, Seed: seed,
		Failed: true, Message: minMsg, Counterexample: fmt.Sprintf("%#v", min),
	}
}
