// Package prop runs properties: generating inputs from a gen.Generator,
// checking a body against each, and shrinking any counterexample found
// toward a minimal failing input (spec.md §4.5).
package prop

import (
	"fmt"
	"testing"

	"github.com/lucaskalb/proptest/gen"
	"github.com/lucaskalb/proptest/internal/random"
	"github.com/lucaskalb/proptest/prop/assert"
	"github.com/lucaskalb/proptest/shrink"
)

// outcome classifies one run of a property body.
type outcome int

const (
	outcomePass outcome = iota
	outcomeFail
	outcomeDiscard
)

// runBody invokes body with v under st, translating the assert package's
// panic-based contract (and a gen.Filter exhaustion panic) into an outcome
// instead of letting it escape as an unhandled panic. Any other panic is
// re-raised: it almost always indicates a bug in the property body itself,
// and papering over it would hide that.
func runBody[T any](st *testing.T, body func(*testing.T, T), v T) (o outcome, msg string) {
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
	body(st, v)
	return outcomePass, ""
}

// ForAll checks a property against cfg.Examples generated inputs, shrinking
// any failure before reporting it via t.Fatalf. A discarded input (raised
// via prop/assert.Discard, or a generator's filter giving up) does not count
// toward Examples and is retried, up to cfg.MaxDiscardRatio times the
// target example count.
func ForAll[T any](t *testing.T, cfg Config, g gen.Generator[T], body func(*testing.T, T)) {
	t.Helper()
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
				t.Fatalf("prop: too many discarded inputs (%d) while seeking %d examples; seed=%d", discards, cfg.examples(), seed)
				return
			}
			continue
		}

		name := fmt.Sprintf("ex#%d", passed+1)
		var failMsg string
		discarded := false
		ok := t.Run(name, func(st *testing.T) {
			o, m := runBody(st, body, s.Value())
			switch o {
			case outcomeDiscard:
				discarded = true
				st.Skip(m)
			case outcomeFail:
				failMsg = m
				st.Fatalf("%s", m)
			}
		})
		if discarded {
			discards++
			if discards > maxDiscards {
				t.Fatalf("prop: too many discarded inputs (%d) while seeking %d examples; seed=%d", discards, cfg.examples(), seed)
				return
			}
			continue
		}
		if ok {
			passed++
			continue
		}
		if failMsg == "" {
			failMsg = "property failed"
		}
		reportFailure(t, cfg, seed, name, s, body, failMsg)
		return
	}
	t.Logf("prop: OK, passed %d tests (seed=%d)", passed, seed)
}

// safeGenerate runs g.Generate(r), converting a gen.Filter exhaustion panic
// into a nil result instead of propagating it past generation.
func safeGenerate[T any](g gen.Generator[T], r *random.Random) (out *shrink.Shrinkable[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			if _, ok := rec.(*gen.ErrExhausted); ok {
				out = nil
				return
			}
			panic(rec)
		}
	}()
	v := g.Generate(r)
	return &v
}

// reportFailure walks the shrink tree of a failing Shrinkable, always
// descending into the first still-failing child (depth-first, spec.md
// §4.5), until MaxShrink steps are used or no child fails, then reports the
// minimal counterexample found.
func reportFailure[T any](t *testing.T, cfg Config, seed int64, exName string, s *shrink.Shrinkable[T], body func(*testing.T, T), firstMsg string) {
	t.Helper()
	min := s.Value()
	minMsg := firstMsg
	steps := 0
	cur := *s

	for steps < cfg.maxShrink() {
		it := cur.Shrinks().Iterator()
		advanced := false
		for it.HasNext() {
			cand := it.Next()
			steps++
			sname := fmt.Sprintf("%s/shrink#%d", exName, steps)
			var candMsg string
			stillFails := false
			passedOrSkipped := t.Run(sname, func(st *testing.T) {
				o, m := runBody(st, body, cand.Value())
				switch o {
				case outcomeFail:
					stillFails = true
					candMsg = m
					st.Fatalf("%s", m)
				case outcomeDiscard:
					st.Skip(m)
				}
			})
			if !passedOrSkipped && !stillFails {
				// body failed through st itself (st.Fatalf/st.Errorf)
				stillFails = true
				candMsg = "property failed"
			}
			if stillFails {
				min = cand.Value()
				minMsg = candMsg
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

	t.Fatalf("prop: Falsifiable, after %d shrink step(s): %s\ncounterexample: %#v\nseed=%d, replay with Config{Seed: %d}",
		steps, minMsg, min, seed, seed)
}

// Example runs body once against an explicit value, bypassing generation
// and shrinking entirely; useful for pinning a regression a property
// previously found.
func Example[T any](t *testing.T, v T, body func(*testing.T, T)) {
	t.Helper()
	o, msg := runBody(t, body, v)
	if o == outcomeFail {
		t.Fatalf("prop: example failed: %s\nvalue: %#v", msg, v)
	}
}
