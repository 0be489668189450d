// Package report renders property-check outcomes and tag/stat summaries for
// the cmd/rapidx CLI, colorized with fatih/color and tabulated with
// go-pretty, the way a terminal-facing test runner in this ecosystem does
// (spec.md §6's OK / Falsifiable lines, printed here as "OK <name>: passed
// N tests in <elapsed>" and "Falsifiable <name>: after N examples, M shrink
// steps" followed by the message, counterexample and seed; testing.T-based
// runs in package prop print through t.Logf/t.Fatalf instead, since go test
// owns that output).
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/lucaskalb/proptest/prop"
)

// Reporter writes colorized, human-readable summaries to an io.Writer.
type Reporter struct {
	w       io.Writer
	NoColor bool
	ok      *color.Color
	fail    *color.Color
	dim     *color.Color
}

// New returns a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{
		w:    w,
		ok:   color.New(color.FgGreen, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
		dim:  color.New(color.Faint),
	}
}

func (r *Reporter) colorize(c *color.Color, format string, args ...any) string {
	if r.NoColor {
		return fmt.Sprintf(format, args...)
	}
	return c.Sprintf(format, args...)
}

// OK reports a property that passed every example, in the elapsed duration
// taken, humanized (spec.md §6).
func (r *Reporter) OK(name string, examples int, elapsed time.Duration) {
	fmt.Fprintf(r.w, "%s %s: passed %d tests in %s\n",
		r.colorize(r.ok, "OK"), name, examples, humanize.RelTime(time.Now().Add(-elapsed), time.Now(), "", ""))
}

// Falsifiable reports a shrunk counterexample (spec.md §6).
func (r *Reporter) Falsifiable(name string, examplesRun int, shrinkSteps int, message string, counterexample string, seed int64) {
	fmt.Fprintf(r.w, "%s %s: after %s examples, %s shrink steps\n  %s\n  counterexample: %s\n  replay seed: %d\n",
		r.colorize(r.fail, "Falsifiable"), name,
		humanize.Comma(int64(examplesRun)), humanize.Comma(int64(shrinkSteps)),
		message, counterexample, seed)
}

// Tags renders a Context's tag histogram as a table, one row per label.
func (r *Reporter) Tags(counts []prop.TagCount) {
	if len(counts) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.AppendHeader(table.Row{"tag", "count", "% of examples"})
	for _, c := range counts {
		pct := "n/a"
		if c.Total > 0 {
			pct = fmt.Sprintf("%.1f%%", 100*float64(c.Count)/float64(c.Total))
		}
		t.AppendRow(table.Row{c.Label, c.Count, pct})
	}
	t.Render()
}

// Stats renders a Context's numeric sample summaries as a table.
func (r *Reporter) Stats(summaries []prop.StatSummary) {
	if len(summaries) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.AppendHeader(table.Row{"stat", "count", "min", "mean", "max"})
	for _, s := range summaries {
		t.AppendRow(table.Row{s.Key, s.Count, s.Min, fmt.Sprintf("%.3f", s.Mean), s.Max})
	}
	t.Render()
}

// Dimf writes a muted, informational line (discard counts, run config).
func (r *Reporter) Dimf(format string, args ...any) {
	fmt.Fprintln(r.w, r.colorize(r.dim, format, args...))
}
