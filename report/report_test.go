package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/lucaskalb/proptest/prop"
)

func TestOKReportsPassCount(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.NoColor = true
	r.OK("my-property", 100, time.Millisecond)
	out := buf.String()
	if !strings.Contains(out, "OK") || !strings.Contains(out, "my-property") || !strings.Contains(out, "100") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestFalsifiableReportsCounterexample(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.NoColor = true
	r.Falsifiable("my-property", 12, 3, "v too big", "4", 42)
	out := buf.String()
	for _, want := range []string{"Falsifiable", "my-property", "v too big", "4", "42"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got %q", want, out)
		}
	}
}

func TestTagsRendersHistogram(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.NoColor = true
	r.Tags([]prop.TagCount{{Label: "even", Count: 40, Total: 100}})
	out := buf.String()
	if !strings.Contains(out, "even") {
		t.Fatalf("expected tag label in output, got %q", out)
	}
}
