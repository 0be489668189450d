// Package quick holds small go-cmp-based comparison helpers shared across
// this module's test files, in place of hand-rolled length-then-loop
// equality checks.
package quick

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Equal fails t with a diff if got and want are not deeply equal.
func Equal[T any](t *testing.T, got, want T) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// EqualSlices fails t with a diff unless got and want hold the same
// elements in the same order, the comparison most of this module's
// shrink-sequence tests actually need.
func EqualSlices[T any](t *testing.T, got, want []T) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("shrink sequence mismatch (-want +got):\n%s", diff)
	}
}
