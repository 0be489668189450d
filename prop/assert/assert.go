// Package assert defines the contract a property body uses to report its
// outcome to the runner in package prop: success, a precondition discard, or
// a failure, each carrying the call site that raised it (spec.md §7).
package assert

import (
	"fmt"
	"runtime"
)

// Failed is the error a failing property body raises. The runner in
// package prop recovers it from a panic and treats it as a counterexample;
// a panic of any other type (apart from Discarded and gen.ErrExhausted) is
// re-raised by the runner.
type Failed struct {
	Message string
	File    string
	Line    int
}

func (f *Failed) Error() string {
	if f.File == "" {
		return f.Message
	}
	return fmt.Sprintf("%s:%d: %s", f.File, f.Line, f.Message)
}

// Discarded is raised by Discard to signal that the current input does not
// satisfy a precondition and should not count toward Config.Examples.
type Discarded struct {
	Reason string
}

func (d *Discarded) Error() string {
	if d.Reason == "" {
		return "input discarded"
	}
	return "input discarded: " + d.Reason
}

// Fail raises a Failed with the given message, captured at the caller's
// source location.
func Fail(format string, args ...any) {
	file, line := callerLoc()
	panic(&Failed{Message: fmt.Sprintf(format, args...), File: file, Line: line})
}

// Require panics with Failed, at the caller's location, if cond is false.
// The idiomatic way to state a property's invariant inside a property body.
func Require(cond bool, format string, args ...any) {
	if cond {
		return
	}
	file, line := callerLoc()
	panic(&Failed{Message: fmt.Sprintf(format, args...), File: file, Line: line})
}

// Discard aborts the current run without counting it as a pass or a
// failure; the runner redraws another input, up to its discard budget.
func Discard(reason string) {
	panic(&Discarded{Reason: reason})
}

// DiscardIf calls Discard(reason) if cond holds.
func DiscardIf(cond bool, reason string) {
	if cond {
		Discard(reason)
	}
}

func callerLoc() (file string, line int) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "", 0
	}
	return file, line
}
