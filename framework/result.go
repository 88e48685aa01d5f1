package framework

import (
	"fmt"
	"strings"
)

// Results accumulates the outcome of every test that ran within one suite
// invocation.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult is the outcome of a single test.
type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

// OK returns true if there were no failures.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Append merges the results of another suite invocation into this one. It is
// used by the report aggregator, which replays a suite and folds its results
// into the run-level view.
func (r *Results) Append(other Results) {
	r.Tests = append(r.Tests, other.Tests...)
	r.Failures = append(r.Failures, other.Failures...)
}

// TestID identifies a test or subtest as a path of names, like
// "device matrix/iPad Pro/viewport".
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}
