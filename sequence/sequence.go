// Package sequence runs the harness's ordered list of test suites against the
// live server. Suites execute strictly one after another; a failing suite is
// recorded and never stops the suites after it.
package sequence

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/swarmgrid/mobile-onboarding-tests/framework"
)

// Policy says how a suite's failure affects the run's exit status.
type Policy int

const (
	// Fatal failures propagate to the harness exit code.
	Fatal Policy = iota
	// BestEffort suites may fail without affecting the exit code; used for
	// the report-generation pass, which is a diagnostic, not a gate.
	BestEffort
)

func (p Policy) String() string {
	if p == BestEffort {
		return "best-effort"
	}
	return "fatal"
}

// Suite is one independently invocable unit in the fixed run order.
type Suite struct {
	ID     string
	Policy Policy
	Run    func() framework.Results
}

// SuiteResult records the outcome and duration of one suite.
type SuiteResult struct {
	ID       string
	Policy   Policy
	OK       bool
	Tests    int
	Failures int
	Duration time.Duration
}

// Outcome is the aggregate of a full sequenced run.
type Outcome struct {
	Suites []SuiteResult
}

// OK reports whether every Fatal-policy suite passed. BestEffort failures are
// visible in the suite list but never flip this.
func (o Outcome) OK() bool {
	for _, s := range o.Suites {
		if !s.OK && s.Policy == Fatal {
			return false
		}
	}
	return true
}

var suiteHeaderColor = color.New(color.FgCyan, color.Bold)

// RunAll executes the suites in order. A panic inside a suite is converted to
// a failed result for that suite; execution always continues to the next one.
func RunAll(suites []Suite, w io.Writer) Outcome {
	var outcome Outcome
	for _, s := range suites {
		suiteHeaderColor.Fprintf(w, "=== suite: %s ===\n", s.ID)
		start := time.Now()
		results := runGuarded(s, w)
		sr := SuiteResult{
			ID:       s.ID,
			Policy:   s.Policy,
			OK:       results.OK(),
			Tests:    len(results.Tests),
			Failures: len(results.Failures),
			Duration: time.Since(start),
		}
		outcome.Suites = append(outcome.Suites, sr)
		if sr.OK {
			fmt.Fprintf(w, "suite %s passed (%d tests, %s)\n\n", s.ID, sr.Tests, sr.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(w, "suite %s FAILED (%s, policy %s)\n",
				s.ID, sr.Duration.Round(time.Millisecond), s.Policy)
			framework.PrintResults(w, results)
			fmt.Fprintln(w)
		}
	}
	return outcome
}

func runGuarded(s Suite, w io.Writer) (results framework.Results) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(w, "suite %s panicked: %v\n", s.ID, r)
			id := framework.TestID{Path: []string{s.ID}}
			failure := framework.TestResult{
				TestID: id,
				Errors: []error{fmt.Errorf("suite panicked: %v", r)},
			}
			results.Tests = append(results.Tests, failure)
			results.Failures = append(results.Failures, failure)
		}
	}()
	return s.Run()
}

// PrintSummary writes the per-suite table at the end of the run.
func PrintSummary(w io.Writer, outcome Outcome) {
	fmt.Fprintln(w, "Suite summary:")
	for _, s := range outcome.Suites {
		status := color.GreenString("PASS")
		if !s.OK {
			if s.Policy == BestEffort {
				status = color.YellowString("FAIL (ignored)")
			} else {
				status = color.RedString("FAIL")
			}
		}
		fmt.Fprintf(w, "  %-24s %-16s %3d tests  %s\n",
			s.ID, status, s.Tests, s.Duration.Round(time.Millisecond))
	}
}
