// Package report produces the run's single self-contained HTML artifact. It
// replays the capability suite with reporting enabled and renders the result
// together with the suite summary. Report generation is best-effort by
// design: its failures are recorded but never change the harness exit code.
package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/swarmgrid/mobile-onboarding-tests/framework"
	"github.com/swarmgrid/mobile-onboarding-tests/sequence"
	"github.com/swarmgrid/mobile-onboarding-tests/suites"
)

// DefaultPath is the fixed relative path of the report artifact.
const DefaultPath = "mobile_test_report.html"

//go:embed report.gohtml
var reportHTML string

var reportTemplate = template.Must(template.New("report").
	Funcs(template.FuncMap{
		"round": func(d time.Duration) time.Duration { return d.Round(time.Millisecond) },
	}).
	Parse(reportHTML))

// Data is everything the artifact renders.
type Data struct {
	GeneratedAt time.Time
	ServerURL   string
	Suites      []sequence.SuiteResult
	Results     framework.Results
}

// Generate re-runs the capability suite and writes the artifact to path.
// The caller runs this under a best-effort policy; the returned error is
// diagnostic only.
func Generate(path string, env *suites.Env, filter framework.Filter, outcome sequence.Outcome) error {
	results := suites.RunCapabilitySuite(env, filter, nil)
	data := Data{
		GeneratedAt: time.Now(),
		ServerURL:   env.BaseURL,
		Suites:      outcome.Suites,
		Results:     results,
	}
	return Write(path, data)
}

// Write renders the artifact to path.
func Write(path string, data Data) error {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing report artifact: %w", err)
	}
	return nil
}
