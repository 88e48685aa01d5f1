package suites

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-rod/rod"

	"github.com/swarmgrid/mobile-onboarding-tests/devices"
	"github.com/swarmgrid/mobile-onboarding-tests/framework"
	"github.com/swarmgrid/mobile-onboarding-tests/matrix"
)

// ChatInterfaceTitle is the fixed title of the entry-point server's root page.
const ChatInterfaceTitle = "swarmgrid chat"

// DefaultSettleDelay is how long the network suite waits after page load
// before reading the topology-visualization state, so the page's own polling
// has a chance to draw it.
const DefaultSettleDelay = 2 * time.Second

const defaultProbeTimeout = 30 * time.Second

// Env is the shared, read-only environment every suite runs against: the
// address of the live server and the browser engine. The server must already
// have passed its warm-up interval before any suite sees an Env.
type Env struct {
	BaseURL      string
	Browser      *rod.Browser
	HTTPClient   *http.Client
	SettleDelay  time.Duration
	ProbeTimeout time.Duration
}

// NewEnv fills in the defaults. The HTTP client skips certificate
// verification for the same reason the browser does: the server may present
// a self-signed local certificate.
func NewEnv(baseURL string, browser *rod.Browser) *Env {
	return &Env{
		BaseURL: baseURL,
		Browser: browser,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
		SettleDelay:  DefaultSettleDelay,
		ProbeTimeout: defaultProbeTimeout,
	}
}

// T represents a test or subtest in the onboarding validation suites.
//
// It implements the same basic functionality as Go's testing.T, but outside
// the Go test runner, with per-test debug capture provided by the framework
// package. To make test assertions, use the assert and require packages,
// passing the *T as if it were a *testing.T.
type T struct {
	context *framework.Context
	env     *Env
}

func newTestScope(context *framework.Context, env *Env) *T {
	return &T{context: context, env: env}
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest, like the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.env))
	})
}

// Debug logs output that the test logger shows per its debug settings.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

func (t *T) SkipWithReason(reason string) {
	t.context.SkipWithReason(reason)
}

func (t *T) Env() *Env {
	return t.env
}

// Runner builds a capability-matrix runner whose diagnostics feed this test's
// debug output.
func (t *T) Runner() *matrix.Runner {
	return &matrix.Runner{
		Browser: t.env.Browser,
		BaseURL: t.env.BaseURL,
		Timeout: t.env.ProbeTimeout,
		Logger:  t.context.DebugLogger(),
	}
}

// RequireProbe probes one profile and fails the test immediately if the probe
// itself (context, navigation, evaluation) errors.
func (t *T) RequireProbe(profile devices.Profile) matrix.CapabilityReport {
	rep, err := t.Runner().Probe(profile)
	if err != nil {
		t.Errorf("capability probe for %q: %s", profile.Name, err)
		t.FailNow()
	}
	return rep
}

// FetchRoot performs a plain HTTP GET of the server's root path and returns
// the status code and body. Transport-level errors fail the test immediately.
func (t *T) FetchRoot() (int, string) {
	resp, err := t.env.HTTPClient.Get(t.env.BaseURL)
	if err != nil {
		t.Errorf("GET %s: %s", t.env.BaseURL, err)
		t.FailNow()
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Errorf("reading response from %s: %s", t.env.BaseURL, err)
		t.FailNow()
	}
	return resp.StatusCode, string(body)
}

func (t *T) String() string {
	return fmt.Sprintf("T(%s)", t.context.ID())
}
