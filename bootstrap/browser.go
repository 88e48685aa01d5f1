package bootstrap

import (
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"

	"github.com/swarmgrid/mobile-onboarding-tests/framework"
)

// LaunchBrowser starts the shared browser engine used by all suites.
// Certificate validation is relaxed because the server under test may present
// a self-signed or local certificate. The returned release func shuts the
// browser down and cleans up the launcher's temp data; it is safe to call
// once the suites are done.
func LaunchBrowser(headless bool, logger framework.Logger) (*rod.Browser, func(), error) {
	l := launcher.New().
		Headless(headless).
		Set("ignore-certificate-errors").
		Set("allow-insecure-localhost")

	controlURL, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}
	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}
	if err := browser.IgnoreCertErrors(true); err != nil {
		logger.Printf("could not relax certificate checks: %v", err)
	}
	logger.Printf("browser engine ready at %s", controlURL)

	release := func() {
		_ = browser.Close()
		l.Cleanup()
	}
	return browser, release, nil
}
