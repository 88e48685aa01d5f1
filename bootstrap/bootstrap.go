// Package bootstrap is the preflight phase of the harness. It probes every
// required external capability up front and installs what is missing, so no
// orchestration logic ever runs with an incomplete environment. This is the
// only component allowed to mutate the local environment.
package bootstrap

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/go-rod/rod/lib/launcher"

	"github.com/swarmgrid/mobile-onboarding-tests/framework"
)

// Capability is one required external dependency: a cheap presence probe and,
// when available, a synchronous installer invoked on a probe miss. A nil
// Install means a probe miss is unrecoverable.
type Capability struct {
	Name    string
	Probe   func() error
	Install func() error
}

// Preflight checks every capability in order, installing on demand. Any
// installer failure (or an unrecoverable probe miss) is fatal: the returned
// error names the capability so the operator knows what to fix, and the
// harness must not start the server.
func Preflight(capabilities []Capability, logger framework.Logger) error {
	for _, c := range capabilities {
		if err := c.Probe(); err == nil {
			logger.Printf("capability %q present", c.Name)
			continue
		}
		if c.Install == nil {
			return fmt.Errorf("required capability %q is missing and has no installer", c.Name)
		}
		logger.Printf("capability %q missing, installing", c.Name)
		if err := c.Install(); err != nil {
			return fmt.Errorf("installing capability %q: %w", c.Name, err)
		}
		if err := c.Probe(); err != nil {
			return fmt.Errorf("capability %q still missing after install: %w", c.Name, err)
		}
		logger.Printf("capability %q installed", c.Name)
	}
	return nil
}

// BrowserCapability covers the browser-automation engine's managed browser
// binary. The probe checks the launcher's cache directory; the installer
// downloads the binary into it.
func BrowserCapability() Capability {
	return Capability{
		Name: fmt.Sprintf("browser binary (%s)", launcher.DefaultBrowserDir),
		Probe: func() error {
			return launcher.NewBrowser().Validate()
		},
		Install: func() error {
			_, err := launcher.NewBrowser().Get()
			return err
		},
	}
}

// ExecutableCapability verifies that the server entry-point executable can be
// resolved. There is no installer: the operator points the harness at it.
func ExecutableCapability(name, path string) Capability {
	return Capability{
		Name: name,
		Probe: func() error {
			if strings.ContainsRune(path, os.PathSeparator) {
				_, err := os.Stat(path)
				return err
			}
			_, err := exec.LookPath(path)
			return err
		},
	}
}
