package bootstrap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmgrid/mobile-onboarding-tests/framework"
)

func TestPreflightSkipsInstallWhenPresent(t *testing.T) {
	installed := false
	caps := []Capability{{
		Name:    "already there",
		Probe:   func() error { return nil },
		Install: func() error { installed = true; return nil },
	}}
	require.NoError(t, Preflight(caps, framework.NullLogger()))
	assert.False(t, installed)
}

func TestPreflightInstallsOnProbeMiss(t *testing.T) {
	present := false
	caps := []Capability{{
		Name: "installable",
		Probe: func() error {
			if present {
				return nil
			}
			return errors.New("missing")
		},
		Install: func() error { present = true; return nil },
	}}
	require.NoError(t, Preflight(caps, framework.NullLogger()))
	assert.True(t, present)
}

func TestPreflightInstallerFailureIsFatalAndNamesCapability(t *testing.T) {
	caps := []Capability{{
		Name:    "broken-installer",
		Probe:   func() error { return errors.New("missing") },
		Install: func() error { return errors.New("download refused") },
	}}
	err := Preflight(caps, framework.NullLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken-installer")
	assert.Contains(t, err.Error(), "download refused")
}

func TestPreflightNoInstallerIsFatal(t *testing.T) {
	caps := []Capability{{
		Name:  "manual-only",
		Probe: func() error { return errors.New("missing") },
	}}
	err := Preflight(caps, framework.NullLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manual-only")
}

func TestPreflightReprobesAfterInstall(t *testing.T) {
	caps := []Capability{{
		Name:    "lying-installer",
		Probe:   func() error { return errors.New("still missing") },
		Install: func() error { return nil },
	}}
	err := Preflight(caps, framework.NullLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "still missing after install")
}

func TestPreflightStopsAtFirstFatalCapability(t *testing.T) {
	secondProbed := false
	caps := []Capability{
		{
			Name:  "first",
			Probe: func() error { return errors.New("missing") },
		},
		{
			Name:  "second",
			Probe: func() error { secondProbed = true; return nil },
		},
	}
	require.Error(t, Preflight(caps, framework.NullLogger()))
	assert.False(t, secondProbed, "preflight must not continue past a fatal capability")
}

func TestExecutableCapability(t *testing.T) {
	assert.NoError(t, ExecutableCapability("shell", "sh").Probe())
	assert.Error(t, ExecutableCapability("missing", "/no/such/binary").Probe())
	assert.Nil(t, ExecutableCapability("shell", "sh").Install)
}
