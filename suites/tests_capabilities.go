package suites

import (
	"github.com/swarmgrid/mobile-onboarding-tests/devices"
	"github.com/swarmgrid/mobile-onboarding-tests/matrix"
)

// DoCapabilityTests probes each device profile once and applies the
// format-level capability rules. Profiles are independent trials: a failing
// profile never stops the ones after it.
func DoCapabilityTests(t *T) {
	for _, profile := range devices.Profiles() {
		profile := profile
		t.Run(profile.Name, func(t *T) {
			rep := t.RequireProbe(profile)
			problems, notes := matrix.Check(profile, rep)
			for _, note := range notes {
				t.Debug("%s: %s", profile.Name, note)
			}
			for _, problem := range problems {
				t.Errorf("%s: %s", profile.Name, problem)
			}
		})
	}
}
