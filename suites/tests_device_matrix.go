package suites

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmgrid/mobile-onboarding-tests/devices"
	"github.com/swarmgrid/mobile-onboarding-tests/matrix"
)

// DoDeviceMatrixTests runs the full profile sweep. Each profile gets its own
// isolated context, released before the next profile opens; the sweep never
// short-circuits on a failing profile.
func DoDeviceMatrixTests(t *T) {
	t.Run("profile sweep", func(t *T) {
		profiles := devices.Profiles()
		reports, errs := t.Runner().ProbeAll(profiles)
		for _, err := range errs {
			t.Errorf("probe error: %s", err)
		}
		assert.Len(t, reports, len(profiles), "expected one capability report per profile")

		for _, profile := range profiles {
			rep, ok := reports[profile.Name]
			if !ok {
				continue // probe error already recorded above
			}
			problems, notes := matrix.Check(profile, rep)
			for _, note := range notes {
				t.Debug("%s: %s", profile.Name, note)
			}
			for _, problem := range problems {
				t.Errorf("%s: %s", profile.Name, problem)
			}
			if profile.Touch {
				assert.Greater(t, rep.MaxTouchPoints, 0,
					"%s: touch profile reported no touch points", profile.Name)
			}
		}
	})

	t.Run("tablet experience", func(t *T) {
		profile, ok := devices.ByName("iPad Pro")
		require.True(t, ok)
		rep := t.RequireProbe(profile)
		assert.GreaterOrEqual(t, rep.ViewportWidth, matrix.MinTabletWidth)
		for _, problem := range matrix.CheckTabletExperience(rep) {
			t.Errorf("%s: %s", profile.Name, problem)
		}
	})
}
