package suites

import (
	"github.com/go-rod/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmgrid/mobile-onboarding-tests/devices"
)

// inPageMobileCheckJS is the same classification the onboarding UI performs
// client-side to pick the mobile layout.
const inPageMobileCheckJS = `() => /Mobi|Android|iPhone|iPad|iPod|Tablet/i.test(navigator.userAgent)`

func DoMobileDetectionTests(t *T) {
	t.Run("profile table user agents", func(t *T) {
		for _, profile := range devices.Profiles() {
			assert.True(t, devices.IsMobileUA(profile.UserAgent),
				"profile %q user agent not classified as mobile: %s", profile.Name, profile.UserAgent)
		}
	})

	for _, profile := range devices.Profiles() {
		profile := profile
		t.Run("in-page detection/"+profile.Name, func(t *T) {
			err := t.Runner().Page(profile, func(page *rod.Page) error {
				ua, err := page.Eval(`() => navigator.userAgent`)
				if err != nil {
					return err
				}
				assert.Equal(t, profile.UserAgent, ua.Value.Str(),
					"emulated user agent was not applied to the page")

				mobile, err := page.Eval(inPageMobileCheckJS)
				if err != nil {
					return err
				}
				assert.True(t, mobile.Value.Bool(),
					"page did not classify %q as a mobile device", profile.Name)
				return nil
			})
			require.NoError(t, err)
		})
	}
}
