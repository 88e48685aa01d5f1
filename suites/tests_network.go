package suites

import (
	"time"

	"github.com/go-rod/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmgrid/mobile-onboarding-tests/devices"
)

// Selectors the onboarding page renders for these features.
const (
	topologySelector  = "#topology"
	qrOnboardSelector = "#qr-onboard"
)

// DoNetworkIntegrationTests validates the distributed-network surface of the
// root page: the topology visualization and the QR onboarding element that
// lets a new mobile device join.
func DoNetworkIntegrationTests(t *T) {
	profile, ok := devices.ByName("iPhone 12")
	require.True(t, ok)

	t.Run("topology visualization renders", func(t *T) {
		err := t.Runner().Page(profile, func(page *rod.Page) error {
			// The page draws the topology from its own status polling; give
			// it a fixed settle interval before reading the state.
			time.Sleep(t.Env().SettleDelay)
			has, _, err := page.Has(topologySelector)
			if err != nil {
				return err
			}
			assert.True(t, has, "topology visualization %q not found", topologySelector)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("qr onboarding present", func(t *T) {
		err := t.Runner().Page(profile, func(page *rod.Page) error {
			time.Sleep(t.Env().SettleDelay)
			has, _, err := page.Has(qrOnboardSelector)
			if err != nil {
				return err
			}
			assert.True(t, has, "QR onboarding element %q not found", qrOnboardSelector)
			return nil
		})
		require.NoError(t, err)
	})
}
