// Package suites contains the domain test suites that the harness sequences
// against the live entry-point server: connectivity, device capability
// detection, mobile UA detection, onboarding-UI integration, a standalone
// browser script, and the full device matrix.
package suites

import (
	"github.com/swarmgrid/mobile-onboarding-tests/framework"
)

func runSuite(env *Env, filter framework.Filter, testLogger framework.TestLogger, action func(*T)) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		action(newTestScope(c, env))
	})
}

// RunConnectivitySuite checks that the server is reachable and serving the
// chat interface at its root path.
func RunConnectivitySuite(env *Env, filter framework.Filter, testLogger framework.TestLogger) framework.Results {
	return runSuite(env, filter, testLogger, DoConnectivityTests)
}

// RunCapabilitySuite runs the per-profile capability detection checks.
func RunCapabilitySuite(env *Env, filter framework.Filter, testLogger framework.TestLogger) framework.Results {
	return runSuite(env, filter, testLogger, DoCapabilityTests)
}

// RunMobileDetectionSuite checks that phone and tablet profiles are
// classified as mobile, both by the harness's pattern and inside the page.
func RunMobileDetectionSuite(env *Env, filter framework.Filter, testLogger framework.TestLogger) framework.Results {
	return runSuite(env, filter, testLogger, DoMobileDetectionTests)
}

// RunNetworkIntegrationSuite checks the topology visualization and QR
// onboarding surface of the live network.
func RunNetworkIntegrationSuite(env *Env, filter framework.Filter, testLogger framework.TestLogger) framework.Results {
	return runSuite(env, filter, testLogger, DoNetworkIntegrationTests)
}

// RunBrowserScriptSuite drives the root page in a plain, un-emulated browser
// session, mirroring the standalone browser smoke script.
func RunBrowserScriptSuite(env *Env, filter framework.Filter, testLogger framework.TestLogger) framework.Results {
	return runSuite(env, filter, testLogger, DoBrowserScriptTests)
}

// RunDeviceMatrixSuite runs the full five-profile sweep with one isolated
// context per profile.
func RunDeviceMatrixSuite(env *Env, filter framework.Filter, testLogger framework.TestLogger) framework.Results {
	return runSuite(env, filter, testLogger, DoDeviceMatrixTests)
}
