// Command mobile-onboarding-tests validates the mobile onboarding surface of
// a swarmgrid entry-point server. It installs missing tooling, starts the
// server, drives a matrix of emulated mobile and tablet browser profiles
// against it, and writes a self-contained report artifact.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/swarmgrid/mobile-onboarding-tests/bootstrap"
	"github.com/swarmgrid/mobile-onboarding-tests/framework"
	"github.com/swarmgrid/mobile-onboarding-tests/report"
	"github.com/swarmgrid/mobile-onboarding-tests/sequence"
	"github.com/swarmgrid/mobile-onboarding-tests/serverproc"
	"github.com/swarmgrid/mobile-onboarding-tests/suites"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var params commandParams
	if !params.Read(args) {
		return 1
	}

	phaseLogger := log.New(os.Stdout, "", 0)

	if params.skipBootstrap {
		fmt.Println("Preflight: skipped by request")
	} else {
		fmt.Println("Preflight: checking required capabilities")
		capabilities := []bootstrap.Capability{
			bootstrap.ExecutableCapability("server executable", params.serverCmd),
			bootstrap.BrowserCapability(),
		}
		if err := bootstrap.Preflight(capabilities, phaseLogger); err != nil {
			fmt.Fprintf(os.Stderr, "Preflight failed: %s\n", err)
			return 1
		}
	}

	fmt.Println("Starting server")
	cfg := serverproc.NewConfig(params.serverCmd)
	cfg.Warmup = params.warmup
	cfg.Logger = phaseLogger
	if params.debugAll {
		cfg.Output = os.Stdout
	}
	server, err := serverproc.Start(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server start failed: %s\n", err)
		return 1
	}
	defer server.Cleanup()

	// An operator abort must still tear the server down exactly once;
	// Cleanup's sync.Once makes the deferred call and this one safe together.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-interrupts
		fmt.Printf("\nReceived %s, cleaning up\n", sig)
		server.Cleanup()
		os.Exit(130)
	}()

	fmt.Println("Launching browser engine")
	browser, releaseBrowser, err := bootstrap.LaunchBrowser(params.headless, phaseLogger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Browser launch failed: %s\n", err)
		return 1
	}
	defer releaseBrowser()

	env := suites.NewEnv(params.serverURL, browser)
	env.SettleDelay = params.settle

	framework.PrintFilterDescription(os.Stdout, params.filters)
	filter := framework.Filter(params.filters.AsFilter)
	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	fmt.Println("Running test suites")
	fmt.Println()
	outcome := sequence.RunAll([]sequence.Suite{
		{ID: "connectivity", Policy: sequence.Fatal,
			Run: func() framework.Results { return suites.RunConnectivitySuite(env, filter, testLogger) }},
		{ID: "capability-unit", Policy: sequence.Fatal,
			Run: func() framework.Results { return suites.RunCapabilitySuite(env, filter, testLogger) }},
		{ID: "mobile-detection", Policy: sequence.Fatal,
			Run: func() framework.Results { return suites.RunMobileDetectionSuite(env, filter, testLogger) }},
		{ID: "network-integration", Policy: sequence.Fatal,
			Run: func() framework.Results { return suites.RunNetworkIntegrationSuite(env, filter, testLogger) }},
		{ID: "browser-script", Policy: sequence.Fatal,
			Run: func() framework.Results { return suites.RunBrowserScriptSuite(env, filter, testLogger) }},
		{ID: "device-matrix", Policy: sequence.Fatal,
			Run: func() framework.Results { return suites.RunDeviceMatrixSuite(env, filter, testLogger) }},
	}, os.Stdout)

	fmt.Println("Generating report artifact")
	reportStart := time.Now()
	reportErr := report.Generate(params.reportPath, env, filter, outcome)
	outcome.Suites = append(outcome.Suites, sequence.SuiteResult{
		ID:       "report",
		Policy:   sequence.BestEffort,
		OK:       reportErr == nil,
		Duration: time.Since(reportStart),
	})
	if reportErr != nil {
		fmt.Printf("Report generation failed (ignored): %s\n", reportErr)
	} else {
		fmt.Printf("Report written to %s\n", params.reportPath)
	}

	fmt.Println()
	sequence.PrintSummary(os.Stdout, outcome)
	if !outcome.OK() {
		return 1
	}
	return 0
}
