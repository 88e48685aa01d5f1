package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/swarmgrid/mobile-onboarding-tests/framework"
	"github.com/swarmgrid/mobile-onboarding-tests/report"
	"github.com/swarmgrid/mobile-onboarding-tests/serverproc"
	"github.com/swarmgrid/mobile-onboarding-tests/suites"
)

const defaultServerURL = "http://localhost:52415"

type commandParams struct {
	serverCmd     string
	serverURL     string
	warmup        time.Duration
	settle        time.Duration
	headless      bool
	skipBootstrap bool
	reportPath    string
	filters       framework.RegexFilters
	debug         bool
	debugAll      bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	fs.StringVar(&c.serverCmd, "server-cmd", "swarmgrid", "path to the network entry-point executable")
	fs.StringVar(&c.serverURL, "url", defaultServerURL, "address where the server will be reachable")
	fs.DurationVar(&c.warmup, "warmup", serverproc.DefaultWarmup, "fixed warm-up wait after starting the server")
	fs.DurationVar(&c.settle, "settle", suites.DefaultSettleDelay, "settle delay before reading topology state")
	fs.BoolVar(&c.headless, "headless", true, "run the browser engine headless")
	fs.BoolVar(&c.skipBootstrap, "skip-bootstrap", false, "skip the capability preflight (assume everything is installed)")
	fs.StringVar(&c.reportPath, "report", report.DefaultPath, "path of the report artifact")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.serverCmd == "" {
		fmt.Fprintln(os.Stderr, "-server-cmd is required")
		fs.Usage()
		return false
	}
	return true
}
