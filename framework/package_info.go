// Package framework contains the low-level test harness infrastructure that is
// independent of what is being validated.
//
// The general model is:
//
// 1. The harness owns a server process under test and drives it from the
// outside (over HTTP and through emulated browser sessions); the server is
// never linked into the harness.
//
// 2. There is a general notion of a test context which is similar to Go's
// *testing.T, allowing pieces of test logic to be associated with a test
// identifier and to accumulate success/failure results without aborting the
// run.
//
// The domain-specific code that knows about device profiles, capability
// probes, and the onboarding UI lives in the suites and matrix packages and
// builds its own test API on top of the context.
package framework
