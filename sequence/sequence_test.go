package sequence

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmgrid/mobile-onboarding-tests/framework"
)

func passingSuite() framework.Results {
	return framework.Run(nil, nil, func(c *framework.Context) {
		c.Run("ok", func(c *framework.Context) {})
	})
}

func failingSuite() framework.Results {
	return framework.Run(nil, nil, func(c *framework.Context) {
		c.Run("bad", func(c *framework.Context) {
			c.Errorf("nope")
		})
	})
}

func TestRunAllExecutesInOrderWithoutShortCircuit(t *testing.T) {
	var order []string
	record := func(id string, run func() framework.Results) Suite {
		return Suite{ID: id, Policy: Fatal, Run: func() framework.Results {
			order = append(order, id)
			return run()
		}}
	}
	var out bytes.Buffer
	outcome := RunAll([]Suite{
		record("first", passingSuite),
		record("second", failingSuite),
		record("third", passingSuite),
	}, &out)

	assert.Equal(t, []string{"first", "second", "third"}, order)
	assert.False(t, outcome.OK())
	require.Len(t, outcome.Suites, 3)
	assert.True(t, outcome.Suites[0].OK)
	assert.False(t, outcome.Suites[1].OK)
	assert.True(t, outcome.Suites[2].OK)
	assert.Equal(t, 1, outcome.Suites[1].Failures)
}

func TestBestEffortFailureDoesNotAffectOutcome(t *testing.T) {
	var out bytes.Buffer
	outcome := RunAll([]Suite{
		{ID: "real", Policy: Fatal, Run: passingSuite},
		{ID: "report", Policy: BestEffort, Run: failingSuite},
	}, &out)

	assert.True(t, outcome.OK(), "best-effort failures must not change the run outcome")
	require.Len(t, outcome.Suites, 2)
	assert.False(t, outcome.Suites[1].OK)
}

func TestPanickingSuiteIsRecordedAndRunContinues(t *testing.T) {
	var out bytes.Buffer
	outcome := RunAll([]Suite{
		{ID: "explodes", Policy: Fatal, Run: func() framework.Results {
			panic(errors.New("browser crashed"))
		}},
		{ID: "after", Policy: Fatal, Run: passingSuite},
	}, &out)

	require.Len(t, outcome.Suites, 2)
	assert.False(t, outcome.Suites[0].OK)
	assert.Equal(t, 1, outcome.Suites[0].Failures)
	assert.True(t, outcome.Suites[1].OK)
	assert.False(t, outcome.OK())
}

func TestSuiteResultDurations(t *testing.T) {
	var out bytes.Buffer
	outcome := RunAll([]Suite{{ID: "quick", Policy: Fatal, Run: passingSuite}}, &out)
	require.Len(t, outcome.Suites, 1)
	assert.GreaterOrEqual(t, outcome.Suites[0].Duration.Nanoseconds(), int64(0))
	assert.Equal(t, 2, outcome.Suites[0].Tests) // subtest plus root context
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "fatal", Fatal.String())
	assert.Equal(t, "best-effort", BestEffort.String())
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer
	PrintSummary(&out, Outcome{Suites: []SuiteResult{
		{ID: "connectivity", Policy: Fatal, OK: true, Tests: 3},
		{ID: "report", Policy: BestEffort, OK: false, Tests: 6},
	}})
	s := out.String()
	assert.Contains(t, s, "connectivity")
	assert.Contains(t, s, "report")
	assert.Contains(t, s, "ignored")
}
