package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runNames(results Results) []string {
	var names []string
	for _, r := range results.Tests {
		names = append(names, r.TestID.String())
	}
	return names
}

func TestRunCollectsResultsFromSubtests(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("passes", func(c *Context) {})
		c.Run("fails", func(c *Context) {
			c.Errorf("something went wrong")
		})
		c.Run("also passes", func(c *Context) {})
	})

	assert.False(t, results.OK())
	assert.Equal(t, []string{"passes", "fails", "also passes", ""}, runNames(results))
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "fails", results.Failures[0].TestID.String())
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "something went wrong")
}

func TestFailNowStopsTestButNotRun(t *testing.T) {
	ranAfter := false
	ranNext := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("aborts", func(c *Context) {
			c.Errorf("fatal condition")
			c.FailNow()
			ranAfter = true
		})
		c.Run("next", func(c *Context) {
			ranNext = true
		})
	})

	assert.False(t, ranAfter)
	assert.True(t, ranNext)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "aborts", results.Failures[0].TestID.String())
}

func TestUnexpectedPanicBecomesFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("panics", func(c *Context) {
			panic("boom")
		})
	})

	require.Len(t, results.Failures, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic")
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "boom")
}

func TestSkippedTestIsNotAFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("skipped", func(c *Context) {
			c.SkipWithReason("not applicable here")
			c.Errorf("should never be reached")
		})
		c.Run("runs", func(c *Context) {})
	})

	assert.True(t, results.OK())
	assert.NotContains(t, runNames(results), "skipped")
	assert.Contains(t, runNames(results), "runs")
}

func TestFilterExcludesTests(t *testing.T) {
	filter := func(id TestID) bool { return id.String() != "excluded" }
	ranExcluded := false
	results := Run(filter, nil, func(c *Context) {
		c.Run("excluded", func(c *Context) { ranExcluded = true })
		c.Run("included", func(c *Context) {})
	})

	assert.False(t, ranExcluded)
	assert.True(t, results.OK())
	assert.NotContains(t, runNames(results), "excluded")
}

func TestSubtestIDsArePaths(t *testing.T) {
	var id TestID
	Run(nil, nil, func(c *Context) {
		c.Run("outer", func(c *Context) {
			c.Run("inner", func(c *Context) {
				id = c.ID()
			})
		})
	})
	assert.Equal(t, "outer/inner", id.String())
}
