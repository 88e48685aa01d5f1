package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexFiltersDefaultRunsEverything(t *testing.T) {
	var f RegexFilters
	assert.True(t, f.AsFilter(TestID{Path: []string{"anything"}}))
}

func TestRegexFiltersMustMatch(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("device matrix"))
	assert.True(t, f.AsFilter(TestID{Path: []string{"device matrix", "iPad Pro"}}))
	assert.False(t, f.AsFilter(TestID{Path: []string{"connectivity"}}))
}

func TestRegexFiltersMustNotMatch(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustNotMatch.Set("slow"))
	assert.True(t, f.AsFilter(TestID{Path: []string{"fast check"}}))
	assert.False(t, f.AsFilter(TestID{Path: []string{"slow check"}}))
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var l RegexList
	assert.Error(t, l.Set("("))
	assert.False(t, l.IsDefined())
}
