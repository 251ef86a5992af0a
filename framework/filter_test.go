package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexListParsing(t *testing.T) {
	var list RegexList
	require.NoError(t, list.Set("^Widget"))
	require.NoError(t, list.Set("Gadget$"))
	assert.Error(t, list.Set("("))

	assert.True(t, list.IsDefined())
	assert.True(t, list.AnyMatch("WidgetCase"))
	assert.True(t, list.AnyMatch("BigGadget"))
	assert.False(t, list.AnyMatch("Sprocket"))
	assert.Equal(t, []string{"^Widget", "Gadget$"}, list.Patterns())
}

func TestSelectCases(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("Engine"))
	require.NoError(t, filters.MustNotMatch.Set("Slow"))

	cases := []*Case{NewCase("EngineCore"), NewCase("EngineSlow"), NewCase("Reporting")}
	kept, excluded := SelectCases(cases, filters)

	require.Len(t, kept, 1)
	assert.Equal(t, "EngineCore", kept[0].Name())
	assert.Equal(t, []string{"EngineSlow", "Reporting"}, excluded)
}

func TestEmptyFiltersKeepEverything(t *testing.T) {
	var filters RegexFilters
	cases := []*Case{NewCase("A"), NewCase("B")}
	kept, excluded := SelectCases(cases, filters)
	assert.Len(t, kept, 2)
	assert.Empty(t, excluded)
	assert.False(t, filters.IsDefined())
}
