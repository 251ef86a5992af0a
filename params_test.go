package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverageFlagOverridesConfigInBothDirections(t *testing.T) {
	var cfg runConfig
	cfg.Coverage.Enabled = true

	var off commandParams
	require.True(t, off.Read([]string{"unitforge", "-coverage=false"}))
	assert.False(t, effectiveCoverage(off, cfg),
		"an explicit -coverage=false must win over the config")

	var on commandParams
	require.True(t, on.Read([]string{"unitforge", "-coverage"}))
	cfg.Coverage.Enabled = false
	assert.True(t, effectiveCoverage(on, cfg))
}

func TestCoverageDefaultsToConfigWhenFlagAbsent(t *testing.T) {
	var params commandParams
	require.True(t, params.Read([]string{"unitforge"}))
	assert.False(t, params.coverageSet)

	var cfg runConfig
	cfg.Coverage.Enabled = true
	assert.True(t, effectiveCoverage(params, cfg))
	cfg.Coverage.Enabled = false
	assert.False(t, effectiveCoverage(params, cfg))
}
