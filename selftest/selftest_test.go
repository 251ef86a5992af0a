package selftest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitforge/unitforge/framework"
)

func TestSelfTestSuitePasses(t *testing.T) {
	results, err := framework.RunCases(Cases(), framework.RunOptions{Seed: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, results.Tests)
	for _, res := range results.Tests {
		assert.Falsef(t, res.Failed(), "%s: %s", res.ID, res.Message)
	}
}

func TestSuiteOutcomesAreSeedIndependent(t *testing.T) {
	first, err := framework.RunCases(Cases(), framework.RunOptions{Seed: 11})
	require.NoError(t, err)
	second, err := framework.RunCases(Cases(), framework.RunOptions{Seed: 97})
	require.NoError(t, err)

	outcomes := func(r framework.Results) map[string]framework.Status {
		m := make(map[string]framework.Status)
		for _, res := range r.Tests {
			m[res.ID.String()] = res.Status
		}
		return m
	}
	assert.Equal(t, outcomes(first), outcomes(second))
}
