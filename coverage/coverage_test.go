package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactEncoding(t *testing.T) {
	raw := Raw{
		"a.go": {LineCovered, LineMissed, LineDead, LineCovered},
		"b.go": {},
	}
	m := Compact(raw)
	assert.Equal(t, Map{"a.go": "x.-x", "b.go": ""}, m)
}

func TestFilterKeepsOnlyAllowListedPaths(t *testing.T) {
	m := Map{"a.go": "x", "b.go": ".", "c.go": "-"}

	assert.Equal(t, m, m.Filter(nil), "nil allow-list keeps everything")
	assert.Equal(t, Map{"a.go": "x"}, m.Filter([]string{"a.go", "missing.go"}))
	assert.Empty(t, m.Filter([]string{}))
}

func TestCounts(t *testing.T) {
	m := Map{
		"a.go": "xx.-",
		"b.go": "---",
	}
	covered, executable := m.Counts()
	assert.Equal(t, 2, covered)
	assert.Equal(t, 3, executable)
}

func TestScriptedProviderEnforcesExclusivity(t *testing.T) {
	p := &ScriptedProvider{Report: Raw{"a.go": {LineCovered}}}

	require.NoError(t, p.Start())
	assert.Error(t, p.Start(), "a second session must not start while one is active")

	report, err := p.Stop()
	require.NoError(t, err)
	assert.Equal(t, Raw{"a.go": {LineCovered}}, report)

	_, err = p.Stop()
	assert.Error(t, err, "stopping without an active session is a usage error")
	assert.Equal(t, 1, p.Sessions())
}

func TestScriptedProviderStartError(t *testing.T) {
	p := &ScriptedProvider{StartErr: assert.AnError}
	assert.Error(t, p.Start())
	assert.Equal(t, 0, p.Sessions())
}
