package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitforge/unitforge/coverage"
)

// runSingle builds a one-method case around body and returns its result.
func runSingle(t *testing.T, body func(*T), configure ...func(*Case)) TestResult {
	t.Helper()
	c := NewCase("Single")
	for _, fn := range configure {
		fn(c)
	}
	c.Register("testBody", body)
	results, err := c.Run(RunOptions{Seed: 1})
	require.NoError(t, err)
	require.Len(t, results.Tests, 1)
	return results.Tests[0]
}

func TestPassReportsAssertionCount(t *testing.T) {
	res := runSingle(t, func(it *T) {
		it.AssertTrue(true)
		it.AssertEqual("a", "a")
	})
	assert.Equal(t, StatusPass, res.Status)
	assert.Equal(t, 2, res.Checks)
	assert.Equal(t, "OK (2 assertions)", res.Message)
}

func TestZeroAssertionsIsAFailure(t *testing.T) {
	res := runSingle(t, func(it *T) {})
	assert.Equal(t, StatusFail, res.Status)
	assert.Contains(t, res.Message, "without making any assertions")
}

func TestSkipIsNotAFailure(t *testing.T) {
	res := runSingle(t, func(it *T) {
		it.Skip("requires a fixture we do not have")
		it.AssertTrue(true) // unreachable
	})
	assert.Equal(t, StatusSkip, res.Status)
	assert.Equal(t, "requires a fixture we do not have", res.Message)
	assert.False(t, res.Failed())
}

func TestUnexpectedPanicBecomesAnErrorResult(t *testing.T) {
	res := runSingle(t, func(it *T) {
		panic("something went sideways")
	})
	assert.Equal(t, StatusError, res.Status)
	assert.Contains(t, res.Message, "something went sideways")
	assert.Contains(t, res.Message, "unexpected panic (string)")
	assert.Contains(t, res.Message, "goroutine", "message must carry a stack trace")
}

func TestBodyAndTeardownFailuresAreAggregated(t *testing.T) {
	res := runSingle(t,
		func(it *T) { it.Fail("A") },
		func(c *Case) {
			c.TearDown(func(it *T) { it.Fail("B") })
		})
	assert.Equal(t, StatusError, res.Status)
	assert.Contains(t, res.Message, "A")
	assert.Contains(t, res.Message, "B")
}

func TestTeardownSoftFailureIsAttributedToTeardown(t *testing.T) {
	res := runSingle(t,
		func(it *T) { it.AssertTrue(true) },
		func(c *Case) {
			c.TearDown(func(it *T) { it.Errorf("fixture leaked a connection") })
		})
	assert.Equal(t, StatusError, res.Status)
	assert.Contains(t, res.Message, "teardown failed")
	assert.Contains(t, res.Message, "fixture leaked a connection")
}

func TestRecordedErrorsSurviveAnUnexpectedPanic(t *testing.T) {
	res := runSingle(t, func(it *T) {
		it.Errorf("state was already wrong")
		panic("boom")
	})
	assert.Equal(t, StatusError, res.Status)
	assert.Contains(t, res.Message, "state was already wrong")
	assert.Contains(t, res.Message, "boom")
}

func TestTeardownFailureAloneFailsTheMethod(t *testing.T) {
	res := runSingle(t,
		func(it *T) { it.AssertTrue(true) },
		func(c *Case) {
			c.TearDown(func(it *T) { panic("teardown exploded") })
		})
	assert.Equal(t, StatusError, res.Status)
	assert.Contains(t, res.Message, "teardown exploded")
}

func TestErrorfWithoutAbortStillFails(t *testing.T) {
	res := runSingle(t, func(it *T) {
		it.Errorf("soft failure")
		it.AssertTrue(true)
	})
	assert.Equal(t, StatusFail, res.Status)
	assert.Contains(t, res.Message, "soft failure")
	assert.Equal(t, 1, res.Checks)
}

func TestDebugOutputIsAttachedToTheResult(t *testing.T) {
	res := runSingle(t, func(it *T) {
		it.Debug("state dump: %d", 12)
		it.AssertTrue(true)
	})
	require.Len(t, res.Output, 1)
	assert.Equal(t, "state dump: 12", res.Output[0].Message)
}

func TestCoverageDisabledProducesEmptyMaps(t *testing.T) {
	res := runSingle(t, func(it *T) { it.AssertTrue(true) })
	assert.Empty(t, res.Coverage)
}

func TestCoverageIsCapturedAndFiltered(t *testing.T) {
	provider := &coverage.ScriptedProvider{Report: coverage.Raw{
		"a.go": {coverage.LineCovered, coverage.LineMissed, coverage.LineDead},
		"b.go": {coverage.LineCovered},
	}}
	c := NewCase("Covered")
	c.Register("testBody", func(it *T) { it.AssertTrue(true) })

	results, err := c.Run(RunOptions{
		Seed:          1,
		Coverage:      true,
		Provider:      provider,
		CoveragePaths: []string{"a.go"},
	})
	require.NoError(t, err)
	res := results.Tests[0]
	assert.Equal(t, coverage.Map{"a.go": "x.-"}, res.Coverage)
}

func TestCoverageSessionIsClosedOnEveryOutcome(t *testing.T) {
	provider := &coverage.ScriptedProvider{Report: coverage.Raw{}}
	c := NewCase("Outcomes")
	c.Register("testPass", func(it *T) { it.AssertTrue(true) })
	c.Register("testFail", func(it *T) { it.Fail("broken") })
	c.Register("testSkip", func(it *T) { it.Skip("later") })
	c.Register("testPanic", func(it *T) { panic("boom") })

	results, err := c.Run(RunOptions{Seed: 6, Coverage: true, Provider: provider})
	require.NoError(t, err)
	assert.Len(t, results.Tests, 4)
	// One clean start/stop pair per method; a leaked session would have made
	// the next Start fail.
	assert.Equal(t, 4, provider.Sessions())
}

func TestProviderStartFailureIsFatal(t *testing.T) {
	provider := &coverage.ScriptedProvider{StartErr: assert.AnError}
	c := NewCase("Unavailable")
	c.Register("testBody", func(it *T) { it.AssertTrue(true) })

	_, err := c.Run(RunOptions{Seed: 1, Coverage: true, Provider: provider})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not be started")
}

func TestMalformedTableAbortsTheRun(t *testing.T) {
	c := NewCase("BadTable")
	c.Register("testTable", func(it *T) {
		it.AssertTable(func(v interface{}) interface{} { return v },
			[]interface{}{1, 2, 3},
			[]interface{}{1, 2})
	})
	c.Register("testOther", passingMethod)

	_, err := c.Run(RunOptions{Seed: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table has 3 inputs but 2 expected values")
}
