package selftest

import (
	"github.com/unitforge/unitforge/coverage"
	"github.com/unitforge/unitforge/framework"
)

func coverageContractCase() *framework.Case {
	c := framework.NewCase("CoverageContract")

	c.Register("testDisabledCaptureYieldsEmptyMaps", func(t *framework.T) {
		res := runInner(t, func(it *framework.T) {
			it.AssertTrue(true)
		})
		t.AssertEqual(0, len(res.Coverage))
	})

	c.Register("testPathFilterRestrictsTheMap", func(t *framework.T) {
		provider := &coverage.ScriptedProvider{Report: coverage.Raw{
			"a.go": {coverage.LineCovered, coverage.LineMissed, coverage.LineDead},
			"b.go": {coverage.LineCovered},
		}}
		inner := framework.NewCase("Covered")
		inner.Register("testBody", func(it *framework.T) {
			it.AssertTrue(true)
		})
		results, err := inner.Run(framework.RunOptions{
			Seed:          1,
			Coverage:      true,
			Provider:      provider,
			CoveragePaths: []string{"a.go"},
		})
		if err != nil {
			t.Fail(err.Error())
		}
		res := results.Tests[0]
		t.AssertEqual(1, len(res.Coverage))
		t.AssertEqual("x.-", res.Coverage["a.go"])
	})

	c.Register("testCaptureRunsOncePerMethodOnEveryOutcome", func(t *framework.T) {
		provider := &coverage.ScriptedProvider{Report: coverage.Raw{}}
		inner := framework.NewCase("Outcomes")
		inner.Register("testPass", func(it *framework.T) { it.AssertTrue(true) })
		inner.Register("testFail", func(it *framework.T) { it.Fail("nope") })
		inner.Register("testSkip", func(it *framework.T) { it.Skip("later") })
		_, err := inner.Run(framework.RunOptions{Seed: 2, Coverage: true, Provider: provider})
		if err != nil {
			t.Fail(err.Error())
		}
		t.AssertEqual(3, provider.Sessions())
	})

	c.Register("testSeedReproducesExecutionOrder", func(t *framework.T) {
		build := func() *framework.Case {
			inner := framework.NewCase("Order")
			for _, name := range []string{"testA", "testB", "testC", "testD"} {
				inner.Register(name, func(it *framework.T) { it.AssertTrue(true) })
			}
			return inner
		}
		order := func(results framework.Results) []interface{} {
			var names []interface{}
			for _, res := range results.Tests {
				names = append(names, res.ID.Method)
			}
			return names
		}
		first, err := build().Run(framework.RunOptions{Seed: 99})
		if err != nil {
			t.Fail(err.Error())
		}
		second, err := build().Run(framework.RunOptions{Seed: 99})
		if err != nil {
			t.Fail(err.Error())
		}
		t.AssertEqual(order(first), order(second))
	})

	return c
}
