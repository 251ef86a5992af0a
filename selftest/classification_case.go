package selftest

import (
	"strings"

	"github.com/unitforge/unitforge/framework"
)

func outcomeClassificationCase() *framework.Case {
	c := framework.NewCase("OutcomeClassification")

	c.Register("testZeroAssertionsIsAFailure", func(t *framework.T) {
		res := runInner(t, func(it *framework.T) {
			// completes without asserting anything
		})
		t.AssertEqual(framework.StatusFail, res.Status)
		t.AssertTrue(strings.Contains(res.Message, "without making any assertions"))
	})

	c.Register("testSkipDoesNotAffectSiblings", func(t *framework.T) {
		inner := framework.NewCase("SkipSibling")
		inner.Register("testSkip", func(it *framework.T) {
			it.Skip("not applicable here")
		})
		inner.Register("testPass", func(it *framework.T) {
			it.AssertTrue(true)
		})
		results, err := inner.Run(framework.RunOptions{Seed: 7})
		if err != nil {
			t.Fail(err.Error())
		}
		counts := map[framework.Status]int{}
		for _, res := range results.Tests {
			counts[res.Status]++
		}
		t.AssertEqual(2, len(results.Tests))
		t.AssertEqual(1, counts[framework.StatusSkip])
		t.AssertEqual(1, counts[framework.StatusPass])
	})

	c.Register("testTeardownFailureIsNeverDropped", func(t *framework.T) {
		inner := framework.NewCase("Aggregate")
		inner.TearDown(func(it *framework.T) {
			it.Fail("teardown failure B")
		})
		inner.Register("testBody", func(it *framework.T) {
			it.Fail("body failure A")
		})
		results, err := inner.Run(framework.RunOptions{Seed: 1})
		if err != nil {
			t.Fail(err.Error())
		}
		res := results.Tests[0]
		t.AssertEqual(framework.StatusError, res.Status)
		t.AssertTrue(strings.Contains(res.Message, "body failure A"))
		t.AssertTrue(strings.Contains(res.Message, "teardown failure B"))
	})

	c.Register("testUnexpectedPanicIsAnError", func(t *framework.T) {
		res := runInner(t, func(it *framework.T) {
			panic("kaboom")
		})
		t.AssertEqual(framework.StatusError, res.Status)
		t.AssertTrue(strings.Contains(res.Message, "kaboom"))
	})

	c.Register("testEveryDiscoveredMethodProducesAResult", func(t *framework.T) {
		inner := framework.NewCase("Mixed")
		inner.Register("testOne", func(it *framework.T) { it.AssertTrue(true) })
		inner.Register("testTwo", func(it *framework.T) { it.Fail("nope") })
		inner.Register("testThree", func(it *framework.T) { it.Skip("later") })
		inner.Register("helper", func(it *framework.T) { panic("never discovered") })
		results, err := inner.Run(framework.RunOptions{Seed: 3})
		if err != nil {
			t.Fail(err.Error())
		}
		t.AssertEqual(3, len(results.Tests))
	})

	return c
}
