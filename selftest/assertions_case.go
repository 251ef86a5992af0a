package selftest

import (
	"strings"

	"github.com/unitforge/unitforge/framework"
)

func assertionSemanticsCase() *framework.Case {
	c := framework.NewCase("AssertionSemantics")

	c.Register("testEqualValuesPass", func(t *framework.T) {
		res := runInner(t, func(it *framework.T) {
			it.AssertEqual(42, 6*7)
			it.AssertEqual("same", "same")
		})
		t.AssertEqual(framework.StatusPass, res.Status)
		t.AssertEqual(2, res.Checks)
	})

	c.Register("testEqualityIsTypeSensitive", func(t *framework.T) {
		res := runInner(t, func(it *framework.T) {
			it.AssertEqual(1, "1")
		})
		t.AssertEqual(framework.StatusFail, res.Status)
	})

	c.Register("testBooleanAssertionsAreStrict", func(t *framework.T) {
		truthy := runInner(t, func(it *framework.T) {
			it.AssertTrue(1)
		})
		t.AssertEqual(framework.StatusFail, truthy.Status)

		strict := runInner(t, func(it *framework.T) {
			it.AssertTrue(true)
			it.AssertFalse(false)
		})
		t.AssertEqual(framework.StatusPass, strict.Status)
	})

	c.Register("testUnconditionalFailureStopsTheMethod", func(t *framework.T) {
		res := runInner(t, func(it *framework.T) {
			it.Fail("this test opted out of passing")
			it.AssertTrue(true) // unreachable
		})
		t.AssertEqual(framework.StatusFail, res.Status)
		t.AssertTrue(strings.Contains(res.Message, "opted out"))
		t.AssertEqual(0, res.Checks)
	})

	c.Register("testMismatchMessageShowsBothValues", func(t *framework.T) {
		res := runInner(t, func(it *framework.T) {
			it.AssertEqual("expected-value", "actual-value")
		})
		t.AssertEqual(framework.StatusFail, res.Status)
		t.AssertTrue(strings.Contains(res.Message, "expected-value"))
		t.AssertTrue(strings.Contains(res.Message, "actual-value"))
	})

	return c
}
