// Package selftest is the suite the unitforge binary runs: test cases that
// exercise the execution engine against itself, using only its public API.
// Each method builds a small inner case, runs it, and asserts on the results
// the engine produced for it.
package selftest

import (
	"fmt"

	"github.com/unitforge/unitforge/framework"
)

// Cases returns the full self-test suite in a deterministic order; the
// driver shuffles method order within each case per run as usual.
func Cases() []*framework.Case {
	return []*framework.Case{
		assertionSemanticsCase(),
		outcomeClassificationCase(),
		coverageContractCase(),
	}
}

// runInner runs a single-method inner case and returns its one result.
// The fixed seed keeps the inner run noise-free; shuffling is exercised by
// the coverage contract case separately.
func runInner(t *framework.T, body func(*framework.T)) framework.TestResult {
	c := framework.NewCase("Inner")
	c.Register("testBody", body)
	results, err := c.Run(framework.RunOptions{Seed: 1})
	if err != nil {
		t.Fail(fmt.Sprintf("inner case run failed: %s", err))
	}
	if len(results.Tests) != 1 {
		t.Fail(fmt.Sprintf("inner case produced %d results, wanted 1", len(results.Tests)))
	}
	return results.Tests[0]
}
