// Package framework contains the per-test-case execution engine that the
// unitforge tool is built around.
//
// The general model is:
//
// 1. A test case is a named collection of test methods registered against it,
// plus optional setup/teardown hooks at the case and method level. Methods
// whose registered name starts with "test" are discovered and run; the order
// is shuffled on every run so that tests which depend on execution order show
// up as flaky instead of silently passing.
//
// 2. There is a test context *T, similar to Go's *testing.T, which is passed
// to every test method. Its assertion methods record successful checks and
// abort the current method on the first failure; aborting unwinds only as far
// as the method runner, never into surrounding application code.
//
// 3. Each method produces exactly one TestResult, optionally carrying a
// compact line-coverage map captured around the method body. Results are
// accumulated in executed order and may also be streamed to an observer as
// they are produced.
//
// The orchestrator that selects cases, aggregates results across cases and
// renders reports lives outside this package.
package framework
