package framework

import (
	"time"

	"github.com/google/uuid"

	"github.com/unitforge/unitforge/coverage"
)

// Status is the outcome classification of one executed test method.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
	// StatusError marks a failure that did not come from an assertion: an
	// unexpected panic in the test body, a teardown failure, or both.
	StatusError Status = "error"
)

// TestID identifies one test method within one test case.
type TestID struct {
	Case   string
	Method string
}

func (id TestID) String() string {
	return id.Case + "." + id.Method
}

// TestResult is the immutable record produced for one executed test method.
type TestResult struct {
	ID       TestID
	Status   Status
	Duration time.Duration
	Message  string

	// Checks is the number of assertions the method recorded.
	Checks int

	// Coverage is the per-file line coverage captured around the method body.
	// Empty when capture is disabled.
	Coverage coverage.Map

	// Link is an optional navigable reference (e.g. a tracker URL) attached
	// by the orchestrator's link hook.
	Link string

	// Output is the debug output the method wrote through t.Debug.
	Output CapturedOutput
}

// Failed reports whether the result counts against the run. Skips do not.
func (r TestResult) Failed() bool {
	return r.Status == StatusFail || r.Status == StatusError
}

// Results is the ordered outcome of running one or more test cases.
type Results struct {
	// RunID uniquely identifies this run.
	RunID uuid.UUID

	// Seed is the shuffle seed that produced this run's execution order;
	// passing it back in reproduces the order.
	Seed int64

	Tests    []TestResult
	Failures []TestResult
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

func (r *Results) record(res TestResult) {
	r.Tests = append(r.Tests, res)
	if res.Failed() {
		r.Failures = append(r.Failures, res)
	}
}
