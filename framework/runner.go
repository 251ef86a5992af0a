package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/unitforge/unitforge/coverage"
)

// methodRunner executes exactly one test method end to end:
// setup hook, start coverage, body, stop coverage, teardown hook, classify.
// Whatever happens inside the body, coverage capture is stopped before the
// result is produced; the provider session never leaks into the next method.
type methodRunner struct {
	c    *Case
	opts RunOptions
}

func (r *methodRunner) run(m method) TestResult {
	id := TestID{Case: r.c.name, Method: m.name}
	t := &T{c: r.c, id: id, logger: r.opts.logger()}

	r.c.checks = 0
	r.c.current = m.name
	defer func() { r.c.current = "" }()

	started := time.Now()
	covMap, bodyPanic := r.invokeBody(t, m.fn)
	// Snapshot the body's state before teardown so assertions or failures
	// recorded by the hook cannot be misattributed to the body.
	checks := r.c.checks
	bodyFailed := t.failed
	bodySkipped := t.skipped
	bodyErrs := append([]error(nil), t.errors...)
	teardownErr := r.invokeTearDown(t)

	res := TestResult{
		ID:       id,
		Duration: time.Since(started),
		Checks:   checks,
		Coverage: covMap,
		Output:   t.debugLog.Output(),
	}

	// A failure raised through the assertion primitives was already recorded
	// on t; anything else arrived as a panic and is carried by bodyPanic.
	// When both happened, keep both.
	var bodyFailure error
	switch {
	case bodyPanic != nil && bodyFailed:
		bodyFailure = fmt.Errorf("%s\n%s", joinErrors(bodyErrs), bodyPanic)
	case bodyPanic != nil:
		bodyFailure = bodyPanic
	case bodyFailed:
		bodyFailure = joinErrors(bodyErrs)
	}

	switch {
	case bodyFailure != nil && teardownErr != nil:
		res.Status = StatusError
		res.Message = aggregateError{body: bodyFailure, teardown: teardownErr}.Error()
	case bodyPanic != nil:
		res.Status = StatusError
		res.Message = bodyFailure.Error()
	case teardownErr != nil:
		res.Status = StatusError
		res.Message = fmt.Sprintf("teardown failed: %s", teardownErr)
	case bodySkipped:
		res.Status = StatusSkip
		res.Message = t.skipReason
	case bodyFailed:
		res.Status = StatusFail
		res.Message = joinErrors(bodyErrs).Error()
	case checks == 0:
		res.Status = StatusFail
		res.Message = "test completed without making any assertions"
	default:
		res.Status = StatusPass
		res.Message = fmt.Sprintf("OK (%d assertions)", checks)
	}

	if r.opts.Link != nil {
		res.Link = r.opts.Link(id)
	}
	return res
}

// invokeBody runs the method-level setup hook and the test body with coverage
// capture bracketing the body. The returned error is non-nil only for a
// failure that was not raised through the assertion primitives; control
// signals leave their record on t and return a nil error.
func (r *methodRunner) invokeBody(t *T, fn func(*T)) (covMap coverage.Map, bodyPanic error) {
	covMap = coverage.Map{}
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if _, ok := p.(fatalError); ok {
			panic(p)
		}
		if _, ok := p.(*T); ok {
			if !t.skipped && len(t.errors) == 0 {
				t.Errorf("test failed with no failure message")
			}
			return
		}
		bodyPanic = fmt.Errorf("unexpected panic (%T) in test: %+v\n%s", p, p, string(debug.Stack()))
	}()

	if r.c.setUp != nil {
		r.c.setUp(t)
	}

	stop := r.startCapture()
	defer func() { covMap = stop() }()

	fn(t)
	return covMap, nil
}

// startCapture begins a coverage session and returns the function that ends
// it. The returned stop is called on every exit path from the body. Capture
// infrastructure failures are configuration problems, not test outcomes, so
// they abort the run.
func (r *methodRunner) startCapture() func() coverage.Map {
	if !r.opts.Coverage {
		return func() coverage.Map { return coverage.Map{} }
	}
	if err := r.opts.Provider.Start(); err != nil {
		fatalf("coverage capture could not be started: %s", err)
	}
	return func() coverage.Map {
		raw, err := r.opts.Provider.Stop()
		if err != nil {
			fatalf("coverage capture could not be stopped: %s", err)
		}
		return coverage.Compact(raw).Filter(r.opts.CoveragePaths)
	}
}

// invokeTearDown runs the method-level teardown hook. Failures here are
// reported separately from body failures so the runner can aggregate the two.
func (r *methodRunner) invokeTearDown(t *T) (teardownErr error) {
	if r.c.tearDown == nil {
		return nil
	}
	recorded := len(t.errors)
	defer func() {
		p := recover()
		hookErrs := joinErrors(t.errors[recorded:])
		if p == nil {
			// The hook may record soft failures through Errorf without
			// aborting; those still belong to the teardown.
			teardownErr = hookErrs
			return
		}
		if _, ok := p.(fatalError); ok {
			panic(p)
		}
		if _, ok := p.(*T); ok {
			if hookErrs != nil {
				teardownErr = hookErrs
			} else {
				teardownErr = errors.New("teardown failed with no failure message")
			}
			return
		}
		teardownErr = fmt.Errorf("unexpected panic (%T) in teardown: %+v\n%s", p, p, string(debug.Stack()))
	}()

	r.c.tearDown(t)
	return nil
}
