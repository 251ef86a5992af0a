package framework

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/unitforge/unitforge/coverage"
)

// RunOptions configures one run of one or more test cases.
type RunOptions struct {
	// Seed drives the per-run shuffle of method execution order. Zero means
	// derive a seed from the clock; the effective seed is recorded on the
	// Results so a surprising order can be replayed.
	Seed int64

	// Coverage enables line-coverage capture around every test method body.
	// Enabling it without a Provider is a configuration error.
	Coverage bool

	// Provider is the capture capability used when Coverage is set.
	Provider coverage.Provider

	// CoveragePaths, when non-nil, restricts every attached coverage map to
	// these file paths.
	CoveragePaths []string

	// Logger receives each result as it is produced.
	Logger TestLogger

	// Link, if set, is called once per result to attach a navigable
	// reference (e.g. a tracker URL). Link construction stays outside the
	// engine.
	Link func(TestID) string

	// BeforeRun and AfterRun are informational hooks for the orchestrator,
	// invoked around a RunCases batch with the full list of cases. They are
	// pass-throughs, not part of the per-case lifecycle.
	BeforeRun func(cases []*Case)
	AfterRun  func(cases []*Case)
}

func (o RunOptions) logger() TestLogger {
	if o.Logger == nil {
		return nullTestLogger{}
	}
	return o.Logger
}

func (o RunOptions) validate() error {
	if o.Coverage && o.Provider == nil {
		return errors.New("coverage capture is enabled but no coverage provider is configured")
	}
	return nil
}

func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// Run executes every discovered test method of the case, in shuffled order,
// and returns one result per method in the order actually executed. A
// non-nil error means the run itself broke (bad configuration, a fatal
// declaration error, a class-level hook failure), not that tests failed;
// test failures are reported through the results.
func (c *Case) Run(opts RunOptions) (Results, error) {
	if err := opts.validate(); err != nil {
		return Results{}, err
	}
	opts.Seed = resolveSeed(opts.Seed)
	results := Results{RunID: uuid.New(), Seed: opts.Seed}
	err := c.runInto(&results, opts)
	return results, err
}

// RunCases runs a list of cases sequentially, merging their results under a
// single run ID and seed. The first fatal error stops the batch; one test
// method failing never does.
func RunCases(cases []*Case, opts RunOptions) (Results, error) {
	if err := opts.validate(); err != nil {
		return Results{}, err
	}
	opts.Seed = resolveSeed(opts.Seed)
	results := Results{RunID: uuid.New(), Seed: opts.Seed}

	if opts.BeforeRun != nil {
		opts.BeforeRun(cases)
	}
	for _, c := range cases {
		if err := c.runInto(&results, opts); err != nil {
			return results, err
		}
	}
	if opts.AfterRun != nil {
		opts.AfterRun(cases)
	}
	return results, nil
}

func (c *Case) runInto(results *Results, opts RunOptions) (err error) {
	logger := opts.logger()

	// Fatal signals unwind past the method runner; everything else the
	// runner has already converted into a result.
	defer func() {
		if p := recover(); p != nil {
			f, ok := p.(fatalError)
			if !ok {
				panic(p)
			}
			err = f.err
		}
	}()

	if c.setUpAll != nil {
		if serr := c.setUpAll(); serr != nil {
			return fmt.Errorf("case %s setup failed: %w", c.name, serr)
		}
	}
	// Class teardown runs even when a method run aborts fatally.
	defer func() {
		if c.tearDownAll == nil {
			return
		}
		if terr := c.tearDownAll(); terr != nil && err == nil {
			err = fmt.Errorf("case %s teardown failed: %w", c.name, terr)
		}
	}()

	runner := &methodRunner{c: c, opts: opts}
	rnd := rand.New(rand.NewSource(opts.Seed))
	for _, m := range shuffled(c.testMethods(), rnd) {
		id := TestID{Case: c.name, Method: m.name}
		logger.TestStarted(id)
		res := runner.run(m)
		results.record(res)
		if res.Status == StatusSkip {
			logger.TestSkipped(id, res.Message)
		}
		logger.TestFinished(res)
	}
	return nil
}

func shuffled(ms []method, rnd *rand.Rand) []method {
	out := append([]method(nil), ms...)
	rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
