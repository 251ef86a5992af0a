package coverage

import "errors"

// ScriptedProvider is a Provider that returns a canned report. It is used by
// the engine's own tests and by the self-test binary; a real instrumentation
// backend is supplied by the embedding tool.
//
// It enforces the exclusivity contract: starting a second session while one
// is active is an error, as is stopping a session that was never started.
type ScriptedProvider struct {
	// Report is returned from every Stop call.
	Report Raw

	// StartErr, if set, is returned from Start to simulate an unavailable
	// backend.
	StartErr error

	active bool
	starts int
}

func (p *ScriptedProvider) Start() error {
	if p.StartErr != nil {
		return p.StartErr
	}
	if p.active {
		return errors.New("coverage capture is already active")
	}
	p.active = true
	p.starts++
	return nil
}

func (p *ScriptedProvider) Stop() (Raw, error) {
	if !p.active {
		return nil, errors.New("coverage capture is not active")
	}
	p.active = false
	report := make(Raw, len(p.Report))
	for file, lines := range p.Report {
		report[file] = append([]LineState(nil), lines...)
	}
	return report, nil
}

// Sessions reports how many capture sessions have been started.
func (p *ScriptedProvider) Sessions() int {
	return p.starts
}
