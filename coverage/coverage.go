// Package coverage defines the contract between the test engine and a
// line-coverage provider, and the compact per-file encoding that is attached
// to test results.
//
// A provider is process-wide mutable state: at most one capture session may be
// active at a time. The engine starts a session immediately before a test
// method body runs and stops it on every exit path, so a provider never sees
// overlapping sessions.
package coverage

// LineState classifies one source line as reported by a provider.
type LineState int

const (
	// LineCovered means the line was executed during the capture session.
	LineCovered LineState = iota
	// LineMissed means the line is executable but was not executed.
	LineMissed
	// LineDead means the line is not executable (blank, comment, declaration).
	LineDead
)

// Raw is a provider's uncompacted report: one LineState per source line,
// keyed by file path.
type Raw map[string][]LineState

// Map is the compact form attached to a test result: one character per
// source line, keyed by file path.
type Map map[string]string

const (
	coveredChar = 'x'
	missedChar  = '.'
	deadChar    = '-'
)

// Provider is the capture capability injected into the engine. Start and Stop
// bracket exactly one test method; a Stop without a matching Start, or a
// second Start before Stop, is a usage error.
type Provider interface {
	Start() error
	Stop() (Raw, error)
}

// Compact converts a provider report into the one-character-per-line form.
func Compact(raw Raw) Map {
	m := make(Map, len(raw))
	for file, lines := range raw {
		encoded := make([]byte, len(lines))
		for i, state := range lines {
			switch state {
			case LineCovered:
				encoded[i] = coveredChar
			case LineMissed:
				encoded[i] = missedChar
			default:
				encoded[i] = deadChar
			}
		}
		m[file] = string(encoded)
	}
	return m
}

// Filter returns a copy of the map restricted to the allow-listed paths.
// A nil allow-list keeps every file.
func (m Map) Filter(allow []string) Map {
	if allow == nil {
		return m
	}
	filtered := make(Map, len(allow))
	for _, path := range allow {
		if lines, ok := m[path]; ok {
			filtered[path] = lines
		}
	}
	return filtered
}

// Counts returns the number of covered lines and the total number of
// executable lines across all files in the map.
func (m Map) Counts() (covered, executable int) {
	for _, lines := range m {
		for i := 0; i < len(lines); i++ {
			switch lines[i] {
			case coveredChar:
				covered++
				executable++
			case missedChar:
				executable++
			}
		}
	}
	return covered, executable
}
