package framework

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter decides whether a test case should be run. Case selection is the
// orchestrator's job; the engine itself always runs every discovered method
// of the cases it is given.
type Filter func(caseName string) bool

type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) AsFilter() Filter {
	return func(caseName string) bool {
		return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(caseName)) &&
			!r.MustNotMatch.AnyMatch(caseName)
	}
}

func (r RegexFilters) IsDefined() bool {
	return r.MustMatch.IsDefined() || r.MustNotMatch.IsDefined()
}

// SelectCases applies the filters to a list of cases, returning the kept
// cases and the names of the excluded ones.
func SelectCases(cases []*Case, filters RegexFilters) (kept []*Case, excluded []string) {
	match := filters.AsFilter()
	for _, c := range cases {
		if match(c.Name()) {
			kept = append(kept, c)
		} else {
			excluded = append(excluded, c.Name())
		}
	}
	return kept, excluded
}

type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

// Patterns returns the raw pattern strings, e.g. for rebuilding an
// equivalent command line.
func (r RegexList) Patterns() []string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, p.String())
	}
	return ss
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
