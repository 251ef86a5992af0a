package framework

import (
	"fmt"
	"strings"
)

// Control flow inside a test method uses panic values that only the method
// runner recognizes:
//
//   - panic(t) with t.failed set: an assertion failed, stop this method.
//   - panic(t) with t.skipped set: the method opted out, stop this method.
//   - panic(fatalError{...}): a precondition of the whole run is broken;
//     re-raised past the runner and surfaced as an error from Run.
//
// Panicking with the *T itself (the idiom *testing.T-style frameworks use)
// means user test code cannot accidentally swallow the signal with a broad
// error handler, and the runner can tell it apart from an ordinary panic by
// a type check.

// fatalError aborts the entire run. It is never converted into a per-test
// result.
type fatalError struct {
	err error
}

func (f fatalError) Error() string {
	return f.err.Error()
}

func fatalf(format string, args ...interface{}) {
	panic(fatalError{err: fmt.Errorf(format, args...)})
}

// aggregateError combines a test body failure with a teardown failure so
// that neither cause is dropped from the result.
type aggregateError struct {
	body     error
	teardown error
}

func (a aggregateError) Error() string {
	return fmt.Sprintf("test body failed: %s\nteardown also failed: %s", a.body, a.teardown)
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	var ss []string
	for _, e := range errs {
		ss = append(ss, e.Error())
	}
	return fmt.Errorf("%s", strings.Join(ss, "\n"))
}
