package framework

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
)

// T is the context passed to every test method, used similarly to *testing.T.
// It implements the Errorf/FailNow pair so assertion helpers from other
// libraries can be pointed at it, but its own assertion methods are the
// primary interface: they count successful checks, and a method that records
// zero checks is classified as a failure by the runner.
type T struct {
	c          *Case
	id         TestID
	logger     TestLogger
	failed     bool
	skipped    bool
	skipReason string
	errors     []error
	debugLog   CapturingLogger
}

func (t *T) ID() TestID {
	return t.id
}

// Errorf records a failure without aborting the method.
func (t *T) Errorf(format string, args ...interface{}) {
	t.failed = true
	err := fmt.Errorf(format, args...)
	t.errors = append(t.errors, err)
	t.logger.TestError(t.id, err)
}

// FailNow aborts the current test method. The panic value is the context
// itself so that only the method runner can recognize and stop it.
func (t *T) FailNow() {
	t.failed = true
	panic(t)
}

// Fail records an unconditional failure and aborts the method.
func (t *T) Fail(message string) {
	t.Errorf("%s", message)
	panic(t)
}

// Skip marks the method as skipped, a distinct outcome from failure, and
// aborts it. Sibling methods are unaffected.
func (t *T) Skip(message string) {
	t.skipReason = message
	t.skipped = true
	panic(t)
}

// AssertTrue succeeds only if value is the boolean true. Truthy non-boolean
// values fail.
func (t *T) AssertTrue(value interface{}) {
	t.assertBool(value, true)
}

// AssertFalse succeeds only if value is the boolean false.
func (t *T) AssertFalse(value interface{}) {
	t.assertBool(value, false)
}

func (t *T) assertBool(value interface{}, want bool) {
	if b, ok := value.(bool); ok && b == want {
		t.pass()
		return
	}
	t.Errorf("expected %v, got %s", want, renderValue(value))
	panic(t)
}

// AssertEqual succeeds only under strict equality: the dynamic types of both
// values must be identical and the values deeply equal. There is no coercion,
// so AssertEqual(1, "1") always fails.
func (t *T) AssertEqual(expected, actual interface{}) {
	if strictEqual(expected, actual) {
		t.pass()
		return
	}
	t.Errorf("%s", describeMismatch(expected, actual))
	panic(t)
}

// AssertTable applies fn to every input and strict-compares the output
// against the expectation at the same index. Mismatched slice lengths are a
// declaration error in the test itself, so the whole run is aborted before
// any row is attempted.
func (t *T) AssertTable(fn func(interface{}) interface{}, inputs, expected []interface{}) {
	if len(inputs) != len(expected) {
		fatalf("%s: table has %d inputs but %d expected values", t.id, len(inputs), len(expected))
	}
	for i := range inputs {
		t.AssertEqual(expected[i], fn(inputs[i]))
	}
}

// Debug writes a message to the capturing logger; the output is attached to
// the method's result rather than printed directly.
func (t *T) Debug(message string, args ...interface{}) {
	t.debugLog.Printf(message, args...)
}

func (t *T) DebugLogger() Logger {
	return &t.debugLog
}

// pass records one successful assertion on the owning case's counter.
func (t *T) pass() {
	t.c.checks++
}

func strictEqual(expected, actual interface{}) bool {
	if expected == nil || actual == nil {
		return expected == actual
	}
	if reflect.TypeOf(expected) != reflect.TypeOf(actual) {
		return false
	}
	return reflect.DeepEqual(expected, actual)
}

var renderConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func renderValue(v interface{}) string {
	return strings.TrimRight(renderConfig.Sdump(v), "\n")
}

// describeMismatch renders both values; if either rendering is multiline the
// flat expected/actual pair is unreadable, so a unified diff is produced
// instead.
func describeMismatch(expected, actual interface{}) string {
	e, a := renderValue(expected), renderValue(actual)
	if strings.Contains(e, "\n") || strings.Contains(a, "\n") {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(e),
			B:        difflib.SplitLines(a),
			FromFile: "expected",
			ToFile:   "actual",
			Context:  2,
		})
		if err == nil {
			return "values are not equal:\n" + diff
		}
	}
	return fmt.Sprintf("values are not equal\nexpected: %s\nactual:   %s", e, a)
}
