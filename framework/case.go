package framework

import "strings"

// testMethodPrefix is the only selection rule: a registered callable whose
// name starts with this prefix is a test method, anything else is ignored by
// discovery.
const testMethodPrefix = "test"

type method struct {
	name string
	fn   func(*T)
}

// Case is one test case: a registration table of named callables plus
// lifecycle hooks. Build it once, run it once, then read the results.
//
// The assertion counter and the currently-running-method marker live here
// and are reused across methods, which is why methods of one case never run
// concurrently.
type Case struct {
	name    string
	methods []method

	setUpAll    func() error
	tearDownAll func() error
	setUp       func(*T)
	tearDown    func(*T)

	// checks is the number of assertions recorded by the method named by
	// current. Reset to zero before every method.
	checks  int
	current string
}

func NewCase(name string) *Case {
	return &Case{name: name}
}

func (c *Case) Name() string {
	return c.name
}

// Register adds a named callable to the case. Only names starting with
// "test" are picked up by discovery; registering under any other name is
// allowed but the callable will never run. Registering from inside a running
// test method is a usage error and aborts the run.
func (c *Case) Register(name string, fn func(*T)) {
	if c.current != "" {
		fatalf("case %s: cannot register %q while %q is running", c.name, name, c.current)
	}
	c.methods = append(c.methods, method{name: name, fn: fn})
}

// SetUpAll installs the hook run once before the first test method.
func (c *Case) SetUpAll(fn func() error) {
	c.setUpAll = fn
}

// TearDownAll installs the hook run once after the last test method,
// regardless of how many methods failed.
func (c *Case) TearDownAll(fn func() error) {
	c.tearDownAll = fn
}

// SetUp installs the hook run before every test method body.
func (c *Case) SetUp(fn func(*T)) {
	c.setUp = fn
}

// TearDown installs the hook run after every test method body, on every
// outcome.
func (c *Case) TearDown(fn func(*T)) {
	c.tearDown = fn
}

// Methods returns the names of the discovered test methods in registration
// order.
func (c *Case) Methods() []string {
	var names []string
	for _, m := range c.testMethods() {
		names = append(names, m.name)
	}
	return names
}

// testMethods returns the discovered methods in registration order; the
// driver shuffles them per run.
func (c *Case) testMethods() []method {
	var ms []method
	for _, m := range c.methods {
		if strings.HasPrefix(m.name, testMethodPrefix) {
			ms = append(ms, m)
		}
	}
	return ms
}
