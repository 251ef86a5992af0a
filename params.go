package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/unitforge/unitforge/framework"
)

type commandParams struct {
	configPath string
	filters    framework.RegexFilters
	seed       int64
	coverage   bool
	// coverageSet records whether -coverage appeared on the command line at
	// all, so an explicit -coverage=false can override a config file.
	coverageSet bool
	jsonPath    string
	progress    bool
	debug       bool
	debugAll    bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.configPath, "config", "", "path to a YAML config file")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select cases to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select cases not to run")
	fs.Int64Var(&c.seed, "seed", 0, "shuffle seed for method execution order (0 = derive from the clock)")
	fs.BoolVar(&c.coverage, "coverage", false, "enable line-coverage capture")
	fs.StringVar(&c.jsonPath, "json", "", "write results as JSON to this file")
	fs.BoolVar(&c.progress, "progress", false, "show a live progress bar instead of per-test output")
	fs.BoolVar(&c.debug, "debug", false, "print captured debug output for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "print captured debug output for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "coverage" {
			c.coverageSet = true
		}
	})
	return true
}

// reproductionCommand renders the command line that replays this run's
// execution order, with the effective seed pinned.
func (c commandParams) reproductionCommand(seed int64) string {
	var b commandBuilder
	b.add(os.Args[0], "-seed", strconv.FormatInt(seed, 10))
	for _, p := range c.filters.MustMatch.Patterns() {
		b.add("-run", p)
	}
	for _, p := range c.filters.MustNotMatch.Patterns() {
		b.add("-skip", p)
	}
	if c.configPath != "" {
		b.add("-config", c.configPath)
	}
	if c.coverage {
		b.add("-coverage")
	}
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
