package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/unitforge/unitforge/framework"
)

var (
	passLabel  = color.New(color.FgGreen).Sprint("PASS")
	failLabel  = color.New(color.FgRed).Sprint("FAIL")
	errorLabel = color.New(color.FgRed, color.Bold).Sprint("ERROR")
	skipLabel  = color.New(color.FgYellow).Sprint("SKIP")
)

func statusLabel(s framework.Status) string {
	switch s {
	case framework.StatusPass:
		return passLabel
	case framework.StatusSkip:
		return skipLabel
	case framework.StatusError:
		return errorLabel
	default:
		return failLabel
	}
}

type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Printf("[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(res framework.TestResult) {
	if res.Status == framework.StatusSkip {
		return // already reported through TestSkipped
	}
	fmt.Printf("  %s %s (%s)\n", statusLabel(res.Status), res.ID, formatDuration(res.Duration))
	if len(res.Output) > 0 &&
		((res.Failed() && c.DebugOutputOnFailure) || (!res.Failed() && c.DebugOutputOnSuccess)) {
		res.Output.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		fmt.Printf("  %s %s\n", skipLabel, id)
	} else {
		fmt.Printf("  %s %s (%s)\n", skipLabel, id, reason)
	}
}
