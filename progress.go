package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/unitforge/unitforge/framework"
)

// progressLogger is a streaming observer that renders a live progress bar
// instead of per-test lines.
type progressLogger struct {
	bar     *progressbar.ProgressBar
	passed  int
	failed  int
	skipped int
}

func newProgressLogger(total int) *progressLogger {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription(progressDescription(0, 0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
	)
	return &progressLogger{bar: bar}
}

func progressDescription(passed, failed, skipped int) string {
	return color.CyanString("running: ") +
		color.GreenString("[pass: %d", passed) +
		" | " +
		color.RedString("fail: %d", failed) +
		" | " +
		color.YellowString("skip: %d]", skipped)
}

func (p *progressLogger) TestStarted(framework.TestID)         {}
func (p *progressLogger) TestError(framework.TestID, error)    {}
func (p *progressLogger) TestSkipped(framework.TestID, string) {}

func (p *progressLogger) TestFinished(res framework.TestResult) {
	switch {
	case res.Status == framework.StatusSkip:
		p.skipped++
	case res.Failed():
		p.failed++
	default:
		p.passed++
	}
	_ = p.bar.Add(1)
	p.bar.Describe(progressDescription(p.passed, p.failed, p.skipped))
}

func (p *progressLogger) Finish() {
	_ = p.bar.Finish()
}
