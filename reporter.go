package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/unitforge/unitforge/framework"
)

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Truncate(time.Millisecond).String()
}

func printResults(out io.Writer, results framework.Results) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.AppendHeader(table.Row{"Case", "Method", "Status", "Duration", "Checks", "Coverage"})
	for _, res := range results.Tests {
		tw.AppendRow(table.Row{
			res.ID.Case,
			res.ID.Method,
			statusLabel(res.Status),
			formatDuration(res.Duration),
			res.Checks,
			coverageCell(res),
		})
	}
	tw.Render()

	fmt.Fprintf(out, "\n%d tests, %d failures (run %s, seed %d)\n",
		len(results.Tests), len(results.Failures), results.RunID, results.Seed)
}

func coverageCell(res framework.TestResult) string {
	covered, executable := res.Coverage.Counts()
	if executable == 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", float64(covered)/float64(executable)*100)
}

// writeJSON serializes the results for machine consumption.
func writeJSON(path string, results framework.Results) error {
	tests := ldvalue.ArrayBuild()
	for _, res := range results.Tests {
		cov := ldvalue.ObjectBuild()
		for file, lines := range res.Coverage {
			cov = cov.Set(file, ldvalue.String(lines))
		}
		entry := ldvalue.ObjectBuild().
			Set("case", ldvalue.String(res.ID.Case)).
			Set("method", ldvalue.String(res.ID.Method)).
			Set("status", ldvalue.String(string(res.Status))).
			Set("durationMs", ldvalue.Float64(float64(res.Duration.Milliseconds()))).
			Set("message", ldvalue.String(res.Message)).
			Set("checks", ldvalue.Int(res.Checks)).
			Set("coverage", cov.Build())
		if res.Link != "" {
			entry = entry.Set("link", ldvalue.String(res.Link))
		}
		tests = tests.Add(entry.Build())
	}
	doc := ldvalue.ObjectBuild().
		Set("runId", ldvalue.String(results.RunID.String())).
		Set("seed", ldvalue.String(strconv.FormatInt(results.Seed, 10))).
		Set("failures", ldvalue.Int(len(results.Failures))).
		Set("tests", tests.Build()).
		Build()
	return os.WriteFile(path, []byte(doc.JSONString()), 0o644)
}
