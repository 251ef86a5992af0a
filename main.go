package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/unitforge/unitforge/coverage"
	"github.com/unitforge/unitforge/framework"
	"github.com/unitforge/unitforge/selftest"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	cfg, err := loadConfig(params.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
		os.Exit(2)
	}

	seed := params.seed
	if seed == 0 {
		seed = cfg.Seed
	}
	coverageEnabled := effectiveCoverage(params, cfg)
	jsonPath := params.jsonPath
	if jsonPath == "" {
		jsonPath = cfg.Output.JSON
	}

	cases, excluded := framework.SelectCases(selftest.Cases(), params.filters)
	if len(excluded) > 0 {
		fmt.Printf("Cases excluded by filter parameters: %s\n\n", strings.Join(excluded, ", "))
	}

	total := 0
	for _, c := range cases {
		total += len(c.Methods())
	}

	var logger framework.TestLogger
	var progress *progressLogger
	if params.progress {
		progress = newProgressLogger(total)
		logger = progress
	} else {
		logger = &ConsoleTestLogger{
			DebugOutputOnFailure: params.debug || params.debugAll,
			DebugOutputOnSuccess: params.debugAll,
		}
	}

	opts := framework.RunOptions{
		Seed:          seed,
		Logger:        logger,
		Coverage:      coverageEnabled,
		CoveragePaths: cfg.Coverage.Paths,
	}
	if coverageEnabled {
		// The binary ships only the scripted provider; an embedding tool
		// injects its real instrumentation backend here.
		opts.Provider = &coverage.ScriptedProvider{Report: sampleCoverageReport()}
	}

	fmt.Println("Running self-test suite")

	results, err := framework.RunCases(cases, opts)
	if progress != nil {
		progress.Finish()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %s\n", err)
		os.Exit(2)
	}

	fmt.Println()
	printResults(os.Stdout, results)

	if jsonPath != "" {
		if werr := writeJSON(jsonPath, results); werr != nil {
			fmt.Fprintf(os.Stderr, "Could not write %s: %s\n", jsonPath, werr)
			os.Exit(2)
		}
	}

	if !results.OK() {
		fmt.Printf("\nTo replay this execution order: %s\n", params.reproductionCommand(results.Seed))
		os.Exit(1)
	}
}

// effectiveCoverage applies the flags-over-config precedence: a -coverage
// flag given on the command line wins in either direction, otherwise the
// config decides.
func effectiveCoverage(params commandParams, cfg runConfig) bool {
	if params.coverageSet {
		return params.coverage
	}
	return cfg.Coverage.Enabled
}

func sampleCoverageReport() coverage.Raw {
	return coverage.Raw{
		"selftest/suite.go": {
			coverage.LineDead, coverage.LineCovered, coverage.LineCovered,
			coverage.LineMissed, coverage.LineCovered,
		},
	}
}
