package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	crawlclean "github.com/alnah/go-crawlclean"
	"github.com/alnah/go-crawlclean/internal/config"
	"github.com/alnah/go-crawlclean/internal/logparse"
)

// defaultLogPattern matches the worker logs the cleanup would delete.
var defaultLogPattern = filepath.Join(crawlclean.LogDirName, "*.log")

// runAnalyzeCmd executes the analyze command and returns an exit code.
// It reads crawler worker logs (before a cleanup wipes them) and reports
// per-domain request statistics and politeness violations.
func runAnalyzeCmd(args []string, env *Environment) int {
	flags, rest, err := parseAnalyzeFlags(args)
	if err != nil {
		return ExitUsage
	}
	if len(rest) > 1 {
		fmt.Fprintf(env.Stderr, "%v: %q\n", ErrTooManyArgs, rest[1])
		return ExitUsage
	}

	report, err := analyze(flags, rest, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	if flags.jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report)
	} else {
		printAnalysisReport(env.Stdout, report)
	}
	return ExitSuccess
}

// analyze resolves config, globs log files, and runs the analyzer.
func analyze(flags *analyzeFlags, rest []string, env *Environment) (*logparse.Report, error) {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return nil, err
		}
	}
	if flags.minDelayMs > 0 {
		cfg.MinDelayMs = flags.minDelayMs
	}

	pattern := defaultLogPattern
	if len(rest) == 1 {
		pattern = rest[0]
	}
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(env.WorkDir, pattern)
	}

	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad log pattern %q: %w", pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w matching %q", ErrNoLogFiles, pattern)
	}
	sort.Strings(files)

	analyzer := logparse.NewAnalyzer(cfg)
	for _, file := range files {
		if err := addLogFile(analyzer, file); err != nil {
			return nil, err
		}
	}
	return analyzer.Report(), nil
}

// addLogFile feeds a single log file into the analyzer.
func addLogFile(analyzer *logparse.Analyzer, path string) error {
	f, err := os.Open(path) // #nosec G304 -- path comes from the operator's own glob
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer func() { _ = f.Close() }()

	return analyzer.AddFile(filepath.Base(path), f)
}

// printAnalysisReport writes the human-readable report.
func printAnalysisReport(w io.Writer, r *logparse.Report) {
	fmt.Fprintln(w, "Politeness Analysis Report")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Domain Statistics:")

	for _, g := range r.Groups {
		fmt.Fprintf(w, "\n%s:\n", g.Name)
		fmt.Fprintf(w, "  Total Requests: %d\n", g.Requests)
		fmt.Fprintf(w, "  Average Delay: %.3fs\n", g.AvgDelay.Seconds())
		fmt.Fprintf(w, "  Minimum Delay: %.3fs\n", g.MinDelay.Seconds())
		fmt.Fprintf(w, "  Maximum Delay: %.3fs\n", g.MaxDelay.Seconds())
	}

	if r.TotalViolations == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No politeness violations found.")
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Politeness Violations:")
	for _, g := range r.Groups {
		if g.ViolationCount == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s: %d violation(s)\n", g.Name, g.ViolationCount)
		for _, v := range g.Violations {
			fmt.Fprintf(w, "  %s - %s\n", v.Time.Format("2006-01-02 15:04:05"), v.URL)
			fmt.Fprintf(w, "    Delay: %.3fs (in %s)\n", v.Delay.Seconds(), v.Source)
		}
	}
}
