package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cleanFlags holds flags for the clean command.
type cleanFlags struct {
	quiet   bool
	verbose bool
}

// analyzeFlags holds flags for the analyze command.
type analyzeFlags struct {
	config     string
	minDelayMs int
	jsonOutput bool
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	jsonOutput bool
}

// parseCleanFlags parses clean command flags and returns positional args.
func parseCleanFlags(args []string) (*cleanFlags, []string, error) {
	fs := flag.NewFlagSet("clean", flag.ContinueOnError)
	f := &cleanFlags{}

	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show what was killed and removed")

	fs.Usage = func() { printCleanUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseAnalyzeFlags parses analyze command flags and returns positional args.
func parseAnalyzeFlags(args []string) (*analyzeFlags, []string, error) {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	f := &analyzeFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "analyzer config file (YAML)")
	fs.IntVar(&f.minDelayMs, "min-delay-ms", 0, "politeness threshold in ms (0 = config default)")
	fs.BoolVar(&f.jsonOutput, "json", false, "emit the report as JSON")

	fs.Usage = func() { printAnalyzeUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string) (*doctorFlags, error) {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	f := &doctorFlags{}

	fs.BoolVar(&f.jsonOutput, "json", false, "emit diagnostics as JSON")

	fs.Usage = func() { printDoctorUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
