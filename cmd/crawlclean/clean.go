package main

import (
	"context"
	"errors"
	"fmt"

	crawlclean "github.com/alnah/go-crawlclean"
)

// Sentinel errors for CLI operations.
var (
	ErrTooManyArgs = errors.New("unexpected argument")
	ErrNoLogFiles  = errors.New("no log files found")
)

// runCleanCmd executes the cleanup routine and returns an exit code.
//
// The routine itself is best-effort by contract: targets that are already
// gone are success, and failures on individual targets are suppressed so
// cleanup never blocks whatever the operator does next. The command exits
// non-zero only for usage mistakes or when the current user cannot be
// resolved at all.
func runCleanCmd(args []string, env *Environment) int {
	flags, rest, err := parseCleanFlags(args)
	if err != nil {
		return ExitUsage
	}
	if len(rest) > 0 {
		fmt.Fprintf(env.Stderr, "%v: %q\n", ErrTooManyArgs, rest[0])
		return ExitUsage
	}

	reporter := func(line string) {
		if !flags.quiet {
			fmt.Fprintln(env.Stdout, line)
		}
	}

	opts := []crawlclean.Option{
		crawlclean.WithWorkDir(env.WorkDir),
		crawlclean.WithReporter(reporter),
	}
	if env.Table != nil {
		opts = append(opts, crawlclean.WithProcessTable(env.Table))
	}

	svc, err := crawlclean.NewService(opts...)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitGeneral
	}

	report, cleanErr := svc.Clean(context.Background())

	if flags.verbose {
		fmt.Fprintf(env.Stdout, "Killed %d process(es)", len(report.KilledPIDs))
		if len(report.KilledPIDs) > 0 {
			fmt.Fprintf(env.Stdout, ": %v", report.KilledPIDs)
		}
		fmt.Fprintln(env.Stdout)
		fmt.Fprintf(env.Stdout, "Removed %d file(s)\n", len(report.RemovedFiles))
		fmt.Fprintf(env.Stdout, "Cleared %d log entr(ies)\n", report.ClearedLogs)
		if cleanErr != nil {
			fmt.Fprintf(env.Stderr, "warning: %v\n", cleanErr)
		}
	}

	// Best-effort contract: partial failures never change the exit code.
	return ExitSuccess
}
