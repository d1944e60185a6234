package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(realMain(os.Args[1:], DefaultEnv()))
}

// realMain dispatches subcommands and returns the process exit code.
// Running with no arguments performs the cleanup, so operators can invoke
// the tool bare.
func realMain(args []string, env *Environment) int {
	if len(args) == 0 {
		return runCleanCmd(nil, env)
	}

	switch args[0] {
	case "clean":
		return runCleanCmd(args[1:], env)
	case "analyze":
		return runAnalyzeCmd(args[1:], env)
	case "doctor":
		return runDoctorCmd(args[1:], env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "crawlclean %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(args[1:], env)
		return ExitSuccess
	}

	// Bare flags (e.g. "crawlclean -q") go to the default clean command.
	if strings.HasPrefix(args[0], "-") {
		return runCleanCmd(args, env)
	}

	fmt.Fprintf(env.Stderr, "unknown command %q\n\n", args[0])
	printUsage(env.Stderr)
	return ExitUsage
}
