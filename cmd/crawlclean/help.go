package main

import (
	"fmt"
	"io"

	crawlclean "github.com/alnah/go-crawlclean"
)

// printUsage writes the top-level usage text.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "crawlclean - reset a crawler workspace")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  crawlclean [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  clean       Kill stray interpreter processes and delete artifacts (default)")
	fmt.Fprintln(w, "  analyze     Report politeness statistics from crawler logs")
	fmt.Fprintln(w, "  doctor      Diagnose the workspace without changing it")
	fmt.Fprintln(w, "  version     Print version")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'crawlclean help <command>' for command details.")
}

// printCleanUsage writes usage for the clean command.
func printCleanUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: crawlclean clean [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Kills processes owned by the current user whose command line contains")
	fmt.Fprintf(w, "%q, removes the fixed artifact files, and empties %s/.\n",
		crawlclean.InterpreterLabel, crawlclean.LogDirName)
	fmt.Fprintln(w, "Targets that do not exist are skipped. Always exits 0.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -q, --quiet     suppress progress output")
	fmt.Fprintln(w, "  -v, --verbose   show what was killed and removed")
}

// printAnalyzeUsage writes usage for the analyze command.
func printAnalyzeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: crawlclean analyze [pattern] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Analyzes crawler worker logs (default pattern %q) for per-domain\n", defaultLogPattern)
	fmt.Fprintln(w, "request statistics and politeness violations. Run it before clean:")
	fmt.Fprintln(w, "clean deletes the logs this reads.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config string    analyzer config file (YAML)")
	fmt.Fprintln(w, "      --min-delay-ms int politeness threshold in ms (0 = config default)")
	fmt.Fprintln(w, "      --json             emit the report as JSON")
}

// printDoctorUsage writes usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: crawlclean doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Reports what a cleanup would touch: matching processes, artifact files,")
	fmt.Fprintln(w, "log directory contents. Read-only.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  --json   emit diagnostics as JSON")
}

// runHelp handles the help command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "clean":
		printCleanUsage(env.Stdout)
	case "analyze":
		printAnalyzeUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: crawlclean version")
	case "help":
		printUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "unknown command %q\n\n", args[0])
		printUsage(env.Stderr)
	}
}
