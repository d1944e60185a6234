// Package crawlclean resets a web-crawler workspace to a clean state.
//
// It terminates stray interpreter processes left behind by a crawler run and
// deletes the crawler's known artifacts from the working directory. Every
// operation is best-effort: a target that no longer exists is treated as
// already cleaned, never as an error.
//
// # Quick Start
//
// Build a service and run the cleanup sequence:
//
//	svc, err := crawlclean.NewService()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, _ := svc.Clean(ctx)
//	fmt.Printf("killed %d processes, removed %d files\n",
//	    len(report.KilledPIDs), len(report.RemovedFiles))
//
// The sequence is fixed: kill processes owned by the current user whose
// command line contains "python3", remove the four known artifact files,
// then empty the Logs directory (the directory itself is kept).
//
// # Process Matching
//
// Matching is a literal substring test against the full command line, scoped
// to the invoking user. This reproduces the behavior of the shell pipeline
// the tool replaces (ps -u $USER | grep python3): anything with "python3"
// anywhere in its arguments matches, not only interpreter binaries.
//
// # Configuration
//
// Functional options customize the service:
//
//	svc, err := crawlclean.NewService(
//	    crawlclean.WithWorkDir("/srv/crawler"),
//	    crawlclean.WithReporter(func(line string) { fmt.Println(line) }),
//	)
//
// WithProcessTable swaps the process source, which tests use to avoid
// touching the real process table.
package crawlclean
