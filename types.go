package crawlclean

// Fixed workspace contract. These values identify what a crawler run leaves
// behind and must stay exactly as the crawler writes them.
const (
	// InterpreterLabel is the literal substring that identifies target
	// processes. The match is intentionally broad: it hits any command
	// line containing the label, exactly like the grep it replaces.
	InterpreterLabel = "python3"

	// LogDirName is the directory whose contents are removed. The
	// directory itself survives the cleanup.
	LogDirName = "Logs"
)

// ArtifactFiles lists the files removed from the working directory, by name.
var ArtifactFiles = []string{
	"crawler_analytics.txt",
	"longest_page.txt",
	"output.log",
	"frontier.shelve",
}

// Process is a single entry from the OS process table, reduced to the fields
// the cleanup needs.
type Process struct {
	PID      int32  // OS process identifier
	Username string // owning user, as reported by the OS
	Cmdline  string // full command line, space-joined
}

// Report summarizes one cleanup run. Best-effort steps record what they
// actually did, so callers can surface counts without re-reading the OS.
type Report struct {
	KilledPIDs   []int32  // processes that received SIGKILL
	RemovedFiles []string // artifact files that existed and were removed
	ClearedLogs  int      // entries removed from the log directory
}
