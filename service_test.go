package crawlclean_test

// Notes:
// - Process entries in fakes use the real current username so the service's
//   owner filter keeps them, and impossible PIDs so no real process is hit.

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	crawlclean "github.com/alnah/go-crawlclean"
)

// seedWorkspace populates a temp dir with every cleanup target.
func seedWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range crawlclean.ArtifactFiles {
		writeFile(t, filepath.Join(dir, name))
	}
	logs := filepath.Join(dir, crawlclean.LogDirName)
	if err := os.Mkdir(logs, 0o750); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(logs, "Worker-1.log"))
	writeFile(t, filepath.Join(logs, "Worker-2.log"))
	return dir
}

// ---------------------------------------------------------------------------
// TestServiceClean - Full Cleanup Sequence
// ---------------------------------------------------------------------------

func TestServiceClean_FullWorkspace(t *testing.T) {
	t.Parallel()

	dir := seedWorkspace(t)
	username, err := crawlclean.CurrentUsername()
	if err != nil {
		t.Fatalf("CurrentUsername() error = %v", err)
	}
	table := &fakeTable{procs: []crawlclean.Process{
		{PID: 999999980, Username: username, Cmdline: "python3 launch.py"},
		{PID: 999999981, Username: "someone-else", Cmdline: "python3 launch.py"},
	}}

	var lines []string
	svc, err := crawlclean.NewService(
		crawlclean.WithWorkDir(dir),
		crawlclean.WithProcessTable(table),
		crawlclean.WithReporter(func(line string) { lines = append(lines, line) }),
	)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	report, err := svc.Clean(context.Background())
	if err != nil {
		t.Fatalf("Clean() = %v, want nil", err)
	}

	// Only the current user's process is killed.
	if len(report.KilledPIDs) != 1 || report.KilledPIDs[0] != 999999980 {
		t.Errorf("KilledPIDs = %v, want [999999980]", report.KilledPIDs)
	}
	if len(report.RemovedFiles) != len(crawlclean.ArtifactFiles) {
		t.Errorf("RemovedFiles = %v, want all %d artifacts", report.RemovedFiles, len(crawlclean.ArtifactFiles))
	}
	if report.ClearedLogs != 2 {
		t.Errorf("ClearedLogs = %d, want 2", report.ClearedLogs)
	}

	// Artifacts gone, log directory kept but empty.
	for _, name := range crawlclean.ArtifactFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("%s still exists after Clean()", name)
		}
	}
	entries, err := os.ReadDir(filepath.Join(dir, crawlclean.LogDirName))
	if err != nil {
		t.Fatalf("log directory removed, want kept: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("log directory has %d entries, want 0", len(entries))
	}

	// Progress lines bracket the work.
	if len(lines) != 3 {
		t.Fatalf("reporter got %d lines, want 3: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], crawlclean.InterpreterLabel) {
		t.Errorf("first progress line %q does not name the interpreter", lines[0])
	}
	if lines[len(lines)-1] != "Cleanup complete." {
		t.Errorf("last progress line = %q, want completion message", lines[len(lines)-1])
	}
}

func TestServiceClean_EmptyWorkspaceIsIdempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir() // nothing to clean at all
	svc, err := crawlclean.NewService(
		crawlclean.WithWorkDir(dir),
		crawlclean.WithProcessTable(&fakeTable{}),
	)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	for run := 1; run <= 2; run++ {
		report, err := svc.Clean(context.Background())
		if err != nil {
			t.Fatalf("run %d: Clean() = %v, want nil", run, err)
		}
		if len(report.KilledPIDs) != 0 || len(report.RemovedFiles) != 0 || report.ClearedLogs != 0 {
			t.Errorf("run %d: report = %+v, want all-zero", run, report)
		}
	}
}

func TestServiceClean_ProcessListFailureStillCleansFiles(t *testing.T) {
	t.Parallel()

	dir := seedWorkspace(t)
	svc, err := crawlclean.NewService(
		crawlclean.WithWorkDir(dir),
		crawlclean.WithProcessTable(&fakeTable{err: crawlclean.ErrProcessList}),
	)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	report, cleanErr := svc.Clean(context.Background())
	if cleanErr == nil {
		t.Error("Clean() = nil, want the listing error surfaced to the caller")
	}
	// Files are removed even though the process step failed.
	if len(report.RemovedFiles) != len(crawlclean.ArtifactFiles) {
		t.Errorf("RemovedFiles = %v, want all artifacts despite process error", report.RemovedFiles)
	}
	if report.ClearedLogs != 2 {
		t.Errorf("ClearedLogs = %d, want 2 despite process error", report.ClearedLogs)
	}
}

func TestServiceUsername(t *testing.T) {
	t.Parallel()

	svc, err := crawlclean.NewService(crawlclean.WithProcessTable(&fakeTable{}))
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	want, err := crawlclean.CurrentUsername()
	if err != nil {
		t.Fatalf("CurrentUsername() error = %v", err)
	}
	if svc.Username() != want {
		t.Errorf("Username() = %q, want %q", svc.Username(), want)
	}
}
