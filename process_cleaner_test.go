package crawlclean_test

// Notes:
// - These tests feed the cleaner PIDs that cannot exist (beyond pid_max), so
//   the underlying kill hits its "already exited" path instead of touching a
//   real process. That path is exactly the suppression contract under test.

import (
	"context"
	"errors"
	"testing"

	crawlclean "github.com/alnah/go-crawlclean"
)

// ---------------------------------------------------------------------------
// TestProcessCleaner - Best-effort Termination
// ---------------------------------------------------------------------------

func TestProcessCleaner_NoMatchesIsNoOp(t *testing.T) {
	t.Parallel()

	var killed []int32
	cleaner := crawlclean.NewProcessCleaner(&fakeTable{}, &killed)

	if err := cleaner(context.Background()); err != nil {
		t.Fatalf("cleaner() = %v, want nil for empty table", err)
	}
	if len(killed) != 0 {
		t.Errorf("killed = %v, want empty", killed)
	}
}

func TestProcessCleaner_AlreadyExitedIsSuppressed(t *testing.T) {
	t.Parallel()

	table := &fakeTable{procs: []crawlclean.Process{
		{PID: 999999990, Username: "crawler", Cmdline: "python3 launch.py"},
		{PID: 999999991, Username: "crawler", Cmdline: "python3 worker.py"},
	}}

	var killed []int32
	if err := crawlclean.NewProcessCleaner(table, &killed)(context.Background()); err != nil {
		t.Fatalf("cleaner() = %v, want nil for vanished processes", err)
	}
	if len(killed) != 2 {
		t.Errorf("killed %d processes, want 2 recorded", len(killed))
	}
}

func TestProcessCleaner_PropagatesListError(t *testing.T) {
	t.Parallel()

	errList := errors.New("proc unavailable")
	cleaner := crawlclean.NewProcessCleaner(&fakeTable{err: errList}, nil)

	if err := cleaner(context.Background()); !errors.Is(err, errList) {
		t.Errorf("cleaner() = %v, want %v", err, errList)
	}
}

func TestProcessCleaner_NilRecorder(t *testing.T) {
	t.Parallel()

	table := &fakeTable{procs: []crawlclean.Process{
		{PID: 999999992, Username: "crawler", Cmdline: "python3"},
	}}

	if err := crawlclean.NewProcessCleaner(table, nil)(context.Background()); err != nil {
		t.Errorf("cleaner() with nil recorder = %v, want nil", err)
	}
}
