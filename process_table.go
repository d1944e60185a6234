package crawlclean

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// ProcessTable lists processes running on the operating system.
type ProcessTable interface {
	Processes(ctx context.Context) ([]Process, error)
}

// SystemProcessTable reads the real OS process table.
type SystemProcessTable struct{}

// NewSystemProcessTable returns a ProcessTable backed by the OS.
func NewSystemProcessTable() *SystemProcessTable {
	return &SystemProcessTable{}
}

// Processes returns every process visible to the current user. Entries whose
// owner or command line cannot be read (already exited, or owned by another
// user on a locked-down /proc) are skipped rather than failing the listing.
func (t *SystemProcessTable) Processes(ctx context.Context) ([]Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcessList, err)
	}

	result := make([]Process, 0, len(procs))
	for _, p := range procs {
		username, err := p.UsernameWithContext(ctx)
		if err != nil {
			continue
		}
		cmdline, err := p.CmdlineWithContext(ctx)
		if err != nil {
			continue
		}
		result = append(result, Process{
			PID:      p.Pid,
			Username: username,
			Cmdline:  cmdline,
		})
	}
	return result, nil
}

// FilteringProcessTable narrows another ProcessTable to processes owned by a
// single user whose command line contains a literal substring. The calling
// process is always excluded so the cleanup cannot kill itself.
type FilteringProcessTable struct {
	base     ProcessTable
	username string
	label    string
	selfPID  int32
}

// NewFilteringProcessTable wraps base with owner and command-line filters.
func NewFilteringProcessTable(base ProcessTable, username, label string) (*FilteringProcessTable, error) {
	if base == nil {
		return nil, ErrNilProcessTable
	}
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if label == "" {
		return nil, ErrEmptyLabel
	}
	return &FilteringProcessTable{
		base:     base,
		username: username,
		label:    label,
		selfPID:  int32(os.Getpid()),
	}, nil
}

// Processes returns the base table's entries that pass both filters.
func (t *FilteringProcessTable) Processes(ctx context.Context) ([]Process, error) {
	procs, err := t.base.Processes(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]Process, 0, len(procs))
	for _, p := range procs {
		if p.PID == t.selfPID {
			continue
		}
		if p.Username != t.username {
			continue
		}
		if !strings.Contains(p.Cmdline, t.label) {
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

// CurrentUsername resolves the invoking user's name.
func CurrentUsername() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCurrentUser, err)
	}
	return u.Username, nil
}
