package crawlclean

import (
	"context"
	"fmt"
)

// NewProcessCleaner returns a Cleaner that force-kills every process the
// table lists. Killed PIDs are appended to *killed when it is non-nil.
//
// A process that exits between listing and kill is not an error: the
// underlying kill ignores "no such process". An empty table is a no-op.
func NewProcessCleaner(table ProcessTable, killed *[]int32) Cleaner {
	return func(ctx context.Context) error {
		procs, err := table.Processes(ctx)
		if err != nil {
			return err
		}
		for _, p := range procs {
			if err := killProcess(int(p.PID)); err != nil {
				return fmt.Errorf("%w %d: %v", ErrProcessKill, p.PID, err)
			}
			if killed != nil {
				*killed = append(*killed, p.PID)
			}
		}
		return nil
	}
}
