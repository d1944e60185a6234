//go:build !windows

package crawlclean

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

// killProcess sends SIGKILL to a single process. ESRCH means the process
// already exited, which counts as success for a best-effort cleanup.
func killProcess(pid int) error {
	if err := unix.Kill(pid, syscall.SIGKILL); err != nil && !errors.Is(err, syscall.ESRCH) {
		return err
	}
	return nil
}
