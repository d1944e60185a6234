//go:build windows

package crawlclean

import (
	"github.com/shirou/gopsutil/v4/process"
)

// killProcess terminates a single process. A process that already exited is
// not an error; Windows has no ESRCH, so a failed handle lookup is treated
// the same way.
func killProcess(pid int) error {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		// PID no longer in the process table.
		return nil
	}
	return p.Kill()
}
