//go:build !windows

package harness

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// setProcAttr puts the target into its own process group so a stop request
// reaches the adapter and everything it forked.
func setProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// terminateProcess delivers SIGTERM to the process group (negative pid).
// Falls back to signalling the single process when the group is gone.
func terminateProcess(cmd *exec.Cmd, pid int) error {
	if err := unix.Kill(-pid, unix.SIGTERM); err != nil {
		if cmd.Process != nil {
			return cmd.Process.Signal(unix.SIGTERM)
		}
		return err
	}
	return nil
}
