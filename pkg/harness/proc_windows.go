//go:build windows

package harness

import "os/exec"

func setProcAttr(cmd *exec.Cmd) {}

// Windows has no SIGTERM equivalent for console children started this way;
// Kill is the best available stop request.
func terminateProcess(cmd *exec.Cmd, pid int) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
