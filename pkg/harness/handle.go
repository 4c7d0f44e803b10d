package harness

import (
	"io"
	"os/exec"
	"sync"
)

// ProcessHandle represents one spawned target program. It is owned by the
// scenario run that created it; the stream monitor only borrows the two
// readers. Once Alive reports false no further reads are started.
type ProcessHandle struct {
	// ID identifies this launch, not the OS process.
	ID  string
	Pid int

	stdout io.ReadCloser
	stderr io.ReadCloser

	cmd  *exec.Cmd
	done chan struct{}

	mu       sync.RWMutex
	alive    bool
	exitCode *int
}

// Alive reports whether the process has not yet been reaped.
func (h *ProcessHandle) Alive() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.alive
}

// ExitCode returns the observed exit status. ok is false while the process
// is still running or when it ended without an exit status (e.g. a spawn
// race or non-exit error from wait).
func (h *ProcessHandle) ExitCode() (int, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.exitCode == nil {
		return 0, false
	}
	return *h.exitCode, true
}

// Done is closed once the process has been reaped.
func (h *ProcessHandle) Done() <-chan struct{} {
	return h.done
}

// Terminate sends a graceful stop request to the process (SIGTERM to its
// process group on Unix). It does not escalate to a forced kill; a target
// that ignores the signal will keep the caller waiting on Done.
func (h *ProcessHandle) Terminate() error {
	h.mu.RLock()
	alive := h.alive
	h.mu.RUnlock()
	if !alive {
		return nil
	}
	return terminateProcess(h.cmd, h.Pid)
}

func (h *ProcessHandle) markStopped(exitCode *int) {
	h.mu.Lock()
	h.alive = false
	h.exitCode = exitCode
	h.mu.Unlock()
	close(h.done)
}
