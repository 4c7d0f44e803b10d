package harness

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdapterSpec describes how to wrap a target program in a debug-adapter
// listener. Bin and Args may reference {port} and {target}; if no token
// mentions {target} the target path is appended as the final argument.
type AdapterSpec struct {
	Bin  string
	Args []string
}

// DelveAdapter runs the target under a headless Delve listener bound to
// localhost:<port>, waiting for a debug client to attach.
func DelveAdapter(bin string) AdapterSpec {
	if bin == "" {
		bin = "dlv"
	}
	return AdapterSpec{
		Bin: bin,
		Args: []string{
			"debug",
			"--headless",
			"--listen=localhost:{port}",
			"--api-version=2",
			"--accept-multiclient",
			"{target}",
		},
	}
}

func (a AdapterSpec) command(target string, port int) (string, []string) {
	expand := func(s string) string {
		s = strings.ReplaceAll(s, "{port}", strconv.Itoa(port))
		return strings.ReplaceAll(s, "{target}", target)
	}
	seen := strings.Contains(a.Bin, "{target}")
	args := make([]string, 0, len(a.Args)+1)
	for _, arg := range a.Args {
		if strings.Contains(arg, "{target}") {
			seen = true
		}
		args = append(args, expand(arg))
	}
	if !seen {
		args = append(args, target)
	}
	return expand(a.Bin), args
}

// LaunchError reports a failed spawn attempt. The scenario is abandoned,
// never retried.
type LaunchError struct {
	Target string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %s: %v", e.Target, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// Launcher spawns target programs under the configured debug adapter.
type Launcher struct {
	adapter AdapterSpec
	baseDir string
	log     *zap.SugaredLogger
}

// NewLauncher creates a Launcher. All spawned processes run with their
// working directory pinned to baseDir so relative target paths resolve the
// same way regardless of where the harness itself was started.
func NewLauncher(adapter AdapterSpec, baseDir string, log *zap.SugaredLogger) *Launcher {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Launcher{adapter: adapter, baseDir: baseDir, log: log}
}

// Launch spawns target under the debug adapter listening on
// localhost:<port> and returns a live handle. On spawn failure it returns
// a *LaunchError wrapping the OS error.
func (l *Launcher) Launch(target string, port int) (*ProcessHandle, error) {
	bin, args := l.adapter.command(target, port)

	cmd := exec.Command(bin, args...)
	cmd.Dir = l.baseDir
	setProcAttr(cmd)

	// Pipes are wired by hand instead of StdoutPipe so the waiter's
	// cmd.Wait never closes a read end a stream reader is still draining.
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return nil, &LaunchError{Target: target, Err: err}
	}
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		stdoutR.Close()
		stdoutW.Close()
		return nil, &LaunchError{Target: target, Err: err}
	}
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW

	handle := &ProcessHandle{
		ID:     uuid.NewString(),
		stdout: stdoutR,
		stderr: stderrR,
		cmd:    cmd,
		done:   make(chan struct{}),
		alive:  true,
	}

	l.log.Debugw("starting target", "id", handle.ID, "target", target, "port", port)
	err = cmd.Start()
	// The child owns the write ends now; the parent copies must go either
	// way so readers see EOF when the child exits.
	stdoutW.Close()
	stderrW.Close()
	if err != nil {
		stdoutR.Close()
		stderrR.Close()
		l.log.Warnw("spawn failed", "target", target, "error", err)
		return nil, &LaunchError{Target: target, Err: err}
	}
	handle.Pid = cmd.Process.Pid

	// Waiter: reap the process and settle the handle exactly once.
	go func() {
		err := cmd.Wait()

		var exitCode *int
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code := exitErr.ExitCode()
				exitCode = &code
			}
			l.log.Debugw("target finished", "id", handle.ID, "error", err)
		} else {
			code := 0
			exitCode = &code
			l.log.Debugw("target finished", "id", handle.ID)
		}

		handle.markStopped(exitCode)
	}()

	return handle, nil
}
