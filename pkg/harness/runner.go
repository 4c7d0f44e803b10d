package harness

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Runner executes scenarios end-to-end: launch the target under the debug
// adapter, print attachment guidance, stream output, then wait for natural
// exit or an operator interrupt.
type Runner struct {
	launcher  *Launcher
	monitor   *Monitor
	sink      Sink
	interrupt <-chan os.Signal
	log       *zap.SugaredLogger
}

// NewRunner wires a Runner. interrupt carries operator stop requests; each
// received signal stops exactly the scenario running at that moment.
func NewRunner(launcher *Launcher, sink Sink, interrupt <-chan os.Signal, log *zap.SugaredLogger) *Runner {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Runner{
		launcher:  launcher,
		monitor:   NewMonitor(sink, log),
		sink:      sink,
		interrupt: interrupt,
		log:       log,
	}
}

// Run executes one scenario and reports how it ended. Launch failures are
// printed and returned, never retried.
func (r *Runner) Run(sc Scenario) RunResult {
	handle, err := r.launcher.Launch(sc.Target, sc.Port)
	if err != nil {
		r.sink.Notice("failed to start %s: %v", sc.Label, err)
		return RunResult{Scenario: sc.Name, Outcome: OutcomeLaunchFailed, Err: err}
	}

	r.sink.Guidance(r.banner(sc, handle))
	r.monitor.Attach(handle, sc.Label)

	select {
	case <-handle.Done():
		res := RunResult{Scenario: sc.Name, Outcome: OutcomeCompleted}
		if code, ok := handle.ExitCode(); ok {
			res.ExitCode = &code
		}
		return res
	case <-r.interrupt:
		r.sink.Notice("stopping %s...", sc.Label)
		if err := handle.Terminate(); err != nil {
			r.log.Warnw("terminate failed", "scenario", sc.Name, "pid", handle.Pid, "error", err)
		}
		// The stop request is graceful only; there is no escalation to a
		// forced kill, so this wait relies on the target honoring SIGTERM.
		<-handle.Done()
		res := RunResult{Scenario: sc.Name, Outcome: OutcomeInterrupted}
		if code, ok := handle.ExitCode(); ok {
			res.ExitCode = &code
		}
		return res
	}
}

// banner builds the operator guidance block: where the adapter listens,
// then the scenario's own suggested steps, verbatim.
func (r *Runner) banner(sc Scenario, h *ProcessHandle) []string {
	lines := []string{
		fmt.Sprintf("Started %s (pid %d)", sc.Label, h.Pid),
		fmt.Sprintf("Debug adapter listening on localhost:%d", sc.Port),
	}
	lines = append(lines, sc.Guidance...)
	return lines
}
