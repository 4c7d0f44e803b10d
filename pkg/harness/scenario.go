package harness

// Outcome mirrors the three ways a scenario run can end.
type Outcome int

const (
	OutcomeCompleted Outcome = iota
	OutcomeInterrupted
	OutcomeLaunchFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeInterrupted:
		return "interrupted"
	case OutcomeLaunchFailed:
		return "launch failed"
	}
	return "unknown"
}

// Scenario is the static configuration for one named debugging scenario.
// Values are immutable once built; callers pass them by value.
type Scenario struct {
	// Name selects the scenario on the command line.
	Name string
	// Label tags every output line from the target.
	Label string
	// Target is the program run under the debug adapter, resolved
	// relative to the launcher's base directory.
	Target string
	// Port is where the debug adapter listens for client attachment.
	// Ports are fixed per scenario so suite runs never collide.
	Port int
	// Guidance is printed verbatim after launch so an operator can
	// attach a debug client before anything interesting happens.
	Guidance []string
}

// RunResult captures the outcome of one scenario execution.
type RunResult struct {
	Scenario string
	Outcome  Outcome
	// Err holds the launch error when Outcome is OutcomeLaunchFailed.
	Err error
	// ExitCode is set when the process exit status was observed.
	ExitCode *int
}

// StreamKind identifies which standard stream a line came from.
type StreamKind int

const (
	StreamStdout StreamKind = iota
	StreamStderr
)

func (k StreamKind) String() string {
	if k == StreamStderr {
		return "stderr"
	}
	return "stdout"
}

// LogLine is one observed line of target output. Ephemeral; produced by a
// stream reader and handed straight to the sink.
type LogLine struct {
	Label string
	Kind  StreamKind
	Text  string
}
