package harness

import (
	"fmt"
	"io"
	"sync"
)

// Sink receives everything the harness shows the operator: labeled target
// output, un-tagged guidance blocks, and one-line notices.
type Sink interface {
	Emit(line LogLine)
	Guidance(lines []string)
	Notice(format string, args ...any)
}

// ConsoleSink writes to a single stream, serializing concurrent writers so
// lines from different stream readers never interleave mid-line.
type ConsoleSink struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

func (s *ConsoleSink) Emit(line LogLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch line.Kind {
	case StreamStderr:
		fmt.Fprintf(s.out, "[%s ERROR] %s\n", line.Label, line.Text)
	default:
		fmt.Fprintf(s.out, "[%s] %s\n", line.Label, line.Text)
	}
}

func (s *ConsoleSink) Guidance(lines []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range lines {
		fmt.Fprintln(s.out, l)
	}
}

func (s *ConsoleSink) Notice(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format+"\n", args...)
}
