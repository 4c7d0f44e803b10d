package harness

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

// shellAdapter runs the scenario target as a shell snippet, letting tests
// exercise the launch path without a real debug adapter.
var shellAdapter = AdapterSpec{Bin: "sh", Args: []string{"-c", "{target}"}}

// directAdapter executes the target path itself, so a missing target makes
// the spawn fail.
var directAdapter = AdapterSpec{Bin: "{target}"}

func nopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// memorySink records everything emitted so tests can assert on it.
type memorySink struct {
	mu       sync.Mutex
	lines    []LogLine
	guidance []string
	notices  []string
}

func (s *memorySink) Emit(line LogLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
}

func (s *memorySink) Guidance(lines []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guidance = append(s.guidance, lines...)
}

func (s *memorySink) Notice(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, fmt.Sprintf(format, args...))
}

func (s *memorySink) snapshot() []LogLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]LogLine(nil), s.lines...)
}

func (s *memorySink) noticesContain(sub string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notices {
		if strings.Contains(n, sub) {
			return true
		}
	}
	return false
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, d time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met within %v: %s", d, msg)
}
