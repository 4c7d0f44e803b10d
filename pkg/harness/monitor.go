package harness

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Monitor drains a handle's standard streams line by line and forwards each
// line, tagged with the scenario label, to the sink.
type Monitor struct {
	sink Sink
	log  *zap.SugaredLogger
}

func NewMonitor(sink Sink, log *zap.SugaredLogger) *Monitor {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Monitor{sink: sink, log: log}
}

// Attach starts one reader goroutine per stream. The readers share nothing
// and never block each other; each ends on its own when its stream closes.
// Callers do not need to join them: process exit implies both streams reach
// end-of-file.
func (m *Monitor) Attach(h *ProcessHandle, label string) {
	go m.drain(h.stdout, label, StreamStdout)
	go m.drain(h.stderr, label, StreamStderr)
}

func (m *Monitor) drain(r io.ReadCloser, label string, kind StreamKind) {
	defer r.Close()

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		// A final line without a terminator is still delivered.
		if text := strings.TrimRight(line, "\r\n"); text != "" || err == nil {
			m.sink.Emit(LogLine{Label: label, Kind: kind, Text: text})
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				// Read fault on one stream does not end the scenario;
				// the other stream and the process may still be live.
				m.log.Warnw("stream read fault", "label", label, "stream", kind, "error", err)
			}
			return
		}
	}
}
