package events

import (
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

type panicSink struct{}

func (panicSink) Event(string, ...any)   { panic("sink failure") }
func (panicSink) State(uint64, int, int) { panic("sink failure") }

func TestGuardToleratesNilSink(t *testing.T) {
	g := Guard{}
	g.Event(AsteroidSplit)
	g.State(1, 2, 3)
}

func TestGuardSwallowsPanics(t *testing.T) {
	g := Guard{Sink: panicSink{}}
	g.Event(PlayerHit, "reason", "test")
	g.State(1, 0, 0)
}

func TestLogSinkWritesStructuredEvents(t *testing.T) {
	var buf strings.Builder
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	sink := LogSink{Logger: logger}
	sink.Event(AsteroidShot, "radius", 60.0)
	sink.State(7, 3, 1)

	out := buf.String()
	if !strings.Contains(out, AsteroidShot) {
		t.Fatalf("log output missing event name: %q", out)
	}
	if !strings.Contains(out, "radius") {
		t.Fatalf("log output missing event context: %q", out)
	}
	if !strings.Contains(out, "tick") {
		t.Fatalf("log output missing state snapshot: %q", out)
	}
}
