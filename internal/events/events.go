// Package events decouples the simulation from scoring, metrics and logging
// consumers. The engine writes named events and per-tick state snapshots to a
// Sink; a sink failure must never abort a simulation tick, so engine-facing
// sinks are wrapped in Guard.
package events

import "github.com/charmbracelet/log"

// Names of the domain events the engine emits.
const (
	AsteroidSplit = "asteroid_split"
	AsteroidShot  = "asteroid_shot"
	PlayerHit     = "player_hit"
)

// Sink receives discrete domain events and a state snapshot once per tick.
// Implementations must not block.
type Sink interface {
	Event(name string, keyvals ...any)
	State(tick uint64, asteroids, shots int)
}

// Nop is a Sink that discards everything.
type Nop struct{}

func (Nop) Event(string, ...any)   {}
func (Nop) State(uint64, int, int) {}

// LogSink writes events as structured records.
type LogSink struct {
	Logger *log.Logger
}

// Event logs a domain event with its key/value context.
func (s LogSink) Event(name string, keyvals ...any) {
	s.Logger.Info(name, keyvals...)
}

// State logs the per-tick snapshot at debug level to keep the
// once-per-frame volume out of normal output.
func (s LogSink) State(tick uint64, asteroids, shots int) {
	s.Logger.Debug("state", "tick", tick, "asteroids", asteroids, "shots", shots)
}

// Guard wraps a Sink so that a panicking or nil consumer cannot abort the
// simulation tick that emitted the event.
type Guard struct {
	Sink Sink
}

func (g Guard) Event(name string, keyvals ...any) {
	if g.Sink == nil {
		return
	}
	defer func() { _ = recover() }()
	g.Sink.Event(name, keyvals...)
}

func (g Guard) State(tick uint64, asteroids, shots int) {
	if g.Sink == nil {
		return
	}
	defer func() { _ = recover() }()
	g.Sink.State(tick, asteroids, shots)
}
