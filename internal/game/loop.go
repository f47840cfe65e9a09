package game

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/driftworks/rockfall/internal/config"
	"github.com/driftworks/rockfall/internal/draw"
	"github.com/driftworks/rockfall/internal/events"
	"github.com/driftworks/rockfall/internal/input"
	"github.com/driftworks/rockfall/internal/object"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// scorePerAsteroid is what the external scorer awards per shot asteroid.
const scorePerAsteroid = 10

// Phase is the current screen of a session.
type Phase int

const (
	PhaseStart    Phase = iota // Title screen
	PhasePlaying               // Active run
	PhaseGameOver              // Run ended, show final score
)

// Options configures a game session.
type Options struct {
	// TermSize reports terminal dimensions; nil uses the local terminal.
	TermSize draw.TermSizeFunc
	// Logger receives domain events and state snapshots; nil keeps the
	// session silent.
	Logger *log.Logger
	// Rules for the simulation; the zero value loads defaults with env
	// overrides.
	Rules config.Rules
}

// Run drives a full game session with the standard Input → Update → Draw
// cycle at a fixed frame rate. It returns when the player quits or the
// input stream ends.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSize == nil {
		opts.TermSize = draw.DefaultTermSizeFunc
	}
	if opts.Rules == (config.Rules{}) {
		opts.Rules = config.RulesFromEnv()
	}

	var sink events.Sink
	if opts.Logger != nil {
		sink = events.LogSink{Logger: opts.Logger}
	}

	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := opts.TermSize()
	if err != nil {
		return err
	}
	canvas := draw.NewCanvas(termWidth, termHeight, opts.Rules.FieldWidth, opts.Rules.FieldHeight)

	world := NewWorld(opts.Rules, sink, nil)
	phase := PhaseStart
	score := 0

	lastTime := time.Now()

	for {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Quit {
			break
		}

		// Track terminal resizes.
		if tw, th, sizeErr := opts.TermSize(); sizeErr == nil {
			canvas.Resize(tw, th)
		}

		// ===== UPDATE PHASE =====
		switch phase {
		case PhaseStart, PhaseGameOver:
			if in.Space || in.Enter {
				input.Reset(stream)
				world = NewWorld(opts.Rules, sink, nil)
				score = 0
				phase = PhasePlaying
			}
		case PhasePlaying:
			report := world.Step(delta, in)
			score += report.AsteroidsShot * scorePerAsteroid
			if report.PlayerHit {
				input.Reset(stream)
				phase = PhaseGameOver
			}
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(world, canvas, w, phase, score); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// drawFrame clears the screen, draws the world, then the UI overlay.
func drawFrame(world *World, canvas *draw.Canvas, w io.Writer, phase Phase, score int) error {
	draw.ClearScreen(w)
	canvas.Clear()

	if phase != PhaseStart {
		ctx := object.DrawContext{Canvas: canvas}
		for _, d := range world.Drawables() {
			if err := d.Draw(ctx); err != nil {
				return err
			}
		}
		canvas.Render(w)
	}

	drawUI(w, canvas, phase, score)
	return nil
}
