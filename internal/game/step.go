package game

import (
	"time"

	"github.com/driftworks/rockfall/internal/events"
	"github.com/driftworks/rockfall/internal/object"
)

// Report summarizes the outcomes of one simulation tick for external
// scoring and flow control. The engine itself keeps no score.
type Report struct {
	PlayerHit     bool // The run ended this tick
	AsteroidsShot int  // Scored shot-asteroid collisions this tick
}

// Step advances the simulation by one tick: spawn scheduling, the movement
// pass, then collisions. Ship-vs-asteroid is resolved before
// shot-vs-asteroid, so a run-ending hit takes precedence within the frame
// and no further checks run after it.
//
// Collision passes iterate snapshots taken before any mutation and re-check
// registry membership per entity, so an asteroid destroyed earlier in the
// tick is never processed again and entities spawned mid-tick join the next
// tick.
func (w *World) Step(delta time.Duration, in object.Input) Report {
	var report Report

	// Large steps (debugger pauses, stalled terminals) would teleport
	// entities through each other.
	if maxStep := time.Duration(w.Rules.MaxDelta * float64(time.Second)); delta > maxStep {
		delta = maxStep
	}
	w.tick++

	ctx := object.UpdateContext{
		Delta:    delta,
		Input:    in,
		Rules:    w.Rules,
		Registry: w,
		Events:   w.Events,
		Rand:     w.Rand,
	}

	// Spawn scheduling.
	w.Field.Update(ctx)

	// Movement pass.
	moving := append([]object.Object(nil), w.updatables...)
	for _, obj := range moving {
		if !w.Contains(obj) {
			continue
		}
		remove, _ := obj.Update(ctx)
		if remove {
			w.Remove(obj)
		}
	}

	w.Events.State(w.tick, len(w.asteroids), len(w.shots))

	asteroids := append([]*object.Asteroid(nil), w.asteroids...)

	// Ship-vs-asteroid: fatal, checked first.
	if w.Ship != nil {
		for _, a := range asteroids {
			if !w.Contains(a) {
				continue
			}
			if a.CollidesWith(&w.Ship.Body) {
				w.Events.Event(events.PlayerHit)
				report.PlayerHit = true
				return report
			}
		}
	}

	// Shot-vs-asteroid.
	shots := append([]*object.Shot(nil), w.shots...)
	for _, a := range asteroids {
		if !w.Contains(a) {
			continue
		}
		for _, s := range shots {
			if !w.Contains(s) {
				continue
			}
			if a.CollidesWith(&s.Body) {
				w.Events.Event(events.AsteroidShot, "radius", a.Radius)
				report.AsteroidsShot++
				a.Split(ctx)
				w.Remove(s)
				break // The asteroid is gone; remaining shots keep flying.
			}
		}
	}

	return report
}
