// Package game owns the simulation state and the per-frame driver: the
// world registry, the tick step, and the terminal game loop around them.
package game

import (
	"math/rand"
	"time"

	"github.com/driftworks/rockfall/internal/config"
	"github.com/driftworks/rockfall/internal/events"
	"github.com/driftworks/rockfall/internal/object"
)

// World is the live-entity registry and simulation state. Entities are
// partitioned into the overlapping typed subsets the update, collision and
// draw passes iterate; membership is assigned by kind at insert and removal
// drops an entity from every subset at once. The world is the sole owner of
// entity lifetime.
type World struct {
	Rules config.Rules
	Field *object.AsteroidField
	Ship  *object.Ship

	// Guarded sink: a failing consumer can never abort a tick.
	Events events.Sink
	Rand   *rand.Rand

	asteroids  []*object.Asteroid
	shots      []*object.Shot
	updatables []object.Object
	drawables  []object.Drawable
	members    map[object.Object]struct{}

	tick uint64
}

// NewWorld creates a world with a ship at the field center and an asteroid
// field ready to spawn. A nil sink discards events; a nil rng seeds from
// the clock.
func NewWorld(rules config.Rules, sink events.Sink, rng *rand.Rand) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	w := &World{
		Rules:   rules,
		Field:   object.NewAsteroidField(),
		Events:  events.Guard{Sink: sink},
		Rand:    rng,
		members: make(map[object.Object]struct{}),
	}

	w.Ship = object.NewShip(rules.FieldWidth/2, rules.FieldHeight/2, rules)
	w.Add(w.Ship)

	return w
}

// Add registers an entity in every subset its kind belongs to. Adding a
// live entity twice is a no-op.
func (w *World) Add(obj object.Object) {
	if obj == nil {
		return
	}
	if _, ok := w.members[obj]; ok {
		return
	}
	w.members[obj] = struct{}{}

	w.updatables = append(w.updatables, obj)
	if d, ok := obj.(object.Drawable); ok {
		w.drawables = append(w.drawables, d)
	}
	switch o := obj.(type) {
	case *object.Asteroid:
		w.asteroids = append(w.asteroids, o)
	case *object.Shot:
		w.shots = append(w.shots, o)
	}
}

// Remove drops an entity from all subsets atomically. Removing an entity
// that is not live is a no-op.
func (w *World) Remove(obj object.Object) {
	if obj == nil {
		return
	}
	if _, ok := w.members[obj]; !ok {
		return
	}
	delete(w.members, obj)

	w.updatables = withoutObject(w.updatables, obj)
	if d, ok := obj.(object.Drawable); ok {
		w.drawables = withoutDrawable(w.drawables, d)
	}
	switch o := obj.(type) {
	case *object.Asteroid:
		w.asteroids = withoutAsteroid(w.asteroids, o)
	case *object.Shot:
		w.shots = withoutShot(w.shots, o)
	case *object.Ship:
		if o == w.Ship {
			w.Ship = nil
		}
	}
}

// Contains reports whether the entity is still live.
func (w *World) Contains(obj object.Object) bool {
	_, ok := w.members[obj]
	return ok
}

// Asteroids returns the live asteroid subset. Callers must not mutate it.
func (w *World) Asteroids() []*object.Asteroid { return w.asteroids }

// Shots returns the live shot subset. Callers must not mutate it.
func (w *World) Shots() []*object.Shot { return w.shots }

// Drawables returns the drawable subset in insertion order.
func (w *World) Drawables() []object.Drawable { return w.drawables }

// Tick returns the number of completed simulation steps.
func (w *World) Tick() uint64 { return w.tick }

func withoutObject(s []object.Object, v object.Object) []object.Object {
	kept := s[:0]
	for _, e := range s {
		if e != v {
			kept = append(kept, e)
		}
	}
	return kept
}

func withoutDrawable(s []object.Drawable, v object.Drawable) []object.Drawable {
	kept := s[:0]
	for _, e := range s {
		if e != v {
			kept = append(kept, e)
		}
	}
	return kept
}

func withoutAsteroid(s []*object.Asteroid, v *object.Asteroid) []*object.Asteroid {
	kept := s[:0]
	for _, e := range s {
		if e != v {
			kept = append(kept, e)
		}
	}
	return kept
}

func withoutShot(s []*object.Shot, v *object.Shot) []*object.Shot {
	kept := s[:0]
	for _, e := range s {
		if e != v {
			kept = append(kept, e)
		}
	}
	return kept
}
