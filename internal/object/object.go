// Package object defines the game entities: the shared kinetic-circle body
// and the asteroid, shot, ship and asteroid-field kinds built on it.
package object

import (
	"math/rand"
	"time"

	"github.com/driftworks/rockfall/internal/config"
	"github.com/driftworks/rockfall/internal/draw"
	"github.com/driftworks/rockfall/internal/events"
	"github.com/driftworks/rockfall/internal/input"
	"github.com/driftworks/rockfall/internal/physics"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// Registry tracks the live entities. The world is the sole owner of entity
// lifetime: an entity absent from the registry is dead and must not be
// referenced again.
type Registry interface {
	// Add inserts an entity into every subset its kind belongs to.
	Add(obj Object)
	// Remove drops an entity from all subsets atomically.
	Remove(obj Object)
	// Contains reports whether the entity is still live.
	Contains(obj Object) bool
}

// UpdateContext provides everything an entity needs during update.
type UpdateContext struct {
	Delta    time.Duration
	Input    Input
	Rules    config.Rules
	Registry Registry
	Events   events.Sink
	Rand     *rand.Rand
}

// DrawContext provides drawing resources for entities.
type DrawContext struct {
	Canvas *draw.Canvas
}

// Object is an updatable game entity.
type Object interface {
	// Update advances the entity by ctx.Delta. Returns true if the entity
	// should be removed from the registry.
	Update(ctx UpdateContext) (remove bool, err error)
}

// Drawable is implemented by entities that render themselves.
type Drawable interface {
	Draw(ctx DrawContext) error
}

// Body is a circular kinetic body: the position, velocity and radius shared
// by asteroids, shots and the ship.
type Body struct {
	X, Y   float64 // Position (center)
	VX, VY float64 // Velocity, units per second
	Radius float64
}

// NewBody creates a body at the given position. Velocity stays zero until
// the owner assigns it.
func NewBody(x, y, radius float64) Body {
	return Body{X: x, Y: y, Radius: radius}
}

// Advance translates the body by its velocity over dt seconds. No bounds
// clamping happens here; each kind decides what to do off-field.
func (b *Body) Advance(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// CollidesWith reports whether the two circles overlap or exactly touch.
// Symmetric and side-effect free.
func (b *Body) CollidesWith(other *Body) bool {
	return physics.CirclesTouch(b.X, b.Y, b.Radius, other.X, other.Y, other.Radius)
}

// Speed returns the magnitude of the body's velocity.
func (b *Body) Speed() float64 {
	return physics.Magnitude(b.VX, b.VY)
}

// OffField reports whether the body has drifted fully outside the field
// plus the despawn margin.
func (b *Body) OffField(rules config.Rules) bool {
	margin := b.Radius + rules.DespawnMargin
	return b.X < -margin || b.X > rules.FieldWidth+margin ||
		b.Y < -margin || b.Y > rules.FieldHeight+margin
}
