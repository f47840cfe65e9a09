package object

import (
	"github.com/driftworks/rockfall/internal/events"
	"github.com/driftworks/rockfall/internal/physics"
)

// Asteroid is a drifting space rock. Shot asteroids split into two smaller,
// faster fragments until they reach the minimum radius.
type Asteroid struct {
	Body
}

// NewAsteroid creates an asteroid at (x, y). The caller assigns velocity.
func NewAsteroid(x, y, radius float64) *Asteroid {
	return &Asteroid{Body: NewBody(x, y, radius)}
}

// Update moves the asteroid. Asteroids never rotate or change radius; one
// that drifts fully off the field despawns.
func (a *Asteroid) Update(ctx UpdateContext) (bool, error) {
	a.Advance(ctx.Delta.Seconds())
	return a.OffField(ctx.Rules), nil
}

// Split destroys the asteroid and, when it is still above the minimum
// radius, replaces it with two fragments.
//
// The asteroid leaves the registry before any fragment exists. Fragments
// keep the parent's exact position, shrink by the minimum radius, and carry
// the parent's velocity deflected by ±angle (drawn once from the configured
// range) and scaled up, so fragment speed grows with every subdivision.
// Fragments enter the registry as independent top-level asteroids.
func (a *Asteroid) Split(ctx UpdateContext) {
	ctx.Registry.Remove(a)

	rules := ctx.Rules
	if a.Radius <= rules.MinAsteroidRadius {
		return
	}

	ctx.Events.Event(events.AsteroidSplit, "radius", a.Radius)

	newRadius := a.Radius - rules.MinAsteroidRadius
	angle := rules.SplitAngleMin + ctx.Rand.Float64()*(rules.SplitAngleMax-rules.SplitAngleMin)

	for _, deflect := range [2]float64{angle, -angle} {
		child := NewAsteroid(a.X, a.Y, newRadius)
		vx, vy := physics.RotateDeg(a.VX, a.VY, deflect)
		child.VX = vx * rules.SplitSpeedScale
		child.VY = vy * rules.SplitSpeedScale
		ctx.Registry.Add(child)
	}
}

// Draw renders the asteroid as a circle outline.
func (a *Asteroid) Draw(ctx DrawContext) error {
	ctx.Canvas.DrawCircle(a.X, a.Y, a.Radius)
	return nil
}
