package object

import "github.com/driftworks/rockfall/internal/physics"

// AsteroidField periodically materializes fresh asteroids just outside a
// random field edge, heading into the field. It performs no collision
// checks and knows nothing about other entity kinds.
type AsteroidField struct {
	elapsed float64 // Seconds since the last spawn
}

// NewAsteroidField creates an idle field; the first spawn happens one full
// interval after the field starts ticking.
func NewAsteroidField() *AsteroidField {
	return &AsteroidField{}
}

// Update accumulates dt and spawns at most one asteroid per tick once the
// spawn interval has elapsed. The accumulator resets to zero, carrying no
// remainder into the next interval.
func (f *AsteroidField) Update(ctx UpdateContext) (bool, error) {
	f.elapsed += ctx.Delta.Seconds()
	if f.elapsed < ctx.Rules.SpawnInterval {
		return false, nil
	}
	f.elapsed = 0

	ctx.Registry.Add(f.spawn(ctx))
	return false, nil
}

// spawn places a new top-level asteroid on a uniformly random edge, at a
// uniformly random position along it, with a velocity pointing into the
// field deflected within the configured spread.
func (f *AsteroidField) spawn(ctx UpdateContext) *Asteroid {
	rules := ctx.Rules
	rng := ctx.Rand

	kind := 1 + rng.Intn(rules.AsteroidKinds)
	radius := rules.MinAsteroidRadius * float64(kind)
	speed := rules.SpawnSpeedMin + rng.Float64()*(rules.SpawnSpeedMax-rules.SpawnSpeedMin)

	var x, y float64
	var inward float64 // Direction of the inward edge normal, degrees
	switch rng.Intn(4) {
	case 0: // Left edge, heading right
		x, y = -radius, rng.Float64()*rules.FieldHeight
		inward = 0
	case 1: // Right edge, heading left
		x, y = rules.FieldWidth+radius, rng.Float64()*rules.FieldHeight
		inward = 180
	case 2: // Top edge, heading down
		x, y = rng.Float64()*rules.FieldWidth, -radius
		inward = 90
	default: // Bottom edge, heading up
		x, y = rng.Float64()*rules.FieldWidth, rules.FieldHeight+radius
		inward = 270
	}

	deflect := (rng.Float64()*2 - 1) * rules.SpawnAngleSpread

	a := NewAsteroid(x, y, radius)
	a.VX, a.VY = physics.RotateDeg(speed, 0, inward+deflect)
	return a
}
