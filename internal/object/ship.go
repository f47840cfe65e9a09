package object

import (
	"math"

	"github.com/driftworks/rockfall/internal/config"
	"github.com/driftworks/rockfall/internal/draw"
	"github.com/driftworks/rockfall/internal/physics"
)

// Ship is the player-controlled vessel. It collides as a circle but draws
// as a triangle pointing along its heading.
type Ship struct {
	Body
	Heading  float64 // Degrees; 0 points right, 90 points down the screen
	cooldown float64 // Seconds until the next shot is allowed
}

// NewShip creates a ship at (x, y) pointing up the screen.
func NewShip(x, y float64, rules config.Rules) *Ship {
	return &Ship{
		Body:    NewBody(x, y, rules.ShipRadius),
		Heading: -90,
	}
}

// Update handles rotation, movement, field clamping and shooting.
func (u *Ship) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()
	rules := ctx.Rules

	if ctx.Input.Left {
		u.Heading -= rules.ShipTurnSpeed * dt
	}
	if ctx.Input.Right {
		u.Heading += rules.ShipTurnSpeed * dt
	}
	u.Heading = math.Mod(u.Heading, 360)

	dirX, dirY := physics.RotateDeg(1, 0, u.Heading)

	// Velocity follows the keys directly; the ship has no momentum.
	u.VX, u.VY = 0, 0
	if ctx.Input.Up {
		u.VX, u.VY = dirX*rules.ShipSpeed, dirY*rules.ShipSpeed
	}
	if ctx.Input.Down {
		u.VX, u.VY = -dirX*rules.ShipSpeed, -dirY*rules.ShipSpeed
	}
	u.Advance(dt)

	// The ship never leaves the field.
	u.X = clamp(u.X, 0, rules.FieldWidth)
	u.Y = clamp(u.Y, 0, rules.FieldHeight)

	u.cooldown -= dt
	if ctx.Input.Space && u.cooldown <= 0 && ctx.Registry != nil {
		u.cooldown = rules.ShotCooldown

		// Shots leave from the nose so they cannot hit the ship itself.
		shot := NewShot(u.X+dirX*u.Radius, u.Y+dirY*u.Radius, rules.ShotRadius)
		shot.VX = dirX * rules.ShotSpeed
		shot.VY = dirY * rules.ShotSpeed
		ctx.Registry.Add(shot)
	}

	return false, nil
}

// Draw renders the ship as a triangle pointing along its heading.
func (u *Ship) Draw(ctx DrawContext) error {
	nose := u.Heading
	left := u.Heading + 140
	right := u.Heading - 140

	size := u.Radius

	triangle := []draw.Point{
		vertex(u.X, u.Y, nose, size),
		vertex(u.X, u.Y, left, size*0.8),
		vertex(u.X, u.Y, right, size*0.8),
	}

	ctx.Canvas.DrawPolygon(triangle)
	return nil
}

// vertex returns the point at distance dist from (x, y) along deg.
func vertex(x, y, deg, dist float64) draw.Point {
	dx, dy := physics.RotateDeg(dist, 0, deg)
	return draw.Point{X: x + dx, Y: y + dy}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
