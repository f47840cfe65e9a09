package object

// Shot is a projectile fired by the ship.
type Shot struct {
	Body
}

// NewShot creates a shot at (x, y). The caller assigns velocity.
func NewShot(x, y, radius float64) *Shot {
	return &Shot{Body: NewBody(x, y, radius)}
}

// Update moves the shot; it despawns once it leaves the field.
func (s *Shot) Update(ctx UpdateContext) (bool, error) {
	s.Advance(ctx.Delta.Seconds())
	return s.OffField(ctx.Rules), nil
}

// Draw renders the shot as a single pixel.
func (s *Shot) Draw(ctx DrawContext) error {
	ctx.Canvas.SetFloat(s.X, s.Y)
	return nil
}
