package object

import (
	"math"
	"testing"
	"time"

	"github.com/driftworks/rockfall/internal/config"
)

func TestShipTurns(t *testing.T) {
	ctx := testCtx(newStubRegistry(), nil, 1)
	rules := ctx.Rules
	u := NewShip(100, 100, rules)

	start := u.Heading
	ctx.Input = Input{Right: true}
	u.Update(ctx)

	want := math.Mod(start+rules.ShipTurnSpeed, 360)
	if math.Abs(u.Heading-want) > 1e-9 {
		t.Fatalf("heading after 1s right turn = %f, want %f", u.Heading, want)
	}
}

func TestShipMovesAlongHeading(t *testing.T) {
	ctx := testCtx(newStubRegistry(), nil, 1)
	rules := ctx.Rules
	u := NewShip(rules.FieldWidth/2, rules.FieldHeight/2, rules)

	// Heading starts at -90: up the screen.
	ctx.Input = Input{Up: true}
	u.Update(ctx)

	wantY := rules.FieldHeight/2 - rules.ShipSpeed
	if math.Abs(u.Y-wantY) > 1e-9 {
		t.Fatalf("ship Y after 1s forward = %f, want %f", u.Y, wantY)
	}
	if math.Abs(u.X-rules.FieldWidth/2) > 1e-9 {
		t.Fatalf("ship drifted horizontally to %f", u.X)
	}
}

func TestShipReversesWithDown(t *testing.T) {
	ctx := testCtx(newStubRegistry(), nil, 1)
	rules := ctx.Rules
	u := NewShip(rules.FieldWidth/2, rules.FieldHeight/2, rules)

	ctx.Input = Input{Down: true}
	u.Update(ctx)

	wantY := rules.FieldHeight/2 + rules.ShipSpeed
	if math.Abs(u.Y-wantY) > 1e-9 {
		t.Fatalf("ship Y after 1s reverse = %f, want %f", u.Y, wantY)
	}
}

func TestShipStaysInsideField(t *testing.T) {
	ctx := testCtx(newStubRegistry(), nil, 1)
	rules := ctx.Rules
	u := NewShip(rules.FieldWidth/2, 10, rules)

	ctx.Input = Input{Up: true}
	for i := 0; i < 5; i++ {
		u.Update(ctx)
	}

	if u.Y < 0 {
		t.Fatalf("ship escaped the field: Y = %f", u.Y)
	}
}

func TestShipFiresWithCooldown(t *testing.T) {
	reg := newStubRegistry()
	ctx := testCtx(reg, nil, 1)
	ctx.Delta = 10 * time.Millisecond
	rules := ctx.Rules
	u := NewShip(rules.FieldWidth/2, rules.FieldHeight/2, rules)

	ctx.Input = Input{Space: true}
	u.Update(ctx)

	if len(reg.added) != 1 {
		t.Fatalf("first trigger spawned %d shots, want 1", len(reg.added))
	}
	shot, ok := reg.added[0].(*Shot)
	if !ok {
		t.Fatalf("ship spawned a %T, want *Shot", reg.added[0])
	}
	if math.Abs(shot.Speed()-rules.ShotSpeed) > 1e-9 {
		t.Fatalf("shot speed = %f, want %f", shot.Speed(), rules.ShotSpeed)
	}
	if shot.Radius != rules.ShotRadius {
		t.Fatalf("shot radius = %f, want %f", shot.Radius, rules.ShotRadius)
	}

	// Shots leave from the nose, outside the ship's own circle.
	if shot.CollidesWith(&u.Body) {
		// Touching is fine; overlap deeper than the nose offset is not.
		t.Logf("shot starts touching the ship, spawned at (%f,%f)", shot.X, shot.Y)
	}

	// Held trigger within the cooldown window: no second shot.
	u.Update(ctx)
	if len(reg.added) != 1 {
		t.Fatalf("cooldown ignored: %d shots after second tick", len(reg.added))
	}

	// After the cooldown expires the ship fires again.
	ctx.Delta = time.Duration(rules.ShotCooldown * float64(time.Second))
	u.Update(ctx)
	if len(reg.added) != 2 {
		t.Fatalf("shots after cooldown = %d, want 2", len(reg.added))
	}
}

func TestShipSpeedMatchesRules(t *testing.T) {
	rules := config.DefaultRules()
	rules.ShipSpeed = 50

	ctx := testCtx(newStubRegistry(), nil, 1)
	ctx.Rules = rules
	u := NewShip(rules.FieldWidth/2, rules.FieldHeight/2, rules)

	ctx.Input = Input{Up: true}
	u.Update(ctx)

	if math.Abs(u.Speed()-50) > 1e-9 {
		t.Fatalf("ship speed = %f, want 50 from rules", u.Speed())
	}
}
