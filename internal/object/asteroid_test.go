package object

import (
	"math"
	"testing"

	"github.com/driftworks/rockfall/internal/physics"
)

func TestSplitGeometry(t *testing.T) {
	reg := newStubRegistry()
	sink := &recordSink{}
	ctx := testCtx(reg, sink, 1)

	parent := NewAsteroid(100, 100, 60)
	parent.VX, parent.VY = 10, 0
	reg.Add(parent)
	reg.added = nil

	parent.Split(ctx)

	if reg.Contains(parent) {
		t.Fatal("parent still in registry after split")
	}
	if len(reg.added) != 2 {
		t.Fatalf("split created %d children, want 2", len(reg.added))
	}
	if got := sink.count("asteroid_split"); got != 1 {
		t.Fatalf("split emitted %d asteroid_split events, want 1", got)
	}

	var deflections []float64
	for _, obj := range reg.added {
		child, ok := obj.(*Asteroid)
		if !ok {
			t.Fatalf("split spawned a %T, want *Asteroid", obj)
		}
		if child.Radius != 40 {
			t.Errorf("child radius = %f, want 40 (parent radius minus minimum)", child.Radius)
		}
		if child.X != 100 || child.Y != 100 {
			t.Errorf("child position = (%f,%f), want parent position (100,100)", child.X, child.Y)
		}
		if speed := child.Speed(); math.Abs(speed-12) > 1e-9 {
			t.Errorf("child speed = %f, want 12 (parent speed scaled by 1.2)", speed)
		}
		// Parent velocity points along +x, so the deflection angle is
		// just the child's velocity direction.
		deflections = append(deflections, math.Atan2(child.VY, child.VX)*180/math.Pi)
	}

	for _, deg := range deflections {
		if abs := math.Abs(deg); abs < 20 || abs > 50 {
			t.Errorf("deflection angle %f outside [20, 50] degrees", deg)
		}
	}
	if len(deflections) == 2 {
		if math.Abs(deflections[0]+deflections[1]) > 1e-9 {
			t.Errorf("children should deflect by opposite angles, got %f and %f",
				deflections[0], deflections[1])
		}
	}
}

func TestSplitBelowMinimumVanishes(t *testing.T) {
	reg := newStubRegistry()
	sink := &recordSink{}
	ctx := testCtx(reg, sink, 1)

	a := NewAsteroid(50, 50, 15)
	a.VX = 5
	reg.Add(a)
	reg.added = nil

	a.Split(ctx)

	if reg.Contains(a) {
		t.Fatal("asteroid still in registry after split")
	}
	if len(reg.added) != 0 {
		t.Fatalf("asteroid below minimum radius spawned %d children, want 0", len(reg.added))
	}
	if got := sink.count("asteroid_split"); got != 0 {
		t.Fatalf("vanishing asteroid emitted %d split events, want 0", got)
	}
}

func TestSplitAtExactMinimumVanishes(t *testing.T) {
	reg := newStubRegistry()
	ctx := testCtx(reg, nil, 1)

	a := NewAsteroid(0, 0, ctx.Rules.MinAsteroidRadius)
	reg.Add(a)
	reg.added = nil

	a.Split(ctx)

	if len(reg.added) != 0 {
		t.Fatal("asteroid at exactly the minimum radius should not split")
	}
}

func TestSplitTerminates(t *testing.T) {
	reg := newStubRegistry()
	ctx := testCtx(reg, nil, 7)

	start := 60.0
	minRadius := ctx.Rules.MinAsteroidRadius
	maxSplits := int(math.Ceil(start / minRadius))

	// Follow one lineage: each split shrinks the radius by the minimum,
	// so the chain must bottom out within ceil(R/M) splits.
	a := NewAsteroid(0, 0, start)
	a.VX = 10
	reg.added = nil

	splits := 0
	for {
		reg.Add(a)
		reg.added = nil
		a.Split(ctx)
		if len(reg.added) == 0 {
			break
		}
		splits++
		if splits > maxSplits {
			t.Fatalf("lineage still splitting after %d splits, want at most %d", splits, maxSplits)
		}
		a = reg.added[0].(*Asteroid)
	}

	if a.Radius > minRadius {
		t.Fatalf("leaf asteroid radius = %f, want <= %f", a.Radius, minRadius)
	}
}

func TestSplitSpeedEscalates(t *testing.T) {
	reg := newStubRegistry()
	ctx := testCtx(reg, nil, 3)

	a := NewAsteroid(0, 0, 60)
	a.VX, a.VY = 10, 0
	reg.Add(a)
	reg.added = nil
	a.Split(ctx)

	child := reg.added[0].(*Asteroid)
	reg.added = nil
	child.Split(ctx)

	grandchild := reg.added[0].(*Asteroid)
	want := 10 * 1.2 * 1.2
	if got := grandchild.Speed(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("grandchild speed = %f, want %f (scale applied per generation)", got, want)
	}
}

func TestAsteroidUpdateTranslates(t *testing.T) {
	ctx := testCtx(newStubRegistry(), nil, 1)

	a := NewAsteroid(100, 100, 30)
	a.VX, a.VY = physics.RotateDeg(40, 0, 45)

	remove, err := a.Update(ctx)
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if remove {
		t.Fatal("asteroid inside the field asked for removal")
	}
	if a.Radius != 30 {
		t.Fatalf("update changed radius to %f", a.Radius)
	}

	wantX := 100 + 40*math.Cos(math.Pi/4)
	if math.Abs(a.X-wantX) > 1e-9 {
		t.Fatalf("asteroid X after 1s = %f, want %f", a.X, wantX)
	}
}

func TestAsteroidDespawnsOffField(t *testing.T) {
	ctx := testCtx(newStubRegistry(), nil, 1)

	a := NewAsteroid(-ctx.Rules.DespawnMargin-200, 100, 30)
	remove, _ := a.Update(ctx)
	if !remove {
		t.Fatal("asteroid far off-field should ask for removal")
	}
}
