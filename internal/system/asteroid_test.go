package system

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/tomz197/rocks/internal/component"
	"github.com/tomz197/rocks/internal/config"
	"github.com/tomz197/rocks/internal/event"
)

func TestFragmentsBig(t *testing.T) {
	origin := cp.Vector{X: 100, Y: 100}
	parentVel := cp.Vector{X: 10, Y: -5}
	children := Fragments(event.AsteroidDestroyed{
		Class:    component.ClassBig,
		Position: origin,
		Velocity: parentVel,
	}, rand.New(rand.NewSource(7)))

	if len(children) != 7 {
		t.Fatalf("children = %d, want 7", len(children))
	}
	if children[0].Position != origin {
		t.Errorf("center child at %v, want %v", children[0].Position, origin)
	}

	var angles []float64
	for i, c := range children {
		if c.Class != component.ClassMedium {
			t.Errorf("child %d class = %v", i, c.Class)
		}
		dv := c.Velocity.Sub(parentVel)
		if math.Abs(dv.X) > config.FragmentJitter || math.Abs(dv.Y) > config.FragmentJitter {
			t.Errorf("child %d jitter %v out of range", i, dv)
		}
		if math.Abs(c.AngularVelocity) > config.FragmentMaxSpin {
			t.Errorf("child %d spin %v out of range", i, c.AngularVelocity)
		}
		if i == 0 {
			continue
		}
		d := c.Position.Sub(origin)
		if math.Abs(d.Length()-68) > 1e-9 {
			t.Errorf("ring child %d at distance %v, want 68", i, d.Length())
		}
		angles = append(angles, d.ToAngle())
	}

	// Ring children are evenly spaced.
	for i := 1; i < len(angles); i++ {
		delta := math.Mod(angles[i]-angles[i-1]+4*math.Pi, 2*math.Pi)
		if math.Abs(delta-2*math.Pi/6) > 1e-9 {
			t.Errorf("ring step %d = %v", i, delta)
		}
	}
}

func TestFragmentsPerClass(t *testing.T) {
	tests := []struct {
		parent component.AsteroidClass
		child  component.AsteroidClass
		count  int
		radius float64
	}{
		{component.ClassMedium, component.ClassSmall, 3, 20},
		{component.ClassSmall, component.ClassTiny, 4, 10},
	}
	for _, tt := range tests {
		children := Fragments(event.AsteroidDestroyed{Class: tt.parent}, rand.New(rand.NewSource(1)))
		if len(children) != tt.count {
			t.Errorf("%v: children = %d, want %d", tt.parent, len(children), tt.count)
			continue
		}
		for _, c := range children {
			if c.Class != tt.child {
				t.Errorf("%v: child class %v", tt.parent, c.Class)
			}
			if math.Abs(c.Position.Length()-tt.radius) > 1e-9 {
				t.Errorf("%v: child distance %v", tt.parent, c.Position.Length())
			}
		}
	}

	if got := Fragments(event.AsteroidDestroyed{Class: component.ClassTiny}, rand.New(rand.NewSource(1))); len(got) != 0 {
		t.Errorf("tiny produced %d children", len(got))
	}
}

func TestFragmentsDeterministic(t *testing.T) {
	d := event.AsteroidDestroyed{Class: component.ClassBig, Position: cp.Vector{X: 3, Y: 4}}
	a := Fragments(d, rand.New(rand.NewSource(42)))
	b := Fragments(d, rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different fragments")
	}
	c := Fragments(d, rand.New(rand.NewSource(43)))
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced identical fragments")
	}
}

func TestSpawnAsteroidStats(t *testing.T) {
	ctx := newTestContext(t)
	e := spawnTestAsteroid(t, ctx, component.ClassBig, cp.Vector{X: 100, Y: 100})

	a := asteroidOf(ctx, e)
	if a.Class != component.ClassBig || a.Health != 5 {
		t.Errorf("asteroid = %+v", a)
	}
	shape := component.Body.Get(ctx.World.Entry(e)).Shape
	if r := shape.Class.(*cp.Circle).Radius(); r != 50 {
		t.Errorf("collider radius = %v, want 50", r)
	}

	if _, ok := SpawnAsteroid(ctx, event.AsteroidSpawn{Class: component.AsteroidClass(9)}); ok {
		t.Error("unknown class spawned")
	}
}

func TestPopulationUpdateSpawnsFragments(t *testing.T) {
	ctx := newTestContext(t)
	pop := NewPopulation(rand.New(rand.NewSource(1)))

	ctx.Bus.Destroyed.Push(event.AsteroidDestroyed{Class: component.ClassMedium})
	pop.Update(ctx)

	if _, n, _ := Count(ctx.World); n != 3 {
		t.Errorf("asteroids = %d, want 3", n)
	}
}

func TestPopulationSeed(t *testing.T) {
	ctx := newTestContext(t)
	pop := NewPopulation(rand.New(rand.NewSource(1)))
	pop.Seed(ctx)
	pop.Update(ctx)

	if _, n, _ := Count(ctx.World); n != len(config.InitialLayout) {
		t.Errorf("asteroids = %d, want %d", n, len(config.InitialLayout))
	}
}
