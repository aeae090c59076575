package system

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"

	"github.com/tomz197/rocks/internal/component"
	"github.com/tomz197/rocks/internal/event"
	"github.com/tomz197/rocks/internal/physics"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	return &Context{
		World: donburi.NewWorld(),
		Space: physics.NewSpace(),
		Bus:   &event.Bus{},
		Log:   log.New(io.Discard),
		Stats: &Stats{},
	}
}

func spawnTestAsteroid(t *testing.T, ctx *Context, class component.AsteroidClass, pos cp.Vector) donburi.Entity {
	t.Helper()
	e, ok := SpawnAsteroid(ctx, event.AsteroidSpawn{Class: class, Position: pos})
	if !ok {
		t.Fatalf("spawn %v failed", class)
	}
	return e
}

func bodyOf(ctx *Context, e donburi.Entity) *cp.Body {
	return component.Body.Get(ctx.World.Entry(e)).Body
}

func asteroidOf(ctx *Context, e donburi.Entity) component.AsteroidData {
	return *component.Asteroid.Get(ctx.World.Entry(e))
}
