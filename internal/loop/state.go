package loop

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"

	"github.com/tomz197/rocks/internal/config"
	"github.com/tomz197/rocks/internal/event"
	"github.com/tomz197/rocks/internal/input"
	"github.com/tomz197/rocks/internal/physics"
	"github.com/tomz197/rocks/internal/system"
)

// Game holds one play session: the entity store, the physics space, the
// per-tick queues and the population generator. It is not safe for
// concurrent use; every session owns its own Game.
type Game struct {
	ctx   *system.Context
	pop   *system.Population
	aim   system.Aim
	stats system.Stats
	ship  donburi.Entity
	wave  int
	ticks int
}

// NewGame starts a session with the ship at the origin and the first wave
// in place. seed drives every random draw of the session.
func NewGame(seed int64, logger *log.Logger) *Game {
	g := &Game{
		pop:  system.NewPopulation(rand.New(rand.NewSource(seed))),
		wave: 1,
	}
	g.ctx = &system.Context{
		World: donburi.NewWorld(),
		Space: physics.NewSpace(),
		Bus:   &event.Bus{},
		Log:   logger,
		Stats: &g.stats,
	}

	g.ship = system.SpawnShip(g.ctx, cp.Vector{})
	g.pop.Seed(g.ctx)
	g.pop.Update(g.ctx)
	logger.Info("session started", "seed", seed, "asteroids", len(config.InitialLayout))
	return g
}

// Tick runs one simulation step of dt. The device is read once; proj may be
// nil when no terminal size is known, which only disables aiming.
func (g *Game) Tick(dt time.Duration, d input.Device, proj system.Projector) {
	if dt > config.MaxTickDelta {
		dt = config.MaxTickDelta
	}
	ctx := g.ctx

	// Intents.
	input.Interpret(d, ctx.Bus)

	// Gameplay logic.
	system.Move(ctx, dt)
	system.Weapons(ctx, dt)
	system.AgeProjectiles(ctx, dt)
	system.SpawnProjectiles(ctx)

	// Physics, then its consequences.
	for _, p := range ctx.Space.Step(dt) {
		ctx.Bus.Collisions.Push(p)
	}
	system.ResolveCollisions(ctx, ctx.Bus.Collisions.Drain())
	g.pop.Update(ctx)
	system.Boundary(ctx)
	g.aim.Update(ctx, d, proj)

	if _, asteroids, _ := system.Count(ctx.World); asteroids == 0 {
		g.wave++
		ctx.Log.Info("wave cleared", "wave", g.wave)
		g.pop.Seed(ctx)
	}
	g.ticks++
}

// World exposes the entity store for rendering.
func (g *Game) World() donburi.World { return g.ctx.World }

// Ship returns the controlled entity.
func (g *Game) Ship() donburi.Entity { return g.ship }

// Aim returns the current aim target.
func (g *Game) Aim() (cp.Vector, bool) { return g.aim.Target() }

// Wave returns the 1-based wave number.
func (g *Game) Wave() int { return g.wave }

// Ticks returns the number of completed ticks.
func (g *Game) Ticks() int { return g.ticks }

// Stats returns the gameplay counters so far.
func (g *Game) Stats() system.Stats { return g.stats }

// Counts returns the live ship, asteroid and projectile counts.
func (g *Game) Counts() (ships, asteroids, projectiles int) {
	return system.Count(g.ctx.World)
}
