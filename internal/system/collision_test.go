package system

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"

	"github.com/tomz197/rocks/internal/component"
	"github.com/tomz197/rocks/internal/event"
	"github.com/tomz197/rocks/internal/physics"
)

type collisionScene struct {
	ctx        *Context
	asteroid   donburi.Entity
	asteroid2  donburi.Entity
	projectile donburi.Entity
	ship       donburi.Entity
}

func newCollisionScene(t *testing.T) collisionScene {
	ctx := newTestContext(t)
	return collisionScene{
		ctx:        ctx,
		asteroid:   spawnTestAsteroid(t, ctx, component.ClassBig, cp.Vector{X: 100, Y: 100}),
		asteroid2:  spawnTestAsteroid(t, ctx, component.ClassSmall, cp.Vector{X: -100, Y: 100}),
		projectile: spawnProjectile(ctx, event.ShotFired{Position: cp.Vector{X: 300}}),
		ship:       SpawnShip(ctx, cp.Vector{}),
	}
}

func TestClassify(t *testing.T) {
	s := newCollisionScene(t)
	tests := []struct {
		e    donburi.Entity
		want Role
	}{
		{s.asteroid, RoleAsteroid},
		{s.projectile, RoleProjectile},
		{s.ship, RoleShip},
		{s.ctx.World.Create(component.LookAt), RoleUnknown},
	}
	for _, tt := range tests {
		if got := Classify(s.ctx.World, tt.e); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.e, got, tt.want)
		}
	}

	Despawn(s.ctx, s.projectile)
	if got := Classify(s.ctx.World, s.projectile); got != RoleUnknown {
		t.Errorf("despawned entity classified as %v", got)
	}
}

func TestAsteroidProjectileSymmetric(t *testing.T) {
	for _, swap := range []bool{false, true} {
		s := newCollisionScene(t)
		p := physics.Pair{A: s.asteroid, B: s.projectile}
		if swap {
			p = physics.Pair{A: s.projectile, B: s.asteroid}
		}
		ResolveCollisions(s.ctx, []physics.Pair{p})

		if s.ctx.World.Valid(s.projectile) {
			t.Errorf("swap=%v: projectile survived", swap)
		}
		if got := asteroidOf(s.ctx, s.asteroid).Health; got != 4 {
			t.Errorf("swap=%v: health = %d, want 4", swap, got)
		}
		if s.ctx.Stats.AsteroidsHit != 1 {
			t.Errorf("swap=%v: AsteroidsHit = %d", swap, s.ctx.Stats.AsteroidsHit)
		}
	}
}

func TestPairsWithoutEffect(t *testing.T) {
	s := newCollisionScene(t)
	ghost := s.ctx.World.Create(component.LookAt)

	ResolveCollisions(s.ctx, []physics.Pair{
		{A: s.asteroid, B: s.asteroid2},
		{A: s.ship, B: s.asteroid},
		{A: s.asteroid, B: s.ship},
		{A: s.asteroid, B: ghost},
		{A: ghost, B: s.projectile},
	})

	if asteroidOf(s.ctx, s.asteroid).Health != 5 || asteroidOf(s.ctx, s.asteroid2).Health != 3 {
		t.Error("health changed without a projectile hit")
	}
	if !s.ctx.World.Valid(s.projectile) || !s.ctx.World.Valid(s.ship) {
		t.Error("entity removed by a no-effect pair")
	}
}

func TestProjectileHitsOnlyOnce(t *testing.T) {
	s := newCollisionScene(t)
	ResolveCollisions(s.ctx, []physics.Pair{
		{A: s.asteroid, B: s.projectile},
		{A: s.asteroid2, B: s.projectile},
	})
	if asteroidOf(s.ctx, s.asteroid2).Health != 3 {
		t.Error("despawned projectile damaged a second asteroid")
	}
}

func TestAsteroidDestroyedAfterHealthRunsOut(t *testing.T) {
	s := newCollisionScene(t)
	for i := 0; i < 4; i++ {
		p := spawnProjectile(s.ctx, event.ShotFired{})
		ResolveCollisions(s.ctx, []physics.Pair{{A: p, B: s.asteroid}})
		if !s.ctx.World.Valid(s.asteroid) {
			t.Fatalf("destroyed after %d hits", i+1)
		}
	}

	// The fifth hit destroys the asteroid. A projectile touching it later in
	// the same batch is still consumed but deals no damage.
	last := spawnProjectile(s.ctx, event.ShotFired{})
	extra := spawnProjectile(s.ctx, event.ShotFired{})
	ResolveCollisions(s.ctx, []physics.Pair{
		{A: last, B: s.asteroid},
		{A: s.asteroid, B: extra},
	})

	if s.ctx.World.Valid(s.asteroid) {
		t.Fatal("asteroid alive after 5 hits")
	}
	if s.ctx.World.Valid(last) || s.ctx.World.Valid(extra) {
		t.Error("projectile survived touching the asteroid")
	}
	destroyed := s.ctx.Bus.Destroyed.Drain()
	if len(destroyed) != 1 || destroyed[0].Class != component.ClassBig {
		t.Fatalf("destroyed events = %+v", destroyed)
	}
	if destroyed[0].Position != (cp.Vector{X: 100, Y: 100}) {
		t.Errorf("destroyed at %v", destroyed[0].Position)
	}
	if s.ctx.Stats.AsteroidsHit != 5 || s.ctx.Stats.AsteroidsDestroyed != 1 {
		t.Errorf("stats = %+v", *s.ctx.Stats)
	}
}

// steppedBatch overlaps a Tiny asteroid with three projectiles and a Big one
// with a single projectile, then returns the pairs the physics step reports.
func steppedBatch(t *testing.T) (*Context, donburi.Entity, donburi.Entity, []donburi.Entity, []physics.Pair) {
	t.Helper()
	ctx := newTestContext(t)
	tiny := spawnTestAsteroid(t, ctx, component.ClassTiny, cp.Vector{})
	big := spawnTestAsteroid(t, ctx, component.ClassBig, cp.Vector{X: 300})
	shots := []donburi.Entity{
		spawnProjectile(ctx, event.ShotFired{Position: cp.Vector{X: 2}}),
		spawnProjectile(ctx, event.ShotFired{Position: cp.Vector{X: -2}}),
		spawnProjectile(ctx, event.ShotFired{Position: cp.Vector{Y: -2}}),
		spawnProjectile(ctx, event.ShotFired{Position: cp.Vector{X: 300, Y: -10}}),
	}

	pairs := append([]physics.Pair(nil), ctx.Space.Step(time.Millisecond)...)
	if len(pairs) != 4 {
		t.Fatalf("physics reported %d pairs, want 4: %v", len(pairs), pairs)
	}
	return ctx, tiny, big, shots, pairs
}

func TestSteppedBatchOrderIndependent(t *testing.T) {
	forward := func(pairs []physics.Pair) []physics.Pair { return pairs }
	reversed := func(pairs []physics.Pair) []physics.Pair {
		out := make([]physics.Pair, 0, len(pairs))
		for i := len(pairs) - 1; i >= 0; i-- {
			out = append(out, physics.Pair{A: pairs[i].B, B: pairs[i].A})
		}
		return out
	}

	for name, order := range map[string]func([]physics.Pair) []physics.Pair{
		"forward":  forward,
		"reversed": reversed,
	} {
		ctx, tiny, big, shots, pairs := steppedBatch(t)
		ResolveCollisions(ctx, order(pairs))

		if ctx.World.Valid(tiny) {
			t.Errorf("%s: tiny asteroid survived", name)
		}
		for i, p := range shots {
			if ctx.World.Valid(p) {
				t.Errorf("%s: projectile %d survived", name, i)
			}
		}
		if got := asteroidOf(ctx, big).Health; got != 4 {
			t.Errorf("%s: big health = %d, want 4", name, got)
		}
		if got := ctx.Bus.Destroyed.Len(); got != 1 {
			t.Errorf("%s: destroyed events = %d, want 1", name, got)
		}
		if ctx.Stats.AsteroidsHit != 3 || ctx.Stats.AsteroidsDestroyed != 1 {
			t.Errorf("%s: stats = %+v", name, *ctx.Stats)
		}
	}
}
