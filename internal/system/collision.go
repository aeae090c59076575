package system

import (
	"github.com/yohamta/donburi"

	"github.com/tomz197/rocks/internal/component"
	"github.com/tomz197/rocks/internal/event"
	"github.com/tomz197/rocks/internal/physics"
)

// Role is the gameplay category of one side of a collision.
type Role int

const (
	RoleUnknown Role = iota
	RoleAsteroid
	RoleProjectile
	RoleShip
)

func (r Role) String() string {
	switch r {
	case RoleAsteroid:
		return "asteroid"
	case RoleProjectile:
		return "projectile"
	case RoleShip:
		return "ship"
	default:
		return "unknown"
	}
}

// Classify looks up the role of e: asteroid first, then projectile, then ship.
// Entities that no longer exist are unknown.
func Classify(w donburi.World, e donburi.Entity) Role {
	if !w.Valid(e) {
		return RoleUnknown
	}
	entry := w.Entry(e)
	switch {
	case entry.HasComponent(component.Asteroid):
		return RoleAsteroid
	case entry.HasComponent(component.Projectile):
		return RoleProjectile
	case entry.HasComponent(component.Ship):
		return RoleShip
	default:
		return RoleUnknown
	}
}

// ResolveCollisions applies the gameplay effect of each pair in order.
// A projectile hitting an asteroid is removed and takes one health from it;
// an asteroid out of health is removed and reported for fragmentation.
// Asteroids destroyed earlier in the same batch still count as asteroids, so
// later projectiles touching them are removed without further damage.
// Every other pair has no gameplay effect.
func ResolveCollisions(ctx *Context, pairs []physics.Pair) {
	r := resolver{ctx: ctx}
	for _, p := range pairs {
		r.resolve(p.A, p.B)
	}
}

type resolver struct {
	ctx       *Context
	destroyed map[donburi.Entity]struct{}
}

func (r *resolver) role(e donburi.Entity) Role {
	if _, ok := r.destroyed[e]; ok {
		return RoleAsteroid
	}
	return Classify(r.ctx.World, e)
}

func (r *resolver) resolve(a, b donburi.Entity) {
	ra, rb := r.role(a), r.role(b)
	if rb == RoleAsteroid && ra != RoleAsteroid {
		a, b = b, a
		ra, rb = rb, ra
	}

	switch {
	case ra == RoleAsteroid && rb == RoleProjectile:
		Despawn(r.ctx, b)
		r.damageAsteroid(a)
	case ra == RoleAsteroid && rb == RoleShip:
		// Ship damage is not modelled.
	}
}

func (r *resolver) damageAsteroid(e donburi.Entity) {
	if _, gone := r.destroyed[e]; gone || !r.ctx.World.Valid(e) {
		return
	}
	ctx := r.ctx
	entry := ctx.World.Entry(e)
	asteroid := component.Asteroid.Get(entry)
	ctx.Stats.AsteroidsHit++
	if !asteroid.Damage(1) {
		return
	}

	body := component.Body.Get(entry).Body
	ctx.Bus.Destroyed.Push(event.AsteroidDestroyed{
		Class:    asteroid.Class,
		Position: body.Position(),
		Velocity: body.Velocity(),
	})
	ctx.Stats.AsteroidsDestroyed++
	if r.destroyed == nil {
		r.destroyed = make(map[donburi.Entity]struct{})
	}
	r.destroyed[e] = struct{}{}
	Despawn(ctx, e)
}
