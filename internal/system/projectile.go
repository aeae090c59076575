package system

import (
	"time"

	"github.com/yohamta/donburi"

	"github.com/tomz197/rocks/internal/component"
	"github.com/tomz197/rocks/internal/config"
	"github.com/tomz197/rocks/internal/event"
	"github.com/tomz197/rocks/internal/physics"
)

// AgeProjectiles advances projectile lifetimes and removes the expired ones.
func AgeProjectiles(ctx *Context, dt time.Duration) {
	expired := collect(ctx.World, projectileQuery, func(entry *donburi.Entry) bool {
		return component.Projectile.Get(entry).Advance(dt)
	})
	for _, e := range expired {
		Despawn(ctx, e)
	}
	ctx.Stats.ProjectilesExpired += len(expired)
}

// SpawnProjectiles turns queued shots into projectile bodies moving along
// the shooter's facing at a fixed speed.
func SpawnProjectiles(ctx *Context) {
	for _, shot := range ctx.Bus.Shots.Drain() {
		spawnProjectile(ctx, shot)
	}
}

func spawnProjectile(ctx *Context, shot event.ShotFired) donburi.Entity {
	e := ctx.World.Create(component.Projectile, component.Body)
	entry := ctx.World.Entry(e)
	component.Projectile.SetValue(entry, component.ProjectileData{TTL: config.ProjectileLifetime})

	body, shape := ctx.Space.AddCircle(e, physics.BodySpec{
		Position: shot.Position,
		Velocity: physics.Forward(shot.Angle).Mult(config.ProjectileSpeed),
		Angle:    shot.Angle,
		Radius:   config.ProjectileRadius,
		Mass:     config.ProjectileMass,
		Group:    physics.Friendly,
	})
	component.Body.SetValue(entry, component.BodyData{Body: body, Shape: shape})
	return e
}
