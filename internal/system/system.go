// Package system implements the gameplay rules run in order each tick.
package system

import (
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/tomz197/rocks/internal/component"
	"github.com/tomz197/rocks/internal/event"
	"github.com/tomz197/rocks/internal/physics"
)

// Stats counts gameplay outcomes over a session.
type Stats struct {
	ShotsFired         int
	ProjectilesExpired int
	AsteroidsHit       int
	AsteroidsDestroyed int
}

// Context is what every system needs to read and mutate the session.
type Context struct {
	World donburi.World
	Space *physics.Space
	Bus   *event.Bus
	Log   *log.Logger
	Stats *Stats
}

var (
	shipQuery       = donburi.NewQuery(filter.Contains(component.Ship, component.Body))
	weaponQuery     = donburi.NewQuery(filter.Contains(component.Weapon, component.Body))
	projectileQuery = donburi.NewQuery(filter.Contains(component.Projectile, component.Body))
	asteroidQuery   = donburi.NewQuery(filter.Contains(component.Asteroid, component.Body))
	lookAtQuery     = donburi.NewQuery(filter.Contains(component.LookAt, component.Body))
	wrapQuery       = donburi.NewQuery(filter.Contains(component.Wrap, component.Body))
)

// Despawn removes an entity and its body. Missing entities are ignored.
func Despawn(ctx *Context, e donburi.Entity) {
	if !ctx.World.Valid(e) {
		return
	}
	entry := ctx.World.Entry(e)
	if entry.HasComponent(component.Body) {
		b := component.Body.Get(entry)
		ctx.Space.Remove(b.Body, b.Shape)
	}
	ctx.World.Remove(e)
}

// Count returns the number of live entities matching each gameplay role.
func Count(w donburi.World) (ships, asteroids, projectiles int) {
	return shipQuery.Count(w), asteroidQuery.Count(w), projectileQuery.Count(w)
}

func collect(w donburi.World, q *donburi.Query, keep func(*donburi.Entry) bool) []donburi.Entity {
	var out []donburi.Entity
	q.Each(w, func(entry *donburi.Entry) {
		if keep(entry) {
			out = append(out, entry.Entity())
		}
	})
	return out
}
