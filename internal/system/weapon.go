package system

import (
	"time"

	"github.com/yohamta/donburi"

	"github.com/tomz197/rocks/internal/component"
	"github.com/tomz197/rocks/internal/event"
)

// Weapons advances every cooldown by dt, then handles the queued fire intents.
// Each intent is gated by the cooldown, so one tick fires at most once per weapon.
func Weapons(ctx *Context, dt time.Duration) {
	weaponQuery.Each(ctx.World, func(entry *donburi.Entry) {
		component.Weapon.Get(entry).Advance(dt)
	})

	fires := ctx.Bus.Fires.Drain()
	if len(fires) == 0 {
		return
	}

	weaponQuery.Each(ctx.World, func(entry *donburi.Entry) {
		w := component.Weapon.Get(entry)
		body := component.Body.Get(entry).Body
		for range fires {
			if !w.TryFire() {
				continue
			}
			ctx.Bus.Shots.Push(event.ShotFired{
				Shooter:  entry.Entity(),
				Position: body.Position(),
				Angle:    body.Angle(),
			})
			ctx.Stats.ShotsFired++
		}
	})
}
