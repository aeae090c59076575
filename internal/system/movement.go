package system

import (
	"time"

	"github.com/yohamta/donburi"

	"github.com/tomz197/rocks/internal/component"
)

// Move applies every queued move intent to every ship as a velocity impulse
// of vector * acceleration * dt. Speed is bounded by the body's damping only.
func Move(ctx *Context, dt time.Duration) {
	moves := ctx.Bus.Moves.Drain()
	if len(moves) == 0 {
		return
	}
	if shipQuery.Count(ctx.World) == 0 {
		ctx.Log.Debug("move intent without a ship", "intents", len(moves))
		return
	}

	secs := dt.Seconds()
	shipQuery.Each(ctx.World, func(entry *donburi.Entry) {
		ship := component.Ship.Get(entry)
		body := component.Body.Get(entry).Body
		for _, m := range moves {
			impulse := m.Vector.Mult(ship.Acceleration * secs)
			body.SetVelocityVector(body.Velocity().Add(impulse))
		}
	})
}
