package system

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"

	"github.com/tomz197/rocks/internal/component"
	"github.com/tomz197/rocks/internal/config"
)

// Reflect negates v when it lies strictly beyond ±half, stepping one unit
// inward so the result sits on the opposite boundary without re-triggering.
func Reflect(v, half float64) (float64, bool) {
	switch {
	case v > half:
		return -v + 1, true
	case v < -half:
		return -v - 1, true
	default:
		return v, false
	}
}

// Boundary moves wrapped entities that left the play field back inside.
// NOTE: this mirrors the coordinate instead of wrapping it modulo the field.
func Boundary(ctx *Context) {
	wrapQuery.Each(ctx.World, func(entry *donburi.Entry) {
		body := component.Body.Get(entry).Body
		pos := body.Position()
		x, movedX := Reflect(pos.X, config.FieldHalfWidth)
		y, movedY := Reflect(pos.Y, config.FieldHalfHeight)
		if movedX || movedY {
			body.SetPosition(cp.Vector{X: x, Y: y})
		}
	})
}
