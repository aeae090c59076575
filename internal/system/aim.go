package system

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"

	"github.com/tomz197/rocks/internal/component"
	"github.com/tomz197/rocks/internal/input"
	"github.com/tomz197/rocks/internal/physics"
)

// Projector converts terminal cells to world points.
type Projector interface {
	ScreenToWorld(col, row int) (cp.Vector, bool)
}

// Aim tracks the world-space aim target and turns look-at entities toward it.
type Aim struct {
	target    cp.Vector
	hasTarget bool
}

// Target returns the current aim point. ok is false before the first cursor report.
func (a *Aim) Target() (cp.Vector, bool) {
	return a.target, a.hasTarget
}

// Update refreshes the target from the device cursor and snaps every look-at
// entity to face it. A cursor outside the window keeps the previous target.
func (a *Aim) Update(ctx *Context, d input.Device, proj Projector) {
	if proj == nil {
		ctx.Log.Debug("aim skipped: no camera")
		return
	}
	if col, row, ok := d.Cursor(); ok {
		if p, inside := proj.ScreenToWorld(col, row); inside {
			a.target, a.hasTarget = p, true
		}
	}
	if !a.hasTarget {
		return
	}

	lookAtQuery.Each(ctx.World, func(entry *donburi.Entry) {
		body := component.Body.Get(entry).Body
		angle, ok := physics.FacingAngle(a.target.Sub(body.Position()))
		if !ok {
			return
		}
		body.SetAngle(angle)
		body.SetAngularVelocity(0)
	})
}
