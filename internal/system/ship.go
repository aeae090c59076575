package system

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"

	"github.com/tomz197/rocks/internal/component"
	"github.com/tomz197/rocks/internal/config"
	"github.com/tomz197/rocks/internal/physics"
)

// SpawnShip creates the controlled ship at pos facing +Y.
func SpawnShip(ctx *Context, pos cp.Vector) donburi.Entity {
	e := ctx.World.Create(component.Ship, component.Weapon, component.Body, component.LookAt, component.Wrap)
	entry := ctx.World.Entry(e)

	component.Ship.SetValue(entry, component.ShipData{
		Acceleration: config.ShipAcceleration,
		Damping:      config.ShipDamping,
	})
	component.Weapon.SetValue(entry, component.NewWeapon(config.FireInterval))

	body, shape := ctx.Space.AddCircle(e, physics.BodySpec{
		Position: pos,
		Radius:   config.ShipRadius,
		Mass:     config.ShipMass,
		Damping:  config.ShipDamping,
		Group:    physics.Friendly,
	})
	component.Body.SetValue(entry, component.BodyData{Body: body, Shape: shape})

	ctx.Log.Debug("ship spawned", "entity", e, "x", pos.X, "y", pos.Y)
	return e
}
