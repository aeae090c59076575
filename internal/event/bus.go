package event

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"

	"github.com/tomz197/rocks/internal/component"
	"github.com/tomz197/rocks/internal/physics"
)

// Move asks controlled entities to thrust along Vector.
type Move struct {
	Vector cp.Vector
}

// Fire asks weapon-bearing entities to shoot.
type Fire struct{}

// ShotFired is a projectile spawn request carrying the shooter's transform.
type ShotFired struct {
	Shooter  donburi.Entity
	Position cp.Vector
	Angle    float64
}

// AsteroidSpawn requests a new asteroid.
type AsteroidSpawn struct {
	Class           component.AsteroidClass
	Position        cp.Vector
	Velocity        cp.Vector
	AngularVelocity float64
}

// AsteroidDestroyed reports an asteroid whose health ran out.
type AsteroidDestroyed struct {
	Class    component.AsteroidClass
	Position cp.Vector
	Velocity cp.Vector
}

// Bus groups the queues of one game session.
type Bus struct {
	Moves      Queue[Move]
	Fires      Queue[Fire]
	Shots      Queue[ShotFired]
	Spawns     Queue[AsteroidSpawn]
	Destroyed  Queue[AsteroidDestroyed]
	Collisions Queue[physics.Pair]
}

// Reset drops every pending message.
func (b *Bus) Reset() {
	b.Moves.Clear()
	b.Fires.Clear()
	b.Shots.Clear()
	b.Spawns.Clear()
	b.Destroyed.Clear()
	b.Collisions.Clear()
}
