package component

import (
	"time"

	"github.com/yohamta/donburi"
)

// ProjectileData tracks the age of a projectile against its lifetime.
type ProjectileData struct {
	Age time.Duration
	TTL time.Duration
}

// Advance ages the projectile by dt and reports whether its lifetime is over.
func (p *ProjectileData) Advance(dt time.Duration) bool {
	p.Age += dt
	return p.Age >= p.TTL
}

var Projectile = donburi.NewComponentType[ProjectileData]()
