package component

import (
	"time"

	"github.com/yohamta/donburi"
)

// WeaponState is the firing state of a weapon.
type WeaponState int

const (
	WeaponReady WeaponState = iota
	WeaponCooling
)

// WeaponData rate-limits firing with a cooldown that counts up to Interval.
type WeaponData struct {
	Interval time.Duration
	Cooldown time.Duration // Time since the last shot while cooling
	State    WeaponState
}

// NewWeapon returns a ready weapon firing at most once per interval.
func NewWeapon(interval time.Duration) WeaponData {
	return WeaponData{Interval: interval, State: WeaponReady}
}

// Advance moves the cooldown forward by dt. The weapon becomes ready on the
// tick the cooldown reaches the interval.
func (w *WeaponData) Advance(dt time.Duration) {
	if w.State != WeaponCooling {
		return
	}
	w.Cooldown += dt
	if w.Cooldown >= w.Interval {
		w.State = WeaponReady
	}
}

// TryFire consumes the ready state. It reports false while cooling.
func (w *WeaponData) TryFire() bool {
	if w.State != WeaponReady {
		return false
	}
	w.State = WeaponCooling
	w.Cooldown = 0
	return true
}

var Weapon = donburi.NewComponentType[WeaponData]()
