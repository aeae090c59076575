// Package component defines the gameplay components attached to entities.
package component

import "github.com/yohamta/donburi"

// AsteroidClass is the size tier of an asteroid. Larger values are bigger rocks.
type AsteroidClass int

const (
	ClassTiny AsteroidClass = iota
	ClassSmall
	ClassMedium
	ClassBig
)

func (c AsteroidClass) String() string {
	switch c {
	case ClassTiny:
		return "tiny"
	case ClassSmall:
		return "small"
	case ClassMedium:
		return "medium"
	case ClassBig:
		return "big"
	default:
		return "unknown"
	}
}

// ClassStats are the per-class visual and collision properties.
type ClassStats struct {
	Scale  float64 // Sprite scale
	Radius float64 // Collider radius
	Health int     // Starting health
}

var classStats = map[AsteroidClass]ClassStats{
	ClassBig:    {Scale: 2.0, Radius: 50, Health: 5},
	ClassMedium: {Scale: 1.5, Radius: 22, Health: 4},
	ClassSmall:  {Scale: 1.0, Radius: 15, Health: 3},
	ClassTiny:   {Scale: 1.0, Radius: 6, Health: 2},
}

// Stats returns the properties of class c. Unknown classes report ok=false.
func (c AsteroidClass) Stats() (ClassStats, bool) {
	s, ok := classStats[c]
	return s, ok
}

// FragmentRule describes the children produced when an asteroid is destroyed.
type FragmentRule struct {
	Child      AsteroidClass
	Center     int     // Children placed on the parent position
	Ring       int     // Children spread evenly on a circle around the parent
	RingRadius float64 // Distance of ring children from the parent
}

// Total is the number of children the rule spawns.
func (r FragmentRule) Total() int {
	return r.Center + r.Ring
}

var fragmentRules = map[AsteroidClass]FragmentRule{
	ClassBig:    {Child: ClassMedium, Center: 1, Ring: 6, RingRadius: 68},
	ClassMedium: {Child: ClassSmall, Ring: 3, RingRadius: 20},
	ClassSmall:  {Child: ClassTiny, Ring: 4, RingRadius: 10},
}

// Fragmentation returns how class c breaks apart. Tiny is terminal and reports ok=false.
func (c AsteroidClass) Fragmentation() (FragmentRule, bool) {
	r, ok := fragmentRules[c]
	return r, ok
}

// AsteroidData is the gameplay state of an asteroid.
type AsteroidData struct {
	Class  AsteroidClass
	Health int
}

// NewAsteroidData returns a full-health asteroid of class c.
func NewAsteroidData(c AsteroidClass) AsteroidData {
	s, _ := c.Stats()
	return AsteroidData{Class: c, Health: s.Health}
}

// Damage removes amount health and reports whether the asteroid is destroyed.
func (a *AsteroidData) Damage(amount int) bool {
	a.Health -= amount
	return a.Health <= 0
}

var Asteroid = donburi.NewComponentType[AsteroidData]()
