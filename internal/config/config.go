package config

import "time"

// Play field half extents in world units. The origin is the field center, +Y is up.
const (
	FieldHalfWidth  = 640.0
	FieldHalfHeight = 360.0
)

// Ship
const (
	ShipAcceleration = 400.0 // Units/s² per unit of move intent
	ShipDamping      = 0.3   // Fraction of velocity kept after one second
	ShipRadius       = 18.0
	ShipMass         = 1.0
)

// Weapon and projectiles
const (
	FireInterval       = 250 * time.Millisecond
	ProjectileSpeed    = 600.0
	ProjectileLifetime = 5 * time.Second
	ProjectileRadius   = 4.0
	ProjectileMass     = 0.05
)

// Fragmentation
const (
	FragmentJitter     = 45.0 // Max velocity jitter per axis
	FragmentMaxSpin    = 5.0  // Max angular velocity (rad/s)
	AsteroidDensity    = 0.01 // Mass per unit of collider area
	AsteroidElasticity = 1.0
)

// InitialRock describes one asteroid of the opening layout.
type InitialRock struct {
	X, Y   float64
	VX, VY float64
	Spin   float64
}

// InitialLayout is the deterministic set of Big asteroids each wave starts with.
var InitialLayout = []InitialRock{
	{X: -420, Y: 220, VX: 35, VY: -20, Spin: 0.6},
	{X: 420, Y: 220, VX: -30, VY: -25, Spin: -0.4},
	{X: -420, Y: -220, VX: 25, VY: 30, Spin: 0.3},
	{X: 420, Y: -220, VX: -35, VY: 20, Spin: -0.7},
}

// Loop timing
const (
	DefaultTickRate = 60
	MaxTickDelta    = 100 * time.Millisecond // Clamp for stalled frames
)
