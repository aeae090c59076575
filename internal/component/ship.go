package component

import "github.com/yohamta/donburi"

// ShipData holds the thrust tuning of the controlled entity.
type ShipData struct {
	Acceleration float64
	Damping      float64 // Fraction of velocity kept per second
}

var Ship = donburi.NewComponentType[ShipData]()
