package input

import (
	"github.com/jakecoffman/cp"

	"github.com/tomz197/rocks/internal/event"
)

// MoveAxis combines opposed key pairs into a move vector (+Y is up).
// Holding both keys of a pair cancels that axis.
func MoveAxis(d Device) cp.Vector {
	return cp.Vector{
		X: axis(d.Pressed(KeyRight), d.Pressed(KeyLeft)),
		Y: axis(d.Pressed(KeyUp), d.Pressed(KeyDown)),
	}
}

func axis(positive, negative bool) float64 {
	v := 0.0
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}

// Interpret queues this tick's intents. Fire is level triggered: it is
// emitted on every tick the fire button is held.
func Interpret(d Device, bus *event.Bus) {
	if v := MoveAxis(d); v.X != 0 || v.Y != 0 {
		bus.Moves.Push(event.Move{Vector: v})
	}
	if d.Pressed(KeyFire) {
		bus.Fires.Push(event.Fire{})
	}
}
