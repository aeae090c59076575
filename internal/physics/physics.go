package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Group is the collision group an entity belongs to.
// Friendly bodies only collide with hostile ones; hostile bodies collide with both.
type Group int

const (
	Friendly Group = iota
	Hostile
)

const (
	categoryFriendly uint = 1 << iota
	categoryHostile
)

// Filter returns the Chipmunk shape filter for the group.
func (g Group) Filter() cp.ShapeFilter {
	switch g {
	case Hostile:
		return cp.ShapeFilter{Categories: categoryHostile, Mask: categoryFriendly | categoryHostile}
	default:
		return cp.ShapeFilter{Categories: categoryFriendly, Mask: categoryHostile}
	}
}

// Collides reports whether the engine reports contacts between groups a and b.
func Collides(a, b Group) bool {
	fa, fb := a.Filter(), b.Filter()
	return fa.Categories&fb.Mask != 0 && fb.Categories&fa.Mask != 0
}

// Forward returns the unit facing of a body rotated by angle. At angle zero
// the facing is +Y, matching the sprite orientation.
func Forward(angle float64) cp.Vector {
	return cp.ForAngle(angle + math.Pi/2)
}

// FacingAngle returns the rotation that turns the +Y facing toward dir.
// A zero dir reports ok=false.
func FacingAngle(dir cp.Vector) (float64, bool) {
	if dir.X == 0 && dir.Y == 0 {
		return 0, false
	}
	return math.Atan2(-dir.X, dir.Y), true
}
