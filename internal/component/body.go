package component

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its rigid body and collider in the physics space.
// Position, rotation and velocity are owned by the body.
type BodyData struct {
	Body  *cp.Body
	Shape *cp.Shape
}

var Body = donburi.NewComponentType[BodyData]()

// LookAtData marks entities that turn to face the aim target.
type LookAtData struct{}

var LookAt = donburi.NewComponentType[LookAtData]()

// WrapData marks entities kept inside the play field by the boundary check.
type WrapData struct{}

var Wrap = donburi.NewComponentType[WrapData]()
