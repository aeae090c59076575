// Package physics adapts the Chipmunk2D engine for the gameplay layer.
// Gameplay never integrates motion itself: it registers bodies, nudges their
// velocity, steps the space and consumes the collision pairs it reports.
package physics

import (
	"math"
	"slices"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// bodyCollisionType is shared by every gameplay shape so one handler sees all pairs.
const bodyCollisionType cp.CollisionType = 1

// Pair is a collision reported by a physics step. A is the lower entity id.
type Pair struct {
	A, B donburi.Entity
}

// BodySpec describes a circular rigid body.
type BodySpec struct {
	Position        cp.Vector
	Velocity        cp.Vector
	Angle           float64
	AngularVelocity float64
	Radius          float64
	Mass            float64
	Elasticity      float64
	Damping         float64 // Fraction of velocity kept per second; 0 disables damping
	Group           Group
}

// Space owns the simulation and collects collision pairs during Step.
type Space struct {
	space  *cp.Space
	bodies int
	pairs  []Pair
	seen   map[Pair]struct{}
}

// NewSpace creates a gravity-free space.
func NewSpace() *Space {
	s := &Space{
		space: cp.NewSpace(),
		seen:  make(map[Pair]struct{}),
	}
	s.space.SetGravity(cp.Vector{})

	handler := s.space.NewCollisionHandler(bodyCollisionType, bodyCollisionType)
	handler.BeginFunc = s.begin
	return s
}

// AddCircle creates a dynamic circle body owned by entity e.
func (s *Space) AddCircle(e donburi.Entity, spec BodySpec) (*cp.Body, *cp.Shape) {
	moment := cp.MomentForCircle(spec.Mass, 0, spec.Radius, cp.Vector{})
	body := s.space.AddBody(cp.NewBody(spec.Mass, moment))
	s.bodies++
	body.UserData = e
	body.SetPosition(spec.Position)
	body.SetVelocityVector(spec.Velocity)
	body.SetAngle(spec.Angle)
	body.SetAngularVelocity(spec.AngularVelocity)

	if spec.Damping > 0 {
		keep := spec.Damping
		body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, _ float64, dt float64) {
			cp.BodyUpdateVelocity(b, gravity, math.Pow(keep, dt), dt)
		})
	}

	shape := s.space.AddShape(cp.NewCircle(body, spec.Radius, cp.Vector{}))
	shape.UserData = e
	shape.SetElasticity(spec.Elasticity)
	shape.SetFilter(spec.Group.Filter())
	shape.SetCollisionType(bodyCollisionType)
	return body, shape
}

// Remove detaches a body and its collider from the space.
func (s *Space) Remove(body *cp.Body, shape *cp.Shape) {
	if shape != nil && s.space.ContainsShape(shape) {
		s.space.RemoveShape(shape)
	}
	if body != nil && s.space.ContainsBody(body) {
		s.space.RemoveBody(body)
		s.bodies--
	}
}

// Step advances the simulation by dt and returns the pairs that started
// touching during the step, ordered by entity id.
func (s *Space) Step(dt time.Duration) []Pair {
	s.pairs = s.pairs[:0]
	clear(s.seen)

	if dt > 0 {
		s.space.Step(dt.Seconds())
	}

	slices.SortFunc(s.pairs, func(x, y Pair) int {
		if x.A != y.A {
			if x.A < y.A {
				return -1
			}
			return 1
		}
		if x.B < y.B {
			return -1
		}
		if x.B > y.B {
			return 1
		}
		return 0
	})
	return s.pairs
}

// BodyCount reports the number of bodies in the space.
func (s *Space) BodyCount() int {
	return s.bodies
}

func (s *Space) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Bodies()
	ea, okA := a.UserData.(donburi.Entity)
	eb, okB := b.UserData.(donburi.Entity)
	if !okA || !okB || ea == eb {
		return true
	}
	if eb < ea {
		ea, eb = eb, ea
	}
	p := Pair{A: ea, B: eb}
	if _, dup := s.seen[p]; !dup {
		s.seen[p] = struct{}{}
		s.pairs = append(s.pairs, p)
	}
	return true
}
