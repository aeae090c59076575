package system

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"

	"github.com/tomz197/rocks/internal/component"
	"github.com/tomz197/rocks/internal/config"
	"github.com/tomz197/rocks/internal/event"
	"github.com/tomz197/rocks/internal/physics"
)

// Population spawns asteroids and breaks destroyed ones into fragments.
// Its generator is the only randomness in a session.
type Population struct {
	rng *rand.Rand
}

// NewPopulation returns a population manager drawing from rng.
func NewPopulation(rng *rand.Rand) *Population {
	return &Population{rng: rng}
}

// Seed queues the opening layout of Big asteroids.
func (p *Population) Seed(ctx *Context) {
	for _, r := range config.InitialLayout {
		ctx.Bus.Spawns.Push(event.AsteroidSpawn{
			Class:           component.ClassBig,
			Position:        cp.Vector{X: r.X, Y: r.Y},
			Velocity:        cp.Vector{X: r.VX, Y: r.VY},
			AngularVelocity: r.Spin,
		})
	}
}

// Update fragments the asteroids destroyed this tick, then spawns every
// queued asteroid.
func (p *Population) Update(ctx *Context) {
	for _, d := range ctx.Bus.Destroyed.Drain() {
		children := Fragments(d, p.rng)
		for _, c := range children {
			ctx.Bus.Spawns.Push(c)
		}
		ctx.Log.Debug("asteroid destroyed", "class", d.Class, "children", len(children))
	}
	for _, req := range ctx.Bus.Spawns.Drain() {
		SpawnAsteroid(ctx, req)
	}
}

// Fragments computes the children of a destroyed asteroid. Ring children share
// one random angular offset and are spaced evenly around the parent; every
// child inherits the parent velocity plus independent jitter.
func Fragments(d event.AsteroidDestroyed, rng *rand.Rand) []event.AsteroidSpawn {
	rule, ok := d.Class.Fragmentation()
	if !ok {
		return nil
	}

	offset := rng.Float64() * 2 * math.Pi
	children := make([]event.AsteroidSpawn, 0, rule.Total())

	for i := 0; i < rule.Center; i++ {
		children = append(children, fragment(rule.Child, d.Position, d.Velocity, rng))
	}
	step := 2 * math.Pi / float64(rule.Ring)
	for i := 0; i < rule.Ring; i++ {
		pos := d.Position.Add(cp.ForAngle(offset + float64(i)*step).Mult(rule.RingRadius))
		children = append(children, fragment(rule.Child, pos, d.Velocity, rng))
	}
	return children
}

func fragment(class component.AsteroidClass, pos, parentVel cp.Vector, rng *rand.Rand) event.AsteroidSpawn {
	jitter := cp.Vector{X: symmetric(rng, config.FragmentJitter), Y: symmetric(rng, config.FragmentJitter)}
	return event.AsteroidSpawn{
		Class:           class,
		Position:        pos,
		Velocity:        parentVel.Add(jitter),
		AngularVelocity: symmetric(rng, config.FragmentMaxSpin),
	}
}

// symmetric returns a uniform value in [-limit, limit).
func symmetric(rng *rand.Rand, limit float64) float64 {
	return (rng.Float64()*2 - 1) * limit
}

// SpawnAsteroid creates an asteroid entity with its class stats.
// Requests with an unknown class are dropped.
func SpawnAsteroid(ctx *Context, req event.AsteroidSpawn) (donburi.Entity, bool) {
	stats, ok := req.Class.Stats()
	if !ok {
		ctx.Log.Warn("asteroid spawn with unknown class", "class", int(req.Class))
		return donburi.Null, false
	}

	e := ctx.World.Create(component.Asteroid, component.Body, component.Wrap)
	entry := ctx.World.Entry(e)
	component.Asteroid.SetValue(entry, component.NewAsteroidData(req.Class))

	body, shape := ctx.Space.AddCircle(e, physics.BodySpec{
		Position:        req.Position,
		Velocity:        req.Velocity,
		AngularVelocity: req.AngularVelocity,
		Radius:          stats.Radius,
		Mass:            math.Pi * stats.Radius * stats.Radius * config.AsteroidDensity,
		Elasticity:      config.AsteroidElasticity,
		Group:           physics.Hostile,
	})
	component.Body.SetValue(entry, component.BodyData{Body: body, Shape: shape})
	return e, true
}
