package loop

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/tomz197/rocks/internal/component"
	"github.com/tomz197/rocks/internal/config"
	"github.com/tomz197/rocks/internal/draw"
	"github.com/tomz197/rocks/internal/physics"
)

const controlsHint = "WASD/HJKL/arrows move, mouse aims, SPACE or click fires, Q quits"

var (
	shipDrawQuery       = donburi.NewQuery(filter.Contains(component.Ship, component.Body))
	asteroidDrawQuery   = donburi.NewQuery(filter.Contains(component.Asteroid, component.Body))
	projectileDrawQuery = donburi.NewQuery(filter.Contains(component.Projectile, component.Body))
)

// drawFrame paints every entity and the HUD onto canvas.
func drawFrame(g *Game, canvas *draw.Canvas, cam draw.Camera) {
	canvas.Clear()
	w := g.World()

	asteroidDrawQuery.Each(w, func(entry *donburi.Entry) {
		drawAsteroid(canvas, cam, entry)
	})
	projectileDrawQuery.Each(w, func(entry *donburi.Entry) {
		canvas.Set(cam.WorldToCanvas(component.Body.Get(entry).Body.Position()))
	})
	shipDrawQuery.Each(w, func(entry *donburi.Entry) {
		drawShip(canvas, cam, component.Body.Get(entry).Body)
	})
	if target, ok := g.Aim(); ok {
		drawCrosshair(canvas, cam.WorldToCanvas(target))
	}

	drawHUD(g, canvas, cam)
}

func drawShip(canvas *draw.Canvas, cam draw.Camera, body *cp.Body) {
	pos := body.Position()
	angle := body.Angle()
	nose := pos.Add(physics.Forward(angle).Mult(config.ShipRadius))
	left := pos.Add(physics.Forward(angle + 2.5).Mult(config.ShipRadius * 0.8))
	right := pos.Add(physics.Forward(angle - 2.5).Mult(config.ShipRadius * 0.8))
	canvas.DrawPolygon([]draw.Point{
		cam.WorldToCanvas(nose),
		cam.WorldToCanvas(left),
		cam.WorldToCanvas(pos),
		cam.WorldToCanvas(right),
	})
}

func drawAsteroid(canvas *draw.Canvas, cam draw.Camera, entry *donburi.Entry) {
	a := component.Asteroid.Get(entry)
	stats, ok := a.Class.Stats()
	if !ok {
		return
	}
	body := component.Body.Get(entry).Body
	rx, ry := cam.ScaleX(stats.Radius), cam.ScaleY(stats.Radius)
	segments := 5 + int(a.Class)*2
	canvas.DrawEllipse(cam.WorldToCanvas(body.Position()), rx, ry, segments, -body.Angle())
}

func drawCrosshair(canvas *draw.Canvas, p draw.Point) {
	for _, d := range []float64{-2, -1, 1, 2} {
		canvas.Set(draw.Point{X: p.X + d, Y: p.Y})
		canvas.Set(draw.Point{X: p.X, Y: p.Y + d})
	}
}

// drawHUD writes the status line and the controls hint.
func drawHUD(g *Game, canvas *draw.Canvas, cam draw.Camera) {
	_, asteroids, projectiles := g.Counts()
	stats := g.Stats()
	status := fmt.Sprintf("Wave %d  Asteroids %d  Projectiles %d  Destroyed %d",
		g.Wave(), asteroids, projectiles, stats.AsteroidsDestroyed)
	canvas.Text(2, 1, status)

	if len(controlsHint) < cam.Cols {
		col := int(math.Max(1, float64(cam.Cols-len(controlsHint))/2))
		canvas.Text(col, cam.Rows, controlsHint)
	}
}
