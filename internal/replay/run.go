package replay

import (
	"github.com/charmbracelet/log"

	"github.com/tomz197/rocks/internal/config"
	"github.com/tomz197/rocks/internal/draw"
	"github.com/tomz197/rocks/internal/loop"
	"github.com/tomz197/rocks/internal/system"
)

// Summary is the end state of a replayed session.
type Summary struct {
	Ticks              int
	Wave               int
	Asteroids          int
	Projectiles        int
	ShotsFired         int
	AsteroidsDestroyed int
}

// Run re-simulates t without a terminal. The same trace always yields the
// same summary.
func Run(t Trace, logger *log.Logger) (Summary, error) {
	if t.Version != Version {
		return Summary{}, ErrVersion
	}
	if len(t.Frames) == 0 {
		return Summary{}, ErrEmptyTrace
	}

	g := loop.NewGame(t.Seed, logger)
	cam := draw.NewCamera(config.FieldHalfWidth, config.FieldHalfHeight, 0, 0)
	for _, f := range t.Frames {
		cam.Resize(f.Cols, f.Rows)
		var proj system.Projector
		if cam.Valid() {
			proj = cam
		}
		g.Tick(f.Delta, f.State(), proj)
	}

	_, asteroids, projectiles := g.Counts()
	stats := g.Stats()
	s := Summary{
		Ticks:              g.Ticks(),
		Wave:               g.Wave(),
		Asteroids:          asteroids,
		Projectiles:        projectiles,
		ShotsFired:         stats.ShotsFired,
		AsteroidsDestroyed: stats.AsteroidsDestroyed,
	}
	logger.Info("replay finished", "ticks", s.Ticks, "wave", s.Wave, "destroyed", s.AsteroidsDestroyed)
	return s, nil
}
