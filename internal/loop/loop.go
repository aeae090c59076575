// Package loop provides the play session and the terminal frame loop that drives it.
package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/tomz197/rocks/internal/input"
)

// Recorder receives the device state consumed by every tick together with
// the terminal size used to project its cursor.
type Recorder interface {
	Record(dt time.Duration, s input.State, cols, rows int)
}

// Run plays g on a terminal until quit, disconnect or ctx cancellation.
func Run(ctx context.Context, g *Game, r *bufio.Reader, w io.Writer, opts ClientOptions) error {
	return NewClient(g, r, w, opts).Run(ctx)
}
