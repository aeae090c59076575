package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/rocks/internal/config"
	"github.com/tomz197/rocks/internal/draw"
	"github.com/tomz197/rocks/internal/input"
	"github.com/tomz197/rocks/internal/system"
)

// Client renders one Game to a terminal and feeds it that terminal's input.
type Client struct {
	game         *Game
	canvas       *draw.Canvas
	camera       draw.Camera
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	tickTime     time.Duration
	recorder     Recorder
	log          *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	TickTime     time.Duration
	Recorder     Recorder // Optional
	Logger       *log.Logger
}

// NewClient creates a client for g reading keys from r and drawing to w.
func NewClient(g *Game, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	tickTime := opts.TickTime
	if tickTime <= 0 {
		tickTime = time.Second / config.DefaultTickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Client{
		game:         g,
		canvas:       draw.NewCanvas(0, 0),
		camera:       draw.NewCamera(config.FieldHalfWidth, config.FieldHalfHeight, 0, 0),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		tickTime:     tickTime,
		recorder:     opts.Recorder,
		log:          logger,
	}
}

// Run executes the Input -> Tick -> Draw cycle at the configured tick rate.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	draw.EnableMouse(c.writer)
	defer c.inputStream.Stop()
	defer func() {
		draw.DisableMouse(c.writer)
		draw.ShowCursor(c.writer)
	}()
	draw.ClearScreen(c.writer)

	ticker := time.NewTicker(c.tickTime)
	defer ticker.Stop()

	lastTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			c.log.Info("session cancelled", "ticks", c.game.Ticks())
			return nil
		case now := <-ticker.C:
			delta := now.Sub(lastTime)
			lastTime = now

			state := c.inputStream.Read(now)
			if state.JustPressed(input.KeyQuit) || c.inputStream.Closed() {
				draw.ClearScreen(c.writer)
				c.log.Info("session ended", "ticks", c.game.Ticks(), "wave", c.game.Wave())
				return nil
			}

			c.updateScreen()

			var proj system.Projector
			if c.camera.Valid() {
				proj = c.camera
			}
			c.game.Tick(delta, state, proj)
			if c.recorder != nil {
				c.recorder.Record(delta, state, c.camera.Cols, c.camera.Rows)
			}

			drawFrame(c.game, c.canvas, c.camera)
			if err := c.canvas.Render(c.writer); err != nil {
				return fmt.Errorf("render frame: %w", err)
			}
		}
	}
}

// updateScreen follows terminal resizes. A failed size query leaves the
// camera without a size, which disables aiming until the next good read.
func (c *Client) updateScreen() {
	cols, rows, err := c.termSizeFunc()
	if err != nil {
		c.log.Debug("terminal size unavailable", "err", err)
		cols, rows = 0, 0
	}
	c.camera.Resize(cols, rows)
	c.canvas.Resize(cols, rows)
}
