// Package replay records the input consumed by a session and re-simulates it.
package replay

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tomz197/rocks/internal/input"
)

// Version is the trace format written by this package.
const Version = 1

var (
	ErrEmptyTrace = errors.New("replay: trace has no frames")
	ErrVersion    = errors.New("replay: unsupported trace version")
)

// Frame is the input of one tick.
type Frame struct {
	Delta     time.Duration `msgpack:"d"`
	Held      input.Keys    `msgpack:"h"`
	Fresh     input.Keys    `msgpack:"f,omitempty"`
	CursorCol int           `msgpack:"cc,omitempty"`
	CursorRow int           `msgpack:"cr,omitempty"`
	HasCursor bool          `msgpack:"hc,omitempty"`
	Cols      int           `msgpack:"w"`
	Rows      int           `msgpack:"r"`
}

// State returns the device snapshot the frame was recorded from.
func (f Frame) State() input.State {
	return input.State{
		Held:      f.Held,
		Fresh:     f.Fresh,
		CursorCol: f.CursorCol,
		CursorRow: f.CursorRow,
		HasCursor: f.HasCursor,
	}
}

// Trace is a complete recorded session.
type Trace struct {
	Version int     `msgpack:"v"`
	Seed    int64   `msgpack:"seed"`
	Frames  []Frame `msgpack:"frames"`
}

// Recorder collects frames for a session started with Seed.
type Recorder struct {
	trace Trace
}

// NewRecorder starts an empty trace for a session seeded with seed.
func NewRecorder(seed int64) *Recorder {
	return &Recorder{trace: Trace{Version: Version, Seed: seed}}
}

// Record appends the input of one tick.
func (r *Recorder) Record(dt time.Duration, s input.State, cols, rows int) {
	r.trace.Frames = append(r.trace.Frames, Frame{
		Delta:     dt,
		Held:      s.Held,
		Fresh:     s.Fresh,
		CursorCol: s.CursorCol,
		CursorRow: s.CursorRow,
		HasCursor: s.HasCursor,
		Cols:      cols,
		Rows:      rows,
	})
}

// Trace returns the frames recorded so far.
func (r *Recorder) Trace() Trace {
	return r.trace
}

// Save writes t to w.
func Save(w io.Writer, t Trace) error {
	if len(t.Frames) == 0 {
		return ErrEmptyTrace
	}
	if err := msgpack.NewEncoder(w).Encode(&t); err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}
	return nil
}

// Load reads a trace written by Save.
func Load(r io.Reader) (Trace, error) {
	var t Trace
	if err := msgpack.NewDecoder(r).Decode(&t); err != nil {
		return Trace{}, fmt.Errorf("decode trace: %w", err)
	}
	if t.Version != Version {
		return Trace{}, fmt.Errorf("%w: %d", ErrVersion, t.Version)
	}
	if len(t.Frames) == 0 {
		return Trace{}, ErrEmptyTrace
	}
	return t, nil
}
