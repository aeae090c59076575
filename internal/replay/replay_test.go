package replay

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/rocks/internal/input"
	"github.com/tomz197/rocks/internal/loop"
)

var _ loop.Recorder = (*Recorder)(nil)

// scriptedTrace thrusts right while firing at a cursor in the top right
// corner for two seconds.
func scriptedTrace(seed int64) Trace {
	rec := NewRecorder(seed)
	keys := input.Keys(0).With(input.KeyFire).With(input.KeyRight)
	for i := 0; i < 120; i++ {
		rec.Record(16*time.Millisecond, input.State{
			Held:      keys,
			CursorCol: 70,
			CursorRow: 3,
			HasCursor: true,
		}, 80, 24)
	}
	return rec.Trace()
}

func TestSaveLoad(t *testing.T) {
	want := scriptedTrace(3)
	var buf bytes.Buffer
	if err := Save(&buf, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Seed != 3 || len(got.Frames) != len(want.Frames) {
		t.Fatalf("loaded seed=%d frames=%d", got.Seed, len(got.Frames))
	}
	if got.Frames[5] != want.Frames[5] {
		t.Errorf("frame = %+v, want %+v", got.Frames[5], want.Frames[5])
	}
}

func TestLoadErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := Save(&buf, Trace{Version: Version}); !errors.Is(err, ErrEmptyTrace) {
		t.Errorf("Save empty: %v", err)
	}

	tr := scriptedTrace(1)
	tr.Version = 99
	buf.Reset()
	if err := Save(&buf, tr); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(&buf); !errors.Is(err, ErrVersion) {
		t.Errorf("Load wrong version: %v", err)
	}

	if _, err := Load(bytes.NewReader([]byte{0xc1})); err == nil {
		t.Error("Load accepted garbage")
	}
}

func TestRunDeterministic(t *testing.T) {
	logger := log.New(io.Discard)
	a, err := Run(scriptedTrace(5), logger)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(scriptedTrace(5), logger)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("summaries differ: %+v vs %+v", a, b)
	}
	if a.Ticks != 120 {
		t.Errorf("ticks = %d", a.Ticks)
	}
	// 120 ticks of 16ms with a 250ms interval.
	if a.ShotsFired != 8 {
		t.Errorf("shots = %d, want 8", a.ShotsFired)
	}
}

func TestRunRejectsEmpty(t *testing.T) {
	if _, err := Run(Trace{Version: Version}, log.New(io.Discard)); !errors.Is(err, ErrEmptyTrace) {
		t.Errorf("err = %v", err)
	}
}
