// Package input turns terminal bytes into device state and gameplay intents.
package input

import (
	"bufio"
	"strconv"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last byte.
// Terminals send no release events, so holding relies on key repeat.
const keyHoldDuration = 80 * time.Millisecond

// maxPending bounds the unfinished escape sequence carried between reads.
const maxPending = 32

// Decoder accumulates terminal bytes into key and pointer state.
type Decoder struct {
	seen      [keyCount]time.Time
	fresh     Keys
	mouseFire bool
	col, row  int
	hasCursor bool
	pending   []byte // Unfinished escape sequence from the previous Feed
}

// NewDecoder returns an empty decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed parses buf received at now. Arrow keys and SGR mouse reports are
// recognised. An escape sequence cut off at the end of buf is kept and
// completed by the next Feed.
func (d *Decoder) Feed(buf []byte, now time.Time) {
	if len(d.pending) > 0 {
		buf = append(d.pending, buf...)
		d.pending = nil
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			n, complete := d.escape(buf[i:], now)
			if !complete {
				if len(buf)-i <= maxPending {
					d.pending = append([]byte(nil), buf[i:]...)
				}
				return
			}
			if n > 0 {
				i += n - 1
				continue
			}
		}

		switch b {
		case 'q', 'Q':
			d.press(KeyQuit, now)
		case 'a', 'A', 'h', 'H':
			d.press(KeyLeft, now)
		case 'd', 'D', 'l', 'L':
			d.press(KeyRight, now)
		case 'w', 'W', 'k', 'K':
			d.press(KeyUp, now)
		case 's', 'S', 'j', 'J':
			d.press(KeyDown, now)
		case ' ':
			d.press(KeyFire, now)
		}
	}
}

// escape handles a sequence starting with ESC. It returns the bytes consumed,
// 0 when seq is not a sequence it knows, and complete=false when seq ends
// before the sequence does.
func (d *Decoder) escape(seq []byte, now time.Time) (int, bool) {
	if len(seq) < 2 {
		return 0, false
	}
	if seq[1] != '[' {
		return 0, true
	}
	if len(seq) < 3 {
		return 0, false
	}
	switch seq[2] {
	case 'A':
		d.press(KeyUp, now)
	case 'B':
		d.press(KeyDown, now)
	case 'C':
		d.press(KeyRight, now)
	case 'D':
		d.press(KeyLeft, now)
	case '<':
		n, complete := d.mouse(seq[3:])
		if !complete || n == 0 {
			return 0, complete
		}
		return 3 + n, true
	default:
		return 0, true
	}
	return 3, true
}

func (d *Decoder) press(k Key, now time.Time) {
	d.seen[k] = now
	d.fresh = d.fresh.With(k)
}

// mouse parses the body of an SGR report "b;col;row" followed by M or m and
// returns the number of bytes consumed. Malformed reports consume nothing;
// complete is false when buf ends inside the report.
func (d *Decoder) mouse(buf []byte) (int, bool) {
	var fields [3]int
	field, start := 0, 0
	for i, c := range buf {
		switch {
		case c >= '0' && c <= '9':
		case c == ';' && field < 2:
			n, err := strconv.Atoi(string(buf[start:i]))
			if err != nil {
				return 0, true
			}
			fields[field] = n
			field++
			start = i + 1
		case (c == 'M' || c == 'm') && field == 2:
			n, err := strconv.Atoi(string(buf[start:i]))
			if err != nil {
				return 0, true
			}
			fields[2] = n
			d.applyMouse(fields[0], fields[1], fields[2], c == 'M')
			return i + 1, true
		default:
			return 0, true
		}
	}
	return 0, false
}

func (d *Decoder) applyMouse(button, col, row int, down bool) {
	d.col, d.row, d.hasCursor = col, row, true

	const wheel = 64
	if button&wheel != 0 || button&3 != 0 {
		return
	}
	// Left button: press, drag or release.
	if down && !d.mouseFire {
		d.fresh = d.fresh.With(KeyFire)
	}
	d.mouseFire = down
}

// Stream delivers terminal bytes through a channel and decodes them per tick.
type Stream struct {
	ch       chan byte
	done     chan struct{}
	stopOnce sync.Once
	dec      *Decoder
	closed   bool
}

// StartStream spawns a goroutine that reads from r until it fails or the
// stream is stopped.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:   make(chan byte, 256),
		done: make(chan struct{}),
		dec:  NewDecoder(),
	}
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Stop releases the reader goroutine once it has a byte to deliver.
// It is safe to call more than once.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// Read drains all available bytes without blocking and returns the device state.
func (s *Stream) Read(now time.Time) State {
	var buf []byte
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}
	s.dec.Feed(buf, now)
	return s.dec.Snapshot(now)
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}
