package input

// Key is a logical game button.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyFire
	KeyQuit
	keyCount
)

// Keys is a set of keys.
type Keys uint16

// Has reports whether k is in the set.
func (ks Keys) Has(k Key) bool {
	return ks&(1<<k) != 0
}

// With returns the set with k added.
func (ks Keys) With(k Key) Keys {
	return ks | 1<<k
}

// Device is the raw input state the game reads once per tick.
type Device interface {
	// Pressed reports whether k is currently held.
	Pressed(k Key) bool
	// JustPressed reports whether k went down since the previous query.
	JustPressed(k Key) bool
	// Cursor returns the pointer position in 1-based terminal cells.
	// ok is false until the pointer has been reported.
	Cursor() (col, row int, ok bool)
}

// State is a snapshot of the device for one tick.
type State struct {
	Held      Keys
	Fresh     Keys
	CursorCol int
	CursorRow int
	HasCursor bool
}

var _ Device = State{}

func (s State) Pressed(k Key) bool     { return s.Held.Has(k) }
func (s State) JustPressed(k Key) bool { return s.Fresh.Has(k) }

func (s State) Cursor() (int, int, bool) {
	return s.CursorCol, s.CursorRow, s.HasCursor
}
