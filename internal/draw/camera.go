package draw

import "github.com/jakecoffman/cp"

// Camera projects world space (origin at the center, +Y up) onto a terminal
// of Cols x Rows cells. The canvas it targets has two pixels per cell row.
type Camera struct {
	Center     cp.Vector
	HalfWidth  float64 // Visible world half extent on X
	HalfHeight float64 // Visible world half extent on Y
	Cols, Rows int
}

// NewCamera returns a camera at the origin showing the given half extents.
func NewCamera(halfWidth, halfHeight float64, cols, rows int) Camera {
	return Camera{HalfWidth: halfWidth, HalfHeight: halfHeight, Cols: cols, Rows: rows}
}

// Resize updates the terminal dimensions.
func (c *Camera) Resize(cols, rows int) {
	c.Cols, c.Rows = cols, rows
}

// Valid reports whether the camera has a usable terminal size.
func (c Camera) Valid() bool {
	return c.Cols > 0 && c.Rows > 0 && c.HalfWidth > 0 && c.HalfHeight > 0
}

// WorldToCanvas maps a world point to canvas pixel coordinates.
func (c Camera) WorldToCanvas(p cp.Vector) Point {
	return Point{
		X: (p.X - c.Center.X + c.HalfWidth) / (2 * c.HalfWidth) * float64(c.Cols),
		Y: (c.Center.Y + c.HalfHeight - p.Y) / (2 * c.HalfHeight) * float64(c.Rows*2),
	}
}

// ScaleX converts a world length along X to canvas pixels.
func (c Camera) ScaleX(d float64) float64 {
	return d / (2 * c.HalfWidth) * float64(c.Cols)
}

// ScaleY converts a world length along Y to canvas pixels.
func (c Camera) ScaleY(d float64) float64 {
	return d / (2 * c.HalfHeight) * float64(c.Rows*2)
}

// ScreenToWorld maps a 1-based terminal cell to the world point at its center.
// Cells outside the terminal report ok=false.
func (c Camera) ScreenToWorld(col, row int) (cp.Vector, bool) {
	if !c.Valid() || col < 1 || row < 1 || col > c.Cols || row > c.Rows {
		return cp.Vector{}, false
	}
	fx := (float64(col) - 0.5) / float64(c.Cols)
	fy := (float64(row) - 0.5) / float64(c.Rows)
	return cp.Vector{
		X: c.Center.X - c.HalfWidth + fx*2*c.HalfWidth,
		Y: c.Center.Y + c.HalfHeight - fy*2*c.HalfHeight,
	}, true
}
