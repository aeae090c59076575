// Package draw renders the play field to a terminal using half-block characters.
package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Block characters for the two vertical sub-pixels of a cell.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a pixel buffer with 2x vertical resolution.
type Canvas struct {
	cols, rows int
	pixels     []bool // [y*cols + x], y in [0, rows*2)
	text       []overlay
	buf        strings.Builder
	numBuf     [20]byte
}

type overlay struct {
	col, row int
	s        string
}

// NewCanvas creates a canvas for a terminal of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the buffer when the terminal size changed.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if cols == c.cols && rows == c.rows {
		return
	}
	c.cols, c.rows = cols, rows
	c.pixels = make([]bool, cols*rows*2)
}

// Clear resets all pixels and text.
func (c *Canvas) Clear() {
	clear(c.pixels)
	c.text = c.text[:0]
}

// Set lights the pixel containing p.
func (c *Canvas) Set(p Point) {
	c.setPixel(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// Lit reports whether the pixel at x, y is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows*2 {
		return false
	}
	return c.pixels[y*c.cols+x]
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.rows*2 {
		c.pixels[y*c.cols+x] = true
	}
}

// DrawLine draws a line between two points using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1, y1 := int(math.Floor(p1.X)), int(math.Floor(p1.Y))
	x2, y2 := int(math.Floor(p2.X)), int(math.Floor(p2.Y))

	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws the closed outline through points.
func (c *Canvas) DrawPolygon(points []Point) {
	if len(points) < 2 {
		return
	}
	for i := range points {
		c.DrawLine(points[i], points[(i+1)%len(points)])
	}
}

// DrawEllipse approximates an ellipse outline with segments.
func (c *Canvas) DrawEllipse(center Point, rx, ry float64, segments int, rotation float64) {
	if segments < 3 {
		segments = 3
	}
	points := make([]Point, segments)
	for i := range points {
		a := rotation + float64(i)*2*math.Pi/float64(segments)
		points[i] = Point{X: center.X + math.Cos(a)*rx, Y: center.Y + math.Sin(a)*ry}
	}
	c.DrawPolygon(points)
}

// Text places s at a 1-based cell, drawn over the pixels.
func (c *Canvas) Text(col, row int, s string) {
	c.text = append(c.text, overlay{col: col, row: row, s: s})
}

// maxChunkSize keeps writes near a typical MTU for smooth SSH output.
const maxChunkSize = 1400

// Render writes the frame to w. Empty cells are cleared.
func (c *Canvas) Render(w io.Writer) error {
	c.buf.Reset()
	c.buf.Grow(c.cols * c.rows * 4)

	for row := 0; row < c.rows; row++ {
		c.moveCursor(1, row+1)
		top := row * 2 * c.cols
		bottom := top + c.cols
		for col := 0; col < c.cols; col++ {
			t, b := c.pixels[top+col], c.pixels[bottom+col]
			switch {
			case t && b:
				c.buf.WriteRune(BlockFull)
			case t:
				c.buf.WriteRune(BlockUpperHalf)
			case b:
				c.buf.WriteRune(BlockLowerHalf)
			default:
				c.buf.WriteByte(' ')
			}
		}
	}
	for _, o := range c.text {
		c.moveCursor(o.col, o.row)
		c.buf.WriteString(o.s)
	}

	data := c.buf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

func (c *Canvas) moveCursor(col, row int) {
	c.buf.WriteString("\033[")
	c.buf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.buf.WriteByte(';')
	c.buf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.buf.WriteByte('H')
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
