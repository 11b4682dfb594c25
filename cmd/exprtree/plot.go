package main

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/zephyrtronium/exprtree"
)

const (
	axisH  = '-'
	axisV  = '|'
	origin = '+'
	mark   = '*'
	blank  = ' '
)

// nothing is the cell index of coordinates outside the canvas.
const nothing = -1

// canvas is a grid of runes covering [-maxx, maxx] by [-maxy, maxy]. Row 0 is
// the top of the plot.
type canvas struct {
	maxx, maxy float64
	cells      [][]rune
}

func newCanvas(width, height int, maxx, maxy float64) *canvas {
	c := &canvas{maxx: maxx, maxy: maxy, cells: make([][]rune, height)}
	for i := range c.cells {
		c.cells[i] = []rune(strings.Repeat(string(blank), width))
	}
	ox, oy := c.col(0), c.row(0)
	for _, r := range c.cells {
		r[ox] = axisV
	}
	for i := range c.cells[oy] {
		c.cells[oy][i] = axisH
	}
	c.cells[oy][ox] = origin
	return c
}

func (c *canvas) width() int  { return len(c.cells[0]) }
func (c *canvas) height() int { return len(c.cells) }

// col gives the column for x, or nothing if x is outside the canvas.
func (c *canvas) col(x float64) int {
	return cell(x+c.maxx, 2*c.maxx, c.width())
}

// row gives the row for y, or nothing if y is outside the canvas.
func (c *canvas) row(y float64) int {
	return cell(c.maxy-y, 2*c.maxy, c.height())
}

func cell(v, span float64, n int) int {
	if !(v >= 0 && v <= span) {
		return nothing
	}
	return int(math.Round(v / span * float64(n-1)))
}

// plot marks each finite point that lies within the canvas and joins
// consecutive marked points with a vertical run in the later point's column.
// It returns the number of points marked.
func (c *canvas) plot(pts []exprtree.Point) (marked int) {
	prev := nothing
	for _, p := range pts {
		x, y := nothing, nothing
		if p.Finite() {
			x, y = c.col(p.X), c.row(p.Y)
		}
		if x == nothing || y == nothing {
			prev = nothing
			continue
		}
		if prev != nothing {
			step := 1
			if y < prev {
				step = -1
			}
			for r := prev; r != y; {
				r += step
				c.cells[r][x] = mark
			}
		}
		c.cells[y][x] = mark
		marked++
		prev = y
	}
	return marked
}

// WriteTo writes the canvas one row per line without trailing blanks.
func (c *canvas) WriteTo(w io.Writer) (int64, error) {
	b := bufio.NewWriter(w)
	var n int64
	for _, r := range c.cells {
		k, _ := b.WriteString(strings.TrimRight(string(r), string(blank)))
		n += int64(k)
		if err := b.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, b.Flush()
}
