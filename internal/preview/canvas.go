package preview

import (
	"strings"

	"github.com/nao1215/neuroscan/internal/neural"
)

// Glyphs used by DrawGraph.
const (
	nodeGlyph  = '●'
	smallGlyph = '•'
	edgeGlyph  = '·'
	blankGlyph = ' '
)

// Canvas is a fixed-size grid of runes.
type Canvas struct {
	width  int
	height int
	cells  [][]rune
}

// NewCanvas returns a blank canvas. Non-positive sizes yield an empty canvas.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(string(blankGlyph), width))
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// Set writes r at (x, y). Points outside the canvas are ignored.
func (c *Canvas) Set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = r
}

// At returns the rune at (x, y), or a blank outside the canvas.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return blankGlyph
	}
	return c.cells[y][x]
}

// Line draws a straight line with Bresenham's algorithm. Cells already
// holding a non-blank rune are left alone so nodes stay on top of edges.
func (c *Canvas) Line(x0, y0, x1, y1 int, r rune) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if c.At(x0, y0) == blankGlyph {
			c.Set(x0, y0, r)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// String joins the rows with newlines.
func (c *Canvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

// cell maps a percentage coordinate onto the canvas.
func (c *Canvas) cell(x, y float64) (int, int) {
	cx := int(x / neural.MaxCoordinate * float64(c.width))
	cy := int(y / neural.MaxCoordinate * float64(c.height))
	return min(cx, c.width-1), min(cy, c.height-1)
}

// DrawGraph draws the edges of g, then its nodes on top. Nodes larger than
// the midpoint of the size range get the bold glyph.
func DrawGraph(c *Canvas, g neural.Graph) {
	if c.width == 0 || c.height == 0 {
		return
	}
	for _, e := range g.Edges {
		x0, y0 := c.cell(e.From.X, e.From.Y)
		x1, y1 := c.cell(e.To.X, e.To.Y)
		c.Line(x0, y0, x1, y1, edgeGlyph)
	}
	for _, n := range g.Nodes {
		x, y := c.cell(n.X, n.Y)
		glyph := smallGlyph
		if n.Size >= (neural.MinSize+neural.MaxSize)/2 {
			glyph = nodeGlyph
		}
		c.Set(x, y, glyph)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
