package viz

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a grid of braille cells. Drawing coordinates are sub-pixels:
// the canvas is (Width*2) x (Height*4) dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// Set turns on the dot at sub-pixel (x, y). Cells holding text are left
// alone.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	if c.Grid[row][col] < brailleBlank || c.Grid[row][col] > brailleBlank+0xff {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Label writes s into the cells starting at the cell holding sub-pixel
// (x, y), clipped to the canvas.
func (c *Canvas) Label(x, y int, s string) {
	col, row := x/2, y/4
	if row < 0 || row >= c.Height {
		return
	}
	for _, r := range s {
		if col >= 0 && col < c.Width {
			c.Grid[row][col] = r
		}
		col++
	}
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// CircleLayout places n points evenly on the largest circle that fits the
// canvas, starting at the top and going clockwise.
func (c *Canvas) CircleLayout(n int) [][2]int {
	w, h := float64(c.Width*2), float64(c.Height*4)
	cx, cy := w/2, h/2
	r := math.Min(w, h)/2 - 4

	pts := make([][2]int, n)
	for i := range pts {
		a := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		pts[i] = [2]int{int(cx + r*math.Cos(a)), int(cy + r*math.Sin(a))}
	}
	return pts
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
