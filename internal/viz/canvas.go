package viz

import "strings"

// Braille cells hold 2x4 dots:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// Unicode offset 0x2800.
const brailleBlank = 0x2800

var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of braille cells addressed in sub-pixels: a canvas
// of Width x Height cells has (Width*2) x (Height*4) dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  max(w, 0),
		Height: max(h, 0),
		Grid:   make([][]rune, max(h, 0)),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, c.Width)
	}
	c.Clear()
	return c
}

// Set lights the dot at (x, y); y grows downwards.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
}

// Column lights a vertical run of n dots at x, rising from the bottom edge.
func (c *Canvas) Column(x, n int) {
	bottom := c.Height*4 - 1
	for i := 0; i < n; i++ {
		c.Set(x, bottom-i)
	}
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

// BrailleBars draws one dot column per value on a width x height cell
// canvas, fitting up to width*2 values. Extra values are dropped.
func BrailleBars(values []int, width, height int) string {
	c := NewCanvas(width, height)
	top := maxValue(values)
	dots := height * 4
	for i, v := range values {
		if i >= width*2 {
			break
		}
		if v > 0 {
			c.Column(i, scale(v, top, dots))
		}
	}
	return c.String()
}

func maxValue(values []int) int {
	top := 0
	for _, v := range values {
		top = max(top, v)
	}
	if top == 0 {
		return 1
	}
	return top
}

// scale maps v in [0, top] to [0, n], rounding to nearest.
func scale(v, top, n int) int {
	if v <= 0 {
		return 0
	}
	return min(n, (v*n*2+top)/(top*2))
}
