// Package viz renders the simulation box in the terminal: a braille
// scatter canvas and a bubbletea live view of a running chain.
package viz

import "strings"

// Braille patterns: 2x4 dots per cell
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

// Canvas is a braille dot grid. Cell (col,row) resolution is
// Width x Height; dot resolution is (Width*2) x (Height*4).
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
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights the dot at (x, y) in dot coordinates.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets every cell to the empty braille character.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// Scatter lights one dot per point, mapping unit coordinates in
// [0,1)x[0,1) onto the full dot grid. The y axis points up.
func (c *Canvas) Scatter(points [][2]float64) {
	maxX := float64(c.Width * 2)
	maxY := float64(c.Height * 4)
	for _, p := range points {
		x := int(p[0] * maxX)
		y := int((1 - p[1]) * maxY)
		c.Set(x, y)
	}
}

// String renders the grid with a box border.
func (c *Canvas) String() string {
	var b strings.Builder
	b.WriteString("┌" + strings.Repeat("─", c.Width) + "┐\n")
	for _, row := range c.Grid {
		b.WriteString("│")
		b.WriteString(string(row))
		b.WriteString("│\n")
	}
	b.WriteString("└" + strings.Repeat("─", c.Width) + "┘\n")
	return b.String()
}
