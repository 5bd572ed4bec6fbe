package core

import (
	"strings"
)

// Cell is a single character position on the canvas.
type Cell struct {
	Rune  rune
	Color Color
}

// blank is the value every cell holds after Clear.
var blank = Cell{Rune: ' ', Color: ColorDefault}

// Canvas is a 2D grid of colored cells that screens render into.
// It decouples screens from the frontend: the terminal and desktop
// platforms both draw the same canvas once per frame.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCanvas creates a new canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  max(width, 0),
		height: max(height, 0),
	}
	c.allocate()
	c.Clear()
	return c
}

// allocate creates the underlying cell storage.
func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in characters.
func (c *Canvas) Height() int {
	return c.height
}

// Resize changes the canvas dimensions, preserving content where possible.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == c.width && height == c.height {
		return
	}

	oldCells := c.cells
	oldW, oldH := c.width, c.height

	c.width = width
	c.height = height
	c.allocate()
	c.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(c.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear resets every cell to a blank default-colored space.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = blank
		}
	}
}

// Fill fills the entire canvas with the given rune.
func (c *Canvas) Fill(r rune) {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: r}
		}
	}
}

// Set places a default-colored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, r rune) {
	c.SetColored(x, y, r, ColorDefault)
}

// SetColored places a rune with a color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) SetColored(x, y int, r rune, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: color}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (c *Canvas) Get(x, y int) rune {
	return c.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (c *Canvas) GetCell(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return blank
	}
	return c.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond canvas bounds are clipped.
func (c *Canvas) DrawText(x, y int, text string) {
	c.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes a colored string horizontally starting at (x, y).
func (c *Canvas) DrawTextColored(x, y int, text string, color Color) {
	i := 0
	for _, r := range text {
		c.SetColored(x+i, y, r, color)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (c *Canvas) DrawTextCentered(y int, text string, color Color) {
	x := (c.width - len([]rune(text))) / 2
	c.DrawTextColored(x, y, text, color)
}

// DrawLines draws a block of lines centered horizontally, starting at y.
// Returns the y coordinate just below the block.
func (c *Canvas) DrawLines(y int, lines []string, color Color) int {
	for i, line := range lines {
		c.DrawTextCentered(y+i, line, color)
	}
	return y + len(lines)
}

// DrawRect fills a rectangular area with the given rune.
func (c *Canvas) DrawRect(r Rect, fill rune, color Color) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			c.SetColored(x, y, fill, color)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (c *Canvas) DrawBox(r Rect, color Color) {
	c.SetColored(r.X, r.Y, '┌', color)
	c.SetColored(r.Right()-1, r.Y, '┐', color)
	c.SetColored(r.X, r.Bottom()-1, '└', color)
	c.SetColored(r.Right()-1, r.Bottom()-1, '┘', color)

	for x := r.X + 1; x < r.Right()-1; x++ {
		c.SetColored(x, r.Y, '─', color)
		c.SetColored(x, r.Bottom()-1, '─', color)
	}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		c.SetColored(r.X, y, '│', color)
		c.SetColored(r.Right()-1, y, '│', color)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (c *Canvas) DrawHLine(x, y, length int, r rune, color Color) {
	for i := 0; i < length; i++ {
		c.SetColored(x+i, y, r, color)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (c *Canvas) DrawVLine(x, y, length int, r rune, color Color) {
	for i := 0; i < length; i++ {
		c.SetColored(x, y+i, r, color)
	}
}

// String converts the canvas to plain text, one row per line.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.width; x++ {
			sb.WriteRune(c.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	var sb strings.Builder
	for _, cell := range c.cells[y] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}
