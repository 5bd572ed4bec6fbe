package core

import (
	"strings"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(80, 24)

	if c.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", c.Width())
	}
	if c.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", c.Height())
	}

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.Get(x, y) != ' ' {
				t.Fatalf("New canvas should be filled with spaces, got %q at (%d, %d)", c.Get(x, y), x, y)
			}
		}
	}
}

func TestNewCanvasNegativeSize(t *testing.T) {
	c := NewCanvas(-5, -1)
	if c.Width() != 0 || c.Height() != 0 {
		t.Errorf("Negative sizes should clamp to 0, got %dx%d", c.Width(), c.Height())
	}
	if c.String() != "" {
		t.Errorf("Empty canvas String() = %q, expected empty", c.String())
	}
}

func TestCanvasSetGet(t *testing.T) {
	c := NewCanvas(10, 10)

	c.Set(5, 5, 'X')
	if c.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", c.Get(5, 5))
	}

	c.Set(-1, 0, 'A')
	c.Set(100, 0, 'A')
	c.Set(0, -1, 'A')
	c.Set(0, 100, 'A')

	if c.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if c.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestCanvasSetColored(t *testing.T) {
	c := NewCanvas(4, 4)
	c.SetColored(1, 2, '*', ColorYellow)

	cell := c.GetCell(1, 2)
	if cell.Rune != '*' || cell.Color != ColorYellow {
		t.Errorf("GetCell(1, 2) = %+v, expected '*' yellow", cell)
	}

	c.Clear()
	if cell := c.GetCell(1, 2); cell.Color != ColorDefault || cell.Rune != ' ' {
		t.Errorf("After Clear, GetCell(1, 2) = %+v, expected blank", cell)
	}
}

func TestCanvasFill(t *testing.T) {
	c := NewCanvas(5, 5)
	c.Fill('#')

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if c.Get(x, y) != '#' {
				t.Errorf("After Fill, expected '#' at (%d, %d), got %q", x, y, c.Get(x, y))
			}
		}
	}
}

func TestCanvasDrawText(t *testing.T) {
	c := NewCanvas(20, 5)
	c.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if c.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, c.Get(2+i, 1))
		}
	}

	c.DrawText(18, 0, "Hello")
	if c.Get(18, 0) != 'H' || c.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestCanvasDrawTextCentered(t *testing.T) {
	c := NewCanvas(20, 5)
	c.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if c.Get(x, 2) != 'H' || c.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestCanvasDrawLines(t *testing.T) {
	c := NewCanvas(10, 6)
	next := c.DrawLines(1, []string{"ab", "cd"}, ColorCyan)

	if next != 3 {
		t.Errorf("DrawLines() = %d, expected 3", next)
	}
	if c.Get(4, 1) != 'a' || c.Get(5, 2) != 'd' {
		t.Errorf("DrawLines placed text incorrectly: %q", c.String())
	}
	if c.GetCell(4, 1).Color != ColorCyan {
		t.Error("DrawLines should apply the color")
	}
}

func TestCanvasDrawRect(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawRect(NewRect(2, 2, 3, 3), '#', ColorDefault)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c.Get(x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, c.Get(x, y))
			}
		}
	}

	if c.Get(1, 1) != ' ' || c.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestCanvasDrawBox(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, tc := range corners {
		if got := c.Get(tc.x, tc.y); got != tc.want {
			t.Errorf("corner (%d, %d) = %q, expected %q", tc.x, tc.y, got, tc.want)
		}
	}

	for x := 2; x < 5; x++ {
		if c.Get(x, 1) != '─' || c.Get(x, 4) != '─' {
			t.Errorf("Horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if c.Get(1, y) != '│' || c.Get(5, y) != '│' {
			t.Errorf("Vertical edge missing at y=%d", y)
		}
	}
}

func TestCanvasLines(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawHLine(2, 2, 5, '-', ColorDefault)
	c.DrawVLine(8, 2, 4, '|', ColorDefault)

	for x := 2; x < 7; x++ {
		if c.Get(x, 2) != '-' {
			t.Errorf("DrawHLine: expected '-' at (%d, 2), got %q", x, c.Get(x, 2))
		}
	}
	for y := 2; y < 6; y++ {
		if c.Get(8, y) != '|' {
			t.Errorf("DrawVLine: expected '|' at (8, %d), got %q", y, c.Get(8, y))
		}
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(5, 3)
	c.DrawText(0, 0, "AAAAA")
	c.DrawText(0, 1, "BBBBB")
	c.DrawText(0, 2, "CCCCC")

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := c.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawText(0, 0, "Hello")
	c.DrawText(0, 5, "World")

	c.Resize(8, 4)
	if c.Width() != 8 || c.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", c.Width(), c.Height())
	}
	if row0 := c.Row(0); !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	c.Resize(15, 8)
	if row0 := c.Row(0); !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}

func TestCanvasRow(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawText(0, 2, "Test")

	row := c.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if out := c.Row(-1); out != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", out)
	}
}
