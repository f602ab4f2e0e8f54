package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected top-left dot 0x2801, got %x", c.Grid[0][0])
	}

	c.Set(1, 3)
	if c.Grid[0][0]&0x80 == 0 {
		t.Errorf("expected bottom-right dot of first cell, got %x", c.Grid[0][0])
	}
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(2, 2)

	// out-of-range coordinates are ignored
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 100)

	for i := range c.Grid {
		for j := range c.Grid[i] {
			if c.Grid[i][j] != 0x2800 {
				t.Fatalf("cell [%d][%d] modified by out-of-range set", i, j)
			}
		}
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Line(0, 0, 19, 39)

	lit := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r > 0x2800 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("diagonal line should light cells")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Line(0, 0, 7, 15)
	c.Clear()

	if strings.ContainsFunc(c.String(), func(r rune) bool { return r > 0x2800 }) {
		t.Error("clear should reset every cell")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	s := c.String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("expected 3 runes per line, got %d", len([]rune(line)))
		}
	}
}
