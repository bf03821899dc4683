package terminal_test

import (
	"strings"
	"testing"

	"github.com/go-theft-auto/memedit"
	"github.com/go-theft-auto/memedit/backend/terminal"
)

var (
	fg = memedit.ColorWhite
	bg = memedit.ColorBlack
)

func TestCanvasText(t *testing.T) {
	c := terminal.NewCanvas(10, 2, fg, bg)
	c.Text(memedit.Vec2{X: 2, Y: 1}, "hello", memedit.ColorGray)

	if got := c.Line(1); got != "  hello   " {
		t.Errorf("Expected %q, got %q", "  hello   ", got)
	}
	ch, gotFg, gotBg := c.Cell(2, 1)
	if ch != 'h' || gotFg != memedit.ColorGray || gotBg != bg {
		t.Errorf("Expected 'h' gray on black, got %q %#x %#x", ch, gotFg, gotBg)
	}
}

func TestCanvasTextRoundsToNearestCell(t *testing.T) {
	c := terminal.NewCanvas(10, 3, fg, bg)
	c.Text(memedit.Vec2{X: 2.6, Y: 1.4}, "ab", fg)

	if got := c.Line(1); got != "   ab     " {
		t.Errorf("Expected text at column 3 of row 1, got %q", got)
	}
}

func TestCanvasClipping(t *testing.T) {
	c := terminal.NewCanvas(10, 1, fg, bg)
	c.PushClip(memedit.Rect{X: 2, Y: 0, W: 3, H: 1})
	c.Text(memedit.Vec2{X: 0, Y: 0}, "abcdefgh", fg)
	c.PopClip()

	if got := c.Line(0); got != "  cde     " {
		t.Errorf("Expected clipped text %q, got %q", "  cde     ", got)
	}

	c.Text(memedit.Vec2{X: 8, Y: 0}, "xyz", fg)
	if got := c.Line(0); got != "  cde   xy" {
		t.Errorf("Expected text cut at the right edge, got %q", got)
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := terminal.NewCanvas(4, 4, fg, bg)
	c.Text(memedit.Vec2{X: 0, Y: 1}, "abcd", fg)
	red := memedit.RGBA(255, 0, 0, 255)
	c.FillRect(memedit.Rect{X: 1, Y: 1, W: 2, H: 2}, red)

	if got := c.Line(1); got != "a  d" {
		t.Errorf("Expected fill to blank the cells, got %q", got)
	}
	if _, _, b := c.Cell(1, 2); b != red {
		t.Errorf("Expected red background at (1,2), got %#x", b)
	}
	if _, _, b := c.Cell(3, 3); b != bg {
		t.Errorf("Expected untouched background at (3,3), got %#x", b)
	}

	// A transparent fill is a no-op.
	c.FillRect(memedit.Rect{X: 0, Y: 0, W: 4, H: 4}, memedit.ColorTransparent)
	if _, _, b := c.Cell(0, 0); b != bg {
		t.Errorf("Expected transparent fill to leave the cell, got %#x", b)
	}
}

func TestCanvasThinFillCoversOneCell(t *testing.T) {
	c := terminal.NewCanvas(4, 1, fg, bg)
	c.FillRect(memedit.Rect{X: 1, Y: 0, W: 0.2, H: 1}, fg)

	if _, _, b := c.Cell(1, 0); b != fg {
		t.Errorf("Expected a narrow rectangle to cover one cell")
	}
	if _, _, b := c.Cell(2, 0); b != bg {
		t.Errorf("Expected the next cell to stay clear")
	}
}

func TestCanvasStrokeRect(t *testing.T) {
	c := terminal.NewCanvas(5, 3, fg, bg)
	c.StrokeRect(memedit.Rect{X: 0, Y: 0, W: 5, H: 3}, fg, 1)

	want := []string{"┌───┐", "│   │", "└───┘"}
	for y, w := range want {
		if got := c.Line(y); got != w {
			t.Errorf("Row %d: expected %q, got %q", y, w, got)
		}
	}

	small := terminal.NewCanvas(3, 1, fg, bg)
	small.StrokeRect(memedit.Rect{X: 0, Y: 0, W: 3, H: 1}, fg, 1)
	if got := small.Line(0); got != "   " {
		t.Errorf("Expected a one row rectangle to stay unstroked, got %q", got)
	}
}

func TestCanvasMetrics(t *testing.T) {
	c := terminal.NewCanvas(1, 1, fg, bg)
	m := memedit.MeasureMetrics(c)
	if m.CharWidth != 1 || m.CharHeight != 1 {
		t.Errorf("Expected 1x1 cells, got %+v", m)
	}
	if got := c.MeasureText("héllo").X; got != 5 {
		t.Errorf("Expected width 5, got %v", got)
	}
}

func TestCanvasResizeAndRender(t *testing.T) {
	c := terminal.NewCanvas(2, 2, fg, bg)
	c.Text(memedit.Vec2{}, "ab", fg)
	c.Resize(3, 4)

	if w, h := c.Size(); w != 3 || h != 4 {
		t.Errorf("Expected 3x4, got %dx%d", w, h)
	}
	if got := c.Line(0); got != "   " {
		t.Errorf("Expected resize to clear, got %q", got)
	}

	c.Text(memedit.Vec2{}, "xyz", fg)
	out := c.Render()
	if n := strings.Count(out, "\n"); n != 3 {
		t.Errorf("Expected 4 rendered lines, got %d", n+1)
	}
	if !strings.Contains(out, "xyz") {
		t.Errorf("Expected rendered output to contain the run %q", "xyz")
	}
}

func TestCanvasCellOutOfRange(t *testing.T) {
	c := terminal.NewCanvas(2, 2, fg, bg)
	if ch, _, _ := c.Cell(5, 0); ch != 0 {
		t.Errorf("Expected zero rune outside the grid, got %q", ch)
	}
	if got := c.Line(-1); got != "" {
		t.Errorf("Expected empty line outside the grid, got %q", got)
	}
}
