// Package terminal hosts a memedit.MemoryEditor in a terminal with
// bubbletea, drawing through a lipgloss-styled cell grid.
package terminal

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/memedit"
)

type cell struct {
	ch     rune
	fg, bg uint32
}

type cellRect struct {
	x0, y0, x1, y1 int
}

func (r cellRect) intersect(o cellRect) cellRect {
	return cellRect{
		x0: max(r.x0, o.x0), y0: max(r.y0, o.y0),
		x1: min(r.x1, o.x1), y1: min(r.y1, o.y1),
	}
}

// Canvas is a memedit.Surface over a grid of terminal cells. One unit
// is one cell: every character is 1x1. Fractional coordinates round to
// the nearest cell.
type Canvas struct {
	w, h   int
	cells  []cell
	clips  []cellRect
	fg, bg uint32

	styles map[[2]uint32]lipgloss.Style
}

var _ memedit.Surface = (*Canvas)(nil)

// NewCanvas creates a w by h canvas cleared to bg.
func NewCanvas(w, h int, fg, bg uint32) *Canvas {
	c := &Canvas{fg: fg, bg: bg, styles: make(map[[2]uint32]lipgloss.Style)}
	c.Resize(w, h)
	return c
}

// Resize changes the grid size and clears it.
func (c *Canvas) Resize(w, h int) {
	c.w, c.h = max(w, 0), max(h, 0)
	c.cells = make([]cell, c.w*c.h)
	c.Clear()
}

// Size returns the grid size in cells.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

// SetColors sets the colors Clear uses.
func (c *Canvas) SetColors(fg, bg uint32) {
	c.fg, c.bg = fg, bg
}

// Clear blanks every cell and drops the clip stack.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', fg: c.fg, bg: c.bg}
	}
	c.clips = c.clips[:0]
}

func (c *Canvas) clip() cellRect {
	full := cellRect{0, 0, c.w, c.h}
	if n := len(c.clips); n > 0 {
		return full.intersect(c.clips[n-1])
	}
	return full
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}

// toCells maps r to the cells it covers. A rectangle with positive size
// always covers at least one cell in each direction.
func toCells(r memedit.Rect) cellRect {
	cr := cellRect{x0: round(r.X), y0: round(r.Y), x1: round(r.X + r.W), y1: round(r.Y + r.H)}
	if r.W > 0 && cr.x1 == cr.x0 {
		cr.x1++
	}
	if r.H > 0 && cr.y1 == cr.y0 {
		cr.y1++
	}
	return cr
}

func opaque(color uint32) bool {
	_, _, _, a := memedit.UnpackRGBA(color)
	return a > 0
}

func (c *Canvas) at(x, y int) *cell {
	return &c.cells[y*c.w+x]
}

// FillRect paints the background of the covered cells and blanks them.
func (c *Canvas) FillRect(r memedit.Rect, color uint32) {
	if !opaque(color) {
		return
	}
	cr := toCells(r).intersect(c.clip())
	for y := cr.y0; y < cr.y1; y++ {
		for x := cr.x0; x < cr.x1; x++ {
			p := c.at(x, y)
			p.ch = ' '
			p.bg = color
		}
	}
}

// StrokeRect outlines r with box-drawing characters. Rectangles less
// than two cells tall or wide have no room for an outline and are left
// as filled.
func (c *Canvas) StrokeRect(r memedit.Rect, color uint32, thickness float32) {
	if !opaque(color) || thickness <= 0 {
		return
	}
	cr := toCells(r)
	if cr.x1-cr.x0 < 2 || cr.y1-cr.y0 < 2 {
		return
	}
	b := lipgloss.NormalBorder()
	x1, y1 := cr.x1-1, cr.y1-1
	for x := cr.x0 + 1; x < x1; x++ {
		c.set(x, cr.y0, b.Top, color)
		c.set(x, y1, b.Bottom, color)
	}
	for y := cr.y0 + 1; y < y1; y++ {
		c.set(cr.x0, y, b.Left, color)
		c.set(x1, y, b.Right, color)
	}
	c.set(cr.x0, cr.y0, b.TopLeft, color)
	c.set(x1, cr.y0, b.TopRight, color)
	c.set(cr.x0, y1, b.BottomLeft, color)
	c.set(x1, y1, b.BottomRight, color)
}

func (c *Canvas) set(x, y int, s string, fg uint32) {
	cl := c.clip()
	if x < cl.x0 || x >= cl.x1 || y < cl.y0 || y >= cl.y1 {
		return
	}
	p := c.at(x, y)
	p.ch, _ = utf8.DecodeRuneInString(s)
	p.fg = fg
}

// Text writes text starting at the cell nearest pos, keeping each
// cell's background.
func (c *Canvas) Text(pos memedit.Vec2, text string, color uint32) {
	if !opaque(color) {
		return
	}
	cl := c.clip()
	x, y := round(pos.X), round(pos.Y)
	if y < cl.y0 || y >= cl.y1 {
		return
	}
	for _, r := range text {
		if x >= cl.x1 {
			return
		}
		if x >= cl.x0 {
			p := c.at(x, y)
			p.ch = r
			p.fg = color
		}
		x++
	}
}

// MeasureText returns one cell per rune.
func (c *Canvas) MeasureText(text string) memedit.Vec2 {
	return memedit.Vec2{X: float32(utf8.RuneCountInString(text)), Y: 1}
}

// LineHeight is one cell.
func (c *Canvas) LineHeight() float32 { return 1 }

// PushClip restricts drawing to r intersected with the current clip.
func (c *Canvas) PushClip(r memedit.Rect) {
	c.clips = append(c.clips, toCells(r).intersect(c.clip()))
}

// PopClip restores the previous clip.
func (c *Canvas) PopClip() {
	if n := len(c.clips); n > 0 {
		c.clips = c.clips[:n-1]
	}
}

// Cell returns the character and colors at x, y.
func (c *Canvas) Cell(x, y int) (ch rune, fg, bg uint32) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0, 0, 0
	}
	p := c.at(x, y)
	return p.ch, p.fg, p.bg
}

// Line returns row y as plain text.
func (c *Canvas) Line(y int) string {
	if y < 0 || y >= c.h {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < c.w; x++ {
		sb.WriteRune(c.at(x, y).ch)
	}
	return sb.String()
}

func (c *Canvas) style(fg, bg uint32) lipgloss.Style {
	key := [2]uint32{fg, bg}
	if s, ok := c.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(memedit.HexColor(fg))).
		Background(lipgloss.Color(memedit.HexColor(bg)))
	c.styles[key] = s
	return s
}

// Render returns the grid as styled lines. Runs of cells with equal
// colors share one style.
func (c *Canvas) Render() string {
	var out strings.Builder
	var run []rune
	for y := 0; y < c.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		x := 0
		for x < c.w {
			first := c.at(x, y)
			run = run[:0]
			for x < c.w {
				p := c.at(x, y)
				if p.fg != first.fg || p.bg != first.bg {
					break
				}
				run = append(run, p.ch)
				x++
			}
			out.WriteString(c.style(first.fg, first.bg).Render(string(run)))
		}
	}
	return out.String()
}
