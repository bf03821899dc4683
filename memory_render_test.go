package memedit_test

import (
	"encoding/binary"
	"strconv"
	"testing"

	"github.com/go-theft-auto/memedit"
	"github.com/go-theft-auto/memedit/source"
)

func TestDrawRows(t *testing.T) {
	e, _, s := newTestEditor(t)
	e.Draw(s)

	st := memedit.DefaultStyle()
	c, ok := s.find("000000")
	if !ok || c.color != st.InactiveText || c.pos != (memedit.Vec2{}) {
		t.Errorf("Expected the first address at the origin, got %+v (ok=%v)", c, ok)
	}
	if !s.has("000080") {
		t.Error("Expected the ninth row at 0x80")
	}
	if s.has("000090") {
		t.Error("Expected only 9 rows")
	}

	c, ok = s.find("0f")
	if !ok || c.pos.X != e.Dimensions().ByteX(15) {
		t.Errorf("Expected byte 15 as lowercase hex at ByteX(15), got %+v (ok=%v)", c, ok)
	}
	if !s.has("@ABCDEFGHIJKLMNO") {
		t.Error("Expected the ASCII column of row 4")
	}
	if !s.has("................") {
		t.Error("Expected control bytes as dots")
	}

	if s.clips != 0 || s.maxClip == 0 {
		t.Errorf("Expected balanced clipping, depth %d max %d", s.clips, s.maxClip)
	}
	if !s.has("Options") || !s.has("Jump to") {
		t.Error("Expected the status bar labels")
	}
}

func TestDrawSeparators(t *testing.T) {
	e, buf, s := newTestEditor(t)
	e.Draw(s)

	d := e.Dimensions()
	seps := 0
	for _, f := range s.fills {
		if f.r.W == 1 && (f.r.X == d.AddressSeparatorX || f.r.X == d.ASCIISeparatorX) {
			seps++
		}
	}
	if seps != 2 {
		t.Errorf("Expected 2 separators, got %d", seps)
	}

	buf.SetOptions(memedit.Options{RowLength: 16})
	e.Layout(s, testViewport)
	s.reset()
	e.Draw(s)

	seps = 0
	for _, f := range s.fills {
		if f.r.W == 1 && f.r.X == e.Dimensions().AddressSeparatorX {
			seps++
		}
		if f.r.W == 1 && f.r.X == e.Dimensions().ASCIISeparatorX {
			t.Error("Expected no ASCII separator with the column hidden")
		}
	}
	if seps != 1 {
		t.Errorf("Expected the address separator, got %d", seps)
	}
	if s.has("@ABCDEFGHIJKLMNO") {
		t.Error("Expected no ASCII text with the column hidden")
	}
}

func TestDrawSelection(t *testing.T) {
	e, _, s := newTestEditor(t)
	st := memedit.DefaultStyle()

	e.Click(byteCenter(e, 0, 3))
	e.Draw(s)

	n := 0
	for _, f := range s.fills {
		if f.color == st.Selection {
			n++
		}
	}
	if n != 2 {
		t.Errorf("Expected hex and ASCII highlights, got %d", n)
	}
	if !s.has("000003 =") {
		t.Error("Expected the byte input label")
	}
	c, ok := s.find("3")
	if !ok {
		t.Fatal("Expected the U8 preview")
	}
	bar := e.Bounds().StatusBar
	if want := bar.X + bar.W - s.cw - s.cw; c.pos.X != want {
		t.Errorf("Expected the preview right-aligned at %v, got %v", want, c.pos.X)
	}
}

func TestDrawPreviewFormats(t *testing.T) {
	e, buf, s := newTestEditor(t)
	buf.SetOptions(memedit.Options{RowLength: 16, PreviewFormat: memedit.PreviewU32, ShowASCII: true})
	e.Layout(s, testViewport)

	e.Click(byteCenter(e, 0, 0))
	e.Draw(s)
	want := strconv.FormatUint(uint64(binary.NativeEndian.Uint32([]byte{0, 1, 2, 3})), 10)
	if !s.has(want) {
		t.Errorf("Expected U32 preview %s", want)
	}

	// The last visible byte has no room for 4 bytes in the window.
	e.Click(byteCenter(e, 8, 15))
	s.reset()
	e.Draw(s)
	if !s.has("#Error#") {
		t.Error("Expected #Error# when the window is too short")
	}
}

func TestDrawReadOnlySelection(t *testing.T) {
	buf := source.NewBuffer(sequence(256), source.WithWritable(func(addr uint64) bool { return addr != 3 }))
	e, _, s := newEditorOver(t, buf)

	e.Click(byteCenter(e, 0, 3))
	e.Draw(s)
	if s.has("000003 =") {
		t.Error("Expected no byte input for a read-only byte")
	}
	if s.has("3") {
		t.Error("Expected no preview for a read-only byte")
	}
	if _, ok := e.Selected(); !ok {
		t.Error("Expected the read-only byte to stay selected")
	}
}

func TestDrawOptionsPanel(t *testing.T) {
	e, _, s := newTestEditor(t, memedit.WithStyle(memedit.GTAStyle()))
	e.ToggleOptions()
	e.Draw(s)

	for _, label := range []string{"Row length", "Preview data", "Show ASCII", "16", "U8", "<", ">"} {
		if !s.has(label) {
			t.Errorf("Expected %q in the options panel", label)
		}
	}

	st := memedit.GTAStyle()
	panel := e.Bounds().OptionsPanel
	var shadow, fill bool
	for _, f := range s.fills {
		if f.r == panel.Offset(st.ShadowOffset) && f.color == st.ShadowColor {
			shadow = true
		}
		if f.r == panel && f.color == st.Primary {
			fill = true
		}
	}
	if !shadow || !fill {
		t.Errorf("Expected panel shadow and fill, got shadow=%v fill=%v", shadow, fill)
	}

	box := e.Bounds().ShowASCIICheckbox
	inner := false
	for _, f := range s.fills {
		if f.r == box.Inset(box.W*0.2) {
			inner = true
		}
	}
	if !inner {
		t.Error("Expected the checkbox filled while ASCII is shown")
	}
}

func TestDrawEmptyViewport(t *testing.T) {
	e := memedit.NewMemoryEditor(source.NewBuffer(sequence(16)))
	s := newSurface()
	e.Layout(s, memedit.Rect{})
	e.Draw(s)

	if len(s.texts)+len(s.fills)+len(s.strokes) != 0 || s.maxClip != 0 {
		t.Error("Expected nothing drawn into an empty viewport")
	}
}

// shortSource returns at most n bytes per read.
type shortSource struct {
	*source.Buffer
	n uint64
}

func (s shortSource) ReadRange(start, end uint64) []byte {
	return s.Buffer.ReadRange(start, min(end, start+s.n))
}

func TestDrawShortSource(t *testing.T) {
	src := shortSource{Buffer: source.NewBuffer(sequence(256)), n: 20}
	e := memedit.NewMemoryEditor(src)
	s := newSurface()
	e.Layout(s, testViewport)
	e.Draw(s)

	// 20 bytes fill one row; the partial second row is not drawn.
	if !s.has("000000") {
		t.Error("Expected the first row")
	}
	if s.has("000010") {
		t.Error("Expected no partial row")
	}
}
