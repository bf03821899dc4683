package memedit_test

import (
	"testing"

	"github.com/go-theft-auto/memedit"
)

var cell = memedit.Metrics{CharWidth: 10, CharHeight: 20}

func TestComputeDimensions(t *testing.T) {
	d := memedit.ComputeDimensions(cell, 16, 210, false)

	checks := []struct {
		name      string
		got, want float32
	}{
		{"ByteWidth", d.ByteWidth, 25},
		{"GroupSpacing", d.GroupSpacing, 10},
		{"SectionSeparatorSpacing", d.SectionSeparatorSpacing, 20},
		{"SectionDataStart", d.SectionDataStart, 80},
		{"SectionASCIIStart", d.SectionASCIIStart, 80 + 16*25 + 10 + 20},
		{"AddressSeparatorX", d.AddressSeparatorX, 70},
		{"ASCIISeparatorX", d.ASCIISeparatorX, 500},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, c.got)
		}
	}
	if d.RowCount != 9 {
		t.Errorf("Expected floor(210/20) - 1 = 9 rows, got %d", d.RowCount)
	}
	if d.VisibleBytes() != 144 {
		t.Errorf("Expected 144 visible bytes, got %d", d.VisibleBytes())
	}

	open := memedit.ComputeDimensions(cell, 16, 210, true)
	if open.RowCount != 5 {
		t.Errorf("Expected the options panel to take 4 rows, got %d rows", open.RowCount)
	}

	tiny := memedit.ComputeDimensions(cell, 16, 30, true)
	if tiny.RowCount != 0 {
		t.Errorf("Expected no rows in a tiny viewport, got %d", tiny.RowCount)
	}
}

func TestByteXGroups(t *testing.T) {
	d := memedit.ComputeDimensions(cell, 16, 210, false)
	if got := d.ByteX(7) - d.ByteX(6); got != d.ByteWidth {
		t.Errorf("Expected plain spacing inside a group, got %v", got)
	}
	if got := d.ByteX(8) - d.ByteX(7); got != d.ByteWidth+d.GroupSpacing {
		t.Errorf("Expected a group gap after byte 7, got %v", got)
	}
}

func TestHitTestByteRoundTrip(t *testing.T) {
	for _, rowLen := range []int{8, 16, 24, 64} {
		d := memedit.ComputeDimensions(cell, rowLen, 210, false)
		b := memedit.ComputeBounds(d, testViewport)
		for row := 0; row < d.RowCount; row++ {
			for i := 0; i < rowLen; i++ {
				p := memedit.Vec2{
					X: d.ByteX(i) + d.CharWidth,
					Y: float32(row)*d.CharHeight + d.CharHeight/2,
				}
				// Wide rows run past the viewport; only the grid math matters.
				if b.StatusBar.Contains(p) {
					continue
				}
				hit := memedit.HitTest(&p, testViewport, d, b, false, false)
				if hit.Kind != memedit.HitByte || hit.Row != row || hit.Index != i {
					t.Fatalf("row length %d: byte (%d,%d) hit %v row %d index %d",
						rowLen, row, i, hit.Kind, hit.Row, hit.Index)
				}
			}
		}
	}
}

func TestHitTestMisses(t *testing.T) {
	d := memedit.ComputeDimensions(cell, 16, 210, false)
	b := memedit.ComputeBounds(d, testViewport)

	tests := []struct {
		name string
		p    memedit.Vec2
	}{
		{"address column", memedit.Vec2{X: 30, Y: 10}},
		{"below the rows", memedit.Vec2{X: 150, Y: 185}},
		{"ascii column", memedit.Vec2{X: 520, Y: 10}},
		{"above the viewport", memedit.Vec2{X: 100, Y: -5}},
	}
	for _, tt := range tests {
		hit := memedit.HitTest(&tt.p, testViewport, d, b, false, false)
		if hit.Kind != memedit.HitMiss {
			t.Errorf("%s: expected miss, got %v", tt.name, hit.Kind)
		}
	}

	if hit := memedit.HitTest(nil, testViewport, d, b, false, false); hit.Kind != memedit.HitNone {
		t.Errorf("Expected none without a pointer, got %v", hit.Kind)
	}
}

func TestHitTestStatusBar(t *testing.T) {
	d := memedit.ComputeDimensions(cell, 16, 210, false)
	b := memedit.ComputeBounds(d, testViewport)

	if hit := memedit.HitTest(center(b.Options), testViewport, d, b, false, false); hit.Kind != memedit.HitToggleOptions {
		t.Errorf("Expected options toggle, got %v", hit.Kind)
	}
	if hit := memedit.HitTest(center(b.AddrInput), testViewport, d, b, false, false); hit.Kind != memedit.HitAddrInput {
		t.Errorf("Expected address input, got %v", hit.Kind)
	}

	// The byte input only exists for a writable selection.
	if hit := memedit.HitTest(center(b.ByteInput), testViewport, d, b, false, false); hit.Kind != memedit.HitMiss {
		t.Errorf("Expected miss on a hidden byte input, got %v", hit.Kind)
	}
	if hit := memedit.HitTest(center(b.ByteInput), testViewport, d, b, false, true); hit.Kind != memedit.HitByteInput {
		t.Errorf("Expected byte input, got %v", hit.Kind)
	}
}

func TestHitTestOptionsPanel(t *testing.T) {
	d := memedit.ComputeDimensions(cell, 16, 210, true)
	b := memedit.ComputeBounds(d, testViewport)

	tests := []struct {
		r    memedit.Rect
		want memedit.HitKind
	}{
		{b.PrevRowLength, memedit.HitRowLengthPrev},
		{b.NextRowLength, memedit.HitRowLengthNext},
		{b.PrevFormat, memedit.HitFormatPrev},
		{b.NextFormat, memedit.HitFormatNext},
		{b.ShowASCIICheckbox, memedit.HitToggleASCII},
	}
	for _, tt := range tests {
		if hit := memedit.HitTest(center(tt.r), testViewport, d, b, true, false); hit.Kind != tt.want {
			t.Errorf("Expected %v, got %v", tt.want, hit.Kind)
		}
	}

	// Closed panel: the same spot is a plain byte.
	closed := memedit.ComputeDimensions(cell, 16, 210, false)
	cb := memedit.ComputeBounds(closed, testViewport)
	p := center(b.PrevRowLength)
	if hit := memedit.HitTest(p, testViewport, closed, cb, false, false); hit.Kind != memedit.HitByte {
		t.Errorf("Expected a byte under the closed panel, got %v", hit.Kind)
	}
}

func TestHitTestViewportOffset(t *testing.T) {
	vp := memedit.Rect{X: 100, Y: 50, W: 800, H: 210}
	d := memedit.ComputeDimensions(cell, 16, vp.H, false)
	b := memedit.ComputeBounds(d, vp)

	p := memedit.Vec2{X: vp.X + d.ByteX(3) + d.CharWidth, Y: vp.Y + d.CharHeight*2.5}
	hit := memedit.HitTest(&p, vp, d, b, false, false)
	if hit.Kind != memedit.HitByte || hit.Row != 2 || hit.Index != 3 {
		t.Errorf("Expected byte (2,3), got %v (%d,%d)", hit.Kind, hit.Row, hit.Index)
	}
}
