package memedit

import "math"

// HitKind is what a left click landed on.
type HitKind int

const (
	HitNone HitKind = iota // no pointer position
	HitMiss                // outside every control and byte cell
	HitToggleOptions
	HitAddrInput
	HitByteInput
	HitToggleASCII
	HitFormatPrev
	HitFormatNext
	HitRowLengthPrev
	HitRowLengthNext
	HitByte
)

var hitKindNames = [...]string{
	HitNone:          "none",
	HitMiss:          "miss",
	HitToggleOptions: "toggle-options",
	HitAddrInput:     "addr-input",
	HitByteInput:     "byte-input",
	HitToggleASCII:   "toggle-ascii",
	HitFormatPrev:    "format-prev",
	HitFormatNext:    "format-next",
	HitRowLengthPrev: "row-length-prev",
	HitRowLengthNext: "row-length-next",
	HitByte:          "byte",
}

func (k HitKind) String() string {
	if k < 0 || int(k) >= len(hitKindNames) {
		return "unknown"
	}
	return hitKindNames[k]
}

// Hit is the result of HitTest. Row and Index are set for HitByte.
type Hit struct {
	Kind  HitKind
	Row   int
	Index int
}

// HitTest resolves a left click. Controls are checked first, in a fixed
// order, then the byte grid. byteInputAllowed must be true only when a
// writable byte is selected; the panel controls are live only while the
// options panel is open.
func HitTest(pos *Vec2, viewport Rect, d Dimensions, b Bounds, optionsOpen, byteInputAllowed bool) Hit {
	if pos == nil {
		return Hit{Kind: HitNone}
	}
	p := *pos

	switch {
	case b.Options.Contains(p):
		return Hit{Kind: HitToggleOptions}
	case b.AddrInput.Contains(p):
		return Hit{Kind: HitAddrInput}
	case byteInputAllowed && b.ByteInput.Contains(p):
		return Hit{Kind: HitByteInput}
	}

	if optionsOpen {
		switch {
		case b.ShowASCIICheckbox.Contains(p):
			return Hit{Kind: HitToggleASCII}
		case b.PrevFormat.Contains(p):
			return Hit{Kind: HitFormatPrev}
		case b.NextFormat.Contains(p):
			return Hit{Kind: HitFormatNext}
		case b.PrevRowLength.Contains(p):
			return Hit{Kind: HitRowLengthPrev}
		case b.NextRowLength.Contains(p):
			return Hit{Kind: HitRowLengthNext}
		}
	}

	if d.CharHeight <= 0 {
		return Hit{Kind: HitMiss}
	}
	rowF := math.Floor(float64((p.Y - viewport.Y) / d.CharHeight))
	if rowF < 0 || rowF >= float64(d.RowCount) {
		return Hit{Kind: HitMiss}
	}

	idx := d.ByteIndexAt(p.X - (viewport.X + d.SectionDataStart))
	if idx < 0 || idx >= d.RowLength {
		return Hit{Kind: HitMiss}
	}
	return Hit{Kind: HitByte, Row: int(rowF), Index: idx}
}
