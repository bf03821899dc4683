package memedit

import "math"

// Column widths in characters.
const (
	AddressCharLen = 6 // digits in the address column and jump input
	ByteCharLen    = 2 // digits in the byte input
)

// Rows reserved outside the byte grid.
const (
	reservedRows     = 1
	optionsPanelRows = 4
)

const (
	statusBarLines   = 1.5
	inputBoxLines    = 1.1
	inputBoxTopLines = 1.3

	optionsLabel = "Options"
	jumpToLabel  = "Jump to"

	// optionsLabelChars is the label column width of the options panel.
	optionsLabelChars = 13
)

// Dimensions is the grid geometry for one layout pass, derived from the
// font metrics and the row length. X offsets are relative to the
// viewport's left edge.
type Dimensions struct {
	CharWidth  float32
	CharHeight float32

	ByteWidth               float32
	GroupSpacing            float32
	SectionSeparatorSpacing float32

	SectionDataStart  float32
	SectionASCIIStart float32
	AddressSeparatorX float32
	ASCIISeparatorX   float32

	RowCount  int
	RowLength int
}

// ComputeDimensions derives the grid geometry. rowLength must already be
// normalized (see Options.Normalize). A viewport too small for any row
// yields RowCount 0.
func ComputeDimensions(m Metrics, rowLength int, viewportHeight float32, optionsOpen bool) Dimensions {
	cw := m.CharWidth
	d := Dimensions{
		CharWidth:               cw,
		CharHeight:              m.CharHeight,
		ByteWidth:               cw * 2.5,
		GroupSpacing:            cw,
		SectionSeparatorSpacing: cw * 2,
		RowLength:               rowLength,
	}

	d.SectionDataStart = cw*AddressCharLen + d.SectionSeparatorSpacing
	groups := float32(rowLength) / GroupSize
	d.SectionASCIIStart = d.SectionDataStart +
		d.ByteWidth*float32(rowLength) +
		(groups-1)*d.GroupSpacing +
		d.SectionSeparatorSpacing
	d.AddressSeparatorX = d.SectionDataStart - d.SectionSeparatorSpacing/2
	d.ASCIISeparatorX = d.SectionASCIIStart - d.SectionSeparatorSpacing/2

	if m.CharHeight > 0 && viewportHeight > 0 {
		rows := int(math.Floor(float64(viewportHeight/m.CharHeight))) - reservedRows
		if optionsOpen {
			rows -= optionsPanelRows
		}
		d.RowCount = max(rows, 0)
	}
	return d
}

// ByteX returns the x offset where byte i of a row is drawn. One
// GroupSpacing is inserted after every GroupSize bytes.
func (d Dimensions) ByteX(i int) float32 {
	return d.SectionDataStart + float32(i)*d.ByteWidth + float32(i/GroupSize)*d.GroupSpacing
}

// ASCIIX returns the x offset of byte i's character in the ASCII column.
func (d Dimensions) ASCIIX(i int) float32 {
	return d.SectionASCIIStart + float32(i)*d.CharWidth
}

// ByteIndexAt inverts ByteX: it maps an x offset measured from the start
// of the data column to a byte index. The group gap is spread evenly
// over the group's bytes and the slot is shifted by half a gap so each
// gap is split between its neighbours. Negative offsets return -1. The
// result may be >= RowLength.
func (d Dimensions) ByteIndexAt(xInData float32) int {
	if xInData < 0 {
		return -1
	}
	slot := d.ByteWidth + d.GroupSpacing/GroupSize
	if slot <= 0 {
		return -1
	}
	return int((xInData + d.GroupSpacing/2) / slot)
}

// VisibleBytes returns the size of the data window.
func (d Dimensions) VisibleBytes() uint64 {
	return uint64(d.RowCount) * uint64(d.RowLength)
}

// Bounds holds the hit rectangles of every control for one layout pass,
// in surface coordinates.
type Bounds struct {
	StatusBar    Rect
	OptionsPanel Rect

	Options   Rect // "Options" toggle
	AddrInput Rect
	ByteInput Rect

	ShowASCIICheckbox Rect
	PrevFormat        Rect
	NextFormat        Rect
	TextFormat        Rect
	PrevRowLength     Rect
	NextRowLength     Rect
	TextRowLength     Rect
}

// ComputeBounds places the status bar along the bottom of the viewport
// and the options panel directly above it.
func ComputeBounds(d Dimensions, viewport Rect) Bounds {
	cw, ch := d.CharWidth, d.CharHeight
	bottom := viewport.Y + viewport.H
	var b Bounds

	b.StatusBar = Rect{X: viewport.X, Y: bottom - ch*statusBarLines, W: viewport.W, H: ch * statusBarLines}

	optionsW := float32(len(optionsLabel)) * cw
	b.Options = Rect{X: viewport.X, Y: b.StatusBar.Y, W: optionsW, H: b.StatusBar.H}

	// The jump input, byte input and preview share the rest of the bar.
	inputW := (cw + 1) * AddressCharLen * 1.1
	byteInputW := (cw + 1) * 4 * 1.1
	spacing := (viewport.W - optionsW - inputW - byteInputW) / 3
	jumpToW := float32(len(jumpToLabel)) * cw
	inputY := bottom - ch*inputBoxTopLines

	b.AddrInput = Rect{X: viewport.X + spacing + jumpToW + cw, Y: inputY, W: inputW, H: ch * inputBoxLines}
	b.ByteInput = Rect{X: b.AddrInput.X + inputW + spacing, Y: inputY, W: byteInputW, H: ch * inputBoxLines}

	b.OptionsPanel = Rect{
		X: viewport.X + cw*0.5,
		Y: b.StatusBar.Y - ch*optionsPanelRows,
		W: viewport.W - cw,
		H: ch * optionsPanelRows,
	}

	offsetY := b.OptionsPanel.Y + ch*0.5
	baseX := b.OptionsPanel.X + cw + optionsLabelChars*cw
	checkbox := ch * 0.8

	stepper := func(y float32) (prev, text, next Rect) {
		prev = Rect{X: baseX, Y: y, W: cw, H: ch}
		text = Rect{X: baseX + 2*cw, Y: y, W: 3 * cw, H: ch}
		next = Rect{X: baseX + 6*cw, Y: y, W: cw, H: ch}
		return prev, text, next
	}
	b.PrevRowLength, b.TextRowLength, b.NextRowLength = stepper(offsetY)
	b.PrevFormat, b.TextFormat, b.NextFormat = stepper(offsetY + ch)
	b.ShowASCIICheckbox = Rect{X: baseX + 3*cw, Y: offsetY + 2*ch, W: checkbox, H: checkbox}

	return b
}
