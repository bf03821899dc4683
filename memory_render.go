package memedit

import (
	"fmt"
	"strconv"
)

// Options panel labels.
const (
	rowLengthLabel   = "Row length"
	previewDataLabel = "Preview data"
	showASCIILabel   = "Show ASCII"
)

// Draw paints the editor into s using the geometry of the last Layout.
func (e *MemoryEditor) Draw(s Surface) {
	vp := e.viewport
	if vp.W <= 0 || vp.H <= 0 {
		return
	}
	st := e.style
	d := e.state.Dimensions

	s.PushClip(vp)
	defer s.PopClip()

	s.FillRect(vp, st.Background)

	if d.RowCount > 0 {
		gridH := float32(d.RowCount) * d.CharHeight
		e.drawSeparator(s, vp.X+d.AddressSeparatorX, vp.Y, gridH)
		if e.opts.ShowASCII {
			e.drawSeparator(s, vp.X+d.ASCIISeparatorX, vp.Y, gridH)
		}
	}

	rowLen := e.opts.RowLength
	addr := e.state.StartAddress
	y := vp.Y
	for r := 0; r < d.RowCount; r++ {
		lo := r * rowLen
		if lo+rowLen > len(e.state.Data) {
			break
		}
		e.drawRow(s, Vec2{X: vp.X, Y: y}, addr, e.state.Data[lo:lo+rowLen])
		addr = saturatingAdd(addr, uint64(rowLen))
		y += d.CharHeight
	}

	e.drawStatusBar(s)
	if e.state.OptionsOpen {
		e.drawOptionsPanel(s)
	}
}

// drawSeparator draws a one unit wide rule, inset an eighth of a line
// at both ends.
func (e *MemoryEditor) drawSeparator(s Surface, x, y, h float32) {
	inset := e.state.Dimensions.CharHeight / 8
	if h <= 2*inset {
		return
	}
	s.FillRect(Rect{X: x, Y: y + inset, W: 1, H: h - 2*inset}, e.style.Text)
}

// drawRow draws one row: address, bytes and the optional ASCII column.
func (e *MemoryEditor) drawRow(s Surface, origin Vec2, addr uint64, row []byte) {
	st := e.style
	d := e.state.Dimensions
	sel, hasSel := e.state.Selected()

	s.Text(origin, fmt.Sprintf("%06X", addr), st.InactiveText)

	for i, b := range row {
		pos := Vec2{X: origin.X + d.ByteX(i), Y: origin.Y}
		color := st.Text
		if hasSel && sel == addr+uint64(i) {
			s.FillRect(Rect{X: pos.X, Y: pos.Y, W: d.CharWidth * 2, H: d.CharHeight}, st.Selection)
			color = st.SelectedText
		}
		s.Text(pos, hexByte(b), color)
	}

	if !e.opts.ShowASCII {
		return
	}
	if hasSel && sel >= addr && sel-addr < uint64(len(row)) {
		i := int(sel - addr)
		s.FillRect(Rect{X: origin.X + d.ASCIIX(i), Y: origin.Y, W: d.CharWidth, H: d.CharHeight}, st.Selection)
	}
	s.Text(Vec2{X: origin.X + d.SectionASCIIStart, Y: origin.Y}, asciiColumn(row), st.InactiveText)
}

const hexDigits = "0123456789abcdef"

func hexByte(b byte) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0x0f]})
}

// asciiColumn maps printable ASCII to itself and everything else to '.'.
func asciiColumn(row []byte) string {
	buf := make([]byte, len(row))
	for i, b := range row {
		if b >= 32 && b <= 126 {
			buf[i] = b
		} else {
			buf[i] = '.'
		}
	}
	return string(buf)
}

// drawStatusBar draws the bottom bar: options toggle and jump input,
// then the byte input and preview value for a writable selection.
func (e *MemoryEditor) drawStatusBar(s Surface) {
	st := e.style
	d := e.state.Dimensions
	b := e.state.Bounds
	cw := d.CharWidth
	bar := b.StatusBar
	textY := bar.Y + cw/2

	s.FillRect(bar, st.Background)
	s.Text(Vec2{X: b.Options.X, Y: textY}, optionsLabel, st.Text)

	jumpW := s.MeasureText(jumpToLabel).X
	s.Text(Vec2{X: b.AddrInput.X - jumpW - cw, Y: textY}, jumpToLabel, st.Text)
	e.drawInput(s, b.AddrInput, &e.state.AddrInput, textY)

	if sel, ok := e.state.Selected(); ok && e.source.CanWrite(sel) {
		valueW := s.MeasureText(e.state.ValueText).X
		s.Text(Vec2{X: b.ByteInput.X - valueW - cw, Y: textY}, e.state.ValueText, st.Text)
		e.drawInput(s, b.ByteInput, &e.state.ByteInput, textY)

		if preview := e.state.previewText(e.opts.PreviewFormat); preview != "" {
			w := s.MeasureText(preview).X
			s.Text(Vec2{X: bar.X + bar.W - w - cw, Y: textY}, preview, st.Text)
		}
	}
}

func (e *MemoryEditor) drawInput(s Surface, r Rect, in *TextInput, textY float32) {
	st := e.style
	border := st.BorderColor
	if in.Focused {
		border = st.Text
	}
	s.FillRect(r, st.Primary)
	s.StrokeRect(r, border, 1)
	if in.Value != "" {
		s.Text(Vec2{X: r.X + e.state.Dimensions.CharWidth/2, Y: textY}, in.Value, st.Text)
	}
}

// drawOptionsPanel draws the overlay above the status bar.
func (e *MemoryEditor) drawOptionsPanel(s Surface) {
	st := e.style
	d := e.state.Dimensions
	b := e.state.Bounds
	panel := b.OptionsPanel
	labelX := panel.X + d.CharWidth
	offsetY := panel.Y + d.CharHeight*0.5

	if _, _, _, a := UnpackRGBA(st.ShadowColor); a > 0 {
		s.FillRect(panel.Offset(st.ShadowOffset), st.ShadowColor)
	}
	s.FillRect(panel, st.Primary)
	if st.BorderSize > 0 {
		s.StrokeRect(panel, st.BorderColor, st.BorderSize)
	}

	s.Text(Vec2{X: labelX, Y: offsetY}, rowLengthLabel, st.Text)
	e.drawStepper(s, b.PrevRowLength, b.TextRowLength, b.NextRowLength, strconv.Itoa(e.opts.RowLength))

	s.Text(Vec2{X: labelX, Y: offsetY + d.CharHeight}, previewDataLabel, st.Text)
	e.drawStepper(s, b.PrevFormat, b.TextFormat, b.NextFormat, e.opts.PreviewFormat.String())

	box := b.ShowASCIICheckbox
	s.Text(Vec2{X: labelX, Y: box.Y}, showASCIILabel, st.Text)
	s.FillRect(box, st.Background)
	s.StrokeRect(box, st.Text, 1)
	if e.opts.ShowASCII {
		s.FillRect(box.Inset(box.W*0.2), st.Text)
	}
}

func (e *MemoryEditor) drawStepper(s Surface, prev, text, next Rect, value string) {
	c := e.style.Text
	s.Text(Vec2{X: prev.X, Y: prev.Y}, "<", c)
	s.Text(Vec2{X: text.X, Y: text.Y}, value, c)
	s.Text(Vec2{X: next.X, Y: next.Y}, ">", c)
}
