package memedit

import (
	"fmt"
	"strings"
)

// Update applies one frame of polled input: a left click, the wheel,
// typed characters and the editing keys. Layout must have run for the
// current frame.
func (e *MemoryEditor) Update(input *InputState) Status {
	var st Status
	if input == nil {
		return st
	}
	pos := input.MousePos()

	if input.MouseClicked(MouseButtonLeft) {
		st = st.Merge(e.Click(pos))
	}

	if input.MouseWheelY != 0 && (pos == nil || e.viewport.Contains(*pos)) {
		// Wheel-up reports a positive delta and scrolls towards lower addresses.
		st = st.Merge(e.Scroll(-input.MouseWheelY))
	}

	if !e.state.HasFocusedInput() {
		if input.ModCtrl && input.KeyPressed(KeyC) {
			st = st.Merge(e.Copy())
		}
		return st
	}

	if input.ModCtrl && input.KeyPressed(KeyV) {
		st = st.Merge(e.Paste())
	} else if !input.ModCtrl {
		for _, r := range input.InputChars {
			st = st.Merge(e.TypeChar(r))
		}
	}
	if input.KeyRepeated(KeyBackspace) {
		st = st.Merge(e.PressKey(KeyBackspace))
	}
	switch {
	case input.KeyPressed(KeyEnter):
		st = st.Merge(e.PressKey(KeyEnter))
	case input.KeyPressed(KeyEscape):
		st = st.Merge(e.PressKey(KeyEscape))
	}
	return st
}

// Click handles a left press at pos. Both text inputs lose focus first;
// a press that lands nowhere clears the selection.
func (e *MemoryEditor) Click(pos *Vec2) Status {
	hadFocus := e.state.HasFocusedInput()
	e.state.BlurInputs()

	sel, hasSel := e.state.Selected()
	allowed := hasSel && e.source.CanWrite(sel)
	hit := HitTest(pos, e.viewport, e.state.Dimensions, e.state.Bounds, e.state.OptionsOpen, allowed)

	captured := Status{Captured: true, Redraw: true}
	switch hit.Kind {
	case HitNone:
		return Status{Redraw: hadFocus}

	case HitToggleOptions:
		return e.ToggleOptions()

	case HitAddrInput:
		e.state.AddrInput.Focus()
		return captured

	case HitByteInput:
		e.state.ByteInput.Focus()
		return captured

	case HitToggleASCII:
		opts := e.opts
		opts.ShowASCII = !opts.ShowASCII
		return e.setOptions(opts, ActionShowASCIIChanged)

	case HitFormatPrev:
		opts := e.opts
		opts.PreviewFormat = opts.PreviousFormat()
		return e.setOptions(opts, ActionPreviewFormatChanged)

	case HitFormatNext:
		opts := e.opts
		opts.PreviewFormat = opts.NextFormat()
		return e.setOptions(opts, ActionPreviewFormatChanged)

	case HitRowLengthPrev:
		opts := e.opts
		opts.RowLength = opts.DecreaseRowLength()
		return e.setOptions(opts, ActionRowLengthChanged)

	case HitRowLengthNext:
		opts := e.opts
		opts.RowLength = opts.IncreaseRowLength()
		return e.setOptions(opts, ActionRowLengthChanged)

	case HitByte:
		offset := uint64(hit.Row)*uint64(e.opts.RowLength) + uint64(hit.Index)
		e.state.Select(saturatingAdd(e.state.StartAddress, offset))
		return captured
	}

	if hasSel && !allowed && pos != nil && e.state.Bounds.ByteInput.Contains(*pos) {
		e.logger.Debug("Click: byte input rejected, address is read-only",
			"addr", fmt.Sprintf("%#x", sel))
	}
	e.state.ClearSelection()
	return captured
}

// ToggleOptions opens or closes the options panel.
func (e *MemoryEditor) ToggleOptions() Status {
	e.state.OptionsOpen = !e.state.OptionsOpen
	st := e.relayout()
	e.emit(Action{Kind: ActionOptionsToggled, OptionsOpen: e.state.OptionsOpen})
	return Status{Captured: true, Relayout: true, Redraw: true}.Merge(st)
}

// setOptions normalizes opts, pushes them to the source and lays out
// again with whatever the source then reports.
func (e *MemoryEditor) setOptions(opts Options, kind ActionKind) Status {
	opts = opts.Normalize()
	e.source.SetOptions(opts)
	st := e.relayout()
	e.logger.Debug("Options: changed",
		"action", kind.String(),
		"rowLength", e.opts.RowLength,
		"format", e.opts.PreviewFormat.String(),
		"showASCII", e.opts.ShowASCII)
	e.emit(Action{Kind: kind, Options: e.opts})
	return Status{Captured: true, Redraw: true}.Merge(st)
}

// Scroll moves the view by whole rows; fractional lines are truncated.
// Positive lines move towards higher addresses.
func (e *MemoryEditor) Scroll(lines float32) Status {
	if !e.state.Scroll(lines, e.opts.RowLength) {
		return Status{Captured: true}
	}
	e.relayout()
	e.emitRange()
	return Status{Captured: true, Redraw: true}
}

// JumpTo makes addr the first visible address.
func (e *MemoryEditor) JumpTo(addr uint64) Status {
	e.state.JumpTo(addr)
	e.relayout()
	e.logger.Debug("Jump: start address", "addr", fmt.Sprintf("%#x", addr))
	e.emitRange()
	return Status{Captured: true, Redraw: true}
}

func (e *MemoryEditor) emitRange() {
	start, end := e.state.windowRange()
	e.emit(Action{Kind: ActionDataRangeChanged, Address: start, End: end})
}

// FocusAddressInput gives the jump input keyboard focus.
func (e *MemoryEditor) FocusAddressInput() Status {
	e.state.BlurInputs()
	e.state.AddrInput.Focus()
	return Status{Captured: true, Redraw: true}
}

// focusedInput returns the text input holding focus, or nil.
func (e *MemoryEditor) focusedInput() *TextInput {
	switch {
	case e.state.AddrInput.Focused:
		return &e.state.AddrInput
	case e.state.ByteInput.Focused:
		return &e.state.ByteInput
	}
	return nil
}

// TypeChar appends r to the focused input. Characters are captured
// while an input has focus even when they are not hex digits.
func (e *MemoryEditor) TypeChar(r rune) Status {
	in := e.focusedInput()
	if in == nil {
		return Status{}
	}
	return Status{Captured: true, Redraw: in.Insert(r)}
}

// PressKey handles Backspace, Enter and Escape for the focused input.
func (e *MemoryEditor) PressKey(k Key) Status {
	in := e.focusedInput()
	if in == nil {
		return Status{}
	}
	switch k {
	case KeyBackspace:
		return Status{Captured: true, Redraw: in.Backspace()}
	case KeyEscape:
		in.Blur()
		return Status{Captured: true, Redraw: true}
	case KeyEnter:
		if in == &e.state.AddrInput {
			return e.commitAddress()
		}
		return e.commitByte()
	}
	return Status{Captured: true}
}

func (e *MemoryEditor) commitAddress() Status {
	text := e.state.AddrInput.Value
	addr, ok := e.state.AddrInput.Commit(64)
	if !ok {
		e.logger.Debug("Jump: ignoring unparsable address", "text", text)
		return Status{Captured: true, Redraw: true}
	}
	return e.JumpTo(addr)
}

func (e *MemoryEditor) commitByte() Status {
	text := e.state.ByteInput.Value
	v, ok := e.state.ByteInput.Commit(8)
	if !ok {
		e.logger.Debug("Write: ignoring unparsable byte", "text", text)
		return Status{Captured: true, Redraw: true}
	}
	addr, hasSel := e.state.Selected()
	if !hasSel || !e.source.CanWrite(addr) {
		return Status{Captured: true, Redraw: true}
	}
	e.source.SetByte(addr, byte(v))
	e.refetch()
	e.logger.Debug("Write: byte stored",
		"addr", fmt.Sprintf("%#x", addr),
		"value", fmt.Sprintf("%#02x", v))
	e.emit(Action{Kind: ActionByteWritten, Address: addr, Value: byte(v)})
	return Status{Captured: true, Redraw: true}
}

// Copy puts the selected byte on the clipboard as two hex digits.
func (e *MemoryEditor) Copy() Status {
	cb := e.clipboardProvider()
	addr, ok := e.state.Selected()
	if cb == nil || !ok {
		return Status{}
	}
	data, ok := e.state.windowSlice(addr, 1)
	if !ok {
		return Status{}
	}
	cb.SetText(fmt.Sprintf("%02X", data[0]))
	return Status{Captured: true}
}

// Paste appends the clipboard's hex digits to the focused input. An
// optional 0x prefix and surrounding blanks are skipped; pasting stops
// at the first other character or when the input is full.
func (e *MemoryEditor) Paste() Status {
	in := e.focusedInput()
	cb := e.clipboardProvider()
	if in == nil || cb == nil {
		return Status{Captured: in != nil}
	}
	text := strings.TrimSpace(cb.GetText())
	if len(text) > 1 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		text = text[2:]
	}
	changed := false
	for _, r := range text {
		if !in.Insert(r) {
			break
		}
		changed = true
	}
	return Status{Captured: true, Redraw: changed}
}
