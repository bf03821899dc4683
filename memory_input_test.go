package memedit_test

import (
	"testing"

	"github.com/go-theft-auto/memedit"
	"github.com/go-theft-auto/memedit/source"
)

type memClipboard struct {
	text string
}

func (c *memClipboard) GetText() string     { return c.text }
func (c *memClipboard) SetText(text string) { c.text = text }

// actionLog collects the actions an editor emits.
type actionLog struct {
	actions []memedit.Action
}

func (l *actionLog) handle(a memedit.Action) { l.actions = append(l.actions, a) }

func (l *actionLog) last() memedit.Action {
	if len(l.actions) == 0 {
		return memedit.Action{}
	}
	return l.actions[len(l.actions)-1]
}

func typeString(e *memedit.MemoryEditor, s string) {
	for _, r := range s {
		e.TypeChar(r)
	}
}

func TestJumpToAddress(t *testing.T) {
	log := &actionLog{}
	e, _, _ := newTestEditor(t, memedit.WithActionHandler(log.handle))

	e.FocusAddressInput()
	typeString(e, "00100A")
	st := e.PressKey(memedit.KeyEnter)

	if !st.Captured || !st.Redraw {
		t.Errorf("Expected a captured redraw, got %+v", st)
	}
	if got := e.StartAddress(); got != 0x00100A {
		t.Errorf("Expected start address 0x00100A, got %#x", got)
	}
	in := e.State().AddrInput
	if in.Value != "" || in.Focused {
		t.Errorf("Expected the jump input cleared and blurred, got %+v", in)
	}

	a := log.last()
	if a.Kind != memedit.ActionDataRangeChanged || a.Address != 0x100A || a.End != 0x100A+144 {
		t.Errorf("Unexpected action %+v", a)
	}
	if n := len(e.State().Data); n != 144 {
		t.Errorf("Expected a padded 144 byte window past the buffer end, got %d", n)
	}
}

func TestAddressInputEditing(t *testing.T) {
	e, _, _ := newTestEditor(t)
	e.FocusAddressInput()

	if st := e.TypeChar('g'); !st.Captured || st.Redraw {
		t.Errorf("Expected a non-hex char to be captured without change, got %+v", st)
	}
	typeString(e, "1234567")
	if got := e.State().AddrInput.Value; got != "123456" {
		t.Errorf("Expected input capped at 6 digits, got %q", got)
	}

	e.PressKey(memedit.KeyBackspace)
	if got := e.State().AddrInput.Value; got != "12345" {
		t.Errorf("Expected backspace to drop a digit, got %q", got)
	}

	e.PressKey(memedit.KeyEscape)
	if e.HasFocus() {
		t.Error("Expected Escape to blur the input")
	}
	if e.StartAddress() != 0 {
		t.Errorf("Expected Escape not to jump, got %#x", e.StartAddress())
	}
	if st := e.TypeChar('1'); st.Captured {
		t.Error("Expected typing without focus to be ignored")
	}
}

func TestEmptyCommitIsIgnored(t *testing.T) {
	log := &actionLog{}
	e, _, _ := newTestEditor(t, memedit.WithActionHandler(log.handle))
	e.JumpTo(0x40)
	log.actions = nil

	e.FocusAddressInput()
	e.PressKey(memedit.KeyEnter)

	if e.StartAddress() != 0x40 {
		t.Errorf("Expected no jump on an empty buffer, got %#x", e.StartAddress())
	}
	if e.HasFocus() {
		t.Error("Expected the failed commit to drop focus")
	}
	if len(log.actions) != 0 {
		t.Errorf("Expected no actions, got %+v", log.actions)
	}
}

func TestSelectByte(t *testing.T) {
	e, _, _ := newTestEditor(t)

	e.Click(byteCenter(e, 1, 9))
	addr, ok := e.Selected()
	if !ok || addr != 0x19 {
		t.Fatalf("Expected 0x19 selected, got %#x (ok=%v)", addr, ok)
	}
	if got := e.State().ValueText; got != "000019 =" {
		t.Errorf("Expected label %q, got %q", "000019 =", got)
	}

	// The address column is not a byte.
	e.Click(&memedit.Vec2{X: 30, Y: 10})
	if _, ok := e.Selected(); ok {
		t.Error("Expected a miss to clear the selection")
	}
	if e.State().ValueText != "" {
		t.Errorf("Expected the label cleared, got %q", e.State().ValueText)
	}
}

func TestClickWithoutPointer(t *testing.T) {
	e, _, _ := newTestEditor(t)
	e.Click(byteCenter(e, 0, 0))

	if st := e.Click(nil); st.Captured {
		t.Error("Expected a click without a pointer not to be captured")
	}
	if _, ok := e.Selected(); !ok {
		t.Error("Expected the selection to survive a click without a pointer")
	}
}

func TestWriteByte(t *testing.T) {
	log := &actionLog{}
	e, buf, _ := newTestEditor(t, memedit.WithActionHandler(log.handle))

	e.Click(byteCenter(e, 0, 2))
	e.Click(center(e.Bounds().ByteInput))
	if !e.State().ByteInput.Focused {
		t.Fatal("Expected the byte input to take focus")
	}

	typeString(e, "FF0")
	if got := e.State().ByteInput.Value; got != "FF" {
		t.Errorf("Expected 2 digits, got %q", got)
	}
	e.PressKey(memedit.KeyEnter)

	if got := buf.Bytes()[2]; got != 0xFF {
		t.Errorf("Expected 0xFF stored at 2, got %#x", got)
	}
	if got := e.State().Data[2]; got != 0xFF {
		t.Errorf("Expected the window refetched, got %#x", got)
	}
	a := log.last()
	if a.Kind != memedit.ActionByteWritten || a.Address != 2 || a.Value != 0xFF {
		t.Errorf("Unexpected action %+v", a)
	}
	if e.State().ByteInput.Focused || e.State().ByteInput.Value != "" {
		t.Error("Expected the byte input cleared and blurred")
	}
}

func TestReadOnlyByteInput(t *testing.T) {
	buf := source.NewBuffer(sequence(256), source.WithWritable(func(uint64) bool { return false }))
	e, _, _ := newEditorOver(t, buf)

	e.Click(byteCenter(e, 0, 2))
	e.Click(center(e.Bounds().ByteInput))

	if e.State().ByteInput.Focused {
		t.Error("Expected no byte input for a read-only selection")
	}
	if _, ok := e.Selected(); ok {
		t.Error("Expected the click to land nowhere and clear the selection")
	}
}

func TestScrollClamp(t *testing.T) {
	log := &actionLog{}
	e, _, _ := newTestEditor(t, memedit.WithActionHandler(log.handle))

	e.JumpTo(5)
	e.Scroll(-1)
	if got := e.StartAddress(); got != 0 {
		t.Errorf("Expected scrolling up from 5 to clamp at 0, got %#x", got)
	}

	e.Scroll(2)
	if got := e.StartAddress(); got != 32 {
		t.Errorf("Expected two rows down to be 32, got %d", got)
	}
	a := log.last()
	if a.Kind != memedit.ActionDataRangeChanged || a.Address != 32 {
		t.Errorf("Unexpected action %+v", a)
	}

	if st := e.Scroll(0.5); st.Redraw {
		t.Error("Expected a fractional line to be ignored")
	}
	e.JumpTo(0)
	if st := e.Scroll(-3); st.Redraw {
		t.Error("Expected no redraw when already at 0")
	}
}

func TestUpdateWheel(t *testing.T) {
	e, _, _ := newTestEditor(t)
	input := memedit.NewInputState()

	input.SetMousePos(100, 50)
	input.SetMouseWheel(-2) // rolled towards the user
	e.Update(input)
	if got := e.StartAddress(); got != 32 {
		t.Errorf("Expected wheel-down to scroll two rows, got %d", got)
	}

	input.Reset()
	input.SetMousePos(900, 50)
	input.SetMouseWheel(1)
	if st := e.Update(input); st.Captured {
		t.Error("Expected the wheel outside the viewport to be ignored")
	}
	if got := e.StartAddress(); got != 32 {
		t.Errorf("Expected no scroll, got %d", got)
	}
}

func TestUpdateTyping(t *testing.T) {
	e, _, _ := newTestEditor(t)
	input := memedit.NewInputState()
	e.FocusAddressInput()

	input.AddInputChar('1')
	input.AddInputChar('0')
	input.AddInputChar('z')
	e.Update(input)
	if got := e.State().AddrInput.Value; got != "10" {
		t.Errorf("Expected %q, got %q", "10", got)
	}

	input.Reset()
	input.TapKey(memedit.KeyBackspace)
	e.Update(input)
	if got := e.State().AddrInput.Value; got != "1" {
		t.Errorf("Expected %q after backspace, got %q", "1", got)
	}

	input.Reset()
	input.TapKey(memedit.KeyEnter)
	e.Update(input)
	if got := e.StartAddress(); got != 1 {
		t.Errorf("Expected a jump to 1, got %#x", got)
	}
}

func TestToggleOptions(t *testing.T) {
	log := &actionLog{}
	e, _, _ := newTestEditor(t, memedit.WithActionHandler(log.handle))

	st := e.Click(center(e.Bounds().Options))
	if !st.Relayout {
		t.Error("Expected opening the panel to need a relayout")
	}
	if !e.State().OptionsOpen {
		t.Fatal("Expected the panel open")
	}
	if rows := e.Dimensions().RowCount; rows != 5 {
		t.Errorf("Expected 5 rows with the panel open, got %d", rows)
	}
	if a := log.last(); a.Kind != memedit.ActionOptionsToggled || !a.OptionsOpen {
		t.Errorf("Unexpected action %+v", a)
	}

	e.ToggleOptions()
	if e.State().OptionsOpen || e.Dimensions().RowCount != 9 {
		t.Error("Expected the panel closed with 9 rows")
	}
}

func TestOptionsPanelControls(t *testing.T) {
	log := &actionLog{}
	e, buf, _ := newTestEditor(t, memedit.WithActionHandler(log.handle))
	e.ToggleOptions()
	b := e.Bounds()

	e.Click(center(b.NextRowLength))
	if got := buf.Options().RowLength; got != 24 {
		t.Errorf("Expected row length 24 on the source, got %d", got)
	}
	if got := e.Dimensions().RowLength; got != 24 {
		t.Errorf("Expected the layout to follow, got %d", got)
	}
	if a := log.last(); a.Kind != memedit.ActionRowLengthChanged || a.Options.RowLength != 24 {
		t.Errorf("Unexpected action %+v", a)
	}

	for i := 0; i < 10; i++ {
		e.Click(center(b.NextRowLength))
	}
	if got := buf.Options().RowLength; got != memedit.MaxRowLength {
		t.Errorf("Expected the ceiling %d, got %d", memedit.MaxRowLength, got)
	}
	for i := 0; i < 10; i++ {
		e.Click(center(b.PrevRowLength))
	}
	if got := buf.Options().RowLength; got != memedit.MinRowLength {
		t.Errorf("Expected the floor %d, got %d", memedit.MinRowLength, got)
	}

	e.Click(center(b.NextFormat))
	if got := buf.Options().PreviewFormat; got != memedit.PreviewU16 {
		t.Errorf("Expected U16, got %v", got)
	}
	e.Click(center(b.PrevFormat))
	e.Click(center(b.PrevFormat))
	if got := buf.Options().PreviewFormat; got != memedit.PreviewF64 {
		t.Errorf("Expected the format to wrap to F64, got %v", got)
	}
	if a := log.last(); a.Kind != memedit.ActionPreviewFormatChanged {
		t.Errorf("Unexpected action %+v", a)
	}

	e.Click(center(b.ShowASCIICheckbox))
	if buf.Options().ShowASCII {
		t.Error("Expected the ASCII column switched off")
	}
	if a := log.last(); a.Kind != memedit.ActionShowASCIIChanged || a.Options.ShowASCII {
		t.Errorf("Unexpected action %+v", a)
	}
}

func TestOptionsFollowSource(t *testing.T) {
	e, buf, s := newTestEditor(t)

	buf.SetOptions(memedit.Options{RowLength: 32, PreviewFormat: memedit.PreviewI32})
	st := e.Layout(s, testViewport)

	if !st.Redraw {
		t.Error("Expected a redraw after the source changed its options")
	}
	if got := e.Options(); got.RowLength != 32 || got.PreviewFormat != memedit.PreviewI32 || got.ShowASCII {
		t.Errorf("Expected the source's options, got %+v", got)
	}
	if n := len(e.State().Data); n != 32*9 {
		t.Errorf("Expected a 288 byte window, got %d", n)
	}
}

func TestLayoutStatus(t *testing.T) {
	e, _, s := newTestEditor(t)

	if st := e.Layout(s, testViewport); st.Relayout {
		t.Error("Expected no relayout for an unchanged viewport")
	}
	if st := e.Layout(s, memedit.Rect{W: 800, H: 410}); !st.Relayout {
		t.Error("Expected a relayout for a new viewport")
	}
	if rows := e.Dimensions().RowCount; rows != 19 {
		t.Errorf("Expected 19 rows, got %d", rows)
	}
}

func TestRefreshPicksUpWrites(t *testing.T) {
	e, buf, s := newTestEditor(t)

	buf.SetByte(0, 0xEE)
	e.Layout(s, testViewport)
	if got := e.State().Data[0]; got != 0 {
		t.Errorf("Expected the cached window until Refresh, got %#x", got)
	}

	e.Refresh()
	e.Layout(s, testViewport)
	if got := e.State().Data[0]; got != 0xEE {
		t.Errorf("Expected the new value after Refresh, got %#x", got)
	}
}

func TestCopyPaste(t *testing.T) {
	cb := &memClipboard{}
	e, _, _ := newTestEditor(t, memedit.WithClipboard(cb))

	e.Click(byteCenter(e, 1, 15))
	e.Copy()
	if cb.text != "1F" {
		t.Errorf("Expected %q copied, got %q", "1F", cb.text)
	}

	if st := e.Paste(); st.Captured {
		t.Error("Expected paste without a focused input to be ignored")
	}

	cb.text = "  0x2aZ9 "
	e.FocusAddressInput()
	e.Paste()
	if got := e.State().AddrInput.Value; got != "2a" {
		t.Errorf("Expected paste to stop at the first non-hex char, got %q", got)
	}
}

func TestCopyWithCtrlC(t *testing.T) {
	cb := &memClipboard{}
	e, _, _ := newTestEditor(t, memedit.WithClipboard(cb))
	e.Click(byteCenter(e, 0, 7))

	input := memedit.NewInputState()
	input.ModCtrl = true
	input.TapKey(memedit.KeyC)
	e.Update(input)

	if cb.text != "07" {
		t.Errorf("Expected %q copied, got %q", "07", cb.text)
	}
}
