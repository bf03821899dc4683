package memedit

import (
	"fmt"
	"math"
	"strconv"
)

// TextInput is a single-line hex digit field.
type TextInput struct {
	Value   string
	Focused bool
	MaxLen  int
}

// Focus gives the field focus and clears its buffer.
func (t *TextInput) Focus() {
	t.Focused = true
	t.Value = ""
}

// Blur drops focus and keeps the buffer.
func (t *TextInput) Blur() {
	t.Focused = false
}

// Insert appends r if it is a hex digit and the field has room.
func (t *TextInput) Insert(r rune) bool {
	if !isHexDigit(r) || len(t.Value) >= t.MaxLen {
		return false
	}
	t.Value += string(r)
	return true
}

// Backspace removes the last digit.
func (t *TextInput) Backspace() bool {
	if t.Value == "" {
		return false
	}
	t.Value = t.Value[:len(t.Value)-1]
	return true
}

// Commit parses the buffer as base 16, then clears it and drops focus
// whether or not the parse succeeded.
func (t *TextInput) Commit(bitSize int) (uint64, bool) {
	v, err := strconv.ParseUint(t.Value, 16, bitSize)
	t.Value = ""
	t.Focused = false
	return v, err == nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// windowKey identifies the range a data window was fetched for.
type windowKey struct {
	start     uint64
	rowCount  int
	rowLength int
}

// EditorState is everything an editor keeps between frames.
type EditorState struct {
	StartAddress uint64

	selected    uint64
	hasSelected bool
	// ValueText labels the byte input: the selection as "%06X =".
	ValueText string

	OptionsOpen bool
	AddrInput   TextInput
	ByteInput   TextInput

	// Data is the window fetched for the visible rows.
	Data   []byte
	window windowKey
	fresh  bool

	Dimensions Dimensions
	Bounds     Bounds
}

func newEditorState() EditorState {
	return EditorState{
		AddrInput: TextInput{MaxLen: AddressCharLen},
		ByteInput: TextInput{MaxLen: ByteCharLen},
	}
}

// Selected returns the selected address, if any.
func (s *EditorState) Selected() (uint64, bool) {
	return s.selected, s.hasSelected
}

// Select marks addr as selected.
func (s *EditorState) Select(addr uint64) {
	s.selected = addr
	s.hasSelected = true
	s.ValueText = fmt.Sprintf("%06X =", addr)
}

// ClearSelection drops the selection and its label.
func (s *EditorState) ClearSelection() {
	s.selected = 0
	s.hasSelected = false
	s.ValueText = ""
}

// BlurInputs drops focus from both text inputs.
func (s *EditorState) BlurInputs() {
	s.AddrInput.Blur()
	s.ByteInput.Blur()
}

// HasFocusedInput reports whether a text input holds keyboard focus.
func (s *EditorState) HasFocusedInput() bool {
	return s.AddrInput.Focused || s.ByteInput.Focused
}

// Scroll moves the view by whole rows. Positive lines move towards
// higher addresses; the start address saturates at both ends.
func (s *EditorState) Scroll(lines float32, rowLength int) bool {
	n := int64(lines) // truncates towards zero
	if n == 0 || rowLength <= 0 {
		return false
	}
	step := uint64(abs64(n)) * uint64(rowLength)
	old := s.StartAddress
	if n < 0 {
		if step > s.StartAddress {
			s.StartAddress = 0
		} else {
			s.StartAddress -= step
		}
	} else {
		s.StartAddress = saturatingAdd(s.StartAddress, step)
	}
	if s.StartAddress != old {
		s.invalidate()
		return true
	}
	return false
}

// JumpTo sets the first visible address.
func (s *EditorState) JumpTo(addr uint64) {
	s.StartAddress = addr
	s.invalidate()
}

// invalidate forces the next layout to refetch the window.
func (s *EditorState) invalidate() {
	s.fresh = false
}

// windowRange returns the byte range the visible rows cover.
func (s *EditorState) windowRange() (start, end uint64) {
	return s.StartAddress, saturatingAdd(s.StartAddress, s.Dimensions.VisibleBytes())
}

// needsFetch reports whether the cached window no longer matches the
// visible rows.
func (s *EditorState) needsFetch() bool {
	key := windowKey{s.StartAddress, s.Dimensions.RowCount, s.Dimensions.RowLength}
	return !s.fresh || s.window != key || (len(s.Data) == 0 && key.rowCount > 0)
}

// fetch replaces the window wholesale with a fresh read of src.
func (s *EditorState) fetch(src MemorySource) {
	start, end := s.windowRange()
	s.window = windowKey{s.StartAddress, s.Dimensions.RowCount, s.Dimensions.RowLength}
	s.fresh = true
	if end <= start {
		s.Data = s.Data[:0]
		return
	}
	s.Data = src.ReadRange(start, end)
	if want := end - start; uint64(len(s.Data)) > want {
		s.Data = s.Data[:want]
	}
}

// windowSlice returns n bytes at addr from the cached window.
func (s *EditorState) windowSlice(addr uint64, n int) ([]byte, bool) {
	if addr < s.StartAddress {
		return nil, false
	}
	off := addr - s.StartAddress
	if off > uint64(len(s.Data)) || uint64(n) > uint64(len(s.Data))-off {
		return nil, false
	}
	return s.Data[off : off+uint64(n)], true
}

// visible reports whether addr is inside the visible rows.
func (s *EditorState) visible(addr uint64) bool {
	start, end := s.windowRange()
	return addr >= start && addr < end
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
