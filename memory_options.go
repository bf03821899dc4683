package memedit

import (
	"fmt"
	"strings"
)

// Row length constraints. Rows are made of groups of GroupSize bytes.
const (
	GroupSize    = 8
	MinRowLength = GroupSize
	MaxRowLength = 64
)

// PreviewFormat is the numeric type the selected bytes are decoded as.
type PreviewFormat int

const (
	PreviewU8 PreviewFormat = iota
	PreviewU16
	PreviewU32
	PreviewU64
	PreviewI8
	PreviewI16
	PreviewI32
	PreviewI64
	PreviewF32
	PreviewF64

	previewFormatCount
)

var previewFormatNames = [previewFormatCount]string{
	"U8", "U16", "U32", "U64",
	"I8", "I16", "I32", "I64",
	"F32", "F64",
}

// Valid reports whether f is one of the defined formats.
func (f PreviewFormat) Valid() bool {
	return f >= 0 && f < previewFormatCount
}

func (f PreviewFormat) String() string {
	if !f.Valid() {
		return fmt.Sprintf("PreviewFormat(%d)", int(f))
	}
	return previewFormatNames[f]
}

// Next returns the following format, wrapping F64 back to U8.
func (f PreviewFormat) Next() PreviewFormat {
	if !f.Valid() {
		return PreviewU8
	}
	return (f + 1) % previewFormatCount
}

// Previous returns the preceding format, wrapping U8 back to F64.
func (f PreviewFormat) Previous() PreviewFormat {
	if !f.Valid() {
		return PreviewU8
	}
	return (f + previewFormatCount - 1) % previewFormatCount
}

// Size returns the number of bytes the format decodes.
func (f PreviewFormat) Size() int {
	switch f {
	case PreviewU16, PreviewI16:
		return 2
	case PreviewU32, PreviewI32, PreviewF32:
		return 4
	case PreviewU64, PreviewI64, PreviewF64:
		return 8
	default:
		return 1
	}
}

// ParsePreviewFormat parses a format name such as "u32" or "F64".
func ParsePreviewFormat(s string) (PreviewFormat, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range previewFormatNames {
		if n == name {
			return PreviewFormat(i), nil
		}
	}
	return PreviewU8, fmt.Errorf("unknown preview format %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (f PreviewFormat) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid preview format %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *PreviewFormat) UnmarshalText(text []byte) error {
	v, err := ParsePreviewFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Options is the display configuration of an editor. It is owned by the
// MemorySource; the editor reads a fresh copy every layout and writes
// changes straight back.
type Options struct {
	RowLength     int
	PreviewFormat PreviewFormat
	ShowASCII     bool
}

// DefaultOptions returns 16 bytes per row, U8 preview, ASCII shown.
func DefaultOptions() Options {
	return Options{
		RowLength:     16,
		PreviewFormat: PreviewU8,
		ShowASCII:     true,
	}
}

// NextFormat returns the format after the current one.
func (o Options) NextFormat() PreviewFormat {
	return o.PreviewFormat.Next()
}

// PreviousFormat returns the format before the current one.
func (o Options) PreviousFormat() PreviewFormat {
	return o.PreviewFormat.Previous()
}

// DecreaseRowLength returns the row length one group shorter, never
// below MinRowLength.
func (o Options) DecreaseRowLength() int {
	return max(o.RowLength-GroupSize, MinRowLength)
}

// IncreaseRowLength returns the row length one group longer, never
// above MaxRowLength.
func (o Options) IncreaseRowLength() int {
	return min(o.RowLength+GroupSize, MaxRowLength)
}

// Normalize rounds the row length down to a whole number of groups
// within [MinRowLength, MaxRowLength] and replaces an unknown preview
// format with U8.
func (o Options) Normalize() Options {
	o.RowLength -= o.RowLength % GroupSize
	o.RowLength = min(max(o.RowLength, MinRowLength), MaxRowLength)
	if !o.PreviewFormat.Valid() {
		o.PreviewFormat = PreviewU8
	}
	return o
}
