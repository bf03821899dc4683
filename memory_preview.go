package memedit

import (
	"encoding/binary"
	"math"
	"strconv"
)

// previewError is shown when the selected bytes cannot be decoded.
const previewError = "#Error#"

// FormatPreview decodes the first f.Size() bytes of data in host byte
// order. Integers print in decimal, floats with three decimals. Short
// data yields "#Error#".
func FormatPreview(data []byte, f PreviewFormat) string {
	if !f.Valid() || len(data) < f.Size() {
		return previewError
	}
	order := binary.NativeEndian
	switch f {
	case PreviewU8:
		return strconv.FormatUint(uint64(data[0]), 10)
	case PreviewU16:
		return strconv.FormatUint(uint64(order.Uint16(data)), 10)
	case PreviewU32:
		return strconv.FormatUint(uint64(order.Uint32(data)), 10)
	case PreviewU64:
		return strconv.FormatUint(order.Uint64(data), 10)
	case PreviewI8:
		return strconv.FormatInt(int64(int8(data[0])), 10)
	case PreviewI16:
		return strconv.FormatInt(int64(int16(order.Uint16(data))), 10)
	case PreviewI32:
		return strconv.FormatInt(int64(int32(order.Uint32(data))), 10)
	case PreviewI64:
		return strconv.FormatInt(int64(order.Uint64(data)), 10)
	case PreviewF32:
		v := math.Float32frombits(order.Uint32(data))
		return strconv.FormatFloat(float64(v), 'f', 3, 32)
	case PreviewF64:
		v := math.Float64frombits(order.Uint64(data))
		return strconv.FormatFloat(v, 'f', 3, 64)
	}
	return previewError
}

// previewText returns the preview for the current selection, or "" when
// nothing visible is selected.
func (s *EditorState) previewText(f PreviewFormat) string {
	addr, ok := s.Selected()
	if !ok || !s.visible(addr) {
		return ""
	}
	data, ok := s.windowSlice(addr, f.Size())
	if !ok {
		return previewError
	}
	return FormatPreview(data, f)
}
