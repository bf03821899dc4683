package memedit

// MemorySource is the backing store an editor inspects.
//
// The editor never copies the address space: it reads the visible
// window with ReadRange, writes single bytes with SetByte, and keeps no
// options of its own. Implementations decide the fallback for addresses
// they cannot serve. A source may be shared with other writers; the
// editor tolerates its contents changing between reads.
type MemorySource interface {
	// ReadRange returns the bytes in [start, end). It may return fewer
	// bytes than requested.
	ReadRange(start, end uint64) []byte

	// SetByte stores value at addr. Out-of-range writes are ignored.
	SetByte(addr uint64, value byte)

	// CanWrite reports whether addr may be edited.
	CanWrite(addr uint64) bool

	// Options returns the current display options.
	Options() Options

	// SetOptions replaces the display options.
	SetOptions(opts Options)
}
