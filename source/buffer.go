package source

import (
	"math/rand/v2"
	"sync"

	"github.com/go-theft-auto/memedit"
)

// maxRead bounds a single ReadRange so a window near the top of the
// address space cannot allocate without limit.
const maxRead = 1 << 20

// Buffer is a flat in-memory MemorySource. Addresses map directly to
// offsets in the buffer; reads past the end are padded with the fill
// byte. It is safe for concurrent use, so another goroutine may keep
// writing while an editor displays it.
type Buffer struct {
	settings

	mu       sync.RWMutex
	data     []byte
	fill     byte
	writable func(addr uint64) bool
}

var _ memedit.MemorySource = (*Buffer)(nil)

// BufferOption configures a Buffer.
type BufferOption func(*Buffer)

// WithFill sets the byte returned for addresses past the end.
func WithFill(b byte) BufferOption {
	return func(buf *Buffer) {
		buf.fill = b
	}
}

// WithWritable restricts which in-range addresses may be edited.
func WithWritable(fn func(addr uint64) bool) BufferOption {
	return func(buf *Buffer) {
		buf.writable = fn
	}
}

// WithOptions sets the initial display options.
func WithOptions(opts memedit.Options) BufferOption {
	return func(buf *Buffer) {
		buf.opts = opts
	}
}

// WithOptionsHook registers a callback for option changes.
func WithOptionsHook(fn OptionsHook) BufferOption {
	return func(buf *Buffer) {
		buf.hook = fn
	}
}

// NewBuffer creates a buffer over data. The buffer takes ownership of
// the slice.
func NewBuffer(data []byte, opts ...BufferOption) *Buffer {
	b := &Buffer{
		settings: newSettings(),
		data:     data,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewRandomBuffer creates a buffer of size pseudo-random bytes. The same
// seed always yields the same contents.
func NewRandomBuffer(size int, seed uint64, opts ...BufferOption) *Buffer {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	data := make([]byte, size)
	for i := 0; i < len(data); i += 8 {
		v := rng.Uint64()
		for j := 0; j < 8 && i+j < len(data); j++ {
			data[i+j] = byte(v >> (8 * j))
		}
	}
	return NewBuffer(data, opts...)
}

// Len returns the buffer size in bytes.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.data)
}

// Bytes returns a copy of the contents.
func (b *Buffer) Bytes() []byte {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// ReadRange returns [start, end), padded with the fill byte where the
// range runs past the end of the buffer. At most 1 MiB is returned.
func (b *Buffer) ReadRange(start, end uint64) []byte {
	if end <= start {
		return nil
	}
	n := min(end-start, maxRead)
	out := make([]byte, n)

	b.mu.RLock()
	copied := 0
	if start < uint64(len(b.data)) {
		copied = copy(out, b.data[start:])
	}
	b.mu.RUnlock()

	if b.fill != 0 {
		for i := copied; i < len(out); i++ {
			out[i] = b.fill
		}
	}
	return out
}

// SetByte stores value at addr. Writes past the end are ignored.
func (b *Buffer) SetByte(addr uint64, value byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if addr < uint64(len(b.data)) {
		b.data[addr] = value
	}
}

// CanWrite reports whether addr is inside the buffer and allowed by the
// WithWritable predicate.
func (b *Buffer) CanWrite(addr uint64) bool {
	if addr >= uint64(b.Len()) {
		return false
	}
	return b.writable == nil || b.writable(addr)
}

// Mutate runs fn with exclusive access to the contents.
func (b *Buffer) Mutate(fn func(data []byte)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(b.data)
}
