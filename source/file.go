package source

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/go-theft-auto/memedit"
)

// File is a MemorySource over an open file. Address 0 is the first byte
// of the file; reads stop at end of file and return short slices.
type File struct {
	settings

	mu       sync.Mutex
	f        *os.File
	size     int64
	writable bool
	logger   *slog.Logger
}

var _ memedit.MemorySource = (*File)(nil)

// OpenFile opens path for inspection. With writable set the file is
// opened read-write and edits go straight to disk.
func OpenFile(path string, writable bool) (*File, error) {
	flag := os.O_RDONLY
	if writable {
		flag = os.O_RDWR
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("open %s: is a directory", path)
	}
	return &File{
		settings: newSettings(),
		f:        f,
		size:     info.Size(),
		writable: writable,
		logger:   slog.Default(),
	}, nil
}

// SetOptionsHook registers a callback for option changes.
func (s *File) SetOptionsHook(fn OptionsHook) {
	s.settings.mu.Lock()
	defer s.settings.mu.Unlock()
	s.hook = fn
}

// Size returns the file size at open time.
func (s *File) Size() int64 {
	return s.size
}

// ReadRange reads [start, end) clipped to the end of the file.
func (s *File) ReadRange(start, end uint64) []byte {
	if end <= start || start >= uint64(s.size) {
		return nil
	}
	n := min(end-start, uint64(s.size)-start, maxRead)
	buf := make([]byte, n)

	s.mu.Lock()
	defer s.mu.Unlock()
	got, err := s.f.ReadAt(buf, int64(start))
	if err != nil && !errors.Is(err, io.EOF) {
		s.logger.Warn("File: read failed", "start", start, "error", err)
	}
	return buf[:got]
}

// SetByte writes value at addr. Failures are logged and otherwise
// ignored, like writes to read-only addresses.
func (s *File) SetByte(addr uint64, value byte) {
	if !s.CanWrite(addr) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.f.WriteAt([]byte{value}, int64(addr)); err != nil {
		s.logger.Warn("File: write failed", "addr", addr, "error", err)
	}
}

// CanWrite reports whether the file was opened writable and addr is
// inside it.
func (s *File) CanWrite(addr uint64) bool {
	return s.writable && addr < uint64(s.size)
}

// Close closes the underlying file.
func (s *File) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.f.Name(), err)
	}
	return nil
}
