// Package source provides MemorySource implementations: an in-memory
// Buffer and a File backed by io.ReaderAt/io.WriterAt.
package source

import (
	"sync"

	"github.com/go-theft-auto/memedit"
)

// OptionsHook is called after a source's options change, for example to
// persist them.
type OptionsHook func(memedit.Options)

// settings holds the display options a source owns on behalf of its
// editors.
type settings struct {
	mu   sync.Mutex
	opts memedit.Options
	hook OptionsHook
}

func newSettings() settings {
	return settings{opts: memedit.DefaultOptions()}
}

// Options returns the current display options.
func (s *settings) Options() memedit.Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts
}

// SetOptions replaces the display options and runs the hook.
func (s *settings) SetOptions(opts memedit.Options) {
	s.mu.Lock()
	changed := s.opts != opts
	s.opts = opts
	hook := s.hook
	s.mu.Unlock()

	if changed && hook != nil {
		hook(opts)
	}
}
