package memedit

import "sync"

// Cleanable is implemented by stores that need frame-based cleanup.
type Cleanable interface {
	Cleanup(frame uint64)
}

// stateEntry wraps a value with the frame it was last used in.
type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore keeps per-ID values alive while they are used every frame.
// Entries not accessed in the previous frame are dropped by Cleanup, so
// an editor that stops being drawn forgets its selection and inputs.
type FrameStore[T any] struct {
	mu     sync.RWMutex
	states map[ID]*stateEntry[T]
}

// NewFrameStore creates an empty store.
func NewFrameStore[T any]() *FrameStore[T] {
	return &FrameStore[T]{
		states: make(map[ID]*stateEntry[T]),
	}
}

// Get returns the value for id, creating it with create if missing, and
// marks it as used in frame.
//
// This method is safe for concurrent use.
func (s *FrameStore[T]) Get(id ID, frame uint64, create func() T) T {
	s.mu.RLock()
	entry, ok := s.states[id]
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !ok {
		// Double-check after acquiring write lock
		if entry, ok = s.states[id]; !ok {
			entry = &stateEntry[T]{value: create()}
			s.states[id] = entry
		}
	}
	entry.lastFrame = frame
	return entry.value
}

// Lookup returns the value for id without marking it as used.
func (s *FrameStore[T]) Lookup(id ID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entry, ok := s.states[id]; ok {
		return entry.value, true
	}
	var zero T
	return zero, false
}

// Delete removes the value for id.
func (s *FrameStore[T]) Delete(id ID) {
	s.mu.Lock()
	delete(s.states, id)
	s.mu.Unlock()
}

// Cleanup removes all entries that weren't accessed in the previous frame.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	if frame == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	threshold := frame - 1
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			delete(s.states, id)
		}
	}
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}

// Clear removes all entries immediately.
func (s *FrameStore[T]) Clear() {
	s.mu.Lock()
	s.states = make(map[ID]*stateEntry[T])
	s.mu.Unlock()
}
