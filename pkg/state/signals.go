package state

import (
	"sync"
)

// SignalSet provides a fixed-size array of binary signals with manual reset
// and wait-for-any semantics. Each signal is intended to be set by exactly one
// party and reset by another, though the set itself imposes no ownership. It
// is safe for concurrent usage.
type SignalSet struct {
	// change is the condition variable used to track signal changes.
	change *sync.Cond
	// signaled records the state of each signal.
	signaled []bool
	// pending is the number of signals currently set.
	pending int
}

// NewSignalSet creates a new signal set with the specified number of signals,
// all initially unset.
func NewSignalSet(size int) *SignalSet {
	if size < 1 {
		panic("signal set size must be positive")
	}
	return &SignalSet{
		change:   sync.NewCond(&sync.Mutex{}),
		signaled: make([]bool, size),
	}
}

// Size returns the number of signals in the set.
func (s *SignalSet) Size() int {
	return len(s.signaled)
}

// Set sets the signal at the specified index and wakes any waiters. Setting an
// already-set signal has no effect.
func (s *SignalSet) Set(index int) {
	// Acquire the state lock and ensure its release.
	s.change.L.Lock()
	defer s.change.L.Unlock()

	// Update the signal state and broadcast the change.
	if !s.signaled[index] {
		s.signaled[index] = true
		s.pending++
		s.change.Broadcast()
	}
}

// Reset clears the signal at the specified index. Resetting an unset signal
// has no effect.
func (s *SignalSet) Reset(index int) {
	// Acquire the state lock and ensure its release.
	s.change.L.Lock()
	defer s.change.L.Unlock()

	// Update the signal state.
	if s.signaled[index] {
		s.signaled[index] = false
		s.pending--
	}
}

// IsSet returns whether or not the signal at the specified index is set.
func (s *SignalSet) IsSet(index int) bool {
	s.change.L.Lock()
	defer s.change.L.Unlock()
	return s.signaled[index]
}

// WaitAny blocks until at least one signal is set and returns the lowest index
// among the set signals. It does not reset the returned signal.
func (s *SignalSet) WaitAny() int {
	// Acquire the state lock and ensure its release.
	s.change.L.Lock()
	defer s.change.L.Unlock()

	// Wait for a signal to be set.
	for s.pending == 0 {
		s.change.Wait()
	}

	// Identify the lowest set signal.
	for index, signaled := range s.signaled {
		if signaled {
			return index
		}
	}
	panic("pending signal count inconsistent with signal states")
}
