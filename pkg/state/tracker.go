package state

import (
	"context"
	"errors"
	"sync"
)

// ErrTrackingTerminated indicates that tracking was terminated.
var ErrTrackingTerminated = errors.New("tracking terminated")

// Tracker provides index-based state tracking. Each notification increments
// the state index and wakes all waiters. It is safe for concurrent usage.
type Tracker struct {
	// lock serializes access to the tracker's fields.
	lock sync.Mutex
	// index is the current state index.
	index uint64
	// terminated indicates whether or not tracking has been terminated.
	terminated bool
	// change is closed (and replaced) to wake waiters on each state change. It
	// is closed permanently on termination.
	change chan struct{}
}

// NewTracker creates a new tracker instance with state index 1.
func NewTracker() *Tracker {
	return &Tracker{
		index:  1,
		change: make(chan struct{}),
	}
}

// Index returns the current state index.
func (t *Tracker) Index() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.index
}

// Terminate terminates tracking. It is safe to call multiple times.
func (t *Tracker) Terminate() {
	// Acquire the state lock and ensure its release.
	t.lock.Lock()
	defer t.lock.Unlock()

	// Mark tracking as terminated and wake all waiters.
	if !t.terminated {
		t.terminated = true
		close(t.change)
	}
}

// NotifyOfChange increments the state index and notifies waiters. It has no
// effect after termination.
func (t *Tracker) NotifyOfChange() {
	// Acquire the state lock and ensure its release.
	t.lock.Lock()
	defer t.lock.Unlock()

	// Ignore notifications after termination.
	if t.terminated {
		return
	}

	// Increment the state index and wake waiters.
	t.index++
	close(t.change)
	t.change = make(chan struct{})
}

// WaitForChange waits for a state index change from the previous index. It
// returns the new index on success. If the context is cancelled, then the
// previous index is returned along with the context's error. If tracking is
// terminated, then the current index is returned with ErrTrackingTerminated.
func (t *Tracker) WaitForChange(ctx context.Context, previousIndex uint64) (uint64, error) {
	for {
		// Check the current state and grab the change channel.
		t.lock.Lock()
		if t.terminated {
			index := t.index
			t.lock.Unlock()
			return index, ErrTrackingTerminated
		} else if t.index != previousIndex {
			index := t.index
			t.lock.Unlock()
			return index, nil
		}
		change := t.change
		t.lock.Unlock()

		// Wait for a change or cancellation.
		select {
		case <-ctx.Done():
			return previousIndex, ctx.Err()
		case <-change:
		}
	}
}
