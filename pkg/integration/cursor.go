package integration

import (
	"sync/atomic"
)

// cacheLineSize is the assumed size of a CPU cache line.
const cacheLineSize = 64

// BlockCursor hands out block indices. Every call to ClaimNext returns a
// distinct value, and the values returned across all callers form a gap-free
// sequence starting at the cursor's initial value.
type BlockCursor struct {
	// next is the next unclaimed block index.
	next atomic.Uint64
	// Padding keeps the cursor off the cache line of neighboring shared state.
	_ [cacheLineSize - 8]byte
}

// NewBlockCursor creates a new cursor whose first claim returns initial.
func NewBlockCursor(initial uint64) *BlockCursor {
	cursor := &BlockCursor{}
	cursor.next.Store(initial)
	return cursor
}

// ClaimNext claims the next block index and returns it. Claims may return
// indices beyond the block count, which callers treat as exhaustion.
func (c *BlockCursor) ClaimNext() uint64 {
	return c.next.Add(1) - 1
}

// Peek returns the index that the next claim will return.
func (c *BlockCursor) Peek() uint64 {
	return c.next.Load()
}
