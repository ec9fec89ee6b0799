package integration

import (
	"math"
	"sync/atomic"
)

// Accumulator is a shared floating-point total that supports concurrent
// atomic addition.
type Accumulator struct {
	// bits stores the IEEE 754 representation of the total.
	bits atomic.Uint64
	// Padding keeps the total off the cache line of neighboring shared state.
	_ [cacheLineSize - 8]byte
}

// Add atomically adds delta to the total.
func (a *Accumulator) Add(delta float64) {
	for {
		current := a.bits.Load()
		updated := math.Float64bits(math.Float64frombits(current) + delta)
		if a.bits.CompareAndSwap(current, updated) {
			return
		}
	}
}

// Load returns the current total.
func (a *Accumulator) Load() float64 {
	return math.Float64frombits(a.bits.Load())
}
