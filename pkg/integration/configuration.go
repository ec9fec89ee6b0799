package integration

import (
	"github.com/pkg/errors"
)

const (
	// DefaultIterations is the default number of sample points.
	DefaultIterations = 100000000
	// DefaultBlockSize is the default number of sample points per block.
	DefaultBlockSize = 8307040
	// MaximumThreads is the largest worker count accepted for a run.
	MaximumThreads = 1 << 16
)

// Configuration encodes the parameters of a single run.
type Configuration struct {
	// Iterations is the total number of sample points.
	Iterations uint64
	// BlockSize is the number of sample points dispatched as one unit of work.
	BlockSize uint64
	// Threads is the number of workers.
	Threads int
}

// DefaultConfiguration returns a configuration with the default iteration
// count and block size and the specified number of threads.
func DefaultConfiguration(threads int) Configuration {
	return Configuration{
		Iterations: DefaultIterations,
		BlockSize:  DefaultBlockSize,
		Threads:    threads,
	}
}

// EnsureValid ensures that Configuration's invariants are respected.
func (c Configuration) EnsureValid() error {
	if c.Iterations == 0 {
		return errors.New("iteration count must be positive")
	} else if c.BlockSize == 0 {
		return errors.New("block size must be positive")
	} else if c.Threads < 1 {
		return errors.Errorf("thread count must be positive (got %d)", c.Threads)
	} else if c.Threads > MaximumThreads {
		return errors.Errorf("thread count exceeds maximum (%d > %d)", c.Threads, MaximumThreads)
	}
	return nil
}
