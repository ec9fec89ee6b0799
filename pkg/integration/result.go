package integration

import (
	"time"
)

// WorkerResult records the work performed by a single worker.
type WorkerResult struct {
	// Index is the worker index.
	Index int
	// Blocks are the blocks processed by the worker, in processing order.
	Blocks []uint64
	// Sum is the worker's partial sum.
	Sum float64
}

// Result is the outcome of a run.
type Result struct {
	// Estimate is the approximation of pi, Sum divided by Iterations.
	Estimate float64
	// Sum is the accumulated total of the integrand over all sample points.
	Sum float64
	// Iterations is the number of sample points.
	Iterations uint64
	// BlockSize is the number of sample points per block.
	BlockSize uint64
	// Blocks is the number of blocks.
	Blocks uint64
	// Threads is the number of workers.
	Threads int
	// Dispatches is the number of individual worker resumes performed by the
	// dispatch loop, excluding the initial start and the final broadcast.
	Dispatches uint64
	// Elapsed is the duration of the parallel phase, measured from the start
	// of the initial resume through the termination of the last worker.
	Elapsed time.Duration
	// Workers records per-worker results, indexed by worker.
	Workers []WorkerResult
}
