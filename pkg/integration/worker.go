package integration

import (
	"strconv"

	"github.com/blockpi/blockpi/pkg/logging"
	"github.com/blockpi/blockpi/pkg/state"
)

// worker is a long-lived block processor. Its first block is its index. After
// each block it sets its completion signal and, if work may remain, suspends
// until the coordinator resumes it, at which point it claims another block.
// Once it claims an index beyond the block count, it folds its partial sum into
// the accumulator and exits.
type worker struct {
	// index is the worker's index, which is also its initial block.
	index int
	// partition is the run's partition.
	partition Partition
	// integrand is the function being summed.
	integrand Integrand
	// cursor is the run's block cursor.
	cursor *BlockCursor
	// accumulator is the run's accumulator.
	accumulator *Accumulator
	// signals is the run's completion signal set. The worker only ever sets
	// the signal at its own index.
	signals *state.SignalSet
	// resume carries resume tokens from the coordinator. It has a capacity of
	// one so that a resume issued before the worker suspends isn't lost.
	resume chan struct{}
	// done is closed once the worker has folded its partial sum and exited.
	done chan struct{}
	// logger is the worker's logger.
	logger *logging.Logger
	// blocks records the blocks processed by the worker, in order. It is owned
	// by the worker until done is closed.
	blocks []uint64
	// sum is the worker's partial sum. It is owned by the worker until done is
	// closed.
	sum float64
}

// newWorker creates a new worker. The worker's Goroutine must be started with
// run, and it remains suspended until its first resume.
func newWorker(
	index int,
	partition Partition,
	integrand Integrand,
	cursor *BlockCursor,
	accumulator *Accumulator,
	signals *state.SignalSet,
	logger *logging.Logger,
) *worker {
	return &worker{
		index:       index,
		partition:   partition,
		integrand:   integrand,
		cursor:      cursor,
		accumulator: accumulator,
		signals:     signals,
		resume:      make(chan struct{}, 1),
		done:        make(chan struct{}),
		logger:      logger,
	}
}

// workerLoggerName computes the sublogger name for a worker.
func workerLoggerName(index int) string {
	return "worker" + strconv.Itoa(index)
}

// wake delivers a resume token to the worker. If a token is already pending,
// then the call has no effect, since the pending token will wake the worker.
// It never blocks.
func (w *worker) wake() {
	select {
	case w.resume <- struct{}{}:
	default:
	}
}

// run is the worker's run loop.
func (w *worker) run() {
	// Signal termination once we've exited.
	defer close(w.done)

	// Workers are created suspended.
	<-w.resume

	// Process blocks until the cursor is exhausted.
	total := w.partition.Blocks()
	for block := uint64(w.index); block < total; {
		// Compute the block's range. An empty range means there's nothing
		// left to do.
		r := w.partition.Block(block)
		if r.Empty() {
			break
		}

		// Sum the block.
		for i := r.Start; i < r.End; i++ {
			w.sum += w.integrand(i)
		}
		w.blocks = append(w.blocks, block)

		// Signal completion of the block.
		w.signals.Set(w.index)

		// If more blocks may remain, then suspend until resumed. If the cursor
		// is already exhausted, then the claim below will report that anyway.
		if w.cursor.Peek() < total {
			<-w.resume
		}

		// Claim the next block.
		block = w.cursor.ClaimNext()
	}

	// Fold our partial sum into the shared total.
	w.accumulator.Add(w.sum)
	w.logger.Debugf("Folded partial sum %v after %d block(s)", w.sum, len(w.blocks))
}
