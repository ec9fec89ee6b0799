package integration

import (
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/blockpi/blockpi/pkg/logging"
	"github.com/blockpi/blockpi/pkg/state"
)

// Progress is a snapshot of a run's dispatch progress.
type Progress struct {
	// Dispensed is the number of blocks handed out to workers so far,
	// including the initial per-worker blocks.
	Dispensed uint64
	// Total is the number of blocks in the run.
	Total uint64
}

// Coordinator owns a pool of workers and drives a single run through them.
type Coordinator struct {
	// configuration is the run configuration.
	configuration Configuration
	// partition is the run partition.
	partition Partition
	// integrand is the function being summed.
	integrand Integrand
	// logger is the coordinator's logger.
	logger *logging.Logger
	// tracker tracks dispatch progress. It is terminated when the run ends.
	tracker *state.Tracker
	// started indicates whether or not Run has been invoked.
	started state.Marker
	// cursor is the run's block cursor, set once the run has started.
	cursor atomic.Pointer[BlockCursor]
}

// NewCoordinator creates a new coordinator for a single run. If integrand is
// nil, then MidpointPi is used.
func NewCoordinator(configuration Configuration, integrand Integrand, logger *logging.Logger) (*Coordinator, error) {
	// Validate the configuration.
	if err := configuration.EnsureValid(); err != nil {
		return nil, errors.Wrap(err, "invalid run configuration")
	}

	// Use the default integrand if necessary.
	if integrand == nil {
		integrand = MidpointPi(configuration.Iterations)
	}

	// Create the coordinator.
	return &Coordinator{
		configuration: configuration,
		partition:     NewPartition(configuration.Iterations, configuration.BlockSize),
		integrand:     integrand,
		logger:        logger,
		tracker:       state.NewTracker(),
	}, nil
}

// Tracker returns the coordinator's progress tracker. Its index changes on
// every dispatch, and it is terminated once the run completes.
func (c *Coordinator) Tracker() *state.Tracker {
	return c.tracker
}

// Progress returns a snapshot of the run's dispatch progress.
func (c *Coordinator) Progress() Progress {
	total := c.partition.Blocks()
	cursor := c.cursor.Load()
	if cursor == nil {
		return Progress{Total: total}
	}
	dispensed := cursor.Peek()
	if dispensed > total {
		dispensed = total
	}
	return Progress{Dispensed: dispensed, Total: total}
}

// Run performs the run and returns its result. It may only be called once.
func (c *Coordinator) Run() (*Result, error) {
	// Ensure that this is the only run.
	if !c.started.TryMark() {
		return nil, errors.New("coordinator has already run")
	}

	// Terminate progress tracking once we're done.
	defer c.tracker.Terminate()

	// Create the run's shared state. The cursor starts at the worker count
	// since each worker implicitly holds the block matching its index.
	threads := c.configuration.Threads
	total := c.partition.Blocks()
	signals := state.NewSignalSet(threads)
	cursor := NewBlockCursor(uint64(threads))
	accumulator := &Accumulator{}

	// Create the workers. They start suspended.
	workers := make([]*worker, threads)
	for i := range workers {
		workers[i] = newWorker(
			i,
			c.partition,
			c.integrand,
			cursor,
			accumulator,
			signals,
			c.logger.Sublogger(workerLoggerName(i)),
		)
		go workers[i].run()
	}

	// Publish the cursor for progress reporting.
	c.cursor.Store(cursor)
	c.tracker.NotifyOfChange()
	c.logger.Infof("Starting %d worker(s) over %d block(s) of %d iteration(s)",
		threads, total, c.configuration.BlockSize,
	)

	// Start the workers.
	start := time.Now()
	for _, w := range workers {
		w.wake()
	}

	// Dispatch blocks until the cursor is exhausted. Each completed block
	// leads to exactly one resume of the worker that completed it.
	var dispatches uint64
	for cursor.Peek() < total {
		index := signals.WaitAny()
		signals.Reset(index)
		workers[index].wake()
		dispatches++
		c.tracker.NotifyOfChange()
		c.logger.Tracef("Resumed worker %d (next block %d)", index, cursor.Peek())
	}

	// Resume every worker once more so that each observes exhaustion, folds
	// its partial sum, and exits.
	c.logger.Debug("Block cursor exhausted, releasing workers")
	for _, w := range workers {
		w.wake()
	}

	// Wait for all workers to exit.
	for _, w := range workers {
		<-w.done
	}
	elapsed := time.Since(start)
	c.tracker.NotifyOfChange()

	// Collect results.
	sum := accumulator.Load()
	result := &Result{
		Estimate:   sum / float64(c.configuration.Iterations),
		Sum:        sum,
		Iterations: c.configuration.Iterations,
		BlockSize:  c.configuration.BlockSize,
		Blocks:     total,
		Threads:    threads,
		Dispatches: dispatches,
		Elapsed:    elapsed,
		Workers:    make([]WorkerResult, threads),
	}
	for i, w := range workers {
		result.Workers[i] = WorkerResult{
			Index:  i,
			Blocks: w.blocks,
			Sum:    w.sum,
		}
	}
	c.logger.Infof("Run completed in %v", elapsed)

	// Success.
	return result, nil
}
