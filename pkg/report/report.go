package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sugawarayuuta/sonnet"

	"github.com/blockpi/blockpi/pkg/integration"
)

// Worker summarizes the work performed by a single worker.
type Worker struct {
	// Index is the worker index.
	Index int `json:"index"`
	// Blocks is the number of blocks processed by the worker.
	Blocks int `json:"blocks"`
	// Sum is the worker's partial sum.
	Sum float64 `json:"sum"`
}

// Verification records a comparison against a sequential computation.
type Verification struct {
	// Sum is the sequential sum.
	Sum float64 `json:"sum"`
	// Deviation is the relative deviation of the parallel sum from the
	// sequential sum.
	Deviation float64 `json:"deviation"`
}

// Report is the externally visible summary of a run.
type Report struct {
	// Identifier is the run identifier.
	Identifier string `json:"identifier"`
	// Estimate is the approximation of pi.
	Estimate float64 `json:"estimate"`
	// Error is the difference between the estimate and math.Pi.
	Error float64 `json:"error"`
	// Iterations is the number of sample points.
	Iterations uint64 `json:"iterations"`
	// BlockSize is the number of sample points per block.
	BlockSize uint64 `json:"blockSize"`
	// Blocks is the number of blocks.
	Blocks uint64 `json:"blocks"`
	// Threads is the number of workers.
	Threads int `json:"threads"`
	// Dispatches is the number of individual worker resumes.
	Dispatches uint64 `json:"dispatches"`
	// ElapsedMilliseconds is the duration of the parallel phase.
	ElapsedMilliseconds int64 `json:"elapsedMilliseconds"`
	// Workers summarizes per-worker activity.
	Workers []Worker `json:"workers"`
	// Verification is the sequential comparison, if one was performed.
	Verification *Verification `json:"verification,omitempty"`
}

// New creates a report from a run result.
func New(identifier string, result *integration.Result) *Report {
	report := &Report{
		Identifier:          identifier,
		Estimate:            result.Estimate,
		Error:               result.Estimate - math.Pi,
		Iterations:          result.Iterations,
		BlockSize:           result.BlockSize,
		Blocks:              result.Blocks,
		Threads:             result.Threads,
		Dispatches:          result.Dispatches,
		ElapsedMilliseconds: result.Elapsed.Milliseconds(),
		Workers:             make([]Worker, len(result.Workers)),
	}
	for i, w := range result.Workers {
		report.Workers[i] = Worker{
			Index:  w.Index,
			Blocks: len(w.Blocks),
			Sum:    w.Sum,
		}
	}
	return report
}

// Verify records a comparison between the run's sum and a sequential sum over
// the same partition.
func (r *Report) Verify(result *integration.Result, sequentialSum float64) {
	var deviation float64
	if sequentialSum != 0 {
		deviation = math.Abs(result.Sum-sequentialSum) / math.Abs(sequentialSum)
	}
	r.Verification = &Verification{
		Sum:       sequentialSum,
		Deviation: deviation,
	}
}

// Write writes the report to the specified writer in the specified format.
func (r *Report) Write(writer io.Writer, format Format) error {
	switch format {
	case FormatText:
		return r.writeText(writer)
	case FormatJSON:
		return r.writeJSON(writer)
	default:
		return errors.Errorf("unknown report format: %d", format)
	}
}

// writeText writes the report in text format.
func (r *Report) writeText(writer io.Writer) error {
	// Format the report body.
	text := fmt.Sprintf("Pi = %s\n", strconv.FormatFloat(r.Estimate, 'f', -1, 64))
	text += fmt.Sprintf("Error: %.3e\n", r.Error)
	text += fmt.Sprintf("Iterations: %s in %s block(s) of %s\n",
		humanize.Comma(int64(r.Iterations)),
		humanize.Comma(int64(r.Blocks)),
		humanize.Comma(int64(r.BlockSize)),
	)
	text += fmt.Sprintf("Threads: %d (%d dispatch(es))\n", r.Threads, r.Dispatches)
	for _, w := range r.Workers {
		text += fmt.Sprintf("    Worker %d: %d block(s)\n", w.Index, w.Blocks)
	}
	if r.Verification != nil {
		text += fmt.Sprintf("Sequential deviation: %.3e\n", r.Verification.Deviation)
	}
	text += fmt.Sprintf("Time elapsed: %d ms\n", r.ElapsedMilliseconds)

	// Write the report.
	if _, err := io.WriteString(writer, text); err != nil {
		return errors.Wrap(err, "unable to write report")
	}
	return nil
}

// writeJSON writes the report in JSON format, followed by a newline.
func (r *Report) writeJSON(writer io.Writer) error {
	// Encode the report.
	data, err := sonnet.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "unable to encode report")
	}

	// Write the report.
	if _, err := writer.Write(append(data, '\n')); err != nil {
		return errors.Wrap(err, "unable to write report")
	}
	return nil
}
