package main

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/blockpi/blockpi/cmd"
	"github.com/blockpi/blockpi/pkg/integration"
)

// minimumMonitorUpdateInterval is the minimum interval between status line
// updates.
const minimumMonitorUpdateInterval = 100 * time.Millisecond

// formatProgress formats a progress snapshot as a status line.
func formatProgress(progress integration.Progress) string {
	status := fmt.Sprintf("Blocks: %s/%s",
		humanize.Comma(int64(progress.Dispensed)),
		humanize.Comma(int64(progress.Total)),
	)
	if progress.Total > 0 {
		status += fmt.Sprintf(" (%.0f%%)", 100*float64(progress.Dispensed)/float64(progress.Total))
	}
	return status
}

// monitorRun follows a coordinator's progress tracker and prints status lines
// until the run completes or the context is cancelled.
func monitorRun(ctx context.Context, coordinator *integration.Coordinator) {
	// Create the status line printer and ensure that the final status line is
	// preserved.
	statusLinePrinter := &cmd.StatusLinePrinter{}
	defer statusLinePrinter.BreakIfNonEmpty()

	// Loop and print progress until tracking terminates.
	tracker := coordinator.Tracker()
	var previousIndex uint64
	var lastUpdateTime time.Time
	for {
		// Regulate the update frequency.
		if !lastUpdateTime.IsZero() {
			if elapsed := time.Since(lastUpdateTime); elapsed < minimumMonitorUpdateInterval {
				select {
				case <-time.After(minimumMonitorUpdateInterval - elapsed):
				case <-ctx.Done():
					statusLinePrinter.Clear()
					return
				}
			}
		}
		lastUpdateTime = time.Now()

		// Wait for a progress change.
		index, err := tracker.WaitForChange(ctx, previousIndex)
		if err != nil {
			if ctx.Err() != nil {
				statusLinePrinter.Clear()
			} else {
				statusLinePrinter.Print(formatProgress(coordinator.Progress()))
			}
			return
		}
		previousIndex = index

		// Print the status line.
		statusLinePrinter.Print(formatProgress(coordinator.Progress()))
	}
}
