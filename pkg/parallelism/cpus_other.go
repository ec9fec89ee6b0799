//go:build !linux

package parallelism

import (
	"runtime"
)

// availableCPUs returns the number of CPUs available to the process.
func availableCPUs() int {
	return runtime.NumCPU()
}
