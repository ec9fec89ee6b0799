package parallelism

import (
	"runtime"
)

// SchedulableCPUs returns the number of CPUs on which the current process can
// execute Goroutines simultaneously. It is the smaller of the CPUs available
// to the process and GOMAXPROCS, and it is always at least one.
func SchedulableCPUs() int {
	available := availableCPUs()
	if procs := runtime.GOMAXPROCS(0); procs < available {
		available = procs
	}
	if available < 1 {
		available = 1
	}
	return available
}
