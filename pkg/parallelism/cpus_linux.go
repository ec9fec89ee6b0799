package parallelism

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// availableCPUs returns the number of CPUs in the process' affinity mask,
// falling back to the total CPU count if the mask can't be queried.
func availableCPUs() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err == nil {
		if count := set.Count(); count > 0 {
			return count
		}
	}
	return runtime.NumCPU()
}
