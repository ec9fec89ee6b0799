package integration

// Integrand evaluates the function being integrated at a sample index. It must
// be pure and safe for concurrent invocation.
type Integrand func(i uint64) float64

// MidpointPi returns the integrand whose sum over [0, iterations), divided by
// the iteration count, approximates pi: 4 / (1 + x^2) evaluated at the
// midpoint x = (i + 0.5) / iterations of each sample interval.
func MidpointPi(iterations uint64) Integrand {
	n := float64(iterations)
	return func(i uint64) float64 {
		x := (float64(i) + 0.5) / n
		return 4 / (1 + x*x)
	}
}

// Sequential sums the integrand over every block of the partition, in block
// order, on the calling Goroutine. It returns the raw sum.
func Sequential(partition Partition, integrand Integrand) float64 {
	var sum float64
	for k := uint64(0); k < partition.Blocks(); k++ {
		r := partition.Block(k)
		for i := r.Start; i < r.End; i++ {
			sum += integrand(i)
		}
	}
	return sum
}
