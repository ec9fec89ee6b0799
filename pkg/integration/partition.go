package integration

// Range is a half-open range of sample indices.
type Range struct {
	// Start is the first index in the range.
	Start uint64
	// End is one past the last index in the range.
	End uint64
}

// Len returns the number of indices in the range.
func (r Range) Len() uint64 {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty returns whether or not the range contains no indices.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Partition maps block indices to sample ranges for a fixed iteration count and
// block size. It is immutable and safe for concurrent usage.
type Partition struct {
	// iterations is the total number of sample points.
	iterations uint64
	// blockSize is the number of sample points per block.
	blockSize uint64
	// blocks is the number of blocks, ceil(iterations / blockSize).
	blocks uint64
}

// NewPartition creates a new partition. Both arguments must be positive.
func NewPartition(iterations, blockSize uint64) Partition {
	if blockSize == 0 {
		panic("zero block size")
	}
	return Partition{
		iterations: iterations,
		blockSize:  blockSize,
		blocks:     (iterations + blockSize - 1) / blockSize,
	}
}

// Iterations returns the total number of sample points.
func (p Partition) Iterations() uint64 {
	return p.iterations
}

// BlockSize returns the number of sample points per block.
func (p Partition) BlockSize() uint64 {
	return p.blockSize
}

// Blocks returns the number of blocks.
func (p Partition) Blocks() uint64 {
	return p.blocks
}

// Block returns the sample range covered by block k. The last block is
// truncated at the iteration count. Indices at or beyond the block count yield
// an empty range, which signals that no work remains.
func (p Partition) Block(k uint64) Range {
	if k >= p.blocks {
		return Range{Start: p.iterations, End: p.iterations}
	}
	start := k * p.blockSize
	end := start + p.blockSize
	if end > p.iterations {
		end = p.iterations
	}
	return Range{Start: start, End: end}
}
