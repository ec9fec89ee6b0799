package integration

import (
	"testing"
)

// TestPartitionConcreteBlocks tests the block layout for a block size that
// doesn't evenly divide the iteration count.
func TestPartitionConcreteBlocks(t *testing.T) {
	partition := NewPartition(10, 3)
	if partition.Blocks() != 4 {
		t.Fatal("unexpected block count:", partition.Blocks())
	}
	expected := []Range{{0, 3}, {3, 6}, {6, 9}, {9, 10}}
	for k, e := range expected {
		if r := partition.Block(uint64(k)); r != e {
			t.Errorf("block %d mismatch: %v != %v", k, r, e)
		}
	}
	if last := partition.Block(3); last.Len() != 1 {
		t.Error("unexpected final block length:", last.Len())
	}
}

// TestPartitionDivisible tests that an evenly divisible iteration count yields
// no short block.
func TestPartitionDivisible(t *testing.T) {
	partition := NewPartition(12, 3)
	if partition.Blocks() != 4 {
		t.Fatal("unexpected block count:", partition.Blocks())
	}
	for k := uint64(0); k < partition.Blocks(); k++ {
		if length := partition.Block(k).Len(); length != 3 {
			t.Errorf("block %d has unexpected length: %d", k, length)
		}
	}
}

// TestPartitionExhausted tests that blocks beyond the block count are empty.
func TestPartitionExhausted(t *testing.T) {
	partition := NewPartition(10, 3)
	for _, k := range []uint64{4, 5, 1 << 40} {
		if r := partition.Block(k); !r.Empty() || r.Len() != 0 {
			t.Errorf("block %d is non-empty: %v", k, r)
		}
	}
}

// TestPartitionCompleteness tests that blocks cover the iteration range
// exactly, in order, without overlap or gaps.
func TestPartitionCompleteness(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		iterations uint64
		blockSize  uint64
	}{
		{1, 1},
		{1, 7},
		{7, 1},
		{100, 10},
		{101, 10},
		{99, 10},
		{1000, 999},
		{1000, 1001},
		{DefaultIterations, DefaultBlockSize},
	}

	// Perform tests.
	for _, testCase := range testCases {
		partition := NewPartition(testCase.iterations, testCase.blockSize)
		expectedBlocks := testCase.iterations / testCase.blockSize
		if testCase.iterations%testCase.blockSize != 0 {
			expectedBlocks++
		}
		if partition.Blocks() != expectedBlocks {
			t.Errorf("%d/%d: block count mismatch: %d != %d",
				testCase.iterations, testCase.blockSize, partition.Blocks(), expectedBlocks,
			)
			continue
		}
		var next, covered uint64
		for k := uint64(0); k < partition.Blocks(); k++ {
			r := partition.Block(k)
			if r.Start != next {
				t.Errorf("%d/%d: block %d starts at %d, expected %d",
					testCase.iterations, testCase.blockSize, k, r.Start, next,
				)
			}
			if r.Empty() || r.Len() > testCase.blockSize {
				t.Errorf("%d/%d: block %d has invalid length %d",
					testCase.iterations, testCase.blockSize, k, r.Len(),
				)
			}
			next = r.End
			covered += r.Len()
		}
		if next != testCase.iterations || covered != testCase.iterations {
			t.Errorf("%d/%d: coverage mismatch: end %d, covered %d",
				testCase.iterations, testCase.blockSize, next, covered,
			)
		}
	}
}
