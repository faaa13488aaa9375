package hash

import (
	"github.com/gostonefire/memhashset/internal/utils"
)

// LinearProbingHashAlgorithm - The internally used bucket selection algorithm is implemented
// using crc32.ChecksumIEEE to create a hash value over the item and then applying
// bucket = hash & (actualTableSize - 1) to get the bucket number, where actualTableSize is the
// nearest bigger exponent of 2 of the requested table size.
type LinearProbingHashAlgorithm[T comparable] struct {
	tableSize int64
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance
func NewLinearProbingHashAlgorithm[T comparable](tableSize int64) *LinearProbingHashAlgorithm[T] {
	ha := &LinearProbingHashAlgorithm[T]{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the
// requested table size.
//   - tableSize is the number of buckets the table will address
func (L *LinearProbingHashAlgorithm[T]) SetTableSize(tableSize int64) {
	L.tableSize = utils.RoundUp2(tableSize)
}

// HashFunc1 - Given an item it generates an index (bucket) between 0 and table size - 1
func (L *LinearProbingHashAlgorithm[T]) HashFunc1(item T) int64 {
	h := checksum(item)
	return h & (L.tableSize - 1)
}

// HashFunc2 - Not used in linear probing collision resolution techniques, returns a dummy value
func (L *LinearProbingHashAlgorithm[T]) HashFunc2(item T) int64 {
	return 0
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (L *LinearProbingHashAlgorithm[T]) GetTableSize() int64 {
	return L.tableSize
}

// ProbeIteration - Implements Linear Probing
func (L *LinearProbingHashAlgorithm[T]) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	probe := hf1Value + iteration
	if probe >= L.tableSize {
		probe -= L.tableSize
	}

	return probe
}
