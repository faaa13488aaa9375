package hash

import (
	"github.com/gostonefire/memhashset/internal/utils"
)

// SeparateChainingHashAlgorithm - The internally used bucket selection algorithm is implemented
// using crc32.ChecksumIEEE to create a hash value over the item and then applying
// bucket = hash & (actualTableSize - 1) to get the bucket number, where actualTableSize is the
// nearest bigger exponent of 2 of the requested table size.
type SeparateChainingHashAlgorithm[T comparable] struct {
	tableSize int64
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm[T comparable](tableSize int64) *SeparateChainingHashAlgorithm[T] {
	ha := &SeparateChainingHashAlgorithm[T]{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the
// requested table size.
//   - tableSize is the number of buckets the table will address
func (O *SeparateChainingHashAlgorithm[T]) SetTableSize(tableSize int64) {
	O.tableSize = utils.RoundUp2(tableSize)
}

// HashFunc1 - Given an item it generates an index (bucket) between 0 and table size - 1
func (O *SeparateChainingHashAlgorithm[T]) HashFunc1(item T) int64 {
	h := checksum(item)
	return h & (O.tableSize - 1)
}

// HashFunc2 - Not used in separate chaining collision resolution techniques, returns a dummy value
func (O *SeparateChainingHashAlgorithm[T]) HashFunc2(item T) int64 {
	return 0
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (O *SeparateChainingHashAlgorithm[T]) GetTableSize() int64 {
	return O.tableSize
}

// ProbeIteration - Not used in separate chaining collision resolution techniques, returns a dummy value
func (O *SeparateChainingHashAlgorithm[T]) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return 0
}
