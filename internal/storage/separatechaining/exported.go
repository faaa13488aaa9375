package separatechaining

import (
	"github.com/gostonefire/memhashset/crt"
	"github.com/gostonefire/memhashset/hashfunc"
	"github.com/gostonefire/memhashset/internal/hash"
	"github.com/gostonefire/memhashset/internal/model"
)

// loadFactorThreshold - The count/capacity ratio at or above which the next insert first doubles
// capacity before proceeding
const loadFactorThreshold float64 = 0.75

// SCTable - Represents an in-memory implementation of the Separate Chaining Collision Resolution
// Technique. Every bucket holds the head of a singly linked chain of colliding elements. When the
// load factor reaches loadFactorThreshold the table doubles in capacity and rehashes every element
// before the insert proceeds.
type SCTable[T comparable] struct {
	buckets           []*chainNode[T]
	nOccupied         int64
	initialCapacity   int64
	hashAlgorithm     hashfunc.HashAlgorithm[T]
	internalAlgorithm bool
}

// NewSCTable - Returns a pointer to a new instance of a Separate Chaining table.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting table creation and processing
func NewSCTable[T comparable](crtConf model.CRTConf[T]) (scTable *SCTable[T]) {
	if crtConf.InitialCapacity < model.MinCapacity {
		crtConf.InitialCapacity = model.MinCapacity
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		crtConf.HashAlgorithm = hash.NewSeparateChainingHashAlgorithm[T](crtConf.InitialCapacity)
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.InitialCapacity)
	}

	scTable = &SCTable[T]{
		buckets:           make([]*chainNode[T], crtConf.HashAlgorithm.GetTableSize()),
		initialCapacity:   crtConf.InitialCapacity,
		hashAlgorithm:     crtConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// Insert - Inserts the item unless an equal item is already present.
// If the load factor has reached the threshold the table is resized before the insert proceeds.
//
// It returns:
//   - ok is true if the item was inserted, false if an equal item was already present
func (S *SCTable[T]) Insert(item T) (ok bool) {
	if float64(S.nOccupied)/float64(len(S.buckets)) >= loadFactorThreshold {
		S.resize()
	}

	return S.insert(item)
}

// Find - Returns whether an item equal to the given one is present in the table
func (S *SCTable[T]) Find(item T) (ok bool) {
	for node := S.buckets[S.bucketNumber(item)]; node != nil; node = node.next {
		if node.item == item {
			return true
		}
	}

	return false
}

// Remove - Removes the item equal to the given one by unlinking its chain node.
//
// It returns:
//   - ok is true if an equal item was found and removed, false otherwise
func (S *SCTable[T]) Remove(item T) (ok bool) {
	bucketNo := S.bucketNumber(item)

	node := S.buckets[bucketNo]
	if node == nil {
		return false
	}

	// Special case: the item matches the head of the chain
	if node.item == item {
		S.buckets[bucketNo] = node.next
		S.nOccupied--
		return true
	}

	prev := node
	for curr := node.next; curr != nil; curr = curr.next {
		if curr.item == item {
			prev.next = curr.next
			S.nOccupied--
			return true
		}
		prev = curr
	}

	return false
}

// Clear - Replaces all buckets with empty chains, the capacity is left as is
func (S *SCTable[T]) Clear() {
	S.buckets = make([]*chainNode[T], len(S.buckets))
	S.nOccupied = 0
}

// Count - Returns the number of elements currently stored
func (S *SCTable[T]) Count() int64 {
	return S.nOccupied
}

// GetStorageParameters - Returns a struct with storage parameters from SCTable
func (S *SCTable[T]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		InitialCapacity:              S.initialCapacity,
		Capacity:                     int64(len(S.buckets)),
		LoadFactorThreshold:          loadFactorThreshold,
		InternalAlgorithm:            S.internalAlgorithm,
	}

	return
}

// BucketDistribution - Returns the number of elements stored in each bucket
func (S *SCTable[T]) BucketDistribution() (distribution []int64) {
	distribution = make([]int64, len(S.buckets))
	for i, node := range S.buckets {
		for ; node != nil; node = node.next {
			distribution[i]++
		}
	}

	return
}
