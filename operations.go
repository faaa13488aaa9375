package memhashset

// Insert - Inserts the item unless an equal item is already present.
// If the load factor has reached the threshold the underlying table is resized before the insert
// proceeds, so an occasional Insert call carries an O(n) rehash even though inserts are
// amortized O(1).
//
// It returns:
//   - ok is true if the item was inserted, false if an equal item was already present (the set is then unchanged)
func (H *HashSet[T]) Insert(item T) (ok bool) {
	return H.storage.Insert(item)
}

// Find - Returns whether an item equal to the given one is present in the set. No mutation.
func (H *HashSet[T]) Find(item T) (ok bool) {
	return H.storage.Find(item)
}

// Remove - Removes the item equal to the given one.
//
// It returns:
//   - ok is true if an equal item was found and removed, false otherwise (the set is then unchanged)
func (H *HashSet[T]) Remove(item T) (ok bool) {
	return H.storage.Remove(item)
}

// Count - Returns the number of elements currently stored
func (H *HashSet[T]) Count() int64 {
	return H.storage.Count()
}

// IsEmpty - Returns true if the set holds no elements
func (H *HashSet[T]) IsEmpty() bool {
	return H.storage.Count() == 0
}

// Clear - Removes every element, the capacity is left as is
func (H *HashSet[T]) Clear() {
	H.storage.Clear()
}

// HashSetStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of elements stored
//   - Capacity is the current number of buckets (or slots)
//   - BucketDistribution is the number of elements stored in each available bucket
type HashSetStat struct {
	Records            int64
	Capacity           int64
	BucketDistribution []int64
}

// Stat - Produces a HashSetStat struct with information on the set.
//   - includeDistribution set to true will include a slice of length Capacity with number of elements per bucket, false will set HashSetStat.BucketDistribution to nil
func (H *HashSet[T]) Stat(includeDistribution bool) (hashSetStat *HashSetStat) {
	hss := HashSetStat{
		Records:  H.storage.Count(),
		Capacity: H.storage.GetStorageParameters().Capacity,
	}

	if includeDistribution {
		hss.BucketDistribution = H.storage.BucketDistribution()
	}

	hashSetStat = &hss
	return
}
