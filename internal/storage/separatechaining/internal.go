package separatechaining

// chainNode - Holds one element and the link to the next node in the chain
type chainNode[T comparable] struct {
	item T
	next *chainNode[T]
}

// bucketNumber - Returns which bucket number that the given item results in
func (S *SCTable[T]) bucketNumber(item T) int64 {
	return S.hashAlgorithm.HashFunc1(item)
}

// insert - Inserts without evaluating the load factor. Both Insert and resize funnel through this
// function, which guarantees that a rehash in progress can never trigger a second resize.
func (S *SCTable[T]) insert(item T) (ok bool) {
	bucketNo := S.bucketNumber(item)

	for node := S.buckets[bucketNo]; node != nil; node = node.next {
		if node.item == item {
			return false
		}
	}

	S.buckets[bucketNo] = &chainNode[T]{item: item, next: S.buckets[bucketNo]}
	S.nOccupied++

	return true
}

// resize - Doubles the number of buckets and rehashes every element into a fresh bucket array.
// The element count is reset and rebuilt by the re-insertions, and since the source can hold no
// duplicates every re-insertion succeeds.
func (S *SCTable[T]) resize() {
	oldBuckets := S.buckets

	S.hashAlgorithm.SetTableSize(int64(len(S.buckets)) * 2)
	S.buckets = make([]*chainNode[T], S.hashAlgorithm.GetTableSize())
	S.nOccupied = 0

	for _, node := range oldBuckets {
		for ; node != nil; node = node.next {
			S.insert(node.item)
		}
	}
}
