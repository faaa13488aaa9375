package hashfunc

// HashAlgorithm - Interface that permits an implementation using the HashSet to supply a custom
// bucket selection algorithm suited for its particular distribution of elements.
type HashAlgorithm[T comparable] interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// Implementations are free to round the requested size up, for instance to the nearest
	// exponent of 2 or to a prime, and the table will allocate whatever GetTableSize returns.
	//   - tableSize is the number of buckets the table will address
	SetTableSize(tableSize int64)
	// HashFunc1 - Given an item it generates a bucket number between 0 and table size - 1.
	// Any number returned outside that range will result in an error down stream.
	HashFunc1(item T) int64
	// HashFunc2 - Given an item it generates an offset probing value, only used in Double
	// Hashing collision resolution techniques.
	HashFunc2(item T) int64
	// GetTableSize - Returns the table size the implemented hash functions are supporting
	GetTableSize() int64
	// ProbeIteration - Returns the bucket number to inspect in the given probing iteration.
	// Since this function will be called repeatedly in a collision resolution situation, and the
	// actual hash values from HashFunc1 and HashFunc2 are the same throughout iterations for one
	// item, the function takes those values rather than the actual item as input.
	ProbeIteration(hf1Value, hf2Value, iteration int64) int64
}
