package memhashset

import (
	"github.com/gostonefire/memhashset/crt"
	"github.com/gostonefire/memhashset/hashfunc"
	"github.com/gostonefire/memhashset/internal/model"
	"github.com/gostonefire/memhashset/internal/storage/openaddressing"
	"github.com/gostonefire/memhashset/internal/storage/separatechaining"
)

// TableStorage - Interface for any table storage implementation
type TableStorage[T comparable] interface {
	Insert(item T) bool
	Find(item T) bool
	Remove(item T) bool
	Clear()
	Count() int64
	GetStorageParameters() (params model.StorageParameters)
	BucketDistribution() (distribution []int64)
}

// SetInfo - Information structure containing some information about the hash set created
//   - CollisionResolutionTechnique is the crt constant the set was created with
//   - InitialCapacity is the requested initial capacity after clamping to the minimum of 4
//   - Capacity is the number of buckets (or slots) actually allocated
//   - LoadFactorThreshold is the count/capacity ratio above which the next insert resizes first
//   - InternalAlgorithm tells whether the internal hash algorithm is in use
type SetInfo struct {
	CollisionResolutionTechnique int
	InitialCapacity              int64
	Capacity                     int64
	LoadFactorThreshold          float64
	InternalAlgorithm            bool
}

// HashSet - The main implementation struct
type HashSet[T comparable] struct {
	storage TableStorage[T]
}

// NewHashSet - Returns a new in-memory hash set using the given collision resolution technique.
//   - collisionResolutionTechnique is one of crt.SeparateChaining, crt.LinearProbing, crt.QuadraticProbing or crt.DoubleHashing
//   - initialCapacity is the requested starting capacity, values below the minimum of 4 are clamped rather than rejected
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface, nil selects the internal algorithm
//
// It returns:
//   - hashSet is a pointer to a HashSet struct
//   - setInfo is a SetInfo struct containing some data regarding the hash set created
//   - err is a normal Go error which should be nil if everything went ok
func NewHashSet[T comparable](
	collisionResolutionTechnique int,
	initialCapacity int64,
	hashAlgorithm hashfunc.HashAlgorithm[T],
) (
	hashSet *HashSet[T],
	setInfo SetInfo,
	err error,
) {

	crtConf := model.CRTConf[T]{
		InitialCapacity:              initialCapacity,
		CollisionResolutionTechnique: collisionResolutionTechnique,
		HashAlgorithm:                hashAlgorithm,
	}

	var tableStorage TableStorage[T]
	switch collisionResolutionTechnique {
	case crt.SeparateChaining:
		tableStorage = separatechaining.NewSCTable[T](crtConf)
	case crt.LinearProbing, crt.QuadraticProbing, crt.DoubleHashing:
		tableStorage = openaddressing.NewOATable[T](crtConf)
	default:
		err = crt.UnknownCollisionResolutionTechnique{}
		return
	}

	// Prepare return data
	hashSet = &HashSet[T]{storage: tableStorage}

	sp := tableStorage.GetStorageParameters()

	setInfo = SetInfo{
		CollisionResolutionTechnique: sp.CollisionResolutionTechnique,
		InitialCapacity:              sp.InitialCapacity,
		Capacity:                     sp.Capacity,
		LoadFactorThreshold:          sp.LoadFactorThreshold,
		InternalAlgorithm:            sp.InternalAlgorithm,
	}

	return
}
