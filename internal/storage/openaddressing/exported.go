package openaddressing

import (
	"github.com/gostonefire/memhashset/crt"
	"github.com/gostonefire/memhashset/hashfunc"
	"github.com/gostonefire/memhashset/internal/hash"
	"github.com/gostonefire/memhashset/internal/model"
)

// loadFactorThreshold - The occupied/capacity ratio at or above which the next insert first
// doubles capacity before proceeding. Deleted slots are not part of the ratio even though they
// occupy physical space.
const loadFactorThreshold float64 = 0.70

// OATable - Represents an in-memory implementation of the Open Addressing Collision Resolution
// Techniques. It uses one flat array of slots where each slot is tagged Empty, Occupied or
// Deleted. In case of a collision, it probes through the table using a collision resolution
// algorithm looking for a free slot. Removed elements leave Deleted slots (tombstones) behind to
// preserve probe sequences of other elements, and a resize reclaims them.
type OATable[T comparable] struct {
	slots                        []slot[T]
	nOccupied                    int64
	nDeleted                     int64
	initialCapacity              int64
	hashAlgorithm                hashfunc.HashAlgorithm[T]
	internalAlgorithm            bool
	collisionResolutionTechnique int
}

// NewOATable - Returns a pointer to a new instance of an Open Addressing table.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting table creation and processing
func NewOATable[T comparable](crtConf model.CRTConf[T]) (oaTable *OATable[T]) {
	if crtConf.InitialCapacity < model.MinCapacity {
		crtConf.InitialCapacity = model.MinCapacity
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		switch crtConf.CollisionResolutionTechnique {
		case crt.LinearProbing:
			crtConf.HashAlgorithm = hash.NewLinearProbingHashAlgorithm[T](crtConf.InitialCapacity)
		case crt.QuadraticProbing:
			crtConf.HashAlgorithm = hash.NewQuadraticProbingHashAlgorithm[T](crtConf.InitialCapacity)
		case crt.DoubleHashing:
			crtConf.HashAlgorithm = hash.NewDoubleHashAlgorithm[T](crtConf.InitialCapacity)
		}
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.InitialCapacity)
	}

	oaTable = &OATable[T]{
		slots:                        make([]slot[T], crtConf.HashAlgorithm.GetTableSize()),
		initialCapacity:              crtConf.InitialCapacity,
		hashAlgorithm:                crtConf.HashAlgorithm,
		internalAlgorithm:            internalAlg,
		collisionResolutionTechnique: crtConf.CollisionResolutionTechnique,
	}

	return
}

// Insert - Inserts the item unless an equal item is already present.
// If the load factor has reached the threshold the table is resized before the insert proceeds.
//
// It returns:
//   - ok is true if the item was inserted, false if an equal item was already present or the
//     table turned out to be completely full
func (O *OATable[T]) Insert(item T) (ok bool) {
	if float64(O.nOccupied)/float64(len(O.slots)) >= loadFactorThreshold {
		O.resize()
	}

	return O.insert(item)
}

// Find - Returns whether an item equal to the given one is present in the table
func (O *OATable[T]) Find(item T) (ok bool) {
	_, err := O.probingForFind(item)

	return err == nil
}

// Remove - Removes the item equal to the given one by tagging its slot Deleted and clearing the
// slot value. The slot keeps occupying physical space until a resize reclaims it.
//
// It returns:
//   - ok is true if an equal item was found and removed, false otherwise
func (O *OATable[T]) Remove(item T) (ok bool) {
	slotNo, err := O.probingForFind(item)
	if err != nil {
		return false
	}

	O.slots[slotNo] = slot[T]{state: model.SlotDeleted}
	O.nOccupied--
	O.nDeleted++

	return true
}

// Clear - Resets every slot to Empty, the capacity is left as is
func (O *OATable[T]) Clear() {
	O.slots = make([]slot[T], len(O.slots))
	O.nOccupied = 0
	O.nDeleted = 0
}

// Count - Returns the number of elements currently stored, Deleted slots excluded
func (O *OATable[T]) Count() int64 {
	return O.nOccupied
}

// GetStorageParameters - Returns a struct with storage parameters from OATable
func (O *OATable[T]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: O.collisionResolutionTechnique,
		InitialCapacity:              O.initialCapacity,
		Capacity:                     int64(len(O.slots)),
		LoadFactorThreshold:          loadFactorThreshold,
		InternalAlgorithm:            O.internalAlgorithm,
	}

	return
}

// BucketDistribution - Returns the number of elements stored in each slot, which in open
// addressing is one for an Occupied slot and zero otherwise
func (O *OATable[T]) BucketDistribution() (distribution []int64) {
	distribution = make([]int64, len(O.slots))
	for i := range O.slots {
		if O.slots[i].state == model.SlotOccupied {
			distribution[i] = 1
		}
	}

	return
}
