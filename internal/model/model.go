package model

import "github.com/gostonefire/memhashset/hashfunc"

// SlotEmpty - State indicating a slot that is or has never been in use
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that is in use
const SlotOccupied uint8 = 1

// SlotDeleted - State indicating a slot that has been in use but was deleted
const SlotDeleted uint8 = 2

// MinCapacity - The smallest capacity any table will be created with, requested capacities
// below it are clamped rather than rejected.
const MinCapacity int64 = 4

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	CollisionResolutionTechnique int
	InitialCapacity              int64
	Capacity                     int64
	LoadFactorThreshold          float64
	InternalAlgorithm            bool
}

// CRTConf - Is a struct to be passed in the call to NewXXTable and contains configuration that
// affects table creation and processing.
//   - InitialCapacity is the requested starting capacity, clamped to MinCapacity
//   - CollisionResolutionTechnique is one of the crt package constants
//   - HashAlgorithm is the hash function(s) to use, nil selects the internal algorithm for the technique
type CRTConf[T comparable] struct {
	InitialCapacity              int64
	CollisionResolutionTechnique int
	HashAlgorithm                hashfunc.HashAlgorithm[T]
}
