//go:build unit

package separatechaining

import (
	"github.com/gostonefire/memhashset/crt"
	"github.com/gostonefire/memhashset/internal/model"
	"github.com/stretchr/testify/assert"
	"testing"
)

// collidingHashAlgorithm - Forces every item into bucket zero so that chain handling can be
// exercised deterministically
type collidingHashAlgorithm struct {
	tableSize int64
}

func (C *collidingHashAlgorithm) SetTableSize(tableSize int64) {
	C.tableSize = tableSize
}

func (C *collidingHashAlgorithm) HashFunc1(item int) int64 {
	return 0
}

func (C *collidingHashAlgorithm) HashFunc2(item int) int64 {
	return 0
}

func (C *collidingHashAlgorithm) GetTableSize() int64 {
	return C.tableSize
}

func (C *collidingHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + iteration) % C.tableSize
}

func TestNewSCTable(t *testing.T) {
	t.Run("creates a new SCTable instance", func(t *testing.T) {
		// Prepare
		crtConf := model.CRTConf[int]{
			InitialCapacity:              10,
			CollisionResolutionTechnique: crt.SeparateChaining,
			HashAlgorithm:                nil,
		}

		// Execute
		scTable := NewSCTable[int](crtConf)

		// Check
		sp := scTable.GetStorageParameters()
		assert.Equal(t, crt.SeparateChaining, sp.CollisionResolutionTechnique, "correct crt")
		assert.Equal(t, int64(10), sp.InitialCapacity, "requested capacity preserved")
		assert.Equal(t, int64(16), sp.Capacity, "capacity rounded up to exponent of 2")
		assert.Equal(t, 0.75, sp.LoadFactorThreshold, "correct load factor threshold")
		assert.True(t, sp.InternalAlgorithm, "has internal hash algorithm")
		assert.Zero(t, scTable.Count(), "table is empty")
	})

	t.Run("clamps a non-positive capacity to the minimum", func(t *testing.T) {
		// Prepare
		crtConf := model.CRTConf[int]{InitialCapacity: 0}

		// Execute
		scTable := NewSCTable[int](crtConf)

		// Check
		sp := scTable.GetStorageParameters()
		assert.Equal(t, model.MinCapacity, sp.InitialCapacity, "requested capacity clamped")
		assert.Equal(t, model.MinCapacity, sp.Capacity, "capacity is the minimum")
	})
}

func TestSCTable_Insert(t *testing.T) {
	t.Run("inserts elements and rejects duplicates", func(t *testing.T) {
		// Prepare
		scTable := NewSCTable[int](model.CRTConf[int]{InitialCapacity: 16})

		// Execute
		okFirst := scTable.Insert(1)
		okSecond := scTable.Insert(2)
		okDuplicate := scTable.Insert(1)

		// Check
		assert.True(t, okFirst, "first element inserted")
		assert.True(t, okSecond, "second element inserted")
		assert.False(t, okDuplicate, "duplicate rejected")
		assert.Equal(t, int64(2), scTable.Count(), "count unaffected by duplicate")
		assert.True(t, scTable.Find(1), "first element findable")
		assert.True(t, scTable.Find(2), "second element findable")
	})

	t.Run("resizes when the load factor threshold is reached", func(t *testing.T) {
		// Prepare
		scTable := NewSCTable[int](model.CRTConf[int]{InitialCapacity: 4})

		// Execute
		for item := 1; item <= 3; item++ {
			assert.True(t, scTable.Insert(item), "element inserted")
		}

		// Check
		assert.Equal(t, int64(3), scTable.Count(), "three elements stored")
		assert.Equal(t, int64(4), scTable.GetStorageParameters().Capacity, "capacity still at initial value")

		// Execute - 3/4 has reached the 0.75 threshold, hence this insert doubles capacity first
		assert.True(t, scTable.Insert(4), "fourth element inserted")

		// Check
		assert.Equal(t, int64(4), scTable.Count(), "four elements stored")
		assert.Equal(t, int64(8), scTable.GetStorageParameters().Capacity, "capacity doubled")
		for item := 1; item <= 4; item++ {
			assert.True(t, scTable.Find(item), "element preserved over resize")
		}
	})

	t.Run("preserves membership over repeated resizes", func(t *testing.T) {
		// Prepare
		scTable := NewSCTable[int](model.CRTConf[int]{InitialCapacity: 4})

		// Execute
		for item := 0; item < 100; item++ {
			assert.True(t, scTable.Insert(item), "element inserted")
		}

		// Check
		assert.Equal(t, int64(100), scTable.Count(), "all elements stored")
		for item := 0; item < 100; item++ {
			assert.True(t, scTable.Find(item), "element preserved over resizes")
		}
	})
}

func TestSCTable_Find(t *testing.T) {
	t.Run("reports absent elements", func(t *testing.T) {
		// Prepare
		scTable := NewSCTable[int](model.CRTConf[int]{InitialCapacity: 16})
		scTable.Insert(1)

		// Execute
		ok := scTable.Find(2)

		// Check
		assert.False(t, ok, "absent element not found")
	})
}

func TestSCTable_Remove(t *testing.T) {
	t.Run("removes head, middle and tail of a chain", func(t *testing.T) {
		// Prepare
		// All elements collide into bucket zero, insert prepends so the chain is 3 -> 2 -> 1
		crtConf := model.CRTConf[int]{InitialCapacity: 16, HashAlgorithm: &collidingHashAlgorithm{}}
		scTable := NewSCTable[int](crtConf)
		for item := 1; item <= 3; item++ {
			scTable.Insert(item)
		}
		assert.False(t, scTable.GetStorageParameters().InternalAlgorithm, "has external hash algorithm")

		// Execute / Check
		assert.True(t, scTable.Remove(2), "middle of chain removed")
		assert.True(t, scTable.Remove(3), "head of chain removed")
		assert.True(t, scTable.Remove(1), "tail of chain removed")
		assert.Zero(t, scTable.Count(), "all elements removed")
	})

	t.Run("reports removal of an absent element", func(t *testing.T) {
		// Prepare
		scTable := NewSCTable[int](model.CRTConf[int]{InitialCapacity: 16})
		scTable.Insert(1)

		// Execute / Check
		assert.False(t, scTable.Remove(2), "absent element not removed")
		assert.True(t, scTable.Remove(1), "present element removed")
		assert.False(t, scTable.Remove(1), "second removal reports false")
		assert.False(t, scTable.Find(1), "removed element not findable")
	})
}

func TestSCTable_Clear(t *testing.T) {
	t.Run("clears all elements but keeps capacity", func(t *testing.T) {
		// Prepare
		scTable := NewSCTable[int](model.CRTConf[int]{InitialCapacity: 4})
		for item := 0; item < 20; item++ {
			scTable.Insert(item)
		}
		capacityBefore := scTable.GetStorageParameters().Capacity

		// Execute
		scTable.Clear()

		// Check
		assert.Zero(t, scTable.Count(), "table is empty")
		assert.Equal(t, capacityBefore, scTable.GetStorageParameters().Capacity, "capacity unchanged")
		assert.False(t, scTable.Find(1), "cleared element not findable")
		assert.True(t, scTable.Insert(1), "table usable after clear")
	})
}

func TestSCTable_BucketDistribution(t *testing.T) {
	t.Run("distribution sums up to count", func(t *testing.T) {
		// Prepare
		scTable := NewSCTable[int](model.CRTConf[int]{InitialCapacity: 16})
		for item := 0; item < 10; item++ {
			scTable.Insert(item)
		}

		// Execute
		distribution := scTable.BucketDistribution()

		// Check
		assert.Equal(t, int(scTable.GetStorageParameters().Capacity), len(distribution), "one entry per bucket")
		var total int64
		for _, n := range distribution {
			total += n
		}
		assert.Equal(t, scTable.Count(), total, "distribution sums up to count")
	})
}
