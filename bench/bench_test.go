//go:build unit

package bench

import (
	"github.com/gostonefire/memhashset"
	"github.com/gostonefire/memhashset/crt"
	"github.com/stretchr/testify/assert"
	"testing"
)

// countingTarget - Records the number of calls per operation
type countingTarget struct {
	inserts int
	finds   int
	removes int
	clears  int
}

func (C *countingTarget) Insert(item int64) bool {
	C.inserts++
	return true
}

func (C *countingTarget) Find(item int64) bool {
	C.finds++
	return true
}

func (C *countingTarget) Remove(item int64) bool {
	C.removes++
	return true
}

func (C *countingTarget) Clear() {
	C.clears++
}

func TestNewRunner(t *testing.T) {
	t.Run("applies defaults for bad parameters", func(t *testing.T) {
		// Execute
		runner := NewRunner(0, -1, 42, nil)

		// Check
		assert.Equal(t, 100000, runner.ops, "default number of ops")
		assert.Zero(t, runner.warmup, "negative warmup clamped")
		assert.NotNil(t, runner.logger, "nil logger replaced")
		assert.NotNil(t, runner.rnd, "random source created")
	})
}

func TestRunner_Run(t *testing.T) {
	t.Run("executes warmup and measured rounds", func(t *testing.T) {
		// Prepare
		target := &countingTarget{}
		runner := NewRunner(100, 1, 42, nil)

		// Execute
		results := runner.Run(target)

		// Check
		assert.Equal(t, 200, target.inserts, "one warmup and one measured insert round")
		assert.Equal(t, 200, target.finds, "one warmup and one measured find round")
		assert.Equal(t, 200, target.removes, "one warmup and one measured remove round")
		assert.Equal(t, 2, target.clears, "target cleared after each round")

		assert.Equal(t, 3, len(results), "one result per measured operation")
		assert.Equal(t, "Insert", results[0].Operation, "insert measured first")
		assert.Equal(t, "Find", results[1].Operation, "find measured second")
		assert.Equal(t, "Remove", results[2].Operation, "remove measured last")
		for _, result := range results {
			assert.Equal(t, 100, result.Ops, "correct number of ops")
			assert.GreaterOrEqual(t, result.NsPerOp, 0.0, "ns per op not negative")
		}
	})

	t.Run("drives a hash set end to end", func(t *testing.T) {
		// Prepare
		hashSet, _, err := memhashset.NewHashSet[int64](crt.LinearProbing, 16, nil)
		assert.NoError(t, err, "create new hash set")
		runner := NewRunner(1000, 0, 42, nil)

		// Execute
		results := runner.Run(hashSet)

		// Check
		assert.Equal(t, 3, len(results), "one result per measured operation")
		assert.True(t, hashSet.IsEmpty(), "hash set left cleared")
	})
}
