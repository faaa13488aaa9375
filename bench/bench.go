package bench

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Target - The contract a container must expose to be benchmarked. It matches the public
// operations of a memhashset.HashSet instantiated over int64 elements, but any container with
// set-like semantics will do.
type Target interface {
	Insert(item int64) bool
	Find(item int64) bool
	Remove(item int64) bool
	Clear()
}

// Result - Holds the outcome of one measured operation round
//   - Operation is the name of the measured operation
//   - Ops is the number of operations executed in the round
//   - Elapsed is the total wall time of the round
//   - NsPerOp is Elapsed divided by Ops in nanoseconds
type Result struct {
	Operation string
	Ops       int
	Elapsed   time.Duration
	NsPerOp   float64
}

// Runner - Drives warmup and measured rounds against a Target
type Runner struct {
	ops    int
	warmup int
	rnd    *rand.Rand
	logger *zap.Logger
}

// NewRunner - Returns a pointer to a new Runner instance
//   - ops is the number of elements used in each round, non-positive values select a default of 100000
//   - warmup is the number of untimed full rounds executed before measuring
//   - seed makes the element sequence reproducible between runs
//   - logger may be nil in which case progress logging is disabled
func NewRunner(ops, warmup int, seed int64, logger *zap.Logger) *Runner {
	if ops <= 0 {
		ops = 100000
	}
	if warmup < 0 {
		warmup = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{
		ops:    ops,
		warmup: warmup,
		rnd:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// Run - Executes the configured warmup rounds followed by one measured round each of Insert,
// Find and Remove over the same shuffled element sequence. The target is left cleared.
//
// It returns:
//   - results is one Result per measured operation, in execution order
func (R *Runner) Run(target Target) (results []Result) {
	items := R.items()

	for i := 0; i < R.warmup; i++ {
		R.round(target, items)
		R.logger.Info("warmup round done",
			zap.Int("round", i+1),
			zap.Int("ops", R.ops),
		)
	}

	results = append(results, R.measure("Insert", items, target.Insert))
	results = append(results, R.measure("Find", items, target.Find))
	results = append(results, R.measure("Remove", items, target.Remove))
	target.Clear()

	return
}

// items - Returns the shuffled element sequence used by every round
func (R *Runner) items() (items []int64) {
	perm := R.rnd.Perm(R.ops)
	items = make([]int64, len(perm))
	for i, p := range perm {
		items[i] = int64(p)
	}

	return
}

// round - Executes one untimed full insert/find/remove round and clears the target
func (R *Runner) round(target Target, items []int64) {
	for _, item := range items {
		target.Insert(item)
	}
	for _, item := range items {
		target.Find(item)
	}
	for _, item := range items {
		target.Remove(item)
	}
	target.Clear()
}

// measure - Times one operation over the full element sequence
func (R *Runner) measure(operation string, items []int64, op func(item int64) bool) (result Result) {
	start := time.Now()
	for _, item := range items {
		op(item)
	}
	elapsed := time.Since(start)

	R.logger.Info("measured round done",
		zap.String("operation", operation),
		zap.Int("ops", len(items)),
		zap.Duration("elapsed", elapsed),
	)

	result = Result{
		Operation: operation,
		Ops:       len(items),
		Elapsed:   elapsed,
		NsPerOp:   float64(elapsed.Nanoseconds()) / float64(len(items)),
	}

	return
}
