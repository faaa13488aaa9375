package openaddressing

import (
	"github.com/gostonefire/memhashset/crt"
	"github.com/gostonefire/memhashset/internal/model"
)

// slot - One slot in the table, the item is only valid while state is model.SlotOccupied
type slot[T comparable] struct {
	state uint8
	item  T
}

// insert - Inserts without evaluating the load factor. Both Insert and resize funnel through this
// function, which guarantees that a rehash in progress can never trigger a second resize.
func (O *OATable[T]) insert(item T) (ok bool) {
	slotNo, err := O.probingForInsert(item)
	if err != nil {
		return false
	}

	if O.slots[slotNo].state == model.SlotDeleted {
		O.nDeleted--
	}
	O.slots[slotNo] = slot[T]{state: model.SlotOccupied, item: item}
	O.nOccupied++

	return true
}

// resize - Doubles the capacity and re-inserts every Occupied element into a fresh slot array.
// Deleted slots are dropped, which is also how tombstone accumulation is garbage collected.
func (O *OATable[T]) resize() {
	oldSlots := O.slots

	O.hashAlgorithm.SetTableSize(int64(len(O.slots)) * 2)
	O.slots = make([]slot[T], O.hashAlgorithm.GetTableSize())
	O.nOccupied = 0
	O.nDeleted = 0

	for i := range oldSlots {
		if oldSlots[i].state == model.SlotOccupied {
			O.insert(oldSlots[i].item)
		}
	}
}

// probingForFind - Is the Probing Collision Resolution Technique algorithm for finding an item.
// An Empty slot terminates the search since the item can then never have been inserted, while a
// Deleted slot keeps the probe going.
func (O *OATable[T]) probingForFind(item T) (slotNo int64, err error) {
	var probe, n int64

	capacity := int64(len(O.slots))
	hf1Value := O.hashAlgorithm.HashFunc1(item)
	hf2Value := O.hashAlgorithm.HashFunc2(item)

	iMax := capacity * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = O.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe >= 0 && probe < capacity {
			switch O.slots[probe].state {
			case model.SlotEmpty:
				err = crt.NoElementFound{}
				return

			case model.SlotOccupied:
				if O.slots[probe].item == item {
					slotNo = probe
					return
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			n++
			if n >= capacity {
				err = crt.NoElementFound{}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	err = crt.ProbingAlgorithm{}
	return
}

// probingForInsert - Is the Probing Collision Resolution Technique algorithm for finding the slot
// a new item should occupy. A Deleted slot cannot end the duplicate search since the matching item
// might still be further down the probe sequence, so the first one found is remembered and
// preferred as insertion target once an Empty slot or a full probe cycle proves there is no
// duplicate. TableFull is only reported when the cycle completed with neither an Empty nor a
// Deleted slot seen.
func (O *OATable[T]) probingForInsert(item T) (slotNo int64, err error) {
	var deletedSlotNo int64
	var hasCached bool
	var probe, n int64

	capacity := int64(len(O.slots))
	hf1Value := O.hashAlgorithm.HashFunc1(item)
	hf2Value := O.hashAlgorithm.HashFunc2(item)

	iMax := capacity * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = O.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe >= 0 && probe < capacity {
			switch O.slots[probe].state {
			case model.SlotEmpty:
				if hasCached {
					slotNo = deletedSlotNo
				} else {
					slotNo = probe
				}
				return

			case model.SlotOccupied:
				if O.slots[probe].item == item {
					err = crt.DuplicateElement{}
					return
				}

			case model.SlotDeleted:
				if !hasCached {
					deletedSlotNo = probe
					hasCached = true
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			n++
			if n >= capacity {
				if hasCached {
					slotNo = deletedSlotNo
					return
				}
				err = crt.TableFull{}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	err = crt.ProbingAlgorithm{}
	return
}
