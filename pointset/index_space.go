package pointset

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/kamstrup/intmap"
)

// Index identifies one storage slot. Indices are stable across insertions and
// removals; only Compact renumbers them. An Index is only meaningful relative
// to the set that issued it.
type Index uint32

// indexSpace owns the universe of slot identities and their active/removed
// state. Removed slots are tracked in a roaring bitmap for O(1) state queries
// plus a LIFO stack that decides recycling order: the most recently removed
// slot is reused first.
type indexSpace struct {
	size      Index
	removed   *roaring.Bitmap
	freeSlots []Index
}

func newIndexSpace() *indexSpace {
	return &indexSpace{
		removed: roaring.New(),
	}
}

// insert returns a recycled slot if one is available, else appends a new one.
// appended reports whether the slot is brand new, which obliges the caller to
// extend every property column by one slot.
func (s *indexSpace) insert() (idx Index, appended bool) {
	if n := len(s.freeSlots); n > 0 {
		idx = s.freeSlots[n-1]
		s.freeSlots = s.freeSlots[:n-1]
		s.removed.Remove(uint32(idx))
		return idx, false
	}

	idx = s.size
	s.size++
	return idx, true
}

// remove marks an active slot as removed. The slot keeps its position until
// the next compaction.
func (s *indexSpace) remove(i Index) error {
	if i >= s.size {
		return fmt.Errorf("index %d out of range [0,%d): %w", i, s.size, ErrInvalidIndex)
	}
	if s.removed.Contains(uint32(i)) {
		return fmt.Errorf("index %d already removed: %w", i, ErrInvalidIndex)
	}

	s.removed.Add(uint32(i))
	s.freeSlots = append(s.freeSlots, i)
	return nil
}

func (s *indexSpace) isRemoved(i Index) (bool, error) {
	if i >= s.size {
		return false, fmt.Errorf("index %d out of range [0,%d): %w", i, s.size, ErrInvalidIndex)
	}
	return s.removed.Contains(uint32(i)), nil
}

func (s *indexSpace) numSlots() int {
	return int(s.size)
}

func (s *indexSpace) numActive() int {
	return int(s.size) - int(s.removed.GetCardinality())
}

func (s *indexSpace) numRemoved() int {
	return int(s.removed.GetCardinality())
}

// compact drops all removed slots and renumbers the survivors into a
// contiguous prefix, preserving slot order. It returns the survivors' old
// indices in their new order, plus the old->new relabeling for callers that
// still hold pre-compaction indices.
func (s *indexSpace) compact() (order []Index, remap *intmap.Map[Index, Index]) {
	order = make([]Index, 0, s.numActive())
	remap = intmap.New[Index, Index](s.numActive())

	for i := Index(0); i < s.size; i++ {
		if s.removed.Contains(uint32(i)) {
			continue
		}
		remap.Put(i, Index(len(order)))
		order = append(order, i)
	}

	s.size = Index(len(order))
	s.removed.Clear()
	s.freeSlots = s.freeSlots[:0]
	return order, remap
}

// cancelRemovals flips every removed slot back to active. Slot contents are
// untouched, so the slots come back with whatever values they last held.
func (s *indexSpace) cancelRemovals() {
	s.removed.Clear()
	s.freeSlots = s.freeSlots[:0]
}

func (s *indexSpace) clear() {
	s.size = 0
	s.removed.Clear()
	s.freeSlots = s.freeSlots[:0]
}

// activeIndices yields the active slots in slot order. The sequence is lazy
// and restartable; each (re)start reads the current state. Mutating the set
// while a single pass is in progress is not supported.
func (s *indexSpace) activeIndices() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		for i := Index(0); i < s.size; i++ {
			if s.removed.Contains(uint32(i)) {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}
