package pointset

import (
	"fmt"
	"iter"
)

// Handle is a typed accessor for one property column. The value type is
// checked once, when the handle is acquired; Get and Set only bounds-check
// the index. A handle survives insertions, removals, and compactions of the
// index space (the column tracks those automatically) but becomes stale when
// its column is removed from the set.
type Handle[T any] struct {
	name  string
	col   *genericColumn[T]
	space *indexSpace
}

// Name returns the property name this handle is bound to.
func (h *Handle[T]) Name() string {
	return h.name
}

// Get returns the value stored for index i. Removed slots are readable; they
// hold whatever value was last written (or the column default).
func (h *Handle[T]) Get(i Index) (T, error) {
	var zero T
	if h.col.dropped {
		return zero, fmt.Errorf("property %q: %w", h.name, ErrStaleHandle)
	}
	if int(i) >= h.col.n {
		return zero, fmt.Errorf("index %d out of range [0,%d): %w", i, h.col.n, ErrInvalidIndex)
	}
	return *h.col.at(i), nil
}

// Set stores a value for index i. The slot must be active; writing to a
// removed slot fails with ErrInvalidIndex.
func (h *Handle[T]) Set(i Index, v T) error {
	if h.col.dropped {
		return fmt.Errorf("property %q: %w", h.name, ErrStaleHandle)
	}
	if int(i) >= h.col.n {
		return fmt.Errorf("index %d out of range [0,%d): %w", i, h.col.n, ErrInvalidIndex)
	}
	if h.space.removed.Contains(uint32(i)) {
		return fmt.Errorf("index %d is removed: %w", i, ErrInvalidIndex)
	}
	*h.col.at(i) = v
	return nil
}

// All yields (index, value) pairs for every active slot, in slot order. Like
// ActiveIndices, the sequence is restartable and must not race a mutation of
// the owning set.
func (h *Handle[T]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		if h.col.dropped {
			return
		}
		for i := range h.space.activeIndices() {
			if !yield(i, *h.col.at(i)) {
				return
			}
		}
	}
}
