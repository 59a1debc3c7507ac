package pointset

import "fmt"

// Inserter assembles records one property at a time, the way file-format
// readers produce them: values arrive in whatever order the format dictates,
// and the record's slot must exist before its first value lands. The first
// write of a record allocates exactly one index; every later write of the
// same record lands on that index; Commit (or a terminating push view, by
// convention the point view) ends the record so the next write starts a
// fresh one.
type Inserter[P, V any] struct {
	set     *PointSet[P, V]
	current Index
	started bool
}

// Inserter returns a new inserting cursor over the set.
func (s *PointSet[P, V]) Inserter() *Inserter[P, V] {
	return &Inserter[P, V]{set: s}
}

// Current returns the index of the record being assembled, if one is open.
func (it *Inserter[P, V]) Current() (Index, bool) {
	return it.current, it.started
}

// Commit ends the current record and returns its index. Returns false if no
// record is open (nothing was written since the last commit).
func (it *Inserter[P, V]) Commit() (Index, bool) {
	if !it.started {
		return 0, false
	}
	it.started = false
	return it.current, true
}

// PushPoint writes the point of the current record and commits it.
func (it *Inserter[P, V]) PushPoint(p P) Index {
	idx := it.ensure()
	*it.set.points.col.at(idx) = p
	it.started = false
	return idx
}

// ensure returns the open record's index, allocating one if no record is open.
func (it *Inserter[P, V]) ensure() Index {
	if !it.started {
		it.current = it.set.Insert()
		it.started = true
	}
	return it.current
}

// PushView writes one property of the record currently assembled by an
// Inserter. Views bound to the same inserter all target the same record
// until it is committed.
type PushView[T, P, V any] struct {
	ins      *Inserter[P, V]
	handle   *Handle[T]
	terminal bool
}

// PushViewFor binds a property handle to an inserter. Pushing through the
// view writes the open record's value for that property.
func PushViewFor[T, P, V any](ins *Inserter[P, V], h *Handle[T]) *PushView[T, P, V] {
	return &PushView[T, P, V]{ins: ins, handle: h}
}

// PointView returns the terminating push view for the point column: pushing
// a point writes it and commits the record.
func (it *Inserter[P, V]) PointView() *PushView[P, P, V] {
	return &PushView[P, P, V]{ins: it, handle: it.set.points, terminal: true}
}

// NormalView returns a push view for the normal column, creating the column
// on first use.
func (it *Inserter[P, V]) NormalView() *PushView[V, P, V] {
	return &PushView[V, P, V]{ins: it, handle: it.set.AddNormalMap()}
}

// Push writes val as the open record's value for this view's property,
// opening a record (allocating its index) if none is open. The staleness
// check runs before allocation, so a failed push never leaks an index.
func (v *PushView[T, P, V]) Push(val T) (Index, error) {
	if v.handle.col.dropped {
		return 0, fmt.Errorf("property %q: %w", v.handle.name, ErrStaleHandle)
	}

	idx := v.ins.ensure()
	if err := v.handle.Set(idx, val); err != nil {
		return 0, err
	}
	if v.terminal {
		v.ins.started = false
	}
	return idx, nil
}
