package pointset

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
)

// Reserved column names. The point column always exists; the normal column is
// created lazily by AddNormalMap.
const (
	PointProperty  = "point"
	NormalProperty = "normal"
)

// Vec3 is a convenience payload for callers that don't bring their own
// coordinate types. The core treats point and normal types as opaque.
type Vec3 struct {
	X, Y, Z float64
}

// PointSet is a collection of points with an extensible set of named, typed
// properties attached to each. P is the point payload type, V the normal
// payload type. The zero value is not usable; call New.
//
// A PointSet is not safe for concurrent use. Structural operations (Insert,
// Remove, Compact, property add/remove) require external serialization;
// read-only access from multiple goroutines is fine as long as no structural
// operation or Set on the same column is in flight.
type PointSet[P, V any] struct {
	space  *indexSpace
	props  *propStore
	points *Handle[P]
}

// New creates an empty point set. The point column exists from the start,
// filled with the zero value of P for every inserted slot.
func New[P, V any]() *PointSet[P, V] {
	s := &PointSet[P, V]{
		space: newIndexSpace(),
		props: newPropStore(),
	}

	var zero P
	points, err := AddProperty(s, PointProperty, zero)
	if err != nil {
		panic("pointset: creating reserved point column: " + err.Error())
	}
	s.points = points
	return s
}

// Insert allocates a slot and returns its index. A removed slot is recycled
// if one exists (most recently removed first); otherwise a new slot is
// appended and every property column grows by one default-valued slot.
//
// Recycled slots are not reset: columns that existed when the slot was
// removed still hold their old values. Columns added while the slot was
// removed hold their default. Callers must not assume recycled slots start
// clean.
func (s *PointSet[P, V]) Insert() Index {
	idx, appended := s.space.insert()
	if appended {
		s.props.extendAll()
	}
	s.checkSync()
	return idx
}

// InsertPoint allocates a slot and sets its point in one step.
func (s *PointSet[P, V]) InsertPoint(p P) Index {
	idx := s.Insert()
	*s.points.col.at(idx) = p
	return idx
}

// Remove marks the slot as removed. Column contents are untouched; the slot
// stays addressable (and its index may be recycled) until the next Compact.
func (s *PointSet[P, V]) Remove(i Index) error {
	return s.space.remove(i)
}

// IsRemoved reports whether slot i is removed. Fails with ErrInvalidIndex if
// i is outside the current slot range.
func (s *PointSet[P, V]) IsRemoved(i Index) (bool, error) {
	return s.space.isRemoved(i)
}

// Compact physically drops all removed slots, shifting the survivors into a
// contiguous prefix [0, ActiveCount) in slot order, and truncates every
// column to match. It returns the old->new relabeling of surviving indices;
// any index not present in the relabeling has been dropped. This is the only
// operation that changes the meaning of previously issued indices.
func (s *PointSet[P, V]) Compact() *intmap.Map[Index, Index] {
	order, remap := s.space.compact()
	s.props.compactAll(order)
	s.checkSync()
	return remap
}

// CancelRemovals turns every removed slot back into an active one. The slots
// return with whatever property values they last held.
func (s *PointSet[P, V]) CancelRemovals() {
	s.space.cancelRemovals()
}

// Clear removes all slots. Properties survive with length zero.
func (s *PointSet[P, V]) Clear() {
	s.space.clear()
	s.props.clearAll()
	s.checkSync()
}

// Reserve pre-allocates storage for at least n slots in every column.
func (s *PointSet[P, V]) Reserve(n int) {
	s.props.reserveAll(n)
}

// Size returns the total number of slots, removed ones included.
func (s *PointSet[P, V]) Size() int {
	return s.space.numSlots()
}

// ActiveCount returns the number of active (not removed) slots.
func (s *PointSet[P, V]) ActiveCount() int {
	return s.space.numActive()
}

// NumRemoved returns the number of removed slots awaiting compaction.
func (s *PointSet[P, V]) NumRemoved() int {
	return s.space.numRemoved()
}

// IsEmpty reports whether the set has no active slots.
func (s *PointSet[P, V]) IsEmpty() bool {
	return s.space.numActive() == 0
}

// ActiveIndices yields the active indices in slot order. The sequence is
// lazy and restartable; mutating the set mid-pass is not supported.
func (s *PointSet[P, V]) ActiveIndices() iter.Seq[Index] {
	return s.space.activeIndices()
}

// Point returns the point stored at index i.
func (s *PointSet[P, V]) Point(i Index) (P, error) {
	return s.points.Get(i)
}

// SetPoint stores a point at index i. The slot must be active.
func (s *PointSet[P, V]) SetPoint(i Index, p P) error {
	return s.points.Set(i, p)
}

// PointMap returns the typed handle for the reserved point column.
func (s *PointSet[P, V]) PointMap() *Handle[P] {
	return s.points
}

// HasNormals reports whether the normal column has been created.
func (s *PointSet[P, V]) HasNormals() bool {
	return s.props.has(NormalProperty)
}

// AddNormalMap creates the reserved normal column if needed and returns its
// handle. Pre-existing slots are filled with the zero value of V.
func (s *PointSet[P, V]) AddNormalMap() *Handle[V] {
	var zero V
	h, err := AddProperty(s, NormalProperty, zero)
	if err != nil {
		panic("pointset: creating reserved normal column: " + err.Error())
	}
	return h
}

// NormalMap returns the handle for the normal column, failing with
// ErrPropertyNotFound if AddNormalMap has not been called.
func (s *PointSet[P, V]) NormalMap() (*Handle[V], error) {
	return GetProperty[V](s, NormalProperty)
}

// Normal returns the normal stored at index i.
func (s *PointSet[P, V]) Normal(i Index) (V, error) {
	h, err := s.NormalMap()
	if err != nil {
		var zero V
		return zero, err
	}
	return h.Get(i)
}

// SetNormal stores a normal at index i, creating the normal column on first
// use. The slot must be active.
func (s *PointSet[P, V]) SetNormal(i Index, v V) error {
	return s.AddNormalMap().Set(i, v)
}

// RemoveNormalMap drops the normal column. No-op result false if it was
// never created.
func (s *PointSet[P, V]) RemoveNormalMap() bool {
	return s.props.removeColumn(NormalProperty)
}

// HasProperty reports whether a column with the given name exists.
func (s *PointSet[P, V]) HasProperty(name string) bool {
	return s.props.has(name)
}

// RemoveProperty drops the named column. All handles bound to it become
// stale. The reserved point column cannot be removed.
func (s *PointSet[P, V]) RemoveProperty(name string) error {
	if name == PointProperty {
		return fmt.Errorf("property %q: %w", name, ErrReservedProperty)
	}
	if !s.props.removeColumn(name) {
		return fmt.Errorf("property %q: %w", name, ErrPropertyNotFound)
	}
	return nil
}

// Properties returns a snapshot of all columns, sorted by name. The snapshot
// does not track later additions or removals.
func (s *PointSet[P, V]) Properties() []PropertyInfo {
	return s.props.infos()
}

// AddProperty creates a column named name with one slot per index, every slot
// filled with def; pre-existing slots are back-filled. If a column of the
// same name and type already exists, the existing column's handle is returned
// and def is ignored. A name collision with a different type fails with
// ErrDuplicateProperty; the reserved names only accept the set's own point
// and normal types (ErrReservedProperty otherwise).
func AddProperty[T, P, V any](s *PointSet[P, V], name string, def T) (*Handle[T], error) {
	// The reserved columns are pinned to the set's payload types.
	if name == PointProperty && reflect.TypeFor[T]() != reflect.TypeFor[P]() {
		return nil, fmt.Errorf("property %q is pinned to type %s: %w",
			name, reflect.TypeFor[P](), ErrReservedProperty)
	}
	if name == NormalProperty && reflect.TypeFor[T]() != reflect.TypeFor[V]() {
		return nil, fmt.Errorf("property %q is pinned to type %s: %w",
			name, reflect.TypeFor[V](), ErrReservedProperty)
	}

	if existing, ok := s.props.columns[name]; ok {
		if existing.valueType() != reflect.TypeFor[T]() {
			return nil, fmt.Errorf("property %q exists with type %s: %w",
				name, existing.valueType(), ErrDuplicateProperty)
		}
		return &Handle[T]{name: name, col: existing.(*genericColumn[T]), space: s.space}, nil
	}

	col := newGenericColumn(def, s.props.length)
	s.props.columns[name] = col
	return &Handle[T]{name: name, col: col, space: s.space}, nil
}

// GetProperty returns a typed handle for an existing column. Fails with
// ErrPropertyNotFound if the name is unknown and ErrPropertyTypeMismatch if
// the column holds a different type. The type check happens here, once;
// access through the handle does not repeat it.
func GetProperty[T, P, V any](s *PointSet[P, V], name string) (*Handle[T], error) {
	col, ok := s.props.columns[name]
	if !ok {
		return nil, fmt.Errorf("property %q: %w", name, ErrPropertyNotFound)
	}
	if col.valueType() != reflect.TypeFor[T]() {
		return nil, fmt.Errorf("property %q holds %s, requested %s: %w",
			name, col.valueType(), reflect.TypeFor[T](), ErrPropertyTypeMismatch)
	}
	return &Handle[T]{name: name, col: col.(*genericColumn[T]), space: s.space}, nil
}

// checkSync asserts the index space and every column agree on slot count.
// Disagreement is a bug in this package, never a recoverable condition.
func (s *PointSet[P, V]) checkSync() {
	if s.props.length != s.space.numSlots() {
		panic(fmt.Sprintf("pointset: property store length %d out of sync with index space size %d",
			s.props.length, s.space.numSlots()))
	}
}
