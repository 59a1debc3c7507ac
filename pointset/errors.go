package pointset

import "errors"

var (
	// ErrInvalidIndex reports an index outside the current slot range, or a
	// removed slot passed to an operation that requires an active one.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrPropertyNotFound reports a lookup of a property name that does not exist.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrPropertyTypeMismatch reports a typed lookup whose value type differs
	// from the stored column's type.
	ErrPropertyTypeMismatch = errors.New("property type mismatch")

	// ErrDuplicateProperty reports an attempt to add a property whose name is
	// already taken by a column of a different type.
	ErrDuplicateProperty = errors.New("duplicate property")

	// ErrStaleHandle reports use of a handle whose column has been removed.
	ErrStaleHandle = errors.New("stale property handle")

	// ErrReservedProperty reports an attempt to remove a reserved column.
	ErrReservedProperty = errors.New("reserved property")
)
