package pointset

import "reflect"

const columnBlockSize = 64

// iColumn is the type-erased view of one property column. Columns are kept in
// lock-step with the slot count at all times; only the owning set calls the
// mutating methods.
type iColumn interface {
	valueType() reflect.Type
	length() int
	extend()
	compactTo(order []Index)
	reserve(n int)
	clear()
	drop()
}

// genericColumn stores one value of type T per slot, in fixed-size blocks so
// that growth never moves existing values. New slots are filled with the
// column's default value.
type genericColumn[T any] struct {
	def     T
	blocks  [][columnBlockSize]T
	n       int
	dropped bool
}

// newGenericColumn creates a column of length n with every slot set to def.
func newGenericColumn[T any](def T, n int) *genericColumn[T] {
	c := &genericColumn[T]{def: def}
	for i := 0; i < n; i++ {
		c.extend()
	}
	return c
}

func (c *genericColumn[T]) valueType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (c *genericColumn[T]) length() int {
	return c.n
}

// at returns the address of slot i. The caller has already bounds-checked i.
func (c *genericColumn[T]) at(i Index) *T {
	return &c.blocks[int(i)/columnBlockSize][int(i)%columnBlockSize]
}

// extend appends one default-valued slot.
func (c *genericColumn[T]) extend() {
	blockIdx := c.n / columnBlockSize
	if blockIdx >= len(c.blocks) {
		c.blocks = append(c.blocks, [columnBlockSize]T{})
	}
	c.blocks[blockIdx][c.n%columnBlockSize] = c.def
	c.n++
}

// compactTo rewrites the column to hold exactly the slots named in order, in
// that order. order is the surviving old indices as produced by the index
// space's compaction, so every column ends up relabeled identically.
func (c *genericColumn[T]) compactTo(order []Index) {
	numBlocks := (len(order) + columnBlockSize - 1) / columnBlockSize
	newBlocks := make([][columnBlockSize]T, numBlocks)

	for newIdx, oldIdx := range order {
		newBlocks[newIdx/columnBlockSize][newIdx%columnBlockSize] = *c.at(oldIdx)
	}

	c.blocks = newBlocks
	c.n = len(order)
}

// reserve pre-allocates blocks for at least n slots without changing length.
func (c *genericColumn[T]) reserve(n int) {
	needed := (n + columnBlockSize - 1) / columnBlockSize
	for len(c.blocks) < needed {
		c.blocks = append(c.blocks, [columnBlockSize]T{})
	}
}

func (c *genericColumn[T]) clear() {
	c.blocks = nil
	c.n = 0
}

// drop marks the column dead so outstanding handles fail instead of reading
// freed storage.
func (c *genericColumn[T]) drop() {
	c.dropped = true
	c.blocks = nil
	c.n = 0
}
