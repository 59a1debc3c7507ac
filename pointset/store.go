package pointset

import (
	"reflect"
	"slices"
	"strings"
)

// PropertyInfo describes one column: its unique name and value type.
type PropertyInfo struct {
	Name string
	Type reflect.Type
}

// propStore maps property names to type-erased columns. Every column's length
// equals the slot count of the owning set's index space, removed slots
// included; the store's length field is the authoritative copy of that count
// and is verified against the index space after every structural change.
type propStore struct {
	columns map[string]iColumn
	length  int
}

func newPropStore() *propStore {
	return &propStore{
		columns: make(map[string]iColumn),
	}
}

// extendAll appends one default-valued slot to every column. Called exactly
// once per appended index-space slot.
func (ps *propStore) extendAll() {
	for _, col := range ps.columns {
		col.extend()
	}
	ps.length++
}

// compactAll relabels every column with the same surviving-slot order.
func (ps *propStore) compactAll(order []Index) {
	for _, col := range ps.columns {
		col.compactTo(order)
	}
	ps.length = len(order)
}

func (ps *propStore) reserveAll(n int) {
	for _, col := range ps.columns {
		col.reserve(n)
	}
}

func (ps *propStore) clearAll() {
	for _, col := range ps.columns {
		col.clear()
	}
	ps.length = 0
}

func (ps *propStore) has(name string) bool {
	_, ok := ps.columns[name]
	return ok
}

// removeColumn drops a column and invalidates all handles bound to it.
func (ps *propStore) removeColumn(name string) bool {
	col, ok := ps.columns[name]
	if !ok {
		return false
	}
	col.drop()
	delete(ps.columns, name)
	return true
}

// infos returns a snapshot of all columns, sorted by name.
func (ps *propStore) infos() []PropertyInfo {
	out := make([]PropertyInfo, 0, len(ps.columns))
	for name, col := range ps.columns {
		out = append(out, PropertyInfo{Name: name, Type: col.valueType()})
	}
	slices.SortFunc(out, func(a, b PropertyInfo) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
