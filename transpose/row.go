package transpose

import "transposer/ordered"

// Cell is one value of a row. Present is false when the outer entry had no
// such field; that is the missing sentinel, distinct from a present nil.
type Cell[V any] struct {
	Value   V
	Present bool
}

// Or returns the value, or def when the cell is missing.
func (c Cell[V]) Or(def V) V {
	if !c.Present {
		return def
	}
	return c.Value
}

// Row holds the values of one field across all outer keys. When Label is
// non-empty the row starts with the entry Label → Field.
type Row[K comparable, V any] struct {
	Field string
	Label string
	Cells *ordered.Map[K, Cell[V]]
}

func (r Row[K, V]) Labeled() bool { return r.Label != "" }

// Len counts entries including the label entry.
func (r Row[K, V]) Len() int {
	n := r.Cells.Len()
	if r.Labeled() {
		n++
	}
	return n
}

func (r Row[K, V]) Get(k K) (Cell[V], bool) { return r.Cells.Get(k) }

// Table is the transposed collection keyed by field name.
type Table[K comparable, V any] = *ordered.Map[string, Row[K, V]]
