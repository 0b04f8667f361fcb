// Package ordered provides an insertion-ordered map. It is the collection
// type the transposer consumes and produces, because Go's built-in maps do
// not keep key order.
package ordered

import "iter"

// Pair is one key/value entry, used to build a Map literally.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a mapping that remembers the order in which keys were first set.
// The zero value is an empty map ready to use. Read methods treat a nil
// *Map as empty.
type Map[K comparable, V any] struct {
	keys []K
	vals map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{vals: make(map[K]V)}
}

// Of builds a Map from pairs in order. A repeated key keeps its first
// position and its last value.
func Of[K comparable, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		keys: make([]K, 0, len(pairs)),
		vals: make(map[K]V, len(pairs)),
	}
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Set stores v under k. A new key is appended; an existing key keeps its
// position and has its value replaced.
func (m *Map[K, V]) Set(k K, v V) {
	if m.vals == nil {
		m.vals = make(map[K]V)
	}
	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.vals[k] = v
}

func (m *Map[K, V]) Get(k K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.vals[k]
	return v, ok
}

func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.Get(k)
	return ok
}

func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in order.
func (m *Map[K, V]) Keys() []K {
	if m == nil {
		return nil
	}
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// First returns the earliest inserted entry.
func (m *Map[K, V]) First() (K, V, bool) {
	if m.Len() == 0 {
		var (
			zk K
			zv V
		)
		return zk, zv, false
	}
	k := m.keys[0]
	return k, m.vals[k], true
}

// All iterates entries in order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}
