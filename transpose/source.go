package transpose

import (
	"iter"

	"transposer/ordered"
)

// Fields is the inner mapping of one outer entry.
type Fields[V any] = *ordered.Map[string, V]

// Source produces outer entries in order. Each must call fn once per entry
// and return any failure of the underlying producer.
type Source[K comparable, V any] interface {
	Each(fn func(K, Fields[V])) error
}

// SourceFunc adapts a plain function to Source.
type SourceFunc[K comparable, V any] func(fn func(K, Fields[V])) error

func (f SourceFunc[K, V]) Each(fn func(K, Fields[V])) error { return f(fn) }

// FromMap reads an already materialized collection.
func FromMap[K comparable, V any](m *ordered.Map[K, Fields[V]]) Source[K, V] {
	return SourceFunc[K, V](func(fn func(K, Fields[V])) error {
		for k, f := range m.All() {
			fn(k, f)
		}
		return nil
	})
}

// FromSeq reads a lazily produced sequence. It never fails on its own.
func FromSeq[K comparable, V any](seq iter.Seq2[K, Fields[V]]) Source[K, V] {
	return SourceFunc[K, V](func(fn func(K, Fields[V])) error {
		for k, f := range seq {
			fn(k, f)
		}
		return nil
	})
}
