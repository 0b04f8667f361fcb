package transpose

import "transposer/ordered"

type settings struct {
	label    string
	labelSet bool
}

// Option configures a Transposer at construction or a single Transpose call.
type Option func(*settings)

// WithLabel names the column that holds the field name. An empty label
// means no label entry.
func WithLabel(label string) Option {
	return func(s *settings) {
		s.label, s.labelSet = label, true
	}
}

// WithoutLabel suppresses the label for a call even if a default is set.
func WithoutLabel() Option { return WithLabel("") }

type Transposer[K comparable, V any] struct {
	def settings
}

func New[K comparable, V any](opts ...Option) *Transposer[K, V] {
	t := &Transposer[K, V]{}
	for _, o := range opts {
		o(&t.def)
	}
	return t
}

// Label returns the construction-time default label.
func (t *Transposer[K, V]) Label() (string, bool) {
	return t.def.label, t.def.labelSet && t.def.label != ""
}

// Transpose materializes src and pivots it. A failure reported by src is
// returned as is, with no partial result.
func (t *Transposer[K, V]) Transpose(src Source[K, V], opts ...Option) (Table[K, V], error) {
	in, err := materialize(src)
	if err != nil {
		return nil, err
	}
	label := t.resolveLabel(opts)

	out := ordered.New[string, Row[K, V]]()
	_, first, ok := in.First()
	if !ok {
		return out, nil
	}
	for field := range first.All() {
		out.Set(field, extractRow(field, in, label))
	}
	return out, nil
}

func (t *Transposer[K, V]) resolveLabel(opts []Option) string {
	call := settings{}
	for _, o := range opts {
		o(&call)
	}
	if call.labelSet {
		return call.label
	}
	return t.def.label
}

func materialize[K comparable, V any](src Source[K, V]) (*ordered.Map[K, Fields[V]], error) {
	in := ordered.New[K, Fields[V]]()
	if src == nil {
		return in, nil
	}
	if err := src.Each(func(k K, f Fields[V]) { in.Set(k, f) }); err != nil {
		return nil, err
	}
	return in, nil
}

func extractRow[K comparable, V any](field string, in *ordered.Map[K, Fields[V]], label string) Row[K, V] {
	cells := ordered.New[K, Cell[V]]()
	for k, fields := range in.All() {
		v, ok := fields.Get(field)
		cells.Set(k, Cell[V]{Value: v, Present: ok})
	}
	return Row[K, V]{Field: field, Label: label, Cells: cells}
}
