// Package transpose pivots a category-major collection into a field-major one.
//
// Input is an ordered mapping of outer key to an ordered field mapping:
//
//	Q1-2023: {revenue: 125000, orders: 1250}
//	Q2-2023: {revenue: 138000, orders: 1380}
//
// Output has one Row per field of the first outer entry, each with one Cell
// per outer key and, when a label is in effect, a leading label entry
// holding the field name:
//
//	revenue: {Metric: revenue, Q1-2023: 125000, Q2-2023: 138000}
//	orders:  {Metric: orders,  Q1-2023: 1250,   Q2-2023: 1380}
//
// Fields that appear only in later entries are ignored. Fields missing from
// a later entry produce a Cell with Present set to false. The Transposer
// holds no mutable state and is safe for concurrent use.
package transpose
