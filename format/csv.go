package format

import (
	"encoding/csv"
	"fmt"
	"io"
)

type csvEncoder struct{}

func (csvEncoder) ContentType() string { return "text/csv" }

// Encode writes a header of outer keys, preceded by the label when rows are
// labeled, then one record per field. Missing and nil values are empty.
func (csvEncoder) Encode(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	_, first, ok := t.First()
	if !ok {
		cw.Flush()
		return cw.Error()
	}

	header := make([]string, 0, first.Len())
	if first.Labeled() {
		header = append(header, first.Label)
	}
	header = append(header, first.Cells.Keys()...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range t.All() {
		rec := make([]string, 0, row.Len())
		if row.Labeled() {
			rec = append(rec, row.Field)
		}
		for _, c := range row.Cells.All() {
			rec = append(rec, csvCell(cellValue(c)))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvCell(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func init() { Register("csv", func() Encoder { return csvEncoder{} }) }
