package format

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

type dumpEncoder struct {
	cfg *spew.ConfigState
}

func (dumpEncoder) ContentType() string { return "text/plain" }

// Encode dumps rows as ordered [key, value] pairs for debugging.
func (d dumpEncoder) Encode(w io.Writer, t Table) error {
	type entry struct {
		Key   any
		Value any
	}
	type row struct {
		Field   string
		Entries []entry
	}
	rows := make([]row, 0, t.Len())
	for field, r := range t.All() {
		out := row{Field: field}
		if r.Labeled() {
			out.Entries = append(out.Entries, entry{r.Label, r.Field})
		}
		for k, c := range r.Cells.All() {
			out.Entries = append(out.Entries, entry{k, cellValue(c)})
		}
		rows = append(rows, out)
	}
	d.cfg.Fdump(w, rows)
	return nil
}

func init() {
	Register("dump", func() Encoder {
		return dumpEncoder{cfg: &spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}}
	})
}
