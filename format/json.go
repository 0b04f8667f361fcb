package format

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

type jsonEncoder struct{}

func (jsonEncoder) ContentType() string { return "application/json" }

// Encode writes rows as one JSON object, keys in table order, the label
// entry first in every row.
func (jsonEncoder) Encode(w io.Writer, t Table) error {
	bw := bufio.NewWriter(w)
	bw.WriteByte('{')
	i := 0
	for field, row := range t.All() {
		if i > 0 {
			bw.WriteByte(',')
		}
		i++
		if err := writeJSON(bw, field); err != nil {
			return err
		}
		bw.WriteString(":{")
		j := 0
		if row.Labeled() {
			if err := writeJSONEntry(bw, row.Label, row.Field); err != nil {
				return err
			}
			j++
		}
		for k, c := range row.Cells.All() {
			if j > 0 {
				bw.WriteByte(',')
			}
			j++
			if err := writeJSONEntry(bw, k, cellValue(c)); err != nil {
				return err
			}
		}
		bw.WriteByte('}')
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

func writeJSONEntry(w *bufio.Writer, k string, v any) error {
	if err := writeJSON(w, k); err != nil {
		return err
	}
	w.WriteByte(':')
	return writeJSON(w, v)
}

func writeJSON(w *bufio.Writer, v any) error {
	b, err := json.Marshal(v)
	var (
		uv *json.UnsupportedValueError
		ut *json.UnsupportedTypeError
	)
	switch {
	case errors.As(err, &uv), errors.As(err, &ut):
		return fmt.Errorf("%w: %w", ErrUnrepresentable, err)
	case err != nil:
		return err
	}
	_, err = w.Write(b)
	return err
}

func init() { Register("json", func() Encoder { return jsonEncoder{} }) }
