// Package format renders a transposed table. Encoders register themselves
// by name so every surface (CLI, gRPC, pipeline) resolves formats the same way.
package format

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"transposer/transpose"
)

var ErrUnknownFormat = errors.New("format: unknown format")

// ErrUnrepresentable is returned when a cell value has no encoding in the
// chosen format, such as NaN in JSON.
var ErrUnrepresentable = errors.New("format: value not representable")

// Table is the shape every encoder renders.
type Table = transpose.Table[string, any]

type Encoder interface {
	Encode(w io.Writer, t Table) error
	// ContentType is the media type of the rendered output.
	ContentType() string
}

type Factory func() Encoder

var (
	mu  sync.RWMutex
	reg = map[string]Factory{}
)

func Register(name string, f Factory) {
	mu.Lock()
	reg[name] = f
	mu.Unlock()
}

func New(name string) (Encoder, error) {
	mu.RLock()
	f, ok := reg[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, name)
	}
	return f(), nil
}

// Names lists registered formats alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(reg))
	for n := range reg {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func cellValue(c transpose.Cell[any]) any { return c.Or(nil) }
