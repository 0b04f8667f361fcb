// Package sink delivers transposed frames. Drivers register by name from
// their init functions and are configured from the pipeline's sink_configs.
package sink

import (
	"fmt"
	"maps"
	"slices"

	"transposer/frame"
)

type Adapter interface {
	Configure(any) error     // driver-specific config struct
	Push(*frame.Frame) error // deliver one frame
	Close() error            // idempotent
}

type factory = func() Adapter

var reg = map[string]factory{}

func Register(name string, f factory) { reg[name] = f }

// Names lists registered sinks in sorted order.
func Names() []string { return slices.Sorted(maps.Keys(reg)) }

func NewAdapter(name string) (Adapter, error) {
	if f, ok := reg[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("unknown sink %q (have %v)", name, Names())
}
