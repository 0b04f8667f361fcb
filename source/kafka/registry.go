package kafka

import (
	"fmt"
	"maps"
	"slices"
)

// Factory builds an Adapter for a named driver.
type Factory func() Adapter

var registry = map[string]Factory{
	"sarama": func() Adapter { return &SaramaDriver{} },
}

// Register adds or replaces a driver factory. Tests use it to swap in fakes.
func Register(name string, f Factory) {
	registry[name] = f
}

// Drivers lists registered driver names in sorted order.
func Drivers() []string {
	return slices.Sorted(maps.Keys(registry))
}

func NewAdapter(name string) (Adapter, error) {
	if f, ok := registry[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("kafka: unsupported driver %q (have %v)", name, Drivers())
}
