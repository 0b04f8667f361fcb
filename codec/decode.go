// Package codec decodes nested JSON or YAML documents into transpose
// sources without losing key order.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"transposer/ordered"
	"transposer/transpose"
)

// ErrNotMapping is returned when the document root is a scalar.
var ErrNotMapping = errors.New("codec: document root is not a mapping or sequence")

// Decode returns a lazy source over r. Nothing is read until Each is called;
// read and syntax errors surface from Each.
func Decode(r io.Reader) transpose.Source[string, any] {
	return transpose.SourceFunc[string, any](func(fn func(string, transpose.Fields[any])) error {
		var doc yaml.Node
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("codec: %w", err)
		}
		return walk(&doc, fn)
	})
}

func DecodeBytes(b []byte) transpose.Source[string, any] {
	return Decode(bytes.NewReader(b))
}

func walk(n *yaml.Node, fn func(string, transpose.Fields[any])) error {
	n = resolve(n)
	if n == nil {
		return nil
	}
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			f, err := innerFields(n.Content[i+1])
			if err != nil {
				return err
			}
			fn(n.Content[i].Value, f)
		}
		return nil
	case yaml.SequenceNode:
		for i, item := range n.Content {
			f, err := innerFields(item)
			if err != nil {
				return err
			}
			fn(strconv.Itoa(i), f)
		}
		return nil
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil
		}
	}
	return ErrNotMapping
}

// innerFields returns nil for anything that is not a mapping, so every field
// of that entry reads as missing.
func innerFields(n *yaml.Node) (transpose.Fields[any], error) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, nil
	}
	f := ordered.New[string, any]()
	for i := 0; i+1 < len(n.Content); i += 2 {
		var v any
		if err := n.Content[i+1].Decode(&v); err != nil {
			return nil, fmt.Errorf("codec: field %q: %w", n.Content[i].Value, err)
		}
		f.Set(n.Content[i].Value, normalize(v))
	}
	return f, nil
}

// normalize rewrites the map[any]any yaml.v3 produces for mappings with
// non-string keys into map[string]any, at any depth.
func normalize(v any) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	default:
		return v
	}
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}
