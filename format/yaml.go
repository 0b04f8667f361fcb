package format

import (
	"io"

	"gopkg.in/yaml.v3"
)

type yamlEncoder struct{}

func (yamlEncoder) ContentType() string { return "application/yaml" }

func (yamlEncoder) Encode(w io.Writer, t Table) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for field, row := range t.All() {
		rn := &yaml.Node{Kind: yaml.MappingNode}
		if row.Labeled() {
			if err := appendEntry(rn, row.Label, row.Field); err != nil {
				return err
			}
		}
		for k, c := range row.Cells.All() {
			if err := appendEntry(rn, k, cellValue(c)); err != nil {
				return err
			}
		}
		root.Content = append(root.Content, scalar(field), rn)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}

func appendEntry(m *yaml.Node, k string, v any) error {
	vn := &yaml.Node{}
	if err := vn.Encode(v); err != nil {
		return err
	}
	m.Content = append(m.Content, scalar(k), vn)
	return nil
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func init() { Register("yaml", func() Encoder { return yamlEncoder{} }) }
