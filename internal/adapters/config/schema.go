package config

import (
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// File represents the structure of the responsive.yaml configuration file.
type File struct {
	Breakpoints        WidthEntries `yaml:"breakpoints"`
	MediaQueries       QueryEntries `yaml:"mediaQueries"`
	InitialMediaType   string       `yaml:"initialMediaType"`
	DefaultOrientation string       `yaml:"defaultOrientation"`
	MobileBreakpoint   string       `yaml:"mobileBreakpoint"`
}

// WidthEntry is one name: minWidth pair of the breakpoints mapping.
type WidthEntry struct {
	Name     string
	MinWidth int
}

// WidthEntries keeps the breakpoints mapping in file order.
type WidthEntries []WidthEntry

// UnmarshalYAML decodes a mapping of breakpoint names to minimum widths.
func (e *WidthEntries) UnmarshalYAML(node *yaml.Node) error {
	return eachPair(node, "breakpoints", func(key string, value *yaml.Node) error {
		var width int
		if err := value.Decode(&width); err != nil {
			return zerr.With(zerr.Wrap(err, "breakpoint width must be an integer"), "breakpoint", key)
		}
		*e = append(*e, WidthEntry{Name: key, MinWidth: width})
		return nil
	})
}

// QueryEntry is one name: query pair of the mediaQueries mapping.
type QueryEntry struct {
	Name  string
	Query string
}

// QueryEntries keeps the mediaQueries mapping in file order.
type QueryEntries []QueryEntry

// UnmarshalYAML decodes a mapping of breakpoint names to range queries.
func (e *QueryEntries) UnmarshalYAML(node *yaml.Node) error {
	return eachPair(node, "mediaQueries", func(key string, value *yaml.Node) error {
		var query string
		if err := value.Decode(&query); err != nil {
			return zerr.With(zerr.Wrap(err, "media query must be a string"), "breakpoint", key)
		}
		*e = append(*e, QueryEntry{Name: key, Query: query})
		return nil
	})
}

func eachPair(node *yaml.Node, field string, fn func(key string, value *yaml.Node) error) error {
	if node.Kind != yaml.MappingNode {
		return zerr.With(zerr.With(zerr.New("expected a mapping"), "field", field), "line", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if err := fn(node.Content[i].Value, node.Content[i+1]); err != nil {
			return zerr.With(err, "line", node.Content[i].Line)
		}
	}
	return nil
}
