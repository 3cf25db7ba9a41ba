package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Entry is a single key of a YAML mapping.
type Entry[V any] struct {
	Key   string
	Value V
}

// Ordered decodes a YAML mapping keeping the document order of its keys.
// Repeated keys are kept as separate entries.
type Ordered[V any] []Entry[V]

func (o *Ordered[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}
	entries := make(Ordered[V], 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return err
		}
		var value V
		if err := node.Content[i+1].Decode(&value); err != nil {
			return err
		}
		entries = append(entries, Entry[V]{Key: key, Value: value})
	}
	*o = entries
	return nil
}

type SourceConfig struct {
	Driver   string `yaml:"driver"`
	Priority *int   `yaml:"priority"`
	Enabled  *bool  `yaml:"enabled"`
}

type SystemConfig struct {
	SystemType string                `yaml:"system_type"`
	Enabled    *bool                 `yaml:"enabled"`
	Extends    string                `yaml:"extends"`
	Sources    Ordered[SourceConfig] `yaml:"sources"`
	Jobs       []string              `yaml:"jobs"`
}

// EnvironmentConfig maps system names to their configuration
type EnvironmentConfig = Ordered[SystemConfig]

// Config is the decoded content of a cibyl configuration file.
type Config struct {
	Environments Ordered[EnvironmentConfig] `yaml:"environments"`
	Templates    map[string]SystemConfig    `yaml:"templates"`
}
