package config

import (
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FromYAML returns the default configuration overlaid with the
// settings found in the YAML document `data`.  Nested mappings are
// flattened into dotted paths, so both `eval.max_depth: 10` and
//
//	eval:
//	  max_depth: 10
//
// address the same setting.
func FromYAML(data []byte) (*Config, error) {
	doc := map[string]any{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: can't decode yaml: %w", err)
	}
	cfg := NewConfig()
	if err := cfg.Overlay(doc); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromTOML is the same as FromYAML but reads a TOML document, where
// tables play the role of nested mappings.
func FromTOML(data []byte) (*Config, error) {
	doc := map[string]any{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: can't decode toml: %w", err)
	}
	cfg := NewConfig()
	if err := cfg.Overlay(doc); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overlay writes each scalar within `doc` into `c`.  Every path must
// name a setting `c` already has, and the value must keep its type.
// Nothing is written when any of them doesn't.
func (c *Config) Overlay(doc map[string]any) error {
	next := c.Clone()
	if err := next.overlay("", doc); err != nil {
		return err
	}
	*c = *next
	return nil
}

func (c *Config) overlay(prefix string, doc map[string]any) error {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if err := c.overlayValue(path, doc[k]); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) overlayValue(path string, v any) error {
	switch value := v.(type) {
	case map[string]any:
		return c.overlay(path, value)
	case bool, int, string:
		return c.update(path, value)
	case int64:
		return c.update(path, int(value))
	default:
		return fmt.Errorf("config: unsupported value %v (%T) for `%s`", v, v, path)
	}
}
