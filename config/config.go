package config

import (
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"
)

// Config is a flat map of typed settings addressed by dotted paths,
// like `choice.error_policy` or `eval.max_depth`.
type Config map[string]*setting

// Values accepted by the `choice.error_policy` setting
const (
	ErrorPolicyLast     = "last"
	ErrorPolicyFurthest = "furthest"
)

// NewConfig creates a new configuration object primed with all the
// default values expected by both the parser combinators and the
// evaluator.  Documents loaded with FromYAML or FromTOML can only
// change the settings defined here.
func NewConfig() *Config {
	m := make(Config)
	// which failing branch of an ordered choice gets reported when
	// all of them fail
	m.define("choice.error_policy", ErrorPolicyLast, ErrorPolicyLast, ErrorPolicyFurthest)
	// log entering and leaving named productions
	m.define("parser.trace", false)
	// max nesting of expressions the evaluator walks before raising
	// `recursion_limit_exceeded`.  Zero disables the check
	m.define("eval.max_depth", 10000)
	// log each expression node the evaluator dispatches
	m.define("eval.trace", false)
	return &m
}

// Clone returns a copy of the configuration that can be modified
// without affecting `c`
func (c *Config) Clone() *Config {
	m := make(Config, len(*c))
	for k, v := range *c {
		cp := *v
		m[k] = &cp
	}
	return &m
}

// Keys returns the paths of all settings in lexicographical order
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(*c))
	for k := range *c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Dump writes one `path : value (type)` line per setting into `w`
func (c *Config) Dump(w io.Writer) {
	keys := c.Keys()
	width := 0
	for _, k := range keys {
		width = max(width, len(k))
	}
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s : %s\n", k, strings.Repeat(" ", width-len(k)), (*c)[k])
	}
}

type kind int

const (
	kindBool kind = iota + 1
	kindInt
	kindString
)

func (k kind) String() string {
	switch k {
	case kindBool:
		return "bool"
	case kindInt:
		return "int"
	case kindString:
		return "string"
	default:
		return "undefined"
	}
}

func kindOf(v any) kind {
	switch v.(type) {
	case bool:
		return kindBool
	case int:
		return kindInt
	case string:
		return kindString
	default:
		panic(fmt.Sprintf("config: unsupported setting type %T", v))
	}
}

type setting struct {
	kind  kind
	value any
	// the only values the setting accepts, when not empty
	oneOf []string
}

func (s *setting) String() string { return fmt.Sprintf("%v (%s)", s.value, s.kind) }

func (c *Config) define(path string, v any, oneOf ...string) {
	(*c)[path] = &setting{kind: kindOf(v), value: v, oneOf: oneOf}
}

// update replaces the value of a setting that already exists,
// keeping its kind and its list of accepted values
func (c *Config) update(path string, v any) error {
	s, ok := (*c)[path]
	if !ok {
		return fmt.Errorf("config: unknown setting `%s`", path)
	}
	if k := kindOf(v); k != s.kind {
		return fmt.Errorf("config: `%s` expects %s, got %s", path, s.kind, k)
	}
	if len(s.oneOf) > 0 && !slices.Contains(s.oneOf, fmt.Sprint(v)) {
		return fmt.Errorf("config: `%s` must be one of %s, got %v", path, strings.Join(s.oneOf, ", "), v)
	}
	s.value = v
	return nil
}

// set creates the setting at `path` or updates the existing one.  A
// value that doesn't fit the existing setting is a programming error.
func (c *Config) set(path string, v any) {
	if _, ok := (*c)[path]; !ok {
		c.define(path, v)
		return
	}
	if err := c.update(path, v); err != nil {
		panic(err.Error())
	}
}

func get[T bool | int | string](c *Config, path string) T {
	var zero T
	k := kindOf(zero)
	s, ok := (*c)[path]
	if !ok {
		panic(fmt.Sprintf("%s setting `%s` does not exist", k, path))
	}
	if s.kind != k {
		panic(fmt.Sprintf("Can't retrieve `%s` from `%s` variable", k, s.kind))
	}
	return s.value.(T)
}

func (c *Config) SetBool(path string, v bool)     { c.set(path, v) }
func (c *Config) SetInt(path string, v int)       { c.set(path, v) }
func (c *Config) SetString(path string, v string) { c.set(path, v) }

func (c *Config) GetBool(path string) bool     { return get[bool](c, path) }
func (c *Config) GetInt(path string) int       { return get[int](c, path) }
func (c *Config) GetString(path string) string { return get[string](c, path) }
