package parsec

import (
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrorKind names a family of parsing errors.  The built-in kinds are
// listed below, grammars can use any other name for their own errors.
type ErrorKind string

const (
	ErrUnexpectedCharacter         ErrorKind = "unexpected_character"
	ErrUnexpectedEndOfInput        ErrorKind = "unexpected_end_of_input"
	ErrLiteralExpected             ErrorKind = "literal_expected"
	ErrDigitExpected               ErrorKind = "digit_expected"
	ErrLetterExpected              ErrorKind = "letter_expected"
	ErrWhitespaceExpected          ErrorKind = "whitespace_expected"
	ErrEndOfInputExpected          ErrorKind = "end_of_input_expected"
	ErrNoneOfTheExpectedCasesFound ErrorKind = "none_of_the_expected_cases_found"
	ErrUnexpectedSuccess           ErrorKind = "unexpected_success"
	ErrTransformFailed             ErrorKind = "transform_failed"
)

// Error is the value carried by a rejected parse result
type Error struct {
	Kind     ErrorKind
	Message  string
	Location Location

	// Production is the name of the innermost named parser (see
	// Named) that was running when the error was created
	Production string
}

// Error returns the human readable representation of a parsing error
func (e *Error) Error() string {
	if e.Production != "" {
		return fmt.Sprintf("%s: %s @ %s", e.Production, e.Message, e.Location)
	}
	return fmt.Sprintf("%s @ %s", e.Message, e.Location)
}

// Is makes errors.Is match errors of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// ErrorCatalog maps error kinds to message templates.  Catalogs are
// immutable, With returns an extended copy.
type ErrorCatalog struct {
	templates map[ErrorKind]string
}

//go:embed errors.yaml
var defaultCatalogData []byte

var defaultCatalog = mustLoadErrorCatalog(defaultCatalogData)

// DefaultErrorCatalog returns the catalog with the messages of the
// built-in error kinds
func DefaultErrorCatalog() *ErrorCatalog { return defaultCatalog }

// LoadErrorCatalog reads a YAML mapping from error kinds to message
// templates
func LoadErrorCatalog(r io.Reader) (*ErrorCatalog, error) {
	templates := map[ErrorKind]string{}
	if err := yaml.NewDecoder(r).Decode(&templates); err != nil {
		return nil, fmt.Errorf("can't load error catalog: %w", err)
	}
	return &ErrorCatalog{templates: templates}, nil
}

func mustLoadErrorCatalog(data []byte) *ErrorCatalog {
	templates := map[ErrorKind]string{}
	if err := yaml.Unmarshal(data, &templates); err != nil {
		panic(fmt.Sprintf("malformed built-in error catalog: %s", err))
	}
	return &ErrorCatalog{templates: templates}
}

// With returns a copy of the catalog in which `kind` renders with
// `template`
func (c *ErrorCatalog) With(kind ErrorKind, template string) *ErrorCatalog {
	templates := make(map[ErrorKind]string, len(c.templates)+1)
	for k, v := range c.templates {
		templates[k] = v
	}
	templates[kind] = template
	return &ErrorCatalog{templates: templates}
}

// Merge returns a copy of `c` with all the templates of `other` on
// top of it
func (c *ErrorCatalog) Merge(other *ErrorCatalog) *ErrorCatalog {
	merged := c
	for k, v := range other.templates {
		merged = merged.With(k, v)
	}
	return merged
}

// Template returns the template registered for `kind`
func (c *ErrorCatalog) Template(kind ErrorKind) (string, bool) {
	t, ok := c.templates[kind]
	return t, ok
}

// Message renders the template of `kind` with `args`.  Kinds without
// a template render as their own name.
func (c *ErrorCatalog) Message(kind ErrorKind, args ...any) string {
	t, ok := c.templates[kind]
	if !ok {
		return string(kind)
	}
	return fmt.Sprintf(t, args...)
}

// display formats symbols as text instead of their code points
func display(v any) any {
	switch value := v.(type) {
	case rune:
		return string(value)
	case []rune:
		return string(value)
	default:
		return v
	}
}
