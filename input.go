package parsec

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/clarete/parsec/config"
)

// Location points at a symbol within the input.  `Cursor` counts the
// symbols consumed so far, `Line` and `Column` are 1-based and only
// used for display.
type Location struct {
	Cursor int
	Line   int
	Column int
}

func NewLocation(cursor, line, column int) Location {
	return Location{Cursor: cursor, Line: line, Column: column}
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Before returns true if `l` points at a symbol that comes before
// the one `other` points at
func (l Location) Before(other Location) bool {
	return l.Cursor < other.Cursor
}

// Span marks the symbols between two locations
type Span struct {
	Start Location
	End   Location
}

func NewSpan(start, end Location) Span {
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		if s.Start.Column == s.End.Column {
			return s.Start.String()
		}
		return fmt.Sprintf("%d:%d..%d", s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%s..%s", s.Start, s.End)
}

// Input is an immutable sequence of symbols with a cursor.  Consuming
// symbols returns a new Input and leaves the original one untouched,
// so parsers can backtrack just by holding on to an older value.
type Input struct {
	src []rune
	loc Location
	env *inputEnv
}

// inputEnv is shared by all the values derived from the same call to
// NewInput.  It is never modified after construction.
type inputEnv struct {
	cfg     *config.Config
	catalog *ErrorCatalog
	logger  *slog.Logger

	errorPolicy string
	trace       bool
}

// Option customizes the environment an Input carries around
type Option func(*inputEnv)

// WithConfig makes the combinators read their settings from `cfg`.
// The values are read once, when the input is created.
func WithConfig(cfg *config.Config) Option {
	return func(e *inputEnv) { e.cfg = cfg }
}

// WithCatalog replaces the catalog used to render error messages
func WithCatalog(c *ErrorCatalog) Option {
	return func(e *inputEnv) { e.catalog = c }
}

// WithLogger sets where tracing records go.  Tracing also has to be
// enabled with the `parser.trace` setting.
func WithLogger(l *slog.Logger) Option {
	return func(e *inputEnv) { e.logger = l }
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// NewInput wraps `src` with a cursor pointing at its first symbol
func NewInput(src string, opts ...Option) Input {
	env := &inputEnv{
		cfg:     config.NewConfig(),
		catalog: DefaultErrorCatalog(),
		logger:  discardLogger,
	}
	for _, opt := range opts {
		opt(env)
	}
	env.errorPolicy = env.cfg.GetString("choice.error_policy")
	env.trace = env.cfg.GetBool("parser.trace")
	return Input{
		src: []rune(src),
		loc: NewLocation(0, 1, 1),
		env: env,
	}
}

// Location returns where the cursor of the input currently is
func (in Input) Location() Location { return in.loc }

// Len returns how many symbols haven't been consumed yet
func (in Input) Len() int { return len(in.src) - in.loc.Cursor }

// Empty returns true if all the symbols were consumed
func (in Input) Empty() bool { return in.Len() == 0 }

// Peek returns the symbol under the cursor without consuming it
func (in Input) Peek() (rune, bool) {
	if in.Empty() {
		return 0, false
	}
	return in.src[in.loc.Cursor], true
}

// String returns the symbols that haven't been consumed yet
func (in Input) String() string {
	return string(in.src[in.loc.Cursor:])
}

// Advance returns a new Input with the cursor moved `n` symbols
// forward.  It stops at the end of the input.
func (in Input) Advance(n int) Input {
	loc := in.loc
	for i := 0; i < n && loc.Cursor < len(in.src); i++ {
		c := in.src[loc.Cursor]
		loc.Cursor++
		loc.Column++
		if c == '\n' {
			loc.Column = 1
			loc.Line++
		}
	}
	in.loc = loc
	return in
}

// Fail creates an error of the given kind located at the cursor, with
// its message rendered by the catalog of the input.
func (in Input) Fail(kind ErrorKind, args ...any) *Error {
	return &Error{
		Kind:     kind,
		Message:  in.env.catalog.Message(kind, args...),
		Location: in.loc,
	}
}

// Logger returns the logger the input was created with
func (in Input) Logger() *slog.Logger { return in.env.logger }

// Config returns the settings the input was created with
func (in Input) Config() *config.Config { return in.env.cfg }
