package parsec

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput(t *testing.T) {
	t.Run("advance moves cursor, line and column", func(t *testing.T) {
		in := NewInput("ab\ncd")
		assert.Equal(t, NewLocation(0, 1, 1), in.Location())

		in = in.Advance(2)
		assert.Equal(t, NewLocation(2, 1, 3), in.Location())

		in = in.Advance(1)
		assert.Equal(t, NewLocation(3, 2, 1), in.Location())
		assert.Equal(t, "cd", in.String())
		assert.Equal(t, 2, in.Len())
	})

	t.Run("advance stops at the end of the input", func(t *testing.T) {
		in := NewInput("ab").Advance(10)
		assert.True(t, in.Empty())
		assert.Equal(t, NewLocation(2, 1, 3), in.Location())
		_, ok := in.Peek()
		assert.False(t, ok)
	})

	t.Run("consuming input leaves the original value untouched", func(t *testing.T) {
		in := NewInput("hello")
		rest := in.Advance(3)
		assert.Equal(t, "hello", in.String())
		assert.Equal(t, "lo", rest.String())
		c, ok := in.Peek()
		require.True(t, ok)
		assert.Equal(t, 'h', c)
	})

	t.Run("symbols are runes", func(t *testing.T) {
		in := NewInput("ação").Advance(2)
		assert.Equal(t, "ão", in.String())
		assert.Equal(t, NewLocation(2, 1, 3), in.Location())
	})
}

func TestSpan(t *testing.T) {
	for _, test := range []struct {
		name     string
		span     Span
		expected string
	}{
		{"empty", NewSpan(NewLocation(0, 1, 1), NewLocation(0, 1, 1)), "1:1"},
		{"same line", NewSpan(NewLocation(0, 1, 1), NewLocation(3, 1, 4)), "1:1..4"},
		{"many lines", NewSpan(NewLocation(0, 1, 1), NewLocation(9, 3, 2)), "1:1..3:2"},
	} {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.span.String())
		})
	}
}

func TestErrorCatalog(t *testing.T) {
	t.Run("built-in messages", func(t *testing.T) {
		c := DefaultErrorCatalog()
		assert.Equal(t, "Unexpected end of input", c.Message(ErrUnexpectedEndOfInput))
		assert.Equal(t, "Expected `x` but got `h`", c.Message(ErrLiteralExpected, "h", "x"))
		assert.Equal(t, "Expected whitespace but got `e`", c.Message(ErrWhitespaceExpected, "e"))
	})

	t.Run("kinds without template render their name", func(t *testing.T) {
		assert.Equal(t, "division_by_zero", DefaultErrorCatalog().Message("division_by_zero"))
	})

	t.Run("with returns a copy", func(t *testing.T) {
		c := DefaultErrorCatalog().With("test_failure", "test failed at `%v`")
		assert.Equal(t, "test failed at `x`", c.Message("test_failure", "x"))
		_, ok := DefaultErrorCatalog().Template("test_failure")
		assert.False(t, ok)
	})

	t.Run("load from yaml and merge", func(t *testing.T) {
		loaded, err := LoadErrorCatalog(strings.NewReader(`
unexpected_end_of_input: "Premature end"
bad_number: "Bad number %v"
`))
		require.NoError(t, err)

		c := DefaultErrorCatalog().Merge(loaded)
		assert.Equal(t, "Premature end", c.Message(ErrUnexpectedEndOfInput))
		assert.Equal(t, "Bad number 7", c.Message("bad_number", 7))
		assert.Equal(t, "Expected digit but got `a`", c.Message(ErrDigitExpected, "a"))
	})

	t.Run("malformed catalogs", func(t *testing.T) {
		_, err := LoadErrorCatalog(strings.NewReader("- a\n- b\n"))
		require.Error(t, err)
	})

	t.Run("input renders errors with its catalog", func(t *testing.T) {
		c := DefaultErrorCatalog().With(ErrUnexpectedEndOfInput, "Nothing left")
		r := Parse(OneChar, "", WithCatalog(c))
		require.False(t, r.Ok())
		assert.Equal(t, "Nothing left @ 1:1", r.Err().Error())
	})
}

func TestError(t *testing.T) {
	t.Run("errors.Is matches kinds", func(t *testing.T) {
		_, err := Parse(Digit, "x").Get()
		require.Error(t, err)
		assert.True(t, errors.Is(err, &Error{Kind: ErrDigitExpected}))
		assert.False(t, errors.Is(err, &Error{Kind: ErrLetterExpected}))

		var perr *Error
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, NewLocation(0, 1, 1), perr.Location)
	})

	t.Run("production is part of the message", func(t *testing.T) {
		err := &Error{Kind: ErrDigitExpected, Message: "Expected digit", Location: NewLocation(3, 1, 4), Production: "Number"}
		assert.Equal(t, "Number: Expected digit @ 1:4", err.Error())
	})
}
