package parsec

import (
	"strconv"
	"unicode"
)

// Parser tries to recognize a prefix of its input
type Parser[T any] func(in Input) Result[T]

// OneChar accepts any symbol and fails at the end of the input
var OneChar Parser[rune] = func(in Input) Result[rune] {
	c, ok := in.Peek()
	if !ok {
		return Reject[rune](in.Fail(ErrUnexpectedEndOfInput))
	}
	return Accept(c, in.Advance(1))
}

// AcceptWhen runs `p` and rejects its value if `pred` returns false
// for it.  The error is created at the location `p` started from, and
// the template of `kind` receives the rejected value followed by
// `args`.
func AcceptWhen[T any](p Parser[T], pred func(T) bool, kind ErrorKind, args ...any) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if !r.Ok() {
			return r
		}
		if !pred(r.value) {
			return Reject[T](in.Fail(kind, append([]any{display(r.value)}, args...)...))
		}
		return r
	}
}

// Lit accepts the symbol `c`
func Lit(c rune) Parser[rune] {
	return AcceptWhen(OneChar, func(v rune) bool { return v == c }, ErrLiteralExpected, string(c))
}

// LitString accepts the symbols of `s` in order.  Failures are
// reported at the first symbol that differs from `s`.
func LitString(s string) Parser[string] {
	expected := []rune(s)
	return func(in Input) Result[string] {
		cur := in
		for _, e := range expected {
			c, ok := cur.Peek()
			if !ok {
				return Reject[string](cur.Fail(ErrLiteralExpected, "end of input", s))
			}
			if c != e {
				return Reject[string](cur.Fail(ErrLiteralExpected, string(c), s))
			}
			cur = cur.Advance(1)
		}
		return Accept(s, cur)
	}
}

// Range accepts a symbol between `from` and `to`, both inclusive
func Range(from, to rune) Parser[rune] {
	return AcceptWhen(OneChar, func(c rune) bool { return c >= from && c <= to }, ErrUnexpectedCharacter)
}

var (
	// Digit accepts an ASCII decimal digit
	Digit = AcceptWhen(OneChar, isDigit, ErrDigitExpected)

	// Letter accepts any unicode letter
	Letter = AcceptWhen(OneChar, unicode.IsLetter, ErrLetterExpected)

	// LcaseLetter accepts an ASCII lower case letter
	LcaseLetter = AcceptWhen(OneChar, isLcaseLetter, ErrLetterExpected)

	// UcaseLetter accepts an ASCII upper case letter
	UcaseLetter = AcceptWhen(OneChar, isUcaseLetter, ErrLetterExpected)

	// Space accepts a single whitespace symbol
	Space = AcceptWhen(OneChar, unicode.IsSpace, ErrWhitespaceExpected)

	// Spaces accepts one or more whitespace symbols
	Spaces = Any1(Space)

	// DigitVal accepts a digit and returns its numeric value
	DigitVal = Transform(Digit, func(c rune) int { return int(c - '0') })

	// Int accepts a non-empty run of digits and returns its value.
	// Values that don't fit an int are rejected.
	Int = TransformErr(Many1(Digit), func(ds []rune) (int, error) {
		return strconv.Atoi(string(ds))
	})
)

func isDigit(c rune) bool       { return c >= '0' && c <= '9' }
func isLcaseLetter(c rune) bool { return c >= 'a' && c <= 'z' }
func isUcaseLetter(c rune) bool { return c >= 'A' && c <= 'Z' }

// Return accepts without consuming any input
func Return[T any](value T) Parser[T] {
	return func(in Input) Result[T] { return Accept(value, in) }
}

// Fail rejects any input with an error of the given kind
func Fail[T any](kind ErrorKind, args ...any) Parser[T] {
	return func(in Input) Result[T] { return Reject[T](in.Fail(kind, args...)) }
}

// Always runs `p` and replaces its value with `value`
func Always[T, U any](p Parser[T], value U) Parser[U] {
	return Transform(p, func(T) U { return value })
}

// AlwaysC accepts the symbol `c` and returns `value`
func AlwaysC[U any](c rune, value U) Parser[U] {
	return Always(Lit(c), value)
}

// Token runs `p` and skips the whitespace that follows it
func Token[T any](p Parser[T]) Parser[T] {
	return Left(p, Any(Space))
}
