package parsec

import (
	"errors"
	"fmt"

	"github.com/clarete/parsec/config"
)

// Pair is the value of a sequence of two parsers
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", display(p.First), display(p.Second))
}

// Triple is the value of a sequence of three parsers
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Seq runs each parser on the input left by the previous one and
// collects their values in order.  The first failure is returned as
// is and no other parser is tried after it.
func Seq[T any](ps ...Parser[T]) Parser[[]T] {
	return func(in Input) Result[[]T] {
		values := make([]T, 0, len(ps))
		cur := in
		for _, p := range ps {
			r := p(cur)
			if !r.Ok() {
				return reject[[]T](r)
			}
			values = append(values, r.value)
			cur = r.rest
		}
		return Accept(values, cur)
	}
}

// Seq2 is Seq for two parsers of different types
func Seq2[A, B any](pa Parser[A], pb Parser[B]) Parser[Pair[A, B]] {
	return func(in Input) Result[Pair[A, B]] {
		ra := pa(in)
		if !ra.Ok() {
			return reject[Pair[A, B]](ra)
		}
		rb := pb(ra.rest)
		if !rb.Ok() {
			return reject[Pair[A, B]](rb)
		}
		return Accept(Pair[A, B]{First: ra.value, Second: rb.value}, rb.rest)
	}
}

// Seq3 is Seq for three parsers of different types
func Seq3[A, B, C any](pa Parser[A], pb Parser[B], pc Parser[C]) Parser[Triple[A, B, C]] {
	return func(in Input) Result[Triple[A, B, C]] {
		rab := Seq2(pa, pb)(in)
		if !rab.Ok() {
			return reject[Triple[A, B, C]](rab)
		}
		rc := pc(rab.rest)
		if !rc.Ok() {
			return reject[Triple[A, B, C]](rc)
		}
		v := Triple[A, B, C]{First: rab.value.First, Second: rab.value.Second, Third: rc.value}
		return Accept(v, rc.rest)
	}
}

// Left runs `pa` then `pb` and keeps the value of `pa`
func Left[A, B any](pa Parser[A], pb Parser[B]) Parser[A] {
	return Transform(Seq2(pa, pb), func(p Pair[A, B]) A { return p.First })
}

// Right runs `pa` then `pb` and keeps the value of `pb`
func Right[A, B any](pa Parser[A], pb Parser[B]) Parser[B] {
	return Transform(Seq2(pa, pb), func(p Pair[A, B]) B { return p.Second })
}

// NthOf runs all the parsers in sequence and keeps the value of the
// n-th one (0-based)
func NthOf[T any](n int, ps ...Parser[T]) Parser[T] {
	if n < 0 || n >= len(ps) {
		panic(fmt.Sprintf("NthOf: index %d out of range [0, %d)", n, len(ps)))
	}
	return Transform(Seq(ps...), func(vs []T) T { return vs[n] })
}

// FirstOf is the ordered choice: it tries each parser against the
// same input and returns the result of the first one to accept.  The
// input consumed by a failed branch never leaks into the next one.
//
// When all of them fail, the error reported depends on the
// `choice.error_policy` setting of the input: "last" reports the
// error of the last branch tried, "furthest" reports the error
// created furthest into the input (ties go to the later branch).
func FirstOf[T any](ps ...Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		var failed *Error
		for _, p := range ps {
			r := p(in)
			if r.Ok() {
				return r
			}
			failed = pickError(in.env.errorPolicy, failed, r.err)
		}
		if failed == nil {
			return Reject[T](in.Fail(ErrNoneOfTheExpectedCasesFound))
		}
		return Reject[T](failed)
	}
}

func pickError(policy string, current, next *Error) *Error {
	if current == nil || policy != config.ErrorPolicyFurthest {
		return next
	}
	if next.Location.Before(current.Location) {
		return current
	}
	return next
}

// Optional runs `p` and accepts with `def` without consuming input if
// `p` fails
func Optional[T any](p Parser[T], def T) Parser[T] {
	return FirstOf(p, Return(def))
}

// Transform replaces the value accepted by `p` with `f` applied to it
func Transform[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(in Input) Result[U] {
		r := p(in)
		if !r.Ok() {
			return reject[U](r)
		}
		return Accept(f(r.value), r.rest)
	}
}

// TransformErr is like Transform, but `f` can reject the value.  An
// `*Error` returned by `f` is used as is, other errors are reported
// as `transform_failed` at the location where `p` started.
func TransformErr[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return func(in Input) Result[U] {
		r := p(in)
		if !r.Ok() {
			return reject[U](r)
		}
		v, err := f(r.value)
		if err != nil {
			var perr *Error
			if errors.As(err, &perr) {
				return Reject[U](perr)
			}
			return Reject[U](in.Fail(ErrTransformFailed, err.Error()))
		}
		return Accept(v, r.rest)
	}
}

// Lazy runs the parser `p` points to at the time of the call.  It is
// what allows recursive grammars, since the parser it points to can
// be assigned after Lazy is called.
func Lazy[T any](p *Parser[T]) Parser[T] {
	return func(in Input) Result[T] { return (*p)(in) }
}

// LookAhead runs `p` but doesn't consume any input when it accepts
func LookAhead[T any](p Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if !r.Ok() {
			return r
		}
		return Accept(r.value, in)
	}
}

// Not accepts without consuming input when `p` fails, and fails when
// `p` accepts
func Not[T any](p Parser[T]) Parser[struct{}] {
	return func(in Input) Result[struct{}] {
		r := p(in)
		if r.Ok() {
			return Reject[struct{}](in.Fail(ErrUnexpectedSuccess, display(r.value)))
		}
		return Accept(struct{}{}, in)
	}
}

// EntireInput runs `p` and fails with `end_of_input_expected` if it
// accepts without consuming all the input.  The error is located
// where the trailing input starts.
func EntireInput[T any](p Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if !r.Ok() {
			return r
		}
		if c, ok := r.rest.Peek(); ok {
			return Reject[T](r.rest.Fail(ErrEndOfInputExpected, string(c)))
		}
		return r
	}
}

// EntireInputWith is EntireInput with a custom error for the trailing
// input
func EntireInputWith[T any](p Parser[T], kind ErrorKind, args ...any) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if !r.Ok() {
			return r
		}
		if !r.rest.Empty() {
			return Reject[T](r.rest.Fail(kind, args...))
		}
		return r
	}
}
