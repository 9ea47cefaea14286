package parsec

import "fmt"

// Result is either an accepted value together with the input left
// after it, or the error that rejected the input.  A rejected result
// never carries a partial value.
type Result[T any] struct {
	value T
	rest  Input
	err   *Error
}

// Accept creates a successful result
func Accept[T any](value T, rest Input) Result[T] {
	return Result[T]{value: value, rest: rest}
}

// Reject creates a failed result
func Reject[T any](err *Error) Result[T] {
	if err == nil {
		panic("Reject called without an error")
	}
	return Result[T]{err: err}
}

// Ok returns true for accepted results
func (r Result[T]) Ok() bool { return r.err == nil }

// Value returns the accepted value, or the zero value of T if the
// input was rejected
func (r Result[T]) Value() T { return r.value }

// Rest returns the input left unconsumed by an accepted result
func (r Result[T]) Rest() Input { return r.rest }

// Err returns the error of a rejected result
func (r Result[T]) Err() *Error { return r.err }

// Get returns the accepted value or the error in the shape Go code
// usually expects
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Reject(%s)", r.err)
	}
	return fmt.Sprintf("Accept(%v, %q @ %s)", display(r.value), r.rest.String(), r.rest.Location())
}

// reject carries the error of a failed result over to a result of
// another type
func reject[U, T any](r Result[T]) Result[U] {
	return Result[U]{err: r.err}
}
