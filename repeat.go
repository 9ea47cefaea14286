package parsec

import "fmt"

// The repetition combinators below stop as soon as the repeated
// parser fails.  They also stop when it accepts without consuming any
// input, since repeating it again would never end.  A parser that
// accepts the empty input is still a programming error in a
// repetition: it matches at most once.

// foldRepeat applies `p` to `in` until it fails, folding each value
// into `state` with `f`.  It returns the final state, the input left
// after the last successful iteration and how many iterations there
// were.
func foldRepeat[T, S any](in Input, p Parser[T], state S, f func(S, T) S) (S, Input, int) {
	cur, n := in, 0
	for {
		r := p(cur)
		if !r.Ok() {
			return state, cur, n
		}
		if r.rest.loc.Cursor == cur.loc.Cursor {
			return f(state, r.value), r.rest, n + 1
		}
		state = f(state, r.value)
		cur = r.rest
		n++
	}
}

// Many runs `p` zero or more times and collects its values
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) Result[[]T] {
		values, rest, _ := foldRepeat(in, p, []T{}, func(vs []T, v T) []T { return append(vs, v) })
		return Accept(values, rest)
	}
}

// Many1 runs `p` one or more times and collects its values.  It
// fails with the error of the first iteration if that fails.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) Result[[]T] {
		first := p(in)
		if !first.Ok() {
			return reject[[]T](first)
		}
		values, rest, _ := foldRepeat(first.rest, p, []T{first.value}, func(vs []T, v T) []T { return append(vs, v) })
		return Accept(values, rest)
	}
}

// Any runs `p` zero or more times discarding its values
func Any[T any](p Parser[T]) Parser[struct{}] {
	return func(in Input) Result[struct{}] {
		_, rest, _ := foldRepeat(in, p, struct{}{}, func(s struct{}, _ T) struct{} { return s })
		return Accept(struct{}{}, rest)
	}
}

// Any1 runs `p` one or more times discarding its values.  It fails
// with the error of the first iteration if that fails.
func Any1[T any](p Parser[T]) Parser[struct{}] {
	return func(in Input) Result[struct{}] {
		first := p(in)
		if !first.Ok() {
			return reject[struct{}](first)
		}
		return Any(p)(first.rest)
	}
}

// Iterate runs `p` exactly `n` times and collects its values.  It
// fails with the error of the first iteration that fails.
func Iterate[T any](p Parser[T], n int) Parser[[]T] {
	if n < 0 {
		panic(fmt.Sprintf("Iterate: negative count %d", n))
	}
	return func(in Input) Result[[]T] {
		values := make([]T, 0, n)
		cur := in
		for i := 0; i < n; i++ {
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

// Foldl runs `p` zero or more times, folding its values from left to
// right into `init` with `f`
func Foldl[T, S any](p Parser[T], init S, f func(S, T) S) Parser[S] {
	return func(in Input) Result[S] {
		state, rest, _ := foldRepeat(in, p, init, f)
		return Accept(state, rest)
	}
}

// Foldl1 is Foldl but `p` has to accept at least once
func Foldl1[T, S any](p Parser[T], init S, f func(S, T) S) Parser[S] {
	return func(in Input) Result[S] {
		first := p(in)
		if !first.Ok() {
			return reject[S](first)
		}
		state, rest, _ := foldRepeat(first.rest, p, f(init, first.value), f)
		return Accept(state, rest)
	}
}

// Foldlp parses the initial state with `first` and then folds the
// values of zero or more runs of `p` into it with `f`.  The usual
// shape of `p` is a separator followed by an element, e.g.
//
//	Foldlp(Seq2(op, term), term, apply)
//
// parses `term (op term)*` associating to the left.  Folding stops at
// the first run of `p` that fails, and the input left is the one right
// before that run.
func Foldlp[T, S any](p Parser[T], first Parser[S], f func(S, T) S) Parser[S] {
	return func(in Input) Result[S] {
		init := first(in)
		if !init.Ok() {
			return init
		}
		state, rest, _ := foldRepeat(init.rest, p, init.value, f)
		return Accept(state, rest)
	}
}
