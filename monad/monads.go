package monad

// Monad is an evaluation context.  Expressions tagged with the monad's
// tag are composed with its Bind operation, and plain values are
// lifted into it with Return.
type Monad interface {
	Tag() Tag
	Return(v Value) Value
	Bind(m Value, f func(Value) Value) Value
}

const (
	IdentityTag Tag = "identity"
	MaybeTag    Tag = "maybe"
	EitherTag   Tag = "either"
)

// Just, Nothing, Left and Right build the values of the maybe and
// either monads
func Just(v Value) *Data  { return NewTaggedData("just", MaybeTag, v) }
func Nothing() *Data      { return NewTaggedData("nothing", MaybeTag) }
func Left(v Value) *Data  { return NewTaggedData("left", EitherTag, v) }
func Right(v Value) *Data { return NewTaggedData("right", EitherTag, v) }

// ExceptionMonad composes computations that may raise.  Values are
// their own representation in it, and binding an exception skips the
// rest of the computation.
type ExceptionMonad struct{}

func (ExceptionMonad) Tag() Tag             { return ExceptionTag }
func (ExceptionMonad) Return(v Value) Value { return v }

func (ExceptionMonad) Bind(m Value, f func(Value) Value) Value {
	if _, ok := IsException(m); ok {
		return m
	}
	return f(m)
}

type IdentityMonad struct{}

func (IdentityMonad) Tag() Tag                                { return IdentityTag }
func (IdentityMonad) Return(v Value) Value                    { return v }
func (IdentityMonad) Bind(m Value, f func(Value) Value) Value { return f(m) }

// MaybeMonad stops at the first `nothing`
type MaybeMonad struct{}

func (MaybeMonad) Tag() Tag             { return MaybeTag }
func (MaybeMonad) Return(v Value) Value { return Just(v) }

func (MaybeMonad) Bind(m Value, f func(Value) Value) Value {
	if env, ok := Unify(PTagged("just", MaybeTag, PVar("v")), m); ok {
		v, _ := env.Lookup("v")
		return f(v)
	}
	if _, ok := Unify(PTagged("nothing", MaybeTag), m); ok {
		return m
	}
	return typeError("bind<maybe>", m)
}

// EitherMonad stops at the first `left`
type EitherMonad struct{}

func (EitherMonad) Tag() Tag             { return EitherTag }
func (EitherMonad) Return(v Value) Value { return Right(v) }

func (EitherMonad) Bind(m Value, f func(Value) Value) Value {
	if env, ok := Unify(PTagged("right", EitherTag, PVar("v")), m); ok {
		v, _ := env.Lookup("v")
		return f(v)
	}
	if _, ok := Unify(PTagged("left", EitherTag, PAny()), m); ok {
		return m
	}
	return typeError("bind<either>", m)
}

// ListMonad feeds each item of a list to the rest of the computation
// and concatenates the lists it returns
type ListMonad struct{}

func (ListMonad) Tag() Tag             { return ListTag }
func (ListMonad) Return(v Value) Value { return NewList(v) }

func (ListMonad) Bind(m Value, f func(Value) Value) Value {
	l, ok := m.(*List)
	if !ok {
		return typeError("bind<list>", m)
	}
	var items []Value
	for _, item := range l.Items {
		r := f(item)
		if _, ok := IsException(r); ok {
			return r
		}
		rl, ok := r.(*List)
		if !ok {
			return typeError("bind<list>", r)
		}
		items = append(items, rl.Items...)
	}
	return NewList(items...)
}
