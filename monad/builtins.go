package monad

// builtins are defined in every evaluator created with New.  Calling
// them with arguments of the wrong type raises a `type_error` carrying
// the name of the function and its arguments.
var builtins = map[string]Func{
	"plus":  intOp("plus", func(a, b int) Value { return Int(a + b) }),
	"minus": intOp("minus", func(a, b int) Value { return Int(a - b) }),
	"times": intOp("times", func(a, b int) Value { return Int(a * b) }),
	"divides": intOp("divides", func(a, b int) Value {
		if b == 0 {
			return NewException(NewData("division_by_zero"))
		}
		return Int(a / b)
	}),
	"modulo": intOp("modulo", func(a, b int) Value {
		if b == 0 {
			return NewException(NewData("division_by_zero"))
		}
		return Int(a % b)
	}),
	"negate": func(args []Value) Value {
		if len(args) == 1 {
			if a, ok := args[0].(Int); ok {
				return -a
			}
		}
		return typeError("negate", args...)
	},

	"less":          intOp("less", func(a, b int) Value { return Bool(a < b) }),
	"less_equal":    intOp("less_equal", func(a, b int) Value { return Bool(a <= b) }),
	"greater":       intOp("greater", func(a, b int) Value { return Bool(a > b) }),
	"greater_equal": intOp("greater_equal", func(a, b int) Value { return Bool(a >= b) }),
	"equal_to": func(args []Value) Value {
		if len(args) != 2 {
			return typeError("equal_to", args...)
		}
		return Bool(Equal(args[0], args[1]))
	},
	"not_equal_to": func(args []Value) Value {
		if len(args) != 2 {
			return typeError("not_equal_to", args...)
		}
		return Bool(!Equal(args[0], args[1]))
	},

	"not": func(args []Value) Value {
		if len(args) == 1 {
			if a, ok := args[0].(Bool); ok {
				return !a
			}
		}
		return typeError("not", args...)
	},
	"and": boolOp("and", func(a, b bool) bool { return a && b }),
	"or":  boolOp("or", func(a, b bool) bool { return a || b }),

	// is_tag(v, t) checks if the tag of `v` is the symbol `t`
	"is_tag": func(args []Value) Value {
		if len(args) == 2 {
			if t, ok := args[1].(Symbol); ok {
				return Bool(args[0].Tag() == Tag(t))
			}
		}
		return typeError("is_tag", args...)
	},
	"tag_of": func(args []Value) Value {
		if len(args) != 1 {
			return typeError("tag_of", args...)
		}
		return Symbol(args[0].Tag())
	},

	"pair": func(args []Value) Value {
		if len(args) != 2 {
			return typeError("pair", args...)
		}
		return NewData("pair", args[0], args[1])
	},
	"first":  pairItem("first", 0),
	"second": pairItem("second", 1),
}

func intOp(name string, fn func(a, b int) Value) Func {
	return func(args []Value) Value {
		if len(args) == 2 {
			a, aok := args[0].(Int)
			b, bok := args[1].(Int)
			if aok && bok {
				return fn(int(a), int(b))
			}
		}
		return typeError(name, args...)
	}
}

func boolOp(name string, fn func(a, b bool) bool) Func {
	return func(args []Value) Value {
		if len(args) == 2 {
			a, aok := args[0].(Bool)
			b, bok := args[1].(Bool)
			if aok && bok {
				return Bool(fn(bool(a), bool(b)))
			}
		}
		return typeError(name, args...)
	}
}

func pairItem(name string, i int) Func {
	return func(args []Value) Value {
		if len(args) == 1 {
			if env, ok := Unify(PData("pair", PVar("0"), PVar("1")), args[0]); ok {
				v, _ := env.Lookup(string(rune('0' + i)))
				return v
			}
		}
		return typeError(name, args...)
	}
}
