package monad

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/clarete/parsec/config"
)

// Func is a function that can be called from expressions.  It receives
// the values of its arguments, none of which is an exception.
type Func func(args []Value) Value

// Evaluator evaluates expression trees.  It holds the monads and the
// functions expressions can refer to.  Registering a monad or defining
// a function returns a new evaluator, so an Evaluator is safe to share.
type Evaluator struct {
	monads   map[Tag]Monad
	funcs    map[string]Func
	cfg      *config.Config
	logger   *slog.Logger
	maxDepth int
	trace    bool
}

type Option func(*Evaluator)

func WithConfig(cfg *config.Config) Option {
	return func(e *Evaluator) { e.cfg = cfg }
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) { e.logger = logger }
}

// New creates an evaluator with the built-in monads and functions
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		monads: map[Tag]Monad{},
		funcs:  map[string]Func{},
		cfg:    config.NewConfig(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.maxDepth = e.cfg.GetInt("eval.max_depth")
	e.trace = e.cfg.GetBool("eval.trace")
	for _, m := range []Monad{ExceptionMonad{}, IdentityMonad{}, MaybeMonad{}, EitherMonad{}, ListMonad{}} {
		e.monads[m.Tag()] = m
	}
	for name, fn := range builtins {
		e.funcs[name] = fn
	}
	return e
}

// Register returns a copy of the evaluator where `m` governs the
// expressions tagged with `m.Tag()`
func (e *Evaluator) Register(m Monad) *Evaluator {
	c := e.clone()
	c.monads[m.Tag()] = m
	return c
}

// Define returns a copy of the evaluator where `name` refers to `fn`
func (e *Evaluator) Define(name string, fn Func) *Evaluator {
	c := e.clone()
	c.funcs[name] = fn
	return c
}

func (e *Evaluator) Monad(tag Tag) (Monad, bool) {
	m, ok := e.monads[tag]
	return m, ok
}

func (e *Evaluator) Func(name string) (Func, bool) {
	fn, ok := e.funcs[name]
	return fn, ok
}

// Run evaluates `expr` in the empty environment
func (e *Evaluator) Run(expr Expr) Value {
	return e.Eval(expr, nil)
}

// Eval evaluates `expr` with the names bound in `env`.  Exceptions
// are returned as values.  It panics when `expr` calls a function or
// uses a monad the evaluator doesn't know about.
func (e *Evaluator) Eval(expr Expr, env *Env) Value {
	return e.eval(expr, env, 0)
}

func (e *Evaluator) eval(expr Expr, env *Env, depth int) Value {
	if e.maxDepth > 0 && depth > e.maxDepth {
		return NewException(NewData("recursion_limit_exceeded", Int(e.maxDepth)))
	}
	if e.trace {
		e.logger.Debug("eval", slog.String("expr", expr.String()), slog.Int("depth", depth))
	}
	depth++

	switch n := expr.(type) {
	case *LitNode:
		return n.Value

	case *VarNode:
		if v, ok := env.Lookup(n.Name); ok {
			return v
		}
		return Symbol(n.Name)

	case *CallNode:
		fn, ok := e.funcs[n.Func]
		if !ok {
			panic(fmt.Sprintf("function `%s` is not defined", n.Func))
		}
		args, exc := e.evalAll(n.Args, env, depth)
		if exc != nil {
			return exc
		}
		return fn(args)

	case *ConstructNode:
		args, exc := e.evalAll(n.Args, env, depth)
		if exc != nil {
			return exc
		}
		return NewTaggedData(n.Name, n.Tag, args...)

	case *IfNode:
		cond := e.eval(n.Cond, env, depth)
		if _, ok := IsException(cond); ok {
			return cond
		}
		b, ok := cond.(Bool)
		if !ok {
			return typeError("if", cond)
		}
		if b {
			return e.eval(n.Then, env, depth)
		}
		return e.eval(n.Else, env, depth)

	case *LetNode:
		v := e.eval(n.Value, env, depth)
		if _, ok := IsException(v); ok {
			return v
		}
		return e.eval(n.Body, env.Bind(n.Name, v), depth)

	case *MultiLetNode:
		scope := env
		for _, b := range n.Bindings {
			v := e.eval(b.Value, env, depth)
			if _, ok := IsException(v); ok {
				return v
			}
			scope = scope.Bind(b.Name, v)
		}
		return e.eval(n.Body, scope, depth)

	case *CaseNode:
		return e.evalCase(n, env, depth)

	case *RaiseNode:
		v := e.eval(n.Value, env, depth)
		if _, ok := IsException(v); ok {
			return v
		}
		return NewException(v)

	case *TryNode:
		return e.evalTry(n, env, depth)

	case *ReturnNode:
		m := e.monad(n.Tag)
		v := e.eval(n.Value, env, depth)
		if _, ok := IsException(v); ok {
			return v
		}
		return m.Return(v)

	case *BindNode:
		return e.bind(e.monad(n.Tag), n.Value, n.Name, env, depth, func(scope *Env) Value {
			return e.eval(n.Body, scope, depth)
		})

	case *DoNode:
		return e.evalDo(e.monad(n.Tag), n.Steps, env, depth)

	default:
		panic(fmt.Sprintf("unknown expression %T", expr))
	}
}

// evalAll evaluates `exprs` from left to right and stops at the first
// one that raises
func (e *Evaluator) evalAll(exprs []Expr, env *Env, depth int) ([]Value, Value) {
	values := make([]Value, 0, len(exprs))
	for _, expr := range exprs {
		v := e.eval(expr, env, depth)
		if _, ok := IsException(v); ok {
			return nil, v
		}
		values = append(values, v)
	}
	return values, nil
}

func (e *Evaluator) evalCase(n *CaseNode, env *Env, depth int) Value {
	subject := e.eval(n.Subject, env, depth)
	_, raised := IsException(subject)
	for _, clause := range n.Clauses {
		// an exception subject skips the clauses that don't ask for one
		if raised && !catchesExceptions(clause.Pattern) {
			continue
		}
		bindings, ok := Unify(clause.Pattern, subject)
		if !ok {
			continue
		}
		if clause.Body == nil {
			return subject
		}
		return e.eval(clause.Body, env.Extend(bindings), depth)
	}
	if raised {
		return subject
	}
	return NewException(NewData("no_case_matched", subject))
}

func (e *Evaluator) evalTry(n *TryNode, env *Env, depth int) Value {
	result := e.eval(n.Body, env, depth)
	v, ok := IsException(result)
	if !ok {
		return result
	}
	for _, c := range n.Catches {
		scope := env.Bind(c.Name, v)
		pred := e.eval(c.Pred, scope, depth)
		if _, ok := IsException(pred); ok {
			return pred
		}
		if b, ok := pred.(Bool); ok && bool(b) {
			return e.eval(c.Handler, scope, depth)
		}
	}
	return result
}

// evalDo folds the steps of a do block into nested binds.  The value
// of a block is the value of its last step.
func (e *Evaluator) evalDo(m Monad, steps []Step, env *Env, depth int) Value {
	if len(steps) == 0 {
		return m.Return(NewData("unit"))
	}
	step := steps[0]
	if len(steps) == 1 {
		return e.eval(step.Expr, env, depth)
	}
	return e.bind(m, step.Expr, step.Name, env, depth, func(scope *Env) Value {
		return e.evalDo(m, steps[1:], scope, depth+1)
	})
}

// bind evaluates `value` and hands it to `body` through `m`.  An
// exception never reaches the monad.
func (e *Evaluator) bind(m Monad, value Expr, name string, env *Env, depth int, body func(*Env) Value) Value {
	v := e.eval(value, env, depth)
	if _, ok := IsException(v); ok {
		return v
	}
	return m.Bind(v, func(x Value) Value {
		if name == "" {
			return body(env)
		}
		return body(env.Bind(name, x))
	})
}

func (e *Evaluator) monad(tag Tag) Monad {
	m, ok := e.monads[tag]
	if !ok {
		panic(fmt.Sprintf("monad `%s` is not registered", tag))
	}
	return m
}

func (e *Evaluator) clone() *Evaluator {
	c := *e
	c.monads = make(map[Tag]Monad, len(e.monads))
	for tag, m := range e.monads {
		c.monads[tag] = m
	}
	c.funcs = make(map[string]Func, len(e.funcs))
	for name, fn := range e.funcs {
		c.funcs[name] = fn
	}
	return &c
}

func typeError(op string, args ...Value) Value {
	return NewException(NewData("type_error", append([]Value{Symbol(op)}, args...)...))
}
