package monad

import "strings"

// Pattern is a template value that may contain variables.  Patterns
// are built with PLit, PVar, PAny, PData, PTagged, PList, PException
// and PTag.
type Pattern interface {
	String() string

	// unify matches `v` against the pattern, given the bindings
	// made so far by the enclosing pattern
	unify(v Value, bound *Env) (*Env, bool)
}

// Unify matches `v` against `p`.  On success it returns the bindings
// of the variables found in `p`.  A variable that appears more than
// once in `p` must match equal values every time.
func Unify(p Pattern, v Value) (*Env, bool) {
	return p.unify(v, nil)
}

type litPattern struct{ value Value }

// PLit matches values equal to `v`
func PLit(v Value) Pattern { return litPattern{value: v} }

func (p litPattern) String() string { return p.value.String() }

func (p litPattern) unify(v Value, bound *Env) (*Env, bool) {
	return bound, Equal(p.value, v)
}

type varPattern struct{ name string }

// PVar matches anything and binds it to `name`
func PVar(name string) Pattern { return varPattern{name: name} }

func (p varPattern) String() string { return "var<" + p.name + ">" }

func (p varPattern) unify(v Value, bound *Env) (*Env, bool) {
	if prev, ok := bound.Lookup(p.name); ok {
		return bound, Equal(prev, v)
	}
	return bound.Bind(p.name, v), true
}

type anyPattern struct{}

// PAny matches anything without binding it
func PAny() Pattern { return anyPattern{} }

func (anyPattern) String() string { return "_" }

func (anyPattern) unify(_ Value, bound *Env) (*Env, bool) { return bound, true }

type tagPattern struct{ tag Tag }

// PTag matches any value with the tag `tag`
func PTag(tag Tag) Pattern { return tagPattern{tag: tag} }

func (p tagPattern) String() string { return "tag<" + string(p.tag) + ">" }

func (p tagPattern) unify(v Value, bound *Env) (*Env, bool) {
	return bound, v.Tag() == p.tag
}

type dataPattern struct {
	name string
	// empty when any tag is accepted
	tag  Tag
	args []Pattern
}

// PData matches data values built by the constructor `name` with
// exactly as many children as `args`, each one matching its
// respective pattern.  The tag of the value isn't checked.
func PData(name string, args ...Pattern) Pattern {
	return dataPattern{name: name, args: args}
}

// PTagged is PData for values that must also carry the tag `tag`,
// like the ones created with NewTaggedData
func PTagged(name string, tag Tag, args ...Pattern) Pattern {
	return dataPattern{name: name, tag: tag, args: args}
}

func (p dataPattern) String() string { return template(p.name, p.args) }

func (p dataPattern) unify(v Value, bound *Env) (*Env, bool) {
	d, ok := v.(*Data)
	if !ok || d.Name != p.name {
		return nil, false
	}
	if p.tag != "" && d.Tag() != p.tag {
		return nil, false
	}
	return unifyAll(p.args, d.Args, bound)
}

type listPattern struct{ items []Pattern }

// PList matches lists with as many items as `items`
func PList(items ...Pattern) Pattern { return listPattern{items: items} }

func (p listPattern) String() string { return template(string(ListTag), p.items) }

func (p listPattern) unify(v Value, bound *Env) (*Env, bool) {
	l, ok := v.(*List)
	if !ok {
		return nil, false
	}
	return unifyAll(p.items, l.Items, bound)
}

type exceptionPattern struct{ value Pattern }

// PException matches exceptions whose value matches `p`
func PException(p Pattern) Pattern { return exceptionPattern{value: p} }

func (p exceptionPattern) String() string {
	return template(string(ExceptionTag), []Pattern{p.value})
}

func (p exceptionPattern) unify(v Value, bound *Env) (*Env, bool) {
	e, ok := v.(*Exception)
	if !ok {
		return nil, false
	}
	return p.value.unify(e.Value, bound)
}

// catchesExceptions reports whether `p` is written to match
// exceptions.  Only these patterns see an exception as the subject
// of a case.
func catchesExceptions(p Pattern) bool {
	switch p := p.(type) {
	case exceptionPattern:
		return true
	case tagPattern:
		return p.tag == ExceptionTag
	default:
		return false
	}
}

func unifyAll(ps []Pattern, vs []Value, bound *Env) (*Env, bool) {
	if len(ps) != len(vs) {
		return nil, false
	}
	var ok bool
	for i, p := range ps {
		if bound, ok = p.unify(vs[i], bound); !ok {
			return nil, false
		}
	}
	return bound, true
}

func template(name string, args []Pattern) string {
	if len(args) == 0 {
		return name
	}
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}
