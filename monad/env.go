package monad

import (
	"sort"
	"strings"
)

// Env is a persistent mapping from names to values.  Binding a name
// returns a new environment and leaves the receiver untouched, so an
// environment can be shared by many evaluations.  The nil *Env is the
// empty environment.
type Env struct {
	name   string
	value  Value
	parent *Env
}

// NewEnv binds the given pairs in order.  It panics if `kv` doesn't
// alternate between string names and values.
func NewEnv(kv ...any) *Env {
	if len(kv)%2 != 0 {
		panic("NewEnv expects name/value pairs")
	}
	var env *Env
	for i := 0; i < len(kv); i += 2 {
		env = env.Bind(kv[i].(string), kv[i+1].(Value))
	}
	return env
}

// Bind returns an environment where `name` is bound to `value`,
// shadowing any previous binding of the same name
func (e *Env) Bind(name string, value Value) *Env {
	return &Env{name: name, value: value, parent: e}
}

func (e *Env) Lookup(name string) (Value, bool) {
	for n := e; n != nil; n = n.parent {
		if n.name == name {
			return n.value, true
		}
	}
	return nil, false
}

// Extend binds every visible binding of `other` on top of `e`
func (e *Env) Extend(other *Env) *Env {
	names := other.Names()
	for i := len(names) - 1; i >= 0; i-- {
		v, _ := other.Lookup(names[i])
		e = e.Bind(names[i], v)
	}
	return e
}

// Names returns the visible names, most recently bound first
func (e *Env) Names() []string {
	var (
		names []string
		seen  = map[string]struct{}{}
	)
	for n := e; n != nil; n = n.parent {
		if _, ok := seen[n.name]; ok {
			continue
		}
		seen[n.name] = struct{}{}
		names = append(names, n.name)
	}
	return names
}

func (e *Env) Len() int { return len(e.Names()) }

func (e *Env) String() string {
	names := e.Names()
	sort.Strings(names)
	items := make([]string, 0, len(names))
	for _, name := range names {
		v, _ := e.Lookup(name)
		items = append(items, name+": "+v.String())
	}
	return "{" + strings.Join(items, ", ") + "}"
}
