package monad

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Tag identifies the kind of a value, e.g. `int` or `exception`.
// Data values can carry any tag, which is what `is_tag` checks.
type Tag string

const (
	IntTag       Tag = "int"
	BoolTag      Tag = "bool"
	CharTag      Tag = "char"
	StringTag    Tag = "string"
	SymbolTag    Tag = "symbol"
	ListTag      Tag = "list"
	BoxTag       Tag = "box"
	ExceptionTag Tag = "exception"
)

type Value interface {
	Tag() Tag
	String() string
	Accept(ValueVisitor) error
}

type ValueVisitor interface {
	VisitScalar(v Value) error
	VisitData(n *Data) error
	VisitList(n *List) error
	VisitException(n *Exception) error
}

// Composite is implemented by the values patterns can look into
type Composite interface {
	Value
	Constructor() string
	Children() []Value
}

// Scalar Values

type (
	Int    int
	Bool   bool
	Char   rune
	String string

	// Symbol is the value of a name that isn't bound to anything
	Symbol string
)

func (v Int) Tag() Tag                     { return IntTag }
func (v Int) String() string               { return strconv.Itoa(int(v)) }
func (v Int) Accept(vv ValueVisitor) error { return vv.VisitScalar(v) }

func (v Bool) Tag() Tag                     { return BoolTag }
func (v Bool) String() string               { return strconv.FormatBool(bool(v)) }
func (v Bool) Accept(vv ValueVisitor) error { return vv.VisitScalar(v) }

func (v Char) Tag() Tag                     { return CharTag }
func (v Char) String() string               { return strconv.QuoteRune(rune(v)) }
func (v Char) Accept(vv ValueVisitor) error { return vv.VisitScalar(v) }

func (v String) Tag() Tag                     { return StringTag }
func (v String) String() string               { return strconv.Quote(string(v)) }
func (v String) Accept(vv ValueVisitor) error { return vv.VisitScalar(v) }

func (v Symbol) Tag() Tag                     { return SymbolTag }
func (v Symbol) String() string               { return string(v) }
func (v Symbol) Accept(vv ValueVisitor) error { return vv.VisitScalar(v) }

// Box Value

// Box carries a host value the evaluator knows nothing about
type Box struct {
	V any
}

func NewBox(v any) *Box { return &Box{V: v} }

func (v *Box) Tag() Tag                     { return BoxTag }
func (v *Box) String() string               { return fmt.Sprintf("box(%v)", v.V) }
func (v *Box) Accept(vv ValueVisitor) error { return vv.VisitScalar(v) }

// Data Value

// Data is a value built by a named constructor applied to zero or
// more arguments.  Its tag defaults to the constructor name.
type Data struct {
	Name    string
	DataTag Tag
	Args    []Value
}

func NewData(name string, args ...Value) *Data {
	return &Data{Name: name, Args: args}
}

// NewTaggedData creates a data value whose tag is different from its
// constructor name, so many constructors can share the same tag
func NewTaggedData(name string, tag Tag, args ...Value) *Data {
	return &Data{Name: name, DataTag: tag, Args: args}
}

func (n *Data) Tag() Tag {
	if n.DataTag != "" {
		return n.DataTag
	}
	return Tag(n.Name)
}

func (n *Data) Constructor() string          { return n.Name }
func (n *Data) Children() []Value            { return n.Args }
func (n *Data) Accept(vv ValueVisitor) error { return vv.VisitData(n) }

func (n *Data) String() string {
	if len(n.Args) == 0 {
		return n.Name
	}
	return n.Name + "(" + joinValues(n.Args) + ")"
}

// List Value

type List struct {
	Items []Value
}

func NewList(items ...Value) *List {
	return &List{Items: items}
}

func (n *List) Tag() Tag                     { return ListTag }
func (n *List) Constructor() string          { return string(ListTag) }
func (n *List) Children() []Value            { return n.Items }
func (n *List) Accept(vv ValueVisitor) error { return vv.VisitList(n) }
func (n *List) String() string               { return "[" + joinValues(n.Items) + "]" }

// Exception Value

// Exception wraps a value that was raised.  It flows through the
// evaluator like any other value, and composite expressions stop
// evaluating as soon as one of their operands is an exception.
type Exception struct {
	Value Value
}

func NewException(v Value) *Exception {
	return &Exception{Value: v}
}

func (n *Exception) Tag() Tag                     { return ExceptionTag }
func (n *Exception) Constructor() string          { return string(ExceptionTag) }
func (n *Exception) Children() []Value            { return []Value{n.Value} }
func (n *Exception) Accept(vv ValueVisitor) error { return vv.VisitException(n) }
func (n *Exception) String() string               { return fmt.Sprintf("exception(%s)", n.Value) }

// IsException returns the wrapped value if `v` is an exception
func IsException(v Value) (Value, bool) {
	if e, ok := v.(*Exception); ok {
		return e.Value, true
	}
	return nil, false
}

// Equal compares values structurally
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Box:
		y, ok := b.(*Box)
		return ok && reflect.DeepEqual(x.V, y.V)
	case Composite:
		y, ok := b.(Composite)
		if !ok || x.Tag() != y.Tag() || x.Constructor() != y.Constructor() {
			return false
		}
		return equalValues(x.Children(), y.Children())
	default:
		return a == b
	}
}

func equalValues(as, bs []Value) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !Equal(as[i], bs[i]) {
			return false
		}
	}
	return true
}

func joinValues(vs []Value) string {
	var s strings.Builder
	for i, v := range vs {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(v.String())
	}
	return s.String()
}
