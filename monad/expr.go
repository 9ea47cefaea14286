package monad

import (
	"fmt"
	"strings"
)

// Expr is a node of an expression tree evaluated by an Evaluator.
// The set of nodes is closed; they're created with the constructors
// in this file.
type Expr interface {
	String() string
	exprNode()
}

type (
	// LitNode evaluates to its value
	LitNode struct{ Value Value }

	// VarNode evaluates to the value bound to its name, or to the
	// symbol of its name if nothing is bound to it
	VarNode struct{ Name string }

	// CallNode applies a function defined in the evaluator to the
	// values of its arguments
	CallNode struct {
		Func string
		Args []Expr
	}

	// ConstructNode builds a Data value out of its arguments
	ConstructNode struct {
		Name string
		Tag  Tag
		Args []Expr
	}

	IfNode struct {
		Cond Expr
		Then Expr
		Else Expr
	}

	LetNode struct {
		Name  string
		Value Expr
		Body  Expr
	}

	MultiLetNode struct {
		Bindings []Binding
		Body     Expr
	}

	CaseNode struct {
		Subject Expr
		Clauses []Clause
	}

	RaiseNode struct{ Value Expr }

	TryNode struct {
		Body    Expr
		Catches []Catch
	}

	// ReturnNode lifts the value of its expression into the monad
	// registered under Tag
	ReturnNode struct {
		Tag   Tag
		Value Expr
	}

	// BindNode feeds the value of Value to Body, binding it to
	// Name, through the bind operation of the monad under Tag
	BindNode struct {
		Tag   Tag
		Value Expr
		Name  string
		Body  Expr
	}

	// DoNode chains its steps with the bind operation of the monad
	// under Tag.  Each step sees the names set by the ones before it.
	DoNode struct {
		Tag   Tag
		Steps []Step
	}
)

type Binding struct {
	Name  string
	Value Expr
}

// Clause is a `matches` clause of a case expression.  A nil Body
// evaluates to the subject.
type Clause struct {
	Pattern Pattern
	Body    Expr
}

// Catch is a clause of a try expression.  The value of the exception
// is bound to Name while Pred and Handler are evaluated.
type Catch struct {
	Name    string
	Pred    Expr
	Handler Expr
}

// Step is one step of a do block.  Steps with an empty Name don't
// bind their result.
type Step struct {
	Name string
	Expr Expr
}

func Lit(v Value) *LitNode        { return &LitNode{Value: v} }
func Var(name string) *VarNode    { return &VarNode{Name: name} }
func IntLit(v int) *LitNode       { return Lit(Int(v)) }
func BoolLit(v bool) *LitNode     { return Lit(Bool(v)) }
func SymbolLit(v string) *LitNode { return Lit(Symbol(v)) }

func Call(fn string, args ...Expr) *CallNode {
	return &CallNode{Func: fn, Args: args}
}

func Construct(name string, args ...Expr) *ConstructNode {
	return &ConstructNode{Name: name, Args: args}
}

func ConstructTagged(name string, tag Tag, args ...Expr) *ConstructNode {
	return &ConstructNode{Name: name, Tag: tag, Args: args}
}

func If(cond, then, els Expr) *IfNode {
	return &IfNode{Cond: cond, Then: then, Else: els}
}

func Let(name string, value, body Expr) *LetNode {
	return &LetNode{Name: name, Value: value, Body: body}
}

func MultiLet(bindings []Binding, body Expr) *MultiLetNode {
	return &MultiLetNode{Bindings: bindings, Body: body}
}

func Bind(name string, value Expr) Binding {
	return Binding{Name: name, Value: value}
}

func Case(subject Expr, clauses ...Clause) *CaseNode {
	return &CaseNode{Subject: subject, Clauses: clauses}
}

func Matches(p Pattern, body Expr) Clause {
	return Clause{Pattern: p, Body: body}
}

// MatchesSelf is a clause that evaluates to the subject when `p`
// matches it
func MatchesSelf(p Pattern) Clause {
	return Clause{Pattern: p}
}

func Raise(value Expr) *RaiseNode {
	return &RaiseNode{Value: value}
}

func Try(body Expr, catches ...Catch) *TryNode {
	return &TryNode{Body: body, Catches: catches}
}

func CatchWhen(name string, pred, handler Expr) Catch {
	return Catch{Name: name, Pred: pred, Handler: handler}
}

func Return(tag Tag, value Expr) *ReturnNode {
	return &ReturnNode{Tag: tag, Value: value}
}

func BindM(tag Tag, value Expr, name string, body Expr) *BindNode {
	return &BindNode{Tag: tag, Value: value, Name: name, Body: body}
}

func Do(tag Tag, steps ...Step) *DoNode {
	return &DoNode{Tag: tag, Steps: steps}
}

// Set is a do step that binds the value of `expr` to `name`
func Set(name string, expr Expr) Step {
	return Step{Name: name, Expr: expr}
}

// Then is a do step whose value isn't bound to any name
func Then(expr Expr) Step {
	return Step{Expr: expr}
}

func (*LitNode) exprNode()       {}
func (*VarNode) exprNode()       {}
func (*CallNode) exprNode()      {}
func (*ConstructNode) exprNode() {}
func (*IfNode) exprNode()        {}
func (*LetNode) exprNode()       {}
func (*MultiLetNode) exprNode()  {}
func (*CaseNode) exprNode()      {}
func (*RaiseNode) exprNode()     {}
func (*TryNode) exprNode()       {}
func (*ReturnNode) exprNode()    {}
func (*BindNode) exprNode()      {}
func (*DoNode) exprNode()        {}

func (n *LitNode) String() string { return n.Value.String() }
func (n *VarNode) String() string { return n.Name }

func (n *CallNode) String() string {
	return n.Func + "(" + joinExprs(n.Args) + ")"
}

func (n *ConstructNode) String() string {
	return "construct<" + n.Name + ">(" + joinExprs(n.Args) + ")"
}

func (n *IfNode) String() string {
	return fmt.Sprintf("if(%s, %s, %s)", n.Cond, n.Then, n.Else)
}

func (n *LetNode) String() string {
	return fmt.Sprintf("let(%s, %s, %s)", n.Name, n.Value, n.Body)
}

func (n *MultiLetNode) String() string {
	items := make([]string, len(n.Bindings))
	for i, b := range n.Bindings {
		items[i] = b.Name + ": " + b.Value.String()
	}
	return fmt.Sprintf("multi_let({%s}, %s)", strings.Join(items, ", "), n.Body)
}

func (n *CaseNode) String() string {
	var s strings.Builder
	s.WriteString("case(")
	s.WriteString(n.Subject.String())
	for _, c := range n.Clauses {
		s.WriteString(", matches(")
		s.WriteString(c.Pattern.String())
		if c.Body != nil {
			s.WriteString(", ")
			s.WriteString(c.Body.String())
		}
		s.WriteString(")")
	}
	s.WriteString(")")
	return s.String()
}

func (n *RaiseNode) String() string { return fmt.Sprintf("raise(%s)", n.Value) }

func (n *TryNode) String() string {
	var s strings.Builder
	s.WriteString("try(")
	s.WriteString(n.Body.String())
	for _, c := range n.Catches {
		fmt.Fprintf(&s, ", catch(%s, %s, %s)", c.Name, c.Pred, c.Handler)
	}
	s.WriteString(")")
	return s.String()
}

func (n *ReturnNode) String() string {
	return fmt.Sprintf("return<%s>(%s)", n.Tag, n.Value)
}

func (n *BindNode) String() string {
	return fmt.Sprintf("bind<%s>(%s, %s -> %s)", n.Tag, n.Value, n.Name, n.Body)
}

func (n *DoNode) String() string {
	items := make([]string, len(n.Steps))
	for i, step := range n.Steps {
		if step.Name == "" {
			items[i] = step.Expr.String()
			continue
		}
		items[i] = "set<" + step.Name + ", " + step.Expr.String() + ">"
	}
	return fmt.Sprintf("do<%s>(%s)", n.Tag, strings.Join(items, ", "))
}

func joinExprs(es []Expr) string {
	items := make([]string, len(es))
	for i, e := range es {
		items[i] = e.String()
	}
	return strings.Join(items, ", ")
}
