package monad

import "strings"

// Format renders `v` as a tree, one constructor per line
func Format(v Value) string {
	p := newValuePrinter()
	v.Accept(p)
	return p.output.String()
}

type valuePrinter struct {
	padStr *[]string
	output *strings.Builder
}

func newValuePrinter() *valuePrinter {
	return &valuePrinter{
		padStr: &[]string{},
		output: &strings.Builder{},
	}
}

func (v *valuePrinter) VisitScalar(n Value) error {
	v.write(n.String())
	return nil
}

func (v *valuePrinter) VisitData(n *Data) error {
	v.visitComposite(n.Name, n.Args)
	return nil
}

func (v *valuePrinter) VisitList(n *List) error {
	v.visitComposite(string(ListTag), n.Items)
	return nil
}

func (v *valuePrinter) VisitException(n *Exception) error {
	v.visitComposite(string(ExceptionTag), []Value{n.Value})
	return nil
}

func (v *valuePrinter) visitComposite(name string, items []Value) {
	v.write(name)
	for i, item := range items {
		v.write("\n")
		switch {
		case i == len(items)-1:
			v.pwrite("└── ")
			v.indent("    ")
			item.Accept(v)
			v.unindent()
		default:
			v.pwrite("├── ")
			v.indent("│   ")
			item.Accept(v)
			v.unindent()
		}
	}
}

func (v *valuePrinter) indent(s string) {
	*v.padStr = append(*v.padStr, s)
}

func (v *valuePrinter) unindent() {
	index := len(*v.padStr) - 1
	*v.padStr = (*v.padStr)[:index]
}

func (v *valuePrinter) padding() {
	for _, item := range *v.padStr {
		v.write(item)
	}
}

func (v *valuePrinter) write(s string) {
	v.output.WriteString(s)
}

func (v *valuePrinter) pwrite(s string) {
	v.padding()
	v.write(s)
}
