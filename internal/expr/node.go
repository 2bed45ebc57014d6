package expr

import "strings"

// Node is a parsed units expression: either an *Atom or a *Group.
type Node interface {
	// String renders the node in parenthesized infix form.
	String() string
	node()
}

// Atom is a single operand as written by the caller. An empty Symbol is the
// "no units supplied" sentinel.
type Atom struct {
	Symbol string
}

// Group is one infix subexpression. All of its operators share a precedence
// tier and apply left to right, so Operands always holds exactly one more
// element than Operators.
type Group struct {
	Operands  []Node
	Operators []Operator
}

func (*Atom) node()  {}
func (*Group) node() {}

func (a *Atom) String() string {
	return a.Symbol
}

func (g *Group) String() string {
	parts := make([]string, len(g.Operands))
	for i, operand := range g.Operands {
		parts[i] = operand.String()
	}
	return Join(parts, g.Operators)
}

// Join interleaves rendered operands with operators and wraps the result in
// parentheses: Join([a b c], [* /]) is "(a * b / c)".
func Join(operands []string, operators []Operator) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, operand := range operands {
		if i > 0 {
			sb.WriteByte(' ')
			sb.WriteString(string(operators[i-1]))
			sb.WriteByte(' ')
		}
		sb.WriteString(operand)
	}
	sb.WriteByte(')')
	return sb.String()
}
