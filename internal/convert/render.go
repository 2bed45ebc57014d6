package convert

import "github.com/TravisQBrown/citrine/internal/expr"

// Render writes a symbol tree back out as infix text. Branches are wrapped in
// parentheses with operands and operators separated by single spaces; a lone
// leaf renders bare.
func Render(node Resolved[string]) string {
	switch n := node.(type) {
	case *Leaf[string]:
		return n.Value
	case *Branch[string]:
		parts := make([]string, len(n.Operands))
		for i, operand := range n.Operands {
			parts[i] = Render(operand)
		}
		return expr.Join(parts, n.Operators)
	default:
		return ""
	}
}
