package convert

import (
	"fmt"

	"github.com/TravisQBrown/citrine/internal/expr"
)

// Evaluate folds a factor tree into a single number. Each branch starts from
// its first operand and applies its operators left to right.
func Evaluate(node Resolved[float64]) (float64, error) {
	switch n := node.(type) {
	case *Leaf[float64]:
		return n.Value, nil

	case *Branch[float64]:
		if len(n.Operands) != len(n.Operators)+1 {
			return 0, fmt.Errorf("malformed branch: %d operands for %d operators", len(n.Operands), len(n.Operators))
		}

		result, err := Evaluate(n.Operands[0])
		if err != nil {
			return 0, err
		}
		for i, op := range n.Operators {
			rhs, err := Evaluate(n.Operands[i+1])
			if err != nil {
				return 0, err
			}
			result, err = apply(op, result, rhs)
			if err != nil {
				return 0, err
			}
		}
		return result, nil

	default:
		return 0, fmt.Errorf("unsupported resolved node %T", node)
	}
}

func apply(op expr.Operator, lhs, rhs float64) (float64, error) {
	switch op {
	case expr.OpAdd:
		return lhs + rhs, nil
	case expr.OpSub:
		return lhs - rhs, nil
	case expr.OpMul:
		return lhs * rhs, nil
	case expr.OpDiv:
		if rhs == 0 {
			return 0, &DivisionError{Dividend: lhs}
		}
		return lhs / rhs, nil
	default:
		return 0, fmt.Errorf("unsupported operator %q", op)
	}
}
