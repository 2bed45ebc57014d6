package convert

import (
	"fmt"

	"github.com/TravisQBrown/citrine/internal/expr"
	"github.com/TravisQBrown/citrine/internal/units"
)

// Resolve replaces every unit in node with its SI symbol and SI factor,
// producing two trees with identical shape. It fails on the first unit, in
// left to right order, that the table does not know.
//
// An Atom with an empty symbol resolves to ("", 1) without a table lookup.
func Resolve(node expr.Node, table *units.Table) (Resolved[string], Resolved[float64], error) {
	switch n := node.(type) {
	case *expr.Atom:
		if n.Symbol == "" {
			return &Leaf[string]{Value: ""}, &Leaf[float64]{Value: 1}, nil
		}

		entry, ok := table.Lookup(n.Symbol)
		if !ok {
			return nil, nil, &UnknownUnitError{Symbol: n.Symbol}
		}
		return &Leaf[string]{Value: entry.SISymbol}, &Leaf[float64]{Value: entry.SIFactor}, nil

	case *expr.Group:
		symbols := &Branch[string]{
			Operands:  make([]Resolved[string], 0, len(n.Operands)),
			Operators: n.Operators,
		}
		factors := &Branch[float64]{
			Operands:  make([]Resolved[float64], 0, len(n.Operands)),
			Operators: n.Operators,
		}

		for _, operand := range n.Operands {
			symbol, factor, err := Resolve(operand, table)
			if err != nil {
				return nil, nil, err
			}
			symbols.Operands = append(symbols.Operands, symbol)
			factors.Operands = append(factors.Operands, factor)
		}
		return symbols, factors, nil

	default:
		return nil, nil, fmt.Errorf("unsupported expression node %T", node)
	}
}
