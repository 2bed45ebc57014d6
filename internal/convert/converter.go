// Package convert turns a units expression into its SI equivalent.
//
// A conversion parses the expression, resolves every unit against the unit
// table into a symbol tree and a factor tree of identical shape, renders the
// symbol tree back to infix text and folds the factor tree into the
// multiplication factor. All intermediate trees are local to one call; the
// only shared input is the read-only unit table.
package convert

import (
	"github.com/TravisQBrown/citrine/internal/expr"
	"github.com/TravisQBrown/citrine/internal/units"
)

// Result is the outcome of a successful conversion.
type Result struct {
	// UnitName is the expression rewritten with SI symbols.
	UnitName string
	// MultiplicationFactor converts a value in the input units to SI units.
	MultiplicationFactor float64
}

// Identity is the result for an empty expression.
var Identity = Result{UnitName: "", MultiplicationFactor: 1}

// Converter runs conversions against a fixed unit table.
type Converter struct {
	table     *units.Table
	parseOpts []expr.Option
}

// NewConverter creates a Converter. The parse options bound the expressions
// it accepts.
func NewConverter(table *units.Table, parseOpts ...expr.Option) *Converter {
	return &Converter{
		table:     table,
		parseOpts: parseOpts,
	}
}

// Table returns the unit table the converter resolves against.
func (c *Converter) Table() *units.Table {
	return c.table
}

// Convert converts a units expression. The empty string means no units were
// supplied and yields Identity.
//
// Errors are *expr.ParseError, *UnknownUnitError or *DivisionError.
func (c *Converter) Convert(input string) (Result, error) {
	if input == "" {
		return c.ConvertNode(&expr.Atom{})
	}
	return c.ConvertExpression(input)
}

// ConvertExpression parses and converts input. Unlike Convert it has no
// sentinel: an empty input is a *expr.ParseError.
func (c *Converter) ConvertExpression(input string) (Result, error) {
	node, err := expr.Parse(input, c.parseOpts...)
	if err != nil {
		return Result{}, err
	}
	return c.ConvertNode(node)
}

// ConvertNode converts an already parsed expression.
func (c *Converter) ConvertNode(node expr.Node) (Result, error) {
	symbols, factors, err := Resolve(node, c.table)
	if err != nil {
		return Result{}, err
	}

	factor, err := Evaluate(factors)
	if err != nil {
		return Result{}, err
	}

	return Result{
		UnitName:             Render(symbols),
		MultiplicationFactor: factor,
	}, nil
}
