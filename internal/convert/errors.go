package convert

import "fmt"

// UnknownUnitError reports an operand that has no entry in the unit table.
type UnknownUnitError struct {
	Symbol string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("%s does not have an si equivalent", e.Symbol)
}

// DivisionError reports a division whose divisor evaluated to zero.
type DivisionError struct {
	Dividend float64
}

func (e *DivisionError) Error() string {
	return "division by zero"
}
