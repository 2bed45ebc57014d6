package expr

import "fmt"

// ParseError reports input that is not a well-formed infix units expression.
type ParseError struct {
	Input    string // the whole expression as supplied
	Position int    // byte offset of the offending token
	Reason   string
}

// Error names only the input; Detail has the reason and position.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s is an invalid expression", e.Input)
}

// Detail describes what went wrong and where.
func (e *ParseError) Detail() string {
	return fmt.Sprintf("%s at position %d", e.Reason, e.Position)
}
