package expr

// TokenType represents the type of a lexical token.
type TokenType uint8

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError

	// Operands
	TokenUnit // hour, L, °

	// Grouping symbols
	TokenParenOpen  // (
	TokenParenClose // )

	// Arithmetic operators
	TokenPlus  // +
	TokenMinus // -
	TokenMult  // *
	TokenDiv   // /
)

// String returns a string representation of the token type.
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "(eof)"
	case TokenError:
		return "(error)"
	case TokenUnit:
		return "(unit)"
	case TokenParenOpen:
		return "("
	case TokenParenClose:
		return ")"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenMult:
		return "*"
	case TokenDiv:
		return "/"
	default:
		return "(unknown)"
	}
}

// Token is a lexical unit with its byte offset in the input.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

// symbols maps single-character symbols to their token type.
var symbols = map[rune]TokenType{
	'(': TokenParenOpen,
	')': TokenParenClose,
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenMult,
	'/': TokenDiv,
}

func lookupSymbol(r rune) TokenType {
	if tt, ok := symbols[r]; ok {
		return tt
	}
	return 0
}

// Operator is a binary arithmetic operator.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
	OpDiv Operator = "/"
)

// Operator tiers. Lower tiers bind tighter.
const (
	tierOperand = iota
	tierProduct
	tierSum
)

// tier returns the precedence tier of the operator.
func (op Operator) tier() int {
	switch op {
	case OpMul, OpDiv:
		return tierProduct
	case OpAdd, OpSub:
		return tierSum
	default:
		return tierOperand
	}
}

// operatorFor maps an operator token to its Operator.
func operatorFor(tt TokenType) (Operator, bool) {
	switch tt {
	case TokenPlus:
		return OpAdd, true
	case TokenMinus:
		return OpSub, true
	case TokenMult:
		return OpMul, true
	case TokenDiv:
		return OpDiv, true
	default:
		return "", false
	}
}
