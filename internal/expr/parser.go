// Package expr parses infix units expressions such as "(hour * minute) / day"
// into a tree of Atoms and Groups.
//
// The grammar has two binary operator tiers: "*" and "/" bind tighter than
// "+" and "-". Operators within a tier associate to the left and consecutive
// operators of the same tier are kept together in a single Group, so
// "a - b - c" parses as one Group whose operands are folded left to right.
// Parentheses nest arbitrarily; parentheses around a single operand add no
// structure.
package expr

import (
	"fmt"
	"unicode/utf8"
)

const (
	DefaultMaxDepth  = 64
	DefaultMaxLength = 1024
)

// Option configures parsing behavior.
type Option func(*Options)

// Options holds parser limits.
type Options struct {
	// MaxDepth limits parenthesis nesting.
	MaxDepth int
	// MaxLength limits the input size in bytes.
	MaxLength int
}

// WithMaxDepth sets the maximum parenthesis nesting depth.
func WithMaxDepth(depth int) Option {
	return func(opts *Options) {
		opts.MaxDepth = depth
	}
}

// WithMaxLength sets the maximum input length in bytes.
func WithMaxLength(length int) Option {
	return func(opts *Options) {
		opts.MaxLength = length
	}
}

// Parser builds a Node tree from the tokens of a single expression.
type Parser struct {
	lexer   *Lexer
	input   string
	current Token
	depth   int
	opts    Options
}

// NewParser creates a parser for input.
func NewParser(input string, opts ...Option) *Parser {
	p := &Parser{
		lexer: NewLexer(input),
		input: input,
		opts: Options{
			MaxDepth:  DefaultMaxDepth,
			MaxLength: DefaultMaxLength,
		},
	}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// Parse parses a units expression.
//
//	node, err := expr.Parse("(hour * minute) / day")
//
// Malformed input yields a *ParseError.
func Parse(input string, opts ...Option) (Node, error) {
	return NewParser(input, opts...).Parse()
}

// Parse consumes the entire input and returns the root node.
func (p *Parser) Parse() (Node, error) {
	if p.opts.MaxLength > 0 && len(p.input) > p.opts.MaxLength {
		return nil, &ParseError{
			Input:    p.input,
			Position: p.opts.MaxLength,
			Reason:   fmt.Sprintf("expression longer than %d bytes", p.opts.MaxLength),
		}
	}
	if !utf8.ValidString(p.input) {
		return nil, p.errorAt(0, "expression is not valid UTF-8")
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.current.Type == TokenEOF {
		return nil, p.error("empty expression")
	}

	node, err := p.parseTier(tierSum)
	if err != nil {
		return nil, err
	}

	if p.current.Type != TokenEOF {
		return nil, p.error(fmt.Sprintf("unexpected token %q", p.current.Value))
	}

	return node, nil
}

// advance moves to the next token, surfacing lexer errors.
func (p *Parser) advance() error {
	p.current = p.lexer.Next()
	if p.current.Type == TokenError {
		return p.lexer.Error()
	}
	return nil
}

// expect checks if the current token matches the expected type and advances.
func (p *Parser) expect(tt TokenType) error {
	if p.current.Type != tt {
		return p.error(fmt.Sprintf("expected %s but got %s", tt, p.current.Type))
	}
	return p.advance()
}

func (p *Parser) error(reason string) error {
	return p.errorAt(p.current.Position, reason)
}

func (p *Parser) errorAt(position int, reason string) error {
	return &ParseError{
		Input:    p.input,
		Position: position,
		Reason:   reason,
	}
}

// parseTier parses a run of operands joined by operators of the given tier.
// Each operand is itself parsed one tier down.
func (p *Parser) parseTier(tier int) (Node, error) {
	if tier == tierOperand {
		return p.parseOperand()
	}

	first, err := p.parseTier(tier - 1)
	if err != nil {
		return nil, err
	}

	var group *Group
	for {
		op, ok := operatorFor(p.current.Type)
		if !ok || op.tier() != tier {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}

		next, err := p.parseTier(tier - 1)
		if err != nil {
			return nil, err
		}

		if group == nil {
			group = &Group{Operands: []Node{first}}
		}
		group.Operands = append(group.Operands, next)
		group.Operators = append(group.Operators, op)
	}

	if group == nil {
		return first, nil
	}
	return group, nil
}

// parseOperand parses a unit symbol or a parenthesized subexpression.
func (p *Parser) parseOperand() (Node, error) {
	switch p.current.Type {
	case TokenUnit:
		atom := &Atom{Symbol: p.current.Value}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return atom, nil

	case TokenParenOpen:
		p.depth++
		if p.opts.MaxDepth > 0 && p.depth > p.opts.MaxDepth {
			return nil, p.error(fmt.Sprintf("nesting deeper than %d levels", p.opts.MaxDepth))
		}
		if err := p.advance(); err != nil {
			return nil, err
		}

		node, err := p.parseTier(tierSum)
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenParenClose); err != nil {
			return nil, err
		}
		p.depth--
		return node, nil

	case TokenEOF:
		return nil, p.error("unexpected end of expression")

	default:
		return nil, p.error(fmt.Sprintf("expected unit but got %s", p.current.Type))
	}
}
