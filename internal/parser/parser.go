// Package parser builds expression trees from a token stream.
//
// Grammar, loosest binding first:
//
//	expression     → equality
//	equality       → comparison ( ( "!=" | "==" ) comparison )*
//	comparison     → addition ( ( ">" | ">=" | "<" | "<=" ) addition )*
//	addition       → multiplication ( ( "-" | "+" ) multiplication )*
//	multiplication → unary ( ( "/" | "*" ) unary )*
//	unary          → ( "!" | "-" ) unary | primary
//	primary        → NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
package parser

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/leonardinius/loxparse/internal/loxerrors"
	"github.com/leonardinius/loxparse/internal/token"
)

type Parser interface {
	// Parse parses a single expression.
	// On a syntax error no tree is returned; the error has already been
	// reported to the error sink.
	Parse() (Expr, error)

	// ParseExpressions parses a list of ';' terminated expressions up to EOF.
	// After a syntax error the parser synchronizes and keeps going so every
	// error in the input gets reported; the returned error joins them all.
	ParseExpressions() ([]Expr, error)
}

type parser struct {
	tokens  []token.Token
	current int
	opts    *parserOpts
}

func NewParser(tokens []token.Token, options ...ParserOption) Parser {
	if len(tokens) == 0 {
		panic("tokens cannot be empty")
	}
	if tokens[len(tokens)-1].Type != token.EOF {
		panic("tokens must end with EOF")
	}

	return &parser{
		tokens:  tokens,
		current: 0,
		opts:    newParserOpts(options...),
	}
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, current: %d}", p.tokens, p.current)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, current: %d}", len(p.tokens), p.current)
}

// Parse implements Parser.
func (p *parser) Parse() (Expr, error) {
	expr, err := p.expression()
	if err != nil {
		p.opts.logger.Debug("parse failed", slog.Int("token", p.current), slog.Any("error", err))
		return nil, err
	}
	return expr, nil
}

// ParseExpressions implements Parser.
func (p *parser) ParseExpressions() ([]Expr, error) {
	var exprs []Expr
	var errs []error

	for !p.isAtEnd() {
		expr, err := p.expressionStatement()
		if err != nil {
			errs = append(errs, err)
			p.synchronize()
			continue
		}
		exprs = append(exprs, expr)
	}

	if len(errs) > 0 {
		p.opts.logger.Debug("parse failed", slog.Int("errors", len(errs)))
		// if we are at error state, we do not return invalid ast trees
		return nil, errors.Join(errs...)
	}

	return exprs, nil
}

func (p *parser) expressionStatement() (Expr, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, loxerrors.ErrParseExpectedSemicolonToken); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *parser) expression() (Expr, error) {
	return p.equality()
}

func (p *parser) equality() (Expr, error) {
	return p.binary(p.comparison, token.BANG_EQUAL, token.EQUAL_EQUAL)
}

func (p *parser) comparison() (Expr, error) {
	return p.binary(p.addition, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL)
}

func (p *parser) addition() (Expr, error) {
	return p.binary(p.multiplication, token.MINUS, token.PLUS)
}

func (p *parser) multiplication() (Expr, error) {
	return p.binary(p.unary, token.SLASH, token.STAR)
}

// binary parses a left-associative chain of operand separated by operators.
func (p *parser) binary(operand func() (Expr, error), operators ...token.TokenType) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}

	for p.anyMatch(operators...) {
		operator := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

func (p *parser) unary() (Expr, error) {
	if p.anyMatch(token.BANG, token.MINUS) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Operator: operator, Right: right}, nil
	}

	return p.primary()
}

func (p *parser) primary() (Expr, error) {
	if p.match(token.FALSE) {
		return &Literal{Value: false}, nil
	}
	if p.match(token.TRUE) {
		return &Literal{Value: true}, nil
	}
	if p.match(token.NIL) {
		return &Literal{Value: nil}, nil
	}

	if p.anyMatch(token.NUMBER, token.STRING) {
		return &Literal{Value: p.previous().Literal}, nil
	}

	if p.match(token.LEFT_PAREN) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_PAREN, loxerrors.ErrParseExpectedRightParenToken); err != nil {
			return nil, err
		}
		return &Grouping{Expression: expr}, nil
	}

	return nil, p.error(p.peek(), loxerrors.ErrParseUnexpectedToken)
}

func (p *parser) anyMatch(types ...token.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) match(tokType token.TokenType) bool {
	if p.check(tokType) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) consume(tokType token.TokenType, cause error) (*token.Token, error) {
	if p.check(tokType) {
		return p.advance(), nil
	}
	return nil, p.error(p.peek(), cause)
}

func (p *parser) check(tokenType token.TokenType) bool {
	return !p.isAtEnd() && p.peek().Type == tokenType
}

func (p *parser) peek() *token.Token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *token.Token {
	return &p.tokens[p.current-1]
}

func (p *parser) advance() *token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *parser) error(tok *token.Token, cause error) error {
	err := loxerrors.NewParseError(tok, cause)
	p.opts.reporter.ReportError(err)
	return err
}

// synchronize discards tokens until the start of the next statement.
func (p *parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case token.CLASS,
			token.FUN,
			token.VAR,
			token.FOR,
			token.IF,
			token.WHILE,
			token.PRINT,
			token.RETURN:
			return
		}

		p.advance()
	}
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
