package loxerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/loxparse/internal/token"
)

var (
	ErrParseUnexpectedToken         = errors.New("Expect expression.")
	ErrParseExpectedRightParenToken = errors.New("Expect ')' after expression.")
	ErrParseExpectedSemicolonToken  = errors.New("Expect ';' after expression.")
)

func NewParseError(tok *token.Token, cause error) *ParserError {
	return &ParserError{tok: tok, cause: cause}
}

type ParserError struct {
	tok   *token.Token
	cause error
}

// Token is the token the parser failed on.
func (p *ParserError) Token() *token.Token {
	return p.tok
}

// Where renders the error location: " at end" for EOF, " at '<lexeme>'" otherwise.
func (p *ParserError) Where() string {
	if p.tok.Type == token.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", p.tok.Lexeme)
}

// Error implements error.
func (p *ParserError) Error() string {
	return formatReport(p.tok.Line, p.Where(), p.cause.Error())
}

func (p *ParserError) Unwrap() error {
	return p.cause
}

var _ error = (*ParserError)(nil)
