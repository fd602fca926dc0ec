package scanner

import (
	"errors"
	"log/slog"
	"strconv"
	"unicode/utf8"

	"github.com/leonardinius/loxparse/internal/loxerrors"
	"github.com/leonardinius/loxparse/internal/token"
)

// Scanner turns source text into a token stream.
type Scanner interface {
	// Scan returns every token it could recognize, always terminated by
	// a single EOF token. Lexical errors do not stop the scan: each one is
	// reported to the error sink and the joined errors are returned.
	Scan() ([]token.Token, error)
}

type scanner struct {
	// start and current index bytes so lexemes stay verbatim slices of
	// source, even when it is not valid UTF-8.
	source               string
	tokens               []token.Token
	start, current, line int
	errs                 []error
	opts                 *scannerOpts
}

// NewScanner returns a new Scanner.
func NewScanner(input string, options ...ScannerOption) Scanner {
	return &scanner{
		source:  input,
		start:   0,
		current: 0,
		line:    1,
		opts:    newScannerOpts(options...),
	}
}

// Scan implements Scanner.
func (s *scanner) Scan() ([]token.Token, error) {
	for !s.isAtEnd() {
		// We are at the beginning of the next lexeme.
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, token.NewToken(token.EOF, "", nil, s.line))

	s.opts.logger.Debug("scan finished",
		slog.Int("tokens", len(s.tokens)),
		slog.Int("errors", len(s.errs)),
		slog.Int("lines", s.line))

	return s.tokens, errors.Join(s.errs...)
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) scanToken() {
	var c = s.advance()

	switch c {
	case '(':
		s.addToken(token.LEFT_PAREN)
	case ')':
		s.addToken(token.RIGHT_PAREN)
	case '{':
		s.addToken(token.LEFT_BRACE)
	case '}':
		s.addToken(token.RIGHT_BRACE)
	case ',':
		s.addToken(token.COMMA)
	case '.':
		s.addToken(token.DOT)
	case '-':
		s.addToken(token.MINUS)
	case '+':
		s.addToken(token.PLUS)
	case ';':
		s.addToken(token.SEMICOLON)
	case '*':
		s.addToken(token.STAR)
	case '!':
		s.addMatchToken('=', token.BANG_EQUAL, token.BANG)
	case '=':
		s.addMatchToken('=', token.EQUAL_EQUAL, token.EQUAL)
	case '<':
		s.addMatchToken('=', token.LESS_EQUAL, token.LESS)
	case '>':
		s.addMatchToken('=', token.GREATER_EQUAL, token.GREATER)
	case '/':
		if s.match('/') {
			s.comment()
		} else {
			s.addToken(token.SLASH)
		}
	case ' ', '\r', '\t', '\n':
		// Ignore whitespace. advance() already counted the newline.
	case '"':
		s.string()
	default:
		if isDigit(c) {
			s.number()
		} else if isAlpha(c) {
			s.reservedOrIdentifier()
		} else {
			s.reportUnexpectedCharacter()
		}
	}
}

func (s *scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	c, _ := utf8.DecodeRuneInString(s.source[s.current:])
	return c
}

func (s *scanner) peekNext() rune {
	if s.isAtEnd() {
		return '\000'
	}
	_, size := utf8.DecodeRuneInString(s.source[s.current:])
	if s.current+size >= len(s.source) {
		return '\000'
	}
	c, _ := utf8.DecodeRuneInString(s.source[s.current+size:])
	return c
}

func (s *scanner) advance() rune {
	c, size := utf8.DecodeRuneInString(s.source[s.current:])
	if c == '\n' {
		s.line++
	}
	s.current += size
	return c
}

func (s *scanner) match(expected rune) bool {
	if !s.isAtEnd() && expected == s.peek() {
		s.advance()
		return true
	}

	return false
}

func (s *scanner) addMatchToken(lookAhead rune, ifMatch, ifNotMatched token.TokenType) {
	if s.match(lookAhead) {
		s.addToken(ifMatch)
	} else {
		s.addToken(ifNotMatched)
	}
}

func (s *scanner) addToken(t token.TokenType) {
	s.addTokenLiteral(t, nil)
}

func (s *scanner) addTokenLiteral(t token.TokenType, literal any) {
	s.tokens = append(s.tokens, token.NewToken(t, s.source[s.start:s.current], literal, s.line))
}

// comment stops before the newline so the line counter sees it.
func (s *scanner) comment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

func (s *scanner) string() {
	for !s.isAtEnd() && s.peek() != '"' {
		s.advance()
	}

	if s.isAtEnd() {
		s.reportError(loxerrors.ErrScanUnterminatedString)
		return
	}

	// The closing ".
	s.advance()

	value := s.source[s.start+1 : s.current-1]
	s.addTokenLiteral(token.STRING, value)
}

func (s *scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}

	// A trailing '.' without digits is left for the next token.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()

		for isDigit(s.peek()) {
			s.advance()
		}
	}

	svalue := s.source[s.start:s.current]
	value, err := strconv.ParseFloat(svalue, 64)
	if err != nil {
		s.reportError(err)
		return
	}
	s.addTokenLiteral(token.NUMBER, value)
}

func (s *scanner) reservedOrIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	tokenType := token.IDENTIFIER
	name := s.source[s.start:s.current]
	if _type, ok := token.LookupKeyword(name); ok {
		tokenType = _type
	}
	s.addToken(tokenType)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_'
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}

// reportUnexpectedCharacter quotes the raw bytes, which may not be valid UTF-8.
func (s *scanner) reportUnexpectedCharacter() {
	s.report(loxerrors.NewScanError(s.line, loxerrors.ErrScanUnexpectedCharacter, s.source[s.start:s.current]))
}

func (s *scanner) reportError(err error) {
	s.report(loxerrors.NewScanError(s.line, err, ""))
}

func (s *scanner) report(err *loxerrors.ScannerError) {
	s.errs = append(s.errs, err)
	s.opts.reporter.ReportError(err)
}

var _ Scanner = (*scanner)(nil)
