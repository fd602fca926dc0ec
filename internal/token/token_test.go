package token_test

import (
	"testing"

	"github.com/leonardinius/loxparse/internal/token"
	"github.com/stretchr/testify/assert"
)

func TestTokenString(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		tok      token.Token
		expected string
	}{
		{"punctuation", token.NewToken(token.LEFT_PAREN, "(", nil, 1), "LEFT_PAREN ( nil"},
		{"number", token.NewToken(token.NUMBER, "12.50", 12.5, 1), "NUMBER 12.50 12.5"},
		{"million", token.NewToken(token.NUMBER, "1000000", 1000000.0, 1), "NUMBER 1000000 1000000"},
		{"twelve digits", token.NewToken(token.NUMBER, "123456789012", 123456789012.0, 1), "NUMBER 123456789012 123456789012"},
		{"small fraction", token.NewToken(token.NUMBER, "0.00001", 0.00001, 1), "NUMBER 0.00001 0.00001"},
		{"string", token.NewToken(token.STRING, `"abc"`, "abc", 2), `STRING "abc" abc`},
		{"keyword", token.NewToken(token.WHILE, "while", nil, 3), "WHILE while nil"},
		{"eof", token.NewToken(token.EOF, "", nil, 4), "EOF  nil"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.tok.String())
		})
	}
}

func TestTokenGoString(t *testing.T) {
	t.Parallel()

	tok := token.NewTokenHeap(token.STRING, `"a"`, "a", 7)
	assert.Equal(t, `{Type: STRING, Lexeme: "\"a\"", Literal: "a", Line: 7}`, tok.GoString())
}

func TestTokenTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "LEFT_PAREN", token.LEFT_PAREN.String())
	assert.Equal(t, "GREATER_EQUAL", token.GREATER_EQUAL.String())
	assert.Equal(t, "IDENTIFIER", token.IDENTIFIER.String())
	assert.Equal(t, "EOF", token.EOF.String())
	assert.Equal(t, "TokenType(-1)", token.TokenType(-1).String())
	assert.Equal(t, "TokenType(1000)", token.TokenType(1000).String())

	for tt := token.LEFT_PAREN; tt <= token.EOF; tt++ {
		assert.NotContains(t, tt.String(), "TokenType(")
	}
}

func TestLookupKeyword(t *testing.T) {
	t.Parallel()

	tt, ok := token.LookupKeyword("class")
	assert.True(t, ok)
	assert.Equal(t, token.CLASS, tt)

	for _, name := range []string{"Class", "classy", "", "break"} {
		_, ok := token.LookupKeyword(name)
		assert.Falsef(t, ok, "%q must not be a keyword", name)
	}
}

func TestKeywords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"and", "class", "else", "false", "for", "fun", "if", "nil",
		"or", "print", "return", "super", "this", "true", "var", "while",
	}, token.Keywords())
}
