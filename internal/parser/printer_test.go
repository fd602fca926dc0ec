package parser_test

import (
	"testing"

	"github.com/leonardinius/loxparse/internal/parser"
	"github.com/leonardinius/loxparse/internal/token"
	"github.com/stretchr/testify/assert"
)

func TestAstPrinterVisitor(t *testing.T) {
	t.Parallel()

	var tree parser.Expr = &parser.Binary{
		Left: &parser.Unary{
			Operator: token.NewTokenHeap(token.MINUS, "-", nil, 1),
			Right: &parser.Literal{
				Value: 123,
			},
		},
		Operator: token.NewTokenHeap(token.STAR, "*", nil, 1),
		Right: &parser.Grouping{
			Expression: &parser.Literal{
				Value: 45.67,
			},
		}}

	p := parser.NewAstPrinter()
	out := p.Print(tree)
	assert.Equal(t, "(* (- 123) (group 45.67))", out)
}

func TestAstPrinterLiterals(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, "nil"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"integer", 1.0, "1"},
		{"decimal", 2.5, "2.5"},
		{"million", 1000000.0, "1000000"},
		{"twelve digits", 123456789012.0, "123456789012"},
		{"small fraction", 0.00001, "0.00001"},
		{"string", "hello world", "hello world"},
		{"empty string", "", ""},
	}

	p := parser.NewAstPrinter()
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, p.Print(&parser.Literal{Value: tc.value}))
		})
	}
}

func TestRPNPrinterVisitor(t *testing.T) {
	t.Parallel()

	// (1 + 2) * (4 - -3)
	var tree parser.Expr = &parser.Binary{
		Left: &parser.Grouping{
			Expression: &parser.Binary{
				Left:     &parser.Literal{Value: 1.0},
				Operator: token.NewTokenHeap(token.PLUS, "+", nil, 1),
				Right:    &parser.Literal{Value: 2.0},
			},
		},
		Operator: token.NewTokenHeap(token.STAR, "*", nil, 1),
		Right: &parser.Grouping{
			Expression: &parser.Binary{
				Left:     &parser.Literal{Value: 4.0},
				Operator: token.NewTokenHeap(token.MINUS, "-", nil, 1),
				Right: &parser.Unary{
					Operator: token.NewTokenHeap(token.MINUS, "-", nil, 1),
					Right:    &parser.Literal{Value: 3.0},
				},
			},
		},
	}

	p := parser.NewRPNPrinter()
	assert.Equal(t, "1 2 + 4 3 ~ - *", p.Print(tree))
}

type nodeCounter struct{}

func (c nodeCounter) VisitBinary(expr *parser.Binary) int {
	return 1 + parser.Accept[int](expr.Left, c) + parser.Accept[int](expr.Right, c)
}

func (c nodeCounter) VisitGrouping(expr *parser.Grouping) int {
	return 1 + parser.Accept[int](expr.Expression, c)
}

func (c nodeCounter) VisitLiteral(*parser.Literal) int {
	return 1
}

func (c nodeCounter) VisitUnary(expr *parser.Unary) int {
	return 1 + parser.Accept[int](expr.Right, c)
}

func TestAcceptDispatchesEveryNodeKind(t *testing.T) {
	t.Parallel()

	tree := &parser.Unary{
		Operator: token.NewTokenHeap(token.BANG, "!", nil, 1),
		Right: &parser.Grouping{
			Expression: &parser.Binary{
				Left:     &parser.Literal{Value: 1.0},
				Operator: token.NewTokenHeap(token.EQUAL_EQUAL, "==", nil, 1),
				Right:    &parser.Literal{Value: 2.0},
			},
		},
	}

	assert.Equal(t, 5, parser.Accept[int](tree, nodeCounter{}))
}
