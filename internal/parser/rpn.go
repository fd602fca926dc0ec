package parser

import (
	"strings"

	"github.com/leonardinius/loxparse/internal/token"
)

// RPNPrinter renders an expression in reverse Polish notation.
// Groupings vanish and unary minus is written as "~".
type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

func (p *RPNPrinter) Print(expr Expr) string {
	return Accept[string](expr, p)
}

// VisitBinary implements Visitor.
func (p *RPNPrinter) VisitBinary(expr *Binary) string {
	return p.reverse(expr.Operator.Lexeme, expr.Left, expr.Right)
}

// VisitGrouping implements Visitor.
func (p *RPNPrinter) VisitGrouping(expr *Grouping) string {
	return p.reverse("", expr.Expression)
}

// VisitLiteral implements Visitor.
func (p *RPNPrinter) VisitLiteral(expr *Literal) string {
	return literalString(expr.Value)
}

// VisitUnary implements Visitor.
func (p *RPNPrinter) VisitUnary(expr *Unary) string {
	operator := expr.Operator.Lexeme
	if expr.Operator.Type == token.MINUS {
		operator = "~"
	}
	return p.reverse(operator, expr.Right)
}

func (p *RPNPrinter) reverse(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	for _, expr := range exprs {
		_, _ = out.WriteString(Accept[string](expr, p))
		_, _ = out.WriteString(" ")
	}
	_, _ = out.WriteString(name)
	return strings.TrimSuffix(out.String(), " ")
}

var _ Visitor[string] = (*RPNPrinter)(nil)
