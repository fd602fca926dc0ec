package parser

import (
	"strings"

	"github.com/leonardinius/loxparse/internal/token"
)

// AstPrinter renders an expression in fully parenthesized prefix notation,
// e.g. "(* (- 123) (group 45.67))".
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

func (p *AstPrinter) Print(expr Expr) string {
	return Accept[string](expr, p)
}

// VisitBinary implements Visitor.
func (p *AstPrinter) VisitBinary(expr *Binary) string {
	return p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

// VisitGrouping implements Visitor.
func (p *AstPrinter) VisitGrouping(expr *Grouping) string {
	return p.parenthesize("group", expr.Expression)
}

// VisitLiteral implements Visitor.
func (p *AstPrinter) VisitLiteral(expr *Literal) string {
	return literalString(expr.Value)
}

// VisitUnary implements Visitor.
func (p *AstPrinter) VisitUnary(expr *Unary) string {
	return p.parenthesize(expr.Operator.Lexeme, expr.Right)
}

func (p *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, expr := range exprs {
		_, _ = out.WriteString(" ")
		_, _ = out.WriteString(Accept[string](expr, p))
	}
	_, _ = out.WriteString(")")
	return out.String()
}

func literalString(v any) string {
	return token.FormatLiteral(v)
}

var _ Visitor[string] = (*AstPrinter)(nil)
