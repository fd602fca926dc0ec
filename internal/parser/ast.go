package parser

import (
	"fmt"

	"github.com/leonardinius/loxparse/internal/token"
)

// Expr is a node of the expression tree.
//
// The set of node kinds is closed: only the types in this file implement
// Expr. Nodes are never mutated once the parser has built them.
type Expr interface {
	expr()
}

type Binary struct {
	Left     Expr
	Operator *token.Token
	Right    Expr
}

type Grouping struct {
	Expression Expr
}

// Literal holds nil, bool, string or float64.
type Literal struct {
	Value any
}

type Unary struct {
	Operator *token.Token
	Right    Expr
}

func (*Binary) expr()   {}
func (*Grouping) expr() {}
func (*Literal) expr()  {}
func (*Unary) expr()    {}

var _ Expr = (*Binary)(nil)
var _ Expr = (*Grouping)(nil)
var _ Expr = (*Literal)(nil)
var _ Expr = (*Unary)(nil)

// Visitor is the interface that wraps the Visit methods, one per node kind.
type Visitor[R any] interface {
	VisitBinary(expr *Binary) R
	VisitGrouping(expr *Grouping) R
	VisitLiteral(expr *Literal) R
	VisitUnary(expr *Unary) R
}

// Accept dispatches expr to the matching Visit method of v.
func Accept[R any](expr Expr, v Visitor[R]) R {
	switch e := expr.(type) {
	case *Binary:
		return v.VisitBinary(e)
	case *Grouping:
		return v.VisitGrouping(e)
	case *Literal:
		return v.VisitLiteral(e)
	case *Unary:
		return v.VisitUnary(e)
	default:
		panic(fmt.Sprintf("parser: unexpected expression %T", expr))
	}
}
