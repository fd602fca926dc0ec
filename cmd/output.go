package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leonardinius/loxparse/internal/config"
	"github.com/leonardinius/loxparse/internal/parser"
	"github.com/leonardinius/loxparse/internal/token"
)

func (app *LoxApp) printTokens(tokens []token.Token) {
	if app.cfg.Format == config.FormatTable {
		app.printTokenTable(tokens)
		return
	}

	for _, tok := range tokens {
		fmt.Fprintln(app.stdout, tok)
	}
}

func (app *LoxApp) printTokenTable(tokens []token.Token) {
	t := table.NewWriter()
	t.SetOutputMirror(app.stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "TYPE", "LEXEME", "LITERAL", "LINE"})

	for i, tok := range tokens {
		literal := ""
		if tok.Literal != nil {
			literal = token.FormatLiteral(tok.Literal)
		}
		t.AppendRow(table.Row{i, tok.Type, tok.Lexeme, literal, tok.Line})
	}

	t.Render()
}

func (app *LoxApp) printExpr(expr parser.Expr) {
	if app.cfg.Mode == config.ModeRPN {
		fmt.Fprintln(app.stdout, parser.NewRPNPrinter().Print(expr))
		return
	}
	fmt.Fprintln(app.stdout, parser.NewAstPrinter().Print(expr))
}
