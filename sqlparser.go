// Package sqlparser ties together lexer, parser, dialect, and writer
// into the four convenience entry points most callers need: Parse,
// ParseStatement, ParseExpr, and Render. Anything beyond that — building a custom
// Parser over an already-tokenized stream, walking the tree with
// package visitor, implementing dialect hooks — is reached by importing
// the subpackages directly.
package sqlparser

import (
	"github.com/pkg/errors"

	"github.com/polysql/sqlparser/ast"
	"github.com/polysql/sqlparser/dialect"
	"github.com/polysql/sqlparser/lexer"
	"github.com/polysql/sqlparser/parser"
	"github.com/polysql/sqlparser/token"
	"github.com/polysql/sqlparser/writer"
)

// Parse tokenizes and parses source as a `;`-separated sequence of
// statements under dialect d. A nil d falls back to
// dialect.DefaultGeneric, the permissive built-in dialect.
func Parse(source string, d dialect.Dialect) ([]ast.Statement, error) {
	d = resolveDialect(d)
	toks, err := tokenize(source, d)
	if err != nil {
		return nil, errors.Wrap(err, "sqlparser: tokenize")
	}
	stmts, err := parser.New(toks, d).Parse()
	if err != nil {
		return nil, errors.Wrap(err, "sqlparser: parse")
	}
	return stmts, nil
}

// ParseStatement parses source as exactly one statement, erroring if
// anything besides a single optional trailing `;` follows it.
func ParseStatement(source string, d dialect.Dialect) (ast.Statement, error) {
	stmts, err := Parse(source, d)
	if err != nil {
		return nil, err
	}
	if len(stmts) != 1 {
		return nil, errors.Errorf("sqlparser: expected exactly one statement, got %d", len(stmts))
	}
	return stmts[0], nil
}

// ParseExpr tokenizes and parses source as a single standalone
// expression, requiring it to consume the entire input.
func ParseExpr(source string, d dialect.Dialect) (ast.Expr, error) {
	d = resolveDialect(d)
	toks, err := tokenize(source, d)
	if err != nil {
		return nil, errors.Wrap(err, "sqlparser: tokenize")
	}
	expr, err := parser.New(toks, d).ParseExpr()
	if err != nil {
		return nil, errors.Wrap(err, "sqlparser: parse expr")
	}
	return expr, nil
}

func tokenize(source string, d dialect.Dialect) ([]token.Token, error) {
	return lexer.New(source, d).Tokenize()
}

func resolveDialect(d dialect.Dialect) dialect.Dialect {
	if d == nil {
		return dialect.DefaultGeneric
	}
	return d
}

// Render writes n back out as canonical SQL text.
func Render(n writer.Renderable) string {
	w := writer.New()
	w.WriteNode(n)
	return w.String()
}
