// Package parser implements the hand-written, dialect-parameterized
// recursive-descent/Pratt parser (spec component C4). A Parser buffers
// the full token slice produced by package lexer and walks it with an
// index, so Mark/Reset give arbitrary-depth speculative lookahead
// without re-tokenizing (generalizing the teacher's fixed two-token
// peek/peekPeek into an unbounded checkpoint).
//
// The four dialect parser hooks (StatementHook/PrefixHook/InfixHook/
// PrecedenceHook) are declared here, not on dialect.Dialect, to avoid
// an import cycle: a Dialect value may optionally implement one or
// more of them, and the parser checks with a type assertion before
// falling back to its own built-in grammar.
package parser

import (
	"fmt"

	"github.com/polysql/sqlparser/ast"
	"github.com/polysql/sqlparser/dialect"
	"github.com/polysql/sqlparser/token"
)

// ParserError reports a syntax error with its source position. Plain
// error type, no wrapping, matching lexer.TokenizerError's shape.
type ParserError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func errAt(pos token.Position, format string, args ...interface{}) *ParserError {
	return &ParserError{Message: fmt.Sprintf(format, args...), Line: pos.Line, Column: pos.Column}
}

// StatementHook lets a Dialect take over top-level statement dispatch
// before the built-in grammar sees the leading keyword. handled==false
// means "not mine", falling through to the built-in dispatch.
type StatementHook interface {
	ParseStatement(p *Parser) (stmt ast.Statement, handled bool, err error)
}

// PrefixHook lets a Dialect supply a prefix (nud) expression parser
// ahead of the built-in one.
type PrefixHook interface {
	ParsePrefix(p *Parser) (expr ast.Expr, handled bool, err error)
}

// InfixHook lets a Dialect supply an infix (led) expression parser
// ahead of the built-in one, given the already-parsed left operand and
// the precedence the Pratt loop is running at.
type InfixHook interface {
	ParseInfix(p *Parser, left ast.Expr, precedence int) (expr ast.Expr, handled bool, err error)
}

// PrecedenceHook lets a Dialect override the precedence the Pratt loop
// assigns to the upcoming token; ok==false falls through to the
// built-in precedence table.
type PrecedenceHook interface {
	GetNextPrecedence(p *Parser) (precedence int, ok bool)
}

// Mark is an opaque checkpoint returned by Parser.Mark, replayable with
// Parser.Reset for backtracking speculative parses.
type Mark int

// Parser walks a fixed token slice for one dialect.
type Parser struct {
	toks []token.Token
	idx  int
	d    dialect.Dialect
}

// New builds a Parser over toks (normally the output of
// lexer.Lexer.Tokenize, which always ends in a token.EOF) for dialect d.
func New(toks []token.Token, d dialect.Dialect) *Parser {
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		toks = append(append([]token.Token{}, toks...), token.Token{Kind: token.EOF})
	}
	return &Parser{toks: toks, d: d}
}

// Dialect returns the parser's dialect, for hook implementations that
// need to inspect flags mid-parse.
func (p *Parser) Dialect() dialect.Dialect { return p.d }

// Mark returns a checkpoint of the current position.
func (p *Parser) Mark() Mark { return Mark(p.idx) }

// Reset rewinds the parser to a previously taken Mark.
func (p *Parser) Reset(m Mark) { p.idx = int(m) }

func (p *Parser) peek() token.Token { return p.toks[p.idx] }

func (p *Parser) peekN(n int) token.Token {
	i := p.idx + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *Parser) advance() token.Token {
	t := p.toks[p.idx]
	if p.idx < len(p.toks)-1 {
		p.idx++
	}
	return t
}

func (p *Parser) atEOF() bool { return p.peek().Kind == token.EOF }

func (p *Parser) isKeyword(kw token.Keyword) bool {
	t := p.peek()
	return t.Kind == token.Word && t.Keyword == kw
}

func (p *Parser) isKeywordN(n int, kw token.Keyword) bool {
	t := p.peekN(n)
	return t.Kind == token.Word && t.Keyword == kw
}

func (p *Parser) eatKeyword(kw token.Keyword) bool {
	if p.isKeyword(kw) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expectKeyword(kw token.Keyword) error {
	if p.eatKeyword(kw) {
		return nil
	}
	return errAt(p.peek().Pos, "expected %s, found %q", kw, p.peek().String())
}

func (p *Parser) isPunct(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) eatPunct(k token.Kind) bool {
	if p.isPunct(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expectPunct(k token.Kind) error {
	if p.eatPunct(k) {
		return nil
	}
	return errAt(p.peek().Pos, "expected %s, found %q", k, p.peek().String())
}

// parseIdent consumes a single Word token (any keyword is accepted as
// an identifier here too, since most keywords are unreserved in
// practice; reserved-word restrictions are left to the dialect hooks).
func (p *Parser) parseIdent() (*ast.Ident, error) {
	t := p.peek()
	if t.Kind != token.Word {
		return nil, errAt(t.Pos, "expected identifier, found %q", t.String())
	}
	p.advance()
	return &ast.Ident{Value: t.Text, QuoteStyle: rune(t.QuoteStyle)}, nil
}

// parseObjectName parses a dot-separated identifier path.
func (p *Parser) parseObjectName() (*ast.ObjectName, error) {
	first, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	parts := []*ast.Ident{first}
	for p.eatPunct(token.Dot) {
		next, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		parts = append(parts, next)
	}
	return &ast.ObjectName{Parts: parts}, nil
}

// parseIdentList parses a parenthesized, comma-separated identifier
// list, e.g. the column list of a CTE or table alias.
func (p *Parser) parseIdentList() ([]*ast.Ident, error) {
	if err := p.expectPunct(token.LParen); err != nil {
		return nil, err
	}
	var idents []*ast.Ident
	for {
		id, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		idents = append(idents, id)
		if !p.eatPunct(token.Comma) {
			break
		}
	}
	return idents, p.expectPunct(token.RParen)
}

// Parse parses a `;`-separated sequence of statements until EOF.
func (p *Parser) Parse() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for !p.atEOF() {
		for p.eatPunct(token.Semicolon) {
		}
		if p.atEOF() {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if !p.atEOF() && !p.eatPunct(token.Semicolon) {
			return nil, errAt(p.peek().Pos, "expected ';', found %q", p.peek().String())
		}
	}
	return stmts, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	if h, ok := p.d.(StatementHook); ok {
		mark := p.Mark()
		stmt, handled, err := h.ParseStatement(p)
		if handled {
			return stmt, err
		}
		p.Reset(mark)
	}
	return p.parseBuiltinStatement()
}

func (p *Parser) parseBuiltinStatement() (ast.Statement, error) {
	t := p.peek()
	if t.Kind != token.Word {
		return nil, errAt(t.Pos, "expected statement, found %q", t.String())
	}
	switch t.Keyword {
	case token.SELECT, token.WITH, token.VALUES:
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		return &ast.QueryStatement{Query: q}, nil
	case token.INSERT:
		return p.parseInsert()
	case token.UPDATE:
		return p.parseUpdate()
	case token.DELETE:
		return p.parseDelete()
	case token.CREATE:
		return p.parseCreate()
	case token.ALTER:
		return p.parseAlterTable()
	case token.DROP:
		return p.parseDrop()
	case token.TRUNCATE:
		return p.parseTruncate()
	case token.START, token.BEGIN:
		return p.parseStartTransaction()
	case token.COMMIT:
		return p.parseCommit()
	case token.ROLLBACK:
		return p.parseRollback()
	case token.SAVEPOINT:
		return p.parseSavepoint()
	case token.GRANT:
		return p.parseGrant()
	case token.REVOKE:
		return p.parseRevoke()
	case token.USE:
		return p.parseUse()
	case token.EXPLAIN:
		return p.parseExplain()
	case token.SET:
		return p.parseSet()
	}
	return nil, errAt(t.Pos, "unsupported statement keyword %q", t.Text)
}
