package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polysql/sqlparser/ast"
	"github.com/polysql/sqlparser/dialect"
	"github.com/polysql/sqlparser/lexer"
	"github.com/polysql/sqlparser/parser"
)

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	toks, err := lexer.New(src, dialect.DefaultGeneric).Tokenize()
	require.NoError(t, err)
	expr, err := parser.New(toks, dialect.DefaultGeneric).ParseExpr()
	require.NoError(t, err)
	return expr
}

func parseExprErr(t *testing.T, src string) error {
	t.Helper()
	toks, err := lexer.New(src, dialect.DefaultGeneric).Tokenize()
	require.NoError(t, err)
	_, err = parser.New(toks, dialect.DefaultGeneric).ParseExpr()
	return err
}

func TestParseLiteral(t *testing.T) {
	lit, ok := parseExpr(t, "42").(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, ast.LitNumber, lit.Kind)
	assert.Equal(t, "42", lit.Text)
}

func TestParseMulTighterThanAdd(t *testing.T) {
	bin := parseExpr(t, "1 + 2 * 3").(*ast.BinaryOp)
	assert.Equal(t, ast.OpPlus, bin.Op)
	right := bin.Right.(*ast.BinaryOp)
	assert.Equal(t, ast.OpMul, right.Op)
}

func TestUnaryMinusBindsTighterThanExp(t *testing.T) {
	// -2^2 parses as (-2)^2: unary operators only pull in operators
	// above PrecUnary, and ^ sits below that.
	bin := parseExpr(t, "-2^2").(*ast.BinaryOp)
	assert.Equal(t, ast.OpExp, bin.Op)
	un, ok := bin.Left.(*ast.UnaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpUnaryMinus, un.Op)
}

func TestParseParenthesesOverridePrecedence(t *testing.T) {
	bin := parseExpr(t, "(1 + 2) * 3").(*ast.BinaryOp)
	assert.Equal(t, ast.OpMul, bin.Op)
	_, ok := bin.Left.(*ast.BinaryOp)
	assert.True(t, ok)
}

func TestParseAndBindsTighterThanOr(t *testing.T) {
	bin := parseExpr(t, "a OR b AND c").(*ast.BinaryOp)
	assert.Equal(t, ast.OpOr, bin.Op)
	_, ok := bin.Right.(*ast.BinaryOp)
	assert.True(t, ok)
}

func TestParseNotBindsLooserThanComparison(t *testing.T) {
	// NOT a = b should parse as NOT (a = b).
	un := parseExpr(t, "NOT a = b").(*ast.UnaryOp)
	assert.Equal(t, ast.OpNot, un.Op)
	_, ok := un.Expr.(*ast.BinaryOp)
	assert.True(t, ok)
}

func TestParseBetween(t *testing.T) {
	b := parseExpr(t, "a BETWEEN 1 AND 10").(*ast.Between)
	assert.False(t, b.Negated)
}

func TestParseNotBetween(t *testing.T) {
	b := parseExpr(t, "a NOT BETWEEN 1 AND 10").(*ast.Between)
	assert.True(t, b.Negated)
}

func TestParseInList(t *testing.T) {
	in, ok := parseExpr(t, "a IN (1, 2, 3)").(*ast.InList)
	require.True(t, ok)
	assert.Len(t, in.List, 3)
}

func TestParseInSubquery(t *testing.T) {
	_, ok := parseExpr(t, "a IN (SELECT b FROM t)").(*ast.InSubquery)
	assert.True(t, ok)
}

func TestParseLike(t *testing.T) {
	l, ok := parseExpr(t, "a LIKE '%foo%'").(*ast.Like)
	require.True(t, ok)
	assert.False(t, l.Negated)
}

func TestParseIsNull(t *testing.T) {
	is := parseExpr(t, "a IS NULL").(*ast.Is)
	assert.Equal(t, ast.IsKindNull, is.Kind)
}

func TestParseIsNotNull(t *testing.T) {
	is := parseExpr(t, "a IS NOT NULL").(*ast.Is)
	assert.True(t, is.Negated)
}

func TestParseCastDoubleColon(t *testing.T) {
	cast, ok := parseExpr(t, "a::int").(*ast.Cast)
	require.True(t, ok)
	_, ok = cast.Type.(*ast.Integer)
	assert.True(t, ok)
}

func TestParseSubscript(t *testing.T) {
	_, ok := parseExpr(t, "a[1]").(*ast.ArraySubscript)
	assert.True(t, ok)
}

func TestParseFunctionCallNested(t *testing.T) {
	fc := parseExpr(t, "coalesce(a, b, 0)").(*ast.FunctionCall)
	assert.Equal(t, "coalesce", fc.Name.Parts[len(fc.Name.Parts)-1].Value)
	assert.Len(t, fc.Args, 3)
}

func TestParseSimpleCase(t *testing.T) {
	ce := parseExpr(t, "CASE a WHEN 1 THEN 'one' ELSE 'other' END").(*ast.CaseExpr)
	require.NotNil(t, ce.Operand)
	assert.Len(t, ce.Whens, 1)
}

func TestParseExistsSubquery(t *testing.T) {
	_, ok := parseExpr(t, "EXISTS (SELECT 1 FROM t)").(*ast.Exists)
	assert.True(t, ok)
}

func TestParseRejectsUnexpectedToken(t *testing.T) {
	err := parseExprErr(t, "+")
	assert.Error(t, err)
}

func TestParseRejectsUnclosedParen(t *testing.T) {
	err := parseExprErr(t, "(1 + 2")
	assert.Error(t, err)
}
