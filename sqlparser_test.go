package sqlparser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polysql/sqlparser"
	"github.com/polysql/sqlparser/ast"
	"github.com/polysql/sqlparser/dialect"
)

func TestParseSimpleSelect(t *testing.T) {
	stmts, err := sqlparser.Parse("SELECT a, b FROM t WHERE a = 1", nil)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	qs, ok := stmts[0].(*ast.QueryStatement)
	require.True(t, ok)
	sel, ok := qs.Query.Body.(*ast.Select)
	require.True(t, ok)
	assert.Len(t, sel.Projection, 2)
}

func TestParseMultipleStatements(t *testing.T) {
	stmts, err := sqlparser.Parse("SELECT 1; SELECT 2;", nil)
	require.NoError(t, err)
	assert.Len(t, stmts, 2)
}

func TestParseStatementRejectsMultiple(t *testing.T) {
	_, err := sqlparser.ParseStatement("SELECT 1; SELECT 2;", nil)
	assert.Error(t, err)
}

func TestParseErrorReportsPosition(t *testing.T) {
	_, err := sqlparser.Parse("SELECT FROM", nil)
	require.Error(t, err)
}

func TestParseExprSimple(t *testing.T) {
	expr, err := sqlparser.ParseExpr("1 + 2 * 3", nil)
	require.NoError(t, err)
	bin, ok := expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpPlus, bin.Op)
	// 2 * 3 should bind tighter than 1 +, so the right side is itself a BinaryOp.
	_, ok = bin.Right.(*ast.BinaryOp)
	assert.True(t, ok)
}

func TestParseExprRejectsTrailingInput(t *testing.T) {
	_, err := sqlparser.ParseExpr("1 + 2 extra", nil)
	assert.Error(t, err)
}

func TestRenderRoundTripsSelect(t *testing.T) {
	stmts, err := sqlparser.Parse("SELECT a FROM t WHERE a = 1", nil)
	require.NoError(t, err)
	out := sqlparser.Render(stmts[0])
	assert.Equal(t, "SELECT a FROM t WHERE a = 1", out)
}

func TestRenderRoundTripsJoinAndOrderBy(t *testing.T) {
	src := "SELECT a.x FROM a JOIN b ON a.id = b.id ORDER BY a.x DESC"
	stmts, err := sqlparser.Parse(src, nil)
	require.NoError(t, err)
	out := sqlparser.Render(stmts[0])
	assert.Equal(t, src, out)
}

func TestParseInsertWithOnConflict(t *testing.T) {
	stmts, err := sqlparser.Parse(
		"INSERT INTO t (a, b) VALUES (1, 2) ON CONFLICT (a) DO NOTHING", nil)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	ins, ok := stmts[0].(*ast.Insert)
	require.True(t, ok)
	assert.NotNil(t, ins.OnConflict)
}

func TestParseCTE(t *testing.T) {
	stmts, err := sqlparser.Parse("WITH cte AS (SELECT 1 AS x) SELECT x FROM cte", nil)
	require.NoError(t, err)
	qs := stmts[0].(*ast.QueryStatement)
	require.NotNil(t, qs.Query.With)
	assert.Len(t, qs.Query.With.CTEs, 1)
}

func TestParseUnionBindsLooserThanIntersect(t *testing.T) {
	// a UNION b INTERSECT c should parse as a UNION (b INTERSECT c).
	stmts, err := sqlparser.Parse("SELECT a FROM x UNION SELECT b FROM y INTERSECT SELECT c FROM z", nil)
	require.NoError(t, err)
	qs := stmts[0].(*ast.QueryStatement)
	top, ok := qs.Query.Body.(*ast.SetOperation)
	require.True(t, ok)
	assert.Equal(t, ast.SetUnion, top.Op)
	_, ok = top.Right.(*ast.SetOperation)
	require.True(t, ok, "right side of the UNION should itself be the INTERSECT")
}

func TestParseWindowFunction(t *testing.T) {
	stmts, err := sqlparser.Parse(
		"SELECT row_number() OVER (PARTITION BY a ORDER BY b) FROM t", nil)
	require.NoError(t, err)
	qs := stmts[0].(*ast.QueryStatement)
	sel := qs.Query.Body.(*ast.Select)
	fc := sel.Projection[0].Expr.(*ast.FunctionCall)
	require.NotNil(t, fc.Over)
}

func TestParseCreateTable(t *testing.T) {
	stmts, err := sqlparser.Parse(
		"CREATE TABLE t (id INTEGER PRIMARY KEY, name VARCHAR(50) NOT NULL)", nil)
	require.NoError(t, err)
	ct, ok := stmts[0].(*ast.CreateTable)
	require.True(t, ok)
	assert.Len(t, ct.Columns, 2)
}

func TestParseCreateTableWithArrayColumns(t *testing.T) {
	stmts, err := sqlparser.Parse("CREATE TABLE t (a INT ARRAY[3], b INT[])", nil)
	require.NoError(t, err)
	ct, ok := stmts[0].(*ast.CreateTable)
	require.True(t, ok)
	require.Len(t, ct.Columns, 2)
	_, ok = ct.Columns[0].Type.(*ast.Array)
	assert.True(t, ok)
	_, ok = ct.Columns[1].Type.(*ast.Array)
	assert.True(t, ok)
}

func TestParseArraySubscriptExpr(t *testing.T) {
	expr, err := sqlparser.ParseExpr("a[1]", nil)
	require.NoError(t, err)
	_, ok := expr.(*ast.ArraySubscript)
	assert.True(t, ok)
}

func TestParseCastExpression(t *testing.T) {
	expr, err := sqlparser.ParseExpr("CAST(a AS INTEGER)", nil)
	require.NoError(t, err)
	cast, ok := expr.(*ast.Cast)
	require.True(t, ok)
	_, ok = cast.Type.(*ast.Integer)
	assert.True(t, ok)
}

func TestParseQualifiedWildcard(t *testing.T) {
	stmts, err := sqlparser.Parse("SELECT a.* FROM a", nil)
	require.NoError(t, err)
	sel := stmts[0].(*ast.QueryStatement).Query.Body.(*ast.Select)
	_, ok := sel.Projection[0].Expr.(*ast.QualifiedWildcard)
	assert.True(t, ok)
}

func TestParseCommitAndNoChain(t *testing.T) {
	stmts, err := sqlparser.Parse("COMMIT", nil)
	require.NoError(t, err)
	c, ok := stmts[0].(*ast.Commit)
	require.True(t, ok)
	assert.False(t, c.Chain)

	stmts, err = sqlparser.Parse("COMMIT AND CHAIN", nil)
	require.NoError(t, err)
	c = stmts[0].(*ast.Commit)
	assert.True(t, c.Chain)

	stmts, err = sqlparser.Parse("COMMIT AND NO CHAIN", nil)
	require.NoError(t, err)
	c = stmts[0].(*ast.Commit)
	assert.False(t, c.Chain)
}

func TestParseRespectsDialectFlags(t *testing.T) {
	strict := dialect.NewGeneric(dialect.Flags{})
	_, err := sqlparser.Parse("SELECT f(a) FILTER (WHERE a > 1) FROM t", strict)
	assert.Error(t, err, "FILTER should be rejected when SupportsFilterDuringAggregation is off")

	_, err = sqlparser.Parse("SELECT f(a) FILTER (WHERE a > 1) FROM t", dialect.DefaultGeneric)
	assert.NoError(t, err)
}
