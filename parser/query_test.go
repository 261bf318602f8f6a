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

func parseOneStatement(t *testing.T, src string) ast.Statement {
	t.Helper()
	toks, err := lexer.New(src, dialect.DefaultGeneric).Tokenize()
	require.NoError(t, err)
	stmts, err := parser.New(toks, dialect.DefaultGeneric).Parse()
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	return stmts[0]
}

func selectBody(t *testing.T, src string) *ast.Select {
	t.Helper()
	qs, ok := parseOneStatement(t, src).(*ast.QueryStatement)
	require.True(t, ok)
	sel, ok := qs.Query.Body.(*ast.Select)
	require.True(t, ok)
	return sel
}

func TestParseSelectProjectionAlias(t *testing.T) {
	sel := selectBody(t, "SELECT a AS x FROM t")
	require.Len(t, sel.Projection, 1)
	require.NotNil(t, sel.Projection[0].Alias)
	assert.Equal(t, "x", sel.Projection[0].Alias.Value)
}

func TestParseSelectDistinct(t *testing.T) {
	sel := selectBody(t, "SELECT DISTINCT a FROM t")
	assert.True(t, sel.Distinct)
}

func TestParseSelectWhereGroupByHaving(t *testing.T) {
	sel := selectBody(t, "SELECT a, count(*) FROM t WHERE a > 1 GROUP BY a HAVING count(*) > 1")
	require.NotNil(t, sel.Where)
	assert.Len(t, sel.GroupBy, 1)
	require.NotNil(t, sel.Having)
}

func TestParseSelectInnerJoin(t *testing.T) {
	sel := selectBody(t, "SELECT a FROM x JOIN y ON x.id = y.id")
	require.Len(t, sel.From, 1)
	require.Len(t, sel.From[0].Joins, 1)
	assert.Equal(t, ast.JoinInner, sel.From[0].Joins[0].Operator)
}

func TestParseSelectLeftJoin(t *testing.T) {
	sel := selectBody(t, "SELECT a FROM x LEFT JOIN y ON x.id = y.id")
	assert.Equal(t, ast.JoinLeft, sel.From[0].Joins[0].Operator)
}

func TestParseSelectJoinUsing(t *testing.T) {
	sel := selectBody(t, "SELECT a FROM x JOIN y USING (id)")
	join := sel.From[0].Joins[0]
	require.NotNil(t, join.Constraint)
	assert.Len(t, join.Constraint.Using, 1)
}

func TestParseSelectMultipleFromItemsCommaJoin(t *testing.T) {
	sel := selectBody(t, "SELECT a FROM x, y")
	assert.Len(t, sel.From, 2)
}

func TestParseOrderByDescNullsLast(t *testing.T) {
	qs := parseOneStatement(t, "SELECT a FROM t ORDER BY a DESC NULLS LAST").(*ast.QueryStatement)
	require.Len(t, qs.Query.OrderBy, 1)
	ob := qs.Query.OrderBy[0]
	require.NotNil(t, ob.Asc)
	assert.False(t, *ob.Asc)
	require.NotNil(t, ob.NullsFirst)
	assert.False(t, *ob.NullsFirst)
}

func TestParseLimitOffset(t *testing.T) {
	qs := parseOneStatement(t, "SELECT a FROM t LIMIT 10 OFFSET 5").(*ast.QueryStatement)
	require.NotNil(t, qs.Query.Limit)
	require.NotNil(t, qs.Query.Offset)
}

func TestParseDerivedTable(t *testing.T) {
	sel := selectBody(t, "SELECT a FROM (SELECT 1 AS a) AS sub")
	dt, ok := sel.From[0].Relation.(*ast.DerivedTable)
	require.True(t, ok)
	require.NotNil(t, dt.Alias)
	assert.Equal(t, "sub", dt.Alias.Name.Value)
}

func TestParseValuesConstructor(t *testing.T) {
	qs := parseOneStatement(t, "VALUES (1, 2), (3, 4)").(*ast.QueryStatement)
	vals, ok := qs.Query.Body.(*ast.Values)
	require.True(t, ok)
	assert.Len(t, vals.Rows, 2)
}

func TestParseUpdate(t *testing.T) {
	u := parseOneStatement(t, "UPDATE t SET a = 1, b = 2 WHERE a = 0").(*ast.Update)
	assert.Len(t, u.Assignments, 2)
	require.NotNil(t, u.Where)
}

func TestParseDelete(t *testing.T) {
	d := parseOneStatement(t, "DELETE FROM t WHERE a = 1").(*ast.Delete)
	require.NotNil(t, d.Where)
}

func TestParseNestedJoinParens(t *testing.T) {
	sel := selectBody(t, "SELECT a FROM (x JOIN y ON x.id = y.id)")
	_, ok := sel.From[0].Relation.(*ast.NestedJoin)
	assert.True(t, ok)
}

func TestParseRejectsMissingFrom(t *testing.T) {
	toks, err := lexer.New("SELECT a FROM", dialect.DefaultGeneric).Tokenize()
	require.NoError(t, err)
	_, err = parser.New(toks, dialect.DefaultGeneric).Parse()
	assert.Error(t, err)
}
