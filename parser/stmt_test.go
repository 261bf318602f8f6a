package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polysql/sqlparser/ast"
)

func TestParseInsertValues(t *testing.T) {
	ins := parseOneStatement(t, "INSERT INTO t (a, b) VALUES (1, 2)").(*ast.Insert)
	assert.Equal(t, "t", ins.Table.Parts[0].Value)
	assert.Len(t, ins.Columns, 2)
	require.NotNil(t, ins.Source)
}

func TestParseInsertDefaultValues(t *testing.T) {
	ins := parseOneStatement(t, "INSERT INTO t DEFAULT VALUES").(*ast.Insert)
	assert.Nil(t, ins.Source)
}

func TestParseInsertOnConflictDoUpdate(t *testing.T) {
	ins := parseOneStatement(t,
		"INSERT INTO t (a) VALUES (1) ON CONFLICT (a) DO UPDATE SET a = 2").(*ast.Insert)
	require.NotNil(t, ins.OnConflict)
	assert.False(t, ins.OnConflict.DoNothing)
	assert.Len(t, ins.OnConflict.DoUpdateSet, 1)
}

func TestParseCreateTableConstraints(t *testing.T) {
	ct := parseOneStatement(t,
		"CREATE TABLE t (id INTEGER, CONSTRAINT pk PRIMARY KEY (id))").(*ast.CreateTable)
	require.Len(t, ct.Constraints, 1)
	assert.Equal(t, ast.TableConstraintPrimaryKey, ct.Constraints[0].Kind)
}

func TestParseCreateTableAsSelect(t *testing.T) {
	ct := parseOneStatement(t, "CREATE TABLE t AS SELECT a FROM s").(*ast.CreateTable)
	require.NotNil(t, ct.Query)
	assert.Empty(t, ct.Columns)
}

func TestParseCreateTableIfNotExists(t *testing.T) {
	ct := parseOneStatement(t, "CREATE TABLE IF NOT EXISTS t (id INTEGER)").(*ast.CreateTable)
	assert.True(t, ct.IfNotExists)
}

func TestParseStartTransaction(t *testing.T) {
	st := parseOneStatement(t, "START TRANSACTION").(*ast.StartTransaction)
	assert.Empty(t, st.Modes)
}

func TestParseRollback(t *testing.T) {
	r := parseOneStatement(t, "ROLLBACK").(*ast.Rollback)
	assert.Nil(t, r.SavepointName)
}

func TestParseRollbackToSavepoint(t *testing.T) {
	r := parseOneStatement(t, "ROLLBACK TO SAVEPOINT sp1").(*ast.Rollback)
	require.NotNil(t, r.SavepointName)
	assert.Equal(t, "sp1", r.SavepointName.Value)
}

func TestParseTruncateTable(t *testing.T) {
	tr := parseOneStatement(t, "TRUNCATE TABLE a, b").(*ast.Truncate)
	assert.Len(t, tr.Names, 2)
}

func TestParseDeleteUsing(t *testing.T) {
	d := parseOneStatement(t, "DELETE FROM t USING s WHERE t.id = s.id").(*ast.Delete)
	assert.Len(t, d.Using, 1)
}
