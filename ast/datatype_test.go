package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polysql/sqlparser/ast"
)

func TestArrayAngleShape(t *testing.T) {
	arr := &ast.Array{Elem: &ast.Integer{Kind: ast.IntInteger}, Shape: ast.ArrayAngle}
	assert.Equal(t, "ARRAY<INTEGER>", render(arr))
}

func TestArraySquareShapeWithSize(t *testing.T) {
	n := 5
	arr := &ast.Array{Elem: &ast.Char{Kind: ast.CharVarchar}, Shape: ast.ArraySquare, Size: &n}
	assert.Equal(t, "VARCHAR[5]", render(arr))
}

func TestArraySquareShapeNoSize(t *testing.T) {
	arr := &ast.Array{Elem: &ast.Integer{Kind: ast.IntInteger}, Shape: ast.ArraySquare}
	assert.Equal(t, "INTEGER[]", render(arr))
}

func TestArrayParenShapeRendersPostfix(t *testing.T) {
	arr := &ast.Array{Elem: &ast.Integer{Kind: ast.IntInteger}, Shape: ast.ArrayParen}
	assert.Equal(t, "INTEGER ARRAY", render(arr))
}

func TestUserDefinedType(t *testing.T) {
	ud := &ast.UserDefined{Name: ast.NewObjectName("geography")}
	assert.Equal(t, "geography", render(ud))
}

func TestDecimalWithPrecisionAndScale(t *testing.T) {
	p, s := 10, 2
	dec := &ast.Decimal{Numeric: true, Precision: &p, Scale: &s}
	assert.Equal(t, "NUMERIC(10, 2)", render(dec))
}
