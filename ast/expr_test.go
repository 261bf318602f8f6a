package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polysql/sqlparser/ast"
)

func TestLiteralKinds(t *testing.T) {
	cases := []struct {
		lit  *ast.Literal
		want string
	}{
		{&ast.Literal{Kind: ast.LitNumber, Text: "42"}, "42"},
		{&ast.Literal{Kind: ast.LitSingleQuotedString, Text: "it's"}, "'it''s'"},
		{&ast.Literal{Kind: ast.LitEscapedString, Text: "doesn't"}, "E'doesn''t'"},
		{&ast.Literal{Kind: ast.LitBoolean, Bool: true}, "TRUE"},
		{&ast.Literal{Kind: ast.LitBoolean, Bool: false}, "FALSE"},
		{&ast.Literal{Kind: ast.LitNull}, "NULL"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, render(c.lit))
	}
}

func TestBinaryOpRendersOperatorWithSpaces(t *testing.T) {
	expr := &ast.BinaryOp{
		Left:  &ast.Identifier{Ident: &ast.Ident{Value: "a"}},
		Op:    ast.OpPlus,
		Right: &ast.Literal{Kind: ast.LitNumber, Text: "1"},
	}
	assert.Equal(t, "a + 1", render(expr))
}

func TestBinaryOpKeywordOperatorUppercases(t *testing.T) {
	expr := &ast.BinaryOp{
		Left:  &ast.Identifier{Ident: &ast.Ident{Value: "a"}},
		Op:    ast.OpAnd,
		Right: &ast.Identifier{Ident: &ast.Ident{Value: "b"}},
	}
	assert.Equal(t, "a AND b", render(expr))
}

func TestUnaryOpNot(t *testing.T) {
	expr := &ast.UnaryOp{Op: ast.OpNot, Expr: &ast.Identifier{Ident: &ast.Ident{Value: "a"}}}
	assert.Equal(t, "NOT a", render(expr))
}

func TestUnaryOpMinus(t *testing.T) {
	expr := &ast.UnaryOp{Op: ast.OpUnaryMinus, Expr: &ast.Literal{Kind: ast.LitNumber, Text: "1"}}
	assert.Equal(t, "-1", render(expr))
}

func TestFunctionCallDistinctAndArgs(t *testing.T) {
	fc := &ast.FunctionCall{
		Name:     ast.NewObjectName("count"),
		Distinct: true,
		Args: []*ast.FunctionArg{
			{Value: &ast.Identifier{Ident: &ast.Ident{Value: "a"}}},
		},
	}
	assert.Equal(t, "count(DISTINCT a)", render(fc))
}

func TestFunctionCallNamedArgWithFatArrow(t *testing.T) {
	fc := &ast.FunctionCall{
		Name: ast.NewObjectName("f"),
		Args: []*ast.FunctionArg{
			{Name: &ast.Ident{Value: "x"}, UseFatArrow: true, Value: &ast.Literal{Kind: ast.LitNumber, Text: "1"}},
		},
	}
	assert.Equal(t, "f(x => 1)", render(fc))
}

func TestCaseExprSearchedForm(t *testing.T) {
	ce := &ast.CaseExpr{
		Whens: []*ast.WhenClause{
			{
				Cond:   &ast.Identifier{Ident: &ast.Ident{Value: "a"}},
				Result: &ast.Literal{Kind: ast.LitNumber, Text: "1"},
			},
		},
		Else: &ast.Literal{Kind: ast.LitNumber, Text: "0"},
	}
	assert.Equal(t, "CASE WHEN a THEN 1 ELSE 0 END", render(ce))
}

func TestCastRendersAsClause(t *testing.T) {
	c := &ast.Cast{
		Expr: &ast.Identifier{Ident: &ast.Ident{Value: "a"}},
		Type: &ast.Integer{Kind: ast.IntInteger},
	}
	assert.Equal(t, "CAST(a AS INTEGER)", render(c))
}

func TestBetweenNegated(t *testing.T) {
	b := &ast.Between{
		Expr:    &ast.Identifier{Ident: &ast.Ident{Value: "a"}},
		Low:     &ast.Literal{Kind: ast.LitNumber, Text: "1"},
		High:    &ast.Literal{Kind: ast.LitNumber, Text: "10"},
		Negated: true,
	}
	assert.Equal(t, "a NOT BETWEEN 1 AND 10", render(b))
}

func TestIsDistinctFrom(t *testing.T) {
	is := &ast.Is{
		Expr:  &ast.Identifier{Ident: &ast.Ident{Value: "a"}},
		Kind:  ast.IsKindDistinctFrom,
		Other: &ast.Identifier{Ident: &ast.Ident{Value: "b"}},
	}
	assert.Equal(t, "a IS DISTINCT FROM b", render(is))
}

func TestQualifiedWildcard(t *testing.T) {
	qw := &ast.QualifiedWildcard{Qualifier: ast.NewObjectName("a", "b")}
	assert.Equal(t, "a.b.*", render(qw))
}

func TestArrayExprNamed(t *testing.T) {
	arr := &ast.ArrayExpr{
		Named: true,
		Elems: []ast.Expr{
			&ast.Literal{Kind: ast.LitNumber, Text: "1"},
			&ast.Literal{Kind: ast.LitNumber, Text: "2"},
		},
	}
	assert.Equal(t, "ARRAY[1, 2]", render(arr))
}
