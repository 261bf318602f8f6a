package visitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polysql/sqlparser/ast"
	"github.com/polysql/sqlparser/visitor"
)

func sampleSelect() *ast.QueryStatement {
	return &ast.QueryStatement{
		Query: &ast.Query{
			Body: &ast.Select{
				Projection: []*ast.SelectItem{
					{Expr: &ast.Identifier{Ident: &ast.Ident{Value: "a"}}},
					{Expr: &ast.Identifier{Ident: &ast.Ident{Value: "b"}}},
				},
				From: []*ast.TableWithJoins{
					{Relation: &ast.Table{Name: ast.NewObjectName("t")}},
				},
				Where: &ast.BinaryOp{
					Left:  &ast.Identifier{Ident: &ast.Ident{Value: "a"}},
					Op:    ast.OpEq,
					Right: &ast.Literal{Kind: ast.LitNumber, Text: "1"},
				},
			},
		},
	}
}

func TestWalkVisitsEveryDescendantPreOrder(t *testing.T) {
	stmt := sampleSelect()
	var kinds []string
	visitor.Walk(stmt, func(n ast.Node) bool {
		kinds = append(kinds, sprintType(n))
		return true
	})
	assert.Contains(t, kinds, "*ast.QueryStatement")
	assert.Contains(t, kinds, "*ast.Query")
	assert.Contains(t, kinds, "*ast.Select")
	assert.Contains(t, kinds, "*ast.BinaryOp")
	assert.Equal(t, "*ast.QueryStatement", kinds[0], "Walk visits node itself first")
}

func TestWalkStopsEarlyWhenFnReturnsFalse(t *testing.T) {
	stmt := sampleSelect()
	visited := 0
	visitor.Walk(stmt, func(n ast.Node) bool {
		visited++
		return visited < 2
	})
	assert.Equal(t, 2, visited)
}

func TestDescendantsCollectsAll(t *testing.T) {
	stmt := sampleSelect()
	all := visitor.Descendants(stmt)
	assert.True(t, len(all) > 3)
}

func TestWalkSkipsNilRoot(t *testing.T) {
	var stmt *ast.QueryStatement
	called := false
	visitor.Walk(stmt, func(n ast.Node) bool {
		called = true
		return true
	})
	assert.False(t, called)
}

func TestVisitIdentityReturnsSamePointer(t *testing.T) {
	stmt := sampleSelect()
	out := visitor.Visit(stmt, visitor.New())
	assert.Same(t, ast.Node(stmt), out)
}

func TestVisitPreVisitExprRewritesAndPropagates(t *testing.T) {
	stmt := sampleSelect()
	v := &visitor.Visitor{
		PreVisitExpr: func(e ast.Expr) ast.Expr {
			if id, ok := e.(*ast.Identifier); ok && id.Ident.Value == "a" {
				return &ast.Identifier{Ident: &ast.Ident{Value: "renamed"}}
			}
			return e
		},
	}
	out := visitor.Visit(stmt, v).(*ast.QueryStatement)
	require.NotSame(t, ast.Node(stmt), ast.Node(out), "a changed descendant forces ancestors to be cloned")

	sel := out.Query.Body.(*ast.Select)
	assert.Equal(t, "renamed", sel.Projection[0].Expr.(*ast.Identifier).Ident.Value)
	assert.Equal(t, "b", sel.Projection[1].Expr.(*ast.Identifier).Ident.Value, "untouched sibling is unaffected")

	where := sel.Where.(*ast.BinaryOp)
	assert.Equal(t, "renamed", where.Left.(*ast.Identifier).Ident.Value)
}

func TestVisitNoOpReturnsOriginalPointer(t *testing.T) {
	stmt := sampleSelect()
	origSelect := stmt.Query.Body.(*ast.Select)
	v := &visitor.Visitor{
		PreVisitExpr: func(e ast.Expr) ast.Expr { return e },
	}
	out := visitor.Visit(stmt, v).(*ast.QueryStatement)
	assert.Same(t, origSelect, out.Query.Body.(*ast.Select), "no descendant changed, so ancestors are untouched")
}

func TestVisitCustomHookByConcreteType(t *testing.T) {
	stmt := sampleSelect()
	v := visitor.New()
	v.RegisterCustomPreVisit(&ast.Table{}, func(n ast.Node) ast.Node {
		_ = n.(*ast.Table)
		return &ast.Table{Name: ast.NewObjectName("rewritten")}
	})
	out := visitor.Visit(stmt, v).(*ast.QueryStatement)
	sel := out.Query.Body.(*ast.Select)
	tbl := sel.From[0].Relation.(*ast.Table)
	assert.Equal(t, "rewritten", tbl.Name.Parts[0].Value)
}

func sprintType(n ast.Node) string {
	switch n.(type) {
	case *ast.QueryStatement:
		return "*ast.QueryStatement"
	case *ast.Query:
		return "*ast.Query"
	case *ast.Select:
		return "*ast.Select"
	case *ast.BinaryOp:
		return "*ast.BinaryOp"
	default:
		return "other"
	}
}
