package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polysql/sqlparser/ast"
	"github.com/polysql/sqlparser/writer"
)

func render(n writer.Renderable) string {
	w := writer.New()
	w.WriteNode(n)
	return w.String()
}

func TestIdentUnquotedRendersBare(t *testing.T) {
	id := &ast.Ident{Value: "customer_id"}
	assert.Equal(t, "customer_id", render(id))
}

func TestIdentQuotedEscapesClosingDelimiter(t *testing.T) {
	id := &ast.Ident{Value: `say "hi"`, QuoteStyle: '"'}
	assert.Equal(t, `"say ""hi"""`, render(id))
}

func TestIdentBracketQuoteUsesMismatchedCloser(t *testing.T) {
	id := &ast.Ident{Value: "order", QuoteStyle: '['}
	assert.Equal(t, "[order]", render(id))
}

func TestObjectNameJoinsPartsWithDot(t *testing.T) {
	name := ast.NewObjectName("catalog", "schema", "table")
	assert.Equal(t, "catalog.schema.table", render(name))
}

func TestObjectNameSinglePart(t *testing.T) {
	name := ast.NewObjectName("t")
	assert.Equal(t, "t", render(name))
}
