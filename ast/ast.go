// Package ast defines the tagged-variant AST (spec component C3): a
// closed family of immutable node types that are simultaneously
// pattern-matchable (type switch on the concrete struct) and
// structurally traversable (package visitor walks "child" fields,
// discovered via the `sql:"child"` struct tags below).
//
// Every node renders itself to canonical SQL via ToSQL(*writer.Writer)
// (spec component C6); rendering never consults a Dialect because the
// variant chosen at parse time already captures dialect differences
// (e.g. which of the three Array shapes was used).
package ast

import (
	"strings"

	"github.com/polysql/sqlparser/writer"
)

// Node is implemented by every AST value.
type Node interface {
	writer.Renderable
	node()
}

// Statement is a top-level AST node: a complete SQL statement.
type Statement interface {
	Node
	stmtNode()
}

// Expr is an expression-position AST node.
type Expr interface {
	Node
	exprNode()
}

// DataType is a column/cast/declared type.
type DataType interface {
	Node
	dataTypeNode()
}

// TableFactor is anything that can appear in a FROM clause.
type TableFactor interface {
	Node
	tableFactorNode()
}

// Ident is a single textual identifier, with the quote character it was
// written with (0 if unquoted). Doubled-quote escaping inside a quoted
// identifier is resolved into Value at parse time; ToSQL re-doubles it.
type Ident struct {
	Value      string
	QuoteStyle rune // 0, '"', '`', or '['
}

func (i *Ident) node() {}

func (i *Ident) ToSQL(w *writer.Writer) {
	if i.QuoteStyle == 0 {
		w.WriteString(i.Value)
		return
	}
	closer := i.QuoteStyle
	if i.QuoteStyle == '[' {
		closer = ']'
	}
	w.WriteByte(byte(i.QuoteStyle))
	escaped := strings.ReplaceAll(i.Value, string(closer), string(closer)+string(closer))
	w.WriteString(escaped)
	w.WriteByte(byte(closer))
}

// ObjectName is a dotted, possibly-quoted name path, e.g.
// catalog.schema.table. Invariant: len(Parts) >= 1 (spec §3).
type ObjectName struct {
	Parts []*Ident `sql:"child"`
}

func (o *ObjectName) node() {}

func (o *ObjectName) ToSQL(w *writer.Writer) {
	for i, p := range o.Parts {
		if i > 0 {
			w.WriteByte('.')
		}
		p.ToSQL(w)
	}
}

// NewObjectName is a convenience constructor from plain strings,
// producing unquoted Idents.
func NewObjectName(parts ...string) *ObjectName {
	idents := make([]*Ident, len(parts))
	for i, p := range parts {
		idents[i] = &Ident{Value: p}
	}
	return &ObjectName{Parts: idents}
}
