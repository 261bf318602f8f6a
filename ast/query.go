package ast

import (
	"github.com/polysql/sqlparser/writer"
)

// SetExpr is a query body: a Select, a SetOperation combining two query
// bodies, a Values constructor, or a parenthesized Query.
type SetExpr interface {
	Node
	setExprNode()
}

// Query is a complete SELECT-family statement body, covering the
// optional WITH prologue and the trailing ORDER BY/LIMIT/OFFSET/
// FETCH/locking clauses that sit outside the set-operation tree itself.
type Query struct {
	With    *With          `sql:"child,order=0"`
	Body    SetExpr        `sql:"child,order=1"`
	OrderBy []*OrderByExpr `sql:"child,order=2"`
	Limit   Expr           `sql:"child,order=3"`
	Offset  *Offset        `sql:"child,order=4"`
	Fetch   *Fetch         `sql:"child,order=5"`
	Locks   []*Lock        `sql:"child,order=6"`
}

func (n *Query) node() {}

func (n *Query) ToSQL(w *writer.Writer) {
	if n.With != nil {
		n.With.ToSQL(w)
		w.Space()
	}
	n.Body.ToSQL(w)
	if len(n.OrderBy) > 0 {
		w.Keyword(" order by").Space()
		writer.List(w, n.OrderBy, ", ")
	}
	if n.Limit != nil {
		w.Keyword(" limit").Space()
		n.Limit.ToSQL(w)
	}
	if n.Offset != nil {
		w.Space()
		n.Offset.ToSQL(w)
	}
	if n.Fetch != nil {
		w.Space()
		n.Fetch.ToSQL(w)
	}
	for _, l := range n.Locks {
		w.Space()
		l.ToSQL(w)
	}
}

// With is the optional WITH [RECURSIVE] prologue.
type With struct {
	Recursive bool
	CTEs      []*CTE `sql:"child"`
}

func (n *With) node() {}

func (n *With) ToSQL(w *writer.Writer) {
	w.Keyword("with")
	if n.Recursive {
		w.Keyword(" recursive")
	}
	w.Space()
	writer.List(w, n.CTEs, ", ")
}

// CTE is one `name [(cols...)] AS (query)` entry of a With.
type CTE struct {
	Name    *Ident   `sql:"child,order=0"`
	Columns []*Ident `sql:"child,order=1"`
	Query   *Query   `sql:"child,order=2"`
}

func (c *CTE) ToSQL(w *writer.Writer) {
	c.Name.ToSQL(w)
	if len(c.Columns) > 0 {
		w.WriteByte('(')
		writer.List(w, c.Columns, ", ")
		w.WriteByte(')')
	}
	w.Keyword(" as").WriteString(" (")
	c.Query.ToSQL(w)
	w.WriteByte(')')
}

// SelectItem is one projection entry, optionally aliased.
type SelectItem struct {
	Expr  Expr   `sql:"child,order=0"`
	Alias *Ident `sql:"child,order=1"`
}

func (s *SelectItem) ToSQL(w *writer.Writer) {
	s.Expr.ToSQL(w)
	if s.Alias != nil {
		w.Keyword(" as").Space()
		s.Alias.ToSQL(w)
	}
}

// Top is SQL Server's `TOP n [PERCENT] [WITH TIES]` projection modifier.
type Top struct {
	Quantity Expr `sql:"child"`
	Percent  bool
	WithTies bool
}

func (t *Top) ToSQL(w *writer.Writer) {
	w.Keyword("top").WriteByte('(')
	t.Quantity.ToSQL(w)
	w.WriteByte(')')
	if t.Percent {
		w.Keyword(" percent")
	}
	if t.WithTies {
		w.Keyword(" with ties")
	}
}

// NamedWindow is one `name AS (spec)` entry of a WINDOW clause. The
// WINDOW clause is parsed in every dialect;
// SupportsWindowClauseNamedWindowReference only gates bare-name
// references in OVER.
type NamedWindow struct {
	Name *Ident      `sql:"child,order=0"`
	Spec *WindowSpec `sql:"child,order=1"`
}

func (n *NamedWindow) ToSQL(w *writer.Writer) {
	n.Name.ToSQL(w)
	w.Keyword(" as").WriteString(" (")
	n.Spec.ToSQL(w)
	w.WriteByte(')')
}

// Select is a single (non-compound) SELECT body.
type Select struct {
	Distinct     bool
	DistinctOn   []Expr            `sql:"child,order=0"`
	Top          *Top              `sql:"child,order=1"`
	Projection   []*SelectItem     `sql:"child,order=2"`
	Into         *ObjectName       `sql:"child,order=3"`
	From         []*TableWithJoins `sql:"child,order=4"`
	Where        Expr              `sql:"child,order=5"`
	GroupBy      []Expr            `sql:"child,order=6"`
	Having       Expr              `sql:"child,order=7"`
	NamedWindows []*NamedWindow    `sql:"child,order=8"`
}

func (n *Select) node()        {}
func (n *Select) setExprNode() {}

func (n *Select) ToSQL(w *writer.Writer) {
	w.Keyword("select")
	if n.Distinct {
		w.Keyword(" distinct")
		if len(n.DistinctOn) > 0 {
			w.Keyword(" on").WriteByte('(')
			writer.List(w, n.DistinctOn, ", ")
			w.WriteByte(')')
		}
	}
	if n.Top != nil {
		w.Space()
		n.Top.ToSQL(w)
	}
	w.Space()
	writer.List(w, n.Projection, ", ")
	if n.Into != nil {
		w.Keyword(" into").Space()
		n.Into.ToSQL(w)
	}
	if len(n.From) > 0 {
		w.Keyword(" from").Space()
		writer.List(w, n.From, ", ")
	}
	if n.Where != nil {
		w.Keyword(" where").Space()
		n.Where.ToSQL(w)
	}
	if len(n.GroupBy) > 0 {
		w.Keyword(" group by").Space()
		writer.List(w, n.GroupBy, ", ")
	}
	if n.Having != nil {
		w.Keyword(" having").Space()
		n.Having.ToSQL(w)
	}
	if len(n.NamedWindows) > 0 {
		w.Keyword(" window").Space()
		writer.List(w, n.NamedWindows, ", ")
	}
}

// SetOperator enumerates UNION/INTERSECT/EXCEPT.
type SetOperator int

const (
	SetUnion SetOperator = iota
	SetIntersect
	SetExcept
)

var setOperatorText = map[SetOperator]string{
	SetUnion: "union", SetIntersect: "intersect", SetExcept: "except",
}

// SetOperation combines two query bodies; binding strength between
// UNION/EXCEPT and INTERSECT (INTERSECT binds tighter) is resolved by
// the parser's tree shape, not by this node.
type SetOperation struct {
	Left  SetExpr `sql:"child,order=0"`
	Op    SetOperator
	All   bool
	Right SetExpr `sql:"child,order=1"`
}

func (n *SetOperation) node()        {}
func (n *SetOperation) setExprNode() {}

func (n *SetOperation) ToSQL(w *writer.Writer) {
	n.Left.ToSQL(w)
	w.Space().Keyword(setOperatorText[n.Op])
	if n.All {
		w.Keyword(" all")
	}
	w.Space()
	n.Right.ToSQL(w)
}

// ValuesRow is one parenthesized row of a Values constructor.
type ValuesRow struct {
	Exprs []Expr `sql:"child"`
}

func (r *ValuesRow) ToSQL(w *writer.Writer) {
	w.WriteByte('(')
	writer.List(w, r.Exprs, ", ")
	w.WriteByte(')')
}

// Values is a VALUES (...), (...) query body.
type Values struct {
	Rows []*ValuesRow `sql:"child"`
}

func (n *Values) node()        {}
func (n *Values) setExprNode() {}

func (n *Values) ToSQL(w *writer.Writer) {
	w.Keyword("values").Space()
	writer.List(w, n.Rows, ", ")
}

// NestedQuery is a parenthesized query body, e.g. the left operand of
// `(SELECT ...) UNION SELECT ...`.
type NestedQuery struct {
	Query *Query `sql:"child"`
}

func (n *NestedQuery) node()        {}
func (n *NestedQuery) setExprNode() {}

func (n *NestedQuery) ToSQL(w *writer.Writer) {
	w.WriteByte('(')
	n.Query.ToSQL(w)
	w.WriteByte(')')
}

// TableAlias is the `AS name [(col, ...)]` suffix on a table factor.
type TableAlias struct {
	Name    *Ident   `sql:"child,order=0"`
	Columns []*Ident `sql:"child,order=1"`
}

func (a *TableAlias) ToSQL(w *writer.Writer) {
	w.Keyword("as").Space()
	a.Name.ToSQL(w)
	if len(a.Columns) > 0 {
		w.WriteByte('(')
		writer.List(w, a.Columns, ", ")
		w.WriteByte(')')
	}
}

// Table is a plain (possibly aliased) table reference.
type Table struct {
	Name  *ObjectName `sql:"child,order=0"`
	Alias *TableAlias `sql:"child,order=1"`
}

func (n *Table) node()            {}
func (n *Table) tableFactorNode() {}

func (n *Table) ToSQL(w *writer.Writer) {
	n.Name.ToSQL(w)
	if n.Alias != nil {
		w.Space()
		n.Alias.ToSQL(w)
	}
}

// TableFunction is a table-valued function invocation in FROM position.
type TableFunction struct {
	Call  *FunctionCall `sql:"child,order=0"`
	Alias *TableAlias   `sql:"child,order=1"`
}

func (n *TableFunction) node()            {}
func (n *TableFunction) tableFactorNode() {}

func (n *TableFunction) ToSQL(w *writer.Writer) {
	n.Call.ToSQL(w)
	if n.Alias != nil {
		w.Space()
		n.Alias.ToSQL(w)
	}
}

// DerivedTable is a subquery used as a table factor, optionally LATERAL.
type DerivedTable struct {
	Lateral bool
	Query   *Query      `sql:"child,order=0"`
	Alias   *TableAlias `sql:"child,order=1"`
}

func (n *DerivedTable) node()            {}
func (n *DerivedTable) tableFactorNode() {}

func (n *DerivedTable) ToSQL(w *writer.Writer) {
	if n.Lateral {
		w.Keyword("lateral").Space()
	}
	w.WriteByte('(')
	n.Query.ToSQL(w)
	w.WriteByte(')')
	if n.Alias != nil {
		w.Space()
		n.Alias.ToSQL(w)
	}
}

// NestedJoin is a parenthesized join tree used as a table factor.
type NestedJoin struct {
	TableWithJoins *TableWithJoins `sql:"child"`
}

func (n *NestedJoin) node()            {}
func (n *NestedJoin) tableFactorNode() {}

func (n *NestedJoin) ToSQL(w *writer.Writer) {
	w.WriteByte('(')
	n.TableWithJoins.ToSQL(w)
	w.WriteByte(')')
}

// JoinOperator enumerates the supported join kinds.
type JoinOperator int

const (
	JoinInner JoinOperator = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinCross
)

// JoinConstraint is ON expr, USING (cols), or NATURAL (all fields
// zero-valued except Natural).
type JoinConstraint struct {
	On      Expr     `sql:"child,order=0"`
	Using   []*Ident `sql:"child,order=1"`
	Natural bool
}

// Join is one joined table factor plus its operator and constraint.
type Join struct {
	Operator   JoinOperator
	Relation   TableFactor     `sql:"child,order=0"`
	Constraint *JoinConstraint `sql:"child,order=1"`
}

func (j *Join) ToSQL(w *writer.Writer) {
	if j.Constraint != nil && j.Constraint.Natural {
		w.Keyword("natural").Space()
	}
	switch j.Operator {
	case JoinInner:
		w.Keyword("join")
	case JoinLeft:
		w.Keyword("left join")
	case JoinRight:
		w.Keyword("right join")
	case JoinFull:
		w.Keyword("full join")
	case JoinCross:
		w.Keyword("cross join")
	}
	w.Space()
	j.Relation.ToSQL(w)
	if j.Constraint != nil {
		if j.Constraint.On != nil {
			w.Keyword(" on").Space()
			j.Constraint.On.ToSQL(w)
		} else if len(j.Constraint.Using) > 0 {
			w.Keyword(" using").WriteByte('(')
			writer.List(w, j.Constraint.Using, ", ")
			w.WriteByte(')')
		}
	}
}

// TableWithJoins is a FROM-clause entry: a base table factor plus any
// joins chained onto it.
type TableWithJoins struct {
	Relation TableFactor `sql:"child,order=0"`
	Joins    []*Join     `sql:"child,order=1"`
}

func (t *TableWithJoins) ToSQL(w *writer.Writer) {
	t.Relation.ToSQL(w)
	for _, j := range t.Joins {
		w.Space()
		j.ToSQL(w)
	}
}

// OrderByExpr is one ORDER BY entry; Asc/NullsFirst are nil when the
// source left them unspecified (dialect-default rendering omits them).
type OrderByExpr struct {
	Expr       Expr `sql:"child"`
	Asc        *bool
	NullsFirst *bool
}

func (o *OrderByExpr) ToSQL(w *writer.Writer) {
	o.Expr.ToSQL(w)
	if o.Asc != nil {
		if *o.Asc {
			w.Keyword(" asc")
		} else {
			w.Keyword(" desc")
		}
	}
	if o.NullsFirst != nil {
		if *o.NullsFirst {
			w.Keyword(" nulls first")
		} else {
			w.Keyword(" nulls last")
		}
	}
}

// WindowFrameUnit enumerates ROWS/RANGE/GROUPS framing.
type WindowFrameUnit int

const (
	FrameRows WindowFrameUnit = iota
	FrameRange
	FrameGroups
)

// WindowFrameBoundKind enumerates the five bound forms.
type WindowFrameBoundKind int

const (
	BoundCurrentRow WindowFrameBoundKind = iota
	BoundUnboundedPreceding
	BoundUnboundedFollowing
	BoundPreceding
	BoundFollowing
)

// WindowFrameBound is one frame edge; Offset is non-nil only for
// BoundPreceding/BoundFollowing.
type WindowFrameBound struct {
	Kind   WindowFrameBoundKind
	Offset Expr `sql:"child"`
}

func (b *WindowFrameBound) ToSQL(w *writer.Writer) {
	switch b.Kind {
	case BoundCurrentRow:
		w.Keyword("current row")
	case BoundUnboundedPreceding:
		w.Keyword("unbounded preceding")
	case BoundUnboundedFollowing:
		w.Keyword("unbounded following")
	case BoundPreceding:
		b.Offset.ToSQL(w)
		w.Keyword(" preceding")
	case BoundFollowing:
		b.Offset.ToSQL(w)
		w.Keyword(" following")
	}
}

// WindowFrame is the ROWS/RANGE/GROUPS BETWEEN ... AND ... clause of a
// window spec; End is nil for the single-bound form.
type WindowFrame struct {
	Unit  WindowFrameUnit
	Start *WindowFrameBound `sql:"child,order=0"`
	End   *WindowFrameBound `sql:"child,order=1"`
}

func (f *WindowFrame) ToSQL(w *writer.Writer) {
	switch f.Unit {
	case FrameRows:
		w.Keyword("rows")
	case FrameRange:
		w.Keyword("range")
	case FrameGroups:
		w.Keyword("groups")
	}
	w.Space()
	if f.End != nil {
		w.Keyword("between").Space()
		f.Start.ToSQL(w)
		w.Keyword(" and").Space()
		f.End.ToSQL(w)
	} else {
		f.Start.ToSQL(w)
	}
}

// WindowSpec is an OVER (...) clause. Name, when non-nil, is a
// referenced WINDOW-clause name: either alone (a bare `OVER w`, gated by
// SupportsWindowClauseNamedWindowReference) or as the base of a
// parenthesized spec (`OVER (w ORDER BY x)`). A spec holding only Name
// renders as the bare name.
type WindowSpec struct {
	Name        *Ident         `sql:"child,order=0"`
	PartitionBy []Expr         `sql:"child,order=1"`
	OrderBy     []*OrderByExpr `sql:"child,order=2"`
	Frame       *WindowFrame   `sql:"child,order=3"`
}

func (s *WindowSpec) node() {}

func (s *WindowSpec) ToSQL(w *writer.Writer) {
	if s.Name != nil && len(s.PartitionBy) == 0 && len(s.OrderBy) == 0 && s.Frame == nil {
		s.Name.ToSQL(w)
		return
	}
	w.WriteByte('(')
	wrote := false
	if s.Name != nil {
		s.Name.ToSQL(w)
		wrote = true
	}
	if len(s.PartitionBy) > 0 {
		if wrote {
			w.Space()
		}
		w.Keyword("partition by").Space()
		writer.List(w, s.PartitionBy, ", ")
		wrote = true
	}
	if len(s.OrderBy) > 0 {
		if wrote {
			w.Space()
		}
		w.Keyword("order by").Space()
		writer.List(w, s.OrderBy, ", ")
		wrote = true
	}
	if s.Frame != nil {
		if wrote {
			w.Space()
		}
		s.Frame.ToSQL(w)
	}
	w.WriteByte(')')
}

// Offset is the OFFSET n [ROW|ROWS] clause.
type Offset struct {
	Value Expr `sql:"child"`
	Rows  bool
}

func (o *Offset) ToSQL(w *writer.Writer) {
	w.Keyword("offset").Space()
	o.Value.ToSQL(w)
	if o.Rows {
		w.Keyword(" rows")
	} else {
		w.Keyword(" row")
	}
}

// Fetch is the FETCH {FIRST|NEXT} n [PERCENT] {ROW|ROWS} [ONLY|WITH TIES]
// clause.
type Fetch struct {
	Value    Expr `sql:"child"`
	Percent  bool
	WithTies bool
}

func (f *Fetch) ToSQL(w *writer.Writer) {
	w.Keyword("fetch first").Space()
	f.Value.ToSQL(w)
	if f.Percent {
		w.Keyword(" percent")
	}
	w.Keyword(" rows")
	if f.WithTies {
		w.Keyword(" with ties")
	} else {
		w.Keyword(" only")
	}
}

// LockKind distinguishes FOR UPDATE from FOR SHARE.
type LockKind int

const (
	LockUpdate LockKind = iota
	LockShare
)

// Lock is a trailing `FOR UPDATE|SHARE [OF ...] [NOWAIT|SKIP LOCKED]`
// clause.
type Lock struct {
	Kind       LockKind
	Of         []*ObjectName `sql:"child"`
	NoWait     bool
	SkipLocked bool
}

func (l *Lock) ToSQL(w *writer.Writer) {
	w.Keyword("for")
	if l.Kind == LockUpdate {
		w.Keyword(" update")
	} else {
		w.Keyword(" share")
	}
	if len(l.Of) > 0 {
		w.Keyword(" of").Space()
		writer.List(w, l.Of, ", ")
	}
	if l.NoWait {
		w.Keyword(" nowait")
	} else if l.SkipLocked {
		w.Keyword(" skip locked")
	}
}
