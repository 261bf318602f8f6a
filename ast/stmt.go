package ast

import "github.com/polysql/sqlparser/writer"

// QueryStatement wraps a top-level SELECT/VALUES/set-operation Query as
// a Statement (every other Query appears nested: CTE body, subquery,
// INSERT source, ...).
type QueryStatement struct {
	Query *Query `sql:"child"`
}

func (n *QueryStatement) node()     {}
func (n *QueryStatement) stmtNode() {}
func (n *QueryStatement) ToSQL(w *writer.Writer) { n.Query.ToSQL(w) }

// Assignment is one `target = value` pair, used by UPDATE and the
// ON CONFLICT DO UPDATE SET clause.
type Assignment struct {
	Target *Ident `sql:"child,order=0"`
	Value  Expr   `sql:"child,order=1"`
}

func (a *Assignment) ToSQL(w *writer.Writer) {
	a.Target.ToSQL(w)
	w.WriteString(" = ")
	a.Value.ToSQL(w)
}

// OnConflict is INSERT's `ON CONFLICT [(cols)] DO {NOTHING|UPDATE SET ...}`.
type OnConflict struct {
	Columns     []*Ident      `sql:"child,order=0"`
	DoNothing   bool
	DoUpdateSet []*Assignment `sql:"child,order=1"`
	Where       Expr          `sql:"child,order=2"`
}

func (o *OnConflict) ToSQL(w *writer.Writer) {
	w.Keyword("on conflict")
	if len(o.Columns) > 0 {
		w.WriteByte('(')
		writer.List(w, o.Columns, ", ")
		w.WriteByte(')')
	}
	w.Keyword(" do")
	if o.DoNothing {
		w.Keyword(" nothing")
		return
	}
	w.Keyword(" update set").Space()
	writer.List(w, o.DoUpdateSet, ", ")
	if o.Where != nil {
		w.Keyword(" where").Space()
		o.Where.ToSQL(w)
	}
}

// Insert is INSERT INTO table [(cols)] {source | DEFAULT VALUES}
// [ON CONFLICT ...] [RETURNING ...]. Source is nil only for
// DEFAULT VALUES.
type Insert struct {
	Table        *ObjectName   `sql:"child,order=0"`
	Columns      []*Ident      `sql:"child,order=1"`
	Source       *Query        `sql:"child,order=2"`
	OnConflict   *OnConflict   `sql:"child,order=3"`
	Returning    []*SelectItem `sql:"child,order=4"`
}

func (n *Insert) node()     {}
func (n *Insert) stmtNode() {}

func (n *Insert) ToSQL(w *writer.Writer) {
	w.Keyword("insert into").Space()
	n.Table.ToSQL(w)
	if len(n.Columns) > 0 {
		w.WriteByte('(')
		writer.List(w, n.Columns, ", ")
		w.WriteByte(')')
	}
	if n.Source == nil {
		w.Keyword(" default values")
	} else {
		w.Space()
		n.Source.ToSQL(w)
	}
	if n.OnConflict != nil {
		w.Space()
		n.OnConflict.ToSQL(w)
	}
	if len(n.Returning) > 0 {
		w.Keyword(" returning").Space()
		writer.List(w, n.Returning, ", ")
	}
}

// Update is UPDATE table SET assignments [FROM ...] [WHERE ...]
// [RETURNING ...].
type Update struct {
	Table       *TableWithJoins `sql:"child,order=0"`
	Assignments []*Assignment   `sql:"child,order=1"`
	From        []*TableWithJoins `sql:"child,order=2"`
	Where       Expr            `sql:"child,order=3"`
	Returning   []*SelectItem   `sql:"child,order=4"`
}

func (n *Update) node()     {}
func (n *Update) stmtNode() {}

func (n *Update) ToSQL(w *writer.Writer) {
	w.Keyword("update").Space()
	n.Table.ToSQL(w)
	w.Keyword(" set").Space()
	writer.List(w, n.Assignments, ", ")
	if len(n.From) > 0 {
		w.Keyword(" from").Space()
		writer.List(w, n.From, ", ")
	}
	if n.Where != nil {
		w.Keyword(" where").Space()
		n.Where.ToSQL(w)
	}
	if len(n.Returning) > 0 {
		w.Keyword(" returning").Space()
		writer.List(w, n.Returning, ", ")
	}
}

// Delete is DELETE FROM table [USING ...] [WHERE ...] [RETURNING ...].
type Delete struct {
	Table     *TableWithJoins   `sql:"child,order=0"`
	Using     []*TableWithJoins `sql:"child,order=1"`
	Where     Expr              `sql:"child,order=2"`
	Returning []*SelectItem     `sql:"child,order=3"`
}

func (n *Delete) node()     {}
func (n *Delete) stmtNode() {}

func (n *Delete) ToSQL(w *writer.Writer) {
	w.Keyword("delete from").Space()
	n.Table.ToSQL(w)
	if len(n.Using) > 0 {
		w.Keyword(" using").Space()
		writer.List(w, n.Using, ", ")
	}
	if n.Where != nil {
		w.Keyword(" where").Space()
		n.Where.ToSQL(w)
	}
	if len(n.Returning) > 0 {
		w.Keyword(" returning").Space()
		writer.List(w, n.Returning, ", ")
	}
}

// ColumnOptionKind enumerates the per-column constraint forms.
type ColumnOptionKind int

const (
	ColumnNotNull ColumnOptionKind = iota
	ColumnNull
	ColumnDefault
	ColumnPrimaryKey
	ColumnUnique
	ColumnCheck
	ColumnReferences
)

// ColumnOption is one inline column constraint/default.
type ColumnOption struct {
	Kind       ColumnOptionKind
	Expr       Expr        `sql:"child,order=0"`
	RefTable   *ObjectName `sql:"child,order=1"`
	RefColumns []*Ident    `sql:"child,order=2"`
}

func (o *ColumnOption) ToSQL(w *writer.Writer) {
	switch o.Kind {
	case ColumnNotNull:
		w.Keyword("not null")
	case ColumnNull:
		w.Keyword("null")
	case ColumnDefault:
		w.Keyword("default").Space()
		o.Expr.ToSQL(w)
	case ColumnPrimaryKey:
		w.Keyword("primary key")
	case ColumnUnique:
		w.Keyword("unique")
	case ColumnCheck:
		w.Keyword("check").WriteByte('(')
		o.Expr.ToSQL(w)
		w.WriteByte(')')
	case ColumnReferences:
		w.Keyword("references").Space()
		o.RefTable.ToSQL(w)
		if len(o.RefColumns) > 0 {
			w.WriteByte('(')
			writer.List(w, o.RefColumns, ", ")
			w.WriteByte(')')
		}
	}
}

// ColumnDef is one column entry of a CREATE TABLE.
type ColumnDef struct {
	Name    *Ident          `sql:"child,order=0"`
	Type    DataType        `sql:"child,order=1"`
	Options []*ColumnOption `sql:"child,order=2"`
}

func (c *ColumnDef) ToSQL(w *writer.Writer) {
	c.Name.ToSQL(w)
	w.Space()
	c.Type.ToSQL(w)
	for _, opt := range c.Options {
		w.Space()
		opt.ToSQL(w)
	}
}

// TableConstraintKind enumerates table-level constraint forms.
type TableConstraintKind int

const (
	TableConstraintPrimaryKey TableConstraintKind = iota
	TableConstraintUnique
	TableConstraintForeignKey
	TableConstraintCheck
)

// TableConstraint is one table-level constraint of a CREATE TABLE.
type TableConstraint struct {
	Name       *Ident              `sql:"child,order=0"`
	Kind       TableConstraintKind
	Columns    []*Ident            `sql:"child,order=1"`
	RefTable   *ObjectName         `sql:"child,order=2"`
	RefColumns []*Ident            `sql:"child,order=3"`
	Check      Expr                `sql:"child,order=4"`
}

func (c *TableConstraint) ToSQL(w *writer.Writer) {
	if c.Name != nil {
		w.Keyword("constraint").Space()
		c.Name.ToSQL(w)
		w.Space()
	}
	switch c.Kind {
	case TableConstraintPrimaryKey:
		w.Keyword("primary key").WriteByte('(')
		writer.List(w, c.Columns, ", ")
		w.WriteByte(')')
	case TableConstraintUnique:
		w.Keyword("unique").WriteByte('(')
		writer.List(w, c.Columns, ", ")
		w.WriteByte(')')
	case TableConstraintForeignKey:
		w.Keyword("foreign key").WriteByte('(')
		writer.List(w, c.Columns, ", ")
		w.WriteString(") ").Keyword("references").Space()
		c.RefTable.ToSQL(w)
		w.WriteByte('(')
		writer.List(w, c.RefColumns, ", ")
		w.WriteByte(')')
	case TableConstraintCheck:
		w.Keyword("check").WriteByte('(')
		c.Check.ToSQL(w)
		w.WriteByte(')')
	}
}

// CreateTable is CREATE [TEMPORARY] TABLE [IF NOT EXISTS] name
// (columns, constraints) or CREATE TABLE name AS query.
type CreateTable struct {
	Temporary   bool
	IfNotExists bool
	Name        *ObjectName        `sql:"child,order=0"`
	Columns     []*ColumnDef       `sql:"child,order=1"`
	Constraints []*TableConstraint `sql:"child,order=2"`
	Query       *Query             `sql:"child,order=3"`
}

func (n *CreateTable) node()     {}
func (n *CreateTable) stmtNode() {}

func (n *CreateTable) ToSQL(w *writer.Writer) {
	w.Keyword("create")
	if n.Temporary {
		w.Keyword(" temporary")
	}
	w.Keyword(" table")
	if n.IfNotExists {
		w.Keyword(" if not exists")
	}
	w.Space()
	n.Name.ToSQL(w)
	if n.Query != nil {
		w.Keyword(" as").Space()
		n.Query.ToSQL(w)
		return
	}
	w.WriteByte('(')
	writer.List(w, n.Columns, ", ")
	if len(n.Constraints) > 0 {
		if len(n.Columns) > 0 {
			w.WriteString(", ")
		}
		writer.List(w, n.Constraints, ", ")
	}
	w.WriteByte(')')
}

// CreateView is CREATE [OR REPLACE] [MATERIALIZED] VIEW name [(cols)]
// AS query.
type CreateView struct {
	OrReplace    bool
	Materialized bool
	Name         *ObjectName `sql:"child,order=0"`
	Columns      []*Ident    `sql:"child,order=1"`
	Query        *Query      `sql:"child,order=2"`
}

func (n *CreateView) node()     {}
func (n *CreateView) stmtNode() {}

func (n *CreateView) ToSQL(w *writer.Writer) {
	w.Keyword("create")
	if n.OrReplace {
		w.Keyword(" or replace")
	}
	if n.Materialized {
		w.Keyword(" materialized")
	}
	w.Keyword(" view").Space()
	n.Name.ToSQL(w)
	if len(n.Columns) > 0 {
		w.WriteByte('(')
		writer.List(w, n.Columns, ", ")
		w.WriteByte(')')
	}
	w.Keyword(" as").Space()
	n.Query.ToSQL(w)
}

// CreateIndex is CREATE [UNIQUE] INDEX [IF NOT EXISTS] name ON table
// (cols) [WHERE predicate].
type CreateIndex struct {
	Unique      bool
	IfNotExists bool
	Name        *Ident         `sql:"child,order=0"`
	Table       *ObjectName    `sql:"child,order=1"`
	Columns     []*OrderByExpr `sql:"child,order=2"`
	Where       Expr           `sql:"child,order=3"`
}

func (n *CreateIndex) node()     {}
func (n *CreateIndex) stmtNode() {}

func (n *CreateIndex) ToSQL(w *writer.Writer) {
	w.Keyword("create")
	if n.Unique {
		w.Keyword(" unique")
	}
	w.Keyword(" index")
	if n.IfNotExists {
		w.Keyword(" if not exists")
	}
	w.Space()
	n.Name.ToSQL(w)
	w.Keyword(" on").Space()
	n.Table.ToSQL(w)
	w.WriteByte('(')
	writer.List(w, n.Columns, ", ")
	w.WriteByte(')')
	if n.Where != nil {
		w.Keyword(" where").Space()
		n.Where.ToSQL(w)
	}
}

// AlterTableActionKind enumerates the ALTER TABLE sub-actions this
// module supports.
type AlterTableActionKind int

const (
	ActionAddColumn AlterTableActionKind = iota
	ActionDropColumn
	ActionRenameTable
	ActionRenameColumn
	ActionAddConstraint
	ActionDropConstraint
	ActionAlterColumnType
)

// AlterTableAction is one sub-clause of an ALTER TABLE.
type AlterTableAction struct {
	Kind           AlterTableActionKind
	IfExists       bool
	Column         *ColumnDef       `sql:"child,order=0"`
	ColumnName     *Ident           `sql:"child,order=1"`
	NewName        *Ident           `sql:"child,order=2"`
	Constraint     *TableConstraint `sql:"child,order=3"`
	ConstraintName *Ident           `sql:"child,order=4"`
	NewType        DataType         `sql:"child,order=5"`
}

func (a *AlterTableAction) ToSQL(w *writer.Writer) {
	switch a.Kind {
	case ActionAddColumn:
		w.Keyword("add column")
		if a.IfExists {
			w.Keyword(" if not exists")
		}
		w.Space()
		a.Column.ToSQL(w)
	case ActionDropColumn:
		w.Keyword("drop column")
		if a.IfExists {
			w.Keyword(" if exists")
		}
		w.Space()
		a.ColumnName.ToSQL(w)
	case ActionRenameTable:
		w.Keyword("rename to").Space()
		a.NewName.ToSQL(w)
	case ActionRenameColumn:
		w.Keyword("rename column").Space()
		a.ColumnName.ToSQL(w)
		w.Keyword(" to").Space()
		a.NewName.ToSQL(w)
	case ActionAddConstraint:
		w.Keyword("add").Space()
		a.Constraint.ToSQL(w)
	case ActionDropConstraint:
		w.Keyword("drop constraint")
		if a.IfExists {
			w.Keyword(" if exists")
		}
		w.Space()
		a.ConstraintName.ToSQL(w)
	case ActionAlterColumnType:
		w.Keyword("alter column").Space()
		a.ColumnName.ToSQL(w)
		w.Keyword(" type").Space()
		a.NewType.ToSQL(w)
	}
}

// AlterTable is ALTER TABLE name action, ...
type AlterTable struct {
	Name    *ObjectName         `sql:"child,order=0"`
	Actions []*AlterTableAction `sql:"child,order=1"`
}

func (n *AlterTable) node()     {}
func (n *AlterTable) stmtNode() {}

func (n *AlterTable) ToSQL(w *writer.Writer) {
	w.Keyword("alter table").Space()
	n.Name.ToSQL(w)
	w.Space()
	writer.List(w, n.Actions, ", ")
}

// ObjectKind enumerates the object kinds DROP/TRUNCATE act on.
type ObjectKind int

const (
	ObjectTable ObjectKind = iota
	ObjectView
	ObjectIndex
	ObjectSchema
)

var objectKindText = map[ObjectKind]string{
	ObjectTable: "table", ObjectView: "view", ObjectIndex: "index", ObjectSchema: "schema",
}

// Drop is DROP kind [IF EXISTS] names [CASCADE].
type Drop struct {
	Kind     ObjectKind
	IfExists bool
	Names    []*ObjectName `sql:"child"`
	Cascade  bool
}

func (n *Drop) node()     {}
func (n *Drop) stmtNode() {}

func (n *Drop) ToSQL(w *writer.Writer) {
	w.Keyword("drop ").Keyword(objectKindText[n.Kind])
	if n.IfExists {
		w.Keyword(" if exists")
	}
	w.Space()
	writer.List(w, n.Names, ", ")
	if n.Cascade {
		w.Keyword(" cascade")
	}
}

// Truncate is TRUNCATE TABLE names.
type Truncate struct {
	Names []*ObjectName `sql:"child"`
}

func (n *Truncate) node()     {}
func (n *Truncate) stmtNode() {}

func (n *Truncate) ToSQL(w *writer.Writer) {
	w.Keyword("truncate table").Space()
	writer.List(w, n.Names, ", ")
}

// StartTransaction is START TRANSACTION [modifiers...], the modifier
// list only ever non-empty when SupportsStartTransactionModifier was
// set at parse time.
type StartTransaction struct {
	Modes []string
}

func (n *StartTransaction) node()     {}
func (n *StartTransaction) stmtNode() {}

func (n *StartTransaction) ToSQL(w *writer.Writer) {
	w.Keyword("start transaction")
	for i, m := range n.Modes {
		if i == 0 {
			w.Space()
		} else {
			w.WriteString(", ")
		}
		w.Keyword(m)
	}
}

// Commit is COMMIT [AND [NO] CHAIN].
type Commit struct {
	Chain bool
}

func (n *Commit) node()     {}
func (n *Commit) stmtNode() {}

func (n *Commit) ToSQL(w *writer.Writer) {
	w.Keyword("commit")
	if n.Chain {
		w.Keyword(" and chain")
	}
}

// Rollback is ROLLBACK [TO SAVEPOINT name].
type Rollback struct {
	SavepointName *Ident `sql:"child"`
}

func (n *Rollback) node()     {}
func (n *Rollback) stmtNode() {}

func (n *Rollback) ToSQL(w *writer.Writer) {
	w.Keyword("rollback")
	if n.SavepointName != nil {
		w.Keyword(" to savepoint").Space()
		n.SavepointName.ToSQL(w)
	}
}

// Savepoint is SAVEPOINT name.
type Savepoint struct {
	Name *Ident `sql:"child"`
}

func (n *Savepoint) node()     {}
func (n *Savepoint) stmtNode() {}

func (n *Savepoint) ToSQL(w *writer.Writer) {
	w.Keyword("savepoint").Space()
	n.Name.ToSQL(w)
}

// Grant is GRANT privileges ON object TO grantees [WITH GRANT OPTION].
type Grant struct {
	Privileges      []string
	On              *ObjectName `sql:"child,order=0"`
	To              []*Ident    `sql:"child,order=1"`
	WithGrantOption bool
}

func (n *Grant) node()     {}
func (n *Grant) stmtNode() {}

func (n *Grant) ToSQL(w *writer.Writer) {
	w.Keyword("grant").Space()
	for i, p := range n.Privileges {
		if i > 0 {
			w.WriteString(", ")
		}
		w.Keyword(p)
	}
	w.Keyword(" on").Space()
	n.On.ToSQL(w)
	w.Keyword(" to").Space()
	writer.List(w, n.To, ", ")
	if n.WithGrantOption {
		w.Keyword(" with grant option")
	}
}

// Revoke is REVOKE privileges ON object FROM grantees [CASCADE].
type Revoke struct {
	Privileges []string
	On         *ObjectName `sql:"child,order=0"`
	From       []*Ident    `sql:"child,order=1"`
	Cascade    bool
}

func (n *Revoke) node()     {}
func (n *Revoke) stmtNode() {}

func (n *Revoke) ToSQL(w *writer.Writer) {
	w.Keyword("revoke").Space()
	for i, p := range n.Privileges {
		if i > 0 {
			w.WriteString(", ")
		}
		w.Keyword(p)
	}
	w.Keyword(" on").Space()
	n.On.ToSQL(w)
	w.Keyword(" from").Space()
	writer.List(w, n.From, ", ")
	if n.Cascade {
		w.Keyword(" cascade")
	}
}

// Use is USE name.
type Use struct {
	Name *ObjectName `sql:"child"`
}

func (n *Use) node()     {}
func (n *Use) stmtNode() {}

func (n *Use) ToSQL(w *writer.Writer) {
	w.Keyword("use").Space()
	n.Name.ToSQL(w)
}

// Explain is EXPLAIN [ANALYZE] [VERBOSE] statement.
type Explain struct {
	Analyze   bool
	Verbose   bool
	Statement Statement `sql:"child"`
}

func (n *Explain) node()     {}
func (n *Explain) stmtNode() {}

func (n *Explain) ToSQL(w *writer.Writer) {
	w.Keyword("explain")
	if n.Analyze {
		w.Keyword(" analyze")
	}
	if n.Verbose {
		w.Keyword(" verbose")
	}
	w.Space()
	n.Statement.ToSQL(w)
}

// SetStatement is SET [LOCAL] variable = value [, value ...], with the
// parenthesized-value-list form gated by SupportsParenthesizedSetVariables.
type SetStatement struct {
	Local         bool
	Variable      *ObjectName `sql:"child,order=0"`
	Values        []Expr      `sql:"child,order=1"`
	Parenthesized bool
}

func (n *SetStatement) node()     {}
func (n *SetStatement) stmtNode() {}

func (n *SetStatement) ToSQL(w *writer.Writer) {
	w.Keyword("set")
	if n.Local {
		w.Keyword(" local")
	}
	w.Space()
	n.Variable.ToSQL(w)
	w.WriteString(" = ")
	if n.Parenthesized {
		w.WriteByte('(')
		writer.List(w, n.Values, ", ")
		w.WriteByte(')')
		return
	}
	writer.List(w, n.Values, ", ")
}
