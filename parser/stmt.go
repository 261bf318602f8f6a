package parser

import (
	"github.com/polysql/sqlparser/ast"
	"github.com/polysql/sqlparser/token"
)

func (p *Parser) parseReturning() ([]*ast.SelectItem, error) {
	if !p.eatKeyword(token.RETURNING) {
		return nil, nil
	}
	return p.parseProjection()
}

func (p *Parser) parseInsert() (ast.Statement, error) {
	p.advance() // INSERT
	if err := p.expectKeyword(token.INTO); err != nil {
		return nil, err
	}
	table, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	ins := &ast.Insert{Table: table}
	if p.isPunct(token.LParen) {
		cols, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		ins.Columns = cols
	}
	if p.eatKeyword(token.DEFAULT) {
		if err := p.expectKeyword(token.VALUES); err != nil {
			return nil, err
		}
	} else {
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		ins.Source = q
	}
	if p.eatKeyword(token.ON) {
		if err := p.expectKeyword(token.CONFLICT); err != nil {
			return nil, err
		}
		oc, err := p.parseOnConflict()
		if err != nil {
			return nil, err
		}
		ins.OnConflict = oc
	}
	returning, err := p.parseReturning()
	if err != nil {
		return nil, err
	}
	ins.Returning = returning
	return ins, nil
}

func (p *Parser) parseOnConflict() (*ast.OnConflict, error) {
	oc := &ast.OnConflict{}
	if p.isPunct(token.LParen) {
		cols, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		oc.Columns = cols
	}
	if err := p.expectKeyword(token.DO); err != nil {
		return nil, err
	}
	if p.eatKeyword(token.NOTHING) {
		oc.DoNothing = true
		return oc, nil
	}
	if err := p.expectKeyword(token.UPDATE); err != nil {
		return nil, err
	}
	if err := p.expectKeyword(token.SET); err != nil {
		return nil, err
	}
	assignments, err := p.parseAssignmentList()
	if err != nil {
		return nil, err
	}
	oc.DoUpdateSet = assignments
	if p.eatKeyword(token.WHERE) {
		where, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		oc.Where = where
	}
	return oc, nil
}

func (p *Parser) parseAssignmentList() ([]*ast.Assignment, error) {
	var list []*ast.Assignment
	for {
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct(token.Eq); err != nil {
			return nil, err
		}
		value, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		list = append(list, &ast.Assignment{Target: name, Value: value})
		if !p.eatPunct(token.Comma) {
			break
		}
	}
	return list, nil
}

func (p *Parser) parseUpdate() (ast.Statement, error) {
	p.advance() // UPDATE
	table, err := p.parseTableWithJoins()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(token.SET); err != nil {
		return nil, err
	}
	assignments, err := p.parseAssignmentList()
	if err != nil {
		return nil, err
	}
	upd := &ast.Update{Table: table, Assignments: assignments}
	if p.eatKeyword(token.FROM) {
		from, err := p.parseTableWithJoinsList()
		if err != nil {
			return nil, err
		}
		upd.From = from
	}
	if p.eatKeyword(token.WHERE) {
		where, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		upd.Where = where
	}
	returning, err := p.parseReturning()
	if err != nil {
		return nil, err
	}
	upd.Returning = returning
	return upd, nil
}

func (p *Parser) parseDelete() (ast.Statement, error) {
	p.advance() // DELETE
	if err := p.expectKeyword(token.FROM); err != nil {
		return nil, err
	}
	table, err := p.parseTableWithJoins()
	if err != nil {
		return nil, err
	}
	del := &ast.Delete{Table: table}
	if p.eatKeyword(token.USING) {
		using, err := p.parseTableWithJoinsList()
		if err != nil {
			return nil, err
		}
		del.Using = using
	}
	if p.eatKeyword(token.WHERE) {
		where, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		del.Where = where
	}
	returning, err := p.parseReturning()
	if err != nil {
		return nil, err
	}
	del.Returning = returning
	return del, nil
}

func (p *Parser) parseCreate() (ast.Statement, error) {
	p.advance() // CREATE
	orReplace := false
	if p.eatKeyword(token.OR) {
		if err := p.expectKeyword(token.REPLACE); err != nil {
			return nil, err
		}
		orReplace = true
	}
	switch {
	case p.isKeyword(token.TEMPORARY) || p.isKeyword(token.TEMP) || p.isKeyword(token.TABLE):
		return p.parseCreateTable()
	case p.isKeyword(token.MATERIALIZED) || p.isKeyword(token.VIEW):
		return p.parseCreateView(orReplace)
	case p.isKeyword(token.UNIQUE) || p.isKeyword(token.INDEX):
		return p.parseCreateIndex()
	}
	t := p.peek()
	return nil, errAt(t.Pos, "expected TABLE, VIEW or INDEX after CREATE, found %q", t.String())
}

func (p *Parser) parseCreateTable() (ast.Statement, error) {
	ct := &ast.CreateTable{}
	if p.eatKeyword(token.TEMPORARY) || p.eatKeyword(token.TEMP) {
		ct.Temporary = true
	}
	if err := p.expectKeyword(token.TABLE); err != nil {
		return nil, err
	}
	if p.eatKeyword(token.IF) {
		if err := p.expectKeyword(token.NOT); err != nil {
			return nil, err
		}
		if err := p.expectKeyword(token.EXISTS); err != nil {
			return nil, err
		}
		ct.IfNotExists = true
	}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	ct.Name = name

	if p.eatKeyword(token.AS) {
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		ct.Query = q
		return ct, nil
	}

	if err := p.expectPunct(token.LParen); err != nil {
		return nil, err
	}
	if !p.isPunct(token.RParen) {
		for {
			if p.isTableConstraintStart() {
				c, err := p.parseTableConstraint()
				if err != nil {
					return nil, err
				}
				ct.Constraints = append(ct.Constraints, c)
			} else {
				col, err := p.parseColumnDef()
				if err != nil {
					return nil, err
				}
				ct.Columns = append(ct.Columns, col)
			}
			if !p.eatPunct(token.Comma) {
				break
			}
		}
	}
	if err := p.expectPunct(token.RParen); err != nil {
		return nil, err
	}
	return ct, nil
}

func (p *Parser) isTableConstraintStart() bool {
	switch p.peek().Keyword {
	case token.CONSTRAINT, token.PRIMARY, token.UNIQUE, token.FOREIGN, token.CHECK:
		return true
	}
	return false
}

func (p *Parser) parseColumnDef() (*ast.ColumnDef, error) {
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	dt, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	col := &ast.ColumnDef{Name: name, Type: dt}
	for {
		opt, ok, err := p.tryParseColumnOption()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		col.Options = append(col.Options, opt)
	}
	return col, nil
}

func (p *Parser) tryParseColumnOption() (*ast.ColumnOption, bool, error) {
	switch {
	case p.eatKeyword(token.NOT):
		if err := p.expectKeyword(token.NULL); err != nil {
			return nil, false, err
		}
		return &ast.ColumnOption{Kind: ast.ColumnNotNull}, true, nil
	case p.eatKeyword(token.NULL):
		return &ast.ColumnOption{Kind: ast.ColumnNull}, true, nil
	case p.eatKeyword(token.DEFAULT):
		e, err := p.parseExpr(PrecUnary)
		if err != nil {
			return nil, false, err
		}
		return &ast.ColumnOption{Kind: ast.ColumnDefault, Expr: e}, true, nil
	case p.eatKeyword(token.PRIMARY):
		if err := p.expectKeyword(token.KEY); err != nil {
			return nil, false, err
		}
		return &ast.ColumnOption{Kind: ast.ColumnPrimaryKey}, true, nil
	case p.eatKeyword(token.UNIQUE):
		return &ast.ColumnOption{Kind: ast.ColumnUnique}, true, nil
	case p.eatKeyword(token.CHECK):
		if err := p.expectPunct(token.LParen); err != nil {
			return nil, false, err
		}
		e, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, false, err
		}
		if err := p.expectPunct(token.RParen); err != nil {
			return nil, false, err
		}
		return &ast.ColumnOption{Kind: ast.ColumnCheck, Expr: e}, true, nil
	case p.eatKeyword(token.REFERENCES):
		refTable, err := p.parseObjectName()
		if err != nil {
			return nil, false, err
		}
		var refCols []*ast.Ident
		if p.isPunct(token.LParen) {
			refCols, err = p.parseIdentList()
			if err != nil {
				return nil, false, err
			}
		}
		return &ast.ColumnOption{Kind: ast.ColumnReferences, RefTable: refTable, RefColumns: refCols}, true, nil
	}
	return nil, false, nil
}

func (p *Parser) parseTableConstraint() (*ast.TableConstraint, error) {
	c := &ast.TableConstraint{}
	if p.eatKeyword(token.CONSTRAINT) {
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		c.Name = name
	}
	switch {
	case p.eatKeyword(token.PRIMARY):
		if err := p.expectKeyword(token.KEY); err != nil {
			return nil, err
		}
		cols, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		c.Kind = ast.TableConstraintPrimaryKey
		c.Columns = cols
	case p.eatKeyword(token.UNIQUE):
		cols, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		c.Kind = ast.TableConstraintUnique
		c.Columns = cols
	case p.eatKeyword(token.FOREIGN):
		if err := p.expectKeyword(token.KEY); err != nil {
			return nil, err
		}
		cols, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword(token.REFERENCES); err != nil {
			return nil, err
		}
		refTable, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		refCols, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		c.Kind = ast.TableConstraintForeignKey
		c.Columns = cols
		c.RefTable = refTable
		c.RefColumns = refCols
	case p.eatKeyword(token.CHECK):
		if err := p.expectPunct(token.LParen); err != nil {
			return nil, err
		}
		e, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct(token.RParen); err != nil {
			return nil, err
		}
		c.Kind = ast.TableConstraintCheck
		c.Check = e
	default:
		t := p.peek()
		return nil, errAt(t.Pos, "expected table constraint, found %q", t.String())
	}
	return c, nil
}

func (p *Parser) parseCreateView(orReplace bool) (ast.Statement, error) {
	v := &ast.CreateView{OrReplace: orReplace}
	if p.eatKeyword(token.MATERIALIZED) {
		v.Materialized = true
	}
	if err := p.expectKeyword(token.VIEW); err != nil {
		return nil, err
	}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	v.Name = name
	if p.isPunct(token.LParen) {
		cols, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		v.Columns = cols
	}
	if err := p.expectKeyword(token.AS); err != nil {
		return nil, err
	}
	q, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	v.Query = q
	return v, nil
}

func (p *Parser) parseCreateIndex() (ast.Statement, error) {
	idx := &ast.CreateIndex{}
	if p.eatKeyword(token.UNIQUE) {
		idx.Unique = true
	}
	if err := p.expectKeyword(token.INDEX); err != nil {
		return nil, err
	}
	if p.eatKeyword(token.IF) {
		if err := p.expectKeyword(token.NOT); err != nil {
			return nil, err
		}
		if err := p.expectKeyword(token.EXISTS); err != nil {
			return nil, err
		}
		idx.IfNotExists = true
	}
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	idx.Name = name
	if err := p.expectKeyword(token.ON); err != nil {
		return nil, err
	}
	table, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	idx.Table = table
	if err := p.expectPunct(token.LParen); err != nil {
		return nil, err
	}
	cols, err := p.parseOrderByList()
	if err != nil {
		return nil, err
	}
	idx.Columns = cols
	if err := p.expectPunct(token.RParen); err != nil {
		return nil, err
	}
	if p.eatKeyword(token.WHERE) {
		where, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		idx.Where = where
	}
	return idx, nil
}

func (p *Parser) parseAlterTable() (ast.Statement, error) {
	p.advance() // ALTER
	if err := p.expectKeyword(token.TABLE); err != nil {
		return nil, err
	}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	alt := &ast.AlterTable{Name: name}
	for {
		action, err := p.parseAlterTableAction()
		if err != nil {
			return nil, err
		}
		alt.Actions = append(alt.Actions, action)
		if !p.eatPunct(token.Comma) {
			break
		}
	}
	return alt, nil
}

func (p *Parser) parseAlterTableAction() (*ast.AlterTableAction, error) {
	switch {
	case p.eatKeyword(token.ADD):
		if p.eatKeyword(token.COLUMN) {
			ifNotExists := false
			if p.eatKeyword(token.IF) {
				if err := p.expectKeyword(token.NOT); err != nil {
					return nil, err
				}
				if err := p.expectKeyword(token.EXISTS); err != nil {
					return nil, err
				}
				ifNotExists = true
			}
			col, err := p.parseColumnDef()
			if err != nil {
				return nil, err
			}
			return &ast.AlterTableAction{Kind: ast.ActionAddColumn, IfExists: ifNotExists, Column: col}, nil
		}
		if p.isTableConstraintStart() {
			c, err := p.parseTableConstraint()
			if err != nil {
				return nil, err
			}
			return &ast.AlterTableAction{Kind: ast.ActionAddConstraint, Constraint: c}, nil
		}
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		return &ast.AlterTableAction{Kind: ast.ActionAddColumn, Column: col}, nil
	case p.eatKeyword(token.DROP):
		if p.eatKeyword(token.COLUMN) {
			ifExists := false
			if p.eatKeyword(token.IF) {
				if err := p.expectKeyword(token.EXISTS); err != nil {
					return nil, err
				}
				ifExists = true
			}
			name, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			return &ast.AlterTableAction{Kind: ast.ActionDropColumn, IfExists: ifExists, ColumnName: name}, nil
		}
		if err := p.expectKeyword(token.CONSTRAINT); err != nil {
			return nil, err
		}
		ifExists := false
		if p.eatKeyword(token.IF) {
			if err := p.expectKeyword(token.EXISTS); err != nil {
				return nil, err
			}
			ifExists = true
		}
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		return &ast.AlterTableAction{Kind: ast.ActionDropConstraint, IfExists: ifExists, ConstraintName: name}, nil
	case p.eatKeyword(token.RENAME):
		if p.eatKeyword(token.TO) {
			name, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			return &ast.AlterTableAction{Kind: ast.ActionRenameTable, NewName: name}, nil
		}
		p.eatKeyword(token.COLUMN)
		oldName, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword(token.TO); err != nil {
			return nil, err
		}
		newName, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		return &ast.AlterTableAction{Kind: ast.ActionRenameColumn, ColumnName: oldName, NewName: newName}, nil
	case p.eatKeyword(token.ALTER):
		p.eatKeyword(token.COLUMN)
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword(token.TYPE); err != nil {
			return nil, err
		}
		dt, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		return &ast.AlterTableAction{Kind: ast.ActionAlterColumnType, ColumnName: name, NewType: dt}, nil
	}
	t := p.peek()
	return nil, errAt(t.Pos, "unsupported ALTER TABLE action, found %q", t.String())
}

func (p *Parser) parseDrop() (ast.Statement, error) {
	p.advance() // DROP
	var kind ast.ObjectKind
	switch {
	case p.eatKeyword(token.TABLE):
		kind = ast.ObjectTable
	case p.eatKeyword(token.VIEW):
		kind = ast.ObjectView
	case p.eatKeyword(token.INDEX):
		kind = ast.ObjectIndex
	case p.eatKeyword(token.SCHEMA):
		kind = ast.ObjectSchema
	default:
		t := p.peek()
		return nil, errAt(t.Pos, "expected TABLE/VIEW/INDEX/SCHEMA after DROP, found %q", t.String())
	}
	drop := &ast.Drop{Kind: kind}
	if p.eatKeyword(token.IF) {
		if err := p.expectKeyword(token.EXISTS); err != nil {
			return nil, err
		}
		drop.IfExists = true
	}
	for {
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		drop.Names = append(drop.Names, name)
		if !p.eatPunct(token.Comma) {
			break
		}
	}
	if p.eatKeyword(token.CASCADE) {
		drop.Cascade = true
	} else {
		p.eatKeyword(token.RESTRICT)
	}
	return drop, nil
}

func (p *Parser) parseTruncate() (ast.Statement, error) {
	p.advance() // TRUNCATE
	p.eatKeyword(token.TABLE)
	tr := &ast.Truncate{}
	for {
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		tr.Names = append(tr.Names, name)
		if !p.eatPunct(token.Comma) {
			break
		}
	}
	return tr, nil
}

func (p *Parser) parseStartTransaction() (ast.Statement, error) {
	if p.eatKeyword(token.BEGIN) {
		p.eatKeyword(token.WORK)
		p.eatKeyword(token.TRANSACTION)
	} else {
		if err := p.expectKeyword(token.START); err != nil {
			return nil, err
		}
		if err := p.expectKeyword(token.TRANSACTION); err != nil {
			return nil, err
		}
	}
	st := &ast.StartTransaction{}
	if p.d.Flags().SupportsStartTransactionModifier {
		for {
			switch {
			case p.eatKeyword(token.READ):
				if p.eatKeyword(token.WRITE) {
					st.Modes = append(st.Modes, "read write")
				} else if err := p.expectKeyword(token.ONLY); err != nil {
					return nil, err
				} else {
					st.Modes = append(st.Modes, "read only")
				}
			case p.eatKeyword(token.ISOLATION):
				if err := p.expectKeyword(token.LEVEL); err != nil {
					return nil, err
				}
				level, err := p.parseIsolationLevel()
				if err != nil {
					return nil, err
				}
				st.Modes = append(st.Modes, "isolation level "+level)
			default:
				return st, nil
			}
			if !p.eatPunct(token.Comma) {
				break
			}
		}
	}
	return st, nil
}

func (p *Parser) parseIsolationLevel() (string, error) {
	t := p.peek()
	if t.Kind != token.Word {
		return "", errAt(t.Pos, "expected isolation level, found %q", t.String())
	}
	p.advance()
	if t.Keyword == token.SERIALIZABLE {
		return "serializable", nil
	}
	next := p.peek()
	p.advance()
	return t.Text + " " + next.Text, nil
}

func (p *Parser) parseCommit() (ast.Statement, error) {
	p.advance() // COMMIT
	p.eatKeyword(token.WORK)
	c := &ast.Commit{}
	if p.eatKeyword(token.AND) {
		noChain := p.eatKeyword(token.NO)
		if err := p.expectKeyword(token.CHAIN); err != nil {
			return nil, err
		}
		c.Chain = !noChain
	}
	return c, nil
}

func (p *Parser) parseRollback() (ast.Statement, error) {
	p.advance() // ROLLBACK
	p.eatKeyword(token.WORK)
	r := &ast.Rollback{}
	if p.eatKeyword(token.TO) {
		p.eatKeyword(token.SAVEPOINT)
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		r.SavepointName = name
	}
	return r, nil
}

func (p *Parser) parseSavepoint() (ast.Statement, error) {
	p.advance() // SAVEPOINT
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	return &ast.Savepoint{Name: name}, nil
}

// parsePrivilegeList reads a comma-separated list of privilege names
// (SELECT, INSERT, UPDATE, DELETE, ALL, ...). These overlap with core
// keywords, so they're read as raw Word text rather than matched
// against a fixed keyword set.
func (p *Parser) parsePrivilegeList() ([]string, error) {
	var privs []string
	for {
		t := p.peek()
		if t.Kind != token.Word {
			return nil, errAt(t.Pos, "expected privilege name, found %q", t.String())
		}
		p.advance()
		privs = append(privs, t.Text)
		if p.eatPunct(token.LParen) {
			if err := p.skipParenColumnList(); err != nil {
				return nil, err
			}
		}
		if !p.eatPunct(token.Comma) {
			break
		}
	}
	return privs, nil
}

func (p *Parser) skipParenColumnList() error {
	for {
		if _, err := p.parseIdent(); err != nil {
			return err
		}
		if !p.eatPunct(token.Comma) {
			break
		}
	}
	return p.expectPunct(token.RParen)
}

func (p *Parser) parseGrant() (ast.Statement, error) {
	p.advance() // GRANT
	privs, err := p.parsePrivilegeList()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(token.ON); err != nil {
		return nil, err
	}
	on, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(token.TO); err != nil {
		return nil, err
	}
	to, err := p.parseIdentListNoParens()
	if err != nil {
		return nil, err
	}
	g := &ast.Grant{Privileges: privs, On: on, To: to}
	if p.eatKeyword(token.WITH) {
		if err := p.expectKeyword(token.GRANT); err != nil {
			return nil, err
		}
		if err := p.expectKeyword(token.OPTION); err != nil {
			return nil, err
		}
		g.WithGrantOption = true
	}
	return g, nil
}

func (p *Parser) parseRevoke() (ast.Statement, error) {
	p.advance() // REVOKE
	privs, err := p.parsePrivilegeList()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(token.ON); err != nil {
		return nil, err
	}
	on, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(token.FROM); err != nil {
		return nil, err
	}
	from, err := p.parseIdentListNoParens()
	if err != nil {
		return nil, err
	}
	r := &ast.Revoke{Privileges: privs, On: on, From: from}
	if p.eatKeyword(token.CASCADE) {
		r.Cascade = true
	} else {
		p.eatKeyword(token.RESTRICT)
	}
	return r, nil
}

func (p *Parser) parseIdentListNoParens() ([]*ast.Ident, error) {
	var idents []*ast.Ident
	for {
		id, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		idents = append(idents, id)
		if !p.eatPunct(token.Comma) {
			break
		}
	}
	return idents, nil
}

func (p *Parser) parseUse() (ast.Statement, error) {
	p.advance() // USE
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	return &ast.Use{Name: name}, nil
}

func (p *Parser) parseExplain() (ast.Statement, error) {
	p.advance() // EXPLAIN
	ex := &ast.Explain{}
	if p.eatKeyword(token.ANALYZE) {
		ex.Analyze = true
	}
	if p.eatKeyword(token.VERBOSE) {
		ex.Verbose = true
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	ex.Statement = stmt
	return ex, nil
}

func (p *Parser) parseSet() (ast.Statement, error) {
	p.advance() // SET
	st := &ast.SetStatement{}
	if p.eatKeyword(token.LOCAL) {
		st.Local = true
	}
	variable, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	st.Variable = variable
	if !p.eatPunct(token.Eq) {
		if err := p.expectKeyword(token.TO); err != nil {
			return nil, err
		}
	}
	if p.d.Flags().SupportsParenthesizedSetVariables && p.isPunct(token.LParen) {
		p.advance()
		st.Parenthesized = true
		for {
			v, err := p.parseExpr(PrecLowest)
			if err != nil {
				return nil, err
			}
			st.Values = append(st.Values, v)
			if !p.eatPunct(token.Comma) {
				break
			}
		}
		if err := p.expectPunct(token.RParen); err != nil {
			return nil, err
		}
		return st, nil
	}
	for {
		v, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		st.Values = append(st.Values, v)
		if !p.eatPunct(token.Comma) {
			break
		}
	}
	return st, nil
}
