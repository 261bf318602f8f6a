package parser

import (
	"github.com/polysql/sqlparser/ast"
	"github.com/polysql/sqlparser/token"
)

// parseQuery parses a full query: optional WITH prologue, a set-operation
// tree of SELECT/VALUES/nested-query bodies, and the trailing ORDER
// BY/LIMIT/OFFSET/FETCH/locking clauses that sit outside that tree.
func (p *Parser) parseQuery() (*ast.Query, error) {
	q := &ast.Query{}
	if p.isKeyword(token.WITH) {
		with, err := p.parseWith()
		if err != nil {
			return nil, err
		}
		q.With = with
	}
	body, err := p.parseSetExpr(0)
	if err != nil {
		return nil, err
	}
	q.Body = body

	if p.eatKeyword(token.ORDER) {
		if err := p.expectKeyword(token.BY); err != nil {
			return nil, err
		}
		obs, err := p.parseOrderByList()
		if err != nil {
			return nil, err
		}
		q.OrderBy = obs
	}
	if p.eatKeyword(token.LIMIT) {
		limit, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		q.Limit = limit
	}
	if p.isKeyword(token.OFFSET) {
		off, err := p.parseOffset()
		if err != nil {
			return nil, err
		}
		q.Offset = off
	}
	if p.isKeyword(token.FETCH) {
		f, err := p.parseFetch()
		if err != nil {
			return nil, err
		}
		q.Fetch = f
	}
	for p.isKeyword(token.FOR) {
		lock, err := p.parseLock()
		if err != nil {
			return nil, err
		}
		q.Locks = append(q.Locks, lock)
	}
	return q, nil
}

func (p *Parser) parseWith() (*ast.With, error) {
	p.advance() // WITH
	with := &ast.With{}
	if p.eatKeyword(token.RECURSIVE) {
		with.Recursive = true
	}
	for {
		cte, err := p.parseCTE()
		if err != nil {
			return nil, err
		}
		with.CTEs = append(with.CTEs, cte)
		if !p.eatPunct(token.Comma) {
			break
		}
	}
	return with, nil
}

func (p *Parser) parseCTE() (*ast.CTE, error) {
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	cte := &ast.CTE{Name: name}
	if p.isPunct(token.LParen) {
		cols, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		cte.Columns = cols
	}
	if err := p.expectKeyword(token.AS); err != nil {
		return nil, err
	}
	if err := p.expectPunct(token.LParen); err != nil {
		return nil, err
	}
	q, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	cte.Query = q
	if err := p.expectPunct(token.RParen); err != nil {
		return nil, err
	}
	return cte, nil
}

// parseSetExpr parses the UNION/INTERSECT/EXCEPT tree. INTERSECT binds
// tighter than UNION/EXCEPT, modeled with two precedence tiers rather
// than a table, since there are only two.
func (p *Parser) parseSetExpr(minPrec int) (ast.SetExpr, error) {
	left, err := p.parseSetExprTerm()
	if err != nil {
		return nil, err
	}
	for {
		prec, op, ok := p.peekSetOperator()
		if !ok || prec <= minPrec {
			return left, nil
		}
		p.advance() // UNION/INTERSECT/EXCEPT
		all := p.eatKeyword(token.ALL)
		if !all {
			p.eatKeyword(token.DISTINCT)
		}
		right, err := p.parseSetExpr(prec)
		if err != nil {
			return nil, err
		}
		left = &ast.SetOperation{Left: left, Op: op, All: all, Right: right}
	}
}

func (p *Parser) peekSetOperator() (int, ast.SetOperator, bool) {
	switch p.peek().Keyword {
	case token.UNION:
		return 1, ast.SetUnion, true
	case token.EXCEPT:
		return 1, ast.SetExcept, true
	case token.INTERSECT:
		return 2, ast.SetIntersect, true
	}
	return 0, 0, false
}

func (p *Parser) parseSetExprTerm() (ast.SetExpr, error) {
	switch {
	case p.isKeyword(token.SELECT):
		return p.parseSelect()
	case p.isKeyword(token.VALUES):
		return p.parseValues()
	case p.isPunct(token.LParen):
		p.advance()
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct(token.RParen); err != nil {
			return nil, err
		}
		return &ast.NestedQuery{Query: q}, nil
	}
	t := p.peek()
	return nil, errAt(t.Pos, "expected SELECT, VALUES or '(', found %q", t.String())
}

func (p *Parser) parseValues() (*ast.Values, error) {
	p.advance() // VALUES
	v := &ast.Values{}
	for {
		if err := p.expectPunct(token.LParen); err != nil {
			return nil, err
		}
		row := &ast.ValuesRow{}
		if !p.isPunct(token.RParen) {
			for {
				e, err := p.parseExpr(PrecLowest)
				if err != nil {
					return nil, err
				}
				row.Exprs = append(row.Exprs, e)
				if !p.eatPunct(token.Comma) {
					break
				}
			}
		}
		if err := p.expectPunct(token.RParen); err != nil {
			return nil, err
		}
		v.Rows = append(v.Rows, row)
		if !p.eatPunct(token.Comma) {
			break
		}
	}
	return v, nil
}

func (p *Parser) parseSelect() (*ast.Select, error) {
	p.advance() // SELECT
	sel := &ast.Select{}
	if p.eatKeyword(token.DISTINCT) {
		sel.Distinct = true
		if p.eatKeyword(token.ON) {
			if err := p.expectPunct(token.LParen); err != nil {
				return nil, err
			}
			for {
				e, err := p.parseExpr(PrecLowest)
				if err != nil {
					return nil, err
				}
				sel.DistinctOn = append(sel.DistinctOn, e)
				if !p.eatPunct(token.Comma) {
					break
				}
			}
			if err := p.expectPunct(token.RParen); err != nil {
				return nil, err
			}
		}
	} else {
		p.eatKeyword(token.ALL)
	}
	if p.isKeyword(token.TOP) {
		top, err := p.parseTop()
		if err != nil {
			return nil, err
		}
		sel.Top = top
	}

	proj, err := p.parseProjection()
	if err != nil {
		return nil, err
	}
	sel.Projection = proj

	if p.eatKeyword(token.INTO) {
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		sel.Into = name
	}

	if p.eatKeyword(token.FROM) {
		from, err := p.parseTableWithJoinsList()
		if err != nil {
			return nil, err
		}
		sel.From = from
	}

	if p.eatKeyword(token.WHERE) {
		where, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		sel.Where = where
	}

	if p.eatKeyword(token.GROUP) {
		if err := p.expectKeyword(token.BY); err != nil {
			return nil, err
		}
		for {
			e, err := p.parseExpr(PrecLowest)
			if err != nil {
				return nil, err
			}
			sel.GroupBy = append(sel.GroupBy, e)
			if !p.eatPunct(token.Comma) {
				break
			}
		}
	}

	if p.eatKeyword(token.HAVING) {
		having, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		sel.Having = having
	}

	if p.eatKeyword(token.WINDOW) {
		for {
			name, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			if err := p.expectKeyword(token.AS); err != nil {
				return nil, err
			}
			if err := p.expectPunct(token.LParen); err != nil {
				return nil, err
			}
			spec, err := p.parseWindowSpecBody()
			if err != nil {
				return nil, err
			}
			if err := p.expectPunct(token.RParen); err != nil {
				return nil, err
			}
			sel.NamedWindows = append(sel.NamedWindows, &ast.NamedWindow{Name: name, Spec: spec})
			if !p.eatPunct(token.Comma) {
				break
			}
		}
	}

	return sel, nil
}

func (p *Parser) parseTop() (*ast.Top, error) {
	p.advance() // TOP
	if err := p.expectPunct(token.LParen); err != nil {
		return nil, err
	}
	qty, err := p.parseExpr(PrecLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(token.RParen); err != nil {
		return nil, err
	}
	top := &ast.Top{Quantity: qty}
	if p.eatKeyword(token.PERCENT) {
		top.Percent = true
	}
	if p.eatKeyword(token.WITH) {
		if err := p.expectKeyword(token.TIES); err != nil {
			return nil, err
		}
		top.WithTies = true
	}
	return top, nil
}

func (p *Parser) parseProjection() ([]*ast.SelectItem, error) {
	var items []*ast.SelectItem
	for {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.eatPunct(token.Comma) {
			break
		}
		if p.d.Flags().SupportsProjectionTrailingCommas && p.isKeyword(token.FROM) {
			break
		}
	}
	return items, nil
}

func (p *Parser) parseSelectItem() (*ast.SelectItem, error) {
	if p.isKeyword(token.FROM) {
		t := p.peek()
		return nil, errAt(t.Pos, "expected select item, found %q", t.String())
	}
	e, err := p.parseExpr(PrecLowest)
	if err != nil {
		return nil, err
	}
	item := &ast.SelectItem{Expr: e}
	if p.eatKeyword(token.AS) {
		alias, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		item.Alias = alias
	} else if p.peek().Kind == token.Word && p.peek().Keyword == token.NoKeyword {
		alias, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		item.Alias = alias
	}
	return item, nil
}

func (p *Parser) parseTableWithJoinsList() ([]*ast.TableWithJoins, error) {
	var list []*ast.TableWithJoins
	for {
		twj, err := p.parseTableWithJoins()
		if err != nil {
			return nil, err
		}
		list = append(list, twj)
		if !p.eatPunct(token.Comma) {
			break
		}
	}
	return list, nil
}

func (p *Parser) parseTableWithJoins() (*ast.TableWithJoins, error) {
	relation, err := p.parseTableFactor()
	if err != nil {
		return nil, err
	}
	twj := &ast.TableWithJoins{Relation: relation}
	for {
		join, ok, err := p.tryParseJoin()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		twj.Joins = append(twj.Joins, join)
	}
	return twj, nil
}

func (p *Parser) tryParseJoin() (*ast.Join, bool, error) {
	natural := false
	mark := p.Mark()
	if p.eatKeyword(token.NATURAL) {
		natural = true
	}
	var op ast.JoinOperator
	matched := true
	switch {
	case p.eatKeyword(token.JOIN):
		op = ast.JoinInner
	case p.eatKeyword(token.INNER):
		if err := p.expectKeyword(token.JOIN); err != nil {
			return nil, false, err
		}
		op = ast.JoinInner
	case p.eatKeyword(token.LEFT):
		p.eatKeyword(token.OUTER)
		if err := p.expectKeyword(token.JOIN); err != nil {
			return nil, false, err
		}
		op = ast.JoinLeft
	case p.eatKeyword(token.RIGHT):
		p.eatKeyword(token.OUTER)
		if err := p.expectKeyword(token.JOIN); err != nil {
			return nil, false, err
		}
		op = ast.JoinRight
	case p.eatKeyword(token.FULL):
		p.eatKeyword(token.OUTER)
		if err := p.expectKeyword(token.JOIN); err != nil {
			return nil, false, err
		}
		op = ast.JoinFull
	case p.eatKeyword(token.CROSS):
		if err := p.expectKeyword(token.JOIN); err != nil {
			return nil, false, err
		}
		op = ast.JoinCross
	default:
		matched = false
	}
	if !matched {
		p.Reset(mark)
		return nil, false, nil
	}

	relation, err := p.parseTableFactor()
	if err != nil {
		return nil, false, err
	}
	join := &ast.Join{Operator: op, Relation: relation}
	if op != ast.JoinCross {
		constraint := &ast.JoinConstraint{Natural: natural}
		if p.eatKeyword(token.ON) {
			on, err := p.parseExpr(PrecLowest)
			if err != nil {
				return nil, false, err
			}
			constraint.On = on
		} else if p.eatKeyword(token.USING) {
			using, err := p.parseIdentList()
			if err != nil {
				return nil, false, err
			}
			constraint.Using = using
		}
		join.Constraint = constraint
	} else if natural {
		join.Constraint = &ast.JoinConstraint{Natural: true}
	}
	return join, true, nil
}

func (p *Parser) parseTableFactor() (ast.TableFactor, error) {
	if p.eatKeyword(token.LATERAL) {
		if err := p.expectPunct(token.LParen); err != nil {
			return nil, err
		}
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct(token.RParen); err != nil {
			return nil, err
		}
		alias, err := p.parseOptionalTableAlias()
		if err != nil {
			return nil, err
		}
		return &ast.DerivedTable{Lateral: true, Query: q, Alias: alias}, nil
	}
	if p.isPunct(token.LParen) {
		p.advance()
		if p.isKeyword(token.SELECT) || p.isKeyword(token.WITH) || p.isKeyword(token.VALUES) {
			q, err := p.parseQuery()
			if err != nil {
				return nil, err
			}
			if err := p.expectPunct(token.RParen); err != nil {
				return nil, err
			}
			alias, err := p.parseOptionalTableAlias()
			if err != nil {
				return nil, err
			}
			return &ast.DerivedTable{Query: q, Alias: alias}, nil
		}
		inner, err := p.parseTableWithJoins()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct(token.RParen); err != nil {
			return nil, err
		}
		return &ast.NestedJoin{TableWithJoins: inner}, nil
	}

	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	if p.isPunct(token.LParen) {
		p.advance()
		call := &ast.FunctionCall{Name: name}
		if !p.isPunct(token.RParen) {
			for {
				arg, err := p.parseFunctionArg()
				if err != nil {
					return nil, err
				}
				call.Args = append(call.Args, arg)
				if !p.eatPunct(token.Comma) {
					break
				}
			}
		}
		if err := p.expectPunct(token.RParen); err != nil {
			return nil, err
		}
		alias, err := p.parseOptionalTableAlias()
		if err != nil {
			return nil, err
		}
		return &ast.TableFunction{Call: call, Alias: alias}, nil
	}
	alias, err := p.parseOptionalTableAlias()
	if err != nil {
		return nil, err
	}
	return &ast.Table{Name: name, Alias: alias}, nil
}

func (p *Parser) parseOptionalTableAlias() (*ast.TableAlias, error) {
	hasAs := p.eatKeyword(token.AS)
	if !hasAs {
		t := p.peek()
		if t.Kind != token.Word || t.Keyword != token.NoKeyword {
			return nil, nil
		}
	}
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	alias := &ast.TableAlias{Name: name}
	if p.isPunct(token.LParen) {
		cols, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		alias.Columns = cols
	}
	return alias, nil
}

func (p *Parser) parseOrderByList() ([]*ast.OrderByExpr, error) {
	var list []*ast.OrderByExpr
	for {
		e, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		ob := &ast.OrderByExpr{Expr: e}
		if p.eatKeyword(token.ASC) {
			v := true
			ob.Asc = &v
		} else if p.eatKeyword(token.DESC) {
			v := false
			ob.Asc = &v
		}
		if p.eatKeyword(token.NULLS) {
			if p.eatKeyword(token.FIRST) {
				v := true
				ob.NullsFirst = &v
			} else if err := p.expectKeyword(token.LAST); err != nil {
				return nil, err
			} else {
				v := false
				ob.NullsFirst = &v
			}
		}
		list = append(list, ob)
		if !p.eatPunct(token.Comma) {
			break
		}
	}
	return list, nil
}

func (p *Parser) parseOffset() (*ast.Offset, error) {
	p.advance() // OFFSET
	value, err := p.parseExpr(PrecLowest)
	if err != nil {
		return nil, err
	}
	off := &ast.Offset{Value: value, Rows: true}
	if p.eatKeyword(token.ROW) {
		off.Rows = false
	} else {
		p.eatKeyword(token.ROWS)
	}
	return off, nil
}

func (p *Parser) parseFetch() (*ast.Fetch, error) {
	p.advance() // FETCH
	if !p.eatKeyword(token.FIRST) {
		if err := p.expectKeyword(token.NEXT); err != nil {
			return nil, err
		}
	}
	value, err := p.parseExpr(PrecLowest)
	if err != nil {
		return nil, err
	}
	f := &ast.Fetch{Value: value}
	if p.eatKeyword(token.PERCENT) {
		f.Percent = true
	}
	if !p.eatKeyword(token.ROW) {
		if err := p.expectKeyword(token.ROWS); err != nil {
			return nil, err
		}
	}
	if p.eatKeyword(token.WITH) {
		if err := p.expectKeyword(token.TIES); err != nil {
			return nil, err
		}
		f.WithTies = true
	} else if err := p.expectKeyword(token.ONLY); err != nil {
		return nil, err
	}
	return f, nil
}

func (p *Parser) parseLock() (*ast.Lock, error) {
	p.advance() // FOR
	lock := &ast.Lock{}
	if p.eatKeyword(token.UPDATE) {
		lock.Kind = ast.LockUpdate
	} else if err := p.expectKeyword(token.SHARE); err != nil {
		return nil, err
	} else {
		lock.Kind = ast.LockShare
	}
	if p.eatKeyword(token.OF) {
		for {
			name, err := p.parseObjectName()
			if err != nil {
				return nil, err
			}
			lock.Of = append(lock.Of, name)
			if !p.eatPunct(token.Comma) {
				break
			}
		}
	}
	if p.eatKeyword(token.NOWAIT) {
		lock.NoWait = true
	} else if p.eatKeyword(token.SKIP) {
		if err := p.expectKeyword(token.LOCKED); err != nil {
			return nil, err
		}
		lock.SkipLocked = true
	}
	return lock, nil
}

func (p *Parser) parseWindowSpec() (*ast.WindowSpec, error) {
	if p.d.Flags().SupportsWindowClauseNamedWindowReference {
		if t := p.peek(); t.Kind == token.Word && t.Keyword == token.NoKeyword {
			name, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			return &ast.WindowSpec{Name: name}, nil
		}
	}
	if err := p.expectPunct(token.LParen); err != nil {
		return nil, err
	}
	spec, err := p.parseWindowSpecBody()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(token.RParen); err != nil {
		return nil, err
	}
	return spec, nil
}

func (p *Parser) parseWindowSpecBody() (*ast.WindowSpec, error) {
	spec := &ast.WindowSpec{}
	if t := p.peek(); t.Kind == token.Word && t.Keyword == token.NoKeyword {
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		spec.Name = name
	}
	if p.eatKeyword(token.PARTITION) {
		if err := p.expectKeyword(token.BY); err != nil {
			return nil, err
		}
		for {
			e, err := p.parseExpr(PrecLowest)
			if err != nil {
				return nil, err
			}
			spec.PartitionBy = append(spec.PartitionBy, e)
			if !p.eatPunct(token.Comma) {
				break
			}
		}
	}
	if p.eatKeyword(token.ORDER) {
		if err := p.expectKeyword(token.BY); err != nil {
			return nil, err
		}
		obs, err := p.parseOrderByList()
		if err != nil {
			return nil, err
		}
		spec.OrderBy = obs
	}
	if p.isKeyword(token.ROWS) || p.isKeyword(token.RANGE) || p.isKeyword(token.GROUPS) {
		frame, err := p.parseWindowFrame()
		if err != nil {
			return nil, err
		}
		spec.Frame = frame
	}
	return spec, nil
}

func (p *Parser) parseWindowFrame() (*ast.WindowFrame, error) {
	frame := &ast.WindowFrame{}
	switch {
	case p.eatKeyword(token.ROWS):
		frame.Unit = ast.FrameRows
	case p.eatKeyword(token.RANGE):
		frame.Unit = ast.FrameRange
	default:
		if err := p.expectKeyword(token.GROUPS); err != nil {
			return nil, err
		}
		frame.Unit = ast.FrameGroups
	}
	if p.eatKeyword(token.BETWEEN) {
		start, err := p.parseWindowFrameBound()
		if err != nil {
			return nil, err
		}
		frame.Start = start
		if err := p.expectKeyword(token.AND); err != nil {
			return nil, err
		}
		end, err := p.parseWindowFrameBound()
		if err != nil {
			return nil, err
		}
		frame.End = end
	} else {
		start, err := p.parseWindowFrameBound()
		if err != nil {
			return nil, err
		}
		frame.Start = start
	}
	return frame, nil
}

func (p *Parser) parseWindowFrameBound() (*ast.WindowFrameBound, error) {
	if p.eatKeyword(token.CURRENT) {
		if err := p.expectKeyword(token.ROW); err != nil {
			return nil, err
		}
		return &ast.WindowFrameBound{Kind: ast.BoundCurrentRow}, nil
	}
	if p.eatKeyword(token.UNBOUNDED) {
		if p.eatKeyword(token.PRECEDING) {
			return &ast.WindowFrameBound{Kind: ast.BoundUnboundedPreceding}, nil
		}
		if err := p.expectKeyword(token.FOLLOWING); err != nil {
			return nil, err
		}
		return &ast.WindowFrameBound{Kind: ast.BoundUnboundedFollowing}, nil
	}
	offset, err := p.parseExpr(PrecLowest)
	if err != nil {
		return nil, err
	}
	if p.eatKeyword(token.PRECEDING) {
		return &ast.WindowFrameBound{Kind: ast.BoundPreceding, Offset: offset}, nil
	}
	if err := p.expectKeyword(token.FOLLOWING); err != nil {
		return nil, err
	}
	return &ast.WindowFrameBound{Kind: ast.BoundFollowing, Offset: offset}, nil
}
