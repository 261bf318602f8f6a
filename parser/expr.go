package parser

import (
	"github.com/polysql/sqlparser/ast"
	"github.com/polysql/sqlparser/token"
)

// Precedence levels for the Pratt expression parser, lowest to
// highest. Values are spaced out so a dialect's PrecedenceHook can
// slot a custom operator strictly between two built-in levels.
const (
	PrecLowest = 0
	PrecOr     = 10
	PrecAnd    = 20
	PrecNot    = 30
	PrecIs     = 40 // IS [NOT] NULL/TRUE/FALSE/UNKNOWN/DISTINCT FROM
	PrecCmp    = 50 // = <> < > <= >=, LIKE/ILIKE, BETWEEN, IN
	PrecBitOr  = 60
	PrecBitAnd = 70
	PrecShift  = 80
	PrecAdd    = 90
	PrecMul    = 100
	PrecExp    = 110
	PrecCollate = 120
	PrecAtTimeZone = 130
	PrecUnary  = 140
	PrecDoubleColon = 150
	PrecSubscript   = 160
)

// ParseExpr parses a single expression and requires the parser to have
// consumed the whole token stream up to EOF afterward.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	e, err := p.parseExpr(PrecLowest)
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		return nil, errAt(p.peek().Pos, "unexpected trailing input %q", p.peek().String())
	}
	return e, nil
}

func (p *Parser) parseExpr(minPrec int) (ast.Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for {
		prec := p.getPrecedence()
		if prec <= minPrec {
			return left, nil
		}
		left, err = p.parseInfix(left, prec)
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) getPrecedence() int {
	if h, ok := p.d.(PrecedenceHook); ok {
		if prec, ok2 := h.GetNextPrecedence(p); ok2 {
			return prec
		}
	}
	return p.builtinPrecedence()
}

func (p *Parser) builtinPrecedence() int {
	t := p.peek()
	if t.Kind == token.Word {
		switch t.Keyword {
		case token.OR:
			return PrecOr
		case token.AND:
			return PrecAnd
		case token.IS:
			return PrecIs
		case token.NOT:
			// NOT LIKE / NOT IN / NOT BETWEEN
			if n := p.peekN(1); n.Kind == token.Word {
				switch n.Keyword {
				case token.LIKE, token.ILIKE, token.IN, token.BETWEEN:
					return PrecCmp
				}
			}
			return PrecLowest
		case token.LIKE, token.ILIKE, token.IN, token.BETWEEN:
			return PrecCmp
		case token.COLLATE:
			return PrecCollate
		case token.AT:
			return PrecAtTimeZone
		}
		return PrecLowest
	}
	switch t.Kind {
	case token.Eq, token.Neq, token.ExclaimEq, token.Lt, token.Gt, token.LtEq, token.GtEq:
		return PrecCmp
	case token.Pipe:
		return PrecBitOr
	case token.Amp:
		return PrecBitAnd
	case token.Shl, token.Shr:
		return PrecShift
	case token.Plus, token.Minus, token.PipePipe:
		return PrecAdd
	case token.Mul, token.Div, token.Mod:
		return PrecMul
	case token.Caret:
		return PrecExp
	case token.DoubleColon:
		return PrecDoubleColon
	case token.LBracket:
		return PrecSubscript
	case token.Arrow, token.LongArrow, token.HashArrow, token.HashLongArrow,
		token.AtArrow, token.ArrowAt, token.QuestionPipe, token.QuestionAmp:
		return PrecCmp
	}
	return PrecLowest
}

func (p *Parser) parsePrefix() (ast.Expr, error) {
	if h, ok := p.d.(PrefixHook); ok {
		mark := p.Mark()
		expr, handled, err := h.ParsePrefix(p)
		if handled {
			return expr, err
		}
		p.Reset(mark)
	}
	return p.parseBuiltinPrefix()
}

func (p *Parser) parseBuiltinPrefix() (ast.Expr, error) {
	t := p.peek()
	switch t.Kind {
	case token.Number:
		p.advance()
		return &ast.Literal{Kind: ast.LitNumber, Text: t.Text}, nil
	case token.SingleQuotedString:
		p.advance()
		return &ast.Literal{Kind: ast.LitSingleQuotedString, Text: t.Text}, nil
	case token.NationalString:
		p.advance()
		return &ast.Literal{Kind: ast.LitNationalString, Text: t.Text}, nil
	case token.HexString:
		p.advance()
		return &ast.Literal{Kind: ast.LitHexString, Text: t.Text}, nil
	case token.BitString:
		p.advance()
		return &ast.Literal{Kind: ast.LitBitString, Text: t.Text}, nil
	case token.EscapedString:
		p.advance()
		return &ast.Literal{Kind: ast.LitEscapedString, Text: t.Text}, nil
	case token.Placeholder:
		p.advance()
		return &ast.Literal{Kind: ast.LitPlaceholder, Text: t.Text}, nil
	case token.Mul:
		p.advance()
		return p.maybeWildcardExcept(&ast.Wildcard{})
	case token.Plus:
		p.advance()
		e, err := p.parseExpr(PrecUnary)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: ast.OpUnaryPlus, Expr: e}, nil
	case token.Minus:
		p.advance()
		e, err := p.parseExpr(PrecUnary)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: ast.OpUnaryMinus, Expr: e}, nil
	case token.Tilde:
		p.advance()
		e, err := p.parseExpr(PrecUnary)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: ast.OpBitwiseNot, Expr: e}, nil
	case token.LParen:
		return p.parseParenPrefix()
	case token.LBracket:
		return p.parseArrayLiteral(false)
	}

	if t.Kind == token.Word {
		switch t.Keyword {
		case token.NOT:
			p.advance()
			e, err := p.parseExpr(PrecNot)
			if err != nil {
				return nil, err
			}
			return &ast.UnaryOp{Op: ast.OpNot, Expr: e}, nil
		case token.NULL:
			p.advance()
			return &ast.Literal{Kind: ast.LitNull}, nil
		case token.TRUE:
			p.advance()
			return &ast.Literal{Kind: ast.LitBoolean, Bool: true}, nil
		case token.FALSE:
			p.advance()
			return &ast.Literal{Kind: ast.LitBoolean, Bool: false}, nil
		case token.CASE:
			return p.parseCase()
		case token.CAST:
			return p.parseCast(false)
		case token.TRY_CAST:
			return p.parseCast(true)
		case token.CONVERT:
			return p.parseConvert()
		case token.SUBSTRING:
			return p.parseSubstring()
		case token.EXISTS:
			return p.parseExists(false)
		case token.INTERVAL:
			return p.parseIntervalLit()
		case token.ARRAY:
			p.advance()
			if p.isPunct(token.LBracket) {
				return p.parseArrayLiteral(true)
			}
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
			return &ast.Subquery{Query: q}, nil
		case token.NOWAIT, token.SKIP, token.LOCKED:
			// never reachable as an expression prefix; fall through to error
		}
		if isDataTypeStart(t.Keyword) {
			mark := p.Mark()
			dt, err := p.tryParseDataType()
			if err == nil {
				if p.isPunct(token.SingleQuotedString) {
					s := p.advance()
					return &ast.TypedString{Type: dt, Value: s.Text}, nil
				}
			}
			p.Reset(mark)
		}
		return p.parseIdentOrFunctionCall()
	}

	return nil, errAt(t.Pos, "unexpected token %q in expression", t.String())
}

func (p *Parser) maybeWildcardExcept(wc ast.Expr) (ast.Expr, error) {
	if !p.d.Flags().SupportsSelectWildcardExcept || !p.isKeyword(token.EXCEPT) {
		return wc, nil
	}
	p.advance()
	cols, err := p.parseIdentList()
	if err != nil {
		return nil, err
	}
	return &ast.WildcardExcept{Wildcard: wc, Except: cols}, nil
}

func (p *Parser) parseParenPrefix() (ast.Expr, error) {
	p.advance() // '('
	if p.isKeyword(token.SELECT) || p.isKeyword(token.WITH) || p.isKeyword(token.VALUES) {
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct(token.RParen); err != nil {
			return nil, err
		}
		return &ast.Subquery{Query: q}, nil
	}
	first, err := p.parseExpr(PrecLowest)
	if err != nil {
		return nil, err
	}
	if p.eatPunct(token.Comma) {
		exprs := []ast.Expr{first}
		for {
			e, err := p.parseExpr(PrecLowest)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, e)
			if !p.eatPunct(token.Comma) {
				break
			}
		}
		if err := p.expectPunct(token.RParen); err != nil {
			return nil, err
		}
		return &ast.Tuple{Exprs: exprs}, nil
	}
	if err := p.expectPunct(token.RParen); err != nil {
		return nil, err
	}
	return &ast.Nested{Expr: first}, nil
}

func (p *Parser) parseArrayLiteral(named bool) (ast.Expr, error) {
	if err := p.expectPunct(token.LBracket); err != nil {
		return nil, err
	}
	var elems []ast.Expr
	if !p.isPunct(token.RBracket) {
		for {
			e, err := p.parseExpr(PrecLowest)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			if !p.eatPunct(token.Comma) {
				break
			}
		}
	}
	if err := p.expectPunct(token.RBracket); err != nil {
		return nil, err
	}
	return &ast.ArrayExpr{Elems: elems, Named: named}, nil
}

func (p *Parser) parseExists(negated bool) (ast.Expr, error) {
	if err := p.expectKeyword(token.EXISTS); err != nil {
		return nil, err
	}
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
	return &ast.Exists{Query: q, Negated: negated}, nil
}

func (p *Parser) parseCase() (ast.Expr, error) {
	p.advance() // CASE
	var operand ast.Expr
	if !p.isKeyword(token.WHEN) {
		e, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		operand = e
	}
	var whens []*ast.WhenClause
	for p.eatKeyword(token.WHEN) {
		cond, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword(token.THEN); err != nil {
			return nil, err
		}
		result, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		whens = append(whens, &ast.WhenClause{Cond: cond, Result: result})
	}
	var elseExpr ast.Expr
	if p.eatKeyword(token.ELSE) {
		e, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		elseExpr = e
	}
	if err := p.expectKeyword(token.END); err != nil {
		return nil, err
	}
	return &ast.CaseExpr{Operand: operand, Whens: whens, Else: elseExpr}, nil
}

func (p *Parser) parseCast(try bool) (ast.Expr, error) {
	p.advance() // CAST / TRY_CAST
	if err := p.expectPunct(token.LParen); err != nil {
		return nil, err
	}
	e, err := p.parseExpr(PrecLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(token.AS); err != nil {
		return nil, err
	}
	dt, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(token.RParen); err != nil {
		return nil, err
	}
	return &ast.Cast{Expr: e, Type: dt, TryCast: try}, nil
}

func (p *Parser) parseConvert() (ast.Expr, error) {
	p.advance() // CONVERT
	if err := p.expectPunct(token.LParen); err != nil {
		return nil, err
	}
	typeFirst := p.d.Flags().ConvertTypeBeforeValue
	var e ast.Expr
	var dt ast.DataType
	var err error
	if typeFirst {
		dt, err = p.parseDataType()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct(token.Comma); err != nil {
			return nil, err
		}
		e, err = p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
	} else {
		e, err = p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct(token.Comma); err != nil {
			return nil, err
		}
		dt, err = p.parseDataType()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expectPunct(token.RParen); err != nil {
		return nil, err
	}
	return &ast.Convert{Expr: e, Type: dt, TypeFirst: typeFirst}, nil
}

func (p *Parser) parseSubstring() (ast.Expr, error) {
	p.advance() // SUBSTRING
	if err := p.expectPunct(token.LParen); err != nil {
		return nil, err
	}
	e, err := p.parseExpr(PrecLowest)
	if err != nil {
		return nil, err
	}
	var from, forExpr ast.Expr
	if p.d.Flags().SupportsSubstringFromForExpression {
		if p.eatKeyword(token.FROM) {
			from, err = p.parseExpr(PrecLowest)
			if err != nil {
				return nil, err
			}
		}
		if p.eatKeyword(token.FOR) {
			forExpr, err = p.parseExpr(PrecLowest)
			if err != nil {
				return nil, err
			}
		}
	} else if p.eatPunct(token.Comma) {
		from, err = p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		if p.eatPunct(token.Comma) {
			forExpr, err = p.parseExpr(PrecLowest)
			if err != nil {
				return nil, err
			}
		}
	}
	if err := p.expectPunct(token.RParen); err != nil {
		return nil, err
	}
	return &ast.Substring{Expr: e, From: from, For: forExpr}, nil
}

func (p *Parser) parseIntervalLit() (ast.Expr, error) {
	p.advance() // INTERVAL
	value, err := p.parseExpr(PrecUnary)
	if err != nil {
		return nil, err
	}
	lit := &ast.IntervalLit{Value: value}
	if t := p.peek(); t.Kind == token.Word && isIntervalField(t.Keyword) {
		p.advance()
		lit.LeadingField = t.Text
		if p.eatKeyword(token.TO) {
			f := p.peek()
			if f.Kind == token.Word && isIntervalField(f.Keyword) {
				p.advance()
				lit.LastField = f.Text
			}
		}
	}
	return lit, nil
}

// isIntervalField accepts any bare word as a leading/trailing interval
// field (YEAR, MONTH, DAY, HOUR, MINUTE, SECOND are not reserved
// keywords in this table, so they tokenize as NoKeyword Words).
func isIntervalField(kw token.Keyword) bool {
	return kw == token.NoKeyword
}

// parseIdentOrFunctionCall parses a (possibly dotted) name and, if
// immediately followed by '(', turns it into a FunctionCall; otherwise
// it is a Identifier/CompoundIdent reference, with an optional
// qualified wildcard (`a.b.*`) and array subscripting.
// parseIdentOrFunctionCall parses a dotted name, stopping early for a
// trailing `.*` (QualifiedWildcard) since parseObjectName's own dot loop
// only knows how to consume further identifiers, not a star.
func (p *Parser) parseIdentOrFunctionCall() (ast.Expr, error) {
	first, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	parts := []*ast.Ident{first}
	for p.isPunct(token.Dot) {
		mark := p.Mark()
		p.advance() // '.'
		if p.eatPunct(token.Mul) {
			return &ast.QualifiedWildcard{Qualifier: &ast.ObjectName{Parts: parts}}, nil
		}
		next, err := p.parseIdent()
		if err != nil {
			p.Reset(mark)
			break
		}
		parts = append(parts, next)
	}
	name := &ast.ObjectName{Parts: parts}
	if p.isPunct(token.LParen) {
		return p.parseFunctionCallArgs(name)
	}
	if len(name.Parts) == 1 {
		return &ast.Identifier{Ident: name.Parts[0]}, nil
	}
	return &ast.CompoundIdent{Name: name}, nil
}

func (p *Parser) parseFunctionCallArgs(name *ast.ObjectName) (ast.Expr, error) {
	p.advance() // '('
	call := &ast.FunctionCall{Name: name}
	if p.eatKeyword(token.DISTINCT) {
		call.Distinct = true
	}
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
	if p.eatKeyword(token.IGNORE) {
		if err := p.expectKeyword(token.NULLS); err != nil {
			return nil, err
		}
		call.NullTreatment = ast.NullTreatmentIgnore
	} else if p.eatKeyword(token.RESPECT) {
		if err := p.expectKeyword(token.NULLS); err != nil {
			return nil, err
		}
		call.NullTreatment = ast.NullTreatmentRespect
	}
	if err := p.expectPunct(token.RParen); err != nil {
		return nil, err
	}
	if p.d.Flags().SupportsFilterDuringAggregation && p.eatKeyword(token.FILTER) {
		if err := p.expectPunct(token.LParen); err != nil {
			return nil, err
		}
		if err := p.expectKeyword(token.WHERE); err != nil {
			return nil, err
		}
		filter, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		call.Filter = filter
		if err := p.expectPunct(token.RParen); err != nil {
			return nil, err
		}
	}
	if p.eatKeyword(token.OVER) {
		spec, err := p.parseWindowSpec()
		if err != nil {
			return nil, err
		}
		call.Over = spec
	}
	return call, nil
}

func (p *Parser) parseFunctionArg() (*ast.FunctionArg, error) {
	if p.d.Flags().SupportsNamedFunctionArgsWithEqOperator &&
		p.peek().Kind == token.Word && (p.peekN(1).Kind == token.Eq) {
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		p.advance() // '='
		value, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		return &ast.FunctionArg{Name: name, Value: value}, nil
	}
	if p.isPunct(token.Mul) && p.peekN(1).Kind != token.LParen {
		p.advance()
		return &ast.FunctionArg{Value: &ast.Wildcard{}}, nil
	}
	value, err := p.parseExpr(PrecLowest)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionArg{Value: value}, nil
}

func (p *Parser) parseInfix(left ast.Expr, prec int) (ast.Expr, error) {
	if h, ok := p.d.(InfixHook); ok {
		mark := p.Mark()
		expr, handled, err := h.ParseInfix(p, left, prec)
		if handled {
			return expr, err
		}
		p.Reset(mark)
	}
	return p.parseBuiltinInfix(left, prec)
}

var binOpByKind = map[token.Kind]ast.BinaryOperator{
	token.Plus: ast.OpPlus, token.Minus: ast.OpMinus, token.Mul: ast.OpMul,
	token.Div: ast.OpDiv, token.Mod: ast.OpMod, token.Caret: ast.OpExp,
	token.Eq: ast.OpEq, token.Neq: ast.OpNotEq, token.ExclaimEq: ast.OpNotEq,
	token.Lt: ast.OpLt, token.Gt: ast.OpGt, token.LtEq: ast.OpLtEq, token.GtEq: ast.OpGtEq,
	token.Pipe: ast.OpBitwiseOr, token.Amp: ast.OpBitwiseAnd,
	token.Shl: ast.OpShiftLeft, token.Shr: ast.OpShiftRight, token.PipePipe: ast.OpStringConcat,
	token.Arrow: ast.OpArrow, token.LongArrow: ast.OpLongArrow,
	token.HashArrow: ast.OpHashArrow, token.HashLongArrow: ast.OpHashLongArrow,
	token.AtArrow: ast.OpAtArrow, token.ArrowAt: ast.OpArrowAt,
	token.QuestionPipe: ast.OpQuestionPipe, token.QuestionAmp: ast.OpQuestionAmp,
}

func (p *Parser) parseBuiltinInfix(left ast.Expr, prec int) (ast.Expr, error) {
	t := p.peek()

	if t.Kind == token.Word {
		switch t.Keyword {
		case token.AND:
			p.advance()
			r, err := p.parseExpr(PrecAnd)
			if err != nil {
				return nil, err
			}
			return &ast.BinaryOp{Left: left, Op: ast.OpAnd, Right: r}, nil
		case token.OR:
			p.advance()
			r, err := p.parseExpr(PrecOr)
			if err != nil {
				return nil, err
			}
			return &ast.BinaryOp{Left: left, Op: ast.OpOr, Right: r}, nil
		case token.IS:
			return p.parseIs(left)
		case token.COLLATE:
			p.advance()
			name, err := p.parseObjectName()
			if err != nil {
				return nil, err
			}
			return &ast.Collate{Expr: left, Collation: name}, nil
		case token.AT:
			p.advance()
			if err := p.expectKeyword(token.TIME); err != nil {
				return nil, err
			}
			if err := p.expectKeyword(token.ZONE); err != nil {
				return nil, err
			}
			zone, err := p.parseExpr(PrecAtTimeZone)
			if err != nil {
				return nil, err
			}
			return &ast.AtTimeZone{Expr: left, Zone: zone}, nil
		case token.LIKE, token.ILIKE:
			return p.parseLike(left, false, t.Keyword == token.ILIKE)
		case token.BETWEEN:
			return p.parseBetween(left, false)
		case token.IN:
			return p.parseIn(left, false)
		case token.NOT:
			p.advance()
			switch {
			case p.isKeyword(token.LIKE):
				kw := p.peek().Keyword
				p.advance()
				return p.parseLikeBody(left, true, kw == token.ILIKE)
			case p.isKeyword(token.ILIKE):
				p.advance()
				return p.parseLikeBody(left, true, true)
			case p.isKeyword(token.BETWEEN):
				p.advance()
				return p.parseBetweenBody(left, true)
			case p.isKeyword(token.IN):
				p.advance()
				return p.parseInBody(left, true)
			}
			return nil, errAt(p.peek().Pos, "expected LIKE/BETWEEN/IN after NOT, found %q", p.peek().String())
		}
	}

	switch t.Kind {
	case token.LBracket:
		p.advance()
		idx, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct(token.RBracket); err != nil {
			return nil, err
		}
		return &ast.ArraySubscript{Expr: left, Index: idx}, nil
	case token.DoubleColon:
		p.advance()
		dt, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		return &ast.Cast{Expr: left, Type: dt}, nil
	}

	if op, ok := binOpByKind[t.Kind]; ok {
		p.advance()
		rprec := prec
		if op == ast.OpExp {
			rprec = prec - 1 // right-associative
		}
		r, err := p.parseExpr(rprec)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Left: left, Op: op, Right: r}, nil
	}

	return nil, errAt(t.Pos, "unexpected token %q in expression", t.String())
}

func (p *Parser) parseIs(left ast.Expr) (ast.Expr, error) {
	p.advance() // IS
	negated := p.eatKeyword(token.NOT)
	switch {
	case p.eatKeyword(token.NULL):
		return &ast.Is{Expr: left, Kind: ast.IsKindNull, Negated: negated}, nil
	case p.eatKeyword(token.TRUE):
		return &ast.Is{Expr: left, Kind: ast.IsKindTrue, Negated: negated}, nil
	case p.eatKeyword(token.FALSE):
		return &ast.Is{Expr: left, Kind: ast.IsKindFalse, Negated: negated}, nil
	case p.eatKeyword(token.UNKNOWN):
		return &ast.Is{Expr: left, Kind: ast.IsKindUnknown, Negated: negated}, nil
	case p.eatKeyword(token.DISTINCT):
		if err := p.expectKeyword(token.FROM); err != nil {
			return nil, err
		}
		other, err := p.parseExpr(PrecIs)
		if err != nil {
			return nil, err
		}
		return &ast.Is{Expr: left, Kind: ast.IsKindDistinctFrom, Negated: negated, Other: other}, nil
	}
	return nil, errAt(p.peek().Pos, "expected NULL/TRUE/FALSE/UNKNOWN/DISTINCT after IS, found %q", p.peek().String())
}

func (p *Parser) parseLike(left ast.Expr, negated, ci bool) (ast.Expr, error) {
	p.advance() // LIKE / ILIKE
	return p.parseLikeBody(left, negated, ci)
}

func (p *Parser) parseLikeBody(left ast.Expr, negated, ci bool) (ast.Expr, error) {
	pattern, err := p.parseExpr(PrecCmp)
	if err != nil {
		return nil, err
	}
	var escape ast.Expr
	if p.eatKeyword(token.ESCAPE) {
		escape, err = p.parseExpr(PrecCmp)
		if err != nil {
			return nil, err
		}
	}
	return &ast.Like{Expr: left, Pattern: pattern, Escape: escape, Negated: negated, CaseInsensitive: ci}, nil
}

func (p *Parser) parseBetween(left ast.Expr, negated bool) (ast.Expr, error) {
	p.advance() // BETWEEN
	return p.parseBetweenBody(left, negated)
}

func (p *Parser) parseBetweenBody(left ast.Expr, negated bool) (ast.Expr, error) {
	low, err := p.parseExpr(PrecCmp)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(token.AND); err != nil {
		return nil, err
	}
	high, err := p.parseExpr(PrecCmp)
	if err != nil {
		return nil, err
	}
	return &ast.Between{Expr: left, Low: low, High: high, Negated: negated}, nil
}

func (p *Parser) parseIn(left ast.Expr, negated bool) (ast.Expr, error) {
	p.advance() // IN
	return p.parseInBody(left, negated)
}

func (p *Parser) parseInBody(left ast.Expr, negated bool) (ast.Expr, error) {
	if err := p.expectPunct(token.LParen); err != nil {
		return nil, err
	}
	if p.isKeyword(token.SELECT) || p.isKeyword(token.WITH) || p.isKeyword(token.VALUES) {
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct(token.RParen); err != nil {
			return nil, err
		}
		return &ast.InSubquery{Expr: left, Subquery: q, Negated: negated}, nil
	}
	var list []ast.Expr
	if !p.isPunct(token.RParen) {
		for {
			e, err := p.parseExpr(PrecLowest)
			if err != nil {
				return nil, err
			}
			list = append(list, e)
			if !p.eatPunct(token.Comma) {
				break
			}
		}
	} else if !p.d.Flags().SupportsInEmptyList {
		return nil, errAt(p.peek().Pos, "empty IN list not supported by this dialect")
	}
	if err := p.expectPunct(token.RParen); err != nil {
		return nil, err
	}
	return &ast.InList{Expr: left, List: list, Negated: negated}, nil
}
