package parser

import (
	"strconv"

	"github.com/polysql/sqlparser/ast"
	"github.com/polysql/sqlparser/token"
)

// isDataTypeStart reports whether kw can begin a data type, used to
// decide whether a typed-string prefix (DATE '...') is worth a
// speculative parse attempt.
func isDataTypeStart(kw token.Keyword) bool {
	switch kw {
	case token.BOOLEAN, token.INT, token.INTEGER, token.SMALLINT, token.BIGINT, token.TINYINT,
		token.FLOAT, token.REAL, token.DOUBLE, token.DECIMAL, token.NUMERIC,
		token.CHAR, token.CHARACTER, token.VARCHAR, token.NCHAR, token.NVARCHAR, token.NATIONAL, token.TEXT,
		token.BINARY, token.VARBINARY, token.BLOB,
		token.DATE, token.DATETIME, token.TIME, token.TIMESTAMP,
		token.INTERVAL, token.JSON, token.JSONB, token.UUID, token.ARRAY:
		return true
	}
	return false
}

// tryParseDataType is a thin wrapper used for speculative lookahead
// (typed-string literals): callers Mark() before calling and Reset() on
// failure.
func (p *Parser) tryParseDataType() (ast.DataType, error) {
	return p.parseDataType()
}

func (p *Parser) parseDataType() (ast.DataType, error) {
	base, err := p.parseBaseDataType()
	if err != nil {
		return nil, err
	}
	return p.parseArraySuffix(base)
}

// parseArraySuffix wraps base in zero or more ast.Array layers for
// trailing `[]`/`[n]` or ` ARRAY` suffixes, the ArraySquare/ArrayParen
// shapes (spec §4.3's "three array shapes" — the third, ArrayAngle, is
// a prefix form parsed directly in parseBaseDataType for ARRAY<...>).
func (p *Parser) parseArraySuffix(base ast.DataType) (ast.DataType, error) {
	result := base
	for {
		if p.isPunct(token.LBracket) {
			p.advance()
			var size *int
			if p.peek().Kind == token.Number {
				n, err := strconv.Atoi(p.peek().Text)
				if err != nil {
					return nil, errAt(p.peek().Pos, "invalid array size %q", p.peek().Text)
				}
				size = &n
				p.advance()
			}
			if err := p.expectPunct(token.RBracket); err != nil {
				return nil, err
			}
			result = &ast.Array{Elem: result, Shape: ast.ArraySquare, Size: size}
			continue
		}
		if p.isKeyword(token.ARRAY) {
			p.advance()
			result = &ast.Array{Elem: result, Shape: ast.ArrayParen}
			continue
		}
		return result, nil
	}
}

func (p *Parser) parseBaseDataType() (ast.DataType, error) {
	t := p.peek()
	if t.Kind != token.Word {
		return nil, errAt(t.Pos, "expected data type, found %q", t.String())
	}
	switch t.Keyword {
	case token.BOOLEAN:
		p.advance()
		return &ast.Boolean{}, nil
	case token.SMALLINT:
		p.advance()
		return &ast.Integer{Kind: ast.IntSmallInt}, nil
	case token.INT, token.INTEGER:
		p.advance()
		return &ast.Integer{Kind: ast.IntInteger}, nil
	case token.BIGINT:
		p.advance()
		return &ast.Integer{Kind: ast.IntBigInt}, nil
	case token.TINYINT:
		p.advance()
		return &ast.Integer{Kind: ast.IntTinyInt}, nil
	case token.REAL:
		p.advance()
		return &ast.Floating{Kind: ast.FloatReal}, nil
	case token.DOUBLE:
		p.advance()
		p.eatKeyword(token.PRECISION)
		return &ast.Floating{Kind: ast.FloatDouble}, nil
	case token.FLOAT:
		p.advance()
		prec, err := p.parseOptionalPrecision()
		if err != nil {
			return nil, err
		}
		return &ast.Floating{Kind: ast.FloatFloat, Precision: prec}, nil
	case token.DECIMAL, token.NUMERIC:
		numeric := t.Keyword == token.NUMERIC
		p.advance()
		prec, scale, err := p.parseOptionalPrecisionScale()
		if err != nil {
			return nil, err
		}
		return &ast.Decimal{Numeric: numeric, Precision: prec, Scale: scale}, nil
	case token.CHAR, token.CHARACTER:
		p.advance()
		if p.eatKeyword(token.VARYING) {
			length, err := p.parseOptionalPrecision()
			if err != nil {
				return nil, err
			}
			return &ast.Char{Kind: ast.CharVarchar, Length: length}, nil
		}
		length, err := p.parseOptionalPrecision()
		if err != nil {
			return nil, err
		}
		return &ast.Char{Kind: ast.CharChar, Length: length}, nil
	case token.VARCHAR:
		p.advance()
		length, err := p.parseOptionalPrecision()
		if err != nil {
			return nil, err
		}
		return &ast.Char{Kind: ast.CharVarchar, Length: length}, nil
	case token.NATIONAL:
		p.advance()
		varying := false
		if p.eatKeyword(token.CHARACTER) {
			varying = p.eatKeyword(token.VARYING)
		} else {
			p.eatKeyword(token.CHAR)
		}
		length, err := p.parseOptionalPrecision()
		if err != nil {
			return nil, err
		}
		if varying {
			return &ast.Char{Kind: ast.CharNVarchar, Length: length}, nil
		}
		return &ast.Char{Kind: ast.CharNChar, Length: length}, nil
	case token.NCHAR:
		p.advance()
		if p.eatKeyword(token.VARYING) {
			length, err := p.parseOptionalPrecision()
			if err != nil {
				return nil, err
			}
			return &ast.Char{Kind: ast.CharNVarchar, Length: length}, nil
		}
		length, err := p.parseOptionalPrecision()
		if err != nil {
			return nil, err
		}
		return &ast.Char{Kind: ast.CharNChar, Length: length}, nil
	case token.NVARCHAR:
		p.advance()
		length, err := p.parseOptionalPrecision()
		if err != nil {
			return nil, err
		}
		return &ast.Char{Kind: ast.CharNVarchar, Length: length}, nil
	case token.TEXT:
		p.advance()
		return &ast.Char{Kind: ast.CharText}, nil
	case token.BINARY:
		p.advance()
		length, err := p.parseOptionalPrecision()
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Length: length}, nil
	case token.VARBINARY:
		p.advance()
		length, err := p.parseOptionalPrecision()
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Varying: true, Length: length}, nil
	case token.BLOB:
		p.advance()
		return &ast.Binary{Varying: true}, nil
	case token.DATE:
		p.advance()
		return &ast.DateTime{Kind: ast.DateTimeDate}, nil
	case token.TIME:
		p.advance()
		return p.parseDateTimeTail(ast.DateTimeTime)
	case token.TIMESTAMP, token.DATETIME:
		p.advance()
		return p.parseDateTimeTail(ast.DateTimeTimestamp)
	case token.INTERVAL:
		p.advance()
		return &ast.Interval{}, nil
	case token.JSON:
		p.advance()
		return &ast.JSON{}, nil
	case token.JSONB:
		p.advance()
		return &ast.JSON{Binary: true}, nil
	case token.UUID:
		p.advance()
		return &ast.UUID{}, nil
	case token.ARRAY:
		p.advance()
		if p.eatPunct(token.Lt) {
			elem, err := p.parseDataType()
			if err != nil {
				return nil, err
			}
			if err := p.expectPunct(token.Gt); err != nil {
				return nil, err
			}
			return &ast.Array{Elem: elem, Shape: ast.ArrayAngle}, nil
		}
		if err := p.expectPunct(token.LParen); err != nil {
			return nil, err
		}
		elem, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct(token.RParen); err != nil {
			return nil, err
		}
		return &ast.Array{Elem: elem, Shape: ast.ArrayParen}, nil
	}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	return &ast.UserDefined{Name: name}, nil
}

func (p *Parser) parseDateTimeTail(kind ast.DateTimeKind) (ast.DataType, error) {
	prec, err := p.parseOptionalPrecision()
	if err != nil {
		return nil, err
	}
	dt := &ast.DateTime{Kind: kind, Precision: prec}
	if p.eatKeyword(token.WITH) {
		if err := p.expectKeyword(token.TIME); err != nil {
			return nil, err
		}
		if err := p.expectKeyword(token.ZONE); err != nil {
			return nil, err
		}
		dt.WithTimeZone = true
	} else if p.eatKeyword(token.WITHOUT) {
		if err := p.expectKeyword(token.TIME); err != nil {
			return nil, err
		}
		if err := p.expectKeyword(token.ZONE); err != nil {
			return nil, err
		}
	}
	return dt, nil
}

func (p *Parser) parseOptionalPrecision() (*int, error) {
	if !p.eatPunct(token.LParen) {
		return nil, nil
	}
	t := p.peek()
	if t.Kind != token.Number {
		return nil, errAt(t.Pos, "expected numeric precision, found %q", t.String())
	}
	n, err := strconv.Atoi(t.Text)
	if err != nil {
		return nil, errAt(t.Pos, "invalid precision %q", t.Text)
	}
	p.advance()
	if err := p.expectPunct(token.RParen); err != nil {
		return nil, err
	}
	return &n, nil
}

func (p *Parser) parseOptionalPrecisionScale() (*int, *int, error) {
	if !p.eatPunct(token.LParen) {
		return nil, nil, nil
	}
	pt := p.peek()
	if pt.Kind != token.Number {
		return nil, nil, errAt(pt.Pos, "expected numeric precision, found %q", pt.String())
	}
	precision, err := strconv.Atoi(pt.Text)
	if err != nil {
		return nil, nil, errAt(pt.Pos, "invalid precision %q", pt.Text)
	}
	p.advance()
	var scale *int
	if p.eatPunct(token.Comma) {
		st := p.peek()
		if st.Kind != token.Number {
			return nil, nil, errAt(st.Pos, "expected numeric scale, found %q", st.String())
		}
		s, err := strconv.Atoi(st.Text)
		if err != nil {
			return nil, nil, errAt(st.Pos, "invalid scale %q", st.Text)
		}
		scale = &s
		p.advance()
	}
	if err := p.expectPunct(token.RParen); err != nil {
		return nil, nil, err
	}
	return &precision, scale, nil
}
