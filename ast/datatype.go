package ast

import (
	"strconv"

	"github.com/polysql/sqlparser/writer"
)

// Boolean is the BOOLEAN/BOOL data type.
type Boolean struct{}

func (n *Boolean) node()         {}
func (n *Boolean) dataTypeNode() {}
func (n *Boolean) ToSQL(w *writer.Writer) { w.Keyword("boolean") }

// IntegerKind distinguishes the integer-family width keywords.
type IntegerKind int

const (
	IntSmallInt IntegerKind = iota
	IntInteger
	IntBigInt
	IntTinyInt
)

var integerKindText = map[IntegerKind]string{
	IntSmallInt: "smallint", IntInteger: "integer", IntBigInt: "bigint", IntTinyInt: "tinyint",
}

// Integer is a fixed-width whole-number type.
type Integer struct {
	Kind IntegerKind
}

func (n *Integer) node()         {}
func (n *Integer) dataTypeNode() {}
func (n *Integer) ToSQL(w *writer.Writer) { w.Keyword(integerKindText[n.Kind]) }

// FloatingKind distinguishes the approximate-numeric keywords.
type FloatingKind int

const (
	FloatReal FloatingKind = iota
	FloatDouble
	FloatFloat
)

var floatingKindText = map[FloatingKind]string{
	FloatReal: "real", FloatDouble: "double precision", FloatFloat: "float",
}

// Floating is an approximate-numeric type; Precision is nil unless the
// source spelled FLOAT(n).
type Floating struct {
	Kind      FloatingKind
	Precision *int
}

func (n *Floating) node()         {}
func (n *Floating) dataTypeNode() {}

func (n *Floating) ToSQL(w *writer.Writer) {
	w.Keyword(floatingKindText[n.Kind])
	if n.Precision != nil {
		w.WriteByte('(').WriteString(strconv.Itoa(*n.Precision)).WriteByte(')')
	}
}

// Decimal is DECIMAL/NUMERIC(precision, scale); Precision and Scale are
// nil when omitted from the source.
type Decimal struct {
	Numeric   bool // true renders NUMERIC, false renders DECIMAL
	Precision *int
	Scale     *int
}

func (n *Decimal) node()         {}
func (n *Decimal) dataTypeNode() {}

func (n *Decimal) ToSQL(w *writer.Writer) {
	if n.Numeric {
		w.Keyword("numeric")
	} else {
		w.Keyword("decimal")
	}
	if n.Precision != nil {
		w.WriteByte('(').WriteString(strconv.Itoa(*n.Precision))
		if n.Scale != nil {
			w.WriteString(", ").WriteString(strconv.Itoa(*n.Scale))
		}
		w.WriteByte(')')
	}
}

// CharKind distinguishes the character-string keywords.
type CharKind int

const (
	CharChar CharKind = iota
	CharVarchar
	CharText
	CharNChar
	CharNVarchar
)

var charKindText = map[CharKind]string{
	CharChar: "char", CharVarchar: "varchar", CharText: "text",
	CharNChar: "nchar", CharNVarchar: "nvarchar",
}

// Char is a character-string type; Length is nil when omitted (and is
// meaningless for CharText).
type Char struct {
	Kind   CharKind
	Length *int
}

func (n *Char) node()         {}
func (n *Char) dataTypeNode() {}

func (n *Char) ToSQL(w *writer.Writer) {
	w.Keyword(charKindText[n.Kind])
	if n.Length != nil {
		w.WriteByte('(').WriteString(strconv.Itoa(*n.Length)).WriteByte(')')
	}
}

// Binary is a byte-string type; Length is nil when omitted.
type Binary struct {
	Varying bool
	Length  *int
}

func (n *Binary) node()         {}
func (n *Binary) dataTypeNode() {}

func (n *Binary) ToSQL(w *writer.Writer) {
	if n.Varying {
		w.Keyword("varbinary")
	} else {
		w.Keyword("binary")
	}
	if n.Length != nil {
		w.WriteByte('(').WriteString(strconv.Itoa(*n.Length)).WriteByte(')')
	}
}

// DateTimeKind distinguishes the date/time family keywords.
type DateTimeKind int

const (
	DateTimeDate DateTimeKind = iota
	DateTimeTime
	DateTimeTimestamp
)

var dateTimeKindText = map[DateTimeKind]string{
	DateTimeDate: "date", DateTimeTime: "time", DateTimeTimestamp: "timestamp",
}

// DateTime is a date/time type; WithTimeZone is ignored for
// DateTimeDate. For TIME/TIMESTAMP, ToSQL always writes a zone suffix:
// "WITH TIME ZONE" when WithTimeZone is set, "WITHOUT TIME ZONE" otherwise.
type DateTime struct {
	Kind         DateTimeKind
	Precision    *int
	WithTimeZone bool
}

func (n *DateTime) node()         {}
func (n *DateTime) dataTypeNode() {}

func (n *DateTime) ToSQL(w *writer.Writer) {
	w.Keyword(dateTimeKindText[n.Kind])
	if n.Precision != nil {
		w.WriteByte('(').WriteString(strconv.Itoa(*n.Precision)).WriteByte(')')
	}
	if n.Kind != DateTimeDate {
		if n.WithTimeZone {
			w.Keyword(" with time zone")
		} else {
			w.Keyword(" without time zone")
		}
	}
}

// Interval is the bare INTERVAL data type (as opposed to IntervalLit,
// the expression-position literal).
type Interval struct{}

func (n *Interval) node()         {}
func (n *Interval) dataTypeNode() {}
func (n *Interval) ToSQL(w *writer.Writer) { w.Keyword("interval") }

// JSON is the JSON/JSONB data type.
type JSON struct {
	Binary bool // true renders JSONB
}

func (n *JSON) node()         {}
func (n *JSON) dataTypeNode() {}

func (n *JSON) ToSQL(w *writer.Writer) {
	if n.Binary {
		w.Keyword("jsonb")
	} else {
		w.Keyword("json")
	}
}

// UUID is the UUID data type.
type UUID struct{}

func (n *UUID) node()         {}
func (n *UUID) dataTypeNode() {}
func (n *UUID) ToSQL(w *writer.Writer) { w.Keyword("uuid") }

// ArrayBracket distinguishes the three surface shapes a dialect may use
// to spell an array type (spec §4.3: "three array shapes").
type ArrayBracket int

const (
	ArrayAngle  ArrayBracket = iota // ARRAY<elem>
	ArraySquare                     // elem[]  or  elem[n]
	ArrayParen                      // elem ARRAY  or  ARRAY(elem)
)

// Array is an array-of-Elem type; Size is non-nil only for the
// ArraySquare shape with an explicit bound (elem[n]).
type Array struct {
	Elem   DataType `sql:"child"`
	Shape  ArrayBracket
	Size   *int
}

func (n *Array) node()         {}
func (n *Array) dataTypeNode() {}

func (n *Array) ToSQL(w *writer.Writer) {
	switch n.Shape {
	case ArrayAngle:
		w.Keyword("array").WriteByte('<')
		n.Elem.ToSQL(w)
		w.WriteByte('>')
	case ArraySquare:
		n.Elem.ToSQL(w)
		w.WriteByte('[')
		if n.Size != nil {
			w.WriteString(strconv.Itoa(*n.Size))
		}
		w.WriteByte(']')
	case ArrayParen:
		n.Elem.ToSQL(w)
		w.Keyword(" array")
	}
}

// UserDefined is a type named by the dialect's own catalog (e.g. a
// Postgres domain, composite type, or enum) that this module has no
// built-in keyword for.
type UserDefined struct {
	Name *ObjectName `sql:"child"`
}

func (n *UserDefined) node()         {}
func (n *UserDefined) dataTypeNode() {}
func (n *UserDefined) ToSQL(w *writer.Writer) { n.Name.ToSQL(w) }
