// Package token defines the closed set of lexical token kinds produced by
// the tokenizer (package lexer) and consumed by the parser.
package token

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	// Word is either an unquoted identifier or a recognized Keyword; the
	// distinction is carried in Token.Keyword (zero value NoKeyword for a
	// plain identifier).
	Word

	// Number is a numeric literal; Token.IsLong records whether the
	// mantissa contained a decimal point or exponent.
	Number

	SingleQuotedString     // 'text'
	NationalString         // N'text'
	HexString              // X'1A2B' or x'1a2b'
	BitString              // B'0101'
	EscapedString          // E'text' with backslash escapes, when the dialect allows it
	DollarQuotedString     // $tag$text$tag$
	Placeholder            // ?, $1, @name, :name

	// Punctuation. Each distinct surface symbol gets its own Kind so the
	// parser can switch on it directly instead of re-comparing strings.
	Comma
	Semicolon
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	Dot
	Colon
	DoubleColon // ::
	Plus
	Minus
	Mul
	Div
	Mod
	Caret // ^ (exponent, not bitwise-xor, unlike the teacher's T-SQL table)
	Eq
	Neq      // <>
	Lt
	Gt
	LtEq
	GtEq
	AndAnd // &&
	PipePipe // ||  (string concat in ANSI/PG, not bitwise-or)
	Pipe     // |   bitwise-or
	Amp      // &   bitwise-and
	Tilde    // ~
	Shl      // <<
	Shr      // >>
	Hash          // #
	AtSign        // @
	Arrow         // ->
	LongArrow     // ->>
	HashArrow     // #>
	HashLongArrow // #>>
	AtArrow       // @>
	ArrowAt       // <@
	Question      // ?  used as JSON "has key" operator, distinct from Placeholder '?'
	QuestionPipe  // ?|
	QuestionAmp   // ?&
	CubeRoot      // ||/
	SquareRoot    // |/
	Bang          // !  factorial postfix
	BangBang      // !! prefix factorial, distinct from Bang
	ExclaimEq     // != (parsed to the same operator as Neq)

	Comment // discarded by the tokenizer; never seen by the parser
)

var kindNames = map[Kind]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF", Word: "WORD", Number: "NUMBER",
	SingleQuotedString: "STRING", NationalString: "NSTRING", HexString: "HEXSTRING",
	BitString: "BITSTRING", EscapedString: "ESTRING", DollarQuotedString: "DOLLARSTRING",
	Placeholder: "PLACEHOLDER",
	Comma: ",", Semicolon: ";", LParen: "(", RParen: ")", LBracket: "[", RBracket: "]",
	LBrace: "{", RBrace: "}", Dot: ".", Colon: ":", DoubleColon: "::",
	Plus: "+", Minus: "-", Mul: "*", Div: "/", Mod: "%", Caret: "^",
	Eq: "=", Neq: "<>", Lt: "<", Gt: ">", LtEq: "<=", GtEq: ">=",
	AndAnd: "&&", PipePipe: "||", Pipe: "|", Amp: "&", Tilde: "~",
	Shl: "<<", Shr: ">>", Hash: "#", AtSign: "@",
	Arrow: "->", LongArrow: "->>", HashArrow: "#>", HashLongArrow: "#>>",
	AtArrow: "@>", ArrowAt: "<@", Question: "?", QuestionPipe: "?|", QuestionAmp: "?&",
	CubeRoot: "||/", SquareRoot: "|/", Bang: "!", BangBang: "!!", ExclaimEq: "!=",
	Comment: "COMMENT",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// QuoteStyle records which delimiter, if any, quoted an identifier or
// string literal. Zero value NoQuote means unquoted.
type QuoteStyle rune

const (
	NoQuote         QuoteStyle = 0
	DoubleQuote     QuoteStyle = '"'
	Backtick        QuoteStyle = '`'
	BracketQuote    QuoteStyle = '['
	SingleQuoteMark QuoteStyle = '\''
)

// Position is a 1-based line/column location of a token's first character.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a lexed unit: a kind tag plus the payload needed to reconstruct
// or interpret it, and the position of its first character.
type Token struct {
	Kind Kind
	Pos  Position

	// Text is the token's literal text: the decoded identifier (unescaped,
	// without surrounding quotes), decoded string contents, or the raw
	// digits of a number.
	Text string

	Keyword    Keyword    // NoKeyword unless Kind == Word and Text matched the keyword table
	QuoteStyle QuoteStyle // for Word and *String kinds
	IsLong     bool       // for Number: true if it has a '.' or exponent (i.e. not a plain integer)
}

func (t Token) String() string {
	if t.Kind == Word {
		return t.Text
	}
	if s, ok := kindNames[t.Kind]; ok && t.Text == "" {
		return s
	}
	return t.Text
}
