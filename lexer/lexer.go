// Package lexer implements the hand-written tokenizer (spec component
// C2): a single left-to-right pass over a source.Reader that produces
// token.Token values, parameterized by a dialect.Dialect for identifier
// character classification and a handful of literal-form capability
// flags. Whitespace and comments are discarded; everything else becomes
// exactly one token.
package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/polysql/sqlparser/dialect"
	"github.com/polysql/sqlparser/source"
	"github.com/polysql/sqlparser/token"
)

// TokenizerError reports a lexical error with its source position. It
// is a plain error type (no wrapping) so library callers never need an
// errors.As chain to recover Line/Column; the CLI layer may still wrap
// it for display.
type TokenizerError struct {
	Message string
	Line    int
	Column  int
}

func (e *TokenizerError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func newErr(pos token.Position, format string, args ...interface{}) *TokenizerError {
	return &TokenizerError{Message: fmt.Sprintf(format, args...), Line: pos.Line, Column: pos.Column}
}

// Lexer produces tokens from a source string for a given dialect.
type Lexer struct {
	r *source.Reader
	d dialect.Dialect
}

// New builds a Lexer over input for dialect d.
func New(input string, d dialect.Dialect) *Lexer {
	return &Lexer{r: source.New(input), d: d}
}

// Tokenize consumes the entire input and returns every token up to and
// including the terminal token.EOF token.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var toks []token.Token
	for {
		t, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks, nil
		}
	}
}

// Next scans and returns the next token, discarding any leading
// whitespace or comments.
func (l *Lexer) Next() (token.Token, error) {
	if err := l.skipTrivia(); err != nil {
		return token.Token{}, err
	}
	pos := token.Position(l.r.Position())
	r, ok := l.r.Peek()
	if !ok {
		return token.Token{Kind: token.EOF, Pos: pos}, nil
	}

	switch {
	case l.d.IsIdentifierStart(r):
		return l.readWordLike(pos)
	case unicode.IsDigit(r):
		return l.readNumber(pos)
	case r == '.':
		if n, ok := l.r.PeekNth(1); ok && unicode.IsDigit(n) {
			return l.readNumber(pos)
		}
		return l.readPunctuation(pos)
	case r == '\'':
		return l.readQuotedString(pos, '\'', token.SingleQuotedString, "")
	case l.d.IsDelimitedIdentifierStart(r):
		return l.readDelimitedIdentifier(pos)
	case r == '$':
		return l.readDollarOrPlaceholder(pos)
	case r == '?':
		return l.readQuestionFamily(pos)
	case r == ':':
		return l.readColonFamily(pos)
	case r == '@':
		return l.readAtFamily(pos)
	default:
		return l.readPunctuation(pos)
	}
}

func (l *Lexer) skipTrivia() error {
	for {
		r, ok := l.r.Peek()
		if !ok {
			return nil
		}
		switch {
		case unicode.IsSpace(r):
			l.r.Advance()
		case r == '-':
			if n, ok := l.r.PeekNth(1); ok && n == '-' {
				l.skipLineComment()
				continue
			}
			return nil
		case r == '/':
			if n, ok := l.r.PeekNth(1); ok && n == '*' {
				if err := l.skipBlockComment(); err != nil {
					return err
				}
				continue
			}
			return nil
		default:
			return nil
		}
	}
}

func (l *Lexer) skipLineComment() {
	for {
		r, ok := l.r.Peek()
		if !ok || r == '\n' || r == '\r' {
			return
		}
		l.r.Advance()
	}
}

func (l *Lexer) skipBlockComment() error {
	start := token.Position(l.r.Position())
	l.r.Advance() // '/'
	l.r.Advance() // '*'
	depth := 1
	for depth > 0 {
		r, ok := l.r.Peek()
		if !ok {
			return newErr(start, "unterminated block comment")
		}
		if r == '*' {
			if n, ok := l.r.PeekNth(1); ok && n == '/' {
				l.r.Advance()
				l.r.Advance()
				depth--
				continue
			}
		}
		if r == '/' {
			if n, ok := l.r.PeekNth(1); ok && n == '*' {
				l.r.Advance()
				l.r.Advance()
				depth++
				continue
			}
		}
		l.r.Advance()
	}
	return nil
}

// readWordLike reads an identifier-shaped run and classifies it as a
// keyword or a plain Word, with the N'...'/X'...'/B'...'/E'...' string
// prefixes recognized as a special case when the run is exactly one of
// those letters immediately followed by a quote.
func (l *Lexer) readWordLike(pos token.Position) (token.Token, error) {
	start := l.r.Offset()
	first, _ := l.r.Advance()
	for {
		r, ok := l.r.Peek()
		if !ok || !l.d.IsIdentifierPart(r) {
			break
		}
		l.r.Advance()
	}
	text := l.r.Slice(start)

	if len(text) == 1 {
		if n, ok := l.r.Peek(); ok && n == '\'' {
			switch unicode.ToUpper(first) {
			case 'N':
				return l.readQuotedString(pos, '\'', token.NationalString, "N")
			case 'X':
				return l.readQuotedString(pos, '\'', token.HexString, "X")
			case 'B':
				return l.readQuotedString(pos, '\'', token.BitString, "B")
			case 'E':
				return l.readQuotedString(pos, '\'', token.EscapedString, "E")
			}
		}
	}

	kw := token.Lookup(text)
	return token.Token{Kind: token.Word, Pos: pos, Text: text, Keyword: kw}, nil
}

// readDelimitedIdentifier reads a quoted identifier opened by one of
// the dialect's delimiter runes, honoring doubled-closer escaping for
// every delimiter ("" inside "...", `` inside `...`, ]] inside [...]).
func (l *Lexer) readDelimitedIdentifier(pos token.Position) (token.Token, error) {
	opener, _ := l.r.Advance()
	closer := opener
	if opener == '[' {
		closer = ']'
	}
	var sb strings.Builder
	for {
		r, ok := l.r.Peek()
		if !ok {
			return token.Token{}, newErr(pos, "unterminated quoted identifier")
		}
		if r == closer {
			l.r.Advance()
			if n, ok := l.r.Peek(); ok && n == closer {
				l.r.Advance()
				sb.WriteRune(closer)
				continue
			}
			break
		}
		if !l.d.IsProperIdentifierInsideQuotes(dialect.QuoteState{Opener: opener, Rune: r}) {
			return token.Token{}, newErr(pos, "invalid character %q inside quoted identifier", r)
		}
		l.r.Advance()
		sb.WriteRune(r)
	}
	qs := token.NoQuote
	switch opener {
	case '"':
		qs = token.DoubleQuote
	case '`':
		qs = token.Backtick
	case '[':
		qs = token.BracketQuote
	}
	return token.Token{Kind: token.Word, Pos: pos, Text: sb.String(), QuoteStyle: qs}, nil
}

// readQuotedString reads a '...'-delimited literal (doubled-quote
// escaping, plus backslash escaping when the dialect enables it),
// tagging it with kind. prefix is informational only: when non-empty,
// the caller (readWordLike) has already consumed the lead letter
// (N/X/B/E) and the reader is positioned exactly at the opening quote.
func (l *Lexer) readQuotedString(pos token.Position, quote rune, kind token.Kind, prefix string) (token.Token, error) {
	l.r.Advance() // opening quote
	backslash := l.d.Flags().SupportsStringLiteralBackslashEscape
	var sb strings.Builder
	for {
		r, ok := l.r.Peek()
		if !ok {
			return token.Token{}, newErr(pos, "unterminated string literal")
		}
		if backslash && r == '\\' {
			l.r.Advance()
			esc, ok := l.r.Advance()
			if !ok {
				return token.Token{}, newErr(pos, "unterminated string literal")
			}
			sb.WriteRune(esc)
			continue
		}
		if r == quote {
			l.r.Advance()
			if n, ok := l.r.Peek(); ok && n == quote {
				l.r.Advance()
				sb.WriteRune(quote)
				continue
			}
			break
		}
		l.r.Advance()
		sb.WriteRune(r)
	}
	return token.Token{Kind: kind, Pos: pos, Text: sb.String()}, nil
}

// readNumber reads an integer or decimal/exponent numeric literal.
// Numeric-prefix forms (0x.../0b...) are recognized when the dialect's
// SupportsNumericPrefix flag is set.
func (l *Lexer) readNumber(pos token.Position) (token.Token, error) {
	start := l.r.Offset()
	first, _ := l.r.Advance()

	if first == '0' && l.d.Flags().SupportsNumericPrefix {
		if n, ok := l.r.Peek(); ok && (n == 'x' || n == 'X') {
			l.r.Advance()
			for {
				r, ok := l.r.Peek()
				if !ok || !isHexDigit(r) {
					break
				}
				l.r.Advance()
			}
			return token.Token{Kind: token.Number, Pos: pos, Text: l.r.Slice(start)}, nil
		}
		if n, ok := l.r.Peek(); ok && (n == 'b' || n == 'B') {
			l.r.Advance()
			for {
				r, ok := l.r.Peek()
				if !ok || (r != '0' && r != '1') {
					break
				}
				l.r.Advance()
			}
			return token.Token{Kind: token.Number, Pos: pos, Text: l.r.Slice(start)}, nil
		}
	}

	isLong := first == '.'
	for {
		r, ok := l.r.Peek()
		if !ok || !unicode.IsDigit(r) {
			break
		}
		l.r.Advance()
	}
	if r, ok := l.r.Peek(); ok && r == '.' {
		if n, ok2 := l.r.PeekNth(1); !ok2 || unicode.IsDigit(n) {
			l.r.Advance()
			isLong = true
			for {
				r, ok := l.r.Peek()
				if !ok || !unicode.IsDigit(r) {
					break
				}
				l.r.Advance()
			}
		}
	}
	if r, ok := l.r.Peek(); ok && (r == 'e' || r == 'E') {
		if n, ok2 := l.r.PeekNth(1); ok2 && (unicode.IsDigit(n) || n == '+' || n == '-') {
			l.r.Advance()
			isLong = true
			if n, ok2 := l.r.Peek(); ok2 && (n == '+' || n == '-') {
				l.r.Advance()
			}
			for {
				r, ok := l.r.Peek()
				if !ok || !unicode.IsDigit(r) {
					break
				}
				l.r.Advance()
			}
		}
	}
	return token.Token{Kind: token.Number, Pos: pos, Text: l.r.Slice(start), IsLong: isLong}, nil
}

// readDollarOrPlaceholder handles Postgres dollar-quoted strings
// ($tag$...$tag$) and $1-style numbered placeholders; a bare $ with no
// recognizable follow-on is returned as a Placeholder token.
func (l *Lexer) readDollarOrPlaceholder(pos token.Position) (token.Token, error) {
	start := l.r.Offset()
	l.r.Advance() // '$'

	if r, ok := l.r.Peek(); ok && unicode.IsDigit(r) {
		for {
			r, ok := l.r.Peek()
			if !ok || !unicode.IsDigit(r) {
				break
			}
			l.r.Advance()
		}
		return token.Token{Kind: token.Placeholder, Pos: pos, Text: l.r.Slice(start)}, nil
	}

	// Scan the candidate tag with lookahead only: until it's confirmed
	// valid (closed by a second '$'), nothing is consumed, so a bare '$'
	// followed by non-tag text (e.g. "$foo bar") falls back to a lone
	// Placeholder token without swallowing "foo" from the stream.
	tagRunes := 0
	for {
		r, ok := l.r.PeekNth(tagRunes)
		if ok && r == '$' {
			break
		}
		if !ok || !(l.d.IsIdentifierStart(r) || unicode.IsDigit(r)) {
			return token.Token{Kind: token.Placeholder, Pos: pos, Text: "$"}, nil
		}
		tagRunes++
	}
	tagStart := l.r.Offset()
	for i := 0; i < tagRunes; i++ {
		l.r.Advance()
	}
	tag := l.r.Slice(tagStart)
	l.r.Advance() // closing '$' of the opening tag
	delim := "$" + tag + "$"

	var sb strings.Builder
	for {
		if strings.HasPrefix(l.r.Rest(), delim) {
			for i := 0; i < len(delim); i++ {
				l.r.Advance()
			}
			break
		}
		r, ok := l.r.Advance()
		if !ok {
			return token.Token{}, newErr(pos, "unterminated dollar-quoted string")
		}
		sb.WriteRune(r)
	}
	return token.Token{Kind: token.DollarQuotedString, Pos: pos, Text: sb.String()}, nil
}

func (l *Lexer) readQuestionFamily(pos token.Position) (token.Token, error) {
	l.r.Advance()
	if n, ok := l.r.Peek(); ok {
		switch n {
		case '|':
			l.r.Advance()
			return token.Token{Kind: token.QuestionPipe, Pos: pos, Text: "?|"}, nil
		case '&':
			l.r.Advance()
			return token.Token{Kind: token.QuestionAmp, Pos: pos, Text: "?&"}, nil
		}
	}
	return token.Token{Kind: token.Placeholder, Pos: pos, Text: "?"}, nil
}

// readColonFamily handles ':' (Colon), '::' (DoubleColon, the cast
// operator), and ':name' (a named Placeholder).
func (l *Lexer) readColonFamily(pos token.Position) (token.Token, error) {
	l.r.Advance()
	if n, ok := l.r.Peek(); ok {
		if n == ':' {
			l.r.Advance()
			return token.Token{Kind: token.DoubleColon, Pos: pos, Text: "::"}, nil
		}
		if l.d.IsIdentifierStart(n) {
			start := l.r.Offset()
			for {
				r, ok := l.r.Peek()
				if !ok || !l.d.IsIdentifierPart(r) {
					break
				}
				l.r.Advance()
			}
			return token.Token{Kind: token.Placeholder, Pos: pos, Text: ":" + l.r.Slice(start)}, nil
		}
	}
	return token.Token{Kind: token.Colon, Pos: pos, Text: ":"}, nil
}

// readAtFamily handles '@' (AtSign) and '@name'/'@@name' session
// variable placeholders.
func (l *Lexer) readAtFamily(pos token.Position) (token.Token, error) {
	start := l.r.Offset()
	l.r.Advance()
	if n, ok := l.r.Peek(); ok && n == '@' {
		l.r.Advance()
	}
	if n, ok := l.r.Peek(); ok && l.d.IsIdentifierStart(n) {
		for {
			r, ok := l.r.Peek()
			if !ok || !l.d.IsIdentifierPart(r) {
				break
			}
			l.r.Advance()
		}
		return token.Token{Kind: token.Placeholder, Pos: pos, Text: l.r.Slice(start)}, nil
	}
	return token.Token{Kind: token.AtSign, Pos: pos, Text: "@"}, nil
}

// punct is one entry of the longest-match punctuation table: text is
// tried in the table's iteration order, so multi-character forms must
// precede any single-character prefix of themselves.
type punct struct {
	text string
	kind token.Kind
}

var punctTable = []punct{
	{"->>", token.LongArrow},
	{"->", token.Arrow},
	{"#>>", token.HashLongArrow},
	{"#>", token.HashArrow},
	{"@>", token.AtArrow},
	{"<@", token.ArrowAt},
	{"||/", token.CubeRoot},
	{"|/", token.SquareRoot},
	{"||", token.PipePipe},
	{"<<", token.Shl},
	{">>", token.Shr},
	{"<=", token.LtEq},
	{">=", token.GtEq},
	{"<>", token.Neq},
	{"!=", token.ExclaimEq},
	{"!!", token.BangBang},
	{",", token.Comma},
	{";", token.Semicolon},
	{"(", token.LParen},
	{")", token.RParen},
	{"[", token.LBracket},
	{"]", token.RBracket},
	{"{", token.LBrace},
	{"}", token.RBrace},
	{".", token.Dot},
	{"+", token.Plus},
	{"-", token.Minus},
	{"*", token.Mul},
	{"/", token.Div},
	{"%", token.Mod},
	{"^", token.Caret},
	{"=", token.Eq},
	{"<", token.Lt},
	{">", token.Gt},
	{"|", token.Pipe},
	{"&", token.Amp},
	{"~", token.Tilde},
	{"#", token.Hash},
	{"!", token.Bang},
}

func (l *Lexer) readPunctuation(pos token.Position) (token.Token, error) {
	rest := l.r.Rest()
	for _, p := range punctTable {
		if strings.HasPrefix(rest, p.text) {
			for range p.text {
				l.r.Advance()
			}
			return token.Token{Kind: p.kind, Pos: pos, Text: p.text}, nil
		}
	}
	r, _ := l.r.Advance()
	return token.Token{}, newErr(pos, "unexpected character %q", r)
}

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
