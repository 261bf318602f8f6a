package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polysql/sqlparser/dialect"
	"github.com/polysql/sqlparser/lexer"
	"github.com/polysql/sqlparser/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := lexer.New(src, dialect.DefaultGeneric).Tokenize()
	require.NoError(t, err)
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tk := range toks {
		out[i] = tk.Kind
	}
	return out
}

func TestTokenizeSimpleSelect(t *testing.T) {
	toks := tokenize(t, "SELECT a, b FROM t WHERE a = 1")
	assert.Equal(t, []token.Kind{
		token.Word, token.Word, token.Comma, token.Word, token.Word, token.Word,
		token.Word, token.Word, token.Eq, token.Number, token.EOF,
	}, kinds(toks))
	assert.Equal(t, token.SELECT, toks[0].Keyword)
	assert.Equal(t, token.NoKeyword, toks[1].Keyword)
	assert.Equal(t, "a", toks[1].Text)
}

func TestTokenizeStringLiteralWithDoubledQuote(t *testing.T) {
	toks := tokenize(t, "'it''s'")
	require.Len(t, toks, 2)
	assert.Equal(t, token.SingleQuotedString, toks[0].Kind)
	assert.Equal(t, "it's", toks[0].Text)
}

func TestTokenizeDelimitedIdentifier(t *testing.T) {
	toks := tokenize(t, `"My Column"`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.Word, toks[0].Kind)
	assert.Equal(t, "My Column", toks[0].Text)
	assert.Equal(t, token.DoubleQuote, toks[0].QuoteStyle)
}

func TestTokenizeBracketDelimitedIdentifier(t *testing.T) {
	// '[' only opens a quoted identifier for dialects that opt into it;
	// DefaultGeneric reserves brackets for array/subscript syntax instead.
	bracketed := dialect.NewGeneric(dialect.Flags{SupportsBracketQuotedIdentifiers: true})
	toks, err := lexer.New(`[order]`, bracketed).Tokenize()
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, "order", toks[0].Text)
	assert.Equal(t, token.BracketQuote, toks[0].QuoteStyle)
}

func TestTokenizeArrayBracketsAsPunctuation(t *testing.T) {
	toks := tokenize(t, "a[1]")
	assert.Equal(t, []token.Kind{
		token.Word, token.LBracket, token.Number, token.RBracket, token.EOF,
	}, kinds(toks))
}

func TestTokenizeLeadingDotNumber(t *testing.T) {
	toks := tokenize(t, ".5")
	require.Len(t, toks, 2)
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.Equal(t, ".5", toks[0].Text)
}

func TestTokenizeBareDotIsPunctuation(t *testing.T) {
	toks := tokenize(t, "a.b")
	assert.Equal(t, []token.Kind{token.Word, token.Dot, token.Word, token.EOF}, kinds(toks))
}

func TestTokenizeNationalString(t *testing.T) {
	toks := tokenize(t, `N'hello'`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.NationalString, toks[0].Kind)
	assert.Equal(t, "hello", toks[0].Text)
}

func TestTokenizeLineComment(t *testing.T) {
	toks := tokenize(t, "SELECT 1 -- trailing comment\nFROM t")
	assert.Equal(t, []token.Kind{token.Word, token.Number, token.Word, token.Word, token.EOF}, kinds(toks))
}

func TestTokenizeBlockComment(t *testing.T) {
	toks := tokenize(t, "SELECT /* inline */ 1")
	assert.Equal(t, []token.Kind{token.Word, token.Number, token.EOF}, kinds(toks))
}

func TestTokenizeNumberWithExponent(t *testing.T) {
	toks := tokenize(t, "1.5e10")
	require.Len(t, toks, 2)
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.Equal(t, "1.5e10", toks[0].Text)
}

func TestTokenizeDoubleColonCast(t *testing.T) {
	toks := tokenize(t, "a::int")
	assert.Equal(t, []token.Kind{token.Word, token.DoubleColon, token.Word, token.EOF}, kinds(toks))
}

func TestTokenizeJSONOperators(t *testing.T) {
	toks := tokenize(t, "a->>'x'")
	require.GreaterOrEqual(t, len(toks), 3)
	assert.Equal(t, token.LongArrow, toks[1].Kind)
}

func TestTokenizeNamedPlaceholder(t *testing.T) {
	toks := tokenize(t, ":name")
	require.Len(t, toks, 2)
	assert.Equal(t, token.Placeholder, toks[0].Kind)
	assert.Equal(t, ":name", toks[0].Text)
}

func TestTokenizeUnterminatedStringErrors(t *testing.T) {
	_, err := lexer.New("'unterminated", dialect.DefaultGeneric).Tokenize()
	require.Error(t, err)
	var tokErr *lexer.TokenizerError
	require.ErrorAs(t, err, &tokErr)
}

func TestTokenizeDollarQuotedString(t *testing.T) {
	toks := tokenize(t, "$$it's a string$$")
	require.Len(t, toks, 2)
	assert.Equal(t, token.DollarQuotedString, toks[0].Kind)
	assert.Equal(t, "it's a string", toks[0].Text)
}

func TestTokenizeBareDollarFallsBackWithoutLosingFollowingText(t *testing.T) {
	// "foo" is not a closed $tag$, so it must still surface as its own
	// Word token rather than being swallowed by the abandoned tag scan.
	toks := tokenize(t, "$foo bar")
	assert.Equal(t, []token.Kind{token.Placeholder, token.Word, token.Word, token.EOF}, kinds(toks))
	assert.Equal(t, "$", toks[0].Text)
	assert.Equal(t, "foo", toks[1].Text)
	assert.Equal(t, "bar", toks[2].Text)
}

func TestTokenizeUnclosedDollarTagFallsBackToPlaceholder(t *testing.T) {
	toks := tokenize(t, "$foo")
	assert.Equal(t, []token.Kind{token.Placeholder, token.Word, token.EOF}, kinds(toks))
}
