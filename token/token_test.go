package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polysql/sqlparser/token"
)

func TestLookupKnownKeyword(t *testing.T) {
	assert.Equal(t, token.SELECT, token.Lookup("select"))
	assert.Equal(t, token.SELECT, token.Lookup("SELECT"))
	assert.Equal(t, token.SELECT, token.Lookup("SeLeCt"))
}

func TestLookupPlainIdentifier(t *testing.T) {
	assert.Equal(t, token.NoKeyword, token.Lookup("customer_id"))
}

func TestKeywordStringRoundTrip(t *testing.T) {
	assert.Equal(t, "SELECT", token.SELECT.String())
	assert.Equal(t, "", token.NoKeyword.String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "(", token.LParen.String())
	assert.Equal(t, "WORD", token.Word.String())
}

func TestTokenStringPrefersText(t *testing.T) {
	tok := token.Token{Kind: token.Word, Text: "foo"}
	assert.Equal(t, "foo", tok.String())

	comma := token.Token{Kind: token.Comma, Text: ","}
	assert.Equal(t, ",", comma.String())
}

func TestPositionString(t *testing.T) {
	pos := token.Position{Line: 3, Column: 7}
	assert.Equal(t, "3:7", pos.String())
}
