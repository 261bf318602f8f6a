package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polysql/sqlparser/dialect"
)

func TestGenericIdentifierClassification(t *testing.T) {
	g := dialect.NewGeneric(dialect.Flags{})
	assert.True(t, g.IsIdentifierStart('_'))
	assert.True(t, g.IsIdentifierStart('a'))
	assert.False(t, g.IsIdentifierStart('1'))
	assert.True(t, g.IsIdentifierPart('1'))
	assert.True(t, g.IsIdentifierPart('$'))
}

func TestGenericDelimitedIdentifierStart(t *testing.T) {
	g := dialect.NewGeneric(dialect.Flags{})
	assert.True(t, g.IsDelimitedIdentifierStart('"'))
	assert.True(t, g.IsDelimitedIdentifierStart('`'))
	assert.False(t, g.IsDelimitedIdentifierStart('\''))

	// '[' is reserved for array/subscript syntax unless the dialect opts
	// into bracket-quoted identifiers instead.
	assert.False(t, g.IsDelimitedIdentifierStart('['))
	bracketed := dialect.NewGeneric(dialect.Flags{SupportsBracketQuotedIdentifiers: true})
	assert.True(t, bracketed.IsDelimitedIdentifierStart('['))
}

func TestGenericQuoteStyleNotRequiredForUppercaseIdent(t *testing.T) {
	// Unquoted identifiers fold to upper case, so only an already
	// all-upper identifier round-trips unquoted.
	g := dialect.NewGeneric(dialect.Flags{})
	_, required := g.IdentifierQuoteStyle("CUSTOMER_ID")
	assert.False(t, required)
}

func TestGenericQuoteStyleRequiredForMixedCaseIdent(t *testing.T) {
	g := dialect.NewGeneric(dialect.Flags{})
	quote, required := g.IdentifierQuoteStyle("Customer")
	assert.True(t, required)
	assert.Equal(t, '"', quote)
}

func TestGenericQuoteStyleRequiredForEmptyIdent(t *testing.T) {
	g := dialect.NewGeneric(dialect.Flags{})
	_, required := g.IdentifierQuoteStyle("")
	assert.True(t, required)
}

func TestGenericQuoteStyleRequiredWhenStartingWithDigit(t *testing.T) {
	g := dialect.NewGeneric(dialect.Flags{})
	_, required := g.IdentifierQuoteStyle("1abc")
	assert.True(t, required)
}

func TestDefaultGenericEnablesGatedCapabilities(t *testing.T) {
	flags := dialect.DefaultGeneric.Flags()
	assert.True(t, flags.SupportsFilterDuringAggregation)
	assert.True(t, flags.SupportsInEmptyList)
	assert.True(t, flags.SupportsSelectWildcardExcept)
	assert.False(t, flags.SupportsLambdaFunctions)
}
