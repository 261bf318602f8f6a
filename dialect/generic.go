package dialect

import (
	"unicode"

	"github.com/smasher164/xid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// upperFolder does Unicode-aware case folding for identifier comparisons
// involving non-ASCII letters, used by Generic.IdentifierQuoteStyle to
// decide whether an identifier's case would survive an unquoted
// round-trip. strings.ToUpper is ASCII-biased enough that, e.g., Turkish
// dotless-i handling differs from the Unicode default; cases.Upper picks
// the Unicode default (language.Und) rather than a locale-specific one,
// matching the tokenizer's own locale-agnostic keyword lookup.
var upperFolder = cases.Upper(language.Und)

// Generic is a permissive, ANSI-leaning Dialect with no dialect-specific
// restrictions: it is the one concrete Dialect this module ships, used
// by the public Parse/ParseExpr entry points when the caller passes nil,
// and by the test suite. It implements no parser hooks, so the parser's
// optional-hook type assertions (parser.StatementHook etc.) always miss
// for it and every construct falls through to the built-in grammar.
type Generic struct {
	flags Flags
}

// NewGeneric builds a Generic dialect with the given capability flags.
func NewGeneric(flags Flags) Generic {
	return Generic{flags: flags}
}

// DefaultGeneric is a Generic dialect with the capabilities set true
// below turned on, so a caller need not hand-assemble Flags; every
// capability not listed as true stays off.
var DefaultGeneric = Generic{flags: Flags{
	SupportsFilterDuringAggregation:          true,
	SupportsInEmptyList:                      true,
	SupportsGroupByExpression:                true,
	SupportsSubstringFromForExpression:        true,
	ConvertTypeBeforeValue:                    false,
	SupportsStartTransactionModifier:          true,
	SupportsNamedFunctionArgsWithEqOperator:   true,
	SupportsStringLiteralBackslashEscape:      false,
	SupportsMatchRecognize:                    false,
	SupportsDictionarySyntax:                  false,
	SupportsConnectBy:                         false,
	SupportsWindowClauseNamedWindowReference:  true,
	SupportsNumericPrefix:                     true,
	SupportsWindowFunctionNullTreatmentArg:     true,
	SupportsLambdaFunctions:                   false,
	SupportsParenthesizedSetVariables:         false,
	SupportsTripleQuotedString:                false,
	SupportsSelectWildcardExcept:              true,
	SupportsTrailingCommas:                    false,
	SupportsProjectionTrailingCommas:          false,
}}

func (g Generic) Flags() Flags { return g.flags }

// IsIdentifierStart accepts '_' plus anything Unicode classifies as a
// valid identifier-start codepoint (the XID_Start property), grounded on
// vippsas-sqlcode/sqlparser/scanner.go's use of the same library for the
// same purpose, instead of the teacher's ASCII-only unicode.IsLetter.
func (g Generic) IsIdentifierStart(r rune) bool {
	return r == '_' || xid.Start(r)
}

// IsIdentifierPart additionally accepts digits and XID_Continue runes
// (which already covers combining marks and connector punctuation).
func (g Generic) IsIdentifierPart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsDigit(r) || xid.Continue(r)
}

// IsDelimitedIdentifierStart accepts ANSI double quotes and MySQL-style
// backticks unconditionally, and SQL Server-style brackets only when
// SupportsBracketQuotedIdentifiers is set: brackets otherwise belong to
// array/subscript syntax (ARRAY[...], type[], expr[n]), and the two
// readings of '[' cannot coexist in one dialect.
func (g Generic) IsDelimitedIdentifierStart(r rune) bool {
	switch r {
	case '"', '`':
		return true
	case '[':
		return g.flags.SupportsBracketQuotedIdentifiers
	}
	return false
}

// IsProperIdentifierInsideQuotes imposes no restriction beyond "not the
// matching closing quote", which the tokenizer already checks; Generic
// allows any character inside a delimited identifier.
func (g Generic) IsProperIdentifierInsideQuotes(state QuoteState) bool {
	return true
}

// IdentifierQuoteStyle reports '"' as the quote this dialect would use,
// required only when ident is empty, starts with a digit, contains a
// character IsIdentifierPart rejects, or its upper-cased form differs
// from ident itself (meaning an unquoted round-trip would case-fold it
// away, since the core tokenizer compares keywords and—by convention—
// identifiers case-insensitively when unquoted).
func (g Generic) IdentifierQuoteStyle(ident string) (rune, bool) {
	if ident == "" {
		return '"', true
	}
	runes := []rune(ident)
	if !g.IsIdentifierStart(runes[0]) {
		return '"', true
	}
	for _, r := range runes[1:] {
		if !g.IsIdentifierPart(r) {
			return '"', true
		}
	}
	if upperFolder.String(ident) != ident {
		return '"', true
	}
	return '"', false
}
