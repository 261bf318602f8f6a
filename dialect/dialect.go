// Package dialect defines the contract a SQL dialect supplies to the
// tokenizer and parser (spec §6 "Dialect contract"). Concrete dialect
// classes (MySQL, Postgres, ...) are deliberately out of scope for this
// module (spec §1 Non-goals) — they are thin parameter packs a caller
// assembles over this interface. Generic below is the one shipped
// implementation, permissive enough to exercise the whole core.
package dialect

// Dialect bundles the character classifiers and capability flags that
// specialize tokenization and parsing to a particular SQL variant.
//
// The four parser hooks described in spec §4.4/§6
// (parse_statement/parse_prefix/parse_infix/get_next_precedence) are
// intentionally NOT methods on this interface: they need access to the
// parser's own type, and package parser cannot be imported here without
// a cycle. Instead they are optional interfaces declared in package
// parser (StatementHook, PrefixHook, InfixHook, PrecedenceHook) that a
// Dialect value may additionally implement; the parser checks for them
// with a type assertion. Dialect stays the single object a caller
// passes around.
type Dialect interface {
	// IsIdentifierStart reports whether r may begin an unquoted
	// identifier or keyword.
	IsIdentifierStart(r rune) bool
	// IsIdentifierPart reports whether r may continue an unquoted
	// identifier or keyword once started.
	IsIdentifierPart(r rune) bool
	// IsDelimitedIdentifierStart reports whether r opens a quoted
	// identifier (e.g. '"', '`', '[').
	IsDelimitedIdentifierStart(r rune) bool
	// IsProperIdentifierInsideQuotes reports whether the character
	// last read inside a delimited identifier is allowed there; state
	// carries enough context (the opening quote rune) to decide, since
	// some dialects restrict what bracketed/backtick identifiers may
	// contain.
	IsProperIdentifierInsideQuotes(state QuoteState) bool
	// IdentifierQuoteStyle returns the quote rune this dialect would
	// use to render ident if quoting were necessary, and whether
	// quoting is required at all.
	IdentifierQuoteStyle(ident string) (quote rune, required bool)

	Flags() Flags
}

// QuoteState is the context passed to IsProperIdentifierInsideQuotes.
type QuoteState struct {
	Opener rune // the quote character that opened this identifier
	Rune   rune // the character under test
}

// Flags holds the read-only capability booleans spec §6 lists. They are
// a plain struct (not interface methods) so config.Profile (the YAML
// ambient-config layer) can unmarshal directly into this type; a Dialect
// returns them from its Flags method.
type Flags struct {
	SupportsFilterDuringAggregation        bool `yaml:"supports_filter_during_aggregation"`
	SupportsInEmptyList                    bool `yaml:"supports_in_empty_list"`
	SupportsGroupByExpression               bool `yaml:"supports_group_by_expression"`
	SupportsSubstringFromForExpression      bool `yaml:"supports_substring_from_for_expression"`
	ConvertTypeBeforeValue                  bool `yaml:"convert_type_before_value"`
	SupportsStartTransactionModifier        bool `yaml:"supports_start_transaction_modifier"`
	SupportsNamedFunctionArgsWithEqOperator bool `yaml:"supports_named_function_args_with_eq_operator"`
	SupportsStringLiteralBackslashEscape    bool `yaml:"supports_string_literal_backslash_escape"`
	SupportsMatchRecognize                  bool `yaml:"supports_match_recognize"`
	SupportsDictionarySyntax                bool `yaml:"supports_dictionary_syntax"`
	SupportsConnectBy                       bool `yaml:"supports_connect_by"`
	SupportsWindowClauseNamedWindowReference bool `yaml:"supports_window_clause_named_window_reference"`
	SupportsNumericPrefix                   bool `yaml:"supports_numeric_prefix"`
	SupportsWindowFunctionNullTreatmentArg   bool `yaml:"supports_window_function_null_treatment_arg"`
	SupportsLambdaFunctions                 bool `yaml:"supports_lambda_functions"`
	SupportsParenthesizedSetVariables        bool `yaml:"supports_parenthesized_set_variables"`
	SupportsTripleQuotedString               bool `yaml:"supports_triple_quoted_string"`
	SupportsSelectWildcardExcept             bool `yaml:"supports_select_wildcard_except"`
	SupportsTrailingCommas                   bool `yaml:"supports_trailing_commas"`
	SupportsProjectionTrailingCommas         bool `yaml:"supports_projection_trailing_commas"`
	// SupportsBracketQuotedIdentifiers enables SQL Server-style [ident]
	// quoting. It is independent of array/subscript syntax (ARRAY[...],
	// type[], expr[n]), which always tokenizes '[' and ']' as punctuation;
	// a dialect cannot have both, since the lexer would not know which
	// one a given '[' opens without parser context it doesn't have.
	SupportsBracketQuotedIdentifiers bool `yaml:"supports_bracket_quoted_identifiers"`
}
