// Package diag is the CLI-only diagnostics layer: it wraps errors
// surfaced from the library boundary (bad file path, malformed profile
// YAML, a TokenizerError/ParserError from a parsed file) with
// github.com/pkg/errors context and logs them as structured
// github.com/sirupsen/logrus fields. Neither lexer nor parser import
// this package; they return plain errors so library callers never
// inherit a logging framework.
package diag

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/polysql/sqlparser/lexer"
	"github.com/polysql/sqlparser/parser"
)

// Logger is the package-level logrus instance cmd/sqlfmt shares.
var Logger = logrus.New()

// Wrap annotates err with msg using pkg/errors, preserving Cause() so
// callers can still recover a *lexer.TokenizerError/*parser.ParserError.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}

// LogParseError logs a parse/tokenize failure with structured fields
// (dialect, file, line, column when the error carries position info)
// and returns err unchanged so callers can still propagate it.
func LogParseError(dialectName, file string, err error) error {
	cause := errors.Cause(err)
	fields := logrus.Fields{"dialect": dialectName, "file": file}
	switch e := cause.(type) {
	case *lexer.TokenizerError:
		fields["line"] = e.Line
		fields["column"] = e.Column
		fields["stage"] = "tokenize"
	case *parser.ParserError:
		fields["line"] = e.Line
		fields["column"] = e.Column
		fields["stage"] = "parse"
	}
	Logger.WithFields(fields).Error(err)
	return err
}
