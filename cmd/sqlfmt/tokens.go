package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polysql/sqlparser/internal/diag"
	"github.com/polysql/sqlparser/lexer"
	"github.com/polysql/sqlparser/token"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize SQL text and dump the token stream, one per line",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, profileName, err := resolveDialect()
		if err != nil {
			return err
		}
		text, file, err := readInput(args)
		if err != nil {
			return diag.LogParseError(profileName, file, err)
		}
		toks, err := lexer.New(text, d).Tokenize()
		if err != nil {
			return diag.LogParseError(profileName, file, err)
		}
		for _, t := range toks {
			if t.Kind == token.EOF {
				continue
			}
			fmt.Printf("%s\t%-12s\t%q\n", t.Pos, t.Kind, t.Text)
		}
		return nil
	},
}
