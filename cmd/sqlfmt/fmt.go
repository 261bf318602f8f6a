package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polysql/sqlparser/internal/diag"
	"github.com/polysql/sqlparser"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Parse SQL text and render it back out as canonical SQL",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, profileName, err := resolveDialect()
		if err != nil {
			return err
		}
		text, file, err := readInput(args)
		if err != nil {
			return diag.LogParseError(profileName, file, err)
		}
		stmts, err := sqlparser.Parse(text, d)
		if err != nil {
			return diag.LogParseError(profileName, file, err)
		}
		for _, stmt := range stmts {
			fmt.Println(sqlparser.Render(stmt) + ";")
		}
		return nil
	},
}
