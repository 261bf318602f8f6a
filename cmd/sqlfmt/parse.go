package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polysql/sqlparser/ast"
	"github.com/polysql/sqlparser/internal/diag"
	"github.com/polysql/sqlparser"
	"github.com/polysql/sqlparser/visitor"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse SQL text and print its AST as a descendant listing",
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
		for i, stmt := range stmts {
			fmt.Printf("-- statement %d\n", i+1)
			printDescendants(stmt)
		}
		return nil
	},
}

// printDescendants dumps stmt's pre-order node sequence, one concrete
// type per line, via visitor.Walk rather than ast.Node.(type) switch so
// the CLI stays correct as node variants are added.
func printDescendants(node ast.Node) {
	visitor.Walk(node, func(n ast.Node) bool {
		fmt.Printf("%T\n", n)
		return true
	})
}
