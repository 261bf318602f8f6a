// Package main implements sqlfmt, a small cobra-based demo CLI over
// package sqlparser: parse (print AST descendants), fmt (round-trip
// render), and tokens (dump the token stream) subcommands, grounded on
// vippsas-sqlcode/cli/cmd's rootCmd/PersistentFlags/init-registration
// layout.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/polysql/sqlparser/config"
	"github.com/polysql/sqlparser/dialect"
	"github.com/polysql/sqlparser/internal/diag"
)

var (
	rootCmd = &cobra.Command{
		Use:          "sqlfmt",
		Short:        "sqlfmt",
		SilenceUsage: true,
		Long:         `Parse, format, and tokenize SQL text against a configurable dialect profile.`,
	}

	profilePath string
	verbose     bool
)

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "path to a dialect profile YAML file (default: built-in generic-permissive)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(tokensCmd)
}

func resolveDialect() (dialect.Dialect, string, error) {
	if verbose {
		diag.Logger.SetLevel(logrus.DebugLevel)
	}
	if profilePath == "" {
		return dialect.DefaultGeneric, "generic-permissive (built-in)", nil
	}
	p, err := config.LoadProfile(profilePath)
	if err != nil {
		return nil, "", diag.LogParseError("", profilePath, err)
	}
	return p.Dialect(), p.Name, nil
}

func readInput(args []string) (text string, name string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, readErr := readAll(os.Stdin)
		return data, "<stdin>", readErr
	}
	data, readErr := os.ReadFile(args[0])
	return string(data), args[0], readErr
}
