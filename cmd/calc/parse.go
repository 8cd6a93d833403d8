package main

import (
	"github.com/spf13/cobra"

	"calc/internal/ast"
	"calc/internal/parser"
	"calc/internal/scanner"
	"calc/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse <expr>",
	Short: "Parse an expression and print the AST as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	lines := source.NewMap()
	sc := scanner.New(args[0], lines)

	expr, err := parser.New(sc, lines).Parse()
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), ast.NodeToMap(expr))
}
