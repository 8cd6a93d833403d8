package main

import (
	"github.com/spf13/cobra"

	"calc/internal/scanner"
	"calc/internal/source"
	"calc/internal/token"
)

var tokensJSON bool

var tokensCmd = &cobra.Command{
	Use:   "tokens <expr>",
	Short: "Tokenize an expression and print the token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "Print tokens as JSON")
}

func runTokens(cmd *cobra.Command, args []string) error {
	lines := source.NewMap()
	sc := scanner.New(args[0], lines)

	var tokens []token.Token
	for {
		tok := sc.Scan()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	if tokensJSON {
		return printTokensJSON(cmd.OutOrStdout(), tokens, lines)
	}
	printTokensText(cmd.OutOrStdout(), tokens, lines)
	return nil
}
