package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"calc"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expr>...",
	Short: "Evaluate expressions and print one result per line",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, input := range args {
		start := time.Now()
		value, err := calc.Eval(input)
		log.Debug().
			Str("expr", input).
			Dur("elapsed", time.Since(start)).
			Msg("evaluated")
		if err != nil {
			// Stop at the first failing expression.
			return err
		}
		fmt.Fprintln(out, value)
	}
	return nil
}
