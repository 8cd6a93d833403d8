package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	log     zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Evaluate arithmetic expressions",
	Long: `calc evaluates arithmetic expressions: integer literals combined with
+ - * / under the usual precedence, grouped with parentheses. Arithmetic
is wrapping 32-bit signed; malformed input gets a line:col-line:col
located diagnostic.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger()
		if verbose {
			log = log.Level(zerolog.DebugLevel)
		} else {
			log = log.Level(zerolog.Disabled)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline stages")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(replCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
