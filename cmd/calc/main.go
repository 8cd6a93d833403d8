// Command calc is the CLI for the calc expression evaluator.
//
// Usage:
//
//	calc eval <expr>...      Evaluate expressions, one result per line
//	calc tokens <expr>       Print the token stream
//	calc parse <expr>        Print the AST as JSON
//	calc repl                Start an interactive session
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
