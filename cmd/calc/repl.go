package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"calc"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	RunE:  runRepl,
}

var (
	promptColor = color.New(color.FgGreen)
	errorColor  = color.New(color.FgRed)
	hintColor   = color.New(color.FgHiBlack)
)

func runRepl(cmd *cobra.Command, args []string) error {
	// History lives in ~/.calc_history when a home directory exists.
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".calc_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            promptColor.Sprint("calc> "),
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("readline init failed: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(rl.Stdout(), "calc REPL %s\n\n", hintColor.Sprint("(type 'exit' or Ctrl+D to quit)"))

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				hintColor.Fprintln(rl.Stdout(), "(use 'exit' or Ctrl+D to quit)")
				continue
			}
			// EOF (Ctrl+D) or other error ends the session.
			if err == io.EOF {
				fmt.Fprintln(rl.Stdout())
			}
			return nil
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if input == "exit" {
			return nil
		}

		value, err := calc.Eval(input)
		if err != nil {
			errorColor.Fprintln(rl.Stderr(), err)
			continue
		}
		fmt.Fprintln(rl.Stdout(), value)
	}
}
