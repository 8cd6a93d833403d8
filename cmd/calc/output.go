package main

import (
	"encoding/json"
	"fmt"
	"io"

	"calc/internal/source"
	"calc/internal/token"
)

// ---- output helpers ----

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTokensText(w io.Writer, tokens []token.Token, lines *source.Map) {
	for _, tok := range tokens {
		pos := lines.Resolve(tok.Span.Start)
		if tok.Kind == token.INT {
			fmt.Fprintf(w, "%-8s %-12d %s\n", tok.Kind, tok.Value, pos)
		} else {
			fmt.Fprintf(w, "%-8s %-12q %s\n", tok.Kind, tok.Lexeme, pos)
		}
	}
}

func printTokensJSON(w io.Writer, tokens []token.Token, lines *source.Map) error {
	type tokenJSON struct {
		Kind   string `json:"kind"`
		Lexeme string `json:"lexeme"`
		Value  int32  `json:"value,omitempty"`
		Line   int    `json:"line"`
		Column int    `json:"column"`
		Offset int    `json:"offset"`
	}

	var toks []tokenJSON
	for _, tok := range tokens {
		pos := lines.Resolve(tok.Span.Start)
		toks = append(toks, tokenJSON{
			Kind:   tok.Kind.String(),
			Lexeme: tok.Lexeme,
			Value:  tok.Value,
			Line:   pos.Line,
			Column: pos.Column,
			Offset: pos.Offset,
		})
	}

	return printJSON(w, map[string]interface{}{"tokens": toks})
}
