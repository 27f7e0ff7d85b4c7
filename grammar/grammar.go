// Package grammar holds the EBNF definition of the expression
// language and tools to verify it and to test inputs against it.
package grammar

import (
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"
)

// Source is the grammar accepted by the expression parser. Additive
// and Multiplicative chains nest their tails into a recursive third
// operand, so "a - b - c - d" derives as (a-b) - (c-d).
const Source = `Expression = Additive .
Additive = Multiplicative [ ( "+" | "-" ) Multiplicative [ ( "+" | "-" ) Additive ] ] .
Multiplicative = Primary [ "*" Primary [ "*" Multiplicative ] ] .
Primary = Integer | "(" Expression ")" .
Integer = digit { digit } .
digit = "0" … "9" .
`

const startProduction = "Expression"

// Load parses Source into its production map.
func Load() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("expression.ebnf", strings.NewReader(Source))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// Verify checks that Source is well formed and that every production
// is reachable from Expression.
func Verify() error {
	g, err := Load()
	if err != nil {
		return err
	}
	if err := ebnf.Verify(g, startProduction); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	return nil
}
