package main

import (
	"fmt"

	"github.com/dhamidi/kei/expr"
	"github.com/dhamidi/kei/grammar"
	"github.com/spf13/cobra"
)

// checkCases pairs expressions with the value the Go compiler assigns
// to the same constant expression.
var checkCases = []struct {
	input string
	want  uint64
}{
	{"4 + 3 * 8", 4 + 3*8},
	{"(4 + 3) * 8", (4 + 3) * 8},
	{"(4 + 3 * 8) + 8 * 8 + (4 * 4)", (4 + 3*8) + 8*8 + (4 * 4)},
	{"10 - 2 - 3", 10 - 2 - 3},
	{"2 * 3 * 4", 2 * 3 * 4},
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the built-in expression checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load()
			if err != nil {
				return err
			}
			matcher := grammar.NewMatcher(g)

			failed := 0
			for _, c := range checkCases {
				result := expr.Eval(expr.Parse(c.input))

				status := "passed"
				if result != c.want {
					status = "failed"
					failed++
				}
				fmt.Printf("%s: %s = %d (want %d)\n", status, c.input, int64(result), int64(c.want))

				if !matcher.Match(c.input) {
					failed++
					fmt.Printf("failed: %s does not derive from the grammar\n", c.input)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d checks failed", failed)
			}
			return nil
		},
	}

	return cmd
}
