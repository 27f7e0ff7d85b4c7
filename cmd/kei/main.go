package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "kei",
		Short: "A tiny integer expression calculator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newASTCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newREPLCmd())
	rootCmd.AddCommand(newGrammarCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readExpression returns the expression from the command line, or from
// stdin when no argument was given.
func readExpression(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
