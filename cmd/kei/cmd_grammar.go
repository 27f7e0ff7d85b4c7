package main

import (
	"fmt"

	"github.com/dhamidi/kei/grammar"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var verify bool
	var match string

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the expression grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if match != "" {
				ok, err := grammar.Match(match)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%s does not derive from the grammar", match)
				}
				fmt.Printf("%s derives from the grammar\n", match)
				return nil
			}

			if verify {
				if err := grammar.Verify(); err != nil {
					return err
				}
				fmt.Println("grammar ok")
				return nil
			}

			fmt.Print(grammar.Source)
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "verify the grammar instead of printing it")
	cmd.Flags().StringVar(&match, "match", "", "test whether an expression derives from the grammar")

	return cmd
}
