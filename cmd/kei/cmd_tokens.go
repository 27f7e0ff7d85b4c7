package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/kei/expr"
	"github.com/dhamidi/kei/format"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [expression]",
		Short: "Print the token stream of an expression",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readExpression(args)
			if err != nil {
				return err
			}

			enc := format.NewTokenEncoder(os.Stdout)
			if err := enc.Encode(expr.NewScanner(src)); err != nil {
				return fmt.Errorf("encode tokens: %w", err)
			}
			return nil
		},
	}

	return cmd
}
