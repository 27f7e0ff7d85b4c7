package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/kei/expr"
	"github.com/dhamidi/kei/format"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [expression]",
		Short: "Rewrite an expression in canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readExpression(args)
			if err != nil {
				return err
			}

			enc := format.NewSourceEncoder(os.Stdout)
			if err := enc.Encode(expr.Parse(src)); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Println()
			return nil
		},
	}

	return cmd
}
