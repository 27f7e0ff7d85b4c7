package main

import (
	"fmt"

	"github.com/dhamidi/kei/expr"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var unsigned bool

	cmd := &cobra.Command{
		Use:   "eval [expression]",
		Short: "Evaluate an expression and print its value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readExpression(args)
			if err != nil {
				return err
			}

			result := expr.Eval(expr.Parse(src))
			if unsigned {
				fmt.Println(result)
			} else {
				fmt.Println(int64(result))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&unsigned, "unsigned", "u", false, "print the raw unsigned value instead of the signed rendering")

	return cmd
}
