package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/kei/expr"
	"github.com/dhamidi/kei/format"
	"github.com/spf13/cobra"
)

func newASTCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "ast [expression]",
		Short: "Parse an expression and dump its tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readExpression(args)
			if err != nil {
				return err
			}

			tree := expr.Parse(src)

			var encoder format.Encoder
			switch outputFormat {
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "sexpr":
				encoder = format.NewSExprEncoder(os.Stdout)
			case "source":
				encoder = format.NewSourceEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(tree); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outputFormat != "text" {
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json, sexpr, source)")

	return cmd
}
