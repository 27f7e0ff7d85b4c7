package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/kei/expr"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const historyFile = ".kei_history"

func newREPLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL()
		},
	}

	return cmd
}

func runREPL() error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt("kei> ")
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if input == ":quit" {
			return nil
		}

		fmt.Println(int64(expr.Eval(expr.Parse(input))))
		ln.AppendHistory(input)
	}
}
