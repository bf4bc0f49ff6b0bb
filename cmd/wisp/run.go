package main

import (
	"fmt"
	"os"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/wisplang/wisp"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <path>",
		Short: "Interpret a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0])
		},
	}
}

func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Annotatef(err, "reading %s", path)
	}

	interp := wisp.NewInterpreter()
	_, diags := interp.InterpretSrcStr(string(src))
	if diags != nil {
		fmt.Fprintln(os.Stderr, diags.Render(string(src)))
		return errors.New("interpretation failed")
	}
	return nil
}
