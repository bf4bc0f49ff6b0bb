package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wisplang/wisp"
)

func newPromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Start an interactive read-eval-print loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(os.Stdin, os.Stdout)
		},
	}
}

// runPrompt reads one line at a time from in, interpreting each line
// against a shared Environment so that `var` declarations accumulate
// across inputs. A line equal to "exit", after a y/n confirmation,
// terminates the loop.
func runPrompt(in *os.File, out *os.File) error {
	interp := wisp.NewInterpreter()
	interp.Environment().Output = out
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()

		if strings.TrimSpace(line) == "exit" {
			if confirmExit(scanner, out) {
				return nil
			}
			continue
		}

		val, diags := interp.InterpretSrcStr(line)
		if diags != nil {
			fmt.Fprintln(out, diags.Render(line))
			continue
		}
		if !val.IsNil() {
			fmt.Fprintln(out, val.Display())
		}
	}
}

func confirmExit(scanner *bufio.Scanner, out *os.File) bool {
	fmt.Fprint(out, "exit the prompt? [y/N] ")
	if !scanner.Scan() {
		return true
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
