// Command wisp runs the interpreter from a file or as an interactive
// prompt.
package main

import (
	"fmt"
	"os"

	"github.com/juju/loggo"
	"github.com/spf13/cobra"

	"github.com/wisplang/wisp"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "wisp",
		Short: "A tree-walking interpreter for the wisp language",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				wisp.SetLogLevel(loggo.DEBUG)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newRunCmd(), newPromptCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
