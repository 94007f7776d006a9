// Command molten is a small CLI over the document model: format a file
// (parse, then render — printed, or written back in place with --write;
// a no-op on already-canonical input), read a value at a dotted path,
// or check that a file parses.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var noColor bool
	root := &cobra.Command{
		Use:           "molten",
		Short:         "Inspect and reformat TOML files without disturbing their trivia",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			color.NoColor = noColor
		},
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
	root.AddCommand(newFmtCmd(), newGetCmd(), newCheckCmd())
	return root
}

func fail(cmd *cobra.Command, format string, args ...any) error {
	red := color.New(color.FgRed).SprintFunc()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(cmd.ErrOrStderr(), red(msg))
	return fmt.Errorf("%s", msg)
}
