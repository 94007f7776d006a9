// Command encoder implements the toml-test encoder protocol: it reads
// tagged JSON on stdin and writes TOML on stdout, the mirror of
// cmd/decoder, so the pair can be driven by `go tool toml-test`.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aurlay/molten/internal/taggedjson"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var noColor bool
	cmd := &cobra.Command{
		Use:           "encoder",
		Short:         "Encode tagged JSON from stdin into TOML on stdout",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			color.NoColor = noColor
			return run(cmd)
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored error output")
	return cmd
}

func run(cmd *cobra.Command) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		printErr("error reading stdin: %v", err)
		return err
	}

	var input map[string]any
	if err := json.Unmarshal(data, &input); err != nil {
		printErr("error parsing JSON: %v", err)
		return err
	}

	doc := taggedjson.ToDocument(input)
	fmt.Fprint(cmd.OutOrStdout(), doc.Render())
	return nil
}

func printErr(format string, args ...any) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintln(os.Stderr, red(fmt.Sprintf(format, args...)))
}
