// Command decoder implements the toml-test decoder protocol: it reads
// TOML on stdin and writes tagged JSON on stdout, so it can be driven
// by `go tool toml-test` as the decoder half of a conformance run.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	toml "github.com/aurlay/molten"
	"github.com/aurlay/molten/internal/taggedjson"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var pretty bool
	var noColor bool

	cmd := &cobra.Command{
		Use:           "decoder",
		Short:         "Decode TOML from stdin into tagged JSON on stdout",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			color.NoColor = noColor
			return run(cmd, pretty)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the emitted JSON for human reading")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored error output")
	return cmd
}

func run(cmd *cobra.Command, pretty bool) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		printErr("error reading stdin: %v", err)
		return err
	}

	doc, err := toml.Parse(data)
	if err != nil {
		printErr("%v", err)
		return err
	}

	result := taggedjson.FromDocument(doc)

	var jsonBytes []byte
	if pretty {
		jsonBytes, err = json.MarshalIndent(result, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(result)
	}
	if err != nil {
		printErr("error marshaling JSON: %v", err)
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
	return nil
}

func printErr(format string, args ...any) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintln(os.Stderr, red(fmt.Sprintf(format, args...)))
}
