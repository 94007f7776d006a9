package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	toml "github.com/aurlay/molten"
)

func newFmtCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Parse and re-render a TOML file, printing the result (or rewriting the file with --write) only if it differs from the input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fail(cmd, "reading %s: %v", path, err)
			}
			doc, err := toml.Parse(data)
			if err != nil {
				return fail(cmd, "%v", err)
			}
			out := doc.Render()
			if out == string(data) {
				green := color.New(color.FgGreen).SprintFunc()
				cmd.Println(green(path + " is already canonical"))
				return nil
			}
			if !write {
				cmd.Println(out)
				return nil
			}
			if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
				return fail(cmd, "writing %s: %v", path, err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place instead of printing to stdout")
	return cmd
}
