package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	toml "github.com/aurlay/molten"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Parse a TOML file and report success or the first error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fail(cmd, "reading %s: %v", path, err)
			}
			if _, err := toml.Parse(data); err != nil {
				return fail(cmd, "%v", err)
			}
			green := color.New(color.FgGreen).SprintFunc()
			cmd.Println(green(path + " is valid TOML"))
			return nil
		},
	}
}
