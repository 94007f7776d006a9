package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	toml "github.com/aurlay/molten"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at a dotted key path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, key := args[0], args[1]
			data, err := os.ReadFile(path)
			if err != nil {
				return fail(cmd, "reading %s: %v", path, err)
			}
			doc, err := toml.Parse(data)
			if err != nil {
				return fail(cmd, "%v", err)
			}
			it := doc.Get(key)
			if it == nil {
				return fail(cmd, "no value at path %q", key)
			}
			cmd.Println(formatItem(it))
			return nil
		},
	}
}

func formatItem(it toml.Item) string {
	switch v := it.(type) {
	case *toml.StringItem:
		return v.Value
	case *toml.IntegerItem:
		return fmt.Sprintf("%d", v.Value)
	case *toml.FloatItem:
		return fmt.Sprintf("%v", v.Value)
	case *toml.BoolItem:
		return fmt.Sprintf("%v", v.Value)
	case *toml.DateTimeItem:
		return v.Raw
	case *toml.TableItem:
		return "[" + v.HeaderRaw + "]"
	case *toml.AoTItem:
		return fmt.Sprintf("array of %d tables", len(v.Tables))
	default:
		return fmt.Sprintf("%v (%s)", it, it.Type())
	}
}
