package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vatscope/vatscope/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available themes:")
		fmt.Fprintln(out)
		for _, info := range theme.GetInfo() {
			fmt.Fprintf(out, "  %-14s %s - %s\n", info.Key, info.Name, info.Description)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Select one with: vatscope --theme <name>")
	},
}
