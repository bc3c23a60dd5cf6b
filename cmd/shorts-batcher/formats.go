package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"shortsbatcher/internal/core/domain"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List download format presets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printFormats(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func printFormats(w io.Writer) {
	for _, p := range domain.FormatPresets {
		marker := " "
		if p.Name == domain.DefaultFormat {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-9s %-24s %s\n", marker, p.Name, p.Label, p.Selector)
	}
}
