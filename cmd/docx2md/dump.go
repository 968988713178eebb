package main

import (
	"github.com/spf13/cobra"

	docx2md "github.com/conductor-oss/docx2md"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <input.docx>...",
	Short: "Print the paragraph and table structure of documents",
	Long: `Dump prints, for each document, the paragraph and table counts, the first
paragraphs with their style names, and a row/column summary of every table.
With --runs each paragraph's runs are listed with their bold, italic and font
settings, and paragraphs without runs show their raw XML.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		runs, _ := cmd.Flags().GetBool("runs")
		parts, _ := cmd.Flags().GetBool("parts")

		opts := docx2md.DumpOptions{Limit: limit, Runs: runs, Parts: parts}
		for i, path := range args {
			if i > 0 {
				cmd.Println()
			}
			if err := docx2md.Dump(cmd.OutOrStdout(), path, opts); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().Int("limit", docx2md.DefaultDumpLimit, "number of paragraphs to list")
	dumpCmd.Flags().Bool("runs", false, "list runs with bold/italic/font and raw XML of run-less paragraphs")
	dumpCmd.Flags().Bool("parts", false, "list the parts inside the container")

	rootCmd.AddCommand(dumpCmd)
}
