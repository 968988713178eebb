package main

import (
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.docx> [output.md]",
	Short: "Convert one document to Markdown",
	Long: `Convert reads one .docx container and writes its Markdown rendering.
The output defaults to the input path with a .md extension. An existing
output file is replaced; nothing is written if the input cannot be read.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newConverter()
		if err != nil {
			return err
		}

		output := defaultOutput(args[0])
		if len(args) == 2 {
			output = args[1]
		}
		return c.ConvertFile(args[0], output)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
