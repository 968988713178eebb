package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of docx2md",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("docx2md %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
