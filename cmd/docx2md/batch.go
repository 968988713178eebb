package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	docx2md "github.com/conductor-oss/docx2md"
)

var batchCmd = &cobra.Command{
	Use:   "batch [input.docx[=output.md]...]",
	Short: "Convert a list of documents",
	Long: `Batch converts every job listed under "jobs" in the config file plus any
jobs given as arguments. A job argument is input=output, or just input to
write next to it with a .md extension.

A failed job is reported and the batch continues with the next one. The
command exits non-zero when any job failed.

Example config:

  encoding: utf-8
  jobs:
    - input: docs/design v1.docx
      output: docs/design v1.md
    - input: docs/design v2.docx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jobs, err := collectJobs(args)
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			return fmt.Errorf("no jobs: list them under \"jobs\" in the config file or pass them as arguments")
		}

		c, err := newConverter()
		if err != nil {
			return err
		}

		result := c.ConvertBatch(jobs)
		for _, f := range result.Failed {
			cmd.PrintErrf("failed:  %v\n", f)
		}
		cmd.Printf("%d converted, %d failed\n", result.Converted, len(result.Failed))

		if result.HasFailures() {
			return fmt.Errorf("%d of %d job(s) failed", len(result.Failed), result.Total())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

// collectJobs merges config jobs with argument jobs, config first.
func collectJobs(args []string) ([]docx2md.Job, error) {
	var jobs []docx2md.Job
	if err := viper.UnmarshalKey("jobs", &jobs); err != nil {
		return nil, fmt.Errorf("read jobs from config: %w", err)
	}
	for i := range jobs {
		if jobs[i].Input == "" {
			return nil, fmt.Errorf("config job %d has no input", i+1)
		}
		if jobs[i].Output == "" {
			jobs[i].Output = defaultOutput(jobs[i].Input)
		}
	}

	for _, arg := range args {
		jobs = append(jobs, parseJobArg(arg))
	}
	return jobs, nil
}

// parseJobArg parses "input=output" or "input".
func parseJobArg(arg string) docx2md.Job {
	input, output, ok := strings.Cut(arg, "=")
	if !ok || output == "" {
		output = defaultOutput(input)
	}
	return docx2md.Job{Input: input, Output: output}
}

// defaultOutput replaces the input extension with .md.
func defaultOutput(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".md"
}
