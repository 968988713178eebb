package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"

	docx2md "github.com/conductor-oss/docx2md"
	"github.com/conductor-oss/docx2md/internal/docxtest"
)

// execute runs the root command with fresh flag and config state and returns
// everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	reset := func() {
		viper.Reset()
		bindFlags()
		resetFlags(rootCmd)
		configErr = nil
	}
	reset()
	t.Cleanup(reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--log-level", "error"))

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestParseJobArg(t *testing.T) {
	tests := []struct {
		arg  string
		want docx2md.Job
	}{
		{"a.docx=b.md", docx2md.Job{Input: "a.docx", Output: "b.md"}},
		{"docs/v1.docx", docx2md.Job{Input: "docs/v1.docx", Output: "docs/v1.md"}},
		{"docs/v1.docx=", docx2md.Job{Input: "docs/v1.docx", Output: "docs/v1.md"}},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			assert.Equal(t, tt.want, parseJobArg(tt.arg))
		})
	}
}

func TestDefaultOutput(t *testing.T) {
	assert.Equal(t, "示巴星 V1.md", defaultOutput("示巴星 V1.docx"))
	assert.Equal(t, "notes.md", defaultOutput("notes"))
}

func TestCollectJobs(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("jobs", []map[string]any{
		{"input": "one.docx", "output": "out/one.md"},
		{"input": "two.docx"},
	})

	jobs, err := collectJobs([]string{"three.docx=3.md"})
	require.NoError(t, err)
	assert.Equal(t, []docx2md.Job{
		{Input: "one.docx", Output: "out/one.md"},
		{Input: "two.docx", Output: "two.md"},
		{Input: "three.docx", Output: "3.md"},
	}, jobs)
}

func TestCollectJobsRequiresInput(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("jobs", []map[string]any{{"output": "x.md"}})

	_, err := collectJobs(nil)
	assert.Error(t, err)
}

func TestConvertCommandTablesLast(t *testing.T) {
	dir := t.TempDir()
	input := docxtest.Package{
		Body: docxtest.Table([]string{"A"}, []string{"1"}) + docxtest.Para("", "after"),
	}.WriteFile(t, dir, "in.docx")
	output := filepath.Join(dir, "out.md")

	_, err := execute(t, "convert", input, output, "--tables-last")
	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "after\n\n| A |\n| --- |\n| 1 |\n", string(got))
}

func TestConvertCommandEncodingFromConfig(t *testing.T) {
	dir := t.TempDir()
	input := docxtest.Package{Body: docxtest.Para("", "示巴星")}.WriteFile(t, dir, "in.docx")
	config := filepath.Join(dir, "docx2md.yaml")
	require.NoError(t, os.WriteFile(config, []byte("encoding: gbk\n"), 0o644))

	_, err := execute(t, "convert", input, "--config", config)
	require.NoError(t, err)

	want, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte("示巴星"))
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(dir, "in.md"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConvertCommandMissingConfig(t *testing.T) {
	dir := t.TempDir()
	input := docxtest.Package{Body: docxtest.Para("", "x")}.WriteFile(t, dir, "in.docx")

	_, err := execute(t, "convert", input, "--config", filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "in.md"))
}

func TestBatchCommandContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	good := docxtest.Package{Body: docxtest.Para("", "ok")}.WriteFile(t, dir, "good.docx")
	missing := filepath.Join(dir, "missing.docx")
	goodOut := filepath.Join(dir, "out", "good.md")

	out, err := execute(t, "batch", missing, good+"="+goodOut)
	require.Error(t, err)
	assert.Contains(t, out, "1 converted, 1 failed")

	got, err := os.ReadFile(goodOut)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(got))
	assert.NoFileExists(t, filepath.Join(dir, "missing.md"))
}

func TestBatchCommandConfigJobs(t *testing.T) {
	dir := t.TempDir()
	input := docxtest.Package{Body: docxtest.Para("Heading1", "Title")}.WriteFile(t, dir, "doc.docx")
	config := filepath.Join(dir, "docx2md.yaml")
	require.NoError(t, os.WriteFile(config, []byte(fmt.Sprintf("jobs:\n  - input: %q\n", input)), 0o644))

	out, err := execute(t, "batch", "--config", config)
	require.NoError(t, err)
	assert.Contains(t, out, "1 converted, 0 failed")

	got, err := os.ReadFile(filepath.Join(dir, "doc.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Title", string(got))
}

func TestDumpCommand(t *testing.T) {
	input := docxtest.Package{
		Body: docxtest.Para("", "Intro") + docxtest.Para("", "Second"),
	}.WriteFile(t, t.TempDir(), "in.docx")

	out, err := execute(t, "dump", input, "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "paragraphs: 2\n")
	assert.Contains(t, out, `1. [] "Intro"`)
	assert.Contains(t, out, "... 1 more paragraphs\n")
	assert.NotContains(t, out, "Second")
}
