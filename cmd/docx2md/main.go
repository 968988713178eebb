// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

// Command docx2md converts Word documents (.docx) to Markdown.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	docx2md "github.com/conductor-oss/docx2md"
	"github.com/conductor-oss/docx2md/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	logger    docx2md.Logger
	configErr error
)

var rootCmd = &cobra.Command{
	Use:   "docx2md",
	Short: "Convert Word documents to Markdown",
	Long: `docx2md reads .docx containers and writes their paragraphs and tables as
Markdown. Heading and list styles become Markdown headings and list items,
tables become pipe tables.

Use convert for a single file, batch for a list of files from the config file
or the command line, and dump to inspect a document's structure.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		l, err := logging.New("docx2md", logging.Config{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
		})
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./docx2md.yaml)")
	pf.String("strategy", string(docx2md.StrategyAuto), "document reader: auto, structured or raw")
	pf.String("encoding", "utf-8", "output text encoding (e.g. utf-8, gbk, utf-16le)")
	pf.Bool("tables-last", false, "emit all tables after the paragraphs")
	pf.String("log-level", "info", "log level: trace, debug, info, warn or error")
	pf.String("log-format", "console", "log format: console, json or pretty")

	bindFlags()
}

// bindFlags binds the persistent flags to their config keys.
func bindFlags() {
	pf := rootCmd.PersistentFlags()
	viper.BindPFlag("strategy", pf.Lookup("strategy"))
	viper.BindPFlag("encoding", pf.Lookup("encoding"))
	viper.BindPFlag("tables_last", pf.Lookup("tables-last"))
	viper.BindPFlag("log.level", pf.Lookup("log-level"))
	viper.BindPFlag("log.format", pf.Lookup("log-format"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docx2md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	err := viper.ReadInConfig()
	if err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		return
	}

	var notFound viper.ConfigFileNotFoundError
	if cfgFile != "" || !errors.As(err, &notFound) {
		configErr = fmt.Errorf("read config: %w", err)
	}
}

// newConverter builds a Converter from flags and config.
func newConverter() (*docx2md.Converter, error) {
	strategy, err := docx2md.ParseStrategy(viper.GetString("strategy"))
	if err != nil {
		return nil, err
	}
	enc, err := docx2md.LookupEncoding(viper.GetString("encoding"))
	if err != nil {
		return nil, err
	}

	return docx2md.New(
		docx2md.WithStrategy(strategy),
		docx2md.WithEncoding(enc),
		docx2md.WithTablesLast(viper.GetBool("tables_last")),
		docx2md.WithLogger(logger),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
