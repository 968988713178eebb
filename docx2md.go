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

// Package docx2md converts wordprocessing containers (.docx) to markdown.
//
// A DocumentReader turns the container into an ordered list of paragraph and
// table blocks, the Emitter maps each block to markdown lines and the result
// is written as one text file.
package docx2md

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
)

// Converter runs conversion jobs: read, emit, write.
type Converter struct {
	strategy Strategy
	reader   DocumentReader
	emitter  Emitter
	encoding encoding.Encoding
	logger   Logger
}

// New creates a Converter with the given options.
func New(opts ...Option) (*Converter, error) {
	c := &Converter{
		strategy: StrategyAuto,
		encoding: DefaultEncoding,
		logger:   nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.reader == nil {
		r, err := NewReader(c.strategy, c.logger)
		if err != nil {
			return nil, err
		}
		c.reader = r
	}
	if c.encoding == nil {
		c.encoding = DefaultEncoding
	}
	return c, nil
}

// Result holds the output of a conversion.
type Result struct {
	Document *Document
	Lines    []string
	Markdown string
}

// Convert reads the container at path and renders it without writing.
func (c *Converter) Convert(path string) (*Result, error) {
	doc, err := c.reader.Read(path)
	if err != nil {
		return nil, err
	}

	lines := c.emitter.Lines(doc)
	return &Result{
		Document: doc,
		Lines:    lines,
		Markdown: JoinLines(lines),
	}, nil
}

// ConvertFile converts input and writes the markdown to output, replacing
// any existing file. Nothing is written when reading fails.
func (c *Converter) ConvertFile(input, output string) error {
	result, err := c.Convert(input)
	if err != nil {
		c.logger.Error("conversion failed", "input", input, "error", err)
		return err
	}

	if err := WriteOutput(output, result.Markdown, c.encoding); err != nil {
		c.logger.Error("write failed", "input", input, "output", output, "error", err)
		return err
	}

	c.logger.Info("converted",
		"input", input,
		"output", output,
		"paragraphs", len(result.Document.Paragraphs()),
		"tables", len(result.Document.Tables()),
		"lines", len(result.Lines),
	)
	return nil
}

// Job is one input/output pair of a batch.
type Job struct {
	Input  string `mapstructure:"input" yaml:"input"`
	Output string `mapstructure:"output" yaml:"output"`
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    []*JobError
}

// Total returns the number of jobs processed.
func (r BatchResult) Total() int {
	return r.Converted + len(r.Failed)
}

// HasFailures reports whether any job failed.
func (r BatchResult) HasFailures() bool {
	return len(r.Failed) > 0
}

// Err joins the job failures, or returns nil.
func (r BatchResult) Err() error {
	if !r.HasFailures() {
		return nil
	}
	errs := make([]error, len(r.Failed))
	for i, f := range r.Failed {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// ConvertBatch runs the jobs in order. A failed job is recorded and the
// batch moves on to the next one.
func (c *Converter) ConvertBatch(jobs []Job) BatchResult {
	var result BatchResult
	for i, job := range jobs {
		if err := c.ConvertFile(job.Input, job.Output); err != nil {
			result.Failed = append(result.Failed, &JobError{Job: job, Err: err})
			continue
		}
		result.Converted++
		c.logger.Debug("batch progress", "done", i+1, "total", len(jobs))
	}

	if result.HasFailures() {
		c.logger.Warn(fmt.Sprintf("batch finished with %d failure(s)", len(result.Failed)),
			"converted", result.Converted, "failed", len(result.Failed))
	}
	return result
}
