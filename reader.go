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

package docx2md

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/conductor-oss/docx2md/internal/ooxml"
)

// Built-in heading IDs as written by English Word ("Heading1").
var reBuiltinHeading = regexp.MustCompile(`(?i)^(heading)\s*([1-9])$`)

// DocumentReader turns a container on disk into an ordered block sequence.
type DocumentReader interface {
	// Read returns a *ContainerNotFoundError when path does not resolve and a
	// *ContainerFormatError when it is not a usable container.
	Read(path string) (*Document, error)
}

// containerReader is implemented by readers that can work on an already
// opened container.
type containerReader interface {
	readContainer(c *container) (*Document, error)
}

// Strategy selects a DocumentReader implementation.
type Strategy string

const (
	// StrategyAuto uses the structured reader and falls back to the raw XML
	// reader when the structured backend cannot parse the body.
	StrategyAuto Strategy = "auto"
	// StrategyStructured reads through the structured document model.
	StrategyStructured Strategy = "structured"
	// StrategyRaw pattern-matches the body XML directly.
	StrategyRaw Strategy = "raw"
)

// ParseStrategy converts a user supplied name into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyAuto:
		return StrategyAuto, nil
	case StrategyStructured:
		return StrategyStructured, nil
	case StrategyRaw:
		return StrategyRaw, nil
	}
	return "", fmt.Errorf("unknown reader strategy %q (want auto, structured or raw)", s)
}

// NewReader returns the DocumentReader for the strategy.
func NewReader(s Strategy, logger Logger) (DocumentReader, error) {
	if logger == nil {
		logger = nopLogger{}
	}
	switch s {
	case "", StrategyAuto:
		return &AutoReader{
			structured: NewStructuredReader(),
			raw:        NewRawReader(),
			logger:     logger,
		}, nil
	case StrategyStructured:
		return NewStructuredReader(), nil
	case StrategyRaw:
		return NewRawReader(), nil
	}
	return nil, fmt.Errorf("unknown reader strategy %q", s)
}

// AutoReader prefers the structured reader and falls back to raw XML. When
// the fallback yields no blocks either, the structured error is returned.
type AutoReader struct {
	structured containerReader
	raw        containerReader
	logger     Logger
}

func (r *AutoReader) Read(path string) (*Document, error) {
	c, err := openContainer(path)
	if err != nil {
		return nil, err
	}

	doc, err := r.structured.readContainer(c)
	if err == nil {
		return doc, nil
	}

	r.logger.Warn("structured reader failed, falling back to raw XML", "path", path, "error", err)
	doc, rawErr := r.raw.readContainer(c)
	if rawErr != nil {
		return nil, rawErr
	}
	// A body the raw patterns find nothing in is as unusable as it was for
	// the structured reader.
	if len(doc.Blocks) == 0 {
		return nil, err
	}
	return doc, nil
}

// styleName resolves a style ID through the style table and spells out
// built-in heading IDs the table does not define.
func styleName(id string, styles ooxml.Styles) string {
	if name := styles.Name(id); name != id {
		return name
	}
	return reBuiltinHeading.ReplaceAllString(id, "$1 $2")
}
