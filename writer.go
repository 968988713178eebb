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
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2/maybe"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is used when no output encoding is configured.
var DefaultEncoding encoding.Encoding = unicode.UTF8

// LookupEncoding resolves an encoding label such as "utf-8", "gbk" or
// "utf-16le". An empty label selects DefaultEncoding.
func LookupEncoding(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return DefaultEncoding, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown output encoding %q: %w", label, err)
	}
	return enc, nil
}

// EncodingName returns the canonical name of enc, or "unknown".
func EncodingName(enc encoding.Encoding) string {
	name, err := htmlindex.Name(enc)
	if err != nil {
		return "unknown"
	}
	return name
}

// WriteOutput encodes content and atomically replaces the file at path, so
// a failed write leaves any previous file untouched. Missing parent
// directories are created.
func WriteOutput(path, content string, enc encoding.Encoding) error {
	if enc == nil {
		enc = DefaultEncoding
	}

	data, err := enc.NewEncoder().Bytes([]byte(content))
	if err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("encode as %s: %w", EncodingName(enc), err)}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := maybe.WriteFile(path, data, 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
