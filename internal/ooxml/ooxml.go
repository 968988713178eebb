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

// Package ooxml holds the small amount of package-level plumbing shared by the
// docx readers: part lookup inside the container and style table parsing.
package ooxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
)

// Well-known part names inside a wordprocessing container.
const (
	PartDocument = "word/document.xml"
	PartStyles   = "word/styles.xml"

	NSWordprocessingML = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

// ErrPartNotFound is wrapped by ReadFileFromZip when the named part is absent.
var ErrPartNotFound = errors.New("part not found")

// ReadFileFromZip reads a file from a zip archive.
func ReadFileFromZip(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPartNotFound, name)
}

// HasFile reports whether the archive contains the named part.
func HasFile(zr *zip.Reader, name string) bool {
	for _, f := range zr.File {
		if f.Name == name {
			return true
		}
	}
	return false
}

// PartNames returns the sorted names of all non-directory parts.
func PartNames(zr *zip.Reader) []string {
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

// Styles maps a paragraph style ID (the w:pStyle value) to its display name.
// The empty key holds the default paragraph style, which applies to
// paragraphs without a w:pStyle.
type Styles map[string]string

// Name returns the display name for id, or id itself when the style table
// does not define it.
func (s Styles) Name(id string) string {
	if name, ok := s[id]; ok && name != "" {
		return name
	}
	return id
}

// ParseStyles reads word/styles.xml. A container without a style table yields
// an empty, usable Styles.
func ParseStyles(zr *zip.Reader) Styles {
	data, err := ReadFileFromZip(zr, PartStyles)
	if err != nil {
		return Styles{}
	}
	return DecodeStyles(data)
}

// DecodeStyles extracts styleId -> name pairs from a styles part.
func DecodeStyles(data []byte) Styles {
	styles := make(Styles)

	decoder := xml.NewDecoder(bytes.NewReader(data))
	var currentStyleID string
	var inStyle, isDefault bool

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Local == "style":
				inStyle = true
				currentStyleID = Attr(t, "styleId")
				isDefault = Attr(t, "type") == "paragraph" && isTrue(Attr(t, "default"))
			case inStyle && t.Name.Local == "name" && currentStyleID != "":
				name := Attr(t, "val")
				styles[currentStyleID] = name
				if isDefault {
					styles[""] = name
				}
			}
		case xml.EndElement:
			if t.Name.Local == "style" {
				inStyle = false
				currentStyleID = ""
			}
		}
	}
	return styles
}

// isTrue interprets an OOXML on/off value.
func isTrue(v string) bool {
	switch v {
	case "1", "true", "on":
		return true
	}
	return false
}

// Attr returns the value of the attribute with the given local name.
func Attr(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
