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
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/conductor-oss/docx2md/internal/ooxml"
)

var (
	reParagraph = regexp.MustCompile(`(?s)<w:p(?:\s[^>]*?)?(?:/>|>(.*?)</w:p>)`)
	reRun       = regexp.MustCompile(`(?s)<w:r(?:\s[^>]*?)?(?:/>|>(.*?)</w:r>)`)
	reText      = regexp.MustCompile(`<w:t(?:\s[^>]*?)?>([^<]*)</w:t>`)
	reParaStyle = regexp.MustCompile(`<w:pStyle\s[^>]*?w:val="([^"]*)"`)

	reCellProps = regexp.MustCompile(`(?s)^\s*<w:tcPr(?:\s[^>]*?)?>(.*?)</w:tcPr>`)
	reGridSpan  = regexp.MustCompile(`<w:gridSpan\s[^>]*?w:val="(\d+)"`)
	reVMerge    = regexp.MustCompile(`<w:vMerge(?:\s[^>]*?w:val="([^"]*)")?[^>]*?/?>`)

	reTableTag = elementTag("w:tbl")
	reRowTag   = elementTag("w:tr")
	reCellTag  = elementTag("w:tc")
)

// elementTag matches open, close and self-closing tags of one element name.
// Group 1 is "/" for a close tag, group 2 is "/" for a self-closing tag.
func elementTag(name string) *regexp.Regexp {
	return regexp.MustCompile(`<(/?)` + regexp.QuoteMeta(name) + `(?:\s[^>]*?)?(/?)>`)
}

// RawReader pattern-matches word/document.xml without building an object
// model. Headers, footers and notes are not read.
type RawReader struct{}

// NewRawReader creates a new RawReader.
func NewRawReader() *RawReader {
	return &RawReader{}
}

func (r *RawReader) Read(path string) (*Document, error) {
	c, err := openContainer(path)
	if err != nil {
		return nil, err
	}
	return r.readContainer(c)
}

func (r *RawReader) readContainer(c *container) (*Document, error) {
	body, err := c.body()
	if err != nil {
		return nil, err
	}
	return parseRawBody(string(body), ooxml.ParseStyles(c.zip)), nil
}

// parseRawBody walks the body in document order: top-level tables become
// Table blocks, paragraphs between them become Paragraph blocks.
func parseRawBody(body string, styles ooxml.Styles) *Document {
	doc := &Document{}
	pos := 0
	for _, tbl := range elementSpans(body, reTableTag) {
		doc.Blocks = append(doc.Blocks, rawParagraphs(body[pos:tbl.start], styles)...)
		doc.Blocks = append(doc.Blocks, rawTable(body[tbl.innerStart:tbl.innerEnd], styles))
		pos = tbl.end
	}
	doc.Blocks = append(doc.Blocks, rawParagraphs(body[pos:], styles)...)
	return doc
}

func rawParagraphs(segment string, styles ooxml.Styles) []Block {
	var blocks []Block
	for _, m := range reParagraph.FindAllStringSubmatch(segment, -1) {
		blocks = append(blocks, rawParagraph(m[1], styles))
	}
	return blocks
}

// rawParagraph builds a paragraph from the inner XML of a w:p element.
func rawParagraph(inner string, styles ooxml.Styles) *Paragraph {
	var styleID string
	if m := reParaStyle.FindStringSubmatch(inner); m != nil {
		styleID = m[1]
	}

	var runs []string
	for _, rm := range reRun.FindAllStringSubmatch(inner, -1) {
		var text strings.Builder
		for _, tm := range reText.FindAllStringSubmatch(rm[1], -1) {
			text.WriteString(tm[1])
		}
		runs = append(runs, sanitizeText(html.UnescapeString(text.String())))
	}
	return NewParagraph(styleName(styleID, styles), runs)
}

func rawTable(inner string, styles ooxml.Styles) *Table {
	table := &Table{}
	var above Row
	for _, tr := range elementSpans(inner, reRowTag) {
		rowXML := inner[tr.innerStart:tr.innerEnd]
		var cells []sourceCell
		for _, tc := range elementSpans(rowXML, reCellTag) {
			cells = append(cells, rawCell(rowXML[tc.innerStart:tc.innerEnd], styles))
		}
		above = gridRow(cells, above)
		table.Rows = append(table.Rows, above)
	}
	return table
}

// rawCell reads a cell's text and its merge properties from w:tcPr.
func rawCell(inner string, styles ooxml.Styles) sourceCell {
	c := sourceCell{text: rawCellText(inner, styles)}
	m := reCellProps.FindStringSubmatch(inner)
	if m == nil {
		return c
	}
	if span := reGridSpan.FindStringSubmatch(m[1]); span != nil {
		c.span, _ = strconv.Atoi(span[1])
	}
	if merge := reVMerge.FindStringSubmatch(m[1]); merge != nil {
		c.continued = merge[1] != "restart"
	}
	return c
}

// rawCellText returns the text of the first paragraph directly inside a
// cell. Paragraphs of nested tables do not count.
func rawCellText(inner string, styles ooxml.Styles) string {
	pos := 0
	for _, tbl := range elementSpans(inner, reTableTag) {
		if m := reParagraph.FindStringSubmatch(inner[pos:tbl.start]); m != nil {
			return rawParagraph(m[1], styles).Text
		}
		pos = tbl.end
	}
	if m := reParagraph.FindStringSubmatch(inner[pos:]); m != nil {
		return rawParagraph(m[1], styles).Text
	}
	return ""
}

// span locates an element: [start,end) covers the tags, [innerStart,innerEnd)
// the content between them.
type span struct {
	start, end           int
	innerStart, innerEnd int
}

// elementSpans returns the outermost elements matched by tag, honoring
// nesting of the same element name.
func elementSpans(s string, tag *regexp.Regexp) []span {
	var spans []span
	var cur span
	depth := 0
	for _, m := range tag.FindAllStringSubmatchIndex(s, -1) {
		closing := m[3] > m[2]
		selfClosing := m[5] > m[4]
		switch {
		case selfClosing:
			if depth == 0 {
				spans = append(spans, span{start: m[0], end: m[1], innerStart: m[1], innerEnd: m[1]})
			}
		case closing:
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				cur.innerEnd = m[0]
				cur.end = m[1]
				spans = append(spans, cur)
			}
		default:
			if depth == 0 {
				cur = span{start: m[0], innerStart: m[1]}
			}
			depth++
		}
	}
	return spans
}
