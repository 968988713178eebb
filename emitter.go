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

import "strings"

// Emitter renders a Document as markdown lines.
type Emitter struct {
	// TablesLast moves every table after the last paragraph instead of
	// keeping document order.
	TablesLast bool
}

// Lines returns the markdown lines for doc, one slice element per line.
func (e *Emitter) Lines(doc *Document) []string {
	var lines []string
	var deferred []*Table

	for _, b := range doc.Blocks {
		switch b := b.(type) {
		case *Paragraph:
			lines = append(lines, ParagraphLine(b.StyleName, b.Text))
		case *Table:
			if e.TablesLast {
				deferred = append(deferred, b)
				continue
			}
			lines = append(lines, TableLines(b)...)
		}
	}

	for _, t := range deferred {
		lines = append(lines, TableLines(t)...)
	}
	return lines
}

// TableLines flattens a table into pipe-delimited rows framed by blank lines.
// The first row is the header; the separator takes the header's column
// count. Later rows are rendered as they are, aligned or not. A table with
// no rows renders nothing.
func TableLines(t *Table) []string {
	if len(t.Rows) == 0 {
		return nil
	}

	header := t.Rows[0]
	lines := make([]string, 0, len(t.Rows)+3)
	lines = append(lines, "", pipeRow(cellTexts(header)))

	sep := make([]string, len(header.Cells))
	for i := range sep {
		sep[i] = "---"
	}
	lines = append(lines, pipeRow(sep))

	for _, row := range t.Rows[1:] {
		lines = append(lines, pipeRow(cellTexts(row)))
	}
	return append(lines, "")
}

func cellTexts(row Row) []string {
	texts := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		texts[i] = c.Text
	}
	return texts
}

func pipeRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// JoinLines joins lines with a single newline and no trailing newline.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
