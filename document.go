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

// Block is one body-level element of a document: a *Paragraph or a *Table.
type Block interface {
	block()
}

// Document is the ordered sequence of blocks read from a container body.
type Document struct {
	Blocks []Block
}

// Paragraphs returns the paragraph blocks in document order.
func (d *Document) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, b := range d.Blocks {
		if p, ok := b.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// Tables returns the table blocks in document order.
func (d *Document) Tables() []*Table {
	var out []*Table
	for _, b := range d.Blocks {
		if t, ok := b.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

// Paragraph is a paragraph with its resolved style name. Text is the trimmed
// concatenation of the run texts.
type Paragraph struct {
	StyleName string
	Text      string
	Runs      []string
}

func (*Paragraph) block() {}

// NewParagraph builds a paragraph from its runs.
func NewParagraph(style string, runs []string) *Paragraph {
	return &Paragraph{
		StyleName: style,
		Text:      strings.TrimSpace(strings.Join(runs, "")),
		Runs:      runs,
	}
}

// Cell holds the text of the first paragraph inside a table cell.
type Cell struct {
	Text string
}

// Row is an ordered list of cells.
type Row struct {
	Cells []Cell
}

// Table is an ordered list of rows. The first row is the header.
type Table struct {
	Rows []Row
}

func (*Table) block() {}

// Columns returns the column count implied by the header row.
func (t *Table) Columns() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0].Cells)
}

// sourceCell is a w:tc as written in the body, before merged cells are laid
// out on the table grid.
type sourceCell struct {
	text string
	// span is the w:gridSpan value; 0 and 1 both mean one column.
	span int
	// continued marks a w:vMerge cell that continues the cell above it.
	continued bool
}

// gridRow lays cells out one per grid column. A cell spanning n columns is
// repeated n times and a vertical merge continuation takes the text of the
// cell above it in the same column.
func gridRow(cells []sourceCell, above Row) Row {
	var row Row
	for _, c := range cells {
		text := c.text
		if col := len(row.Cells); c.continued && col < len(above.Cells) {
			text = above.Cells[col].Text
		}
		for range max(c.span, 1) {
			row.Cells = append(row.Cells, Cell{Text: text})
		}
	}
	return row
}
