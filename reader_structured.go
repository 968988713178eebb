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
	"bytes"

	docx "github.com/fumiama/go-docx"

	"github.com/conductor-oss/docx2md/internal/ooxml"
)

// StructuredReader reads containers through the go-docx object model.
type StructuredReader struct{}

// NewStructuredReader creates a new StructuredReader.
func NewStructuredReader() *StructuredReader {
	return &StructuredReader{}
}

func (r *StructuredReader) Read(path string) (*Document, error) {
	c, err := openContainer(path)
	if err != nil {
		return nil, err
	}
	return r.readContainer(c)
}

func (r *StructuredReader) readContainer(c *container) (*Document, error) {
	d, err := docx.Parse(bytes.NewReader(c.data), int64(len(c.data)))
	if err != nil {
		return nil, &ContainerFormatError{Path: c.path, MIMEType: c.mime, Reason: "parse body", Err: err}
	}

	styles := ooxml.ParseStyles(c.zip)

	doc := &Document{}
	for _, item := range d.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			doc.Blocks = append(doc.Blocks, structuredParagraph(it, styles))
		case *docx.Table:
			doc.Blocks = append(doc.Blocks, structuredTable(it, styles))
		}
	}
	return doc, nil
}

// structuredParagraph collects the direct runs of p. Runs nested in
// hyperlinks or fields are not paragraph runs and are left out.
func structuredParagraph(p *docx.Paragraph, styles ooxml.Styles) *Paragraph {
	var styleID string
	if p.Properties != nil && p.Properties.Style != nil {
		styleID = p.Properties.Style.Val
	}

	var runs []string
	for _, child := range p.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		runs = append(runs, structuredRunText(run))
	}
	return NewParagraph(styleName(styleID, styles), runs)
}

func structuredRunText(run *docx.Run) string {
	var text string
	for _, child := range run.Children {
		if t, ok := child.(*docx.Text); ok {
			text += t.Text
		}
	}
	return sanitizeText(text)
}

func structuredTable(t *docx.Table, styles ooxml.Styles) *Table {
	table := &Table{}
	var above Row
	for _, row := range t.TableRows {
		cells := make([]sourceCell, 0, len(row.TableCells))
		for _, cell := range row.TableCells {
			cells = append(cells, structuredCell(cell, styles))
		}
		above = gridRow(cells, above)
		table.Rows = append(table.Rows, above)
	}
	return table
}

func structuredCell(cell *docx.WTableCell, styles ooxml.Styles) sourceCell {
	var c sourceCell
	if len(cell.Paragraphs) > 0 {
		c.text = structuredParagraph(cell.Paragraphs[0], styles).Text
	}
	if props := cell.TableCellProperties; props != nil {
		if props.GridSpan != nil {
			c.span = props.GridSpan.Val
		}
		c.continued = props.VMerge != nil && props.VMerge.Val != "restart"
	}
	return c
}
