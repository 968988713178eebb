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
	"encoding/xml"
	"fmt"
	"io"

	"github.com/conductor-oss/docx2md/internal/ooxml"
)

const (
	// DefaultDumpLimit is the number of paragraphs listed by Dump.
	DefaultDumpLimit = 50
	// DefaultRawXMLLimit caps the raw XML shown for run-less paragraphs.
	DefaultRawXMLLimit = 500
)

// DumpOptions controls what Dump prints.
type DumpOptions struct {
	Limit       int
	Runs        bool
	Parts       bool
	RawXMLLimit int
}

// InspectedRun is a run with the formatting set directly on it.
type InspectedRun struct {
	Text   string
	Bold   *bool
	Italic *bool
	Font   string
}

// InspectedParagraph is a body-level paragraph as found in the XML.
type InspectedParagraph struct {
	StyleID string
	Style   string
	Text    string
	Runs    []InspectedRun
	RawXML  []byte
}

// InspectedTable summarizes a body-level table.
type InspectedTable struct {
	Rows    int
	Columns int
}

// Inspection is a read-only view of a container for diagnostics.
type Inspection struct {
	Path       string
	MIMEType   string
	Parts      []string
	Paragraphs []InspectedParagraph
	Tables     []InspectedTable
}

// Inspect reads the container at path for Dump.
func Inspect(path string) (*Inspection, error) {
	c, err := openContainer(path)
	if err != nil {
		return nil, err
	}
	body, err := c.body()
	if err != nil {
		return nil, err
	}

	in := &Inspection{
		Path:     path,
		MIMEType: c.mime,
		Parts:    ooxml.PartNames(c.zip),
	}
	if err := in.walkBody(body, ooxml.ParseStyles(c.zip)); err != nil {
		return nil, &ContainerFormatError{Path: path, MIMEType: c.mime, Reason: "decode body", Err: err}
	}
	return in, nil
}

// Dump prints the structure of the container at path to w.
func Dump(w io.Writer, path string, opts DumpOptions) error {
	in, err := Inspect(path)
	if err != nil {
		return err
	}
	return in.Write(w, opts)
}

// walkBody collects paragraphs and tables outside of tables, including those
// wrapped in content controls (w:sdt). Paragraphs inside tables are counted
// toward their table only.
func (in *Inspection) walkBody(data []byte, styles ooxml.Styles) error {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var (
		stack      []string
		tableDepth int
		para       *InspectedParagraph
		paraStart  int64
		paraDepth  int
		run        *InspectedRun
		inText     bool
		table      *InspectedTable
		gridCols   int
		maxCells   int
		rowCells   int
	)

	parent := func() string {
		if len(stack) < 2 {
			return ""
		}
		return stack[len(stack)-2]
	}

	for {
		offset := decoder.InputOffset()
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			local := t.Name.Local
			stack = append(stack, local)

			switch {
			case local == "tbl":
				tableDepth++
				if tableDepth == 1 {
					table = &InspectedTable{}
					gridCols, maxCells = 0, 0
				}
			case tableDepth == 1 && local == "gridCol":
				gridCols++
			case tableDepth == 1 && local == "tr":
				table.Rows++
				rowCells = 0
			case tableDepth == 1 && local == "tc":
				rowCells++
				if rowCells > maxCells {
					maxCells = rowCells
				}
			case tableDepth > 0:
			case local == "p" && para == nil:
				para = &InspectedParagraph{}
				paraStart = offset
				paraDepth = len(stack)
			case para == nil:
			case local == "pStyle" && parent() == "pPr":
				para.StyleID = ooxml.Attr(t, "val")
			case local == "r" && parent() == "p":
				run = &InspectedRun{}
			case run == nil:
			case local == "b" && parent() == "rPr":
				run.Bold = onOff(t)
			case local == "i" && parent() == "rPr":
				run.Italic = onOff(t)
			case local == "rFonts" && parent() == "rPr":
				run.Font = ooxml.Attr(t, "ascii")
				if run.Font == "" {
					run.Font = ooxml.Attr(t, "eastAsia")
				}
			case local == "t":
				inText = true
			case local == "tab":
				run.Text += "\t"
			case local == "br" || local == "cr":
				run.Text += "\n"
			}

		case xml.CharData:
			if inText && run != nil {
				run.Text += string(t)
			}

		case xml.EndElement:
			local := t.Name.Local
			depth := len(stack)
			if depth > 0 {
				stack = stack[:depth-1]
			}

			switch {
			case local == "tbl":
				tableDepth--
				if tableDepth == 0 && table != nil {
					table.Columns = gridCols
					if table.Columns == 0 {
						table.Columns = maxCells
					}
					in.Tables = append(in.Tables, *table)
					table = nil
				}
			case tableDepth > 0:
			case local == "t":
				inText = false
			case local == "r" && run != nil && len(stack) > 0 && stack[len(stack)-1] == "p":
				para.Runs = append(para.Runs, *run)
				run = nil
			case local == "p" && para != nil && depth == paraDepth:
				para.Style = styleName(para.StyleID, styles)
				texts := make([]string, len(para.Runs))
				for i, r := range para.Runs {
					texts[i] = r.Text
				}
				para.Text = NewParagraph(para.Style, texts).Text
				para.RawXML = append([]byte(nil), data[paraStart:decoder.InputOffset()]...)
				in.Paragraphs = append(in.Paragraphs, *para)
				para = nil
			}
		}
	}
	return nil
}

// onOff reads a toggle property such as <w:b/> or <w:b w:val="0"/>.
func onOff(el xml.StartElement) *bool {
	v := true
	switch ooxml.Attr(el, "val") {
	case "0", "false", "off":
		v = false
	}
	return &v
}

// Write prints the inspection to w.
func (in *Inspection) Write(w io.Writer, opts DumpOptions) error {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultDumpLimit
	}
	rawLimit := opts.RawXMLLimit
	if rawLimit <= 0 {
		rawLimit = DefaultRawXMLLimit
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "=== %s (%s) ===\n", in.Path, in.MIMEType)

	if opts.Parts {
		b.WriteString("parts:\n")
		for _, p := range in.Parts {
			fmt.Fprintf(&b, "  %s\n", p)
		}
	}

	fmt.Fprintf(&b, "paragraphs: %d\n", len(in.Paragraphs))
	fmt.Fprintf(&b, "tables: %d\n", len(in.Tables))

	shown := in.Paragraphs
	if len(shown) > limit {
		shown = shown[:limit]
	}
	fmt.Fprintf(&b, "\n--- first %d paragraphs ---\n", len(shown))
	for i, p := range shown {
		fmt.Fprintf(&b, "%d. [%s] %q", i+1, p.Style, p.Text)
		if rule := ClassifyStyle(p.Style); rule != "" {
			fmt.Fprintf(&b, " (%s)", rule)
		}
		b.WriteString("\n")

		if !opts.Runs {
			continue
		}
		for j, r := range p.Runs {
			fmt.Fprintf(&b, "   run %d: text=%q bold=%s italic=%s font=%q\n",
				j+1, r.Text, formatToggle(r.Bold), formatToggle(r.Italic), r.Font)
		}
		if len(p.Runs) == 0 {
			raw := p.RawXML
			if len(raw) > rawLimit {
				raw = raw[:rawLimit]
			}
			fmt.Fprintf(&b, "   xml: %s\n", raw)
		}
	}
	if rest := len(in.Paragraphs) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "... %d more paragraphs\n", rest)
	}

	b.WriteString("\n--- tables ---\n")
	for i, t := range in.Tables {
		fmt.Fprintf(&b, "table %d: %d rows x %d columns\n", i+1, t.Rows, t.Columns)
	}

	_, err := w.Write(b.Bytes())
	return err
}

func formatToggle(v *bool) string {
	if v == nil {
		return "none"
	}
	return fmt.Sprintf("%t", *v)
}
