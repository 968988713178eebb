// Package docxtest builds minimal wordprocessing containers for tests.
package docxtest

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/><Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/></Types>`

const packageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

const documentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/></Relationships>`

// Package describes the parts of a test container. Body is the inner XML of
// w:body; Styles holds w:style elements keyed by nothing in particular.
type Package struct {
	Body         string
	Styles       string
	Extra        map[string]string
	OmitDocument bool
}

// Bytes renders the package as a zip archive.
func (p Package) Bytes(t testing.TB) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	add := func(name, content string) {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	add("[Content_Types].xml", contentTypes)
	add("_rels/.rels", packageRels)
	if !p.OmitDocument {
		add("word/_rels/document.xml.rels", documentRels)
		add("word/document.xml", Document(p.Body))
	}
	if p.Styles != "" {
		add("word/styles.xml", StylesPart(p.Styles))
	}

	names := make([]string, 0, len(p.Extra))
	for name := range p.Extra {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		add(name, p.Extra[name])
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// WriteFile writes the package into dir and returns its path.
func (p Package) WriteFile(t testing.TB, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, p.Bytes(t), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// Document wraps body XML in a w:document root.
func Document(body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
		`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` +
		`<w:body>` + body + `<w:sectPr/></w:body></w:document>`
}

// StylesPart wraps style definitions in a w:styles root.
func StylesPart(styles string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		styles + `</w:styles>`
}

// Style renders one paragraph style definition.
func Style(id, name string) string {
	return `<w:style w:type="paragraph" w:styleId="` + id + `"><w:name w:val="` + name + `"/></w:style>`
}

// Para renders a paragraph with an optional style and one run per text.
func Para(style string, runs ...string) string {
	s := `<w:p>`
	if style != "" {
		s += `<w:pPr><w:pStyle w:val="` + style + `"/></w:pPr>`
	}
	for _, r := range runs {
		s += `<w:r><w:t xml:space="preserve">` + r + `</w:t></w:r>`
	}
	return s + `</w:p>`
}

// Table renders a table whose cells each hold one paragraph.
func Table(rows ...[]string) string {
	s := `<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/></w:tblPr>`
	for _, row := range rows {
		s += `<w:tr>`
		for _, cell := range row {
			s += Cell(`<w:tcW w:w="0" w:type="auto"/>`, cell)
		}
		s += `</w:tr>`
	}
	return s + `</w:tbl>`
}

// Cell renders a table cell with the given w:tcPr content and one paragraph.
func Cell(props, text string) string {
	return `<w:tc><w:tcPr>` + props + `</w:tcPr>` + Para("", text) + `</w:tc>`
}

// DefaultStyle renders the default paragraph style definition.
func DefaultStyle(id, name string) string {
	return `<w:style w:type="paragraph" w:default="1" w:styleId="` + id + `"><w:name w:val="` + name + `"/></w:style>`
}
