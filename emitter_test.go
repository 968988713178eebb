package docx2md

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func table(rows ...[]string) *Table {
	t := &Table{}
	for _, r := range rows {
		var row Row
		for _, c := range r {
			row.Cells = append(row.Cells, Cell{Text: c})
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func TestTableLines(t *testing.T) {
	got := TableLines(table([]string{"A", "B"}, []string{"1", "2"}))
	assert.Equal(t, []string{
		"",
		"| A | B |",
		"| --- | --- |",
		"| 1 | 2 |",
		"",
	}, got)
}

func TestTableLinesHeaderOnly(t *testing.T) {
	got := TableLines(table([]string{"A", "B", "C"}))
	assert.Equal(t, []string{"", "| A | B | C |", "| --- | --- | --- |", ""}, got)
}

func TestTableLinesEmpty(t *testing.T) {
	assert.Empty(t, TableLines(&Table{}))
}

func TestTableLinesRaggedRows(t *testing.T) {
	got := TableLines(table([]string{"A", "B"}, []string{"1", "2", "3"}, []string{"x"}))
	assert.Equal(t, []string{
		"",
		"| A | B |",
		"| --- | --- |",
		"| 1 | 2 | 3 |",
		"| x |",
		"",
	}, got)
}

func sampleDocument() *Document {
	return &Document{Blocks: []Block{
		NewParagraph("Heading 1", []string{"Silent ", "Ark"}),
		NewParagraph("Normal", nil),
		table([]string{"A", "B"}, []string{"1", "2"}),
		NewParagraph("List Paragraph", []string{"apples"}),
		&Table{},
		NewParagraph("List Paragraph", []string{"3 apples"}),
		NewParagraph("Normal", []string{"  body  "}),
	}}
}

func TestEmitterDocumentOrder(t *testing.T) {
	e := &Emitter{}
	assert.Equal(t, []string{
		"# Silent Ark",
		"",
		"",
		"| A | B |",
		"| --- | --- |",
		"| 1 | 2 |",
		"",
		"- apples",
		"1. 3 apples",
		"body",
	}, e.Lines(sampleDocument()))
}

func TestEmitterTablesLast(t *testing.T) {
	e := &Emitter{TablesLast: true}
	assert.Equal(t, []string{
		"# Silent Ark",
		"",
		"- apples",
		"1. 3 apples",
		"body",
		"",
		"| A | B |",
		"| --- | --- |",
		"| 1 | 2 |",
		"",
	}, e.Lines(sampleDocument()))
}

func TestEmitterIdempotent(t *testing.T) {
	e := &Emitter{}
	first := JoinLines(e.Lines(sampleDocument()))
	second := JoinLines(e.Lines(sampleDocument()))
	assert.Equal(t, first, second)
}

func TestJoinLines(t *testing.T) {
	assert.Equal(t, "a\n\nb", JoinLines([]string{"a", "", "b"}))
	assert.Equal(t, "", JoinLines(nil))
}

// TestEmitterMarkdownStructure parses the emitted markdown back and checks
// that headings and lists come out as markdown structure, not text.
func TestEmitterMarkdownStructure(t *testing.T) {
	doc := &Document{Blocks: []Block{
		NewParagraph("Heading 1", []string{"One"}),
		NewParagraph("标题 2", []string{"Two"}),
		NewParagraph("Heading 3", []string{"Three"}),
		NewParagraph("", nil),
		NewParagraph("List Bullet", []string{"apples"}),
		NewParagraph("List Bullet", []string{"pears"}),
		NewParagraph("", nil),
		NewParagraph("List Number", []string{"first"}),
	}}
	src := []byte(JoinLines((&Emitter{}).Lines(doc)))

	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var levels []int
	var lists []bool
	var items int
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			levels = append(levels, n.Level)
		case *ast.List:
			lists = append(lists, n.IsOrdered())
		case *ast.ListItem:
			items++
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, levels)
	assert.Equal(t, []bool{false, true}, lists)
	assert.Equal(t, 3, items)
	assert.True(t, strings.HasPrefix(string(src), "# One\n## Two\n### Three"))
}
