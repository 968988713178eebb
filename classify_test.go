package docx2md

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParagraphLine(t *testing.T) {
	tests := []struct {
		name  string
		style string
		text  string
		want  string
	}{
		{"heading 1", "Heading 1", "Title", "# Title"},
		{"heading 2 lower", "heading 2", "Intro", "## Intro"},
		{"heading 3 upper", "HEADING 3", "Deep", "### Deep"},
		{"heading 4", "Heading 4", "x", "#### x"},
		{"heading 5", "Heading 5", "x", "##### x"},
		{"heading 6", "Heading 6", "x", "###### x"},
		{"localized heading", "标题 1", "示巴星", "# 示巴星"},
		{"localized heading 3", "标题 3", "鸣钟者", "### 鸣钟者"},
		{"heading substring", "Custom Heading 2 Char", "x", "## x"},
		{"bullet list", "List Paragraph", "apples", "- apples"},
		{"digit list", "List Paragraph", "3 apples", "1. 3 apples"},
		{"numbered style", "List Number", "apples", "1. apples"},
		{"localized list", "列表段落", "苹果", "- 苹果"},
		{"plain", "Normal", "Body text", "Body text"},
		{"no style", "", "Body text", "Body text"},
		{"empty heading", "Heading 1", "", ""},
		{"empty list", "List Paragraph", "", ""},
		{"heading beats list", "Heading 2 List", "x", "## x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParagraphLine(tt.style, tt.text))
		})
	}
}

func TestParagraphLineHeadingPrefix(t *testing.T) {
	for level := 1; level <= 6; level++ {
		for _, style := range []string{
			fmt.Sprintf("Heading %d", level),
			fmt.Sprintf("heading %d", level),
			fmt.Sprintf("标题 %d", level),
			fmt.Sprintf("My Heading %d Variant", level),
		} {
			got := ParagraphLine(style, "text")
			want := strings.Repeat("#", level) + " "
			assert.True(t, strings.HasPrefix(got, want), "style %q: %q", style, got)
			assert.False(t, strings.HasPrefix(got, want+"#"), "style %q: %q", style, got)
		}
	}
}

func TestParagraphLineEmptyTextIsBlank(t *testing.T) {
	for _, style := range []string{"", "Normal", "Heading 1", "标题 6", "List Bullet", "列表", "anything"} {
		assert.Equal(t, "", ParagraphLine(style, ""), style)
	}
}

func TestStartsWithDigit(t *testing.T) {
	assert.True(t, startsWithDigit("3 apples"))
	assert.True(t, startsWithDigit("٣ apples"))
	assert.False(t, startsWithDigit("² apples"))
	assert.False(t, startsWithDigit("apples 3"))
	assert.False(t, startsWithDigit(""))
}

func TestClassifyStyle(t *testing.T) {
	assert.Equal(t, "heading 1", ClassifyStyle("Heading 1"))
	assert.Equal(t, "heading 6", ClassifyStyle("标题 6"))
	assert.Equal(t, "list", ClassifyStyle("List Bullet"))
	assert.Equal(t, "", ClassifyStyle("Normal"))
}
