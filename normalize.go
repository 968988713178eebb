package docx2md

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var reCRLF = regexp.MustCompile(`\r\n?`)

// sanitizeText cleans run text taken from the container:
// - Ensure valid UTF-8
// - Turn line breaks into spaces so a paragraph stays on one markdown line
// - Strip non-printable/control characters (keep \t)
func sanitizeText(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}

	s = reCRLF.ReplaceAllString(s, "\n")
	s = strings.ReplaceAll(s, "\n", " ")

	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
