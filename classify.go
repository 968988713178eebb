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
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// styleRule maps style names containing any of labels to a markdown line.
// Labels are lower case; style names are lower-cased before matching.
type styleRule struct {
	name   string
	labels []string
	render func(text, style string) string
}

func (r styleRule) matches(style string) bool {
	for _, l := range r.labels {
		if strings.Contains(style, l) {
			return true
		}
	}
	return false
}

// paragraphRules is tried in order; the first match wins. Headings precede
// lists, and unmatched paragraphs fall through to plain text.
var paragraphRules = []styleRule{
	headingRule(1),
	headingRule(2),
	headingRule(3),
	headingRule(4),
	headingRule(5),
	headingRule(6),
	{
		name:   "list",
		labels: []string{"list", "列表"},
		render: renderListItem,
	},
}

func headingRule(level int) styleRule {
	prefix := strings.Repeat("#", level) + " "
	return styleRule{
		name:   fmt.Sprintf("heading %d", level),
		labels: []string{fmt.Sprintf("heading %d", level), fmt.Sprintf("标题 %d", level)},
		render: func(text, _ string) string {
			return prefix + text
		},
	}
}

func renderListItem(text, style string) string {
	if startsWithDigit(text) || strings.Contains(style, "number") {
		return "1. " + text
	}
	return "- " + text
}

// startsWithDigit accepts decimal digits of any script (Unicode Nd).
// Superscripts such as "²" do not count.
func startsWithDigit(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsDigit(r)
}

// ParagraphLine renders one paragraph as a single markdown line. Empty text
// yields an empty line whatever the style.
func ParagraphLine(style, text string) string {
	if text == "" {
		return ""
	}
	folded := cases.Lower(language.Und).String(style)
	for _, rule := range paragraphRules {
		if rule.matches(folded) {
			return rule.render(text, folded)
		}
	}
	return text
}

// ClassifyStyle returns the name of the rule a style name selects ("heading 1"
// through "heading 6", "list") or "" for plain text.
func ClassifyStyle(style string) string {
	folded := cases.Lower(language.Und).String(style)
	for _, rule := range paragraphRules {
		if rule.matches(folded) {
			return rule.name
		}
	}
	return ""
}
