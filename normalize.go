package hours

import (
	"regexp"
	"strings"
)

// proseSectionPhrases names the sections whose content reads as continuous
// prose rather than verse. The list was meant to gate a stricter reflow
// policy, but normalizeContent applies the same collapse to every section;
// see IsProseSection.
var proseSectionPhrases = []string{
	"A Reading",
	"The Prayer Appointed for the Week",
	"The Concluding Prayer of the Church",
	"The Collect",
}

var (
	brRe       = regexp.MustCompile(`(?i)<br\s*/?>`)
	paraRe     = regexp.MustCompile(`\n(?:[ \t]*\n)+`)
	lineTrimRe = regexp.MustCompile(`(?m)^[ \t]+|[ \t]+$`)
	runRe      = regexp.MustCompile(`\n{3,}`)
)

// IsProseSection reports whether the section title names one of the known
// prose sections (readings, appointed prayers, collects). The match is
// case-insensitive on substring.
func IsProseSection(title string) bool {
	lower := strings.ToLower(title)
	for _, phrase := range proseSectionPhrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}

// paragraphMark stands in for a paragraph break while single newlines are
// collapsed. NUL cannot appear in decoded page text.
const paragraphMark = "\x00"

// normalizeContent turns a raw content block into reading text: entities
// decoded, break markers converted to newlines, residual markup stripped,
// wrapped lines reflowed into continuous paragraphs, and blank runs capped
// at a single blank line. The reflow collapses single newlines to spaces so
// pre-wrapped prose reads continuously on narrow screens; double newlines
// survive as paragraph breaks. The title feeds the prose classification but
// does not change the transform applied.
func normalizeContent(title, raw string) string {
	s := decodeEntities(raw)
	s = brRe.ReplaceAllString(s, "\n")
	s = stripTags(s)

	s = paraRe.ReplaceAllString(s, paragraphMark)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, paragraphMark, "\n\n")

	s = lineTrimRe.ReplaceAllString(s, "")
	for runRe.MatchString(s) {
		s = runRe.ReplaceAllString(s, "\n\n")
	}

	return strings.TrimSpace(s)
}
