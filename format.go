package hours

import (
	"strings"
	"unicode/utf8"
)

// FormatOffice renders an office as plain reading text for a terminal.
// Section titles are underlined, content appears verbatim (it is already
// reflowed), and citations close the section on their own line.
func FormatOffice(office *Office) string {
	var sb strings.Builder

	sb.WriteString(office.Title)
	if office.Subtitle != "" {
		sb.WriteString("\n" + office.Subtitle)
	}

	for _, section := range office.Sections {
		sb.WriteString("\n\n" + section.Title + "\n")
		sb.WriteString(strings.Repeat("─", utf8.RuneCountInString(section.Title)))
		if section.Content != "" {
			sb.WriteString("\n" + section.Content)
		}
		if section.Citation != "" {
			sb.WriteString("\n\n" + section.Citation)
		}
	}

	return sb.String()
}
