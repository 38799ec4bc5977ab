package hours

import (
	"regexp"
	"strings"
)

var (
	// citationRe matches elements carrying the small-italic-muted class
	// signature that the source uses for attribution lines.
	citationRe = regexp.MustCompile(`(?s)<(?:p|div|span)[^>]*class="[^"]*small fst-italic text-muted[^"]*"[^>]*>(.*?)</(?:p|div|span)>`)

	commentRe     = regexp.MustCompile(`(?s)<!--.*?-->`)
	leadingDashRe = regexp.MustCompile(`^[\x{2014}\x{2013}-]+[ \t]*`)
	newlineRunRe  = regexp.MustCompile(`[ \t]*\n[ \t\n]*`)
)

// extractCitation merges every attribution fragment found in the chunk into
// a single citation line, or returns "" when no fragment survives cleanup.
// Source fragments carry their own leading dashes; these are stripped so the
// merged result carries exactly one.
func extractCitation(chunk string) string {
	var fragments []string
	for _, m := range citationRe.FindAllStringSubmatch(chunk, -1) {
		frag := commentRe.ReplaceAllString(m[1], "")
		frag = stripTags(frag)
		frag = decodeEntities(frag)
		frag = strings.TrimSpace(frag)
		frag = leadingDashRe.ReplaceAllString(frag, "")
		frag = newlineRunRe.ReplaceAllString(frag, " ")
		frag = strings.TrimSpace(frag)
		if frag != "" {
			fragments = append(fragments, frag)
		}
	}

	if len(fragments) == 0 {
		return ""
	}
	return "— " + strings.Join(fragments, " | ")
}
