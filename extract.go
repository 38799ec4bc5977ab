package hours

import (
	"regexp"
	"strings"
)

// sectionMarker opens each section block inside the main content region.
const sectionMarker = `<div class="office-section">`

var (
	// containerRe bounds the main content region: the div carrying the
	// centered-content class signature, closed by the </div></div></main>
	// run that ends the region.
	containerRe = regexp.MustCompile(`(?s)<div[^>]*class="[^"]*text-center[^"]*"[^>]*>(.*?)</div>\s*</div>\s*</main>`)

	h1Re       = regexp.MustCompile(`(?s)<h1[^>]*>(.*?)</h1>`)
	subtitleRe = regexp.MustCompile(`(?s)</h1>\s*<p[^>]*>(.*?)</p>`)
	h2Re       = regexp.MustCompile(`(?s)<h2[^>]*>(.*?)</h2>`)
	h3Re       = regexp.MustCompile(`(?s)<h3[^>]*>(.*?)</h3>`)

	// blockRe matches elements carrying the pre-line class signature, whose
	// text preserves the source's line breaks.
	blockRe = regexp.MustCompile(`(?s)<(?:p|div|span)[^>]*class="[^"]*pre-line[^"]*"[^>]*>(.*?)</(?:p|div|span)>`)

	tagRe = regexp.MustCompile(`(?s)<[^>]+>`)
)

// Extract parses one office page into an Office. It is a pure function of
// its input and never fails: every missing marker, heading, or block is
// recovered locally with a default or a skip. An Office with zero sections
// is a valid result.
func Extract(html string) *Office {
	region := isolateContent(html)

	office := &Office{
		Title:    extractTitle(region),
		Subtitle: extractSubtitle(region),
		Sections: []Section{},
	}

	for _, chunk := range splitSections(region) {
		if section, ok := extractSection(chunk); ok {
			office.Sections = append(office.Sections, section)
		}
	}

	return office
}

// isolateContent narrows the page to the main content region. Pages without
// a recognizable region marker are used whole; navigation and footer
// boilerplate then simply fails the later, stricter extractors.
func isolateContent(html string) string {
	if m := containerRe.FindStringSubmatch(html); m != nil {
		return m[1]
	}
	return html
}

// extractTitle returns the first level-1 heading's text, or DefaultTitle
// when the page has none.
func extractTitle(region string) string {
	m := h1Re.FindStringSubmatch(region)
	if m == nil {
		return DefaultTitle
	}
	title := strings.TrimSpace(decodeEntities(stripTags(m[1])))
	if title == "" {
		return DefaultTitle
	}
	return title
}

// extractSubtitle returns the text of the paragraph immediately following
// the level-1 heading, or "" when there is none.
func extractSubtitle(region string) string {
	m := subtitleRe.FindStringSubmatch(region)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(decodeEntities(stripTags(m[1])))
}

// splitSections partitions the region into raw section chunks, in source
// order. Everything before the first marker is preamble and is discarded.
func splitSections(region string) []string {
	pieces := strings.Split(region, sectionMarker)
	if len(pieces) < 2 {
		return nil
	}
	return pieces[1:]
}

// extractSection recovers one Section from a raw chunk. Chunks without a
// non-empty level-2 heading are boilerplate and report ok=false.
func extractSection(chunk string) (Section, bool) {
	m := h2Re.FindStringSubmatch(chunk)
	if m == nil {
		return Section{}, false
	}
	title := strings.TrimSpace(decodeEntities(stripTags(m[1])))
	if title == "" {
		return Section{}, false
	}

	var subHeader string
	if sm := h3Re.FindStringSubmatch(chunk); sm != nil {
		subHeader = strings.TrimSpace(decodeEntities(stripTags(sm[1])))
	}

	var blocks []string
	for _, bm := range blockRe.FindAllStringSubmatch(chunk, -1) {
		blocks = append(blocks, bm[1])
	}

	raw := strings.Join(blocks, "\n\n")
	if subHeader != "" {
		raw = "*" + subHeader + "*\n\n" + raw
	}

	return Section{
		Title:    title,
		Content:  normalizeContent(title, raw),
		Citation: extractCitation(chunk),
	}, true
}

// stripTags removes all residual markup, leaving plain text.
func stripTags(s string) string {
	return tagRe.ReplaceAllString(s, "")
}
