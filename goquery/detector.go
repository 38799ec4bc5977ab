// Package goquery provides CSS-selector-based probing of the office page.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ceramic-mug/hours"
)

var _ hours.HourDetector = (*Detector)(nil)

// Detector identifies which of the four daily offices a fetched page holds.
// The page's level-1 heading names the office; the body class and the
// office query link are checked as secondary markers.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified hour.
// Returns HourUnknown if the hour cannot be determined.
func (d *Detector) Detect(html string) hours.Hour {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return hours.HourUnknown
	}

	// The heading is the most reliable marker when present.
	if hour := hourFromText(doc.Find("h1").First().Text()); hour != hours.HourUnknown {
		return hour
	}

	// Some page variants carry the office name on the body class instead.
	if class, exists := doc.Find("body").Attr("class"); exists {
		if hour := hourFromText(class); hour != hours.HourUnknown {
			return hour
		}
	}

	// Fall back to the self-referencing office link.
	var hour hours.Hour
	doc.Find("a[href*='office=']").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		hour = hourFromText(href)
		return hour == hours.HourUnknown
	})

	return hour
}

// hourFromText matches the office names case-insensitively. "Midday" is
// checked before "day" would ever match, and "evening" maps to vespers as
// the source uses both names.
func hourFromText(s string) hours.Hour {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "morning"):
		return hours.HourMorning
	case strings.Contains(lower, "midday"), strings.Contains(lower, "noon"):
		return hours.HourMidday
	case strings.Contains(lower, "vespers"), strings.Contains(lower, "evening"):
		return hours.HourVespers
	case strings.Contains(lower, "compline"), strings.Contains(lower, "night"):
		return hours.HourCompline
	default:
		return hours.HourUnknown
	}
}
