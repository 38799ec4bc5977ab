package hours

import "time"

// DefaultTitle is used when the source page carries no level-1 heading.
const DefaultTitle = "The Divine Hours"

// SourceURL is the fixed page the offices are published at. The office
// query parameter selects the hour; see OfficeURL.
const SourceURL = "https://annarborvineyard.org/dh/office.cfm"

// Office is the full prayer document for one time of day, composed of
// ordered sections. Offices are immutable value objects: each extraction
// produces a fresh, independent Office and no field is mutated afterwards.
type Office struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Sections []Section `json:"sections"`
}

// Section is a named sub-part of an office (a reading, a psalm, a collect)
// with normalized content and an optional citation. An empty Citation means
// no attribution fragment was found.
type Section struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Citation string `json:"citation"`
}

// Hour identifies one of the four daily offices.
type Hour string

// The four daily offices, in day order.
const (
	HourUnknown  Hour = ""
	HourMorning  Hour = "morning"
	HourMidday   Hour = "midday"
	HourVespers  Hour = "vespers"
	HourCompline Hour = "compline"
)

// Hours lists the four offices in day order.
func Hours() []Hour {
	return []Hour{HourMorning, HourMidday, HourVespers, HourCompline}
}

// CurrentHour returns the office appointed for the given wall-clock time:
// morning until 11, midday until 15, vespers until 20, compline after.
func CurrentHour(t time.Time) Hour {
	switch h := t.Hour(); {
	case h < 11:
		return HourMorning
	case h < 15:
		return HourMidday
	case h < 20:
		return HourVespers
	default:
		return HourCompline
	}
}

// OfficeURL returns the source URL for the given hour's office.
// An unknown hour yields the bare source URL, which serves the
// office current at request time.
func OfficeURL(hour Hour) string {
	if hour == HourUnknown {
		return SourceURL
	}
	return SourceURL + "?office=" + string(hour)
}

// DayKey formats a time as the fixed YYYY-MM-DD key used by completion
// records. No other date format is supported.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// HourDetector classifies which office a fetched page holds from its markup.
type HourDetector interface {
	// Detect analyzes HTML and returns the identified hour.
	// Returns HourUnknown if the hour cannot be determined.
	Detect(html string) Hour
}
