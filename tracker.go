package hours

import (
	"context"
	"time"
)

// Completion records that the reader finished an office. Day uses the fixed
// key format produced by DayKey; ContentHash fingerprints the office text
// that was read, so a re-published page is distinguishable from a re-read.
type Completion struct {
	Day         string    `json:"day"`
	Hour        Hour      `json:"hour"`
	ContentHash string    `json:"contentHash"`
	CompletedAt time.Time `json:"completedAt"`
}

// Validate returns an error if the completion contains invalid fields.
func (c *Completion) Validate() error {
	if c.Day == "" {
		return Errorf(EINVALID, "completion day required")
	}
	if _, err := time.Parse("2006-01-02", c.Day); err != nil {
		return Errorf(EINVALID, "completion day must use the YYYY-MM-DD key format")
	}
	if c.Hour == HourUnknown {
		return Errorf(EINVALID, "completion hour required")
	}
	return nil
}

// CompletionFilter represents a filter for FindCompletions.
type CompletionFilter struct {
	Day  *string `json:"day"`
	Hour *Hour   `json:"hour"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// CompletionService records and reports completed offices. It is invoked
// once per successful load, outside the extraction pipeline.
type CompletionService interface {
	// MarkCompleted records a completion. Marking the same (day, hour)
	// again refreshes the hash and timestamp rather than failing.
	MarkCompleted(ctx context.Context, completion *Completion) error

	// IsCompleted reports whether the hour's office was completed on the
	// given day.
	IsCompleted(ctx context.Context, day string, hour Hour) (bool, error)

	// FindCompletions retrieves completions matching the filter, most
	// recent first.
	FindCompletions(ctx context.Context, filter CompletionFilter) ([]*Completion, error)
}
