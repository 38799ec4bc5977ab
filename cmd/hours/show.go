package main

import (
	"fmt"
	"strings"

	"github.com/ceramic-mug/hours"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
)

// Run executes the show command: fetch, extract, render, and record.
func (c *ShowCmd) Run(deps *Dependencies) error {
	hrs, err := c.hoursToShow(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hours.ErrorMessage(err))
		return err
	}

	type loaded struct {
		office   *hours.Office
		detected hours.Hour
	}
	results := make([]loaded, len(hrs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	for i, hr := range hrs {
		g.Go(func() error {
			html, err := deps.Fetcher.Fetch(ctx, hours.OfficeURL(hr))
			if err != nil {
				return err
			}
			results[i] = loaded{
				office:   hours.Extract(html),
				detected: deps.Detector.Detect(html),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hours.ErrorMessage(err))
		return err
	}

	day := hours.DayKey(deps.Clock())
	for i, hr := range hrs {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}

		office := results[i].office
		if len(office.Sections) == 0 {
			fmt.Fprintln(deps.Stdout, "No office content available.")
			continue
		}

		if detected := results[i].detected; detected != hours.HourUnknown && detected != hr {
			fmt.Fprintf(deps.Stderr, "note: the source returned the %s office\n", detected)
		}

		fmt.Fprintln(deps.Stdout, hours.FormatOffice(office))

		if c.NoMark {
			continue
		}
		completion := &hours.Completion{
			Day:         day,
			Hour:        hr,
			ContentHash: contentHash(office),
		}
		if err := deps.Completions.MarkCompleted(deps.Ctx, completion); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: could not record completion: %s\n", hours.ErrorMessage(err))
		}
	}

	return nil
}

// hoursToShow resolves the flags into the offices to fetch, defaulting to
// the office appointed for the current wall-clock time.
func (c *ShowCmd) hoursToShow(deps *Dependencies) ([]hours.Hour, error) {
	if c.All {
		return hours.Hours(), nil
	}
	if c.Hour == "" {
		return []hours.Hour{hours.CurrentHour(deps.Clock())}, nil
	}

	hr := hours.Hour(strings.ToLower(c.Hour))
	for _, known := range hours.Hours() {
		if hr == known {
			return []hours.Hour{hr}, nil
		}
	}
	return nil, hours.Errorf(hours.EINVALID, "unknown office %q: use morning, midday, vespers, or compline", c.Hour)
}

// contentHash fingerprints the rendered office so a completion record can
// distinguish a re-published page from a re-read.
func contentHash(office *hours.Office) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(hours.FormatOffice(office)))
}
