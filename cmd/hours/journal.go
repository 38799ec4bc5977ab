package main

import (
	"fmt"
	"strings"

	"github.com/ceramic-mug/hours"
)

// Run executes the journal add command.
func (c *JournalAddCmd) Run(deps *Dependencies) error {
	day := c.Day
	if day == "" {
		day = hours.DayKey(deps.Clock())
	}

	entry := &hours.JournalEntry{
		Day:   day,
		Title: c.Title,
		Body:  c.Body,
	}
	if err := deps.Journal.CreateEntry(deps.Ctx, entry); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hours.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added entry %s for %s\n", entry.ID, entry.Day)
	return nil
}

// Run executes the journal list command.
func (c *JournalListCmd) Run(deps *Dependencies) error {
	filter := hours.JournalEntryFilter{Limit: c.Limit}
	if c.Day != "" {
		filter.Day = &c.Day
	}

	entries, err := deps.Journal.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hours.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No journal entries found. Use 'hours journal add' to create one.")
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", entry.ID, entry.Day, entrySummary(entry, c.Full))
	}

	return nil
}

// Run executes the journal delete command.
func (c *JournalDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Journal.DeleteEntry(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hours.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted entry %s\n", c.ID)
	return nil
}

// entrySummary returns the title when present, otherwise the entry's first
// line, truncated unless full output was requested.
func entrySummary(entry *hours.JournalEntry, full bool) string {
	if full {
		if entry.Title != "" {
			return entry.Title + ": " + entry.Body
		}
		return entry.Body
	}

	summary := entry.Title
	if summary == "" {
		summary, _, _ = strings.Cut(entry.Body, "\n")
	}
	const maxLen = 60
	if len(summary) > maxLen {
		summary = summary[:maxLen-3] + "..."
	}
	return summary
}
