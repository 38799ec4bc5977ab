package main

import (
	"context"
	"io"
	"time"

	"github.com/ceramic-mug/hours"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Clock       func() time.Time
	Fetcher     hours.Fetcher
	Detector    hours.HourDetector
	Completions hours.CompletionService
	Journal     hours.JournalService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetches to stderr"`

	Show    ShowCmd    `cmd:"" default:"1" help:"Fetch and read an office"`
	Days    DaysCmd    `cmd:"" help:"List completed offices"`
	Journal JournalCmd `cmd:"" help:"Manage the prayer journal"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Hour   string `short:"H" help:"Office to show: morning, midday, vespers, or compline (default: the current one)"`
	All    bool   `short:"a" help:"Show all four offices"`
	NoMark bool   `help:"Do not record the office as completed"`
}

// DaysCmd is the "days" subcommand.
type DaysCmd struct {
	Limit int `short:"n" default:"30" help:"Maximum completions to list"`
}

// JournalCmd groups the journal subcommands.
type JournalCmd struct {
	Add    JournalAddCmd    `cmd:"" help:"Add a journal entry"`
	List   JournalListCmd   `cmd:"" help:"List journal entries"`
	Delete JournalDeleteCmd `cmd:"" help:"Delete a journal entry"`
}

// JournalAddCmd is the "journal add" subcommand.
type JournalAddCmd struct {
	Body  string `arg:"" help:"Entry text"`
	Title string `short:"t" help:"Optional entry title"`
	Day   string `short:"d" help:"Entry day as YYYY-MM-DD (default: today)"`
}

// JournalListCmd is the "journal list" subcommand.
type JournalListCmd struct {
	Day   string `short:"d" help:"Only entries for this day (YYYY-MM-DD)"`
	Limit int    `short:"n" default:"20" help:"Maximum entries to list"`
	Full  bool   `help:"Show full entry bodies"`
}

// JournalDeleteCmd is the "journal delete" subcommand.
type JournalDeleteCmd struct {
	ID string `arg:"" help:"Entry ID"`
}
