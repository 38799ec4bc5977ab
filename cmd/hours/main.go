package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ceramic-mug/hours"
	"github.com/ceramic-mug/hours/goquery"
	hourshttp "github.com/ceramic-mug/hours/http"
	hoursslog "github.com/ceramic-mug/hours/slog"
	"github.com/ceramic-mug/hours/sqlite"
)

// fetchRateLimit caps requests against the office site.
const fetchRateLimit = 2.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CompletionService hours.CompletionService
	JournalService    hours.JournalService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Clock:  time.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("hours"),
		kong.Description("Read the Divine Hours and keep a prayer journal."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set HOURS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.CompletionService = sqlite.NewCompletionService(m.DB)
	m.JournalService = sqlite.NewJournalService(m.DB)
	deps.Completions = m.CompletionService
	deps.Journal = m.JournalService
	deps.Detector = goquery.NewDetector()

	var fetcher hours.Fetcher = hourshttp.NewFetcher(hourshttp.WithRateLimit(fetchRateLimit))
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = hoursslog.NewLoggingFetcher(fetcher, logger)
	}
	defer fetcher.Close()
	deps.Fetcher = fetcher

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("HOURS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "hours.db"
	}
	dir := filepath.Join(home, ".hours")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "hours.db")
}
