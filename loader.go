package hours

import (
	"context"
	"sync"
)

// LoadState names the phases of one office load.
type LoadState int

// Load states, in lifecycle order.
const (
	LoadIdle LoadState = iota
	LoadLoading
	LoadLoaded
	LoadFailed
)

// String returns the state's name.
func (s LoadState) String() string {
	switch s {
	case LoadIdle:
		return "idle"
	case LoadLoading:
		return "loading"
	case LoadLoaded:
		return "loaded"
	case LoadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Loader drives the fetch-then-extract flow for one reading surface and
// exposes it as a small observable state machine. Extraction itself is a
// pure function; the loader owns the only mutable state and guards it with
// a mutex, so a UI or any subscriber can observe transitions from other
// goroutines.
type Loader struct {
	fetcher  Fetcher
	onChange func(LoadState)

	mu     sync.Mutex
	state  LoadState
	office *Office
	err    error
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithOnChange registers an observer invoked on every state transition.
func WithOnChange(fn func(LoadState)) LoaderOption {
	return func(l *Loader) {
		l.onChange = fn
	}
}

// NewLoader creates a Loader in the idle state.
func NewLoader(fetcher Fetcher, opts ...LoaderOption) *Loader {
	l := &Loader{fetcher: fetcher, state: LoadIdle}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches the hour's office page and extracts it. Calling Load again
// retries: each call re-issues the fetch and re-runs extraction. Only the
// fetch can fail; a page with none of the expected markers still loads as
// an office with defaults and zero sections.
func (l *Loader) Load(ctx context.Context, hour Hour) (*Office, error) {
	l.transition(LoadLoading, nil, nil)

	html, err := l.fetcher.Fetch(ctx, OfficeURL(hour))
	if err != nil {
		l.transition(LoadFailed, nil, err)
		return nil, err
	}

	office := Extract(html)
	l.transition(LoadLoaded, office, nil)
	return office, nil
}

// State returns the current state together with the loaded office or the
// failure that ended the last load.
func (l *Loader) State() (LoadState, *Office, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state, l.office, l.err
}

func (l *Loader) transition(state LoadState, office *Office, err error) {
	l.mu.Lock()
	l.state = state
	l.office = office
	l.err = err
	onChange := l.onChange
	l.mu.Unlock()

	if onChange != nil {
		onChange(state)
	}
}
