package workflows

import (
	"context"
	"time"

	"github.com/PolarWolf314/rvault/internal/audit"
)

// LogOptions configures the log workflow.
type LogOptions struct {
	// Operation filters by operation name, such as "show".
	Operation string

	// Name filters by secret name.
	Name string

	// Limit keeps the most recent entries. 0 means no limit.
	Limit int
}

// LogResult contains the outcome of a log operation.
type LogResult struct {
	Entries []audit.Entry

	// Total is the number of entries before filtering.
	Total int
}

// Log reads and filters the vault's audit trail, oldest first.
//
// Returns ErrNotInitialized if the vault has no key binding.
func Log(_ context.Context, env *Env, opts LogOptions) (*LogResult, error) {
	if _, err := env.boundKey(); err != nil {
		return nil, err
	}

	entries, err := audit.ReadEntries(env.Root)
	if err != nil {
		return nil, err
	}

	return &LogResult{
		Entries: audit.Filter(entries, opts.Operation, opts.Name, opts.Limit),
		Total:   len(entries),
	}, nil
}

// FormatDateTime formats an audit timestamp as YYYY-MM-DD HH:MM:SS in local time.
func FormatDateTime(ts string) string {
	t, err := time.Parse(audit.TimeFormat, ts)
	if err != nil {
		t, err = time.Parse(time.RFC3339, ts)
	}
	if err != nil {
		if len(ts) >= 19 {
			return ts[:19]
		}
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
