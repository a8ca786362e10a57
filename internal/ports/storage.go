package ports

import "time"

// Run records one completed dump for the history log.
type Run struct {
	Source    string    `json:"source"`
	Output    string    `json:"output"`
	Language  string    `json:"language"`
	ParsedAt  time.Time `json:"parsed_at"`
	NodeCount int       `json:"node_count"`
}

// Storage is the append-only run log. The concrete implementation (bbolt)
// lives in internal/adapters/bbolt. Recording is best effort — callers must
// not fail a dump because the log is unavailable.
type Storage interface {
	// RecordRun appends one run to the log.
	RecordRun(r *Run) error

	// Runs returns the most recent runs, newest first. limit <= 0 means all.
	Runs(limit int) ([]*Run, error)

	// Close releases the underlying database.
	Close() error
}
