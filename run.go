package unveil

import (
	"context"
	"encoding/json"
	"time"
)

// Run records one harvest of a dataset.
type Run struct {
	ID        string    `json:"id"`
	Dataset   string    `json:"dataset"`
	Date      string    `json:"date"`
	Records   int       `json:"records"`
	Pages     []RunPage `json:"pages"`
	CreatedAt time.Time `json:"createdAt"`
}

// RunPage describes one source page fetched during a run.
type RunPage struct {
	Source      string `json:"source"`
	URL         string `json:"url"`
	ContentHash string `json:"contentHash"`
	Bytes       int    `json:"bytes"`
	Records     int    `json:"records"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Dataset == "" {
		return Errorf(EINVALID, "run dataset required")
	}
	if r.Date == "" {
		return Errorf(EINVALID, "run date required")
	}
	return nil
}

// RunService represents a service for managing harvest runs.
type RunService interface {
	// CreateRun creates a new run.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, most recent first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID      *string `json:"id"`
	Dataset *string `json:"dataset"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// StoredRecord is a record persisted as part of a run.
type StoredRecord struct {
	ID       string          `json:"id"`
	RunID    string          `json:"runId"`
	Position int             `json:"position"`
	Kind     string          `json:"kind"`
	Payload  json.RawMessage `json:"payload"`
}

// RecordService represents a service for storing accepted records.
type RecordService interface {
	// CreateRecords stores records for a run in order.
	// Returns ENOTFOUND if the run does not exist.
	CreateRecords(ctx context.Context, runID string, records []Record) error

	// FindRecords retrieves records matching the filter in position order.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*StoredRecord, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	RunID *string `json:"runId"`
	Kind  *string `json:"kind"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
