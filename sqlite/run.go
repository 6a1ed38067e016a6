package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/unveil"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ unveil.RunService = (*RunService)(nil)

// RunService implements unveil.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun creates a new run together with its pages.
func (s *RunService) CreateRun(ctx context.Context, run *unveil.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	run.CreatedAt = run.CreatedAt.UTC().Truncate(time.Second)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, dataset, date, records, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.Dataset, run.Date, run.Records, run.CreatedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for i, page := range run.Pages {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO run_pages (run_id, position, source, url, content_hash, bytes, records)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, run.ID, i, page.Source, page.URL, page.ContentHash, page.Bytes, page.Records); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*unveil.Run, error) {
	var run unveil.Run
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, dataset, date, records, created_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.Dataset, &run.Date, &run.Records, &createdAt)

	if err == sql.ErrNoRows {
		return nil, unveil.Errorf(unveil.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	if run.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if run.Pages, err = s.findPages(ctx, run.ID); err != nil {
		return nil, err
	}

	return &run, nil
}

// FindRuns retrieves runs matching the filter, most recent first.
func (s *RunService) FindRuns(ctx context.Context, filter unveil.RunFilter) ([]*unveil.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, dataset, date, records, created_at FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Dataset != nil {
		query.WriteString(" AND dataset = ?")
		args = append(args, *filter.Dataset)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*unveil.Run
	for rows.Next() {
		var run unveil.Run
		var createdAt string

		if err := rows.Scan(&run.ID, &run.Dataset, &run.Date, &run.Records, &createdAt); err != nil {
			return nil, err
		}
		if run.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	// Pages are loaded after the run cursor is closed since the
	// connection pool holds a single connection.
	for _, run := range runs {
		if run.Pages, err = s.findPages(ctx, run.ID); err != nil {
			return nil, err
		}
	}

	return runs, nil
}

func (s *RunService) findPages(ctx context.Context, runID string) ([]unveil.RunPage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT source, url, content_hash, bytes, records
		FROM run_pages
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []unveil.RunPage
	for rows.Next() {
		var page unveil.RunPage
		if err := rows.Scan(&page.Source, &page.URL, &page.ContentHash, &page.Bytes, &page.Records); err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	return pages, rows.Err()
}
