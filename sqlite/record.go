package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/unveil"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ unveil.RecordService = (*RecordService)(nil)

// RecordService implements unveil.RecordService using SQLite.
// Records are stored as JSON payloads tagged with their kind.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecords stores records for a run in order.
func (s *RecordService) CreateRecords(ctx context.Context, runID string, records []unveil.Record) error {
	var exists int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs WHERE id = ?", runID).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return unveil.Errorf(unveil.ENOTFOUND, "run not found")
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (id, run_id, position, kind, payload)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, record := range records {
		payload, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to encode record %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, uuid.New().String(), runID, i, record.RecordKind(), string(payload)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRecords retrieves records matching the filter in position order.
func (s *RecordService) FindRecords(ctx context.Context, filter unveil.RecordFilter) ([]*unveil.StoredRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, run_id, position, kind, payload FROM records WHERE 1=1")

	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, *filter.Kind)
	}

	query.WriteString(" ORDER BY run_id, position")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*unveil.StoredRecord
	for rows.Next() {
		var rec unveil.StoredRecord
		var payload string

		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.Position, &rec.Kind, &payload); err != nil {
			return nil, err
		}
		rec.Payload = json.RawMessage(payload)

		records = append(records, &rec)
	}

	return records, rows.Err()
}
