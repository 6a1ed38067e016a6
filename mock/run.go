package mock

import (
	"context"

	"github.com/fwojciec/unveil"
)

var _ unveil.RunService = (*RunService)(nil)

// RunService is a mock implementation of unveil.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *unveil.Run) error
	FindRunByIDFn func(ctx context.Context, id string) (*unveil.Run, error)
	FindRunsFn    func(ctx context.Context, filter unveil.RunFilter) ([]*unveil.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *unveil.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*unveil.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter unveil.RunFilter) ([]*unveil.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

var _ unveil.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of unveil.RecordService.
type RecordService struct {
	CreateRecordsFn func(ctx context.Context, runID string, records []unveil.Record) error
	FindRecordsFn   func(ctx context.Context, filter unveil.RecordFilter) ([]*unveil.StoredRecord, error)
}

func (s *RecordService) CreateRecords(ctx context.Context, runID string, records []unveil.Record) error {
	return s.CreateRecordsFn(ctx, runID, records)
}

func (s *RecordService) FindRecords(ctx context.Context, filter unveil.RecordFilter) ([]*unveil.StoredRecord, error) {
	return s.FindRecordsFn(ctx, filter)
}
