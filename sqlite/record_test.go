package sqlite_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/unveil"
	"github.com/fwojciec/unveil/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordService_CreateRecords(t *testing.T) {
	t.Parallel()

	t.Run("stores records in order as JSON", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		runs := sqlite.NewRunService(db)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		run := newRun("oryx-equipment-loss")
		require.NoError(t, runs.CreateRun(ctx, run))

		attachment := "ZU-23"
		records := []unveil.Record{
			unveil.Case{ModelCaseID: 1, Model: "T-72B3", Status: []string{"destroyed"}},
			unveil.Case{ModelCaseID: 1, Model: "MT-LB", Status: []string{"captured"}, Attachment: &attachment},
		}
		require.NoError(t, svc.CreateRecords(ctx, run.ID, records))

		stored, err := svc.FindRecords(ctx, unveil.RecordFilter{RunID: &run.ID})
		require.NoError(t, err)

		require.Len(t, stored, 2)
		assert.Equal(t, 0, stored[0].Position)
		assert.Equal(t, 1, stored[1].Position)
		assert.Equal(t, unveil.KindCase, stored[1].Kind)
		assert.NotEmpty(t, stored[1].ID)

		var c unveil.Case
		require.NoError(t, json.Unmarshal(stored[1].Payload, &c))
		assert.Equal(t, "MT-LB", c.Model)
		require.NotNil(t, c.Attachment)
		assert.Equal(t, "ZU-23", *c.Attachment)
	})

	t.Run("returns ENOTFOUND for missing run", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)

		err := svc.CreateRecords(context.Background(), "nonexistent", []unveil.Record{unveil.Company{Name: "Acme"}})
		require.Error(t, err)
		assert.Equal(t, unveil.ENOTFOUND, unveil.ErrorCode(err))
	})

	t.Run("accepts an empty batch", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		runs := sqlite.NewRunService(db)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		run := newRun("yale-company-operations")
		require.NoError(t, runs.CreateRun(ctx, run))

		require.NoError(t, svc.CreateRecords(ctx, run.ID, nil))

		stored, err := svc.FindRecords(ctx, unveil.RecordFilter{RunID: &run.ID})
		require.NoError(t, err)
		assert.Empty(t, stored)
	})
}

func TestRecordService_FindRecords(t *testing.T) {
	t.Parallel()

	t.Run("filters by kind and paginates", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		runs := sqlite.NewRunService(db)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		run := newRun("yale-company-operations")
		require.NoError(t, runs.CreateRun(ctx, run))
		require.NoError(t, svc.CreateRecords(ctx, run.ID, []unveil.Record{
			unveil.Company{Name: "Acme"},
			unveil.Company{Name: "Globex"},
			unveil.Company{Name: "Initech"},
		}))

		kind := unveil.KindCompany
		stored, err := svc.FindRecords(ctx, unveil.RecordFilter{Kind: &kind, Offset: 1, Limit: 1})
		require.NoError(t, err)

		require.Len(t, stored, 1)
		var c unveil.Company
		require.NoError(t, json.Unmarshal(stored[0].Payload, &c))
		assert.Equal(t, "Globex", c.Name)

		other := unveil.KindCase
		stored, err = svc.FindRecords(ctx, unveil.RecordFilter{Kind: &other})
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("deletes records with their run", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		runs := sqlite.NewRunService(db)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		run := newRun("yale-company-operations")
		require.NoError(t, runs.CreateRun(ctx, run))
		require.NoError(t, svc.CreateRecords(ctx, run.ID, []unveil.Record{unveil.Company{Name: "Acme"}}))

		_, err := db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", run.ID)
		require.NoError(t, err)

		stored, err := svc.FindRecords(ctx, unveil.RecordFilter{})
		require.NoError(t, err)
		assert.Empty(t, stored)
	})
}
