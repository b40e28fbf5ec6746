package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/palantir/internal/database/dbtest"
	phModel "github.com/festy23/palantir/internal/projectedhours/model"
	"github.com/festy23/palantir/internal/projectedhours/repository"
)

func setup(t *testing.T) (*gorm.DB, Service) {
	t.Helper()
	db := dbtest.Open(t)
	require.NoError(t, db.Exec(`INSERT INTO teams (id, name) VALUES (1, 'Core')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO clients (id, name) VALUES (1, 'Acme')`).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO projects (id, name, client_id, team_id) VALUES (1, 'Portal', 1, 1), (2, 'Billing', 1, 1)`).Error)
	logger := zap.NewNop().Sugar()
	return db, New(repository.New(db, logger), logger)
}

func countRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&phModel.ProjectedHours{}).Count(&n).Error)
	return n
}

func TestService_BulkUpsertLastWriteWins(t *testing.T) {
	ctx := context.Background()
	db, svc := setup(t)

	_, err := svc.BulkUpsert(ctx, []phModel.Entry{{ProjectID: 1, Year: 2025, Month: 1, ProjectedHours: 40}})
	require.NoError(t, err)
	_, err = svc.BulkUpsert(ctx, []phModel.Entry{{ProjectID: 1, Year: 2025, Month: 1, ProjectedHours: 60}})
	require.NoError(t, err)

	assert.Equal(t, int64(1), countRows(t, db))
	row, err := svc.Upsert(ctx, phModel.Entry{ProjectID: 1, Year: 2025, Month: 1, ProjectedHours: 60})
	require.NoError(t, err)
	assert.InDelta(t, 60.0, row.ProjectedHours, 0.001)
}

func TestService_BulkUpsertDuplicatesInBatch(t *testing.T) {
	ctx := context.Background()
	db, svc := setup(t)

	written, err := svc.BulkUpsert(ctx, []phModel.Entry{
		{ProjectID: 1, Year: 2025, Month: 1, ProjectedHours: 40},
		{ProjectID: 2, Year: 2025, Month: 1, ProjectedHours: 20},
		{ProjectID: 1, Year: 2025, Month: 1, ProjectedHours: 60},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, written)
	assert.Equal(t, int64(2), countRows(t, db))

	rows, err := svc.ListByProject(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 60.0, rows[0].ProjectedHours, 0.001)
}

func TestService_BulkUpsertIsAtomic(t *testing.T) {
	ctx := context.Background()
	db, svc := setup(t)

	_, err := svc.BulkUpsert(ctx, []phModel.Entry{
		{ProjectID: 1, Year: 2025, Month: 2, ProjectedHours: 10},
		{ProjectID: 99, Year: 2025, Month: 2, ProjectedHours: 10},
	})
	require.ErrorIs(t, err, phModel.ErrProjectNotFound)
	assert.Zero(t, countRows(t, db))

	_, err = svc.BulkUpsert(ctx, []phModel.Entry{
		{ProjectID: 1, Year: 2025, Month: 2, ProjectedHours: 10},
		{ProjectID: 1, Year: 2025, Month: 13, ProjectedHours: 10},
	})
	require.ErrorIs(t, err, phModel.ErrInvalidProjectedHours)
	assert.Contains(t, err.Error(), "entry 1")
	assert.Zero(t, countRows(t, db))
}

func TestService_BulkUpsertEmpty(t *testing.T) {
	_, svc := setup(t)

	written, err := svc.BulkUpsert(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, written)
}

func TestService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	_, svc := setup(t)

	_, err := svc.BulkUpsert(ctx, []phModel.Entry{
		{ProjectID: 2, Year: 2025, Month: 3, ProjectedHours: 5},
		{ProjectID: 1, Year: 2025, Month: 3, ProjectedHours: 15},
		{ProjectID: 1, Year: 2025, Month: 4, ProjectedHours: 25},
		{ProjectID: 1, Year: 2026, Month: 1, ProjectedHours: 35},
	})
	require.NoError(t, err)

	march, err := svc.ListByMonth(ctx, 2025, 3)
	require.NoError(t, err)
	require.Len(t, march, 2)
	assert.Equal(t, int64(1), march[0].ProjectID)

	year, err := svc.ListByYear(ctx, 2025)
	require.NoError(t, err)
	assert.Len(t, year, 3)

	_, err = svc.ListByMonth(ctx, 2025, 0)
	assert.ErrorIs(t, err, phModel.ErrInvalidProjectedHours)

	require.NoError(t, svc.Delete(ctx, march[0].ID))
	assert.ErrorIs(t, svc.Delete(ctx, march[0].ID), phModel.ErrNotFound)
}
