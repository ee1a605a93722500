package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/importer"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/repository"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/service"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func snapshotSchema() *importer.SnapshotSchema {
	return &importer.SnapshotSchema{
		Teams: []importer.TeamImport{
			{Ref: "t-alpha", Name: "Alpha", Capacity: floatPtr(40), Skills: []string{"go"}},
			{Ref: "t-beta", Name: "Beta", Capacity: floatPtr(35)},
		},
		Cycles: []importer.CycleImport{
			{
				Ref: "q1", Name: "Q1 2025", StartDate: "2025-01-06", EndDate: "2025-02-03",
				Iterations: []importer.IterationImport{
					{Number: 1, StartDate: "2025-01-06", EndDate: "2025-01-20"},
					{Number: 2, StartDate: "2025-01-20", EndDate: "2025-02-03"},
				},
			},
		},
		Epics: []importer.EpicImport{
			{Ref: "e1", Name: "Billing revamp", Status: "in_progress", RequiredSkills: []string{"go"}},
		},
		RunWorkCategories: []importer.RunWorkImport{
			{Ref: "support", Name: "Support"},
		},
		Allocations: []importer.AllocationImport{
			{TeamRef: "t-alpha", CycleRef: "q1", Iteration: 1, Percentage: 70, EpicRef: "e1"},
			{TeamRef: "t-alpha", CycleRef: "q1", Iteration: 2, Percentage: 20, RunWorkRef: "support"},
			{TeamRef: "t-beta", CycleRef: "q1", Iteration: 1, Percentage: 90, EpicRef: "e1"},
		},
	}
}

func TestImportSnapshotFromSchema(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := service.NewImportService(testutil.NewTestUoW(database))

	result, err := svc.ImportSnapshotFromSchema(context.Background(), snapshotSchema())
	require.NoError(t, err)

	assert.Equal(t, 2, result.TeamCount)
	assert.Equal(t, 1, result.CycleCount)
	assert.Equal(t, 1, result.EpicCount)
	assert.Equal(t, 1, result.RunWorkCount)
	assert.Equal(t, 3, result.AllocationCount)

	snap, err := repository.NewSQLiteSnapshotRepo(database).LoadSnapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Teams, 2)
	assert.Len(t, snap.Allocations, 3)
}

func TestImportSnapshotFromFile(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := service.NewImportService(testutil.NewTestUoW(database))

	data, err := json.Marshal(snapshotSchema())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	result, err := svc.ImportSnapshot(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, result.AllocationCount)
}

func TestImportSnapshotReplacesPreviousState(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := service.NewImportService(testutil.NewTestUoW(database))
	ctx := context.Background()

	_, err := svc.ImportSnapshotFromSchema(ctx, snapshotSchema())
	require.NoError(t, err)

	smaller := snapshotSchema()
	smaller.Teams = smaller.Teams[:1]
	smaller.Allocations = smaller.Allocations[:2]
	_, err = svc.ImportSnapshotFromSchema(ctx, smaller)
	require.NoError(t, err)

	snap, err := repository.NewSQLiteSnapshotRepo(database).LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Teams, 1)
	assert.Len(t, snap.Allocations, 2)
}

func TestImportSnapshotValidationFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := service.NewImportService(testutil.NewTestUoW(database))

	bad := snapshotSchema()
	bad.Allocations[0].Percentage = 150
	_, err := svc.ImportSnapshotFromSchema(context.Background(), bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snapshot validation failed")

	snap, loadErr := repository.NewSQLiteSnapshotRepo(database).LoadSnapshot(context.Background())
	require.NoError(t, loadErr)
	assert.Empty(t, snap.Teams)
}

func TestImportSnapshotRollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	_, err := service.NewImportService(testutil.NewTestUoW(database)).
		ImportSnapshotFromSchema(ctx, snapshotSchema())
	require.NoError(t, err)

	boom := errors.New("disk full")
	failing := service.NewImportService(&testutil.FailingUoW{
		Inner:    testutil.NewTestUoW(database),
		FailWith: boom,
	})

	smaller := snapshotSchema()
	smaller.Teams = smaller.Teams[:1]
	smaller.Allocations = smaller.Allocations[:2]
	_, err = failing.ImportSnapshotFromSchema(ctx, smaller)
	require.ErrorIs(t, err, boom)

	// Previous import survives intact.
	snap, err := repository.NewSQLiteSnapshotRepo(database).LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Teams, 2)
	assert.Len(t, snap.Allocations, 3)
}
