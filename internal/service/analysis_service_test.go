package service_test

import (
	"context"
	"testing"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/analysis"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/repository"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/service"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalysisService(t *testing.T) service.AnalysisService {
	t.Helper()
	database := testutil.NewTestDB(t)

	_, err := service.NewImportService(testutil.NewTestUoW(database)).
		ImportSnapshotFromSchema(context.Background(), snapshotSchema())
	require.NoError(t, err)

	return service.NewAnalysisService(
		repository.NewSQLiteSnapshotRepo(database), analysis.DefaultPolicy())
}

func TestUtilizationReportsEveryTeam(t *testing.T) {
	svc := newAnalysisService(t)

	reports, err := svc.Utilization(context.Background(), "Q1 2025")
	require.NoError(t, err)
	require.Len(t, reports, 2)

	byName := map[string]analysis.TeamCapacityUtilization{}
	for _, r := range reports {
		byName[r.TeamName] = r
	}
	// Alpha: 70 in iteration 1, 20 in iteration 2.
	alpha := byName["Alpha"]
	require.Len(t, alpha.Iterations, 2)
	assert.Equal(t, 70.0, alpha.Iterations[0].AllocatedPct)
	assert.Equal(t, 20.0, alpha.Iterations[1].AllocatedPct)
}

func TestTeamUtilizationResolvesByName(t *testing.T) {
	svc := newAnalysisService(t)

	report, err := svc.TeamUtilization(context.Background(), "Q1 2025", "Beta")
	require.NoError(t, err)
	assert.Equal(t, "Beta", report.TeamName)
	assert.Equal(t, 90.0, report.PeakUtilizationPct)
}

func TestEmptyCycleRefSelectsSoleCycle(t *testing.T) {
	svc := newAnalysisService(t)

	conflicts, err := svc.Conflicts(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, conflicts.CycleID)
}

func TestUnknownCycleRef(t *testing.T) {
	svc := newAnalysisService(t)

	_, err := svc.Trends(context.Background(), "Q9 2099")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `cycle "Q9 2099" not found`)
}

func TestValidateUsesWholeSnapshot(t *testing.T) {
	svc := newAnalysisService(t)

	result, err := svc.Validate(context.Background())
	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.OrphanedAllocations)
}

func TestRecommendationsAndOptimizeShareScope(t *testing.T) {
	svc := newAnalysisService(t)
	ctx := context.Background()

	recs, err := svc.Recommendations(ctx, "Q1 2025")
	require.NoError(t, err)
	assert.NotEmpty(t, recs.CycleID)

	opt, err := svc.Optimize(ctx, "Q1 2025", 0)
	require.NoError(t, err)
	assert.Equal(t, analysis.DefaultPolicy().TargetUtilizationPct, opt.TargetUtilizationPct)

	cross, err := svc.CrossTeam(ctx, "Q1 2025")
	require.NoError(t, err)
	// Alpha and Beta both staff the billing epic in iteration 1.
	require.Len(t, cross.SharedEpics, 1)
	assert.Len(t, cross.SharedEpics[0].TeamIDs, 2)
}
