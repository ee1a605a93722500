package service

import (
	"context"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/analysis"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/importer"
)

// ImportResult holds the outcome of a snapshot import.
type ImportResult struct {
	TeamCount       int
	CycleCount      int
	EpicCount       int
	RunWorkCount    int
	AllocationCount int
}

// ImportService replaces the stored planning state with the contents of
// a snapshot file. The whole import is one transaction: a failure leaves
// the previous state untouched.
type ImportService interface {
	ImportSnapshot(ctx context.Context, filePath string) (*ImportResult, error)
	ImportSnapshotFromSchema(ctx context.Context, schema *importer.SnapshotSchema) (*ImportResult, error)
}

// AnalysisService loads one snapshot per call and runs the engine over
// it, so every report reflects a single consistent state. cycleRef
// accepts a cycle ID or name; empty selects the only stored cycle.
type AnalysisService interface {
	Utilization(ctx context.Context, cycleRef string) ([]analysis.TeamCapacityUtilization, error)
	TeamUtilization(ctx context.Context, cycleRef, teamRef string) (*analysis.TeamCapacityUtilization, error)
	Validate(ctx context.Context) (*analysis.AllocationConsistencyValidation, error)
	Conflicts(ctx context.Context, cycleRef string) (*analysis.ConflictDetectionResult, error)
	Recommendations(ctx context.Context, cycleRef string) (*analysis.AllocationRecommendations, error)
	Optimize(ctx context.Context, cycleRef string, target float64) (*analysis.OptimizationResult, error)
	Trends(ctx context.Context, cycleRef string) (*analysis.AllocationTrends, error)
	CrossTeam(ctx context.Context, cycleRef string) (*analysis.CrossTeamDependencies, error)
}
