package service

import (
	"context"
	"fmt"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/analysis"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/repository"
)

type analysisService struct {
	snapshots repository.SnapshotRepo
	policy    analysis.Policy
}

func NewAnalysisService(snapshots repository.SnapshotRepo, policy analysis.Policy) AnalysisService {
	return &analysisService{snapshots: snapshots, policy: policy}
}

func (s *analysisService) Utilization(ctx context.Context, cycleRef string) ([]analysis.TeamCapacityUtilization, error) {
	snap, cycle, err := s.loadCycleScope(ctx, cycleRef)
	if err != nil {
		return nil, err
	}
	reports := make([]analysis.TeamCapacityUtilization, 0, len(snap.Teams))
	for _, team := range snap.Teams {
		reports = append(reports, analysis.CalculateTeamCapacity(
			team, snap.Allocations, *cycle, snap.Epics, snap.RunWorkCategories, s.policy))
	}
	return reports, nil
}

func (s *analysisService) TeamUtilization(ctx context.Context, cycleRef, teamRef string) (*analysis.TeamCapacityUtilization, error) {
	snap, cycle, err := s.loadCycleScope(ctx, cycleRef)
	if err != nil {
		return nil, err
	}
	team, err := resolveTeam(snap, teamRef)
	if err != nil {
		return nil, err
	}
	report := analysis.CalculateTeamCapacity(
		*team, snap.Allocations, *cycle, snap.Epics, snap.RunWorkCategories, s.policy)
	return &report, nil
}

func (s *analysisService) Validate(ctx context.Context) (*analysis.AllocationConsistencyValidation, error) {
	snap, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	result := analysis.ValidateAllocations(
		snap.Allocations, snap.Teams, snap.Epics, snap.Cycles, snap.RunWorkCategories, s.policy)
	return &result, nil
}

func (s *analysisService) Conflicts(ctx context.Context, cycleRef string) (*analysis.ConflictDetectionResult, error) {
	snap, cycle, err := s.loadCycleScope(ctx, cycleRef)
	if err != nil {
		return nil, err
	}
	result := analysis.DetectConflicts(*cycle, snap.Allocations, snap.Teams, snap.Epics, s.policy)
	return &result, nil
}

func (s *analysisService) Recommendations(ctx context.Context, cycleRef string) (*analysis.AllocationRecommendations, error) {
	snap, cycle, err := s.loadCycleScope(ctx, cycleRef)
	if err != nil {
		return nil, err
	}
	result := analysis.GenerateRecommendations(
		*cycle, snap.Allocations, snap.Teams, snap.Epics, snap.RunWorkCategories, s.policy)
	return &result, nil
}

func (s *analysisService) Optimize(ctx context.Context, cycleRef string, target float64) (*analysis.OptimizationResult, error) {
	snap, cycle, err := s.loadCycleScope(ctx, cycleRef)
	if err != nil {
		return nil, err
	}
	result := analysis.OptimizeAllocations(*cycle, snap.Allocations, snap.Teams, snap.Epics, target, s.policy)
	return &result, nil
}

func (s *analysisService) Trends(ctx context.Context, cycleRef string) (*analysis.AllocationTrends, error) {
	snap, cycle, err := s.loadCycleScope(ctx, cycleRef)
	if err != nil {
		return nil, err
	}
	result := analysis.AnalyzeTrends(*cycle, snap.Allocations, snap.Teams, snap.Epics, s.policy)
	return &result, nil
}

func (s *analysisService) CrossTeam(ctx context.Context, cycleRef string) (*analysis.CrossTeamDependencies, error) {
	snap, cycle, err := s.loadCycleScope(ctx, cycleRef)
	if err != nil {
		return nil, err
	}
	result := analysis.AnalyzeCrossTeamDependencies(*cycle, snap.Allocations, snap.Teams, snap.Epics, s.policy)
	return &result, nil
}

func (s *analysisService) loadCycleScope(ctx context.Context, cycleRef string) (*domain.Snapshot, *domain.Cycle, error) {
	snap, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	cycle, err := resolveCycle(snap, cycleRef)
	if err != nil {
		return nil, nil, err
	}
	return snap, cycle, nil
}

// resolveCycle matches by ID first, then by name. An empty ref selects
// the sole stored cycle and is an error otherwise.
func resolveCycle(snap *domain.Snapshot, ref string) (*domain.Cycle, error) {
	if ref == "" {
		if len(snap.Cycles) == 1 {
			return &snap.Cycles[0], nil
		}
		return nil, fmt.Errorf("%d cycles stored, specify one with --cycle", len(snap.Cycles))
	}
	if c := snap.CycleByID(ref); c != nil {
		return c, nil
	}
	for i := range snap.Cycles {
		if snap.Cycles[i].Name == ref {
			return &snap.Cycles[i], nil
		}
	}
	return nil, fmt.Errorf("cycle %q not found", ref)
}

func resolveTeam(snap *domain.Snapshot, ref string) (*domain.Team, error) {
	if t := snap.TeamByID(ref); t != nil {
		return t, nil
	}
	for i := range snap.Teams {
		if snap.Teams[i].Name == ref {
			return &snap.Teams[i], nil
		}
	}
	return nil, fmt.Errorf("team %q not found", ref)
}
