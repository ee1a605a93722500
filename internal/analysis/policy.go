package analysis

import "github.com/heymishy/plan-pulse-compass-sub005/internal/domain"

// Policy carries the tunable thresholds used across the analysis
// passes. Every number here is organizational policy, not an
// invariant; callers override individual fields as needed.
type Policy struct {
	// HealthyMinPct is the floor below which a non-empty iteration is
	// considered under-allocated.
	HealthyMinPct float64

	// TargetUtilizationPct is the balancing target for capacity
	// optimization.
	TargetUtilizationPct float64

	// RunWorkTargetPct is the desired share of run work relative to
	// total allocated percentage.
	RunWorkTargetPct float64

	// OverAllocationCriticalExcessPct is the excess over 100% at which
	// an overallocation conflict escalates from medium to critical.
	// Severity is always derived from the summed percentage of the
	// (team, iteration) slot, never from individual allocation sizes.
	OverAllocationCriticalExcessPct float64

	// TimelineEpicLimit is the number of distinct epics a team may be
	// concurrently allocated to within one iteration before a
	// timeline-overlap conflict is raised.
	TimelineEpicLimit int

	// BurnoutIterations and HighBurnoutIterations are the counts of
	// >100% iterations at which burnout risk is flagged and escalated.
	BurnoutIterations     int
	HighBurnoutIterations int

	// BottleneckWorkloadPct is the summed workload across all of a
	// team's allocations (ignoring iteration grouping) above which the
	// team is flagged as a bottleneck.
	BottleneckWorkloadPct float64

	// Weights feed the overall risk score of a conflict detection run.
	Weights SeverityWeights
}

// SeverityWeights maps conflict severities to risk score contributions.
type SeverityWeights struct {
	Low      float64
	Medium   float64
	High     float64
	Critical float64
}

// DefaultPolicy returns the stock thresholds.
func DefaultPolicy() Policy {
	return Policy{
		HealthyMinPct:                   80,
		TargetUtilizationPct:            85,
		RunWorkTargetPct:                20,
		OverAllocationCriticalExcessPct: 30,
		TimelineEpicLimit:               3,
		BurnoutIterations:               2,
		HighBurnoutIterations:           3,
		BottleneckWorkloadPct:           200,
		Weights: SeverityWeights{
			Low:      1,
			Medium:   3,
			High:     7,
			Critical: 10,
		},
	}
}

// ForSeverity returns the weight for the given severity.
func (w SeverityWeights) ForSeverity(s domain.Severity) float64 {
	switch s {
	case domain.SeverityLow:
		return w.Low
	case domain.SeverityMedium:
		return w.Medium
	case domain.SeverityHigh:
		return w.High
	case domain.SeverityCritical:
		return w.Critical
	default:
		return 0
	}
}
