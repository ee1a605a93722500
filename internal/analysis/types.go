package analysis

import "github.com/heymishy/plan-pulse-compass-sub005/internal/domain"

// Report types returned by the analysis passes. All values are
// produced fresh per call and never mutated in place; nothing here
// outlives a single analysis call.

type IterationUtilization struct {
	IterationNumber  int
	AllocatedPct     float64
	CapacityHours    float64
	AllocationCount  int
	IsOverAllocated  bool
	IsUnderAllocated bool
}

type TeamCapacityUtilization struct {
	TeamID   string
	TeamName string
	CycleID  string

	TotalCapacityHours float64
	Iterations         []IterationUtilization

	// Average, peak and min are computed over iterations with at least
	// one allocation; empty iterations are excluded, not counted as zero.
	AverageUtilizationPct float64
	PeakUtilizationPct    float64
	MinUtilizationPct     float64

	Trend           domain.TrendDirection
	SkillGaps       []string
	Recommendations []string
}

type IssueType string

const (
	IssueOverAllocation  IssueType = "over_allocation"
	IssueCapacityWarning IssueType = "capacity_warning"
)

// Orphan reasons, checked in this precedence order; first failure wins.
const (
	ReasonTeamNotFound  = "Team not found"
	ReasonEpicNotFound  = "Epic not found"
	ReasonCycleNotFound = "Cycle not found"
)

type OrphanedAllocation struct {
	AllocationID string
	TeamID       string
	EpicID       string
	CycleID      string
	Reason       string
}

type BudgetIssue struct {
	Type            IssueType
	TeamID          string
	TeamName        string
	CycleID         string
	IterationNumber int
	TotalPercentage float64
	Message         string
}

type SkillMismatch struct {
	AllocationID  string
	TeamID        string
	TeamName      string
	EpicID        string
	EpicName      string
	MissingSkills []string
}

type DependencyViolation struct {
	AllocationID     string
	EpicID           string
	DependsOnEpicID  string
	DependencyStatus domain.EpicStatus
}

type AllocationConsistencyValidation struct {
	OrphanedAllocations  []OrphanedAllocation
	Errors               []BudgetIssue
	Warnings             []BudgetIssue
	SkillMismatches      []SkillMismatch
	DependencyViolations []DependencyViolation

	// IsValid is true iff the error list is empty. Warnings, mismatches
	// and orphans do not invalidate the set.
	IsValid bool
}

type ConflictType string

const (
	ConflictOverallocation      ConflictType = "overallocation"
	ConflictResourceContention  ConflictType = "resource-contention"
	ConflictDependencyViolation ConflictType = "dependency-violation"
	ConflictTimelineOverlap     ConflictType = "timeline-overlap"
	ConflictSkillMismatch       ConflictType = "skill-mismatch"
	ConflictCapacityExceeded    ConflictType = "capacity-exceeded"
)

// Icon returns the presentation glyph for the conflict type.
func (t ConflictType) Icon() string {
	switch t {
	case ConflictOverallocation:
		return "▲"
	case ConflictResourceContention:
		return "⇄"
	case ConflictDependencyViolation:
		return "⛓"
	case ConflictTimelineOverlap:
		return "≡"
	case ConflictSkillMismatch:
		return "✦"
	case ConflictCapacityExceeded:
		return "∅"
	default:
		return "?"
	}
}

type Conflict struct {
	Type        ConflictType
	Severity    domain.Severity
	Description string

	TeamIDs         []string
	EpicID          string
	DependsOnEpicID string
	IterationNumber int
	TotalPercentage float64
}

type ConflictSummary struct {
	Total    int
	Low      int
	Medium   int
	High     int
	Critical int
}

type ConflictDetectionResult struct {
	CycleID            string
	Conflicts          []Conflict
	Summary            ConflictSummary
	AffectedTeamsCount int
	OverallRiskScore   float64
}

type RedistributionSuggestion struct {
	FromTeamID    string
	FromIteration int
	ToTeamID      string
	ToIteration   int

	// MovePercentage is min(excess over 100, deficit against 100), so
	// applying the move never over-allocates the target iteration.
	MovePercentage float64
	Reason         string
}

type TeamEpicMatch struct {
	TeamID        string
	TeamName      string
	EpicID        string
	EpicName      string
	MatchedSkills []string
}

type CapacityBalanceDelta struct {
	TeamID                string
	AverageUtilizationPct float64

	// DeltaPct is target minus average: positive means the team has
	// headroom, negative means it should shed load.
	DeltaPct float64
}

type RunWorkRatio struct {
	RunWorkPct     float64
	TargetPct      float64
	Recommendation string
}

type AllocationRecommendations struct {
	CycleID           string
	Redistributions   []RedistributionSuggestion
	TeamEpicMatches   []TeamEpicMatch
	CapacityBalancing []CapacityBalanceDelta
	RunWork           *RunWorkRatio
}

type OptimizationResult struct {
	CycleID              string
	TargetUtilizationPct float64
	Deltas               []CapacityBalanceDelta
	ProjectedAveragePct  float64
}

type TeamTrend struct {
	TeamID               string
	VelocityChangePct    float64
	Direction            domain.TrendDirection
	BurnoutRisk          domain.RiskLevel
	OverloadedIterations int
}

type AllocationTrends struct {
	CycleID string
	Teams   []TeamTrend
}

type SharedEpic struct {
	EpicID           string
	EpicName         string
	TeamIDs          []string
	CoordinationRisk domain.RiskLevel
	ImpactScore      float64
	MeetingCadence   MeetingCadence
}

type MeetingCadence string

const (
	CadenceDaily  MeetingCadence = "daily"
	CadenceWeekly MeetingCadence = "weekly"
)

type BottleneckTeam struct {
	TeamID           string
	TotalWorkloadPct float64
	EpicIDs          []string
}

type CrossTeamDependencies struct {
	CycleID     string
	SharedEpics []SharedEpic
	Bottlenecks []BottleneckTeam
}
