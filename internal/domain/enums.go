package domain

type EpicStatus string

const (
	EpicTodo       EpicStatus = "todo"
	EpicInProgress EpicStatus = "in_progress"
	EpicCompleted  EpicStatus = "completed"
	EpicCancelled  EpicStatus = "cancelled"
)

// ValidEpicStatuses is the canonical set of accepted epic status strings.
var ValidEpicStatuses = map[string]bool{
	"todo": true, "in_progress": true, "completed": true, "cancelled": true,
}

type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendDeclining  TrendDirection = "declining"
	TrendStable     TrendDirection = "stable"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type RiskLevel string

const (
	RiskNone   RiskLevel = "none"
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)
