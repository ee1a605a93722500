package formatter

import (
	"fmt"
	"strings"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/analysis"
)

// FormatTrends renders per-team velocity and burnout trends.
func FormatTrends(r *analysis.AllocationTrends) string {
	var b strings.Builder

	b.WriteString(Header("Allocation Trends"))
	b.WriteString("\n\n")

	if len(r.Teams) == 0 {
		b.WriteString(Dim("No allocated teams in this cycle.") + "\n")
		return b.String()
	}

	headers := []string{"TEAM", "VELOCITY", "DIRECTION", "OVERLOADED", "BURNOUT"}
	rows := make([][]string, 0, len(r.Teams))
	for _, t := range r.Teams {
		rows = append(rows, []string{
			t.TeamID,
			fmt.Sprintf("%+.1f%%", t.VelocityChangePct),
			TrendArrow(t.Direction),
			fmt.Sprintf("%d", t.OverloadedIterations),
			RiskIndicator(t.BurnoutRisk),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return b.String()
}
