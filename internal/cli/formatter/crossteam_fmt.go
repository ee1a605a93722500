package formatter

import (
	"fmt"
	"strings"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/analysis"
)

// FormatCrossTeam renders shared-epic coordination and bottleneck
// analysis for one cycle.
func FormatCrossTeam(r *analysis.CrossTeamDependencies) string {
	var b strings.Builder

	b.WriteString(Header("Cross-Team Dependencies"))
	b.WriteString("\n\n")

	if len(r.SharedEpics) == 0 && len(r.Bottlenecks) == 0 {
		b.WriteString(Dim("No cross-team dependencies in this cycle.") + "\n")
		return b.String()
	}

	if len(r.SharedEpics) > 0 {
		b.WriteString(Bold("Shared epics") + "\n")
		headers := []string{"EPIC", "TEAMS", "RISK", "IMPACT", "CADENCE"}
		rows := make([][]string, 0, len(r.SharedEpics))
		for _, e := range r.SharedEpics {
			rows = append(rows, []string{
				Bold(e.EpicName),
				strings.Join(e.TeamIDs, ", "),
				RiskIndicator(e.CoordinationRisk),
				fmt.Sprintf("%.0f", e.ImpactScore),
				string(e.MeetingCadence),
			})
		}
		b.WriteString(RenderTable(headers, rows))
		b.WriteString("\n")
	}

	if len(r.Bottlenecks) > 0 {
		b.WriteString(Bold("Bottleneck teams") + "\n")
		for _, t := range r.Bottlenecks {
			b.WriteString(fmt.Sprintf("  %s at %s across %s\n",
				Bold(t.TeamID),
				StyleRed.Render(fmt.Sprintf("%.0f%%", t.TotalWorkloadPct)),
				Dim(fmt.Sprintf("%d epics", len(t.EpicIDs)))))
		}
	}

	return b.String()
}
