package formatter

import (
	"fmt"
	"strings"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/analysis"
)

// FormatUtilization renders per-team capacity utilization reports for
// one cycle.
func FormatUtilization(reports []analysis.TeamCapacityUtilization, healthyMin float64) string {
	var b strings.Builder

	b.WriteString(Header("Team Utilization"))
	b.WriteString("\n\n")

	if len(reports) == 0 {
		b.WriteString(Dim("No teams found.") + "\n")
		return b.String()
	}

	headers := []string{"TEAM", "CAPACITY (H)", "AVG", "PEAK", "MIN", "TREND"}
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			Bold(r.TeamName),
			fmt.Sprintf("%.0f", r.TotalCapacityHours),
			Pct(r.AverageUtilizationPct, healthyMin),
			Pct(r.PeakUtilizationPct, healthyMin),
			Pct(r.MinUtilizationPct, healthyMin),
			TrendArrow(r.Trend),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	for _, r := range reports {
		if len(r.SkillGaps) == 0 && len(r.Recommendations) == 0 {
			continue
		}
		b.WriteString("\n" + Bold(r.TeamName) + "\n")
		if len(r.SkillGaps) > 0 {
			b.WriteString(StyleYellow.Render("  skill gaps: "+strings.Join(r.SkillGaps, ", ")) + "\n")
		}
		for _, rec := range r.Recommendations {
			b.WriteString(Dim("  • "+rec) + "\n")
		}
	}

	return b.String()
}

// FormatTeamUtilization renders the iteration-level breakdown for a
// single team.
func FormatTeamUtilization(r *analysis.TeamCapacityUtilization, healthyMin float64) string {
	var b strings.Builder

	b.WriteString(Header(r.TeamName))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Capacity: %s hours over the cycle\n\n", Bold(fmt.Sprintf("%.0f", r.TotalCapacityHours))))

	headers := []string{"ITERATION", "ALLOCATED", "CAPACITY (H)", "ALLOCATIONS", "FLAGS"}
	rows := make([][]string, 0, len(r.Iterations))
	for _, it := range r.Iterations {
		var flags []string
		if it.IsOverAllocated {
			flags = append(flags, StyleRed.Render("over"))
		}
		if it.IsUnderAllocated {
			flags = append(flags, StyleYellow.Render("under"))
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", it.IterationNumber),
			Pct(it.AllocatedPct, healthyMin),
			fmt.Sprintf("%.0f", it.CapacityHours),
			fmt.Sprintf("%d", it.AllocationCount),
			strings.Join(flags, " "),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Average %s  Peak %s  Min %s  Trend %s\n",
		Pct(r.AverageUtilizationPct, healthyMin),
		Pct(r.PeakUtilizationPct, healthyMin),
		Pct(r.MinUtilizationPct, healthyMin),
		TrendArrow(r.Trend)))

	if len(r.SkillGaps) > 0 {
		b.WriteString(StyleYellow.Render("Skill gaps: "+strings.Join(r.SkillGaps, ", ")) + "\n")
	}
	for _, rec := range r.Recommendations {
		b.WriteString(Dim("• "+rec) + "\n")
	}

	return b.String()
}
