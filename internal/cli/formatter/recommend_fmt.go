package formatter

import (
	"fmt"
	"strings"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/analysis"
)

// FormatRecommendations renders the allocation recommendation report.
func FormatRecommendations(r *analysis.AllocationRecommendations) string {
	var b strings.Builder

	b.WriteString(Header("Recommendations"))
	b.WriteString("\n\n")

	if len(r.Redistributions) > 0 {
		b.WriteString(Bold("Redistributions") + "\n")
		for _, s := range r.Redistributions {
			b.WriteString(fmt.Sprintf("  move %s from %s (iteration %d) to %s (iteration %d)\n",
				StyleYellow.Render(fmt.Sprintf("%.1f%%", s.MovePercentage)),
				s.FromTeamID, s.FromIteration, s.ToTeamID, s.ToIteration))
			if s.Reason != "" {
				b.WriteString(Dim("    "+s.Reason) + "\n")
			}
		}
		b.WriteString("\n")
	}

	if len(r.TeamEpicMatches) > 0 {
		b.WriteString(Bold("Skill-based matches") + "\n")
		for _, m := range r.TeamEpicMatches {
			b.WriteString(fmt.Sprintf("  %s covers %s (%s)\n",
				Bold(m.TeamName), m.EpicName, Dim(strings.Join(m.MatchedSkills, ", "))))
		}
		b.WriteString("\n")
	}

	if len(r.CapacityBalancing) > 0 {
		b.WriteString(Bold("Capacity balancing") + "\n")
		headers := []string{"TEAM", "AVG", "DELTA"}
		rows := make([][]string, 0, len(r.CapacityBalancing))
		for _, d := range r.CapacityBalancing {
			rows = append(rows, []string{
				d.TeamID,
				fmt.Sprintf("%.1f%%", d.AverageUtilizationPct),
				deltaCell(d.DeltaPct),
			})
		}
		b.WriteString(RenderTable(headers, rows))
		b.WriteString("\n")
	}

	if r.RunWork != nil {
		b.WriteString(Bold("Run work") + "\n")
		b.WriteString(fmt.Sprintf("  %.1f%% of allocation is run work (target %.0f%%)\n",
			r.RunWork.RunWorkPct, r.RunWork.TargetPct))
		if r.RunWork.Recommendation != "" {
			b.WriteString(Dim("  "+r.RunWork.Recommendation) + "\n")
		}
	}

	if len(r.Redistributions) == 0 && len(r.TeamEpicMatches) == 0 &&
		len(r.CapacityBalancing) == 0 && r.RunWork == nil {
		b.WriteString(Dim("Nothing to recommend.") + "\n")
	}

	return b.String()
}

// FormatOptimization renders the single-target optimization report.
func FormatOptimization(r *analysis.OptimizationResult) string {
	var b strings.Builder

	b.WriteString(Header("Optimization"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Target utilization: %s\n\n", Bold(fmt.Sprintf("%.0f%%", r.TargetUtilizationPct))))

	if len(r.Deltas) == 0 {
		b.WriteString(Dim("No allocated teams to optimize.") + "\n")
		return b.String()
	}

	headers := []string{"TEAM", "AVG", "DELTA"}
	rows := make([][]string, 0, len(r.Deltas))
	for _, d := range r.Deltas {
		rows = append(rows, []string{
			d.TeamID,
			fmt.Sprintf("%.1f%%", d.AverageUtilizationPct),
			deltaCell(d.DeltaPct),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Projected average after applying deltas: %s\n",
		Bold(fmt.Sprintf("%.1f%%", r.ProjectedAveragePct))))

	return b.String()
}

// deltaCell colors a balancing delta: green headroom, red overload.
func deltaCell(delta float64) string {
	text := fmt.Sprintf("%+.1f%%", delta)
	if delta < 0 {
		return StyleRed.Render(text)
	}
	if delta > 0 {
		return StyleGreen.Render(text)
	}
	return StyleDim.Render(text)
}
