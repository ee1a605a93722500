package formatter

import (
	"fmt"
	"strings"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/analysis"
)

// FormatConflicts renders the conflict detection report for one cycle.
func FormatConflicts(r *analysis.ConflictDetectionResult) string {
	var b strings.Builder

	b.WriteString(Header("Conflicts"))
	b.WriteString("\n\n")

	if len(r.Conflicts) == 0 {
		b.WriteString(StyleGreen.Render("✓ no conflicts detected") + "\n")
		return b.String()
	}

	headers := []string{"", "TYPE", "SEVERITY", "TEAMS", "DETAIL"}
	rows := make([][]string, 0, len(r.Conflicts))
	for _, c := range r.Conflicts {
		rows = append(rows, []string{
			SeverityStyle(c.Severity).Render(c.Type.Icon()),
			string(c.Type),
			SeverityLabel(c.Severity),
			strings.Join(c.TeamIDs, ", "),
			c.Description,
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	summary := fmt.Sprintf("%s, %s, %s, %s",
		StyleRed.Render(fmt.Sprintf("%d critical", r.Summary.Critical)),
		StyleRed.Render(fmt.Sprintf("%d high", r.Summary.High)),
		StyleYellow.Render(fmt.Sprintf("%d medium", r.Summary.Medium)),
		StyleBlue.Render(fmt.Sprintf("%d low", r.Summary.Low)))
	b.WriteString(summary + "\n")
	b.WriteString(fmt.Sprintf("Affected teams: %d   Risk score: %s\n",
		r.AffectedTeamsCount, Bold(fmt.Sprintf("%.0f", r.OverallRiskScore))))

	return b.String()
}
