package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/analysis"
)

// FormatValidation renders the consistency validation report.
func FormatValidation(v *analysis.AllocationConsistencyValidation) string {
	var b strings.Builder

	b.WriteString(Header("Allocation Validation"))
	b.WriteString("\n\n")

	if v.IsValid {
		b.WriteString(StyleGreen.Render("✓ allocation set is valid") + "\n")
	} else {
		b.WriteString(StyleRed.Render(fmt.Sprintf("✗ %d budget errors", len(v.Errors))) + "\n")
	}
	b.WriteString("\n")

	if len(v.OrphanedAllocations) > 0 {
		b.WriteString(Bold("Orphaned allocations") + "\n")
		for _, o := range v.OrphanedAllocations {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  %s: %s", o.AllocationID, o.Reason)) + "\n")
		}
		b.WriteString("\n")
	}

	writeBudgetIssues(&b, "Errors", v.Errors, StyleRed)
	writeBudgetIssues(&b, "Warnings", v.Warnings, StyleYellow)

	if len(v.SkillMismatches) > 0 {
		b.WriteString(Bold("Skill mismatches") + "\n")
		for _, m := range v.SkillMismatches {
			b.WriteString(fmt.Sprintf("  %s → %s: missing %s\n",
				m.TeamName, m.EpicName, StyleYellow.Render(strings.Join(m.MissingSkills, ", "))))
		}
		b.WriteString("\n")
	}

	if len(v.DependencyViolations) > 0 {
		b.WriteString(Bold("Dependency violations") + "\n")
		for _, d := range v.DependencyViolations {
			b.WriteString(StyleRed.Render(fmt.Sprintf("  epic %s depends on %s (%s)",
				d.EpicID, d.DependsOnEpicID, d.DependencyStatus)) + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeBudgetIssues(b *strings.Builder, title string, issues []analysis.BudgetIssue, style lipgloss.Style) {
	if len(issues) == 0 {
		return
	}
	b.WriteString(Bold(title) + "\n")
	for _, issue := range issues {
		b.WriteString(style.Render("  "+issue.Message) + "\n")
	}
	b.WriteString("\n")
}
