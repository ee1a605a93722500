package domain

import "time"

type Team struct {
	ID         string
	Name       string
	DivisionID string

	// Capacity is the team's working capacity in hours per week.
	// Zero is valid and yields degenerate (zero) utilization.
	Capacity float64

	Skills       []string
	TargetSkills []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveCapacity returns the capacity usable for analysis.
// Negative capacity is treated as zero rather than rejected.
func (t Team) EffectiveCapacity() float64 {
	if t.Capacity < 0 {
		return 0
	}
	return t.Capacity
}

// HasSkill reports whether the team's skill set contains skill.
func (t Team) HasSkill(skill string) bool {
	for _, s := range t.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// MissingSkills returns the required skills not present in the team's
// skill set, preserving the order of required.
func (t Team) MissingSkills(required []string) []string {
	var missing []string
	for _, skill := range required {
		if !t.HasSkill(skill) {
			missing = append(missing, skill)
		}
	}
	return missing
}
