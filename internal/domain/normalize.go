package domain

// Source data may carry optional skill/dependency lists as absent,
// empty, or null. Normalization collapses the three cases to an empty
// slice once at the analysis boundary so downstream logic never
// branches on absence.

// NormalizeTeam returns a copy with optional slices nil-safed and
// negative capacity clamped to zero.
func NormalizeTeam(t Team) Team {
	t.Capacity = t.EffectiveCapacity()
	t.Skills = emptyIfNil(t.Skills)
	t.TargetSkills = emptyIfNil(t.TargetSkills)
	return t
}

// NormalizeEpic returns a copy with optional slices nil-safed.
func NormalizeEpic(e Epic) Epic {
	e.RequiredSkills = emptyIfNil(e.RequiredSkills)
	e.DependsOn = emptyIfNil(e.DependsOn)
	return e
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
