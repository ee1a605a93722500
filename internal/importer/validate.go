package importer

import (
	"fmt"
	"time"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
)

const dateLayout = "2006-01-02"

// ValidateSnapshotSchema checks the snapshot for errors before
// conversion. Returns a slice of all validation errors found.
func ValidateSnapshotSchema(schema *SnapshotSchema) []error {
	var errs []error

	teamRefs := make(map[string]bool)
	errs = append(errs, validateTeams(schema.Teams, teamRefs)...)

	cycleRefs := make(map[string]bool)
	iterationsByCycle := make(map[string]map[int]bool)
	errs = append(errs, validateCycles(schema.Cycles, cycleRefs, iterationsByCycle)...)

	epicRefs := make(map[string]bool)
	errs = append(errs, validateEpics(schema.Epics, epicRefs)...)

	runWorkRefs := make(map[string]bool)
	errs = append(errs, validateRunWork(schema.RunWorkCategories, runWorkRefs)...)

	errs = append(errs, validateAllocations(schema.Allocations, teamRefs, cycleRefs, iterationsByCycle, epicRefs, runWorkRefs)...)

	return errs
}

func validateTeams(teams []TeamImport, teamRefs map[string]bool) []error {
	var errs []error

	for i, t := range teams {
		prefix := fmt.Sprintf("teams[%d]", i)

		if t.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if teamRefs[t.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, t.Ref))
		} else {
			teamRefs[t.Ref] = true
		}

		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if t.Capacity != nil && *t.Capacity < 0 {
			errs = append(errs, fmt.Errorf("%s.capacity must be non-negative, got %v", prefix, *t.Capacity))
		}
	}

	return errs
}

func validateCycles(cycles []CycleImport, cycleRefs map[string]bool, iterationsByCycle map[string]map[int]bool) []error {
	var errs []error

	for i, c := range cycles {
		prefix := fmt.Sprintf("cycles[%d]", i)

		if c.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if cycleRefs[c.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, c.Ref))
		} else {
			cycleRefs[c.Ref] = true
		}

		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		errs = append(errs, validateRequiredDate(prefix+".start_date", c.StartDate)...)
		errs = append(errs, validateRequiredDate(prefix+".end_date", c.EndDate)...)

		numbers := make(map[int]bool)
		var prevEnd time.Time
		for j, it := range c.Iterations {
			itPrefix := fmt.Sprintf("%s.iterations[%d]", prefix, j)

			if it.Number <= 0 {
				errs = append(errs, fmt.Errorf("%s.number must be positive", itPrefix))
			} else if numbers[it.Number] {
				errs = append(errs, fmt.Errorf("%s.number: duplicate iteration %d", itPrefix, it.Number))
			} else {
				numbers[it.Number] = true
			}

			start, startErrs := parseRequiredDate(itPrefix+".start_date", it.StartDate)
			end, endErrs := parseRequiredDate(itPrefix+".end_date", it.EndDate)
			errs = append(errs, startErrs...)
			errs = append(errs, endErrs...)
			if len(startErrs) > 0 || len(endErrs) > 0 {
				continue
			}

			if !end.After(start) {
				errs = append(errs, fmt.Errorf("%s: end_date %q must be after start_date %q", itPrefix, it.EndDate, it.StartDate))
			}
			// Iterations must be chronologically ordered and non-overlapping.
			if j > 0 && start.Before(prevEnd) {
				errs = append(errs, fmt.Errorf("%s: start_date %q overlaps previous iteration", itPrefix, it.StartDate))
			}
			prevEnd = end
		}

		if c.Ref != "" {
			iterationsByCycle[c.Ref] = numbers
		}
	}

	return errs
}

func validateEpics(epics []EpicImport, epicRefs map[string]bool) []error {
	var errs []error

	for i, e := range epics {
		prefix := fmt.Sprintf("epics[%d]", i)

		if e.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if epicRefs[e.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, e.Ref))
		} else {
			epicRefs[e.Ref] = true
		}

		if e.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if e.Status != "" && !domain.ValidEpicStatuses[e.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, e.Status))
		}
		if e.EffortPoints != nil && *e.EffortPoints < 0 {
			errs = append(errs, fmt.Errorf("%s.effort_points must be non-negative", prefix))
		}
		if e.TargetDate != nil {
			errs = append(errs, validateRequiredDate(prefix+".target_date", *e.TargetDate)...)
		}
		for _, dep := range e.DependsOn {
			if dep == e.Ref {
				errs = append(errs, fmt.Errorf("%s: self-dependency on %q", prefix, dep))
			}
		}
	}

	// Dependency refs may point forward, so resolve after collecting all.
	for i, e := range epics {
		for _, dep := range e.DependsOn {
			if dep != e.Ref && !epicRefs[dep] {
				errs = append(errs, fmt.Errorf("epics[%d].depends_on: ref %q not found in epics", i, dep))
			}
		}
	}

	return errs
}

func validateRunWork(categories []RunWorkImport, runWorkRefs map[string]bool) []error {
	var errs []error

	for i, r := range categories {
		prefix := fmt.Sprintf("run_work_categories[%d]", i)

		if r.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if runWorkRefs[r.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, r.Ref))
		} else {
			runWorkRefs[r.Ref] = true
		}

		if r.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	}

	return errs
}

func validateAllocations(
	allocations []AllocationImport,
	teamRefs, cycleRefs map[string]bool,
	iterationsByCycle map[string]map[int]bool,
	epicRefs, runWorkRefs map[string]bool,
) []error {
	var errs []error

	for i, a := range allocations {
		prefix := fmt.Sprintf("allocations[%d]", i)

		if a.TeamRef == "" {
			errs = append(errs, fmt.Errorf("%s.team_ref is required", prefix))
		} else if !teamRefs[a.TeamRef] {
			errs = append(errs, fmt.Errorf("%s.team_ref: ref %q not found in teams", prefix, a.TeamRef))
		}

		if a.CycleRef == "" {
			errs = append(errs, fmt.Errorf("%s.cycle_ref is required", prefix))
		} else if !cycleRefs[a.CycleRef] {
			errs = append(errs, fmt.Errorf("%s.cycle_ref: ref %q not found in cycles", prefix, a.CycleRef))
		} else if iters := iterationsByCycle[a.CycleRef]; !iters[a.Iteration] {
			errs = append(errs, fmt.Errorf("%s.iteration: cycle %q has no iteration %d", prefix, a.CycleRef, a.Iteration))
		}

		// Out-of-range percentages are rejected, never silently clamped.
		if a.Percentage < 0 || a.Percentage > 100 {
			errs = append(errs, fmt.Errorf("%s.percentage must be within [0, 100], got %v", prefix, a.Percentage))
		}

		switch {
		case a.EpicRef == "" && a.RunWorkRef == "":
			errs = append(errs, fmt.Errorf("%s: one of epic_ref or run_work_ref is required", prefix))
		case a.EpicRef != "" && a.RunWorkRef != "":
			errs = append(errs, fmt.Errorf("%s: epic_ref and run_work_ref are mutually exclusive", prefix))
		case a.EpicRef != "" && !epicRefs[a.EpicRef]:
			errs = append(errs, fmt.Errorf("%s.epic_ref: ref %q not found in epics", prefix, a.EpicRef))
		case a.RunWorkRef != "" && !runWorkRefs[a.RunWorkRef]:
			errs = append(errs, fmt.Errorf("%s.run_work_ref: ref %q not found in run_work_categories", prefix, a.RunWorkRef))
		}
	}

	return errs
}

func validateRequiredDate(field, value string) []error {
	_, errs := parseRequiredDate(field, value)
	return errs
}

func parseRequiredDate(field, value string) (time.Time, []error) {
	if value == "" {
		return time.Time{}, []error{fmt.Errorf("%s is required", field)}
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, value)}
	}
	return t, nil
}
