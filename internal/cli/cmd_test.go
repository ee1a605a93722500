package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/analysis"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/cli"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/cli/formatter"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/importer"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/repository"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/service"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	formatter.DisableColor()
}

func floatPtr(f float64) *float64 { return &f }

func newTestApp(t *testing.T) *cli.App {
	t.Helper()
	database := testutil.NewTestDB(t)
	policy := analysis.DefaultPolicy()
	return &cli.App{
		Import:   service.NewImportService(testutil.NewTestUoW(database)),
		Analysis: service.NewAnalysisService(repository.NewSQLiteSnapshotRepo(database), policy),
		Policy:   policy,
	}
}

func writeSnapshotFile(t *testing.T) string {
	t.Helper()
	schema := &importer.SnapshotSchema{
		Teams: []importer.TeamImport{
			{Ref: "t-alpha", Name: "Alpha", Capacity: floatPtr(40), Skills: []string{"go"}},
			{Ref: "t-beta", Name: "Beta", Capacity: floatPtr(35)},
		},
		Cycles: []importer.CycleImport{
			{
				Ref: "q1", Name: "Q1 2025", StartDate: "2025-01-06", EndDate: "2025-02-03",
				Iterations: []importer.IterationImport{
					{Number: 1, StartDate: "2025-01-06", EndDate: "2025-01-20"},
					{Number: 2, StartDate: "2025-01-20", EndDate: "2025-02-03"},
				},
			},
		},
		Epics: []importer.EpicImport{
			{Ref: "e1", Name: "Billing revamp", Status: "in_progress", RequiredSkills: []string{"go"}},
		},
		RunWorkCategories: []importer.RunWorkImport{
			{Ref: "support", Name: "Support"},
		},
		Allocations: []importer.AllocationImport{
			{TeamRef: "t-alpha", CycleRef: "q1", Iteration: 1, Percentage: 70, EpicRef: "e1"},
			{TeamRef: "t-alpha", CycleRef: "q1", Iteration: 2, Percentage: 20, RunWorkRef: "support"},
			{TeamRef: "t-beta", CycleRef: "q1", Iteration: 1, Percentage: 90, EpicRef: "e1"},
		},
	}
	data, err := json.Marshal(schema)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func execute(t *testing.T, app *cli.App, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestImportThenUtilization(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "import", writeSnapshotFile(t))
	require.NoError(t, err)
	assert.Contains(t, out, "2 teams")
	assert.Contains(t, out, "3 allocations")

	out, err = execute(t, app, "utilization", "--cycle", "Q1 2025")
	require.NoError(t, err)
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Beta")
}

func TestUtilizationSingleTeamJSON(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "import", writeSnapshotFile(t))
	require.NoError(t, err)

	out, err := execute(t, app, "utilization", "--team", "Beta", "--json")
	require.NoError(t, err)

	var report analysis.TeamCapacityUtilization
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Beta", report.TeamName)
	assert.Equal(t, 90.0, report.PeakUtilizationPct)
}

func TestValidateCommandPasses(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "import", writeSnapshotFile(t))
	require.NoError(t, err)

	out, err := execute(t, app, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "allocation set is valid")
}

func TestConflictsTrendsDepsOptimize(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "import", writeSnapshotFile(t))
	require.NoError(t, err)

	out, err := execute(t, app, "conflicts")
	require.NoError(t, err)
	// Alpha and Beta share the billing epic in iteration 1.
	assert.Contains(t, out, "resource-contention")

	out, err = execute(t, app, "trends")
	require.NoError(t, err)
	assert.Contains(t, out, "TEAM")

	out, err = execute(t, app, "deps")
	require.NoError(t, err)
	assert.Contains(t, out, "Billing revamp")

	out, err = execute(t, app, "optimize", "--target", "90")
	require.NoError(t, err)
	assert.Contains(t, out, "90%")
}

func TestUnknownCycleErrors(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "import", writeSnapshotFile(t))
	require.NoError(t, err)

	_, err = execute(t, app, "conflicts", "--cycle", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
