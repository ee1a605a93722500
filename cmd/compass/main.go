package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/analysis"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/cli"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/cli/formatter"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/db"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/repository"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.compass/compass.db
	dbPath := os.Getenv("COMPASS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".compass", "compass.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableColor()
	}

	policy := analysis.DefaultPolicy()
	app := &cli.App{
		Import:   service.NewImportService(db.NewSQLiteUnitOfWork(database)),
		Analysis: service.NewAnalysisService(repository.NewSQLiteSnapshotRepo(database), policy),
		Policy:   policy,
	}

	return cli.NewRootCmd(app).Execute()
}
