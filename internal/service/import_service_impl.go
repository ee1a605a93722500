package service

import (
	"context"
	"fmt"
	"time"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/db"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/importer"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportSnapshot(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadSnapshotSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot file: %w", err)
	}
	return s.ImportSnapshotFromSchema(ctx, schema)
}

func (s *importService) ImportSnapshotFromSchema(ctx context.Context, schema *importer.SnapshotSchema) (*ImportResult, error) {
	if errs := importer.ValidateSnapshotSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	snap, err := importer.Convert(schema, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("converting snapshot: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		teams := repository.NewSQLiteTeamRepo(tx)
		cycles := repository.NewSQLiteCycleRepo(tx)
		epics := repository.NewSQLiteEpicRepo(tx)
		runWork := repository.NewSQLiteRunWorkRepo(tx)
		allocations := repository.NewSQLiteAllocationRepo(tx)

		// The snapshot file is the full state: clear before loading,
		// children before parents.
		if err := allocations.DeleteAll(ctx); err != nil {
			return err
		}
		if err := runWork.DeleteAll(ctx); err != nil {
			return err
		}
		if err := epics.DeleteAll(ctx); err != nil {
			return err
		}
		if err := cycles.DeleteAll(ctx); err != nil {
			return err
		}
		if err := teams.DeleteAll(ctx); err != nil {
			return err
		}

		for i := range snap.Teams {
			if err := teams.Create(ctx, &snap.Teams[i]); err != nil {
				return fmt.Errorf("creating team %q: %w", snap.Teams[i].Name, err)
			}
		}
		for i := range snap.Cycles {
			if err := cycles.Create(ctx, &snap.Cycles[i]); err != nil {
				return fmt.Errorf("creating cycle %q: %w", snap.Cycles[i].Name, err)
			}
		}
		for i := range snap.Epics {
			if err := epics.Create(ctx, &snap.Epics[i]); err != nil {
				return fmt.Errorf("creating epic %q: %w", snap.Epics[i].Name, err)
			}
		}
		for i := range snap.RunWorkCategories {
			if err := runWork.Create(ctx, &snap.RunWorkCategories[i]); err != nil {
				return fmt.Errorf("creating run work category %q: %w", snap.RunWorkCategories[i].Name, err)
			}
		}
		for i := range snap.Allocations {
			if err := allocations.Create(ctx, &snap.Allocations[i]); err != nil {
				return fmt.Errorf("creating allocation: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		TeamCount:       len(snap.Teams),
		CycleCount:      len(snap.Cycles),
		EpicCount:       len(snap.Epics),
		RunWorkCount:    len(snap.RunWorkCategories),
		AllocationCount: len(snap.Allocations),
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("snapshot validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
