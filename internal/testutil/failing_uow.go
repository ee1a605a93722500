package testutil

import (
	"context"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/db"
)

// FailingUoW wraps a real UnitOfWork and forces a rollback by returning
// FailWith after the callback has run. Used to verify that multi-step
// writes leave no partial state behind.
type FailingUoW struct {
	Inner    db.UnitOfWork
	FailWith error
}

func (f *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	err := f.Inner.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := fn(ctx, tx); err != nil {
			return err
		}
		return f.FailWith
	})
	return err
}
