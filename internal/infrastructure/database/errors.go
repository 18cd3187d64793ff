package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jan-server/services/chat-api/internal/utils/platformerrors"
)

// StoreError converts a gorm error into a PlatformError. Constraint
// violations become validation errors, everything else a database error.
// Errors that already are PlatformErrors pass through unchanged.
func StoreError(ctx context.Context, err error, message, code string) error {
	if err == nil {
		return nil
	}

	var platformErr *platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		return platformErr
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeValidation,
			message+": a record with the same unique value already exists", err, code)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeValidation,
			message+": the record references or is referenced by other records", err, code)
	default:
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			message, err, code)
	}
}

// ForUpdate locks the selected rows until the surrounding transaction ends.
// SQLite serializes writers on its own and has no FOR UPDATE syntax.
func ForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
