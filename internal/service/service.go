// Package service holds the gate domain logic. Services depend on
// repository interfaces and return errors from internal/errors so that
// handlers can map them without knowing about GORM.
package service

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"

	apperrors "gatepass/internal/errors"
)

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}

// lookupErr turns a repository error for a referenced id into notFound or
// a StorageError.
func lookupErr(op string, err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return apperrors.NewStorageError(op, err)
}
