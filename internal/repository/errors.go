// Package repository implements the data access layer for the application.
// Each entity gets a small storage interface plus a GORM implementation;
// every storage failure is classified into the application error taxonomy
// before it leaves this package.
package repository

import (
	"context"
	"errors"
	"strings"

	"fittrack/internal/models"

	"gorm.io/gorm"
)

// classify converts a raw storage error into an AppError. resource names the
// entity for not-found messages.
func classify(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.NewNotFoundError(resource)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return models.NewTransientError(err)
	case isUniqueConstraintError(err):
		return models.NewConflictError(resource + " already exists")
	default:
		return models.NewInternalError(err)
	}
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique failed") ||
		strings.Contains(msg, "constraint failed: unique")
}
