package repository

import (
	"errors"
	"strings"
)

// ErrConstraint reports a write rejected by a uniqueness or foreign-key
// constraint at the storage layer.
var ErrConstraint = errors.New("constraint violation")

// isConstraintViolation checks the driver error text (works for both SQLite
// and PostgreSQL)
func isConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "constraint failed") ||
		strings.Contains(errStr, "duplicate key value") ||
		strings.Contains(errStr, "violates foreign key constraint")
}
