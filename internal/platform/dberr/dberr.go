// Copyright (c) 2026 Book Alchemy. All rights reserved.

// Package dberr provides a bridge between low-level SQLite errors and
// higher-level application errors.
package dberr

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/nagrapoonam/Book-Alchemy/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// Already classified further down the stack.
	if apperr.IsAppError(err) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	if IsUniqueViolation(err) {
		conflict := apperr.Conflict("Resource already exists")
		conflict.Cause = err
		return conflict
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// IsUniqueViolation reports whether err is a SQLite UNIQUE or PRIMARY KEY violation.
func IsUniqueViolation(err error) bool {
	return hasExtendedCode(err, sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey)
}

// IsForeignKeyViolation reports whether err is a SQLite FOREIGN KEY violation.
func IsForeignKeyViolation(err error) bool {
	return hasExtendedCode(err, sqlite3.ErrConstraintForeignKey)
}

func hasExtendedCode(err error, codes ...sqlite3.ErrNoExtended) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	for _, code := range codes {
		if sqliteErr.ExtendedCode == code {
			return true
		}
	}
	return false
}
