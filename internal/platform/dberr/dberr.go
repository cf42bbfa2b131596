// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/storehub/internal/platform/apperr"
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

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations become client errors
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict("A record with the same unique value already exists")
		case pgerrcode.ForeignKeyViolation:
			return apperr.ValidationError("Referenced record does not exist")
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return apperr.ValidationError("Record violates a data constraint")
		}
	}

	// 3. Anything else is an Internal Server Error
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// IsNotFound reports whether err is (or wraps) a missing-row condition.
func IsNotFound(err error) bool {
	if errors.Is(err, pgx.ErrNoRows) {
		return true
	}
	appError := apperr.As(err)
	return appError != nil && appError.Code == apperr.CodeNotFound
}
