// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")

	// ErrDuplicate is returned when an insert or update hits a unique index.
	ErrDuplicate = &apperr.AppError{
		Code:       "DUPLICATE",
		Message:    "Resource already exists",
		HTTPStatus: http.StatusConflict,
	}

	// ErrReferenced is returned when a delete is blocked by a RESTRICT foreign key,
	// or an insert points at a row that does not exist.
	ErrReferenced = &apperr.AppError{
		Code:       "REFERENCED",
		Message:    "Resource is referenced by other records",
		HTTPStatus: http.StatusConflict,
	}
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the visitor while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations carry a SQLSTATE
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrDuplicate.WithCause(err)
		case pgerrcode.ForeignKeyViolation:
			return ErrReferenced.WithCause(err)
		case pgerrcode.InvalidTextRepresentation:
			// Malformed identifiers cannot match any row.
			return ErrNotFound
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// Constraint returns the name of the violated constraint, or "" when err is not a
// PostgreSQL constraint error.
func Constraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
