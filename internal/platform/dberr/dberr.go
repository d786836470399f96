// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Classification
//
//   - pgx.ErrNoRows and foreign key violations become Not Found.
//   - Not-null, type, range, check and unique violations become Bad Request.
//   - Everything else becomes Internal, keeping the cause for logs only.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/boardapi/internal/platform/apperr"
)

// badRequestCodes are SQLSTATE codes caused by malformed client input.
var badRequestCodes = map[string]struct{}{
	pgerrcode.NotNullViolation:          {},
	pgerrcode.InvalidTextRepresentation: {},
	pgerrcode.NumericValueOutOfRange:    {},
	pgerrcode.CheckViolation:            {},
	pgerrcode.UniqueViolation:           {},
}

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action names the failed operation and is attached to the cause.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// Already classified further down (e.g. by the existence checker).
	if apperr.IsAppError(err) {
		return err
	}

	cause := fmt.Errorf("%s: %w", action, err)

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound().WithCause(cause)
	}

	// 2. SQLSTATE mapping
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgerrcode.ForeignKeyViolation {
			return apperr.NotFound().WithCause(cause)
		}
		if _, ok := badRequestCodes[pgErr.Code]; ok {
			return apperr.BadRequest().WithCause(cause)
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(cause)
}
