// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/boardapi/internal/platform/apperr"
	"github.com/taibuivan/boardapi/internal/platform/dberr"
)

/*
TestWrap_Classification checks the mapping from storage failures to API categories.
*/
func TestWrap_Classification(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"no_rows", pgx.ErrNoRows, http.StatusNotFound},
		{"wrapped_no_rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), http.StatusNotFound},
		{"foreign_key", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, http.StatusNotFound},
		{"not_null", &pgconn.PgError{Code: pgerrcode.NotNullViolation}, http.StatusBadRequest},
		{"invalid_text", &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation}, http.StatusBadRequest},
		{"out_of_range", &pgconn.PgError{Code: pgerrcode.NumericValueOutOfRange}, http.StatusBadRequest},
		{"unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, http.StatusBadRequest},
		{"unknown_sqlstate", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, http.StatusInternalServerError},
		{"plain_error", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dberr.Wrap(tt.err, "test_action")
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.status, ae.HTTPStatus)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

/*
TestWrap_Nil verifies that a nil error stays nil.
*/
func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

/*
TestWrap_AlreadyClassified verifies that an AppError passes through untouched.
*/
func TestWrap_AlreadyClassified(t *testing.T) {
	original := apperr.BadRequest()
	assert.Same(t, original, dberr.Wrap(original, "noop"))
}

/*
TestWrap_HidesCause verifies that the client message never carries driver detail.
*/
func TestWrap_HidesCause(t *testing.T) {
	err := dberr.Wrap(&pgconn.PgError{Code: pgerrcode.SyntaxError, Message: "syntax error at or near SELECT"}, "list")
	assert.Equal(t, apperr.MessageInternal, err.Error())
}
