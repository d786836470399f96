// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error taxonomy for the board API.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing a machine-readable code and a fixed client message.
  - Taxonomy: Exactly three categories reach clients (Bad Request, Not Found, Internal).
  - Mapping: Explicit mapping from AppError to standard HTTP Status Codes.

Every error that leaves the service layer should be an [AppError] so that the
boundary layer can turn it into a status code and a `{message}` body.
*/
package apperr

import (
	"errors"
	"net/http"
)

// Client-visible messages. These are the only strings ever sent in an error body.
const (
	MessageBadRequest = "Bad Request"
	MessageNotFound   = "Not Found"
	MessageInternal   = "Internal Server Error!"
)

// Machine-readable codes, used for logging and tests.
const (
	CodeBadRequest = "BAD_REQUEST"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

// AppError is the canonical error type for the board API.
//
// # Security
//
// Cause and Details are for server-side logging only and are never sent to
// clients; the response body only carries Message.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND").
	Code string `json:"code"`
	// Message is the fixed client-safe message.
	Message string `json:"message"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation failures, logged at debug level.
	Details []FieldError `json:"-"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the request field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause returns a copy of e carrying cause for server-side logging.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

// # Client Errors (4xx)

// BadRequest creates a 400 [AppError] for malformed input: wrong type, missing
// required field, invalid enum value or invalid identifier syntax.
func BadRequest(details ...FieldError) *AppError {
	return &AppError{
		Code:       CodeBadRequest,
		Message:    MessageBadRequest,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// NotFound creates a 404 [AppError] for a well-formed reference to a missing entity.
func NotFound() *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    MessageNotFound,
		HTTPStatus: http.StatusNotFound,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    MessageInternal,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsNotFound reports whether err classifies as Not Found.
func IsNotFound(err error) bool {
	ae := As(err)
	return ae != nil && ae.Code == CodeNotFound
}

// IsBadRequest reports whether err classifies as Bad Request.
func IsBadRequest(err error) bool {
	ae := As(err)
	return ae != nil && ae.Code == CodeBadRequest
}
