// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Successful payloads are JSON objects keyed by resource name (for example
// `{"articles": [...]}`) and every error is `{"message": "..."}` carrying
// one of the fixed [apperr] messages.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/boardapi/internal/platform/apperr"
	"github.com/taibuivan/boardapi/internal/platform/ctxutil"
)

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data under the given key.
func OK(writer http.ResponseWriter, key string, data interface{}) {
	JSON(writer, http.StatusOK, map[string]interface{}{key: data})
}

// Created writes a 201 Created response with data under the given key.
func Created(writer http.ResponseWriter, key string, data interface{}) {
	JSON(writer, http.StatusCreated, map[string]interface{}{key: data})
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// NotFound writes the standard 404 body. It is used as the router fallback.
func NotFound(writer http.ResponseWriter, request *http.Request) {
	Error(writer, request, apperr.NotFound())
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	logger := ctxutil.GetLogger(request.Context())

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client for security.
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= http.StatusInternalServerError {
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	} else if len(appError.Details) > 0 || appError.Cause != nil {
		logger.DebugContext(request.Context(), "api_client_error",
			slog.String("code", appError.Code),
			slog.Any("details", appError.Details),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{Message: appError.Message})
}
