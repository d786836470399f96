// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/boardapi/internal/platform/constants"
	"github.com/taibuivan/boardapi/internal/platform/ctxutil"
	"github.com/taibuivan/boardapi/internal/platform/middleware"
)

type stubConfig struct {
	development bool
	origins     []string
}

func (c stubConfig) IsDevelopment() bool { return c.development }
func (c stubConfig) Origins() []string   { return c.origins }

/*
TestRequestID_GeneratesAndPropagates verifies the correlation header round trip.
*/
func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	// 1. Generated when absent
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/topics", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get(constants.HeaderXRequestID))

	// 2. Reused when supplied
	request := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	request.Header.Set(constants.HeaderXRequestID, "client-id")
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, "client-id", seen)
}

/*
TestPanicRecovery_Returns500 verifies that a panic becomes the generic error body.
*/
func TestPanicRecovery_Returns500(t *testing.T) {
	handler := middleware.PanicRecovery(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/articles", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error!"}`, recorder.Body.String())
}

/*
TestRateLimit_RejectsBurstOverflow verifies that the token bucket is enforced per IP.
*/
func TestRateLimit_RejectsBurstOverflow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx, 0.001, 2)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for range 3 {
		last = httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		request.RemoteAddr = "10.0.0.1:5555"
		handler.ServeHTTP(last, request)
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.JSONEq(t, `{"message":"Too Many Requests"}`, last.Body.String())
	assert.Equal(t, "1", last.Header().Get("Retry-After"))
}

/*
TestTimeout_SilentHandlerGetsInternalBody verifies that a request abandoned at
the deadline still answers with the standard error envelope.
*/
func TestTimeout_SilentHandlerGetsInternalBody(t *testing.T) {
	handler := middleware.Timeout(10 * time.Millisecond)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		<-request.Context().Done()
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/articles", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error!"}`, recorder.Body.String())
}

func TestTimeout_KeepsHandlerResponse(t *testing.T) {
	handler := middleware.Timeout(10 * time.Millisecond)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		<-request.Context().Done()
		writer.WriteHeader(http.StatusNoContent)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/api/comments/1", nil))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

/*
TestCORS_Origins verifies allow-listed origins outside development.
*/
func TestCORS_Origins(t *testing.T) {
	handler := middleware.CORS(stubConfig{origins: []string{"https://board.example"}})(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	allowed := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	allowed.Header.Set(constants.HeaderOrigin, "https://board.example")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, allowed)
	assert.Equal(t, "https://board.example", recorder.Header().Get("Access-Control-Allow-Origin"))

	denied := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	denied.Header.Set(constants.HeaderOrigin, "https://evil.example")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, denied)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(constants.HeaderXForwardedFor, "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", middleware.RealIP(request))
}
