package topic_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/boardapi/internal/core/topic"
)

func TestHandler_ListTopics(t *testing.T) {
	repo := &fakeRepository{topics: []*topic.Topic{{Slug: "mitch", Description: "The man, the Mitch, the legend"}}}
	handler := topic.NewHandler(topic.NewService(repo, nil, discardLogger()))

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"topics":[{"slug":"mitch","description":"The man, the Mitch, the legend"}]}`, recorder.Body.String())
}

func TestHandler_CreateTopic(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{"created", `{"slug":"dogs","description":"Not cats"}`, http.StatusCreated, `{"postedTopic":[{"slug":"dogs","description":"Not cats"}]}`},
		{"missing_slug", `{"description":"Not cats"}`, http.StatusBadRequest, `{"message":"Bad Request"}`},
		{"malformed_json", `{"slug":`, http.StatusBadRequest, `{"message":"Bad Request"}`},
		{"empty_body", ``, http.StatusBadRequest, `{"message":"Bad Request"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := topic.NewHandler(topic.NewService(&fakeRepository{}, nil, discardLogger()))

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			handler.Routes().ServeHTTP(recorder, request)

			assert.Equal(t, tt.status, recorder.Code)
			assert.JSONEq(t, tt.want, recorder.Body.String())
		})
	}
}
