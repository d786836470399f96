package user_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/boardapi/internal/core/user"
	"github.com/taibuivan/boardapi/internal/platform/apperr"
)

type fakeRepository struct {
	users map[string]*user.User
}

func (repo *fakeRepository) ListUsers(context.Context) ([]*user.User, error) {
	users := make([]*user.User, 0, len(repo.users))
	for _, u := range repo.users {
		users = append(users, u)
	}
	return users, nil
}

func (repo *fakeRepository) GetUser(_ context.Context, username string) (*user.User, error) {
	u, ok := repo.users[username]
	if !ok {
		return nil, apperr.NotFound()
	}
	return u, nil
}

func newService() *user.Service {
	repo := &fakeRepository{users: map[string]*user.User{
		"butter_bridge": {Username: "butter_bridge", Name: "jonny"},
	}}
	return user.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetUser(t *testing.T) {
	u, err := newService().GetUser(context.Background(), "butter_bridge")
	require.NoError(t, err)
	assert.Equal(t, "jonny", u.Name)
}

func TestGetUser_UnknownIsBadRequest(t *testing.T) {
	_, err := newService().GetUser(context.Background(), "ghost")
	assert.True(t, apperr.IsBadRequest(err))
}

func TestHandler_GetUser(t *testing.T) {
	router := user.NewHandler(newService()).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/butter_bridge", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"user":[{"username":"butter_bridge","name":"jonny","avatar_url":null}]}`, recorder.Body.String())

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ghost", nil))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"message":"Bad Request"}`, recorder.Body.String())
}

func TestHandler_ListUsers(t *testing.T) {
	recorder := httptest.NewRecorder()
	user.NewHandler(newService()).Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"users":[`)
}
