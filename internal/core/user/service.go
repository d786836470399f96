package user

import (
	"context"
	"log/slog"

	"github.com/taibuivan/boardapi/internal/platform/apperr"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListUsers(context context.Context) ([]*User, error) {
	return service.repo.ListUsers(context)
}

// GetUser fetches one user by username.
//
// An unknown username is reported as Bad Request, not Not Found.
func (service *Service) GetUser(context context.Context, username string) (*User, error) {
	u, err := service.repo.GetUser(context, username)
	if apperr.IsNotFound(err) {
		return nil, apperr.BadRequest(apperr.FieldError{Field: "username", Message: "Unknown user"}).WithCause(err)
	}
	return u, err
}
