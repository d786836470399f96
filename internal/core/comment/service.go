// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/boardapi/internal/platform/ctxutil"
	"github.com/taibuivan/boardapi/internal/platform/database/schema"
	"github.com/taibuivan/boardapi/internal/platform/validate"
	"github.com/taibuivan/boardapi/pkg/pagination"
)

type Service struct {
	repo    Repository
	checker ReferenceChecker
	logger  *slog.Logger
}

func NewService(repo Repository, checker ReferenceChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		checker: checker,
		logger:  logger,
	}
}

/*
ListComments returns the comments of one article, newest first.

Description: The article id and pagination are validated first. The article
existence check and the listing then run concurrently so that an unknown
article is reported as Not Found rather than as an empty list.

Parameters:
  - articleID: raw path value
  - limit, page: raw query values, empty when absent

Returns:
  - []*Comment: possibly empty, never nil on success
  - error: BadRequest or NotFound
*/
func (service *Service) ListComments(context context.Context, articleID, limit, page string) ([]*Comment, error) {
	id, err := validate.ParseID(FieldArticleID, articleID)
	if err != nil {
		return nil, err
	}

	params, pageErr := pagination.Parse(limit, page)

	validator := &validate.Validator{}
	validator.
		Custom(FieldLimit, errors.Is(pageErr, pagination.ErrInvalidLimit), "Must be a non-negative integer").
		Custom(FieldPage, errors.Is(pageErr, pagination.ErrInvalidPage), "Must be a positive integer")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	group, groupCtx := errgroup.WithContext(context)
	group.Go(func() error {
		return service.checker.Exists(groupCtx, schema.ArticleID, id)
	})

	var comments []*Comment
	group.Go(func() error {
		var err error
		comments, err = service.repo.ListComments(groupCtx, id, params)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if comments == nil {
		comments = []*Comment{}
	}
	return comments, nil
}

/*
CreateComment posts a comment on an article.

Description: Required fields and the article id are validated before any
query. Unknown users and articles are rejected by the storage layer.
*/
func (service *Service) CreateComment(context context.Context, articleID string, input NewComment) (*Comment, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldUsername, input.Username).
		Required(FieldBody, input.Body)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	id, err := validate.ParseID(FieldArticleID, articleID)
	if err != nil {
		return nil, err
	}

	created, err := service.repo.CreateComment(context, id, input)
	if err != nil {
		return nil, err
	}

	ctxutil.LoggerOr(context, service.logger).InfoContext(context, "comment_created",
		slog.Int("comment_id", created.ID),
		slog.Int("article_id", created.ArticleID),
		slog.String("author", created.Author),
	)
	return created, nil
}

// IncrementVotes adds delta to the comment's votes. A nil delta is rejected.
func (service *Service) IncrementVotes(context context.Context, id int, delta *int) (*Comment, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldIncVotes, delta == nil, "This field is required")
	if delta != nil {
		validator.Int32(FieldIncVotes, *delta)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repo.IncrementVotes(context, id, *delta)
}

func (service *Service) DeleteComment(context context.Context, id int) error {
	if err := service.repo.DeleteComment(context, id); err != nil {
		return err
	}

	ctxutil.LoggerOr(context, service.logger).InfoContext(context, "comment_deleted", slog.Int("comment_id", id))
	return nil
}
