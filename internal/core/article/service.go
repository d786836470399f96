// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

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

// Service implements article business logic on top of a [Repository].
type Service struct {
	repo    Repository
	checker ReferenceChecker
	logger  *slog.Logger
}

// NewService constructs the article service.
func NewService(repo Repository, checker ReferenceChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		checker: checker,
		logger:  logger,
	}
}

/*
ListArticles validates the raw listing parameters and returns one page of
summaries together with the total number of matches.

Description: Every parameter is validated before any query runs. The topic
existence check, the page query and the count query then run concurrently;
the first failure cancels the rest and is returned as is.

Returns:
  - *Page: possibly empty, never nil on success
  - error: BadRequest for bad parameters, NotFound for an unknown topic
*/
func (service *Service) ListArticles(context context.Context, query ListQuery) (*Page, error) {
	filter, err := parseListQuery(query)
	if err != nil {
		return nil, err
	}

	group, groupCtx := errgroup.WithContext(context)

	if filter.Topic != "" {
		group.Go(func() error {
			return service.checker.Exists(groupCtx, schema.TopicSlug, filter.Topic)
		})
	}

	var articles []*Summary
	group.Go(func() error {
		var err error
		articles, err = service.repo.ListArticles(groupCtx, filter)
		return err
	})

	var total int
	group.Go(func() error {
		var err error
		total, err = service.repo.CountArticles(groupCtx, filter)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if articles == nil {
		articles = []*Summary{}
	}

	return &Page{Articles: articles, TotalCount: total}, nil
}

// parseListQuery applies defaults and turns a raw query into a [Filter].
func parseListQuery(query ListQuery) (Filter, error) {
	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = DefaultSort
	}

	order := query.Order
	if order == "" {
		order = DefaultOrder
	}

	params, pageErr := pagination.Parse(query.Limit, query.Page)

	validator := &validate.Validator{}
	validator.
		OneOf(FieldSortBy, sortBy, SortableFields...).
		OneOf(FieldOrder, order, OrderAsc, OrderDesc).
		Custom(FieldLimit, errors.Is(pageErr, pagination.ErrInvalidLimit), "Must be a non-negative integer").
		Custom(FieldPage, errors.Is(pageErr, pagination.ErrInvalidPage), "Must be a positive integer")

	if err := validator.Err(); err != nil {
		return Filter{}, err
	}

	return Filter{
		Topic:      query.Topic,
		SortBy:     sortBy,
		Descending: order == OrderDesc,
		Page:       params,
	}, nil
}

// GetArticle returns a single article with its comment count.
func (service *Service) GetArticle(context context.Context, id int) (*Detail, error) {
	return service.repo.GetArticle(context, id)
}

/*
CreateArticle validates the input, confirms that the topic and author exist,
and persists the article.

Returns:
  - *Detail: the stored article with a comment count of zero
  - error: BadRequest for missing fields, NotFound for an unknown topic or author
*/
func (service *Service) CreateArticle(context context.Context, input NewArticle) (*Detail, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, input.Title).
		Required(FieldTopic, input.Topic).
		Required(FieldAuthor, input.Author).
		Required(FieldBody, input.Body)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	group, groupCtx := errgroup.WithContext(context)
	group.Go(func() error {
		return service.checker.Exists(groupCtx, schema.TopicSlug, input.Topic)
	})
	group.Go(func() error {
		return service.checker.Exists(groupCtx, schema.UserUsername, input.Author)
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	created, err := service.repo.CreateArticle(context, input)
	if err != nil {
		return nil, err
	}

	ctxutil.LoggerOr(context, service.logger).InfoContext(context, "article_created",
		slog.Int("article_id", created.ID),
		slog.String("topic", created.Topic),
		slog.String("author", created.Author),
	)
	return created, nil
}

// IncrementVotes adds delta to the article's votes. A nil delta is rejected.
func (service *Service) IncrementVotes(context context.Context, id int, delta *int) (*Article, error) {
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

func (service *Service) DeleteArticle(context context.Context, id int) error {
	if err := service.repo.DeleteArticle(context, id); err != nil {
		return err
	}

	ctxutil.LoggerOr(context, service.logger).InfoContext(context, "article_deleted", slog.Int("article_id", id))
	return nil
}
