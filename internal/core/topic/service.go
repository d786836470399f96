package topic

import (
	"context"
	"log/slog"

	"github.com/taibuivan/boardapi/internal/platform/ctxutil"
	"github.com/taibuivan/boardapi/internal/platform/validate"
)

type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

// NewService constructs the topic service. cache may be nil.
func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (service *Service) ListTopics(context context.Context) ([]*Topic, error) {
	if service.cache != nil {
		if topics, ok := service.cache.Get(context); ok {
			return topics, nil
		}
	}

	topics, err := service.repo.ListTopics(context)
	if err != nil {
		return nil, err
	}

	if service.cache != nil {
		service.cache.Set(context, topics)
	}
	return topics, nil
}

func (service *Service) CreateTopic(context context.Context, topic *Topic) (*Topic, error) {
	validator := &validate.Validator{}
	validator.Required(FieldSlug, topic.Slug)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.CreateTopic(context, topic); err != nil {
		return nil, err
	}

	if service.cache != nil {
		service.cache.Invalidate(context)
	}

	ctxutil.LoggerOr(context, service.logger).InfoContext(context, "topic_created", slog.String("slug", topic.Slug))
	return topic, nil
}
