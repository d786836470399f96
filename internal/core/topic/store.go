package topic

import "context"

type Repository interface {
	ListTopics(context context.Context) ([]*Topic, error)
	CreateTopic(context context.Context, t *Topic) error
}

// Cache holds the full topic list. Implementations must treat every failure
// as a miss; the repository stays the source of truth.
type Cache interface {
	Get(context context.Context) ([]*Topic, bool)
	Set(context context.Context, topics []*Topic)
	Invalidate(context context.Context)
}
