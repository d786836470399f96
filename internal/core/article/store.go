package article

import (
	"context"

	"github.com/taibuivan/boardapi/internal/platform/database/schema"
)

type Repository interface {
	ListArticles(context context.Context, filter Filter) ([]*Summary, error)
	CountArticles(context context.Context, filter Filter) (int, error)
	GetArticle(context context.Context, id int) (*Detail, error)
	CreateArticle(context context.Context, input NewArticle) (*Detail, error)
	IncrementVotes(context context.Context, id, delta int) (*Article, error)
	DeleteArticle(context context.Context, id int) error
}

// ReferenceChecker verifies that a referenced row exists.
// It is satisfied by [postgres.Checker].
type ReferenceChecker interface {
	Exists(context context.Context, ref schema.Ref, value any) error
}
