package comment

import (
	"context"

	"github.com/taibuivan/boardapi/internal/platform/database/schema"
	"github.com/taibuivan/boardapi/pkg/pagination"
)

type Repository interface {
	ListComments(context context.Context, articleID int, page pagination.Params) ([]*Comment, error)
	CreateComment(context context.Context, articleID int, input NewComment) (*Comment, error)
	IncrementVotes(context context.Context, id, delta int) (*Comment, error)
	DeleteComment(context context.Context, id int) error
}

// ReferenceChecker verifies that a referenced row exists.
type ReferenceChecker interface {
	Exists(context context.Context, ref schema.Ref, value any) error
}
