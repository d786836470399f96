package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/boardapi/internal/platform/constants"
	requestutil "github.com/taibuivan/boardapi/internal/platform/request"
	"github.com/taibuivan/boardapi/internal/platform/respond"
	"github.com/taibuivan/boardapi/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ArticleRoutes serves the comments of one article. It must be mounted under
// a pattern that captures {article_id}.
func (handler *Handler) ArticleRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listComments)
	router.Post("/", handler.createComment)
	return router
}

// Routes serves mutations addressed by comment id.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Patch("/{comment_id}", handler.voteComment)
	router.Delete("/{comment_id}", handler.deleteComment)
	return router
}

func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	comments, err := handler.service.ListComments(request.Context(),
		requestutil.Param(request, FieldArticleID),
		requestutil.Query(request, FieldLimit),
		requestutil.Query(request, FieldPage),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, constants.KeyComments, comments)
}

func (handler *Handler) createComment(writer http.ResponseWriter, request *http.Request) {
	var input NewComment
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.CreateComment(request.Context(), requestutil.Param(request, FieldArticleID), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, constants.KeyPostedComment, []*Comment{comment})
}

func (handler *Handler) voteComment(writer http.ResponseWriter, request *http.Request) {
	id, err := validate.ParseID(FieldID, requestutil.Param(request, FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input VoteInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.IncrementVotes(request.Context(), id, input.IncVotes)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, constants.KeyUpdatedComment, []*Comment{comment})
}

func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	id, err := validate.ParseID(FieldID, requestutil.Param(request, FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteComment(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
