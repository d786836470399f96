package topic

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/boardapi/internal/platform/constants"
	requestutil "github.com/taibuivan/boardapi/internal/platform/request"
	"github.com/taibuivan/boardapi/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listTopics)
	router.Post("/", handler.createTopic)
	return router
}

func (handler *Handler) listTopics(writer http.ResponseWriter, request *http.Request) {
	topics, err := handler.service.ListTopics(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, constants.KeyTopics, topics)
}

func (handler *Handler) createTopic(writer http.ResponseWriter, request *http.Request) {
	var input Topic
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	topic, err := handler.service.CreateTopic(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, constants.KeyPostedTopic, []*Topic{topic})
}
