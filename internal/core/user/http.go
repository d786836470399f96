package user

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
	router.Get("/", handler.listUsers)
	router.Get("/{username}", handler.getUser)
	return router
}

func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.service.ListUsers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, constants.KeyUsers, users)
}

func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	u, err := handler.service.GetUser(request.Context(), requestutil.Param(request, "username"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, constants.KeyUser, []*User{u})
}
