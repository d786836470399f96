// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/boardapi/internal/platform/constants"
	requestutil "github.com/taibuivan/boardapi/internal/platform/request"
	"github.com/taibuivan/boardapi/internal/platform/respond"
	"github.com/taibuivan/boardapi/internal/platform/validate"
)

// # HTTP Handler

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

/*
RegisterRoutes attaches the article endpoints to an existing router.

Description: Registering on the caller's router lets the comment handler be
mounted under /{article_id}/comments on the same subtree.
*/
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listArticles)
	router.Post("/", handler.createArticle)

	router.Route("/{article_id}", func(r chi.Router) {
		r.Get("/", handler.getArticle)
		r.Patch("/", handler.voteArticle)
		r.Delete("/", handler.deleteArticle)
	})
}

func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	query := ListQuery{
		Topic:  requestutil.Query(request, FieldTopic),
		SortBy: requestutil.Query(request, FieldSortBy),
		Order:  requestutil.Query(request, FieldOrder),
		Limit:  requestutil.Query(request, FieldLimit),
		Page:   requestutil.Query(request, FieldPage),
	}

	page, err := handler.service.ListArticles(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, map[string]interface{}{
		constants.KeyArticles:   page.Articles,
		constants.KeyTotalCount: page.TotalCount,
	})
}

func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	id, err := validate.ParseID(FieldID, requestutil.Param(request, FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.GetArticle(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, constants.KeyArticle, []*Detail{article})
}

func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	var input NewArticle
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.CreateArticle(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, constants.KeyPostedArticle, []*Detail{article})
}

func (handler *Handler) voteArticle(writer http.ResponseWriter, request *http.Request) {
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

	article, err := handler.service.IncrementVotes(request.Context(), id, input.IncVotes)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, constants.KeyUpdatedArticle, []*Article{article})
}

func (handler *Handler) deleteArticle(writer http.ResponseWriter, request *http.Request) {
	id, err := validate.ParseID(FieldID, requestutil.Param(request, FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteArticle(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
