// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

/*
Package engagement provides the public blog detail surface.

# Routing Strategy

  - GET  /blogs            — public detail page, anonymous friendly.
  - POST /blogs/comments   — signed-in readers only; anonymous is Forbidden.
  - POST /blogs/likes      — signed-in readers only.
*/
package engagement

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell-app/inkwell/internal/platform/apperr"
	requestutil "github.com/inkwell-app/inkwell/internal/platform/request"
	"github.com/inkwell-app/inkwell/internal/platform/respond"
)

// Handler implements the HTTP layer for the public blog detail surface.
type Handler struct {
	service *Service
}

// NewHandler constructs a new engagement [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the public blog endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.detail)
	router.Post("/comments", handler.addComment)
	router.Post("/likes", handler.addLike)

	return router
}

/*
GET /api/v1/blogs?urlHandle=...

Description: The public detail page: post fields and tags, the total like
count, whether the signed-in viewer liked it, and the comment list with
usernames.

Response:
  - 200: DetailView
  - 404: unknown url handle
*/
func (handler *Handler) detail(writer http.ResponseWriter, request *http.Request) {
	urlHandle := request.URL.Query().Get("urlHandle")

	viewerID := ""
	if claims := requestutil.Claims(request); claims != nil {
		viewerID = claims.UserID
	}

	view, err := handler.service.Detail(request.Context(), urlHandle, viewerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

// commentResponse points the client back at the post's detail page after
// a comment lands, mirroring the post-submit redirect of the web flow.
type commentResponse struct {
	Comment     *Comment `json:"comment"`
	RedirectURL string   `json:"redirect_url"`
}

/*
POST /api/v1/blogs/comments.

Description: Adds a comment as the signed-in caller. Anonymous callers are
rejected with an authorization failure, not a validation error.

Request:
  - post_id: string (UUID)
  - description: string
  - url_handle: string (used for the redirect back to the detail page)

Response:
  - 201: comment + redirect_url back to the detail page
  - 403: anonymous caller
*/
func (handler *Handler) addComment(writer http.ResponseWriter, request *http.Request) {
	claims := requestutil.Claims(request)
	if claims == nil {
		respond.Error(writer, request, apperr.Forbidden("Sign in to comment"))
		return
	}

	var input CommentInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.AddComment(request.Context(), claims.UserID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusCreated, respond.SuccessEnvelope{Data: commentResponse{
		Comment:     comment,
		RedirectURL: "/blogs?urlHandle=" + input.URLHandle,
	}})
}

// likeResponse carries the fresh total after a like.
type likeResponse struct {
	TotalLikes int `json:"total_likes"`
}

/*
POST /api/v1/blogs/likes.

Description: Likes a post as the signed-in caller. Liking a post twice is
a no-op and the total stays put.

Response:
  - 200: total_likes after the operation
  - 403: anonymous caller
  - 404: unknown post
*/
func (handler *Handler) addLike(writer http.ResponseWriter, request *http.Request) {
	claims := requestutil.Claims(request)
	if claims == nil {
		respond.Error(writer, request, apperr.Forbidden("Sign in to like posts"))
		return
	}

	var input LikeInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	total, err := handler.service.AddLike(request.Context(), claims.UserID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, likeResponse{TotalLikes: total})
}
