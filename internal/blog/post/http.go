// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

/*
Package post provides the back-office HTTP interface for blog posts.

# Routing Strategy

All endpoints are management surface, mounted under /admin/posts and gated
by the Admin role at the server level. The public detail page lives in the
engagement package, which composes posts with likes and comments.
*/
package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/inkwell-app/inkwell/internal/platform/request"
	"github.com/inkwell-app/inkwell/internal/platform/respond"
)

// Handler implements the HTTP layer for post management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new post [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the post management endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/new", handler.newForm)
	router.Post("/", handler.createPost)
	router.Get("/", handler.listPosts)
	router.Get("/{id}", handler.editForm)
	router.Post("/{id}", handler.updatePost)
	router.Delete("/{id}", handler.deletePost)

	return router
}

/*
GET /api/v1/admin/posts/new.

Description: Returns the add-form view model with every tag as a select option.

Response:
  - 200: FormView
*/
func (handler *Handler) newForm(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.NewForm(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

/*
POST /api/v1/admin/posts.

Description: Creates a new post. Selected tag ids that are malformed or do
not resolve to an existing tag are dropped silently.

Response:
  - 201: Post with hydrated tags
  - 400: validation errors
*/
func (handler *Handler) createPost(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
GET /api/v1/admin/posts.

Description: Lists every post with its tags. No filtering or pagination.

Response:
  - 200: []Post
*/
func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, posts)
}

/*
GET /api/v1/admin/posts/{id}.

Description: Returns the edit view model: the post, all tag options, and
the currently selected tag ids.

Response:
  - 200: EditView
  - 404: unknown id
*/
func (handler *Handler) editForm(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	view, err := handler.service.EditForm(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

/*
POST /api/v1/admin/posts/{id}.

Description: Full replace of every scalar field plus wholesale tag-set
replacement, with the same silent-drop tag mapping as create.

Response:
  - 200: Post
  - 400: validation errors
  - 404: unknown id
*/
func (handler *Handler) updatePost(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
DELETE /api/v1/admin/posts/{id}.

Response:
  - 204: removed
  - 404: unknown id
*/
func (handler *Handler) deletePost(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
