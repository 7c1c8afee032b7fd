// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

/*
Package tag provides the back-office HTTP interface for the tag catalogue.

# Routing Strategy

Every endpoint here is management surface: the router group is mounted
under /admin/tags and gated by the Admin role at the server level.

The handler translates between the web/JSON layer and the domain [Service].
*/
package tag

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell-app/inkwell/internal/platform/constants"
	requestutil "github.com/inkwell-app/inkwell/internal/platform/request"
	"github.com/inkwell-app/inkwell/internal/platform/respond"
	"github.com/inkwell-app/inkwell/pkg/pagination"
)

// Handler implements the HTTP layer for tag management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new tag [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the tag management endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/new", handler.newForm)
	router.Post("/", handler.createTag)
	router.Get("/", handler.listTags)
	router.Get("/{id}", handler.getTag)
	router.Post("/{id}", handler.updateTag)
	router.Delete("/{id}", handler.deleteTag)

	return router
}

/*
GET /api/v1/admin/tags/new.

Description: Returns the empty form model for the add-tag page.

Response:
  - 200: Input: blank form fields
*/
func (handler *Handler) newForm(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, Input{})
}

/*
POST /api/v1/admin/tags.

Description: Creates a new tag from the submitted form fields.

Request:
  - name: string
  - display_name: string (must differ from name)

Response:
  - 201: Tag: the persisted tag
  - 400: display_name field error when it matches name
*/
func (handler *Handler) createTag(writer http.ResponseWriter, request *http.Request) {
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
GET /api/v1/admin/tags.

Description: Paginated tag listing with substring search and column sorting.
The page number in the response metadata may differ from the requested one
by a single self-correcting step.

Request:
  - searchQuery: string (substring over name OR display name)
  - sortBy: string ("Name" or "DisplayName", case-insensitive)
  - sortDirection: string (descending only when it equals "Desc")
  - pageNumber: int (raw, uncorrected)
  - pageSize: int

Response:
  - 200: []Tag with pagination metadata
*/
func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	queryValues := request.URL.Query()
	filter := Filter{
		Search:        queryValues.Get("searchQuery"),
		SortBy:        queryValues.Get("sortBy"),
		SortDirection: queryValues.Get("sortDirection"),
	}
	params := pagination.FromAdminRequest(request, constants.AdminTagPageSize)

	tags, meta, err := handler.service.AdminList(request.Context(), filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, tags, meta)
}

/*
GET /api/v1/admin/tags/{id}.

Description: Retrieves a single tag for the edit form.

Response:
  - 200: Tag
  - 404: unknown id
*/
func (handler *Handler) getTag(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	found, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

/*
POST /api/v1/admin/tags/{id}.

Description: Fully replaces the tag's name and display name.

Response:
  - 200: Tag: the updated tag
  - 400: validation errors
  - 404: unknown id
*/
func (handler *Handler) updateTag(writer http.ResponseWriter, request *http.Request) {
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
DELETE /api/v1/admin/tags/{id}.

Description: Removes a tag. Post associations are dropped by cascade; the
posts themselves are untouched.

Response:
  - 200: Tag: the removed tag
  - 404: unknown id
*/
func (handler *Handler) deleteTag(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	deleted, err := handler.service.Delete(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, deleted)
}
