// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

// Package home serves the public landing surface: the combined
// posts-and-tags index, the privacy policy, and the generic error payload.
package home

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell-app/inkwell/internal/platform/ctxutil"
	"github.com/inkwell-app/inkwell/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.index)
	router.Get("/privacy", handler.privacy)
	router.Get("/error", handler.errorPage)

	return router
}

// index handles GET /api/v1/home.
func (handler *Handler) index(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.Index(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

// privacy handles GET /api/v1/home/privacy.
func (handler *Handler) privacy(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, PrivacyView{
		Title:   "Privacy Policy",
		Content: "Use this page to detail your site's privacy policy.",
	})
}

// errorPage handles GET /api/v1/home/error. Responses carry no-store
// cache directives so stale error pages are never served.
func (handler *Handler) errorPage(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Cache-Control", "no-store, no-cache")

	requestID := ctxutil.GetRequestID(request.Context())
	respond.OK(writer, ErrorView{
		RequestID:     requestID,
		ShowRequestID: requestID != "",
	})
}
