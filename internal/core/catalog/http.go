// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/locallibrary/internal/platform/respond"
	"github.com/taibuivan/locallibrary/internal/platform/view"
)

// Handler serves the home page.
type Handler struct {
	service *Service
}

// NewHandler wires the home page.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the home page at the catalog root.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.index)
}

func (handler *Handler) index(writer http.ResponseWriter, request *http.Request) {
	counts, err := handler.service.Counts(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Page(writer, request, "index", view.Page{Title: "Local Library Home", Data: counts})
}
