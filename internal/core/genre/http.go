// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/locallibrary/internal/platform/constants"
	requestutil "github.com/taibuivan/locallibrary/internal/platform/request"
	"github.com/taibuivan/locallibrary/internal/platform/respond"
	"github.com/taibuivan/locallibrary/internal/platform/validate"
	"github.com/taibuivan/locallibrary/internal/platform/view"
)

const listURL = constants.CatalogPrefix + "/genres"

// Handler serves the genre pages.
type Handler struct {
	service *Service
	guard   func(http.Handler) http.Handler
}

// NewHandler wires the genre pages. guard protects every page that changes data.
func NewHandler(service *Service, guard func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, guard: guard}
}

// Detail is the payload of the detail and delete pages.
type Detail struct {
	Genre *Genre
	Books []*BookSummary
}

// RegisterRoutes mounts the genre pages on the catalog router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/genres", handler.listGenres)

	router.Group(func(staff chi.Router) {
		staff.Use(handler.guard)

		staff.Get("/genre/create", handler.createForm)
		staff.With(validate.Form(formChains()...)).Post("/genre/create", handler.createGenre)
		staff.Get("/genre/{id}/delete", handler.deleteForm)
		staff.Post("/genre/{id}/delete", handler.deleteGenre)
		staff.Get("/genre/{id}/update", handler.updateForm)
		staff.With(validate.Form(formChains()...)).Post("/genre/{id}/update", handler.updateGenre)
	})

	router.Get("/genre/{id}", handler.getGenre)
}

func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	genres, err := handler.service.ListGenres(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Page(writer, request, "genre_list", view.Page{Title: "Genre List", Data: genres})
}

func (handler *Handler) getGenre(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Genre")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	genre, books, err := handler.service.GetGenreWithBooks(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Page(writer, request, "genre_detail", view.Page{
		Title: "Genre Detail",
		Data:  Detail{Genre: genre, Books: books},
	})
}

// # Create

func (handler *Handler) createForm(writer http.ResponseWriter, request *http.Request) {
	respond.Page(writer, request, "genre_form", view.Page{Title: "Create Genre", Data: &Genre{}})
}

// createGenre redirects to the stored genre whether it was just created or already existed.
func (handler *Handler) createGenre(writer http.ResponseWriter, request *http.Request) {
	submission := validate.FromRequest(request)
	genre := &Genre{Name: submission.Get(FieldName)}

	if submission.HasErrors() {
		respond.Form(writer, request, "genre_form", view.Page{
			Title:  "Create Genre",
			Data:   genre,
			Errors: submission.Errors(),
		})
		return
	}

	if _, err := handler.service.CreateGenre(request.Context(), genre); err != nil {
		handler.formError(writer, request, "Create Genre", genre, err)
		return
	}

	respond.Redirect(writer, request, genre.URL())
}

// # Update

func (handler *Handler) updateForm(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Genre")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	genre, err := handler.service.GetGenre(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Page(writer, request, "genre_form", view.Page{Title: "Update Genre", Data: genre})
}

func (handler *Handler) updateGenre(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Genre")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	submission := validate.FromRequest(request)
	genre := &Genre{ID: id, Name: submission.Get(FieldName)}

	if submission.HasErrors() {
		respond.Form(writer, request, "genre_form", view.Page{
			Title:  "Update Genre",
			Data:   genre,
			Errors: submission.Errors(),
		})
		return
	}

	if err := handler.service.UpdateGenre(request.Context(), genre); err != nil {
		handler.formError(writer, request, "Update Genre", genre, err)
		return
	}

	respond.Redirect(writer, request, genre.URL())
}

// # Delete

func (handler *Handler) deleteForm(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Genre")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.renderDelete(writer, request, id, http.StatusOK)
}

func (handler *Handler) deleteGenre(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Genre")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.service.DeleteGenre(request.Context(), id)
	switch {
	case err == nil, errors.Is(err, ErrGenreNotFound):
		respond.Redirect(writer, request, listURL)
	case errors.Is(err, ErrGenreHasBooks):
		handler.renderDelete(writer, request, id, http.StatusConflict)
	default:
		respond.Error(writer, request, err)
	}
}

func (handler *Handler) renderDelete(writer http.ResponseWriter, request *http.Request, id string, status int) {
	genre, books, err := handler.service.GetGenreWithBooks(request.Context(), id)
	if errors.Is(err, ErrGenreNotFound) {
		respond.Redirect(writer, request, listURL)
		return
	}
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.HTML(writer, request, status, "genre_delete", view.Page{
		Title: "Delete Genre",
		Data:  Detail{Genre: genre, Books: books},
	})
}

func (handler *Handler) formError(writer http.ResponseWriter, request *http.Request, title string, genre *Genre, err error) {
	if details := validate.FieldErrors(err); details != nil {
		respond.Form(writer, request, "genre_form", view.Page{Title: title, Data: genre, Errors: details})
		return
	}
	respond.Error(writer, request, err)
}
