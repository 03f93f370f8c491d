// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

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

// listURL is the author list page.
const listURL = constants.CatalogPrefix + "/authors"

// Handler serves the author pages.
type Handler struct {
	service *Service
	guard   func(http.Handler) http.Handler
}

// NewHandler wires the author pages. guard protects every page that changes data.
func NewHandler(service *Service, guard func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, guard: guard}
}

// Detail is the payload of the detail and delete pages.
type Detail struct {
	Author *Author
	Books  []*BookSummary
}

// RegisterRoutes mounts the author pages on the catalog router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/authors", handler.listAuthors)

	// Staff
	router.Group(func(staff chi.Router) {
		staff.Use(handler.guard)

		staff.Get("/author/create", handler.createForm)
		staff.With(validate.Form(formChains()...)).Post("/author/create", handler.createAuthor)
		staff.Get("/author/{id}/delete", handler.deleteForm)
		staff.Post("/author/{id}/delete", handler.deleteAuthor)
		staff.Get("/author/{id}/update", handler.updateForm)
		staff.With(validate.Form(formChains()...)).Post("/author/{id}/update", handler.updateAuthor)
	})

	router.Get("/author/{id}", handler.getAuthor)
}

func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	authors, err := handler.service.ListAuthors(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Page(writer, request, "author_list", view.Page{Title: "Author List", Data: authors})
}

func (handler *Handler) getAuthor(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Author")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	author, books, err := handler.service.GetAuthorWithBooks(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Page(writer, request, "author_detail", view.Page{
		Title: "Author Detail",
		Data:  Detail{Author: author, Books: books},
	})
}

// # Create

func (handler *Handler) createForm(writer http.ResponseWriter, request *http.Request) {
	respond.Page(writer, request, "author_form", view.Page{Title: "Create Author", Data: &Author{}})
}

func (handler *Handler) createAuthor(writer http.ResponseWriter, request *http.Request) {
	submission := validate.FromRequest(request)
	author := fromSubmission(submission)

	if submission.HasErrors() {
		respond.Form(writer, request, "author_form", view.Page{
			Title:  "Create Author",
			Data:   author,
			Errors: submission.Errors(),
		})
		return
	}

	if err := handler.service.CreateAuthor(request.Context(), author); err != nil {
		handler.formError(writer, request, "Create Author", author, err)
		return
	}

	respond.Redirect(writer, request, author.URL())
}

// # Update

func (handler *Handler) updateForm(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Author")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	author, err := handler.service.GetAuthor(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Page(writer, request, "author_form", view.Page{Title: "Update Author", Data: author})
}

func (handler *Handler) updateAuthor(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Author")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	submission := validate.FromRequest(request)
	author := fromSubmission(submission)
	author.ID = id

	if submission.HasErrors() {
		respond.Form(writer, request, "author_form", view.Page{
			Title:  "Update Author",
			Data:   author,
			Errors: submission.Errors(),
		})
		return
	}

	if err := handler.service.UpdateAuthor(request.Context(), author); err != nil {
		handler.formError(writer, request, "Update Author", author, err)
		return
	}

	respond.Redirect(writer, request, author.URL())
}

// # Delete

func (handler *Handler) deleteForm(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Author")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.renderDelete(writer, request, id, http.StatusOK)
}

func (handler *Handler) deleteAuthor(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Author")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.service.DeleteAuthor(request.Context(), id)
	switch {
	case err == nil, errors.Is(err, ErrAuthorNotFound):
		respond.Redirect(writer, request, listURL)
	case errors.Is(err, ErrAuthorHasBooks):
		handler.renderDelete(writer, request, id, http.StatusConflict)
	default:
		respond.Error(writer, request, err)
	}
}

// renderDelete shows the confirmation page, listing the books that block deletion.
// An author that no longer exists sends the visitor back to the list.
func (handler *Handler) renderDelete(writer http.ResponseWriter, request *http.Request, id string, status int) {
	author, books, err := handler.service.GetAuthorWithBooks(request.Context(), id)
	if errors.Is(err, ErrAuthorNotFound) {
		respond.Redirect(writer, request, listURL)
		return
	}
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.HTML(writer, request, status, "author_delete", view.Page{
		Title: "Delete Author",
		Data:  Detail{Author: author, Books: books},
	})
}

// formError re-renders the form for validation failures and forwards anything else.
func (handler *Handler) formError(writer http.ResponseWriter, request *http.Request, title string, author *Author, err error) {
	if details := validate.FieldErrors(err); details != nil {
		respond.Form(writer, request, "author_form", view.Page{Title: title, Data: author, Errors: details})
		return
	}
	respond.Error(writer, request, err)
}
