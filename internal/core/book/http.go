// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/constants"
	requestutil "github.com/taibuivan/locallibrary/internal/platform/request"
	"github.com/taibuivan/locallibrary/internal/platform/respond"
	"github.com/taibuivan/locallibrary/internal/platform/validate"
	"github.com/taibuivan/locallibrary/internal/platform/view"
)

const listURL = constants.CatalogPrefix + "/books"

// Handler serves the book pages.
type Handler struct {
	service *Service
	guard   func(http.Handler) http.Handler
}

// NewHandler wires the book pages. guard protects every page that changes data.
func NewHandler(service *Service, guard func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, guard: guard}
}

// Detail is the payload of the detail and delete pages.
type Detail struct {
	Book   *Book
	Copies []*Copy
}

// Form is the payload of the create and update pages.
type Form struct {
	Book *Book
	Options
}

// RegisterRoutes mounts the book pages on the catalog router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/books", handler.listBooks)

	router.Group(func(staff chi.Router) {
		staff.Use(handler.guard)

		staff.Get("/book/create", handler.createForm)
		staff.With(validate.Form(formChains()...)).Post("/book/create", handler.createBook)
		staff.Get("/book/{id}/delete", handler.deleteForm)
		staff.Post("/book/{id}/delete", handler.deleteBook)
		staff.Get("/book/{id}/update", handler.updateForm)
		staff.With(validate.Form(formChains()...)).Post("/book/{id}/update", handler.updateBook)
	})

	router.Get("/book/{id}", handler.getBook)
}

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.ListBooks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Page(writer, request, "book_list", view.Page{Title: "Book List", Data: books})
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Book")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, copies, err := handler.service.GetBookWithCopies(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Page(writer, request, "book_detail", view.Page{
		Title: book.Title,
		Data:  Detail{Book: book, Copies: copies},
	})
}

// # Create

func (handler *Handler) createForm(writer http.ResponseWriter, request *http.Request) {
	options, err := handler.service.FormOptions(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Page(writer, request, "book_form", view.Page{
		Title: "Create Book",
		Data:  Form{Book: &Book{}, Options: options},
	})
}

func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	submission := validate.FromRequest(request)
	book := fromSubmission(submission)

	if submission.HasErrors() {
		handler.rejectForm(writer, request, "Create Book", book, submission.Errors())
		return
	}

	if err := handler.service.CreateBook(request.Context(), book); err != nil {
		handler.formError(writer, request, "Create Book", book, err)
		return
	}

	respond.Redirect(writer, request, book.URL())
}

// # Update

func (handler *Handler) updateForm(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Book")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, options, err := handler.service.GetBookForUpdate(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Page(writer, request, "book_form", view.Page{
		Title: "Update Book",
		Data:  Form{Book: book, Options: options},
	})
}

func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Book")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	submission := validate.FromRequest(request)
	book := fromSubmission(submission)
	book.ID = id

	if submission.HasErrors() {
		handler.rejectForm(writer, request, "Update Book", book, submission.Errors())
		return
	}

	if err := handler.service.UpdateBook(request.Context(), book); err != nil {
		handler.formError(writer, request, "Update Book", book, err)
		return
	}

	respond.Redirect(writer, request, book.URL())
}

// # Delete

func (handler *Handler) deleteForm(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Book")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.renderDelete(writer, request, id, http.StatusOK)
}

func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Book")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.service.DeleteBook(request.Context(), id)
	switch {
	case err == nil, errors.Is(err, ErrBookNotFound):
		respond.Redirect(writer, request, listURL)
	case errors.Is(err, ErrBookHasCopies):
		handler.renderDelete(writer, request, id, http.StatusConflict)
	default:
		respond.Error(writer, request, err)
	}
}

func (handler *Handler) renderDelete(writer http.ResponseWriter, request *http.Request, id string, status int) {
	book, copies, err := handler.service.GetBookWithCopies(request.Context(), id)
	if errors.Is(err, ErrBookNotFound) {
		respond.Redirect(writer, request, listURL)
		return
	}
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.HTML(writer, request, status, "book_delete", view.Page{
		Title: "Delete Book",
		Data:  Detail{Book: book, Copies: copies},
	})
}

// # Form Helpers

// rejectForm re-renders the form with the submitted values and their errors.
func (handler *Handler) rejectForm(writer http.ResponseWriter, request *http.Request, title string, book *Book, errs []apperr.FieldError) {
	options, err := handler.service.FormOptions(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Form(writer, request, "book_form", view.Page{
		Title:  title,
		Data:   Form{Book: book, Options: options},
		Errors: errs,
	})
}

func (handler *Handler) formError(writer http.ResponseWriter, request *http.Request, title string, book *Book, err error) {
	if details := validate.FieldErrors(err); details != nil {
		handler.rejectForm(writer, request, title, book, details)
		return
	}
	respond.Error(writer, request, err)
}
