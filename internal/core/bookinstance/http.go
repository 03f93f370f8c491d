// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookinstance

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/locallibrary/internal/core/book"
	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/constants"
	requestutil "github.com/taibuivan/locallibrary/internal/platform/request"
	"github.com/taibuivan/locallibrary/internal/platform/respond"
	"github.com/taibuivan/locallibrary/internal/platform/validate"
	"github.com/taibuivan/locallibrary/internal/platform/view"
)

const listURL = constants.CatalogPrefix + "/bookinstances"

// Handler serves the book copy pages.
type Handler struct {
	service *Service
	guard   func(http.Handler) http.Handler
}

// NewHandler wires the copy pages. guard protects every page that changes data.
func NewHandler(service *Service, guard func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, guard: guard}
}

// Form is the payload of the create and update pages.
type Form struct {
	Instance *BookInstance
	Books    []*book.Book
	Statuses []string
}

// RegisterRoutes mounts the copy pages on the catalog router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/bookinstances", handler.listInstances)

	router.Group(func(staff chi.Router) {
		staff.Use(handler.guard)

		staff.Get("/bookinstance/create", handler.createForm)
		staff.With(validate.Form(formChains()...)).Post("/bookinstance/create", handler.createInstance)
		staff.Get("/bookinstance/{id}/delete", handler.deleteForm)
		staff.Post("/bookinstance/{id}/delete", handler.deleteInstance)
		staff.Get("/bookinstance/{id}/update", handler.updateForm)
		staff.With(validate.Form(formChains()...)).Post("/bookinstance/{id}/update", handler.updateInstance)
	})

	router.Get("/bookinstance/{id}", handler.getInstance)
}

func (handler *Handler) listInstances(writer http.ResponseWriter, request *http.Request) {
	instances, err := handler.service.ListInstances(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Page(writer, request, "bookinstance_list", view.Page{Title: "Book Instance List", Data: instances})
}

func (handler *Handler) getInstance(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Book copy")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	instance, err := handler.service.GetInstance(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Page(writer, request, "bookinstance_detail", view.Page{Title: "Copy: " + instance.BookTitle, Data: instance})
}

// # Create

func (handler *Handler) createForm(writer http.ResponseWriter, request *http.Request) {
	handler.renderForm(writer, request, http.StatusOK, "Create BookInstance", handler.service.NewInstance(), nil)
}

func (handler *Handler) createInstance(writer http.ResponseWriter, request *http.Request) {
	submission := validate.FromRequest(request)
	instance := fromSubmission(submission)

	if submission.HasErrors() {
		handler.renderForm(writer, request, http.StatusUnprocessableEntity, "Create BookInstance", instance, submission.Errors())
		return
	}

	if err := handler.service.CreateInstance(request.Context(), instance); err != nil {
		handler.formError(writer, request, "Create BookInstance", instance, err)
		return
	}

	respond.Redirect(writer, request, instance.URL())
}

// # Update

func (handler *Handler) updateForm(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Book copy")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	instance, books, err := handler.service.GetInstanceForUpdate(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Page(writer, request, "bookinstance_form", view.Page{
		Title: "Update BookInstance",
		Data:  Form{Instance: instance, Books: books, Statuses: Statuses},
	})
}

func (handler *Handler) updateInstance(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Book copy")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	submission := validate.FromRequest(request)
	instance := fromSubmission(submission)
	instance.ID = id

	if submission.HasErrors() {
		handler.renderForm(writer, request, http.StatusUnprocessableEntity, "Update BookInstance", instance, submission.Errors())
		return
	}

	if err := handler.service.UpdateInstance(request.Context(), instance); err != nil {
		handler.formError(writer, request, "Update BookInstance", instance, err)
		return
	}

	respond.Redirect(writer, request, instance.URL())
}

// # Delete

func (handler *Handler) deleteForm(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Book copy")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	instance, err := handler.service.GetInstance(request.Context(), id)
	if errors.Is(err, ErrInstanceNotFound) {
		respond.Redirect(writer, request, listURL)
		return
	}
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Page(writer, request, "bookinstance_delete", view.Page{Title: "Delete BookInstance", Data: instance})
}

func (handler *Handler) deleteInstance(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", "Book copy")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.service.DeleteInstance(request.Context(), id)
	if err != nil && !errors.Is(err, ErrInstanceNotFound) {
		respond.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, listURL)
}

// # Form Helpers

// renderForm shows the copy form with the book choices reloaded.
func (handler *Handler) renderForm(writer http.ResponseWriter, request *http.Request, status int, title string, instance *BookInstance, errs []apperr.FieldError) {
	books, err := handler.service.ListBooks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.HTML(writer, request, status, "bookinstance_form", view.Page{
		Title:  title,
		Data:   Form{Instance: instance, Books: books, Statuses: Statuses},
		Errors: errs,
	})
}

func (handler *Handler) formError(writer http.ResponseWriter, request *http.Request, title string, instance *BookInstance, err error) {
	if details := validate.FieldErrors(err); details != nil {
		handler.renderForm(writer, request, http.StatusUnprocessableEntity, title, instance, details)
		return
	}
	respond.Error(writer, request, err)
}
