// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package staff

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/constants"
	"github.com/taibuivan/locallibrary/internal/platform/middleware"
	"github.com/taibuivan/locallibrary/internal/platform/respond"
	"github.com/taibuivan/locallibrary/internal/platform/validate"
	"github.com/taibuivan/locallibrary/internal/platform/view"
)

// Handler serves the login and logout pages.
type Handler struct {
	service *Service
	secure  bool
}

// NewHandler wires the staff pages. secure marks the session cookie HTTPS-only.
func NewHandler(service *Service, secure bool) *Handler {
	return &Handler{service: service, secure: secure}
}

// Login is the payload of the login page.
type Login struct {
	Next string
}

// RegisterRoutes mounts the staff pages on the catalog router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/login", handler.loginForm)
	router.With(validate.Form(formChains()...)).Post("/login", handler.login)
	router.Post("/logout", handler.logout)
}

func formChains() []*validate.Chain {
	return []*validate.Chain{
		validate.Body(FieldPassword).Rules(validation.Required.Error("Password must be specified")),
		validate.Body("next").Trim(),
	}
}

func (handler *Handler) loginForm(writer http.ResponseWriter, request *http.Request) {
	if !handler.service.Enabled() {
		respond.Redirect(writer, request, constants.CatalogPrefix)
		return
	}

	respond.Page(writer, request, "login", view.Page{
		Title: "Staff Login",
		Data:  Login{Next: safeNext(request.URL.Query().Get("next"))},
	})
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	submission := validate.FromRequest(request)
	next := safeNext(submission.Get("next"))

	if submission.HasErrors() {
		handler.rejectLogin(writer, request, http.StatusUnprocessableEntity, next, submission.Errors())
		return
	}

	token, expiresAt, err := handler.service.Login(request.Context(), submission.Get(FieldPassword))
	if errors.Is(err, ErrWrongPassword) {
		handler.rejectLogin(writer, request, http.StatusUnauthorized, next, []apperr.FieldError{
			{Field: FieldPassword, Message: ErrWrongPassword.Message},
		})
		return
	}
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	middleware.SetSessionCookie(writer, token, int(time.Until(expiresAt).Seconds()), handler.secure)
	respond.Redirect(writer, request, next)
}

func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	middleware.ClearSessionCookie(writer)
	respond.Redirect(writer, request, constants.CatalogPrefix)
}

func (handler *Handler) rejectLogin(writer http.ResponseWriter, request *http.Request, status int, next string, errs []apperr.FieldError) {
	respond.HTML(writer, request, status, "login", view.Page{
		Title:  "Staff Login",
		Data:   Login{Next: next},
		Errors: errs,
	})
}

// safeNext keeps redirects inside the catalog. Anything else lands on the home page.
func safeNext(next string) string {
	if next == constants.CatalogPrefix || strings.HasPrefix(next, constants.CatalogPrefix+"/") {
		if !strings.HasPrefix(next, "//") && !strings.Contains(next, "\\") {
			return next
		}
	}
	return constants.CatalogPrefix
}
