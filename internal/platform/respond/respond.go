// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses. Pages are
// rendered through the [view.Renderer] that middleware places in the request
// context, and every error, whatever its origin, ends on the same error page
// with the status its [apperr.AppError] carries.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/ctxkey"
	"github.com/taibuivan/locallibrary/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/locallibrary/internal/platform/request"
	"github.com/taibuivan/locallibrary/internal/platform/view"
)

// ErrorPage is the payload of the "error" template.
type ErrorPage struct {
	Status  int
	Message string
	// Cause is only filled when the renderer runs in debug mode.
	Cause string
}

// SuccessEnvelope is the JSON envelope used by the health probes.
type SuccessEnvelope struct {
	Data interface{} `json:"data"`
}

// # Pages

// HTML renders the named page with the given status code.
func HTML(writer http.ResponseWriter, request *http.Request, statusCode int, name string, page view.Page) {
	renderer := rendererFromContext(request)
	if renderer == nil {
		// Plain-text fallback for handlers mounted without the Views middleware.
		http.Error(writer, http.StatusText(statusCode), statusCode)
		return
	}

	page.Staff = requestutil.Session(request) != nil

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(statusCode)

	if err := renderer.Render(writer, name, page); err != nil {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "page_render_failed",
			slog.String("page", name),
			slog.String("error", err.Error()),
		)
	}
}

// Page renders the named page with 200 OK.
func Page(writer http.ResponseWriter, request *http.Request, name string, page view.Page) {
	HTML(writer, request, http.StatusOK, name, page)
}

// Form re-renders a form page with its field errors.
//
// The page is sent with 422 so that clients and logs can tell a rejected
// submission from a plain form view.
func Form(writer http.ResponseWriter, request *http.Request, name string, page view.Page) {
	HTML(writer, request, http.StatusUnprocessableEntity, name, page)
}

// Redirect sends a 303 See Other so that a POST is never resubmitted.
func Redirect(writer http.ResponseWriter, request *http.Request, url string) {
	http.Redirect(writer, request, url, http.StatusSeeOther)
}

// # Errors

// Error converts any Go error into the rendered error page.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	logger := ctxutil.GetLogger(request.Context())

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the visitor.
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger.ErrorContext(request.Context(), "server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	payload := ErrorPage{Status: appError.HTTPStatus, Message: appError.Message}
	if renderer := rendererFromContext(request); renderer != nil && renderer.Debug() && appError.Cause != nil {
		payload.Cause = appError.Cause.Error()
	}

	HTML(writer, request, appError.HTTPStatus, "error", view.Page{
		Title: appError.Message,
		Data:  payload,
	})
}

// NotFound is the router's handler for unknown paths.
func NotFound(writer http.ResponseWriter, request *http.Request) {
	Error(writer, request, apperr.NotFound("Page"))
}

// # Probes

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data wrapped in the standard success envelope.
func OK(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Data: data})
}

// rendererFromContext extracts the renderer installed by middleware.
func rendererFromContext(request *http.Request) *view.Renderer {
	renderer, _ := request.Context().Value(ctxkey.KeyView).(*view.Renderer)
	return renderer
}
