// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/ctxkey"
	"github.com/taibuivan/locallibrary/internal/platform/ctxutil"
	"github.com/taibuivan/locallibrary/internal/platform/respond"
	"github.com/taibuivan/locallibrary/internal/platform/sec"
	"github.com/taibuivan/locallibrary/internal/platform/view"
)

func withRenderer(t *testing.T, debug bool) *http.Request {
	t.Helper()

	renderer, err := view.New(view.Options{Debug: debug})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/catalog/author/x", nil)
	return req.WithContext(context.WithValue(req.Context(), ctxkey.KeyView, renderer))
}

func TestError_AppError(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Error(rec, withRenderer(t, false), apperr.NotFound("Author"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Author not found")
}

/*
TestError_HidesCause shows the cause of a 500 only in debug mode.
*/
func TestError_HidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.5:5432: connection refused")

	rec := httptest.NewRecorder()
	respond.Error(rec, withRenderer(t, false), cause)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "An unexpected error occurred")
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")

	debug := httptest.NewRecorder()
	respond.Error(debug, withRenderer(t, true), cause)
	assert.Contains(t, debug.Body.String(), "10.0.0.5")
}

/*
TestHTML_StaffLinks shows the logout form only to visitors with a staff session.
*/
func TestHTML_StaffLinks(t *testing.T) {
	renderer, err := view.New(view.Options{StaffAuth: true})
	require.NoError(t, err)

	anonymous := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	anonymous = anonymous.WithContext(context.WithValue(anonymous.Context(), ctxkey.KeyView, renderer))

	rec := httptest.NewRecorder()
	respond.Page(rec, anonymous, "error", view.Page{Title: "Home", Data: respond.ErrorPage{Status: http.StatusOK}})
	assert.Contains(t, rec.Body.String(), "Staff login")
	assert.NotContains(t, rec.Body.String(), "Log out")

	staff := anonymous.WithContext(ctxutil.WithSession(anonymous.Context(), &sec.SessionClaims{Staff: true}))

	rec = httptest.NewRecorder()
	respond.Page(rec, staff, "error", view.Page{Title: "Home", Data: respond.ErrorPage{Status: http.StatusOK}})
	assert.Contains(t, rec.Body.String(), "Log out")
	assert.Contains(t, rec.Body.String(), "Create new author")
}

func TestHTML_WithoutRenderer(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), apperr.TooManyRequests())

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRedirect(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Redirect(rec, httptest.NewRequest(http.MethodPost, "/catalog/genre/create", nil), "/catalog/genres")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/catalog/genres", rec.Header().Get("Location"))
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.NotFound(rec, withRenderer(t, false))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.OK(rec, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"status":"ok"}}`, rec.Body.String())
}
