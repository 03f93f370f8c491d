// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/locallibrary/internal/platform/middleware"
	"github.com/taibuivan/locallibrary/internal/platform/view"
)

func open(next http.Handler) http.Handler { return next }

func newTestRouter(t *testing.T) (http.Handler, *memoryRepository) {
	t.Helper()

	renderer, err := view.New(view.Options{})
	require.NoError(t, err)

	repo := newMemoryRepository()
	handler := NewHandler(NewService(repo, slog.New(slog.DiscardHandler)), open)

	router := chi.NewRouter()
	router.Use(middleware.Views(renderer))
	router.Route("/catalog", handler.RegisterRoutes)
	return router, repo
}

func get(router http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func post(router http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		FieldFirstName:   {" Jane "},
		FieldFamilyName:  {"Austen"},
		FieldDateOfBirth: {"1775-12-16"},
		FieldDateOfDeath: {"1817-07-18"},
	}
}

/*
TestCreateAuthor_ThenDetail stores a valid author and shows it with an empty book list.
*/
func TestCreateAuthor_ThenDetail(t *testing.T) {
	router, repo := newTestRouter(t)

	rec := post(router, "/catalog/author/create", validForm())
	require.Equal(t, http.StatusSeeOther, rec.Code)

	location := rec.Header().Get("Location")
	assert.True(t, strings.HasPrefix(location, "/catalog/author/"))
	require.Len(t, repo.authors, 1)

	for _, stored := range repo.authors {
		assert.Equal(t, "Jane", stored.FirstName)
		assert.Equal(t, "Austen, Jane", stored.Name())
		assert.Equal(t, location, stored.URL())
	}

	detail := get(router, location)
	require.Equal(t, http.StatusOK, detail.Code)
	assert.Contains(t, detail.Body.String(), "Austen, Jane")
	assert.Contains(t, detail.Body.String(), "This author has no books.")
}

/*
TestCreateAuthor_Rejected re-renders the form with field errors and stores nothing.
*/
func TestCreateAuthor_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(url.Values)
		message string
	}{
		{"non_alphanumeric_first_name", func(f url.Values) { f.Set(FieldFirstName, "J@ne") }, "First name has non-alphanumeric characters."},
		{"missing_first_name", func(f url.Values) { f.Set(FieldFirstName, "   ") }, "First name must be specified."},
		{"missing_family_name", func(f url.Values) { f.Del(FieldFamilyName) }, "Family name must be specified."},
		{"bad_birth_date", func(f url.Values) { f.Set(FieldDateOfBirth, "16/12/1775") }, "Invalid date of birth"},
		{"death_before_birth", func(f url.Values) { f.Set(FieldDateOfDeath, "1700-01-01") }, "Date of death must not be before date of birth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newTestRouter(t)
			form := validForm()
			tt.mutate(form)

			rec := post(router, "/catalog/author/create", form)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
			assert.Empty(t, repo.authors)
		})
	}
}

/*
TestAuthorDetail_NotFound answers 404 for unknown and malformed ids.
*/
func TestAuthorDetail_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	assert.Equal(t, http.StatusNotFound, get(router, "/catalog/author/0190a6e4-8c3b-7b1e-9f00-2d4c5e6f7a8b").Code)
	assert.Equal(t, http.StatusNotFound, get(router, "/catalog/author/not-an-id").Code)
	assert.Equal(t, http.StatusNotFound, get(router, "/catalog/author/0190a6e4-8c3b-7b1e-9f00-2d4c5e6f7a8b/update").Code)
}

/*
TestDeleteAuthor removes an author without books and redirects to the list.
*/
func TestDeleteAuthor(t *testing.T) {
	router, repo := newTestRouter(t)
	location := post(router, "/catalog/author/create", validForm()).Header().Get("Location")

	confirm := get(router, location+"/delete")
	require.Equal(t, http.StatusOK, confirm.Code)
	assert.Contains(t, confirm.Body.String(), "Do you really want to delete this author?")

	rec := post(router, location+"/delete", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/catalog/authors", rec.Header().Get("Location"))
	assert.Empty(t, repo.authors)
}

/*
TestDeleteAuthor_WithBooks re-renders the confirmation and keeps the author.
*/
func TestDeleteAuthor_WithBooks(t *testing.T) {
	router, repo := newTestRouter(t)
	location := post(router, "/catalog/author/create", validForm()).Header().Get("Location")
	id := strings.TrimPrefix(location, "/catalog/author/")
	repo.addBook(id, &BookSummary{ID: "0190a6e4-8c3b-7b1e-9f00-000000000001", Title: "Emma", Summary: "A matchmaker."})

	rec := post(router, location+"/delete", url.Values{})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Emma")
	assert.Contains(t, rec.Body.String(), "Delete the following books before attempting to delete this author.")
	assert.Len(t, repo.authors, 1)
}

/*
TestDeleteAuthor_Missing sends the visitor back to the list.
*/
func TestDeleteAuthor_Missing(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := get(router, "/catalog/author/0190a6e4-8c3b-7b1e-9f00-2d4c5e6f7a8b/delete")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/catalog/authors", rec.Header().Get("Location"))
}

/*
TestUpdateAuthor replaces the family name and the derived display name follows.
*/
func TestUpdateAuthor(t *testing.T) {
	router, repo := newTestRouter(t)
	location := post(router, "/catalog/author/create", validForm()).Header().Get("Location")
	id := strings.TrimPrefix(location, "/catalog/author/")

	formPage := get(router, location+"/update")
	require.Equal(t, http.StatusOK, formPage.Code)
	assert.Contains(t, formPage.Body.String(), `value="1775-12-16"`)

	form := validForm()
	form.Set(FieldFamilyName, "Bennet")
	rec := post(router, location+"/update", form)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, location, rec.Header().Get("Location"))
	assert.Equal(t, "Bennet", repo.authors[id].FamilyName)

	stored := repo.authors[id]
	assert.Equal(t, "Bennet, Jane", stored.Name())
	assert.Contains(t, get(router, location).Body.String(), "Bennet, Jane")
}

/*
TestListAuthors orders by family name.
*/
func TestListAuthors(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, family := range []string{"Woolf", "Austen", "Eliot"} {
		form := validForm()
		form.Set(FieldFamilyName, family)
		require.Equal(t, http.StatusSeeOther, post(router, "/catalog/author/create", form).Code)
	}

	body := get(router, "/catalog/authors").Body.String()
	austen, eliot, woolf := strings.Index(body, "Austen"), strings.Index(body, "Eliot"), strings.Index(body, "Woolf")

	assert.True(t, austen >= 0 && austen < eliot && eliot < woolf)
}
