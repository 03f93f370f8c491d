// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
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

/*
TestCreateGenre_Duplicate redirects to the existing genre instead of storing a second one.
*/
func TestCreateGenre_Duplicate(t *testing.T) {
	router, repo := newTestRouter(t)

	first := post(router, "/catalog/genre/create", url.Values{FieldName: {"Fantasy"}})
	require.Equal(t, http.StatusSeeOther, first.Code)

	second := post(router, "/catalog/genre/create", url.Values{FieldName: {"  Fantasy "}})
	require.Equal(t, http.StatusSeeOther, second.Code)

	assert.Equal(t, first.Header().Get("Location"), second.Header().Get("Location"))
	assert.Len(t, repo.genres, 1)
}

/*
TestCreateGenre_Concurrent submits the same name from many goroutines and ends
with exactly one genre.
*/
func TestCreateGenre_Concurrent(t *testing.T) {
	repo := newMemoryRepository()
	service := NewService(repo, slog.New(slog.DiscardHandler))

	const workers = 16
	ids := make([]string, workers)
	created := make([]bool, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g := &Genre{Name: "Science Fiction"}
			ok, err := service.CreateGenre(context.Background(), g)
			assert.NoError(t, err)
			ids[i], created[i] = g.ID, ok
		}()
	}
	wg.Wait()

	assert.Len(t, repo.genres, 1)
	creators := 0
	for i := range workers {
		assert.Equal(t, ids[0], ids[i])
		if created[i] {
			creators++
		}
	}
	assert.Equal(t, 1, creators)
}

/*
TestCreateGenre_Rejected re-renders the form for names that are missing or too long.
*/
func TestCreateGenre_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		message string
	}{
		{"missing", "  ", "Genre name required"},
		{"too_long", strings.Repeat("x", 101), "Genre name must be at most 100 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newTestRouter(t)

			rec := post(router, "/catalog/genre/create", url.Values{FieldName: {tt.value}})

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
			assert.Empty(t, repo.genres)
		})
	}
}

/*
TestCreateGenre_ShortNames accepts one and two letter genre names.
*/
func TestCreateGenre_ShortNames(t *testing.T) {
	for _, name := range []string{"SF", "YA", "X"} {
		t.Run(name, func(t *testing.T) {
			router, repo := newTestRouter(t)

			rec := post(router, "/catalog/genre/create", url.Values{FieldName: {name}})

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			stored, ok := repo.byName(name)
			require.True(t, ok)
			assert.Equal(t, stored.URL(), rec.Header().Get("Location"))
		})
	}
}

/*
TestCreateGenre_Escaped stores markup as entities and shows it as text.
*/
func TestCreateGenre_Escaped(t *testing.T) {
	router, repo := newTestRouter(t)

	rec := post(router, "/catalog/genre/create", url.Values{FieldName: {"<b>Horror</b>"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	for _, g := range repo.genres {
		assert.Equal(t, "&lt;b&gt;Horror&lt;&#x2F;b&gt;", g.Name)
	}

	body := get(router, rec.Header().Get("Location")).Body.String()
	assert.Contains(t, body, "&lt;b&gt;Horror")
	assert.NotContains(t, body, "<b>Horror")
	assert.NotContains(t, body, "&amp;lt;")
}

/*
TestUpdateGenre_DuplicateName is a field error, not a silent merge.
*/
func TestUpdateGenre_DuplicateName(t *testing.T) {
	router, repo := newTestRouter(t)
	post(router, "/catalog/genre/create", url.Values{FieldName: {"Poetry"}})
	drama := post(router, "/catalog/genre/create", url.Values{FieldName: {"Drama"}}).Header().Get("Location")

	rec := post(router, drama+"/update", url.Values{FieldName: {"Poetry"}})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Genre already exists")
	assert.Equal(t, "Drama", repo.genres[strings.TrimPrefix(drama, "/catalog/genre/")].Name)

	ok := post(router, drama+"/update", url.Values{FieldName: {"Tragedy"}})
	assert.Equal(t, http.StatusSeeOther, ok.Code)
	assert.Equal(t, drama, ok.Header().Get("Location"))
}

/*
TestDeleteGenre refuses while books are filed under the genre.
*/
func TestDeleteGenre(t *testing.T) {
	router, repo := newTestRouter(t)
	location := post(router, "/catalog/genre/create", url.Values{FieldName: {"Satire"}}).Header().Get("Location")
	id := strings.TrimPrefix(location, "/catalog/genre/")

	repo.fileBook(id, &BookSummary{ID: "0190a6e4-8c3b-7b1e-9f00-000000000002", Title: "Candide"})
	blocked := post(router, location+"/delete", url.Values{})
	assert.Equal(t, http.StatusConflict, blocked.Code)
	assert.Contains(t, blocked.Body.String(), "Candide")
	assert.Len(t, repo.genres, 1)

	repo.books = map[string][]*BookSummary{}
	rec := post(router, location+"/delete", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/catalog/genres", rec.Header().Get("Location"))
	assert.Empty(t, repo.genres)
}

func TestGenreDetail_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)
	assert.Equal(t, http.StatusNotFound, get(router, "/catalog/genre/0190a6e4-8c3b-7b1e-9f00-2d4c5e6f7a8b").Code)
	assert.Equal(t, http.StatusNotFound, get(router, "/catalog/genre/42").Code)
}
