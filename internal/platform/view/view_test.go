// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
)

type errorData struct {
	Status  int
	Message string
	Cause   string
}

func TestNew_ParsesEveryPage(t *testing.T) {
	renderer, err := New(Options{})
	require.NoError(t, err)

	for _, name := range []string{
		"error", "index", "login",
		"author_list", "author_detail", "author_form", "author_delete",
		"genre_list", "genre_detail", "genre_form", "genre_delete",
		"book_list", "book_detail", "book_form", "book_delete",
		"bookinstance_list", "bookinstance_detail", "bookinstance_form", "bookinstance_delete",
	} {
		assert.Contains(t, renderer.pages, name)
	}
	assert.NotContains(t, renderer.pages, "layout")
}

func TestRender_UnknownPage(t *testing.T) {
	renderer, err := New(Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, renderer.Render(&buf, "missing", Page{}))
	assert.Zero(t, buf.Len())
}

/*
TestRender_StoredTextIsNotEscapedTwice prints entity-escaped titles as text.
*/
func TestRender_StoredTextIsNotEscapedTwice(t *testing.T) {
	renderer, err := New(Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = renderer.Render(&buf, "error", Page{
		Title: "Tom &amp; Jerry",
		Data:  errorData{Status: 404, Message: "<script>"},
	})
	require.NoError(t, err)

	body := buf.String()
	assert.Contains(t, body, "<title>Tom &amp; Jerry</title>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.NotContains(t, body, "<script>")
}

func TestRender_StaffLinks(t *testing.T) {
	renderer, err := New(Options{StaffAuth: true})
	require.NoError(t, err)

	var anonymous bytes.Buffer
	require.NoError(t, renderer.Render(&anonymous, "error", Page{Data: errorData{Status: 404}}))
	assert.Contains(t, anonymous.String(), "Staff login")
	assert.NotContains(t, anonymous.String(), "Create new author")

	var staff bytes.Buffer
	require.NoError(t, renderer.Render(&staff, "error", Page{Staff: true, Data: errorData{Status: 404}}))
	assert.Contains(t, staff.String(), "Log out")
	assert.Contains(t, staff.String(), "Create new author")

	open, err := New(Options{})
	require.NoError(t, err)

	var visitor bytes.Buffer
	require.NoError(t, open.Render(&visitor, "error", Page{Data: errorData{Status: 404}}))
	assert.Contains(t, visitor.String(), "Create new author")
	assert.NotContains(t, visitor.String(), "Staff login")
}

func TestFuncs(t *testing.T) {
	assert.True(t, isSelected("b", []string{"a", "b"}))
	assert.False(t, isSelected("c", nil))

	errs := []apperr.FieldError{{Field: "name", Message: "Genre name required"}, {Field: "name", Message: "second"}}
	assert.Equal(t, "Genre name required", fieldError(errs, "name"))
	assert.Empty(t, fieldError(errs, "title"))
}
