// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction, ensuring
consistent error handling for identifiers taken from the URL.
*/
package requestutil

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/ctxutil"
	"github.com/taibuivan/locallibrary/internal/platform/sec"
	"github.com/taibuivan/locallibrary/pkg/uuid"
)

/*
ID retrieves a named UUID parameter from the request path.

Parameters:
  - request: *http.Request
  - name: string (route parameter, usually "id")
  - resource: string (used in the not-found message, e.g. "Author")

Returns:
  - string: The identifier
  - error: apperr.NotFound when the value is not a UUID, since no record can match it
*/
func ID(request *http.Request, name, resource string) (string, error) {
	id := chi.URLParam(request, name)
	if !uuid.Valid(id) {
		return "", apperr.NotFound(resource)
	}
	return id, nil
}

/*
Session extracts the staff session from the request context.

Returns nil for anonymous visitors.
*/
func Session(request *http.Request) *sec.SessionClaims {
	return ctxutil.GetSession(request.Context())
}
