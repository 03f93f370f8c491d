// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"net/url"

	"github.com/taibuivan/locallibrary/internal/platform/constants"
	"github.com/taibuivan/locallibrary/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/locallibrary/internal/platform/request"
	"github.com/taibuivan/locallibrary/internal/platform/respond"
	"github.com/taibuivan/locallibrary/internal/platform/sec"
)

// SessionVerifier defines what the session middleware needs from the token service.
//
// # Why an interface?
//
// Defining SessionVerifier here decouples the middleware from [sec.SessionService],
// allowing handler tests to inject a fixed verifier.
type SessionVerifier interface {
	Verify(token string) (*sec.SessionClaims, error)
}

// Authenticate reads the staff session cookie and, when valid, injects the
// [*sec.SessionClaims] into the request context.
//
// # Flow
//  1. No cookie: the request proceeds as anonymous.
//  2. Invalid or expired cookie: the cookie is cleared and the request proceeds as anonymous.
//  3. Valid cookie: the claims are attached for downstream use.
func Authenticate(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			claims, err := verifier.Verify(cookie.Value)
			if err != nil {
				ClearSessionCookie(writer)
				next.ServeHTTP(writer, request)
				return
			}

			ctx := ctxutil.WithSession(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireStaff sends anonymous visitors to the login page. When enabled is
// false the catalog is open and every request passes.
func RequireStaff(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}

		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if requestutil.Session(request) != nil {
				next.ServeHTTP(writer, request)
				return
			}

			target := constants.LoginPath + "?" + url.Values{"next": {request.URL.Path}}.Encode()
			respond.Redirect(writer, request, target)
		})
	}
}

// SetSessionCookie stores a staff session token.
func SetSessionCookie(writer http.ResponseWriter, token string, maxAge int, secure bool) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     constants.SessionCookiePath,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie removes the staff session cookie.
func ClearSessionCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     constants.SessionCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
