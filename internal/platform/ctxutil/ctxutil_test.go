// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/locallibrary/internal/platform/constants"
	"github.com/taibuivan/locallibrary/internal/platform/ctxkey"
	"github.com/taibuivan/locallibrary/internal/platform/ctxutil"
	"github.com/taibuivan/locallibrary/internal/platform/sec"
)

/*
TestRequestID_Lookup covers the empty context and a stored id.
*/
func TestRequestID_Lookup(t *testing.T) {
	assert.Empty(t, ctxutil.GetRequestID(context.Background()))

	ctx := ctxutil.WithRequestID(context.Background(), "0190a6e4-8c3b-7b1e-9f00-2d4c5e6f7a8b")
	assert.Equal(t, "0190a6e4-8c3b-7b1e-9f00-2d4c5e6f7a8b", ctxutil.GetRequestID(ctx))
}

/*
TestLogger_CarriesRequestAttributes checks that a per-request child logger is the
one handlers get back, attributes included.
*/
func TestLogger_CarriesRequestAttributes(t *testing.T) {
	assert.Same(t, slog.Default(), ctxutil.GetLogger(context.Background()))

	var buf bytes.Buffer
	requestLogger := slog.New(slog.NewJSONHandler(&buf, nil)).With(slog.String("request_id", "req-42"))

	ctx := ctxutil.WithLogger(context.Background(), requestLogger)
	ctxutil.GetLogger(ctx).InfoContext(ctx, "author_created")

	assert.Contains(t, buf.String(), `"msg":"author_created"`)
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
}

/*
TestSession_Lookup covers anonymous visitors, staff sessions and values of the
wrong type stored under the session key.
*/
func TestSession_Lookup(t *testing.T) {
	staff := &sec.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: constants.StaffSubject, Issuer: constants.SessionIssuer},
		Staff:            true,
	}

	tests := []struct {
		name string
		ctx  context.Context
		want *sec.SessionClaims
	}{
		{"anonymous", context.Background(), nil},
		{"staff", ctxutil.WithSession(context.Background(), staff), staff},
		{"wrong_type", context.WithValue(context.Background(), ctxkey.KeySession, "staff"), nil},
		{"typed_nil", ctxutil.WithSession(context.Background(), nil), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ctxutil.GetSession(tt.ctx))
		})
	}
}

/*
TestSession_ScopedToDerivedContext keeps a login on the request that carried it.
*/
func TestSession_ScopedToDerivedContext(t *testing.T) {
	parent := ctxutil.WithRequestID(context.Background(), "req-7")
	withStaff := ctxutil.WithSession(parent, &sec.SessionClaims{Staff: true})

	claims := ctxutil.GetSession(withStaff)
	require.NotNil(t, claims)
	assert.True(t, claims.Staff)
	assert.Equal(t, "req-7", ctxutil.GetRequestID(withStaff))

	assert.Nil(t, ctxutil.GetSession(parent))
}
