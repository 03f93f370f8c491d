// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package staff implements the optional staff login.

The library has a single shared staff password, stored as a bcrypt hash in the
environment. A correct password opens a signed session that lets the holder use
the create, update and delete pages.
*/
package staff

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/constants"
	"github.com/taibuivan/locallibrary/internal/platform/sec"
)

// FieldPassword is the login form's password field.
const FieldPassword = "password"

// ErrWrongPassword is returned for a password that does not match the hash.
var ErrWrongPassword = apperr.Unauthorized("Incorrect password")

// Issuer signs staff sessions.
type Issuer interface {
	Issue(subject string, timeToLive time.Duration) (string, time.Time, error)
}

// Service checks the staff password and opens sessions.
type Service struct {
	passwordHash string
	sessions     Issuer
	logger       *slog.Logger
}

// NewService wires the staff login. An empty passwordHash disables it.
func NewService(passwordHash string, sessions Issuer, logger *slog.Logger) *Service {
	return &Service{
		passwordHash: passwordHash,
		sessions:     sessions,
		logger:       logger,
	}
}

// Enabled reports whether a staff password is configured.
func (service *Service) Enabled() bool {
	return service.passwordHash != ""
}

// Login checks password and returns a session token with its expiry.
func (service *Service) Login(context context.Context, password string) (string, time.Time, error) {
	if !service.Enabled() || !sec.CheckPasswordHash(password, service.passwordHash) {
		service.logger.WarnContext(context, "staff_login_failed")
		return "", time.Time{}, ErrWrongPassword
	}

	token, expiresAt, err := service.sessions.Issue(constants.StaffSubject, constants.SessionTTL)
	if err != nil {
		return "", time.Time{}, apperr.Internal(err)
	}

	service.logger.InfoContext(context, "staff_login_succeeded", slog.Time("expires_at", expiresAt))
	return token, expiresAt, nil
}
