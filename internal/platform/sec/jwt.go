// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and staff session tokens.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the catalog logic. The session middleware and the staff login handler are its
// only consumers.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidSession is returned for any token that fails verification.
var ErrInvalidSession = errors.New("sec: invalid session token")

// SessionClaims represents the payload embedded inside a staff session cookie.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Staff is true for sessions opened through the staff login form.
	Staff bool `json:"stf"`
}

// SessionService issues and verifies HS256 staff session tokens.
type SessionService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewSessionService creates a new SessionService signing with secret.
func NewSessionService(secret, issuer string) (*SessionService, error) {
	if secret == "" {
		return nil, errors.New("sec: session secret is empty")
	}

	return &SessionService{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// Issue creates a signed session token for subject valid for timeToLive.
func (service *SessionService) Issue(subject string, timeToLive time.Duration) (string, time.Time, error) {
	currentTime := service.now()
	expiresAt := currentTime.Add(timeToLive)

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Staff: true,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sec: failed to sign session: %w", err)
	}

	return signedToken, expiresAt, nil
}

// Verify checks the signature, issuer, and expiry of a session token.
func (service *SessionService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	},
		jwt.WithIssuer(service.issuer),
		jwt.WithTimeFunc(service.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || !claims.Staff {
		return nil, ErrInvalidSession
	}

	return claims, nil
}
