/*
 * Copyright 2025 Daniel C. Brotsky. All rights reserved.
 * All the copyrighted work in this repository is licensed under the
 * GNU Affero General Public License v3, reproduced in the LICENSE file.
 */

package services

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/whisper-project/donna.server.golang/platform"
)

// Supabase access tokens are issued with this audience.
const requiredAudience = "authenticated"

var (
	ErrSecretNotConfigured = errors.New("jwt secret not configured")
	ErrTokenExpired        = errors.New("token has expired")
	ErrAudienceMismatch    = errors.New("token audience mismatch")
	ErrSignatureInvalid    = errors.New("token signature verification failed")
	ErrTokenMalformed      = errors.New("token malformed")
	ErrMissingSubject      = errors.New("token missing subject claim")
	ErrTokenInvalid        = errors.New("token invalid")
)

// AuthenticatedUser is the identity extracted from a validated bearer token.
// It lives only for the duration of a request.
type AuthenticatedUser struct {
	Id     string
	Email  string
	Role   string
	Claims jwt.MapClaims
}

// ValidateToken verifies an HS256-signed Supabase JWT against the configured
// shared secret and extracts the caller's identity. Every call performs a
// fresh signature check. Failures are reported as one of the sentinel
// errors above, possibly wrapped.
func ValidateToken(token string) (*AuthenticatedUser, error) {
	secret := platform.GetConfig().SupabaseJwtSecret
	if secret == "" {
		// server misconfiguration wins over any token problem
		return nil, ErrSecretNotConfigured
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithAudience(requiredAudience),
	)
	if err != nil {
		return nil, classifyTokenError(err)
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrMissingSubject
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return &AuthenticatedUser{Id: sub, Email: email, Role: role, Claims: claims}, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ErrAudienceMismatch
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrSignatureInvalid
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	default:
		return fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
}
