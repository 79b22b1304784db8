/*
 * Copyright 2025 Daniel C. Brotsky. All rights reserved.
 * All the copyrighted work in this repository is licensed under the
 * GNU Affero General Public License v3, reproduced in the LICENSE file.
 */

package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/whisper-project/donna.server.golang/services"
)

const ctxUserKey = "authenticatedUser"

// AuthRequired validates the bearer token on the request and stashes the
// resulting identity in the request context. Requests that fail validation
// are aborted with a reason specific to the failure.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"status": "error", "error": "Not authenticated"})
			return
		}
		user, err := services.ValidateToken(token)
		if err != nil {
			status, message := describeAuthFailure(err)
			CtxLog(c).Info("rejected bearer token",
				zap.Int("status", status), zap.Error(err))
			c.AbortWithStatusJSON(status, gin.H{"status": "error", "error": message})
			return
		}
		c.Set(ctxUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the identity stored by AuthRequired.
func CurrentUser(c *gin.Context) *services.AuthenticatedUser {
	if u, ok := c.Get(ctxUserKey); ok {
		return u.(*services.AuthenticatedUser)
	}
	return nil
}

// describeAuthFailure maps each validation failure kind to the status code
// and user-facing message it is reported with. Only an unconfigured secret
// is a server fault; everything else is the client's problem.
func describeAuthFailure(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrSecretNotConfigured):
		return http.StatusInternalServerError,
			"JWT secret not configured. Please set SUPABASE_JWT_SECRET environment variable."
	case errors.Is(err, services.ErrTokenExpired):
		return http.StatusUnauthorized, "Token has expired"
	case errors.Is(err, services.ErrAudienceMismatch):
		return http.StatusUnauthorized, "Invalid token: audience mismatch. Expected 'authenticated'"
	case errors.Is(err, services.ErrSignatureInvalid):
		return http.StatusUnauthorized, "Invalid token: signature verification failed. Check SUPABASE_JWT_SECRET"
	case errors.Is(err, services.ErrTokenMalformed):
		return http.StatusUnauthorized, "Invalid token: decode error"
	case errors.Is(err, services.ErrMissingSubject):
		return http.StatusUnauthorized, "Invalid token: missing user ID"
	default:
		return http.StatusUnauthorized, fmt.Sprintf("Invalid token: %v", err)
	}
}
