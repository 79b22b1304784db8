/*
 * Copyright 2025 Daniel C. Brotsky. All rights reserved.
 * All the copyrighted work in this repository is licensed under the
 * GNU Affero General Public License v3, reproduced in the LICENSE file.
 */

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/whisper-project/donna.server.golang/middleware"
)

// MeHandler returns the identity asserted by the caller's bearer token.
func MeHandler(c *gin.Context) {
	user := middleware.CurrentUser(c)
	middleware.CtxLog(c).Info("returning current user", zap.String("userId", user.Id))
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.Id,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
