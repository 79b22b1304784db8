/*
 * Copyright 2025 Daniel C. Brotsky. All rights reserved.
 * All the copyrighted work in this repository is licensed under the
 * GNU Affero General Public License v3, reproduced in the LICENSE file.
 */

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whisper-project/donna.server.golang/platform"
)

// AllowCrossOrigin admits browser clients from the configured origin
// allow-list, with credentials, any method, and any header.
func AllowCrossOrigin() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && originAllowed(origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "*")
			c.Header("Vary", "Origin")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func originAllowed(origin string) bool {
	for _, allowed := range platform.SplitAndTrim(platform.GetConfig().AllowedOrigins) {
		if allowed == origin {
			return true
		}
	}
	return false
}
