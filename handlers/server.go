/*
 * Copyright 2025 Daniel C. Brotsky. All rights reserved.
 * All the copyrighted work in this repository is licensed under the
 * GNU Affero General Public License v3, reproduced in the LICENSE file.
 */

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whisper-project/donna.server.golang/platform"
)

func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to " + platform.AppName + " API",
		"version": platform.AppVersion,
	})
}

// HealthHandler reports liveness only; it checks no downstream systems.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
