/*
 * Copyright 2025 Daniel C. Brotsky. All rights reserved.
 * All the copyrighted work in this repository is licensed under the
 * GNU Affero General Public License v3, reproduced in the LICENSE file.
 */

package web

import (
	"github.com/gin-gonic/gin"

	"github.com/whisper-project/donna.server.golang/handlers"
	"github.com/whisper-project/donna.server.golang/middleware"
)

func AddRoutes(r *gin.RouterGroup) {
	r.Use(middleware.AuthRequired())
	r.GET("/me", handlers.MeHandler)
	r.POST("/voice/capture", handlers.VoiceCaptureHandler)
}
