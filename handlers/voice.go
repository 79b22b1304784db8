/*
 * Copyright 2025 Daniel C. Brotsky. All rights reserved.
 * All the copyrighted work in this repository is licensed under the
 * GNU Affero General Public License v3, reproduced in the LICENSE file.
 */

package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/whisper-project/donna.server.golang/middleware"
	"github.com/whisper-project/donna.server.golang/storage"
)

// VoiceCaptureHandler receives a recording from the client in the
// multipart field "audio", reads it fully into memory, and persists it
// verbatim under the caller's user id. No content-type or size checks
// are performed.
func VoiceCaptureHandler(c *gin.Context) {
	user := middleware.CurrentUser(c)
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		captureFailed(c, err)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		captureFailed(c, err)
		return
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		captureFailed(c, err)
		return
	}
	filename, timestamp, err := storage.SaveRecording(user.Id, content)
	if err != nil {
		captureFailed(c, err)
		return
	}
	// TODO: process the recording with speech-to-text (Whisper API)
	// TODO: extract structured data (tasks, projects, people, deadlines) with AI
	middleware.CtxLog(c).Info("recording captured",
		zap.String("userId", user.Id), zap.String("filename", filename),
		zap.Int("size", len(content)))
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Voice recording captured successfully",
		"filename":  filename,
		"size":      len(content),
		"timestamp": timestamp,
	})
}

// captureFailed reports an upload failure. The status stays 200 with a
// failure flag in the body; existing clients check the flag, not the
// status code.
func captureFailed(c *gin.Context, err error) {
	middleware.CtxLog(c).Error("voice capture failed", zap.Error(err))
	c.JSON(http.StatusOK, gin.H{
		"success": false,
		"message": fmt.Sprintf("Failed to process recording: %v", err),
	})
}
