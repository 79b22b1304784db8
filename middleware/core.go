/*
 * Copyright 2025 Daniel C. Brotsky. All rights reserved.
 * All the copyrighted work in this repository is licensed under the
 * GNU Affero General Public License v3, reproduced in the LICENSE file.
 */

package middleware

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const ctxLoggerKey = "ctxLogger"

// CreateCoreEngine returns a bare engine with request logging, panic
// recovery, and a per-request logger carrying a request id.
func CreateCoreEngine(logger *zap.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	engine.Use(ginzap.RecoveryWithZap(logger, true))
	engine.Use(func(c *gin.Context) {
		c.Set(ctxLoggerKey, logger.With(zap.String("requestId", uuid.NewString())))
		c.Next()
	})
	return engine
}

// CtxLog returns the request-scoped logger.
func CtxLog(c *gin.Context) *zap.Logger {
	if l, ok := c.Get(ctxLoggerKey); ok {
		return l.(*zap.Logger)
	}
	return zap.L()
}
