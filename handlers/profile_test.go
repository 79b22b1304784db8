/*
 * Copyright 2025 Daniel C. Brotsky. All rights reserved.
 * All the copyrighted work in this repository is licensed under the
 * GNU Affero General Public License v3, reproduced in the LICENSE file.
 */

package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-test/deep"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/whisper-project/donna.server.golang/api/web"
	"github.com/whisper-project/donna.server.golang/handlers"
	"github.com/whisper-project/donna.server.golang/platform"
)

const testSecret = "handlers-test-secret"

// apiEngine builds the same route layout the serve command does.
func apiEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/", handlers.RootHandler)
	engine.GET("/health", handlers.HealthHandler)
	web.AddRoutes(engine.Group(platform.GetConfig().ApiPrefix))
	return engine
}

func pushServerConfig(t *testing.T) {
	t.Helper()
	env := platform.GetConfig()
	env.SupabaseJwtSecret = testSecret
	env.RecordingsDir = t.TempDir()
	platform.PushAlteredConfig(env)
	t.Cleanup(platform.PopConfig)
}

func bearerToken(t *testing.T, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"aud":   "authenticated",
		"email": "user@example.com",
		"role":  "authenticated",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return s
}

func authedRequest(t *testing.T, engine *gin.Engine, method, path, token, contentType string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestMeHandler(t *testing.T) {
	pushServerConfig(t)
	engine := apiEngine(t)
	sub := uuid.NewString()
	w := authedRequest(t, engine, http.MethodGet, "/api/v1/me", bearerToken(t, sub), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to parse body: %v", err)
	}
	expected := map[string]any{
		"user": map[string]any{
			"id":    sub,
			"email": "user@example.com",
			"role":  "authenticated",
		},
	}
	if diff := deep.Equal(body, expected); diff != nil {
		t.Error(diff)
	}
}

func TestMeHandler_NoToken(t *testing.T) {
	pushServerConfig(t)
	engine := apiEngine(t)
	w := authedRequest(t, engine, http.MethodGet, "/api/v1/me", "", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}
