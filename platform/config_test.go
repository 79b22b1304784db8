/*
 * Copyright 2025 Daniel C. Brotsky. All rights reserved.
 * All the copyrighted work in this repository is licensed under the
 * GNU Affero General Public License v3, reproduced in the LICENSE file.
 */

package platform

import (
	"testing"

	"github.com/go-test/deep"
)

func TestGetConfig(t *testing.T) {
	if GetConfig() != ciConfig {
		t.Errorf("Initial configuration is not the CI configuration")
	}
}

func TestCiConfigDefaults(t *testing.T) {
	expected := Environment{
		Name:           "CI",
		Debug:          true,
		AllowedOrigins: "http://localhost:3000,http://localhost:5173",
		ApiPrefix:      "/api/v1",
		RecordingsDir:  "data/recordings",
	}
	if diff := deep.Equal(ciConfig, expected); diff != nil {
		t.Error(diff)
	}
	if ciConfig.SupabaseJwtSecret != "" {
		t.Errorf("CI configuration should not carry a JWT secret")
	}
}

func TestPushAlteredConfig(t *testing.T) {
	env := GetConfig()
	env.Name = "AlteredTestConfig"
	env.SupabaseJwtSecret = "test-secret"
	PushAlteredConfig(env)
	env1 := GetConfig()
	if diff := deep.Equal(env, env1); diff != nil {
		t.Error(diff)
	}
	PopConfig()
	env2 := GetConfig()
	if env2 == env {
		t.Errorf("Popped configuration is the altered configuration")
	}
	if env2 != ciConfig {
		t.Errorf("Popped configuration is not the original configuration")
	}
}

func TestPushPopPopConfig(t *testing.T) {
	if err := PushConfig("ci"); err != nil {
		t.Fatalf("Failed to push configuration: %v", err)
	}
	if GetConfig() != ciConfig {
		t.Errorf("Pushed configuration is not the CI configuration")
	}
	PopConfig()
	if GetConfig() != ciConfig {
		t.Errorf("Popped configuration is not the CI configuration")
	}
	PopConfig()
	if GetConfig() != ciConfig {
		t.Errorf("Overpopped configuration is not the CI configuration")
	}
}

func TestPushUnknownConfig(t *testing.T) {
	if err := PushConfig("no-such-environment"); err == nil {
		t.Errorf("Was able to push a non-existent environment")
		PopConfig()
	}
	if GetConfig() != ciConfig {
		t.Errorf("Environment after a failed push is different")
	}
}
