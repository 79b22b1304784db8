/*
 * Copyright 2025 Daniel C. Brotsky. All rights reserved.
 * All the copyrighted work in this repository is licensed under the
 * GNU Affero General Public License v3, reproduced in the LICENSE file.
 */

package platform

import (
	"fmt"
	"os"
	"strings"

	"github.com/dotenv-org/godotenvvault"
)

const (
	AppName    = "Donna"
	AppVersion = "0.1.0"
)

type Environment struct {
	Name              string
	Debug             bool
	AllowedOrigins    string
	ApiPrefix         string
	SupabaseUrl       string
	SupabaseJwtSecret string
	RecordingsDir     string
}

var (
	ciConfig = Environment{
		Name:           "CI",
		Debug:          true,
		AllowedOrigins: "http://localhost:3000,http://localhost:5173",
		ApiPrefix:      "/api/v1",
		RecordingsDir:  "data/recordings",
	}
	loadedConfig = ciConfig
	configStack  []Environment
)

func GetConfig() Environment {
	return loadedConfig
}

func PushConfig(name string) error {
	if name == "" {
		return pushEnvConfig("")
	}
	if strings.HasPrefix(name, "c") {
		return pushCiConfig()
	}
	if strings.HasPrefix(name, "d") {
		return pushEnvConfig(".env")
	}
	if strings.HasPrefix(name, "s") {
		return pushEnvConfig(".env.staging")
	}
	if strings.HasPrefix(name, "p") {
		return pushEnvConfig(".env.production")
	}
	if strings.HasPrefix(name, "t") {
		return pushEnvConfig(".env.testing")
	}
	return fmt.Errorf("unknown environment: %s", name)
}

func PushAlteredConfig(env Environment) {
	configStack = append(configStack, loadedConfig)
	loadedConfig = env
}

func pushCiConfig() error {
	configStack = append(configStack, loadedConfig)
	loadedConfig = ciConfig
	return nil
}

func pushEnvConfig(filename string) error {
	var d string
	var err error
	if filename == "" {
		if d, err = FindEnvFile(".env.vault", true); err == nil {
			if d == "" {
				err = godotenvvault.Overload()
			} else {
				var c string
				if c, err = os.Getwd(); err == nil {
					if err = os.Chdir(d); err == nil {
						err = godotenvvault.Overload()
						// if we fail to change back to the prior working directory, so be it.
						_ = os.Chdir(c)
					}
				}
			}
		}
	} else {
		if d, err = FindEnvFile(filename, false); err == nil {
			err = godotenvvault.Overload(d + filename)
		}
	}
	if err != nil {
		return fmt.Errorf("error loading .env vars: %v", err)
	}
	configStack = append(configStack, loadedConfig)
	env := Environment{
		Name:              os.Getenv("ENVIRONMENT_NAME"),
		Debug:             strings.ToLower(os.Getenv("DEBUG")) == "true",
		AllowedOrigins:    os.Getenv("ALLOWED_ORIGINS"),
		ApiPrefix:         os.Getenv("API_PREFIX"),
		SupabaseUrl:       os.Getenv("SUPABASE_URL"),
		SupabaseJwtSecret: os.Getenv("SUPABASE_JWT_SECRET"),
		RecordingsDir:     os.Getenv("RECORDINGS_DIR"),
	}
	// a missing JWT secret is tolerated at load; it surfaces when auth is attempted
	SetIfMissing(&env.AllowedOrigins, ciConfig.AllowedOrigins)
	SetIfMissing(&env.ApiPrefix, ciConfig.ApiPrefix)
	SetIfMissing(&env.RecordingsDir, ciConfig.RecordingsDir)
	loadedConfig = env
	return nil
}

func PopConfig() {
	if len(configStack) == 0 {
		return
	}
	loadedConfig = configStack[len(configStack)-1]
	configStack = configStack[:len(configStack)-1]
	return
}

func FindEnvFile(name string, fallback bool) (string, error) {
	for i := 0; i < 5; i++ {
		d := ""
		for j := 0; j < i; j++ {
			d += "../"
		}
		if _, err := os.Stat(d + name); err == nil {
			return d, nil
		}
		if fallback {
			if _, err := os.Stat(d + ".env"); err == nil {
				return d, nil
			}
		}
	}
	return "", fmt.Errorf("no file %q found in path", name)
}
