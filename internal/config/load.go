// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	envFileVariable = "WORKSPACE_ENV_FILE"
	defaultEnvFile  = ".env"
)

// Load reads the optional env file, then its .secret sidecar, and processes
// the environment into an EnvSpec. Variables already set take precedence.
func Load() (*EnvSpec, error) {
	envFile := os.Getenv(envFileVariable)
	if envFile == "" {
		envFile = defaultEnvFile
	}

	for _, f := range []string{envFile, envFile + ".secret"} {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	specs := new(EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	if err := specs.Validate(); err != nil {
		return nil, err
	}

	return specs, nil
}

// Validate checks cross-field constraints envconfig cannot express.
func (s *EnvSpec) Validate() error {
	if !s.AuthenticationEnabled {
		return nil
	}

	switch s.AuthenticationMode {
	case "oidc":
		if s.AuthenticationIssuer == "" {
			return errors.New("authentication_issuer is required in oidc mode")
		}
	case "hmac":
		if s.JWTSecret == "" {
			return errors.New("jwt_secret is required in hmac mode")
		}
	default:
		return fmt.Errorf("unknown authentication_mode %q", s.AuthenticationMode)
	}

	return nil
}
