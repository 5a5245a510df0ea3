// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vendors

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Config is the per-tenant vendor configuration, stored encrypted.
type Config struct {
	APIKey  string `json:"apiKey" validate:"required"`
	BaseURL string `json:"baseUrl,omitempty" validate:"omitempty,url"`
	AppName string `json:"appName,omitempty"`
	SiteURL string `json:"siteUrl,omitempty" validate:"omitempty,url"`
}

func (c *Config) baseURL(fallback string) string {
	if u := strings.TrimSpace(c.BaseURL); u != "" {
		return strings.TrimRight(u, "/")
	}
	return fallback
}

func ParseConfig(raw string) (*Config, error) {
	c := new(Config)
	if err := json.Unmarshal([]byte(raw), c); err != nil {
		return nil, fmt.Errorf("failed to parse vendor config: %w", err)
	}
	return c, nil
}

func (c *Config) Marshal() (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
