// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vendors

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/canonical/workspace-service/internal/types"
)

const (
	Gemini            = "gemini"
	geminiDefaultBase = "https://generativelanguage.googleapis.com/v1beta"
)

type GeminiAdapter struct {
	base
}

func (a *GeminiAdapter) modelsURL(cfg *Config) string {
	return cfg.baseURL(geminiDefaultBase) + "/models?key=" + url.QueryEscape(cfg.APIKey)
}

func (a *GeminiAdapter) Validate(ctx context.Context, cfg *Config) bool {
	ctx, span := a.tracer.Start(ctx, "vendors.GeminiAdapter.Validate")
	defer span.End()

	if cfg == nil || cfg.APIKey == "" {
		return false
	}

	return a.getJSON(ctx, a.modelsURL(cfg), nil, nil) == nil
}

func (a *GeminiAdapter) GetModels(ctx context.Context, cfg *Config) ([]types.ModelDescriptor, error) {
	ctx, span := a.tracer.Start(ctx, "vendors.GeminiAdapter.GetModels")
	defer span.End()

	if cfg == nil || cfg.APIKey == "" {
		return nil, ErrInvalidCredential
	}

	var listing struct {
		Models []struct {
			Name                       string   `json:"name"`
			DisplayName                string   `json:"displayName"`
			SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
		} `json:"models"`
	}

	if err := a.getJSON(ctx, a.modelsURL(cfg), nil, &listing); err != nil {
		// the key travels in the query string, keep it out of logs
		return a.fallback(), fmt.Errorf("%s: %w", a.name, redact(err, cfg.APIKey))
	}

	models := make([]types.ModelDescriptor, 0, len(listing.Models))
	for _, m := range listing.Models {
		id := strings.TrimPrefix(m.Name, "models/")
		name := m.DisplayName
		if name == "" {
			name = id
		}
		models = append(models, types.ModelDescriptor{ID: id, DisplayName: name, Category: geminiCategory(id, m.SupportedGenerationMethods)})
	}

	models = dedupe(models)
	if len(models) == 0 {
		return a.emptyListing()
	}

	return a.mergeRecommended(models), nil
}

func geminiCategory(id string, methods []string) types.ModelCategory {
	lower := strings.ToLower(id)

	switch {
	case slices.Contains(methods, "embedContent") || strings.Contains(lower, "embedding"):
		return types.CategoryEmbedding
	case strings.Contains(lower, "speech"):
		return types.CategorySpeechToText
	default:
		return types.CategoryLLM
	}
}

type redactedError struct {
	msg   string
	cause error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.cause }

func redact(err error, secret string) error {
	if secret == "" || !strings.Contains(err.Error(), secret) {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(err.Error(), secret, "REDACTED"), cause: err}
}
