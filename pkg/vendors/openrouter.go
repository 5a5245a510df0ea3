// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vendors

import (
	"context"
	"fmt"
	"strings"

	"github.com/canonical/workspace-service/internal/types"
)

const (
	OpenRouter            = "openrouter"
	openRouterDefaultBase = "https://openrouter.ai/api/v1"
)

type OpenRouterAdapter struct {
	base
}

func (a *OpenRouterAdapter) headers(cfg *Config) map[string]string {
	h := bearer(cfg.APIKey)
	if cfg.SiteURL != "" {
		h["HTTP-Referer"] = cfg.SiteURL
	}
	if cfg.AppName != "" {
		h["X-Title"] = cfg.AppName
	}
	return h
}

func (a *OpenRouterAdapter) Validate(ctx context.Context, cfg *Config) bool {
	ctx, span := a.tracer.Start(ctx, "vendors.OpenRouterAdapter.Validate")
	defer span.End()

	if cfg == nil || cfg.APIKey == "" {
		return false
	}

	return a.getJSON(ctx, cfg.baseURL(openRouterDefaultBase)+"/models", a.headers(cfg), nil) == nil
}

func (a *OpenRouterAdapter) GetModels(ctx context.Context, cfg *Config) ([]types.ModelDescriptor, error) {
	ctx, span := a.tracer.Start(ctx, "vendors.OpenRouterAdapter.GetModels")
	defer span.End()

	if cfg == nil || cfg.APIKey == "" {
		return nil, ErrInvalidCredential
	}

	var listing struct {
		Data []struct {
			ID   string `json:"id"`
			Slug string `json:"slug"`
			Name string `json:"name"`
		} `json:"data"`
	}

	if err := a.getJSON(ctx, cfg.baseURL(openRouterDefaultBase)+"/models", a.headers(cfg), &listing); err != nil {
		return a.fallback(), fmt.Errorf("%s: %w", a.name, err)
	}

	models := make([]types.ModelDescriptor, 0, len(listing.Data))
	for _, m := range listing.Data {
		id := firstNonEmpty(m.ID, m.Slug, m.Name)
		models = append(models, types.ModelDescriptor{ID: id, DisplayName: firstNonEmpty(m.Name, id), Category: openRouterCategory(id)})
	}

	models = dedupe(models)
	if len(models) == 0 {
		return a.emptyListing()
	}

	return a.mergeRecommended(models), nil
}

func openRouterCategory(id string) types.ModelCategory {
	lower := strings.ToLower(id)

	switch {
	case strings.Contains(lower, "embed"):
		return types.CategoryEmbedding
	case strings.Contains(lower, "rerank"):
		return types.CategoryRerank
	case strings.Contains(lower, "tts"), strings.Contains(lower, "speech"):
		return types.CategoryTTS
	case strings.Contains(lower, "whisper"), strings.Contains(lower, "transcri"):
		return types.CategorySpeechToText
	default:
		return types.CategoryLLM
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
