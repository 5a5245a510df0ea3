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
	OpenAI            = "openai"
	openAIDefaultBase = "https://api.openai.com/v1"
)

type OpenAIAdapter struct {
	base
}

func (a *OpenAIAdapter) Validate(ctx context.Context, cfg *Config) bool {
	ctx, span := a.tracer.Start(ctx, "vendors.OpenAIAdapter.Validate")
	defer span.End()

	if cfg == nil || cfg.APIKey == "" {
		return false
	}

	return a.getJSON(ctx, cfg.baseURL(openAIDefaultBase)+"/models", bearer(cfg.APIKey), nil) == nil
}

func (a *OpenAIAdapter) GetModels(ctx context.Context, cfg *Config) ([]types.ModelDescriptor, error) {
	ctx, span := a.tracer.Start(ctx, "vendors.OpenAIAdapter.GetModels")
	defer span.End()

	if cfg == nil || cfg.APIKey == "" {
		return nil, ErrInvalidCredential
	}

	var listing struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}

	if err := a.getJSON(ctx, cfg.baseURL(openAIDefaultBase)+"/models", bearer(cfg.APIKey), &listing); err != nil {
		return a.fallback(), fmt.Errorf("%s: %w", a.name, err)
	}

	models := make([]types.ModelDescriptor, 0, len(listing.Data))
	for _, m := range listing.Data {
		if !openAIRelevant(m.ID) {
			continue
		}
		models = append(models, types.ModelDescriptor{ID: m.ID, DisplayName: m.ID, Category: openAICategory(m.ID)})
	}

	models = dedupe(models)
	if len(models) == 0 {
		return a.emptyListing()
	}

	return models, nil
}

func openAIRelevant(id string) bool {
	for _, kw := range []string{"gpt", "embedding", "tts", "whisper"} {
		if strings.Contains(id, kw) {
			return true
		}
	}
	return false
}

func openAICategory(id string) types.ModelCategory {
	switch {
	case strings.Contains(id, "embedding"):
		return types.CategoryEmbedding
	case strings.Contains(id, "tts"):
		return types.CategoryTTS
	case strings.Contains(id, "whisper"):
		return types.CategorySpeechToText
	default:
		return types.CategoryLLM
	}
}
