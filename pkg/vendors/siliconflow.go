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
	SiliconFlow            = "siliconflow"
	siliconFlowDefaultBase = "https://api.siliconflow.cn/v1"
)

type SiliconFlowAdapter struct {
	base
}

type siliconFlowModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (a *SiliconFlowAdapter) Validate(ctx context.Context, cfg *Config) bool {
	ctx, span := a.tracer.Start(ctx, "vendors.SiliconFlowAdapter.Validate")
	defer span.End()

	if cfg == nil || cfg.APIKey == "" {
		return false
	}

	return a.getJSON(ctx, cfg.baseURL(siliconFlowDefaultBase)+"/models", bearer(cfg.APIKey), nil) == nil
}

func (a *SiliconFlowAdapter) GetModels(ctx context.Context, cfg *Config) ([]types.ModelDescriptor, error) {
	ctx, span := a.tracer.Start(ctx, "vendors.SiliconFlowAdapter.GetModels")
	defer span.End()

	if cfg == nil || cfg.APIKey == "" {
		return nil, ErrInvalidCredential
	}

	// listings come back under either key depending on the API revision
	var listing struct {
		Data   []siliconFlowModel `json:"data"`
		Models []siliconFlowModel `json:"models"`
	}

	if err := a.getJSON(ctx, cfg.baseURL(siliconFlowDefaultBase)+"/models", bearer(cfg.APIKey), &listing); err != nil {
		return a.fallback(), fmt.Errorf("%s: %w", a.name, err)
	}

	raw := listing.Data
	if len(raw) == 0 {
		raw = listing.Models
	}

	models := make([]types.ModelDescriptor, 0, len(raw))
	for _, m := range raw {
		id := firstNonEmpty(m.ID, m.Name)
		models = append(models, types.ModelDescriptor{ID: id, DisplayName: firstNonEmpty(m.Name, id), Category: siliconFlowCategory(id)})
	}

	models = dedupe(models)
	if len(models) == 0 {
		return a.emptyListing()
	}

	return a.mergeRecommended(models), nil
}

func siliconFlowCategory(id string) types.ModelCategory {
	lower := strings.ToLower(id)

	switch {
	case strings.Contains(lower, "embed"):
		return types.CategoryEmbedding
	case strings.Contains(lower, "rerank"):
		return types.CategoryRerank
	case strings.Contains(lower, "tts"):
		return types.CategoryTTS
	case strings.Contains(lower, "asr"), strings.Contains(lower, "speech"), strings.Contains(lower, "whisper"):
		return types.CategorySpeechToText
	default:
		return types.CategoryLLM
	}
}
