// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/canonical/workspace-service/internal/types"
)

func model(id, name string, c types.ModelCategory) types.ModelDescriptor {
	return types.ModelDescriptor{ID: id, DisplayName: name, Category: c}
}

func entry(id string, source types.ModelSource, enabled bool, retired bool) *types.CatalogEntry {
	e := &types.CatalogEntry{
		ID:          "entry-" + id,
		Vendor:      "openai",
		ModelID:     id,
		DisplayName: id,
		Category:    types.CategoryLLM,
		Source:      source,
		Enabled:     enabled,
	}
	if retired {
		at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		e.RetiredAt = &at
	}
	return e
}

func TestDiffLive(t *testing.T) {
	existing := []*types.CatalogEntry{
		entry("gpt-4o", types.SourceAuto, true, false),
		entry("gpt-4", types.SourceAuto, true, false),
		entry("gpt-3.5", types.SourceAuto, true, true),
		entry("gpt-legacy", types.SourceAuto, false, false),
		entry("my-model", types.SourceCustom, true, false),
		entry("my-gone-model", types.SourceCustom, true, false),
	}

	fetched := []types.ModelDescriptor{
		model("gpt-4o", "gpt-4o", types.CategoryLLM),
		model("gpt-3.5", "gpt-3.5", types.CategoryLLM),
		model("my-model", "my-model", types.CategoryLLM),
		model("text-embedding-3-small", "", types.CategoryEmbedding),
		model("text-embedding-3-small", "dup", types.CategoryEmbedding),
		model("", "nameless", types.CategoryLLM),
	}

	plan := Diff("openai", fetched, existing, DiffLive)

	assert.Equal(t, []types.ModelDescriptor{model("text-embedding-3-small", "text-embedding-3-small", types.CategoryEmbedding)}, plan.Insert)
	assert.Equal(t, []Refresh{{Model: model("gpt-3.5", "gpt-3.5", types.CategoryLLM), Revive: true}}, plan.Refresh)
	assert.Equal(t, []string{"gpt-4"}, plan.Retire)
}

func TestDiffRefreshesChangedMetadata(t *testing.T) {
	existing := []*types.CatalogEntry{entry("gpt-4o", types.SourceAuto, true, false)}

	plan := Diff("openai", []types.ModelDescriptor{model("gpt-4o", "GPT-4o", types.CategoryLLM)}, existing, DiffLive)

	assert.Empty(t, plan.Insert)
	assert.Empty(t, plan.Retire)
	assert.Equal(t, []Refresh{{Model: model("gpt-4o", "GPT-4o", types.CategoryLLM)}}, plan.Refresh)
}

func TestDiffIsIdempotent(t *testing.T) {
	fetched := []types.ModelDescriptor{
		model("gpt-4o", "gpt-4o", types.CategoryLLM),
		model("tts-1", "tts-1", types.CategoryTTS),
	}

	first := Diff("openai", fetched, nil, DiffLive)
	assert.Len(t, first.Insert, 2)

	// rows as the first plan would have written them
	existing := make([]*types.CatalogEntry, 0, len(first.Insert))
	for _, m := range first.Insert {
		existing = append(existing, &types.CatalogEntry{
			Vendor:      "openai",
			ModelID:     m.ID,
			DisplayName: m.DisplayName,
			Category:    m.Category,
			Source:      types.SourceAuto,
			Enabled:     true,
		})
	}

	second := Diff("openai", fetched, existing, DiffLive)
	assert.True(t, second.Empty())
}

func TestDiffFallbackOnlyInserts(t *testing.T) {
	existing := []*types.CatalogEntry{
		entry("gpt-4o", types.SourceAuto, true, false),
		entry("gpt-4", types.SourceAuto, true, false),
		entry("gpt-3.5", types.SourceAuto, false, true),
	}

	fetched := []types.ModelDescriptor{
		model("gpt-4o", "GPT-4o", types.CategoryLLM),
		model("gpt-3.5", "GPT 3.5", types.CategoryLLM),
		model("whisper-1", "Whisper 1", types.CategorySpeechToText),
	}

	plan := Diff("openai", fetched, existing, DiffFallback)

	assert.Equal(t, []types.ModelDescriptor{model("whisper-1", "Whisper 1", types.CategorySpeechToText)}, plan.Insert)
	assert.Empty(t, plan.Refresh)
	assert.Empty(t, plan.Retire)
	assert.Equal(t, "fallback", plan.Mode.String())
}

func TestDiffEmptyListingRetiresAllAuto(t *testing.T) {
	existing := []*types.CatalogEntry{
		entry("gpt-4o", types.SourceAuto, true, false),
		entry("my-model", types.SourceCustom, true, false),
	}

	plan := Diff("openai", nil, existing, DiffLive)

	assert.Empty(t, plan.Insert)
	assert.Equal(t, []string{"gpt-4o"}, plan.Retire)
}

func TestDiffIgnoresOtherVendors(t *testing.T) {
	other := entry("gemini-pro", types.SourceAuto, true, false)
	other.Vendor = "gemini"

	plan := Diff("openai", nil, []*types.CatalogEntry{other}, DiffLive)
	assert.True(t, plan.Empty())
}

func TestDiffDefaultsUnknownCategory(t *testing.T) {
	plan := Diff("openai", []types.ModelDescriptor{model("odd", "Odd", "video")}, nil, DiffLive)

	assert.Equal(t, types.CategoryLLM, plan.Insert[0].Category)
}

func TestDiffRetiresReenabledEntryStillMissing(t *testing.T) {
	// retired once, then turned back on by a user while the vendor still omits it
	existing := []*types.CatalogEntry{
		entry("gpt-4o", types.SourceAuto, true, false),
		entry("gpt-old", types.SourceAuto, true, true),
	}

	plan := Diff("openai", []types.ModelDescriptor{model("gpt-4o", "gpt-4o", types.CategoryLLM)}, existing, DiffLive)

	assert.Empty(t, plan.Insert)
	assert.Empty(t, plan.Refresh)
	assert.Equal(t, []string{"gpt-old"}, plan.Retire)
}

func TestDiffLeavesDisabledEntriesAlone(t *testing.T) {
	existing := []*types.CatalogEntry{
		entry("gpt-retired", types.SourceAuto, false, true),
		entry("gpt-off", types.SourceAuto, false, false),
	}

	plan := Diff("openai", nil, existing, DiffLive)

	assert.True(t, plan.Empty())
}
