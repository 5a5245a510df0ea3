// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vendors

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	logger := logging.NewNoopLogger()
	r, err := NewRegistry(http.DefaultClient, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("vendors-test", logger), logger)
	require.NoError(t, err)

	return r
}

func newVendorServer(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return srv.URL
}

func adapter(t *testing.T, name string) AdapterInterface {
	t.Helper()

	a, ok := newTestRegistry(t).Get(name)
	require.True(t, ok, "vendor %s not registered", name)

	return a
}

func ids(models []types.ModelDescriptor) []string {
	out := make([]string, 0, len(models))
	for _, m := range models {
		out = append(out, m.ID)
	}
	return out
}

func byID(models []types.ModelDescriptor, id string) (types.ModelDescriptor, bool) {
	for _, m := range models {
		if m.ID == id {
			return m, true
		}
	}
	return types.ModelDescriptor{}, false
}

func TestRegistryNames(t *testing.T) {
	r := newTestRegistry(t)

	assert.Equal(t, []string{OpenAI, Gemini, OpenRouter, SiliconFlow}, r.Names())

	_, ok := r.Get("anthropic")
	assert.False(t, ok)
}

func TestLoadRecommendedRejectsUnknownCategory(t *testing.T) {
	_, err := loadRecommended([]byte("openai:\n  - {id: x, name: X, category: video}\n"))
	assert.Error(t, err)

	lists, err := loadRecommended(recommendedYAML)
	require.NoError(t, err)
	for _, name := range []string{OpenAI, Gemini, OpenRouter, SiliconFlow} {
		assert.NotEmpty(t, lists[name], name)
	}
}

func TestOpenAIGetModels(t *testing.T) {
	url := newVendorServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"data":[
			{"id":"gpt-4o"},
			{"id":"text-embedding-3-small"},
			{"id":"tts-1"},
			{"id":"whisper-1"},
			{"id":"dall-e-3"},
			{"id":"gpt-4o"}
		]}`))
	})

	models, err := adapter(t, OpenAI).GetModels(context.Background(), &Config{APIKey: "sk-test", BaseURL: url + "/"})
	require.NoError(t, err)

	assert.Equal(t, []string{"gpt-4o", "text-embedding-3-small", "tts-1", "whisper-1"}, ids(models))

	m, _ := byID(models, "text-embedding-3-small")
	assert.Equal(t, types.CategoryEmbedding, m.Category)
	m, _ = byID(models, "tts-1")
	assert.Equal(t, types.CategoryTTS, m.Category)
	m, _ = byID(models, "whisper-1")
	assert.Equal(t, types.CategorySpeechToText, m.Category)
}

func TestGetModelsEmptyListingFallsBack(t *testing.T) {
	testCases := []struct {
		name   string
		vendor string
		body   string
	}{
		{name: "openai filtered to nothing", vendor: OpenAI, body: `{"data":[{"id":"dall-e-3"}]}`},
		{name: "openai empty", vendor: OpenAI, body: `{"data":[]}`},
		{name: "gemini empty", vendor: Gemini, body: `{"models":[]}`},
		{name: "openrouter empty", vendor: OpenRouter, body: `{"data":[]}`},
		{name: "siliconflow empty", vendor: SiliconFlow, body: `{}`},
		{name: "siliconflow ids missing", vendor: SiliconFlow, body: `{"data":[{"id":""}]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			url := newVendorServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			})

			curated, err := loadRecommended(recommendedYAML)
			require.NoError(t, err)

			models, err := adapter(t, tc.vendor).GetModels(context.Background(), &Config{APIKey: "sk-test", BaseURL: url})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrVendorUnreachable)
			assert.False(t, errors.Is(err, ErrInvalidCredential))
			assert.NotEmpty(t, models)
			assert.Equal(t, ids(curated[tc.vendor]), ids(models))
		})
	}
}

func TestGetModelsFailures(t *testing.T) {
	testCases := []struct {
		name              string
		status            int
		invalidCredential bool
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, invalidCredential: true},
		{name: "forbidden", status: http.StatusForbidden, invalidCredential: true},
		{name: "server error", status: http.StatusBadGateway},
	}

	for _, vendor := range []string{OpenAI, Gemini, OpenRouter, SiliconFlow} {
		for _, tc := range testCases {
			t.Run(vendor+" "+tc.name, func(t *testing.T) {
				url := newVendorServer(t, func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tc.status)
				})

				models, err := adapter(t, vendor).GetModels(context.Background(), &Config{APIKey: "secret-key", BaseURL: url})

				require.Error(t, err)
				assert.ErrorIs(t, err, ErrVendorUnreachable)
				assert.Equal(t, tc.invalidCredential, errors.Is(err, ErrInvalidCredential))
				assert.NotContains(t, err.Error(), "secret-key")
				assert.NotEmpty(t, models, "fallback list expected")
			})
		}
	}
}

func TestGetModelsMissingKey(t *testing.T) {
	for _, vendor := range []string{OpenAI, Gemini, OpenRouter, SiliconFlow} {
		models, err := adapter(t, vendor).GetModels(context.Background(), &Config{})
		assert.ErrorIs(t, err, ErrInvalidCredential, vendor)
		assert.Nil(t, models, vendor)
	}
}

func TestValidate(t *testing.T) {
	ok := newVendorServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	denied := newVendorServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	for _, vendor := range []string{OpenAI, Gemini, OpenRouter, SiliconFlow} {
		a := adapter(t, vendor)

		assert.True(t, a.Validate(context.Background(), &Config{APIKey: "k", BaseURL: ok}), vendor)
		assert.False(t, a.Validate(context.Background(), &Config{APIKey: "k", BaseURL: denied}), vendor)
		assert.False(t, a.Validate(context.Background(), &Config{BaseURL: ok}), vendor)
		assert.False(t, a.Validate(context.Background(), &Config{APIKey: "k", BaseURL: "http://127.0.0.1:1"}), vendor)
	}
}

func TestGeminiGetModels(t *testing.T) {
	url := newVendorServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		assert.Equal(t, "g-key", r.URL.Query().Get("key"))

		_, _ = w.Write([]byte(`{"models":[
			{"name":"models/gemini-2.0-flash","displayName":"Gemini 2.0 Flash","supportedGenerationMethods":["generateContent"]},
			{"name":"models/text-embedding-004","displayName":"Text Embedding 004","supportedGenerationMethods":["embedContent"]},
			{"name":"models/gemini-speech-preview","supportedGenerationMethods":["generateContent"]}
		]}`))
	})

	models, err := adapter(t, Gemini).GetModels(context.Background(), &Config{APIKey: "g-key", BaseURL: url})
	require.NoError(t, err)

	m, ok := byID(models, "gemini-2.0-flash")
	require.True(t, ok)
	assert.Equal(t, "Gemini 2.0 Flash", m.DisplayName)
	assert.Equal(t, types.CategoryLLM, m.Category)

	m, _ = byID(models, "text-embedding-004")
	assert.Equal(t, types.CategoryEmbedding, m.Category)

	m, _ = byID(models, "gemini-speech-preview")
	assert.Equal(t, types.CategorySpeechToText, m.Category)
	assert.Equal(t, "gemini-speech-preview", m.DisplayName)

	// curated entries are merged in once
	assert.Contains(t, ids(models), "gemini-1.5-pro")
	count := 0
	for _, id := range ids(models) {
		if id == "gemini-2.0-flash" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestOpenRouterGetModels(t *testing.T) {
	url := newVendorServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer or-key", r.Header.Get("Authorization"))
		assert.Equal(t, "https://example.com", r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "Workspace", r.Header.Get("X-Title"))

		_, _ = w.Write([]byte(`{"data":[
			{"id":"openai/text-embedding-3-small","name":"Embedding"},
			{"id":"cohere/rerank-v3","name":"Rerank"},
			{"slug":"openai/tts-1"},
			{"id":"openai/whisper-1"},
			{"id":"anthropic/claude-3.5-sonnet","name":"Claude 3.5 Sonnet"}
		]}`))
	})

	cfg := &Config{APIKey: "or-key", BaseURL: url, AppName: "Workspace", SiteURL: "https://example.com"}
	models, err := adapter(t, OpenRouter).GetModels(context.Background(), cfg)
	require.NoError(t, err)

	expected := map[string]types.ModelCategory{
		"openai/text-embedding-3-small": types.CategoryEmbedding,
		"cohere/rerank-v3":              types.CategoryRerank,
		"openai/tts-1":                  types.CategoryTTS,
		"openai/whisper-1":              types.CategorySpeechToText,
		"anthropic/claude-3.5-sonnet":   types.CategoryLLM,
	}
	for id, category := range expected {
		m, ok := byID(models, id)
		require.True(t, ok, id)
		assert.Equal(t, category, m.Category, id)
	}
}

func TestSiliconFlowGetModels(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "data key", body: `{"data":[{"id":"BAAI/bge-m3"},{"id":"FunAudioLLM/SenseVoiceSmall-asr"},{"id":"Qwen/Qwen2.5-7B-Instruct"}]}`},
		{name: "models key", body: `{"models":[{"id":"BAAI/bge-m3"},{"id":"FunAudioLLM/SenseVoiceSmall-asr"},{"id":"Qwen/Qwen2.5-7B-Instruct"}]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			url := newVendorServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			})

			models, err := adapter(t, SiliconFlow).GetModels(context.Background(), &Config{APIKey: "sf", BaseURL: url})
			require.NoError(t, err)

			m, ok := byID(models, "FunAudioLLM/SenseVoiceSmall-asr")
			require.True(t, ok)
			assert.Equal(t, types.CategorySpeechToText, m.Category)

			m, _ = byID(models, "Qwen/Qwen2.5-7B-Instruct")
			assert.Equal(t, types.CategoryLLM, m.Category)
		})
	}
}

func TestSiliconFlowCategory(t *testing.T) {
	assert.Equal(t, types.CategoryEmbedding, siliconFlowCategory("BAAI/bge-embed"))
	assert.Equal(t, types.CategoryRerank, siliconFlowCategory("BAAI/bge-reranker-v2-m3"))
	assert.Equal(t, types.CategoryTTS, siliconFlowCategory("fishaudio/fish-tts"))
	assert.Equal(t, types.CategorySpeechToText, siliconFlowCategory("openai/whisper-large"))
}

func TestConfigParse(t *testing.T) {
	cfg, err := ParseConfig(`{"apiKey":"k","baseUrl":"https://proxy.local/v1/"}`)
	require.NoError(t, err)
	assert.Equal(t, "https://proxy.local/v1", cfg.baseURL(openAIDefaultBase))

	raw, err := cfg.Marshal()
	require.NoError(t, err)
	assert.JSONEq(t, `{"apiKey":"k","baseUrl":"https://proxy.local/v1/"}`, raw)

	_, err = ParseConfig("not json")
	assert.Error(t, err)

	assert.Equal(t, openAIDefaultBase, (&Config{}).baseURL(openAIDefaultBase))
}
