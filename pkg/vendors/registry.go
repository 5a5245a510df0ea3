// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vendors

import (
	_ "embed"
	"fmt"
	"net/http"

	"gopkg.in/yaml.v3"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

//go:embed recommended.yaml
var recommendedYAML []byte

var _ RegistryInterface = (*Registry)(nil)

// Registry is the closed set of supported vendors.
type Registry struct {
	adapters map[string]AdapterInterface
	names    []string
}

func (r *Registry) Get(name string) (AdapterInterface, bool) {
	a, ok := r.adapters[name]
	return a, ok
}

// Names lists the supported vendors in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func loadRecommended(raw []byte) (map[string][]types.ModelDescriptor, error) {
	lists := make(map[string][]types.ModelDescriptor)
	if err := yaml.Unmarshal(raw, &lists); err != nil {
		return nil, fmt.Errorf("failed to parse recommended models: %w", err)
	}

	for vendor, models := range lists {
		for _, m := range models {
			if m.ID == "" || !m.Category.Valid() {
				return nil, fmt.Errorf("invalid recommended model %q for %s", m.ID, vendor)
			}
		}
	}

	return lists, nil
}

func NewRegistry(client *http.Client, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Registry, error) {
	lists, err := loadRecommended(recommendedYAML)
	if err != nil {
		return nil, err
	}

	if client == nil {
		client = http.DefaultClient
	}

	newBase := func(name string) base {
		return base{
			name:        name,
			client:      client,
			recommended: lists[name],
			tracer:      tracer,
			monitor:     monitor,
			logger:      logger,
		}
	}

	r := new(Registry)
	r.adapters = make(map[string]AdapterInterface)

	for _, a := range []AdapterInterface{
		&OpenAIAdapter{base: newBase(OpenAI)},
		&GeminiAdapter{base: newBase(Gemini)},
		&OpenRouterAdapter{base: newBase(OpenRouter)},
		&SiliconFlowAdapter{base: newBase(SiliconFlow)},
	} {
		r.adapters[a.Name()] = a
		r.names = append(r.names, a.Name())
	}

	return r, nil
}
