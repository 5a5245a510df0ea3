// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"sort"

	"github.com/canonical/workspace-service/internal/types"
)

// DiffMode tells Diff how much to trust the fetched listing.
type DiffMode int

const (
	// DiffLive applies inserts, refreshes and retirements.
	DiffLive DiffMode = iota
	// DiffFallback is used for curated lists served while the vendor is
	// unreachable: only missing models are inserted.
	DiffFallback
)

func (m DiffMode) String() string {
	if m == DiffFallback {
		return "fallback"
	}
	return "live"
}

// Refresh rewrites an auto entry in place. Revive re-enables an entry that
// an earlier pass retired.
type Refresh struct {
	Model  types.ModelDescriptor
	Revive bool
}

// Plan is the set of writes that brings one vendor's auto entries in line
// with a fetched listing.
type Plan struct {
	Vendor  string
	Mode    DiffMode
	Insert  []types.ModelDescriptor
	Refresh []Refresh
	Retire  []string
}

func (p *Plan) Empty() bool {
	return len(p.Insert) == 0 && len(p.Refresh) == 0 && len(p.Retire) == 0
}

// Diff compares fetched against the existing rows of one vendor. Custom
// entries are never part of the plan, and a model id already owned by a
// custom entry is never inserted as auto.
func Diff(vendor string, fetched []types.ModelDescriptor, existing []*types.CatalogEntry, mode DiffMode) *Plan {
	plan := &Plan{Vendor: vendor, Mode: mode}

	current := make(map[string]*types.CatalogEntry, len(existing))
	for _, e := range existing {
		if e.Vendor != vendor {
			continue
		}
		current[e.ModelID] = e
	}

	seen := make(map[string]struct{}, len(fetched))
	for _, m := range fetched {
		if m.ID == "" {
			continue
		}
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}

		if m.DisplayName == "" {
			m.DisplayName = m.ID
		}
		if !m.Category.Valid() {
			m.Category = types.CategoryLLM
		}

		e, ok := current[m.ID]
		switch {
		case !ok:
			plan.Insert = append(plan.Insert, m)
		case e.Source != types.SourceAuto, mode == DiffFallback:
		default:
			revive := e.RetiredAt != nil
			if revive || e.DisplayName != m.DisplayName || e.Category != m.Category {
				plan.Refresh = append(plan.Refresh, Refresh{Model: m, Revive: revive})
			}
		}
	}

	if mode == DiffLive {
		for id, e := range current {
			if _, ok := seen[id]; ok {
				continue
			}
			// disabled entries are left alone, whether retired or turned off by a user
			if e.Source == types.SourceAuto && e.Enabled {
				plan.Retire = append(plan.Retire, id)
			}
		}
	}

	sort.Strings(plan.Retire)
	sort.Slice(plan.Insert, func(i, j int) bool { return plan.Insert[i].ID < plan.Insert[j].ID })
	sort.Slice(plan.Refresh, func(i, j int) bool { return plan.Refresh[i].Model.ID < plan.Refresh[j].Model.ID })

	return plan
}
