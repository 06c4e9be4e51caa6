// Package catalog builds the grouped model options shown in the control panel and
// resolves the parameter ranges of a selected (provider, model) pair.
package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"imagestudio/internal/assets"
	"imagestudio/internal/models"
)

// Table is the static list of built-in providers and models.
type Table struct {
	providers []models.BuiltinProvider
	index     map[string]map[string]models.BuiltinModel
}

type rawTable struct {
	Providers []models.BuiltinProvider `json:"providers"`
}

// DefaultTable parses the embedded built-in catalog.
func DefaultTable() (*Table, error) {
	return LoadTable(assets.ModelsData)
}

// LoadTable parses and validates a built-in catalog document.
func LoadTable(data []byte) (*Table, error) {
	var parsed rawTable
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse models asset: %w", err)
	}

	t := &Table{index: make(map[string]map[string]models.BuiltinModel, len(parsed.Providers))}
	for _, p := range parsed.Providers {
		p.ID = strings.TrimSpace(p.ID)
		p.DisplayName = strings.TrimSpace(p.DisplayName)
		if p.ID == "" {
			return nil, fmt.Errorf("built-in provider without id")
		}
		if _, dup := t.index[p.ID]; dup {
			return nil, fmt.Errorf("duplicate built-in provider %s", p.ID)
		}
		byModel := make(map[string]models.BuiltinModel, len(p.Models))
		for i, m := range p.Models {
			m.ID = strings.TrimSpace(m.ID)
			if m.ID == "" {
				return nil, fmt.Errorf("provider %s: model without id", p.ID)
			}
			if _, dup := byModel[m.ID]; dup {
				return nil, fmt.Errorf("provider %s: duplicate model %s", p.ID, m.ID)
			}
			if err := validateBuiltinRanges(m); err != nil {
				return nil, fmt.Errorf("provider %s model %s: %w", p.ID, m.ID, err)
			}
			p.Models[i] = m
			byModel[m.ID] = m
		}
		t.index[p.ID] = byModel
		t.providers = append(t.providers, p)
	}
	return t, nil
}

func validateBuiltinRanges(m models.BuiltinModel) error {
	if s := m.Steps; s != nil && (s.Min > s.Max || s.Default < s.Min || s.Default > s.Max) {
		return fmt.Errorf("steps default %d outside [%d, %d]", s.Default, s.Min, s.Max)
	}
	if g := m.Guidance; g != nil {
		if g.Min > g.Max || g.Default < g.Min || g.Default > g.Max {
			return fmt.Errorf("guidance default %g outside [%g, %g]", g.Default, g.Min, g.Max)
		}
		if g.Step <= 0 {
			return fmt.Errorf("guidance step must be positive")
		}
	}
	return nil
}

// Providers returns the built-in providers in display order.
func (t *Table) Providers() []models.BuiltinProvider {
	out := make([]models.BuiltinProvider, len(t.providers))
	copy(out, t.providers)
	return out
}

// Lookup finds a built-in model.
func (t *Table) Lookup(provider, model string) (models.BuiltinModel, bool) {
	m, ok := t.index[provider][model]
	return m, ok
}

// StepsConfig returns a copy of the built-in step range, or nil.
func (t *Table) StepsConfig(provider, model string) *models.StepsRange {
	m, ok := t.Lookup(provider, model)
	if !ok || m.Steps == nil {
		return nil
	}
	cp := *m.Steps
	return &cp
}

// GuidanceConfig returns a copy of the built-in guidance range, or nil.
func (t *Table) GuidanceConfig(provider, model string) *models.GuidanceRange {
	m, ok := t.Lookup(provider, model)
	if !ok || m.Guidance == nil {
		return nil
	}
	cp := *m.Guidance
	return &cp
}
