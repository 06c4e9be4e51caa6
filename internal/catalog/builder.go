package catalog

import (
	"context"
	"math"

	"imagestudio/internal/config"
	"imagestudio/internal/events"
	"imagestudio/internal/kv"
	"imagestudio/internal/models"
)

// GuidanceStep is the adjustment granularity of custom guidance ranges.
const GuidanceStep = 0.1

// Builder reads the store on every call; nothing is cached between calls.
type Builder struct {
	store kv.Store
	table *Table
}

func NewBuilder(store kv.Store, table *Table) *Builder {
	return &Builder{store: store, table: table}
}

// Build returns the option groups visible in mode. labels maps a built-in provider's
// label key to its translated text.
func (b *Builder) Build(ctx context.Context, mode string, labels map[string]string) []models.OptionGroup {
	groups := make([]models.OptionGroup, 0)

	showBase := mode == config.ServiceModeLocal || mode == config.ServiceModeHydration
	showCustom := mode == config.ServiceModeServer || mode == config.ServiceModeHydration

	if showBase {
		for _, p := range b.table.Providers() {
			if p.CredentialKey != "" && !kv.Has(ctx, b.store, p.CredentialKey) {
				continue
			}
			group := models.OptionGroup{
				Label:   builtinLabel(p, labels),
				Options: make([]models.Option, 0, len(p.Models)),
			}
			for _, m := range p.Models {
				group.Options = append(group.Options, models.Option{
					Label: m.Label,
					Value: ComposeKey(p.ID, m.ID),
				})
			}
			groups = append(groups, group)
		}
	}

	if showCustom {
		custom, err := LoadCustomProviders(ctx, b.store)
		if err != nil {
			events.Warnf(ctx, "catalog: ignoring custom providers: %v", err)
		}
		for _, cp := range custom {
			if len(cp.Models.Generate) == 0 {
				continue
			}
			group := models.OptionGroup{
				Label:   cp.Name,
				Options: make([]models.Option, 0, len(cp.Models.Generate)),
			}
			for _, m := range cp.Models.Generate {
				group.Options = append(group.Options, models.Option{
					Label: m.Name,
					Value: ComposeKey(cp.ID, m.ID),
				})
			}
			groups = append(groups, group)
		}
	}

	return groups
}

func builtinLabel(p models.BuiltinProvider, labels map[string]string) string {
	if label, ok := labels[p.LabelKey]; ok && label != "" {
		return label
	}
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.ID
}

// Resolve returns the parameter ranges of (provider, model). Custom definitions take
// precedence; otherwise the built-in table is used. Missing ranges are nil.
func (b *Builder) Resolve(ctx context.Context, provider, model string) models.ActiveConfig {
	custom, err := LoadCustomProviders(ctx, b.store)
	if err != nil {
		events.Warnf(ctx, "catalog: resolving %s without custom providers: %v", ComposeKey(provider, model), err)
	}
	if cp, ok := findCustomProvider(custom, provider); ok {
		if cm, ok := cp.FindGenerateModel(model); ok {
			return models.ActiveConfig{
				IsCustom: true,
				Steps:    customSteps(cm.Steps),
				Guidance: customGuidance(cm.Guidance),
			}
		}
	}

	return models.ActiveConfig{
		IsCustom: false,
		Steps:    b.table.StepsConfig(provider, model),
		Guidance: b.table.GuidanceConfig(provider, model),
	}
}

func customSteps(spec *models.RangeSpec) *models.StepsRange {
	if spec == nil {
		return nil
	}
	return &models.StepsRange{
		Min:     roundSteps(spec.Range[0]),
		Max:     roundSteps(spec.Range[1]),
		Default: roundSteps(spec.Default),
	}
}

// roundSteps rounds a stored step count and clamps it to the int32 range.
func roundSteps(v float64) int {
	r := math.Round(v)
	switch {
	case math.IsNaN(r):
		return 0
	case r > math.MaxInt32:
		return math.MaxInt32
	case r < math.MinInt32:
		return math.MinInt32
	}
	return int(r)
}

func customGuidance(spec *models.RangeSpec) *models.GuidanceRange {
	if spec == nil {
		return nil
	}
	return &models.GuidanceRange{
		Min:     spec.Range[0],
		Max:     spec.Range[1],
		Step:    GuidanceStep,
		Default: spec.Default,
	}
}
