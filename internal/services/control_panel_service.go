package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"imagestudio/internal/catalog"
	"imagestudio/internal/config"
	"imagestudio/internal/events"
	"imagestudio/internal/kv"
	"imagestudio/internal/models"
)

var ErrInvalidAspectRatio = errors.New("unknown aspect ratio")

// Fallback parameter values used before any model defines a range.
const (
	defaultSteps         = 9
	defaultGuidanceScale = 3.5
	defaultAspectRatio   = "1:1"
)

var aspectRatioOptions = []models.AspectRatioOption{
	{Value: "1:1", Label: "1:1", Width: 1024, Height: 1024},
	{Value: "16:9", Label: "16:9", Width: 1280, Height: 720},
	{Value: "9:16", Label: "9:16", Width: 720, Height: 1280},
	{Value: "4:3", Label: "4:3", Width: 1152, Height: 864},
	{Value: "3:4", Label: "3:4", Width: 864, Height: 1152},
	{Value: "3:2", Label: "3:2", Width: 1248, Height: 832},
	{Value: "2:3", Label: "2:3", Width: 832, Height: 1248},
}

// ControlPanelService owns the control panel selection. Every selection change resolves
// the active configuration and applies its defaults, for custom and built-in models alike.
type ControlPanelService struct {
	ctx         context.Context
	store       kv.Store
	builder     *catalog.Builder
	defaultMode string

	mu          sync.Mutex
	labels      map[string]string
	provider    string
	model       string
	aspectRatio string
	steps       int
	guidance    float64
	seed        string
	active      models.ActiveConfig
	unsubscribe func()
}

func NewControlPanelService(store kv.Store, builder *catalog.Builder, defaultMode string) *ControlPanelService {
	if !config.IsServiceMode(defaultMode) {
		defaultMode = config.ServiceModeLocal
	}
	return &ControlPanelService{
		ctx:         context.Background(),
		store:       store,
		builder:     builder,
		defaultMode: defaultMode,
		labels:      map[string]string{},
		provider:    "huggingface",
		model:       "z-image-turbo",
		aspectRatio: defaultAspectRatio,
		steps:       defaultSteps,
		guidance:    defaultGuidanceScale,
	}
}

// Startup resolves the initial selection and subscribes to store changes.
func (s *ControlPanelService) Startup(ctx context.Context) {
	s.mu.Lock()
	s.ctx = ctx
	s.applySelectionLocked(s.provider, s.model)
	if s.unsubscribe == nil {
		s.unsubscribe = s.store.Subscribe(s.onStorageChange)
	}
	s.mu.Unlock()
}

// Shutdown drops the store subscription.
func (s *ControlPanelService) Shutdown() {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

func (s *ControlPanelService) onStorageChange(c kv.Change) {
	s.mu.Lock()
	ctx := s.ctx
	if c.Key == kv.KeyCustomProviders {
		// ranges of the current custom model may have changed; values are kept
		s.active = s.builder.Resolve(ctx, s.provider, s.model)
	}
	s.mu.Unlock()

	groups := s.ModelOptions()
	events.Emit(ctx, events.CatalogUpdated, events.NewInfo(c.Key, groups))
}

// ServiceMode returns the stored mode, falling back to the configured default.
func (s *ControlPanelService) ServiceMode() string {
	v, ok, err := s.store.Get(s.ctx, kv.KeyServiceMode)
	if err != nil {
		events.Warnf(s.ctx, "control panel: read service mode: %v", err)
	}
	if err != nil || !ok || !config.IsServiceMode(v) {
		return s.defaultMode
	}
	return v
}

func (s *ControlPanelService) SetServiceMode(mode string) error {
	if !config.IsServiceMode(mode) {
		return fmt.Errorf("service mode must be 'local', 'server', or 'hydration'")
	}
	return s.store.Set(s.ctx, kv.KeyServiceMode, mode)
}

// SetLabels replaces the translated provider labels used by ModelOptions.
func (s *ControlPanelService) SetLabels(labels map[string]string) []models.OptionGroup {
	cp := make(map[string]string, len(labels))
	for k, v := range labels {
		cp[k] = v
	}
	s.mu.Lock()
	s.labels = cp
	s.mu.Unlock()
	return s.ModelOptions()
}

// ModelOptions builds a fresh catalog for the current mode.
func (s *ControlPanelService) ModelOptions() []models.OptionGroup {
	s.mu.Lock()
	labels := s.labels
	s.mu.Unlock()
	return s.builder.Build(s.ctx, s.ServiceMode(), labels)
}

func (s *ControlPanelService) AspectRatioOptions() []models.AspectRatioOption {
	out := make([]models.AspectRatioOption, len(aspectRatioOptions))
	copy(out, aspectRatioOptions)
	return out
}

func (s *ControlPanelService) State() models.ControlState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *ControlPanelService) ActiveConfig() models.ActiveConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// SelectModel applies a "provider:model" selector value. A value without a colon
// leaves the selection unchanged.
func (s *ControlPanelService) SelectModel(value string) models.ControlState {
	provider, model, ok := catalog.SplitKey(value)

	s.mu.Lock()
	if ok {
		s.applySelectionLocked(provider, model)
	}
	state := s.stateLocked()
	s.mu.Unlock()

	if ok {
		s.emitState(state)
	}
	return state
}

// applySelectionLocked stores the pair, re-resolves its configuration and pushes
// the resolved defaults into steps and guidance.
func (s *ControlPanelService) applySelectionLocked(provider, model string) {
	s.provider = provider
	s.model = model
	s.active = s.builder.Resolve(s.ctx, provider, model)
	if r := s.active.Steps; r != nil {
		s.steps = r.Default
	}
	if r := s.active.Guidance; r != nil {
		s.guidance = r.Default
	}
}

func (s *ControlPanelService) SetAspectRatio(value string) (models.ControlState, error) {
	for _, opt := range aspectRatioOptions {
		if opt.Value == value {
			s.mu.Lock()
			s.aspectRatio = value
			state := s.stateLocked()
			s.mu.Unlock()
			s.emitState(state)
			return state, nil
		}
	}
	return s.State(), fmt.Errorf("%w: %s", ErrInvalidAspectRatio, value)
}

// SetSteps clamps n into the active step range when there is one.
func (s *ControlPanelService) SetSteps(n int) models.ControlState {
	s.mu.Lock()
	if r := s.active.Steps; r != nil {
		n = min(max(n, r.Min), r.Max)
	}
	s.steps = n
	state := s.stateLocked()
	s.mu.Unlock()
	s.emitState(state)
	return state
}

// SetGuidance clamps x into the active guidance range and snaps it to the range step.
func (s *ControlPanelService) SetGuidance(x float64) models.ControlState {
	s.mu.Lock()
	if r := s.active.Guidance; r != nil {
		x = snapGuidance(x, r)
	}
	s.guidance = x
	state := s.stateLocked()
	s.mu.Unlock()
	s.emitState(state)
	return state
}

func snapGuidance(x float64, r *models.GuidanceRange) float64 {
	if r.Step > 0 {
		x = r.Min + math.Round((x-r.Min)/r.Step)*r.Step
		// keep one-decimal steps free of float noise
		x = math.Round(x*1e6) / 1e6
	}
	return math.Min(math.Max(x, r.Min), r.Max)
}

func (s *ControlPanelService) RandomizeSeed() string {
	return s.setSeed(catalog.RandomSeed())
}

func (s *ControlPanelService) AdjustSeed(delta int64) string {
	s.mu.Lock()
	current := s.seed
	s.mu.Unlock()
	return s.setSeed(catalog.AdjustSeed(current, delta))
}

// SetSeed stores free-form seed text; an empty seed means "random at generation time".
func (s *ControlPanelService) SetSeed(text string) string {
	return s.setSeed(text)
}

func (s *ControlPanelService) setSeed(seed string) string {
	s.mu.Lock()
	s.seed = seed
	state := s.stateLocked()
	s.mu.Unlock()
	s.emitState(state)
	return seed
}

func (s *ControlPanelService) stateLocked() models.ControlState {
	return models.ControlState{
		Provider:      s.provider,
		Model:         s.model,
		SelectValue:   catalog.ComposeKey(s.provider, s.model),
		AspectRatio:   s.aspectRatio,
		Steps:         s.steps,
		GuidanceScale: s.guidance,
		Seed:          s.seed,
		Config:        s.active,
	}
}

func (s *ControlPanelService) emitState(state models.ControlState) {
	events.Emit(s.ctx, events.ControlChanged, events.NewInfo(state.SelectValue, state))
}
