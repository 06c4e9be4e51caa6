package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"imagestudio/internal/catalog"
	"imagestudio/internal/events"
	"imagestudio/internal/kv"
	"imagestudio/internal/models"
)

type CustomProviderService interface {
	Startup(ctx context.Context)
	List() ([]models.CustomProvider, error)
	Get(id string) (*models.CustomProvider, error)
	Upsert(provider models.CustomProvider) (*models.CustomProvider, error)
	Remove(id string) error
}

type customProviderService struct {
	store   kv.Store
	builtin *catalog.Table
	mu      sync.Mutex

	ctxMu sync.RWMutex
	ctx   context.Context
}

// NewCustomProviderService manages the custom provider list kept in store. Ids of
// built-in providers are reserved when builtin is non-nil.
func NewCustomProviderService(store kv.Store, builtin *catalog.Table) CustomProviderService {
	return &customProviderService{ctx: context.Background(), store: store, builtin: builtin}
}

func (s *customProviderService) Startup(ctx context.Context) {
	s.ctxMu.Lock()
	s.ctx = ctx
	s.ctxMu.Unlock()
}

func (s *customProviderService) runCtx() context.Context {
	s.ctxMu.RLock()
	defer s.ctxMu.RUnlock()
	return s.ctx
}

func (s *customProviderService) List() ([]models.CustomProvider, error) {
	providers, err := catalog.LoadCustomProviders(s.runCtx(), s.store)
	if err != nil {
		return nil, err
	}
	if providers == nil {
		providers = []models.CustomProvider{}
	}
	return providers, nil
}

func (s *customProviderService) Get(id string) (*models.CustomProvider, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("provider id is required")
	}
	providers, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range providers {
		if providers[i].ID == id {
			return &providers[i], nil
		}
	}
	return nil, fmt.Errorf("custom provider %s not found", id)
}

// Upsert inserts provider, or replaces the entry with the same id. An empty id is
// assigned a new uuid.
func (s *customProviderService) Upsert(provider models.CustomProvider) (*models.CustomProvider, error) {
	provider.ID = strings.TrimSpace(provider.ID)
	provider.Name = strings.TrimSpace(provider.Name)
	if provider.ID == "" {
		provider.ID = uuid.NewString()
	}
	if err := s.validate(provider); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := s.runCtx()
	providers, err := catalog.LoadCustomProviders(ctx, s.store)
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range providers {
		if providers[i].ID == provider.ID {
			providers[i] = provider
			replaced = true
			break
		}
	}
	if !replaced {
		providers = append(providers, provider)
	}

	if err := catalog.SaveCustomProviders(ctx, s.store, providers); err != nil {
		return nil, fmt.Errorf("save custom provider %s: %w", provider.ID, err)
	}
	events.Emit(ctx, events.ProvidersChanged, events.NewSuccess("custom provider saved", provider.ID))
	return &provider, nil
}

func (s *customProviderService) Remove(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("provider id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := s.runCtx()
	providers, err := catalog.LoadCustomProviders(ctx, s.store)
	if err != nil {
		return err
	}
	kept := make([]models.CustomProvider, 0, len(providers))
	for _, p := range providers {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(providers) {
		return fmt.Errorf("custom provider %s not found", id)
	}

	if err := catalog.SaveCustomProviders(ctx, s.store, kept); err != nil {
		return fmt.Errorf("remove custom provider %s: %w", id, err)
	}
	events.Emit(ctx, events.ProvidersChanged, events.NewSuccess("custom provider removed", id))
	return nil
}

func (s *customProviderService) validate(p models.CustomProvider) error {
	if p.Name == "" {
		return fmt.Errorf("provider name is required")
	}
	if strings.Contains(p.ID, ":") {
		return fmt.Errorf("provider id %q must not contain ':'", p.ID)
	}
	if s.builtin != nil {
		for _, b := range s.builtin.Providers() {
			if b.ID == p.ID {
				return fmt.Errorf("provider id %s is reserved", p.ID)
			}
		}
	}

	seen := make(map[string]bool, len(p.Models.Generate))
	for _, m := range p.Models.Generate {
		if strings.TrimSpace(m.ID) == "" {
			return fmt.Errorf("model id is required")
		}
		if seen[m.ID] {
			return fmt.Errorf("duplicate model id %s", m.ID)
		}
		seen[m.ID] = true
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("model %s: name is required", m.ID)
		}
		if err := validateRangeSpec("steps", m.Steps); err != nil {
			return fmt.Errorf("model %s: %w", m.ID, err)
		}
		if err := validateRangeSpec("guidance", m.Guidance); err != nil {
			return fmt.Errorf("model %s: %w", m.ID, err)
		}
	}
	return nil
}

func validateRangeSpec(name string, spec *models.RangeSpec) error {
	if spec == nil {
		return nil
	}
	lo, hi := spec.Range[0], spec.Range[1]
	if lo > hi {
		return fmt.Errorf("%s range [%g, %g] is inverted", name, lo, hi)
	}
	if spec.Default < lo || spec.Default > hi {
		return fmt.Errorf("%s default %g outside [%g, %g]", name, spec.Default, lo, hi)
	}
	return nil
}
