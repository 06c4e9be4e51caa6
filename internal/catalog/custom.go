package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"imagestudio/internal/kv"
	"imagestudio/internal/models"
)

// LoadCustomProviders reads the custom provider list from the store. An absent or
// empty key yields no providers.
func LoadCustomProviders(ctx context.Context, store kv.Store) ([]models.CustomProvider, error) {
	raw, ok, err := store.Get(ctx, kv.KeyCustomProviders)
	if err != nil {
		return nil, fmt.Errorf("read custom providers: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var providers []models.CustomProvider
	if err := json.Unmarshal([]byte(raw), &providers); err != nil {
		return nil, fmt.Errorf("parse custom providers: %w", err)
	}
	return providers, nil
}

// SaveCustomProviders writes the custom provider list to the store.
func SaveCustomProviders(ctx context.Context, store kv.Store, providers []models.CustomProvider) error {
	if providers == nil {
		providers = []models.CustomProvider{}
	}
	data, err := json.Marshal(providers)
	if err != nil {
		return fmt.Errorf("encode custom providers: %w", err)
	}
	return store.Set(ctx, kv.KeyCustomProviders, string(data))
}

func findCustomProvider(providers []models.CustomProvider, id string) (*models.CustomProvider, bool) {
	for i := range providers {
		if providers[i].ID == id {
			return &providers[i], true
		}
	}
	return nil, false
}
