package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"imagestudio/internal/catalog"
	"imagestudio/internal/config"
	"imagestudio/internal/repositories"
)

// DbServices aggregates the services backed by the database and the keyring.
// Fields use plural names (e.g., AppSettings) to align with Go conventions
// seen in service/store containers.
type DbServices struct {
	Storage         *LocalStorageService
	AppSettings     AppSettingsService
	CustomProviders CustomProviderService
	ControlPanel    *ControlPanelService
	Settings        *SettingsService
	StorageEvents   *EventEmitterService
}

// NewDbServices constructs the service container. The settings dialog's language setter
// persists the locale through AppSettings.
func NewDbServices(db *gorm.DB, vault *CredentialVault, cfg *config.Config) (*DbServices, error) {
	table, err := catalog.DefaultTable()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &config.Config{ServiceMode: config.ServiceModeLocal}
	}

	storage := NewLocalStorageService(repositories.NewStorageRepository(db), vault)
	appSettings := NewAppSettingsService(repositories.NewAppSettingsRepository(db))

	current, err := appSettings.Get()
	if err != nil {
		return nil, fmt.Errorf("load app settings: %w", err)
	}

	settings := NewSettingsService(storage, current.Locale, func(lang string) error {
		_, err := appSettings.UpdateLocale(lang)
		return err
	})

	return &DbServices{
		Storage:         storage,
		AppSettings:     appSettings,
		CustomProviders: NewCustomProviderService(storage, table),
		ControlPanel:    NewControlPanelService(storage, catalog.NewBuilder(storage, table), cfg.ServiceMode),
		Settings:        settings,
		StorageEvents:   NewEventEmitterService(storage),
	}, nil
}

// StartDbServices hands the Wails context to every service and starts the store
// subscriptions.
func (s *DbServices) StartDbServices(ctx context.Context) {
	s.Storage.Startup(ctx)
	s.AppSettings.Startup(ctx)
	s.CustomProviders.Startup(ctx)
	s.Settings.Startup(ctx)
	s.ControlPanel.Startup(ctx)
	s.StorageEvents.Startup(ctx)
	s.StorageEvents.StartStream()
}

// StopDbServices removes the store subscriptions.
func (s *DbServices) StopDbServices() {
	s.StorageEvents.StopStream()
	s.ControlPanel.Shutdown()
}
