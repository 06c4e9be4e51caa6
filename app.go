package main

import (
	"context"
	"fmt"

	"imagestudio/internal/events"
	"imagestudio/internal/models"
	"imagestudio/internal/services"
)

// App struct
type App struct {
	ctx      context.Context
	services *services.DbServices
	dbClose  func() error
}

// BootstrapPayload is everything the frontend needs to render its first frame.
type BootstrapPayload struct {
	Settings     models.SettingsView        `json:"settings"`
	Control      models.ControlState        `json:"control"`
	ModelOptions []models.OptionGroup       `json:"modelOptions"`
	AspectRatios []models.AspectRatioOption `json:"aspectRatios"`
	Credentials  []models.CredentialStatus  `json:"credentials"`
	ServiceMode  string                     `json:"serviceMode"`
}

// NewApp creates a new App application struct
func NewApp(svc *services.DbServices) *App {
	return &App{services: svc}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	if a.services != nil {
		a.services.StopDbServices()
	}

	// Close database connection pool
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			events.Errorf(ctx, "failed to close database: %v", err)
		} else {
			events.Infof(ctx, "database closed")
		}
		a.dbClose = nil
	}
}

// Bootstrap returns the initial settings, selection and catalog. labels carries the
// frontend's translated provider names.
func (a *App) Bootstrap(labels map[string]string) (*BootstrapPayload, error) {
	if a.services == nil {
		return nil, fmt.Errorf("services not available")
	}
	panel := a.services.ControlPanel
	return &BootstrapPayload{
		Settings:     a.services.Settings.Open(),
		ModelOptions: panel.SetLabels(labels),
		Control:      panel.State(),
		AspectRatios: panel.AspectRatioOptions(),
		Credentials:  a.services.Settings.CredentialStatus(),
		ServiceMode:  panel.ServiceMode(),
	}, nil
}

// GetAppSettings returns the current application settings
func (a *App) GetAppSettings() (*models.AppSettings, error) {
	if a.services == nil || a.services.AppSettings == nil {
		return nil, fmt.Errorf("app settings service not available")
	}
	return a.services.AppSettings.Get()
}
