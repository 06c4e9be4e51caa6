package services_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"imagestudio/internal/config"
	"imagestudio/internal/database"
	"imagestudio/internal/kv"
	"imagestudio/internal/models"
	"imagestudio/internal/services"
)

func TestDbServices_EndToEnd(t *testing.T) {
	db, err := database.Init(database.Config{
		Path:     filepath.Join(t.TempDir(), "studio.db"),
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	ring := keyring.NewArrayKeyring(nil)
	svc, err := services.NewDbServices(db, services.NewCredentialVault(ring), &config.Config{ServiceMode: config.ServiceModeHydration})
	require.NoError(t, err)
	svc.StartDbServices(context.Background())
	defer svc.StopDbServices()
	assert.True(t, svc.StorageEvents.Running())

	// settings dialog
	assert.Equal(t, models.SettingsView{Token: "", Language: "en"}, svc.Settings.Open())
	require.NoError(t, svc.Settings.Save("  hf_secret  "))
	item, err := ring.Get(kv.KeyHuggingFaceToken)
	require.NoError(t, err)
	assert.Equal(t, "hf_secret", string(item.Data))

	require.NoError(t, svc.Settings.SetLanguage("zh"))
	stored, err := svc.AppSettings.Get()
	require.NoError(t, err)
	assert.Equal(t, "zh", stored.Locale)

	// catalog follows credentials and custom providers
	assert.Len(t, svc.ControlPanel.ModelOptions(), 1)
	require.NoError(t, svc.Settings.SaveProviderToken("modelscope", "ms"))
	_, err = svc.CustomProviders.Upsert(models.CustomProvider{
		ID:   "forge",
		Name: "Forge",
		Models: models.CustomModelSet{Generate: []models.CustomModel{
			{ID: "sdxl", Name: "SDXL", Steps: &models.RangeSpec{Range: [2]float64{10, 40}, Default: 25}},
		}},
	})
	require.NoError(t, err)

	groups := svc.ControlPanel.ModelOptions()
	require.Len(t, groups, 3)
	assert.Equal(t, "ModelScope", groups[1].Label)
	assert.Equal(t, "Forge", groups[2].Label)

	state := svc.ControlPanel.SelectModel("forge:sdxl")
	assert.True(t, state.Config.IsCustom)
	assert.Equal(t, 25, state.Steps)

	// the custom provider list is plain data in sqlite, never in the keyring
	_, err = ring.Get(kv.KeyCustomProviders)
	assert.ErrorIs(t, err, keyring.ErrKeyNotFound)

	// a new container over the same database sees the persisted locale
	again, err := services.NewDbServices(db, services.NewCredentialVault(ring), nil)
	require.NoError(t, err)
	assert.Equal(t, "zh", again.Settings.Language())
	assert.Equal(t, "hf_secret", again.Settings.Open().Token)
}
