package repositories_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"imagestudio/internal/database"
	"imagestudio/internal/models"
	"imagestudio/internal/repositories"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Init(database.Config{
		Path:     filepath.Join(t.TempDir(), "repo.db"),
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestStorageRepository_SetGetOverwrite(t *testing.T) {
	repo := repositories.NewStorageRepository(openTestDB(t))
	ctx := context.Background()

	entry, err := repo.Get(ctx, "serviceMode")
	require.NoError(t, err)
	assert.Nil(t, entry)

	require.NoError(t, repo.Set(ctx, "serviceMode", "local"))
	require.NoError(t, repo.Set(ctx, "serviceMode", "hydration"))

	entry, err = repo.Get(ctx, "serviceMode")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "hydration", entry.Value)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStorageRepository_Delete(t *testing.T) {
	repo := repositories.NewStorageRepository(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "customProviders", "[]"))

	removed, err := repo.Delete(ctx, "customProviders")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, "customProviders")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestStorageRepository_EmptyKey(t *testing.T) {
	repo := repositories.NewStorageRepository(openTestDB(t))

	_, err := repo.Get(context.Background(), "")
	assert.EqualError(t, err, "storage key is required")
	assert.Error(t, repo.Set(context.Background(), "", "x"))
}

func TestAppSettingsRepository_DefaultsThenUpdate(t *testing.T) {
	repo := repositories.NewAppSettingsRepository(openTestDB(t))
	ctx := context.Background()

	settings, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, repositories.DefaultLocale, settings.Locale)

	require.NoError(t, repo.Update(ctx, &models.AppSettings{Version: 1, Locale: "zh"}))

	settings, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), settings.ID)
	assert.Equal(t, "zh", settings.Locale)
}
