package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imagestudio/internal/models"
	"imagestudio/internal/services"
	"imagestudio/internal/tests/mocks"
)

func TestAppSettingsService_Get_Success(t *testing.T) {
	expectedSettings := &models.AppSettings{
		ID:      1,
		Version: 1,
		Locale:  "zh",
	}

	mockRepo := &mocks.AppSettingsRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.AppSettings, error) {
			return expectedSettings, nil
		},
	}
	service := services.NewAppSettingsService(mockRepo)

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, expectedSettings, settings)
}

func TestAppSettingsService_Get_RepositoryError(t *testing.T) {
	mockRepo := &mocks.AppSettingsRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.AppSettings, error) {
			return nil, errors.New("database error")
		},
	}
	service := services.NewAppSettingsService(mockRepo)

	_, err := service.Get()
	assert.EqualError(t, err, "database error")
}

func TestAppSettingsService_UpdateLocale_Success(t *testing.T) {
	mockRepo := &mocks.AppSettingsRepositoryMock{
		UpdateFunc: func(ctx context.Context, settings *models.AppSettings) error {
			assert.Equal(t, uint(1), settings.ID)
			assert.Equal(t, "zh", settings.Locale)
			assert.False(t, settings.UpdatedAt.IsZero())
			return nil
		},
	}
	service := services.NewAppSettingsService(mockRepo)
	service.Startup(context.Background())

	updated, err := service.UpdateLocale("zh")
	require.NoError(t, err)
	assert.Equal(t, "zh", updated.Locale)
}

func TestAppSettingsService_UpdateLocale_Empty(t *testing.T) {
	service := services.NewAppSettingsService(&mocks.AppSettingsRepositoryMock{})

	_, err := service.UpdateLocale("")
	assert.EqualError(t, err, "locale is required")
}

func TestAppSettingsService_UpdateLocale_Unknown(t *testing.T) {
	service := services.NewAppSettingsService(&mocks.AppSettingsRepositoryMock{})

	_, err := service.UpdateLocale("fr")
	assert.ErrorIs(t, err, services.ErrUnknownLanguage)
}

func TestAppSettingsService_UpdateLocale_UpdateError(t *testing.T) {
	mockRepo := &mocks.AppSettingsRepositoryMock{
		UpdateFunc: func(ctx context.Context, settings *models.AppSettings) error {
			return errors.New("update error")
		},
	}
	service := services.NewAppSettingsService(mockRepo)

	_, err := service.UpdateLocale("en")
	assert.EqualError(t, err, "update error")
}
