package services

import (
	"context"
	"errors"
	"time"

	"imagestudio/internal/models"
	"imagestudio/internal/repositories"
)

// Supported interface languages.
const (
	LanguageEnglish = "en"
	LanguageChinese = "zh"
)

var ErrUnknownLanguage = errors.New("language must be 'en' or 'zh'")

// IsLanguage reports whether lang is a supported locale tag.
func IsLanguage(lang string) bool {
	return lang == LanguageEnglish || lang == LanguageChinese
}

type AppSettingsService interface {
	Get() (*models.AppSettings, error)
	UpdateLocale(locale string) (*models.AppSettings, error)
	Startup(ctx context.Context)
}

type appSettingsService struct {
	appSettings repositories.AppSettingsRepository
	context     context.Context
}

func (s *appSettingsService) Startup(ctx context.Context) {
	s.context = ctx
}

func NewAppSettingsService(appSettings repositories.AppSettingsRepository) AppSettingsService {
	return &appSettingsService{appSettings: appSettings, context: context.Background()}
}

func (s *appSettingsService) Get() (*models.AppSettings, error) {
	return s.appSettings.Get(s.context)
}

func (s *appSettingsService) UpdateLocale(locale string) (*models.AppSettings, error) {
	if locale == "" {
		return nil, errors.New("locale is required")
	}
	if !IsLanguage(locale) {
		return nil, ErrUnknownLanguage
	}

	current, err := s.appSettings.Get(s.context)
	if err != nil {
		return nil, err
	}

	current.Locale = locale
	current.UpdatedAt = time.Now()

	if err := s.appSettings.Update(s.context, current); err != nil {
		return nil, err
	}

	return current, nil
}
