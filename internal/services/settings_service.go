package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"imagestudio/internal/events"
	"imagestudio/internal/kv"
	"imagestudio/internal/models"
)

// LanguageSetter applies a language choice. The caller decides whether it persists.
type LanguageSetter func(lang string) error

// builtinCredentialKeys maps provider ids to the store key of their credential.
var builtinCredentialKeys = []struct {
	provider string
	key      string
}{
	{"huggingface", kv.KeyHuggingFaceToken},
	{"gitee", kv.KeyGiteeToken},
	{"modelscope", kv.KeyModelScopeToken},
}

// CredentialKeyFor returns the store key holding provider's credential.
func CredentialKeyFor(provider string) (string, bool) {
	for _, c := range builtinCredentialKeys {
		if c.provider == provider {
			return c.key, true
		}
	}
	return "", false
}

// SettingsService backs the settings dialog.
type SettingsService struct {
	ctxMu       sync.RWMutex
	ctx         context.Context
	store       kv.Store
	setLanguage LanguageSetter

	mu       sync.Mutex
	language string
}

func NewSettingsService(store kv.Store, language string, setLanguage LanguageSetter) *SettingsService {
	if !IsLanguage(language) {
		language = LanguageEnglish
	}
	return &SettingsService{
		ctx:         context.Background(),
		store:       store,
		setLanguage: setLanguage,
		language:    language,
	}
}

func (s *SettingsService) Startup(ctx context.Context) {
	s.ctxMu.Lock()
	s.ctx = ctx
	s.ctxMu.Unlock()
}

func (s *SettingsService) runCtx() context.Context {
	s.ctxMu.RLock()
	defer s.ctxMu.RUnlock()
	return s.ctx
}

// Open loads what the dialog shows. A missing or unreadable token yields "".
func (s *SettingsService) Open() models.SettingsView {
	token := kv.GetOrDefault(s.runCtx(), s.store, kv.KeyHuggingFaceToken, "")

	s.mu.Lock()
	defer s.mu.Unlock()
	return models.SettingsView{Token: token, Language: s.language}
}

// Save trims and stores the primary credential. The format is not validated.
func (s *SettingsService) Save(token string) error {
	if err := s.store.Set(s.runCtx(), kv.KeyHuggingFaceToken, strings.TrimSpace(token)); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	events.Emit(s.runCtx(), events.SettingsSaved, events.NewSuccess("settings saved", nil))
	return nil
}

// SaveProviderToken stores the credential of a built-in provider. An empty token removes it,
// which hides that provider's models again.
func (s *SettingsService) SaveProviderToken(provider, token string) error {
	key, ok := CredentialKeyFor(provider)
	if !ok {
		return fmt.Errorf("provider %s has no credential", provider)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return s.store.Remove(s.runCtx(), key)
	}
	return s.store.Set(s.runCtx(), key, token)
}

// CredentialStatus reports which built-in provider credentials are stored.
func (s *SettingsService) CredentialStatus() []models.CredentialStatus {
	ctx := s.runCtx()
	out := make([]models.CredentialStatus, 0, len(builtinCredentialKeys))
	for _, c := range builtinCredentialKeys {
		value, ok, err := s.store.Get(ctx, c.key)
		if err != nil {
			events.Warnf(ctx, "settings: read %s: %v", c.key, err)
		}
		present := err == nil && ok && value != ""
		status := models.CredentialStatus{Provider: c.provider, Key: c.key, Present: present}
		if present {
			status.Masked = MaskSecret(value)
		}
		out = append(out, status)
	}
	return out
}

// SetLanguage applies lang immediately through the injected setter.
func (s *SettingsService) SetLanguage(lang string) error {
	if !IsLanguage(lang) {
		return ErrUnknownLanguage
	}
	if s.setLanguage != nil {
		if err := s.setLanguage(lang); err != nil {
			return fmt.Errorf("set language: %w", err)
		}
	}

	s.mu.Lock()
	s.language = lang
	s.mu.Unlock()

	events.Emit(s.runCtx(), events.LanguageChanged, events.NewInfo(lang, lang))
	return nil
}

func (s *SettingsService) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}
