package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/99designs/keyring"

	"imagestudio/internal/config"
)

const serviceName = "imagestudio"

// CredentialVault keeps provider credentials in the OS keyring instead of plain storage.
type CredentialVault struct {
	mu   sync.Mutex
	ring keyring.Keyring
}

func NewCredentialVault(ring keyring.Keyring) *CredentialVault {
	return &CredentialVault{ring: ring}
}

// OpenCredentialVault opens the keyring selected by cfg. An empty backend lets the
// keyring library pick the platform default.
func OpenCredentialVault(cfg *config.Config) (*CredentialVault, error) {
	kc := keyring.Config{
		ServiceName:              serviceName,
		KeychainName:             serviceName,
		KeychainTrustApplication: true,
		LibSecretCollectionName:  serviceName,
		KWalletAppID:             serviceName,
		KWalletFolder:            serviceName,
		WinCredPrefix:            serviceName,
		FileDir:                  "~/.imagestudio/keyring",
		FilePasswordFunc:         keyring.FixedStringPrompt(""),
	}
	if cfg != nil {
		if cfg.KeyringBackend != "" {
			kc.AllowedBackends = []keyring.BackendType{keyring.BackendType(cfg.KeyringBackend)}
		}
		if cfg.KeyringDir != "" {
			kc.FileDir = cfg.KeyringDir
		}
		kc.FilePasswordFunc = keyring.FixedStringPrompt(cfg.KeyringPassword)
	}

	ring, err := keyring.Open(kc)
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return NewCredentialVault(ring), nil
}

func (v *CredentialVault) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.New("credential key is required")
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	item, err := v.ring.Get(key)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read credential %s: %w", key, err)
	}
	return string(item.Data), true, nil
}

func (v *CredentialVault) Set(key, value string) error {
	if key == "" {
		return errors.New("credential key is required")
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	err := v.ring.Set(keyring.Item{
		Key:         key,
		Data:        []byte(value),
		Label:       key,
		Description: "Credential used by imagestudio",
	})
	if err != nil {
		return fmt.Errorf("store credential %s: %w", key, err)
	}
	return nil
}

// Remove reports whether the credential existed.
func (v *CredentialVault) Remove(key string) (bool, error) {
	if key == "" {
		return false, errors.New("credential key is required")
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	// Not every backend reports a missing key on Remove.
	if _, err := v.ring.Get(key); errors.Is(err, keyring.ErrKeyNotFound) {
		return false, nil
	}
	err := v.ring.Remove(key)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("remove credential %s: %w", key, err)
	}
	return true, nil
}

func (v *CredentialVault) Keys() ([]string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ring.Keys()
}

// MaskSecret keeps the last four characters of a secret.
func MaskSecret(secret string) string {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}
