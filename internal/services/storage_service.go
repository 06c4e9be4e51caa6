package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"imagestudio/internal/kv"
	"imagestudio/internal/repositories"
)

// credentialKeys are routed to the keyring rather than sqlite.
var credentialKeys = map[string]bool{
	kv.KeyHuggingFaceToken: true,
	kv.KeyGiteeToken:       true,
	kv.KeyModelScopeToken:  true,
}

// IsCredentialKey reports whether key names a provider credential.
func IsCredentialKey(key string) bool {
	return credentialKeys[key]
}

// LocalStorageService is the application's kv.Store: plain values live in sqlite,
// credentials in the keyring. It is also bound to the frontend with a
// localStorage-like API.
type LocalStorageService struct {
	ctxMu    sync.RWMutex
	ctx      context.Context
	entries  repositories.StorageRepository
	vault    *CredentialVault
	notifier kv.Notifier
}

var _ kv.Store = (*LocalStorageService)(nil)

func NewLocalStorageService(entries repositories.StorageRepository, vault *CredentialVault) *LocalStorageService {
	return &LocalStorageService{
		ctx:     context.Background(),
		entries: entries,
		vault:   vault,
	}
}

func (s *LocalStorageService) Startup(ctx context.Context) {
	s.ctxMu.Lock()
	s.ctx = ctx
	s.ctxMu.Unlock()
}

func (s *LocalStorageService) runCtx() context.Context {
	s.ctxMu.RLock()
	defer s.ctxMu.RUnlock()
	return s.ctx
}

func (s *LocalStorageService) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, fmt.Errorf("storage key is required")
	}
	if IsCredentialKey(key) && s.vault != nil {
		return s.vault.Get(key)
	}
	entry, err := s.entries.Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	if entry == nil {
		return "", false, nil
	}
	return entry.Value, true, nil
}

func (s *LocalStorageService) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("storage key is required")
	}
	var err error
	if IsCredentialKey(key) && s.vault != nil {
		err = s.vault.Set(key, value)
	} else {
		err = s.entries.Set(ctx, key, value)
	}
	if err != nil {
		return err
	}
	s.notifier.Publish(kv.Change{Key: key})
	return nil
}

func (s *LocalStorageService) Remove(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("storage key is required")
	}
	var (
		removed bool
		err     error
	)
	if IsCredentialKey(key) && s.vault != nil {
		removed, err = s.vault.Remove(key)
	} else {
		removed, err = s.entries.Delete(ctx, key)
	}
	if err != nil {
		return err
	}
	if removed {
		s.notifier.Publish(kv.Change{Key: key, Removed: true})
	}
	return nil
}

func (s *LocalStorageService) Subscribe(fn kv.ChangeFunc) func() {
	return s.notifier.Subscribe(fn)
}

// GetItem mirrors localStorage.getItem: an absent key yields "".
func (s *LocalStorageService) GetItem(key string) (string, error) {
	v, _, err := s.Get(s.runCtx(), key)
	return v, err
}

func (s *LocalStorageService) SetItem(key, value string) error {
	return s.Set(s.runCtx(), key, value)
}

func (s *LocalStorageService) RemoveItem(key string) error {
	return s.Remove(s.runCtx(), key)
}

// Keys lists every stored key, credentials included, in sorted order.
func (s *LocalStorageService) Keys() ([]string, error) {
	entries, err := s.entries.List(s.runCtx())
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	if s.vault != nil {
		stored, err := s.vault.Keys()
		if err != nil {
			return nil, err
		}
		for _, k := range stored {
			if IsCredentialKey(k) {
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys, nil
}
