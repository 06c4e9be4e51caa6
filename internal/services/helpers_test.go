package services_test

import (
	"testing"

	"github.com/99designs/keyring"

	"imagestudio/internal/services"
	"imagestudio/internal/tests/mocks"
)

func newTestStorage(t *testing.T) (*services.LocalStorageService, *mocks.StorageRepositoryMock, *keyring.ArrayKeyring) {
	t.Helper()
	repo := &mocks.StorageRepositoryMock{}
	ring := keyring.NewArrayKeyring(nil)
	return services.NewLocalStorageService(repo, services.NewCredentialVault(ring)), repo, ring
}
