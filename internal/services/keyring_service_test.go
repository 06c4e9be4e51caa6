package services_test

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imagestudio/internal/services"
)

func TestCredentialVault_SetGetRemove(t *testing.T) {
	vault := services.NewCredentialVault(keyring.NewArrayKeyring(nil))

	_, ok, err := vault.Get("giteeToken")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, vault.Set("giteeToken", "secret"))
	v, ok, err := vault.Get("giteeToken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "secret", v)

	keys, err := vault.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"giteeToken"}, keys)

	removed, err := vault.Remove("giteeToken")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = vault.Remove("giteeToken")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCredentialVault_EmptyKey(t *testing.T) {
	vault := services.NewCredentialVault(keyring.NewArrayKeyring(nil))

	_, _, err := vault.Get("")
	assert.EqualError(t, err, "credential key is required")
	assert.Error(t, vault.Set("", "x"))
	_, err = vault.Remove("")
	assert.Error(t, err)
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", services.MaskSecret("  "))
	assert.Equal(t, "****", services.MaskSecret("abc"))
	assert.Equal(t, "****cdef", services.MaskSecret("hf_abcdef"))
}
