package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEncryptedStore(t *testing.T) *EncryptedFileStore {
	t.Helper()
	t.Setenv("INSTAOSINT_PASSPHRASE", "test-passphrase")

	store, err := NewEncryptedFileStore(filepath.Join(t.TempDir(), "credentials.enc"))
	require.NoError(t, err)
	return store
}

func TestEncryptedStoreRoundTrip(t *testing.T) {
	store := newTestEncryptedStore(t)

	require.NoError(t, store.Store(validAccount()))

	account, err := store.Retrieve("operator")
	require.NoError(t, err)
	assert.Equal(t, "session-id-value", account.SessionID)
	assert.Equal(t, "csrf-token-value", account.CSRFToken)
}

func TestEncryptedStoreFileIsOpaque(t *testing.T) {
	store := newTestEncryptedStore(t)
	require.NoError(t, store.Store(validAccount()))

	content, err := os.ReadFile(store.path)
	require.NoError(t, err)

	// Secrets never appear in plaintext on disk
	assert.NotContains(t, string(content), "session-id-value")
	assert.NotContains(t, string(content), "csrf-token-value")
	assert.Contains(t, string(content), `"salt"`)
	assert.Contains(t, string(content), `"encrypted"`)
}

func TestEncryptedStoreMissingAccount(t *testing.T) {
	store := newTestEncryptedStore(t)

	_, err := store.Retrieve("nobody")
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
	assert.False(t, store.Exists("nobody"))
}

func TestEncryptedStoreDeleteRemovesFileWhenEmpty(t *testing.T) {
	store := newTestEncryptedStore(t)
	require.NoError(t, store.Store(validAccount()))

	require.NoError(t, store.Delete("operator"))

	_, err := os.Stat(store.path)
	assert.True(t, os.IsNotExist(err))
}

func TestEncryptedStoreList(t *testing.T) {
	store := newTestEncryptedStore(t)

	accounts, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, accounts)

	require.NoError(t, store.Store(validAccount()))
	second := validAccount()
	second.Username = "backup"
	require.NoError(t, store.Store(second))

	accounts, err = store.List()
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}
