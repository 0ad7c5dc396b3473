package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAccount() *Account {
	return &Account{
		Username:  "operator",
		SessionID: "session-id-value",
		CSRFToken: "csrf-token-value",
	}
}

func TestManagerStoreAndRetrieve(t *testing.T) {
	store := NewMockStore()
	manager := NewManagerWithStores(store)

	require.NoError(t, manager.Store(validAccount()))
	assert.Equal(t, 1, store.Count())

	account, err := manager.Retrieve("operator")
	require.NoError(t, err)
	assert.Equal(t, "operator", account.Username)
	assert.Equal(t, "session-id-value", account.SessionID)
	assert.False(t, account.LastModified.IsZero())
}

func TestManagerStoreValidation(t *testing.T) {
	manager := NewManagerWithStores(NewMockStore())

	tests := []struct {
		name   string
		mutate func(*Account)
	}{
		{"missing username", func(a *Account) { a.Username = "" }},
		{"missing session id", func(a *Account) { a.SessionID = "" }},
		{"missing csrf token", func(a *Account) { a.CSRFToken = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := validAccount()
			tt.mutate(account)
			assert.Error(t, manager.Store(account))
		})
	}
}

func TestManagerFallsBackToNextStore(t *testing.T) {
	broken := NewMockStore()
	broken.StoreError = ErrStoreUnavailable
	broken.RetrieveError = ErrStoreUnavailable
	working := NewMockStore()

	manager := NewManagerWithStores(broken, working)

	require.NoError(t, manager.Store(validAccount()))
	assert.Equal(t, 0, broken.Count())
	assert.Equal(t, 1, working.Count())

	account, err := manager.Retrieve("operator")
	require.NoError(t, err)
	assert.Equal(t, "operator", account.Username)
}

func TestManagerDelete(t *testing.T) {
	store := NewMockStore()
	manager := NewManagerWithStores(store)

	require.NoError(t, manager.Store(validAccount()))
	require.NoError(t, manager.Delete("operator"))
	assert.Equal(t, 0, store.Count())

	assert.Error(t, manager.Delete("operator"))
}

func TestManagerListPrefersNewest(t *testing.T) {
	older := NewMockStore()
	newer := NewMockStore()

	stale := validAccount()
	stale.SessionID = "stale"
	stale.LastModified = time.Now().Add(-time.Hour)
	require.NoError(t, older.Store(stale))

	fresh := validAccount()
	fresh.SessionID = "fresh"
	fresh.LastModified = time.Now()
	require.NoError(t, newer.Store(fresh))

	manager := NewManagerWithStores(older, newer)

	accounts, err := manager.List()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "fresh", accounts[0].SessionID)
}

func TestRetrieveDefaultFromEnvironment(t *testing.T) {
	t.Setenv("INSTAOSINT_SESSION_ID", "env-session")
	t.Setenv("INSTAOSINT_CSRF_TOKEN", "env-csrf")

	manager := NewManagerWithStores(NewMockStore(), NewEnvironmentStore())

	account, err := manager.RetrieveDefault()
	require.NoError(t, err)
	assert.Equal(t, "default", account.Username)
	assert.Equal(t, "env-session", account.SessionID)
}

func TestRetrieveDefaultNoCredentials(t *testing.T) {
	t.Setenv("INSTAOSINT_SESSION_ID", "")
	t.Setenv("INSTAOSINT_CSRF_TOKEN", "")

	manager := NewManagerWithStores(NewMockStore(), NewEnvironmentStore())

	_, err := manager.RetrieveDefault()
	assert.Error(t, err)
}

func TestEnvironmentStoreIsReadOnly(t *testing.T) {
	store := NewEnvironmentStore()

	assert.ErrorIs(t, store.Store(validAccount()), ErrStoreUnavailable)
	assert.ErrorIs(t, store.Delete("operator"), ErrStoreUnavailable)
}

func TestSanitize(t *testing.T) {
	account := &Account{
		Username:  "operator",
		SessionID: "1234567890abcdef",
		CSRFToken: "short",
	}

	masked := Sanitize(account)
	assert.Equal(t, "operator", masked.Username)
	assert.Equal(t, "1234...cdef", masked.SessionID)
	assert.Equal(t, "********", masked.CSRFToken)

	// Original is untouched
	assert.Equal(t, "1234567890abcdef", account.SessionID)

	assert.Nil(t, Sanitize(nil))
}

func TestAccountHeaderMap(t *testing.T) {
	account := &Account{
		Username:  "operator",
		SessionID: "sid",
		CSRFToken: "csrf",
		UserAgent: "custom-agent",
	}

	headers := account.HeaderMap()
	assert.Equal(t, "sessionid=sid; csrftoken=csrf", headers["Cookie"])
	assert.Equal(t, "csrf", headers["X-CSRFToken"])
	assert.Equal(t, "custom-agent", headers["User-Agent"])

	var missing *Account
	assert.Nil(t, missing.HeaderMap())
}
