package auth

import (
	"os"
	"time"
)

// EnvironmentStore reads credentials from INSTAOSINT_SESSION_ID and
// INSTAOSINT_CSRF_TOKEN. It is read-only.
type EnvironmentStore struct{}

// NewEnvironmentStore creates the environment-backed store
func NewEnvironmentStore() *EnvironmentStore {
	return &EnvironmentStore{}
}

// Store is not supported for environment variables
func (e *EnvironmentStore) Store(account *Account) error {
	return ErrStoreUnavailable
}

// Retrieve builds an account from environment variables
func (e *EnvironmentStore) Retrieve(username string) (*Account, error) {
	sessionID := os.Getenv("INSTAOSINT_SESSION_ID")
	csrfToken := os.Getenv("INSTAOSINT_CSRF_TOKEN")
	userAgent := os.Getenv("INSTAOSINT_USER_AGENT")

	if sessionID == "" || csrfToken == "" {
		return nil, ErrCredentialsNotFound
	}

	// Environment variables carry no username of their own
	if username == "" {
		username = "default"
	}

	return &Account{
		Username:     username,
		SessionID:    sessionID,
		CSRFToken:    csrfToken,
		UserAgent:    userAgent,
		LastModified: time.Now(),
	}, nil
}

// List returns the single environment account when set
func (e *EnvironmentStore) List() ([]*Account, error) {
	account, err := e.Retrieve("")
	if err != nil {
		return []*Account{}, nil
	}
	return []*Account{account}, nil
}

// Delete is not supported for environment variables
func (e *EnvironmentStore) Delete(username string) error {
	return ErrStoreUnavailable
}

// Exists checks whether both environment variables are set
func (e *EnvironmentStore) Exists(username string) bool {
	return os.Getenv("INSTAOSINT_SESSION_ID") != "" && os.Getenv("INSTAOSINT_CSRF_TOKEN") != ""
}
