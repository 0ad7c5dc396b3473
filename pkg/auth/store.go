package auth

import (
	"errors"
	"fmt"
	"time"
)

// Account holds one set of Instagram session credentials. Credentials
// are optional everywhere in the pipeline; fetch semantics are the same
// with or without them.
type Account struct {
	Username     string    `json:"username"`
	SessionID    string    `json:"session_id"`
	CSRFToken    string    `json:"csrf_token"`
	UserAgent    string    `json:"user_agent,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

// HeaderMap returns the HTTP headers that attach this account's session
// to outgoing requests.
func (a *Account) HeaderMap() map[string]string {
	if a == nil {
		return nil
	}
	headers := map[string]string{
		"Cookie":      fmt.Sprintf("sessionid=%s; csrftoken=%s", a.SessionID, a.CSRFToken),
		"X-CSRFToken": a.CSRFToken,
	}
	if a.UserAgent != "" {
		headers["User-Agent"] = a.UserAgent
	}
	return headers
}

// CredentialStore is one storage backend for account credentials
type CredentialStore interface {
	// Store saves credentials for a given account
	Store(account *Account) error

	// Retrieve gets credentials for a specific username
	Retrieve(username string) (*Account, error)

	// List returns all stored accounts
	List() ([]*Account, error)

	// Delete removes credentials for a specific username
	Delete(username string) error

	// Exists checks if credentials exist for a username
	Exists(username string) bool
}

var (
	ErrCredentialsNotFound = errors.New("credentials not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrStoreUnavailable    = errors.New("credential store unavailable")
)

// Sanitize returns a copy of the account with secrets masked, safe for
// terminal output and logs.
func Sanitize(account *Account) *Account {
	if account == nil {
		return nil
	}

	return &Account{
		Username:     account.Username,
		SessionID:    maskSecret(account.SessionID),
		CSRFToken:    maskSecret(account.CSRFToken),
		UserAgent:    account.UserAgent,
		LastModified: account.LastModified,
	}
}

func maskSecret(s string) string {
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "..." + s[len(s)-4:]
}
