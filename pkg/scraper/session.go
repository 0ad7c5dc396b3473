package scraper

import (
	"fmt"

	"instaosint/pkg/auth"
	"instaosint/pkg/config"
	"instaosint/pkg/instagram"
	"instaosint/pkg/logger"
	"instaosint/pkg/storage"
)

// Session drives the investigation pipeline for one run: fetch, project,
// analyze, persist. A session is safe to reuse across targets; the
// artifact manifest accumulates across them.
type Session struct {
	fetcher Fetcher
	store   ArtifactWriter
	cfg     *config.Config
	logger  logger.Logger
	account *auth.Account
}

// New builds a session from configuration, wiring the HTTP client and
// the storage manager.
func New(cfg *config.Config, log logger.Logger) (*Session, error) {
	if log == nil {
		log = logger.GetLogger()
	}

	store, err := storage.NewManager(&cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return &Session{
		fetcher: instagram.NewClient(cfg, log),
		store:   store,
		cfg:     cfg,
		logger:  log,
	}, nil
}

// NewWithComponents builds a session over explicit dependencies. Used by
// tests and callers that share a client.
func NewWithComponents(fetcher Fetcher, store ArtifactWriter, cfg *config.Config, log logger.Logger) *Session {
	if log == nil {
		log = logger.GetLogger()
	}

	return &Session{
		fetcher: fetcher,
		store:   store,
		cfg:     cfg,
		logger:  log,
	}
}

// SetAccount attaches session credentials to subsequent requests.
// Fetch and parsing behavior is identical with or without an account.
func (s *Session) SetAccount(account *auth.Account) {
	s.account = account
	for key, value := range account.HeaderMap() {
		s.fetcher.SetHeader(key, value)
	}

	s.logger.InfoWithFields("using authenticated session", map[string]interface{}{
		"account": account.Username,
	})
}

// RequestCount returns the number of outbound requests made so far
func (s *Session) RequestCount() int {
	return s.fetcher.RequestCount()
}
