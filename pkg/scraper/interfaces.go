package scraper

import (
	"context"

	"instaosint/pkg/instagram"
	"instaosint/pkg/storage"
)

// Fetcher is the network surface a session depends on. It is satisfied
// by *instagram.Client and by test fakes.
type Fetcher interface {
	// FetchSharedData fetches a username's profile page and extracts
	// its embedded data blob.
	FetchSharedData(ctx context.Context, username string) (*instagram.SharedData, error)

	// Download fetches a media URL and returns its bytes.
	Download(ctx context.Context, mediaURL string) ([]byte, error)

	// SetHeader sets a header on every subsequent request.
	SetHeader(key, value string)

	// RequestCount returns the number of outbound requests made so far.
	RequestCount() int
}

// ArtifactWriter is the persistence surface a session depends on. It is
// satisfied by *storage.Manager.
type ArtifactWriter interface {
	WriteSnapshot(target string, data interface{}, kind string) (string, error)
	WriteReport(target, text, kind string) (string, error)
	SaveMedia(data []byte, path string) error
	WriteText(path, text string) error
	ArchiveDirs(target string) (*storage.ArchiveLayout, error)
	Manifest() []storage.Entry
}
