package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"instaosint/pkg/config"
	errs "instaosint/pkg/errors"
)

// Category partitions manifest entries by destination for reporting
type Category string

const (
	CategoryReports   Category = "reports"
	CategoryData      Category = "data"
	CategoryDownloads Category = "downloads"
)

// timestampLayout produces sortable date-time strings for file names
const timestampLayout = "20060102_150405"

// Manager owns the three output roots and the session manifest: an
// append-only list of every artifact path written so far. The manifest
// lives only in memory and is cleared by process restart.
type Manager struct {
	reportsDir   string
	dataDir      string
	downloadsDir string

	mu       sync.Mutex
	manifest []Entry
}

// Entry is one written artifact path with its destination category
type Entry struct {
	Category Category
	Path     string
}

// NewManager creates the output roots and returns a manager over them
func NewManager(out *config.OutputConfig) (*Manager, error) {
	m := &Manager{
		reportsDir:   out.ReportsPath(),
		dataDir:      out.DataPath(),
		downloadsDir: out.DownloadsPath(),
	}

	for _, dir := range []string{m.reportsDir, m.dataDir, m.downloadsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	return m, nil
}

// ReportsDir returns the reports output root
func (m *Manager) ReportsDir() string { return m.reportsDir }

// DataDir returns the data snapshot output root
func (m *Manager) DataDir() string { return m.dataDir }

// DownloadsDir returns the media download output root
func (m *Manager) DownloadsDir() string { return m.downloadsDir }

// snapshot is the envelope written around snapshot payloads. The
// generation time is a top-level ISO-8601 field.
type snapshot struct {
	GeneratedAt time.Time   `json:"generated_at"`
	Target      string      `json:"target"`
	Kind        string      `json:"kind"`
	Data        interface{} `json:"data"`
}

// WriteSnapshot serializes data to indented JSON under the data root,
// named by target, kind and a sortable timestamp. Two snapshots of the
// same target and kind within one wall-clock second share a name; the
// later write wins.
func (m *Manager) WriteSnapshot(target string, data interface{}, kind string) (string, error) {
	now := time.Now()
	path := filepath.Join(m.dataDir, fmt.Sprintf("%s_%s_%s.json", target, kind, now.Format(timestampLayout)))

	payload, err := json.MarshalIndent(snapshot{
		GeneratedAt: now,
		Target:      target,
		Kind:        kind,
		Data:        data,
	}, "", "  ")
	if err != nil {
		return "", errs.New(errs.ErrorTypeIO, 0, "failed to marshal snapshot: %v", err)
	}

	if err := os.WriteFile(path, payload, 0644); err != nil {
		return "", errs.New(errs.ErrorTypeIO, 0, "failed to write snapshot: %v", err)
	}

	m.append(CategoryData, path)
	return path, nil
}

// WriteReport writes report text under the reports root using the same
// naming convention as snapshots.
func (m *Manager) WriteReport(target, text, kind string) (string, error) {
	path := filepath.Join(m.reportsDir, fmt.Sprintf("%s_%s_%s.txt", target, kind, time.Now().Format(timestampLayout)))

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", errs.New(errs.ErrorTypeIO, 0, "failed to write report: %v", err)
	}

	m.append(CategoryReports, path)
	return path, nil
}

// SaveMedia writes media bytes to the destination path via a temporary
// file and an atomic rename, creating parent directories as needed.
func (m *Manager) SaveMedia(data []byte, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errs.New(errs.ErrorTypeIO, 0, "failed to create media directory: %v", err)
	}

	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return errs.New(errs.ErrorTypeIO, 0, "failed to write media file: %v", err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return errs.New(errs.ErrorTypeIO, 0, "failed to finalize media file: %v", err)
	}

	m.append(CategoryDownloads, path)
	return nil
}

// WriteText writes a plain text file under the downloads tree, for the
// per-target analysis and info files.
func (m *Manager) WriteText(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errs.New(errs.ErrorTypeIO, 0, "failed to create directory: %v", err)
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return errs.New(errs.ErrorTypeIO, 0, "failed to write text file: %v", err)
	}

	m.append(CategoryDownloads, path)
	return nil
}

// ArchiveLayout holds the fixed per-target archive folder tree
type ArchiveLayout struct {
	Root       string
	General    string
	Posts      string
	Stories    string
	Highlights string
}

// ArchiveDirs creates the per-target archive folder tree under the
// downloads root and returns its paths.
func (m *Manager) ArchiveDirs(target string) (*ArchiveLayout, error) {
	root := filepath.Join(m.downloadsDir, target)
	layout := &ArchiveLayout{
		Root:       root,
		General:    filepath.Join(root, "general"),
		Posts:      filepath.Join(root, "posts"),
		Stories:    filepath.Join(root, "stories"),
		Highlights: filepath.Join(root, "highlights"),
	}

	for _, dir := range []string{layout.General, layout.Posts, layout.Stories, layout.Highlights} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create archive directory %s: %w", dir, err)
		}
	}

	return layout, nil
}

// Manifest returns a copy of every artifact path written this session
func (m *Manager) Manifest() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Entry, len(m.manifest))
	copy(out, m.manifest)
	return out
}

// ManifestByCategory returns the written paths for one destination
func (m *Manager) ManifestByCategory(cat Category) []string {
	var paths []string
	for _, entry := range m.Manifest() {
		if entry.Category == cat {
			paths = append(paths, entry.Path)
		}
	}
	return paths
}

func (m *Manager) append(cat Category, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.manifest = append(m.manifest, Entry{Category: cat, Path: path})
}
