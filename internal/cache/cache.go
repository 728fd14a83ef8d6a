// Package cache persists raw report payloads between invocations so that
// iterative development does not hammer the API with the same request.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/go-hclog"
)

// Store is a single-file cache mapping report ids to their raw API payloads.
// The whole map is loaded and rewritten on every write; there is no locking,
// a single writing process is assumed.
type Store struct {
	path   string
	logger hclog.Logger
}

// New creates a Store backed by the file at path. The file is created lazily
// on first write.
func New(path string, logger hclog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Read returns the cached payload for a report id. A missing file, a corrupt
// file or an unknown id all read as absent; corruption is logged and the next
// write starts a fresh map.
func (s *Store) Read(reportID int) (json.RawMessage, bool) {
	entries, err := s.load()
	if err != nil {
		s.logger.Warn("report cache is unreadable, treating as empty", "path", s.path, "error", err)
		return nil, false
	}

	raw, ok := entries[strconv.Itoa(reportID)]
	return raw, ok
}

// Write merges a report payload into the cache file, preserving previously
// cached reports, and persists the whole map.
func (s *Store) Write(reportID int, raw json.RawMessage) error {
	entries, err := s.load()
	if err != nil {
		s.logger.Warn("report cache is unreadable, rewriting", "path", s.path, "error", err)
		entries = nil
	}
	if entries == nil {
		entries = make(map[string]json.RawMessage, 1)
	}
	entries[strconv.Itoa(reportID)] = raw

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize report cache: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write report cache %q: %w", s.path, err)
	}
	return nil
}

// load reads the whole cache map. A missing file yields a nil map and no error.
func (s *Store) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse report cache: %w", err)
	}
	return entries, nil
}
