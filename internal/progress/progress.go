// Package progress tracks learning-path module completion. The storefront
// kept these records in browser localStorage; this store gives non-browser
// clients the same two operations (mark complete, reset a path) backed by
// one JSON file.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DefaultPath is the store location relative to the working directory.
const DefaultPath = "data/progress.json"

// Record marks one module of a learning path as completed.
type Record struct {
	PathID      string `json:"pathId"`
	ModuleID    string `json:"moduleId"`
	CompletedAt string `json:"completedAt"`
}

// Store persists completion records keyed by learning path.
type Store struct {
	mu     sync.Mutex
	path   string
	byPath map[string][]Record
	now    func() time.Time
}

// Open loads the store from path, starting empty when the file is absent.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultPath
	}

	s := &Store{
		path:   path,
		byPath: make(map[string][]Record),
		now:    time.Now,
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("progress: read %q: %w", path, err)
	}
	if err := json.Unmarshal(b, &s.byPath); err != nil {
		return nil, fmt.Errorf("progress: parse %q: %w", path, err)
	}
	return s, nil
}

// Modules returns the completion records for a learning path.
func (s *Store) Modules(pathID string) []Record {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Record(nil), s.byPath[pathID]...)
}

// SetCompleted marks a module complete. Marking an already-completed module
// again leaves the original timestamp in place.
func (s *Store) SetCompleted(pathID, moduleID string) (Record, error) {
	if s == nil {
		return Record{}, errors.New("progress: nil store")
	}
	pathID = strings.TrimSpace(pathID)
	moduleID = strings.TrimSpace(moduleID)
	if pathID == "" || moduleID == "" {
		return Record{}, errors.New("progress: missing path or module id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.byPath[pathID] {
		if rec.ModuleID == moduleID {
			return rec, nil
		}
	}

	rec := Record{
		PathID:      pathID,
		ModuleID:    moduleID,
		CompletedAt: s.now().UTC().Format(time.RFC3339),
	}
	s.byPath[pathID] = append(s.byPath[pathID], rec)

	if err := s.flushLocked(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Reset drops every completion record for a learning path.
func (s *Store) Reset(pathID string) error {
	if s == nil {
		return errors.New("progress: nil store")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byPath[pathID]; !ok {
		return nil
	}
	delete(s.byPath, pathID)
	return s.flushLocked()
}

func (s *Store) flushLocked() error {
	b, err := json.MarshalIndent(s.byPath, "", "  ")
	if err != nil {
		return fmt.Errorf("progress: encode: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("progress: mkdir %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("progress: write %q: %w", s.path, err)
	}
	return nil
}
