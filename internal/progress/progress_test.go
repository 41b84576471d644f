package progress

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "progress.json"))
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	s := openTestStore(t)
	assert.Empty(t, s.Modules("getting-started"))
}

func TestSetCompletedAndPersist(t *testing.T) {
	s := openTestStore(t)

	rec, err := s.SetCompleted("getting-started", "mod-1")
	require.NoError(t, err)
	assert.Equal(t, "getting-started", rec.PathID)
	assert.Equal(t, "mod-1", rec.ModuleID)
	assert.Equal(t, "2025-08-01T12:00:00Z", rec.CompletedAt)

	_, err = s.SetCompleted("getting-started", "mod-2")
	require.NoError(t, err)
	assert.Len(t, s.Modules("getting-started"), 2)

	// Reopen from disk.
	reopened, err := Open(s.path)
	require.NoError(t, err)
	mods := reopened.Modules("getting-started")
	require.Len(t, mods, 2)
	assert.Equal(t, "mod-1", mods[0].ModuleID)
}

func TestSetCompletedIsIdempotent(t *testing.T) {
	s := openTestStore(t)

	first, err := s.SetCompleted("path", "mod-1")
	require.NoError(t, err)

	s.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	again, err := s.SetCompleted("path", "mod-1")
	require.NoError(t, err)

	assert.Equal(t, first.CompletedAt, again.CompletedAt, "original timestamp is kept")
	assert.Len(t, s.Modules("path"), 1)
}

func TestReset(t *testing.T) {
	s := openTestStore(t)

	_, err := s.SetCompleted("path-a", "mod-1")
	require.NoError(t, err)
	_, err = s.SetCompleted("path-b", "mod-1")
	require.NoError(t, err)

	require.NoError(t, s.Reset("path-a"))
	assert.Empty(t, s.Modules("path-a"))
	assert.Len(t, s.Modules("path-b"), 1)

	// Resetting an unknown path is a no-op.
	require.NoError(t, s.Reset("never-seen"))
}

func TestSetCompletedRejectsBlankIDs(t *testing.T) {
	s := openTestStore(t)

	_, err := s.SetCompleted("", "mod-1")
	assert.Error(t, err)
	_, err = s.SetCompleted("path", "  ")
	assert.Error(t, err)
}

func TestOpenBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "progress: parse")
}

func TestFlushCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "progress.json")
	s, err := Open(path)
	require.NoError(t, err)

	_, err = s.SetCompleted("path", "mod-1")
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var byPath map[string][]Record
	require.NoError(t, json.Unmarshal(b, &byPath))
	assert.Len(t, byPath["path"], 1)
}

func TestModulesReturnsCopy(t *testing.T) {
	s := openTestStore(t)
	_, err := s.SetCompleted("path", "mod-1")
	require.NoError(t, err)

	mods := s.Modules("path")
	mods[0].ModuleID = "mutated"

	assert.Equal(t, "mod-1", s.Modules("path")[0].ModuleID)
}
