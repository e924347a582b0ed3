package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenEmptyState(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.CompanyID("Acme")
	assert.False(t, ok)
	assert.False(t, s.HasSeen("Acme", "https://x/jobs/1"))
}

func TestCompanyIDPersistsImmediately(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.PutCompanyID("Acme", "12345"))

	// file is on disk before Close; a crash after resolve loses nothing
	b, err := os.ReadFile(filepath.Join(dir, idCacheFile))
	require.NoError(t, err)
	assert.Contains(t, string(b), "12345")
	require.NoError(t, s.Close())

	s2, err := Open(dir)
	require.NoError(t, err)
	defer s2.Close()
	id, ok := s2.CompanyID("Acme")
	assert.True(t, ok)
	assert.Equal(t, "12345", id)
}

func TestSeenJobsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)

	s, err := Open(dir)
	require.NoError(t, err)
	s.MarkSeen("Acme", "https://x/jobs/1", at)
	assert.True(t, s.HasSeen("Acme", "https://x/jobs/1"))
	assert.False(t, s.HasSeen("Other", "https://x/jobs/1"))

	// not persisted until SaveSeen
	_, err = os.Stat(filepath.Join(dir, seenFile))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, s.SaveSeen())
	require.NoError(t, s.Close())

	s2, err := Open(dir)
	require.NoError(t, err)
	defer s2.Close()
	assert.True(t, s2.HasSeen("Acme", "https://x/jobs/1"))

	b, err := os.ReadFile(filepath.Join(dir, seenFile))
	require.NoError(t, err)
	assert.Contains(t, string(b), "2026-08-23T10:00:00Z")
}

func TestOpenRejectsCorruptState(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, seenFile), []byte("{not json"), 0o644))

	_, err := Open(dir)
	assert.Error(t, err)
}
