package ggtr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveDatabaseRelocatesFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "db.ggtr")
	dst := filepath.Join(dir, "moved.ggtr")

	fs, err := New(src, 1<<20)
	require.NoError(t, err)

	info, err := fs.Insert([]byte("payload"))
	require.NoError(t, err)

	require.NoError(t, fs.MoveDatabase(dst))
	require.Equal(t, dst, fs.DBPath())

	require.NoFileExists(t, src)
	require.FileExists(t, dst)

	blob, err := fs.Query(info)
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), blob.Data)
}

func TestMoveDatabaseDisplacesExistingDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "db.ggtr")
	dst := filepath.Join(dir, "existing.ggtr")
	bak := dst + ".bak"

	fs, err := New(src, 1<<20)
	require.NoError(t, err)
	_, err = fs.Insert([]byte("new-content"))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(dst, []byte("old-destination-bytes"), 0o644))

	require.NoError(t, fs.MoveDatabase(dst))

	require.FileExists(t, dst)
	require.FileExists(t, bak)

	bakBytes, err := os.ReadFile(bak)
	require.NoError(t, err)
	require.Equal(t, []byte("old-destination-bytes"), bakBytes)
}

func TestMoveDatabaseRemovesPriorBackup(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "db.ggtr")
	dst := filepath.Join(dir, "existing.ggtr")
	bak := dst + ".bak"

	fs, err := New(src, 1<<20)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(dst, []byte("current-destination"), 0o644))
	require.NoError(t, os.WriteFile(bak, []byte("stale-backup"), 0o644))

	require.NoError(t, fs.MoveDatabase(dst))

	bakBytes, err := os.ReadFile(bak)
	require.NoError(t, err)
	require.Equal(t, []byte("current-destination"), bakBytes)
}
