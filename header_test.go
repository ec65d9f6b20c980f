package ggtr

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFreshContainerHasBitExactHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.ggtr")

	const chunk = 128
	_, err := New(path, chunk)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, []byte("ggtr"), raw[:4])
	require.Equal(t, uint64(headerSize), binary.LittleEndian.Uint64(raw[4:12]))
	require.Len(t, raw, headerSize+chunk)

	for _, b := range raw[headerSize:] {
		require.Zero(t, b)
	}
}

func TestHeaderDataEndAdvancesOnDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.ggtr")

	fs, err := New(path, 1<<20)
	require.NoError(t, err)

	_, err = fs.Insert([]byte("twelve bytes"))
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	gotDataEnd := int64(binary.LittleEndian.Uint64(raw[4:12]))
	require.Equal(t, fs.DataEnd(), gotDataEnd)
	require.Equal(t, int64(headerSize+len("twelve bytes")), gotDataEnd)
}
