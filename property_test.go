package ggtr

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// TestScenarioThreeBlobsThenExtension mirrors the walkthrough of
// inserting three blobs into a small chunk size, then a fourth insert
// that forces the region to grow by one more chunk.
func TestScenarioThreeBlobsThenExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.ggtr")

	fs, err := New(path, 64)
	require.NoError(t, err)

	a, err := fs.Insert(make([]byte, 20))
	require.NoError(t, err)
	b, err := fs.Insert(make([]byte, 20))
	require.NoError(t, err)
	c, err := fs.Insert(make([]byte, 20))
	require.NoError(t, err)

	require.Equal(t, int64(headerSize), a.Offset)
	require.Equal(t, int64(headerSize+20), b.Offset)
	require.Equal(t, int64(headerSize+40), c.Offset)
	require.Equal(t, int64(headerSize+64), fs.RegionSize())

	d, err := fs.Insert(make([]byte, 20))
	require.NoError(t, err)
	require.Equal(t, int64(headerSize+60), d.Offset)
	require.Equal(t, int64(headerSize+128), fs.RegionSize())
}

// TestScenarioBatchInsertThenReverseQuery mirrors inserting a batch of
// blobs in one call, then querying them back in reverse order.
func TestScenarioBatchInsertThenReverseQuery(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.ggtr")

	fs, err := New(path, 1<<20)
	require.NoError(t, err)

	payloads := [][]byte{[]byte("AAA"), []byte("BB"), []byte("C")}
	infos, err := fs.InsertMany(payloads)
	require.NoError(t, err)

	require.Equal(t, []FileInfo{
		{Offset: headerSize, Size: 3},
		{Offset: headerSize + 3, Size: 2},
		{Offset: headerSize + 5, Size: 1},
	}, infos)

	reversed := []FileInfo{infos[2], infos[1], infos[0]}
	list, err := fs.QueryMany(reversed)
	require.NoError(t, err)

	want := [][]byte{[]byte("C"), []byte("BB"), []byte("AAA")}
	for i, w := range want {
		got, err := list.At(i)
		require.NoError(t, err)
		if diff := cmp.Diff(w, got); diff != "" {
			t.Fatalf("entry %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

// TestScenarioMoveThenContinueUsingHandle mirrors relocating a
// container and then continuing to insert/query through the same
// handle, proving a move doesn't invalidate it.
func TestScenarioMoveThenContinueUsingHandle(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "db.ggtr")
	dst := filepath.Join(dir, "relocated.ggtr")

	fs, err := New(src, 1<<20)
	require.NoError(t, err)

	before, err := fs.Insert([]byte("before-move"))
	require.NoError(t, err)

	require.NoError(t, fs.MoveDatabase(dst))

	after, err := fs.Insert([]byte("after-move"))
	require.NoError(t, err)

	blob, err := fs.Query(before)
	require.NoError(t, err)
	require.Equal(t, []byte("before-move"), blob.Data)

	blob, err = fs.Query(after)
	require.NoError(t, err)
	require.Equal(t, []byte("after-move"), blob.Data)
}

// TestRecoverAfterProcessRestartReadsBackCorrectly covers the
// open-do-close lifecycle: a second handle opened later against the
// same path must see everything the first handle wrote.
func TestRecoverAfterProcessRestartReadsBackCorrectly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.ggtr")

	fs1, err := New(path, 1<<20)
	require.NoError(t, err)
	info, err := fs1.Insert([]byte("persisted across handles"))
	require.NoError(t, err)

	fs2, err := New(path, 1<<20)
	require.NoError(t, err)

	blob, err := fs2.Query(info)
	require.NoError(t, err)
	require.Equal(t, []byte("persisted across handles"), blob.Data)

	next, err := fs2.Insert([]byte("more"))
	require.NoError(t, err)
	require.Equal(t, fs1.DataEnd(), next.Offset)
}
