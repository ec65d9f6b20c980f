package ggtr

import (
	"bufio"
	"os"
	"sort"

	"github.com/GRGSIBERIA/ggtr/fsutil"
)

// Blob is an owned read result: the payload bytes and their length.
// Release simply lets Data be garbage collected — callers that need a
// deterministic release point can nil out the slice themselves; Blob
// exists primarily to mirror the locator/payload split of FileInfo/Blob
// in spec.md rather than to manage non-GC resources.
type Blob struct {
	Data []byte
}

// BlobList is the result of a batched query: one contiguous backing
// region holding every requested payload, plus a per-entry view into
// it. Entries are indexed in the same order as the FileInfo slice
// passed to QueryMany, regardless of the on-disk order the engine
// actually read them in.
type BlobList struct {
	region  []byte
	offsets []int64
	sizes   []int64
}

// Len returns the number of entries in the list.
func (bl *BlobList) Len() int {
	return len(bl.sizes)
}

// At returns a non-owning view of the i-th entry's payload. The
// returned slice is only valid for as long as the BlobList itself is
// reachable.
func (bl *BlobList) At(i int) ([]byte, error) {
	if i < 0 || i >= len(bl.sizes) {
		return nil, ErrIndexOutOfRange
	}
	off := bl.offsets[i]
	return bl.region[off : off+bl.sizes[i]], nil
}

// Query reads a single blob back by its locator.
func (fs *FileSystem) Query(info FileInfo) (Blob, error) {
	if !fsutil.Exists(fs.path) {
		return Blob{}, ErrDatabaseMissing
	}

	f, err := os.OpenFile(fs.path, os.O_RDONLY, 0o644)
	if err != nil {
		return Blob{}, openFailed("read", fs.path, err)
	}
	defer f.Close()

	stream := bufio.NewReaderSize(f, len(fs.buffers.ensureStream(info.Size)))

	if _, err := f.Seek(info.Offset, 0); err != nil {
		return Blob{}, err
	}
	stream.Reset(f)

	data := make([]byte, info.Size)
	if err := readExact(stream, data); err != nil {
		return Blob{}, err
	}

	return Blob{Data: data}, nil
}

// sortedLocator pairs a caller-supplied locator with its original
// position, so the engine can sort by on-disk offset (turning a
// scattered read pattern into one forward seek pattern) and then
// restore the caller-visible order without a second sort.
type sortedLocator struct {
	info FileInfo
	pos  int
}

// QueryMany reads a batch of locators. It sorts the locators by offset
// to read them with monotonically forward seeks, then restores the
// caller's original order in the returned list: result.At(i) always
// corresponds to infos[i].
func (fs *FileSystem) QueryMany(infos []FileInfo) (*BlobList, error) {
	if !fsutil.Exists(fs.path) {
		return nil, ErrDatabaseMissing
	}

	sorted := make([]sortedLocator, len(infos))
	var total, maxSize int64
	for i, info := range infos {
		sorted[i] = sortedLocator{info: info, pos: i}
		total += info.Size
		if info.Size > maxSize {
			maxSize = info.Size
		}
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].info.Offset < sorted[j].info.Offset
	})

	f, err := os.OpenFile(fs.path, os.O_RDONLY, 0o644)
	if err != nil {
		return nil, openFailed("read", fs.path, err)
	}
	defer f.Close()

	stream := bufio.NewReaderSize(f, len(fs.buffers.ensureStream(maxSize)))

	region := make([]byte, total)
	offsets := make([]int64, len(infos))
	sizes := make([]int64, len(infos))

	var cursor int64
	for _, sl := range sorted {
		if _, err := f.Seek(sl.info.Offset, 0); err != nil {
			return nil, err
		}
		stream.Reset(f)

		if err := readExact(stream, region[cursor:cursor+sl.info.Size]); err != nil {
			return nil, err
		}

		offsets[sl.pos] = cursor
		sizes[sl.pos] = sl.info.Size

		cursor += sl.info.Size
	}

	return &BlobList{region: region, offsets: offsets, sizes: sizes}, nil
}
