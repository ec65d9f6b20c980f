package ggtr

import (
	"bufio"
	"os"
)

// FileInfo locates a previously inserted blob: the byte offset at which
// it begins, and its length. It carries no payload of its own and is
// freely copyable.
type FileInfo struct {
	Offset int64
	Size   int64
}

// Insert appends a single blob to the container and returns its
// locator. The returned offset equals data_end before the insert;
// data_end advances by len(data).
func (fs *FileSystem) Insert(data []byte) (FileInfo, error) {
	size := int64(len(data))

	f, err := os.OpenFile(fs.path, os.O_RDWR, 0o644)
	if err != nil {
		return FileInfo{}, openFailed("append", fs.path, err)
	}
	defer f.Close()

	if err := fs.extendRegion(f, size); err != nil {
		return FileInfo{}, err
	}

	stream := bufio.NewWriterSize(f, len(fs.buffers.ensureStream(size)))

	offset := fs.dataEnd
	if _, err := f.Seek(offset, 0); err != nil {
		return FileInfo{}, err
	}

	if _, err := stream.Write(data); err != nil {
		return FileInfo{}, err
	}
	if err := stream.Flush(); err != nil {
		return FileInfo{}, err
	}

	fs.dataEnd += size

	if err := patchDataEnd(f, fs.dataEnd); err != nil {
		return FileInfo{}, err
	}

	return FileInfo{Offset: offset, Size: size}, nil
}

// InsertMany appends n blobs in one sequential write, converting n
// small writes into one large one. Offsets are assigned deterministically
// in input order — infos[i].Offset is independent of how the payloads
// are later coalesced in the staging buffer.
func (fs *FileSystem) InsertMany(blobs [][]byte) ([]FileInfo, error) {
	infos := make([]FileInfo, len(blobs))

	var total int64
	base := fs.dataEnd
	for i, b := range blobs {
		infos[i] = FileInfo{Offset: base + total, Size: int64(len(b))}
		total += int64(len(b))
	}

	staging := fs.buffers.ensureStaging(total)
	for i, b := range blobs {
		copy(staging[infos[i].Offset-base:], b)
	}

	f, err := os.OpenFile(fs.path, os.O_RDWR, 0o644)
	if err != nil {
		return nil, openFailed("append", fs.path, err)
	}
	defer f.Close()

	if err := fs.extendRegion(f, total); err != nil {
		return nil, err
	}

	stream := bufio.NewWriterSize(f, len(fs.buffers.ensureStream(total)))

	if _, err := f.Seek(base, 0); err != nil {
		return nil, err
	}

	if _, err := stream.Write(staging[:total]); err != nil {
		return nil, err
	}
	if err := stream.Flush(); err != nil {
		return nil, err
	}

	fs.dataEnd += total

	if err := patchDataEnd(f, fs.dataEnd); err != nil {
		return nil, err
	}

	return infos, nil
}

// extendRegion grows the data region by whole chunkSize increments
// until it can hold need more bytes past data_end. f must be open for
// writing and positioned anywhere (extendRegion always seeks to the
// current end before appending a chunk).
func (fs *FileSystem) extendRegion(f *os.File, need int64) error {
	zeros := make([]byte, fs.chunkSize)

	for fs.dataEnd+need > fs.regionSize {
		if _, err := f.Seek(fs.regionSize, 0); err != nil {
			return err
		}
		if _, err := f.Write(zeros); err != nil {
			return err
		}
		fs.regionSize += fs.chunkSize
	}

	return nil
}
