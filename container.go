// Package ggtr implements an append-only blob container: a single
// regular file that stores opaque byte payloads and hands back stable
// (offset, size) coordinates with which any previously inserted blob
// can be retrieved.
//
// On-disk layout:
//
//	+--------+--------------------+-------------------------------+
//	| 'ggtr' | data_end (i64 LE)  | data region (region_bytes)    |
//	+--------+--------------------+-------------------------------+
//	   4 B            8 B              grown in chunks of A
//
// A blob is not delimited on disk — its boundaries exist only in the
// FileInfo record returned by an insert. There is no delete, update,
// compaction, enumeration, or integrity-check facility; the format is
// deliberately write-once-per-offset.
package ggtr

import (
	"os"

	"github.com/GRGSIBERIA/ggtr/fsutil"
)

// FileSystem is a handle to one container file. It is not safe for
// concurrent use by multiple goroutines, and two handles must never
// point at the same path concurrently — each public call opens the
// backing file, does its I/O, and closes it before returning, but the
// in-memory bookkeeping (data_end, region size) is shared mutable state
// scoped to this handle alone.
type FileSystem struct {
	path       string
	dataEnd    int64
	regionSize int64
	chunkSize  int64

	buffers bufferPool
}

// New opens (or bootstraps) a container at path. chunkSize is the
// number of bytes the data region grows by each time an insert would
// overflow it; callers are advised to pick 256 MiB-512 MiB for large
// corpora, but any positive value is accepted.
//
// If path does not name an existing regular file, a fresh container is
// created: the header is written, data_end is set to the header size,
// and the first chunk of the data region is preallocated with zeros.
//
// If path does name an existing file, its header is read and validated;
// a magic mismatch returns ErrInvalidHeader and leaves the file
// untouched.
func New(path string, chunkSize int64) (*FileSystem, error) {
	if chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}

	fs := &FileSystem{
		path:      path,
		chunkSize: chunkSize,
	}

	if !fsutil.Exists(path) {
		if err := fs.bootstrap(); err != nil {
			return nil, err
		}
		return fs, nil
	}

	if err := fs.recover(); err != nil {
		return nil, err
	}

	return fs, nil
}

// bootstrap creates a brand-new container file.
func (fs *FileSystem) bootstrap() error {
	f, err := os.OpenFile(fs.path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return openFailed("create", fs.path, err)
	}
	defer f.Close()

	if err := writeFreshHeader(f, fs.chunkSize); err != nil {
		return err
	}

	fs.dataEnd = headerSize
	fs.regionSize = headerSize + fs.chunkSize

	return nil
}

// recover reads an existing container's header and current size.
func (fs *FileSystem) recover() error {
	f, err := os.OpenFile(fs.path, os.O_RDONLY, 0o644)
	if err != nil {
		return openFailed("read", fs.path, err)
	}
	defer f.Close()

	dataEnd, err := readHeader(f)
	if err != nil {
		return err
	}

	stat, err := f.Stat()
	if err != nil {
		return err
	}

	fs.dataEnd = dataEnd
	fs.regionSize = stat.Size()

	return nil
}

// DBPath returns the handle's current container path.
func (fs *FileSystem) DBPath() string {
	return fs.path
}

// DataEnd returns the current data-end offset: the byte offset of the
// first unused position in the data region.
func (fs *FileSystem) DataEnd() int64 {
	return fs.dataEnd
}

// RegionSize returns the current total size of the container file.
func (fs *FileSystem) RegionSize() int64 {
	return fs.regionSize
}
