package ggtr

import (
	"errors"
	"fmt"
)

// ErrInvalidHeader is returned when a container's first 4 bytes do not
// match the magic 'ggtr'. The handle that returns this is unusable.
var ErrInvalidHeader = errors.New("ggtr: invalid file header")

// ErrDatabaseMissing is returned by a query issued against a path that
// no longer exists on disk.
var ErrDatabaseMissing = errors.New("ggtr: database file missing")

// ErrIndexOutOfRange is returned by BlobList.At for an out-of-bounds index.
var ErrIndexOutOfRange = errors.New("ggtr: index out of range")

// ErrShortIO is returned when a read transfers fewer bytes than
// requested. A short write is not wrapped in ErrShortIO; it surfaces as
// the error the underlying writer returns.
var ErrShortIO = errors.New("ggtr: short read or write")

// ErrInvalidChunkSize is returned by New when chunkSize is not positive;
// a non-positive chunk size would make region extension loop forever.
var ErrInvalidChunkSize = errors.New("ggtr: chunk size must be positive")

func openFailed(mode, path string, err error) error {
	return fmt.Errorf("ggtr: open %s (mode %s): %w", path, mode, err)
}
