package ggtr

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// magic identifies a ggtr container file. It never changes for the
// lifetime of a file.
var magic = [4]byte{'g', 'g', 't', 'r'}

const (
	// headerSize is magic (4 bytes) + data_end (8 bytes, little-endian int64).
	headerSize = 4 + 8

	// dataEndOffset is the byte offset of the data_end field within the header.
	dataEndOffset = 4
)

// readHeader reads and validates the 12-byte header from f, which must
// be positioned at (or seekable to) offset 0. It returns the stored
// data_end value.
func readHeader(f *os.File) (dataEnd int64, err error) {
	if _, err := f.Seek(0, 0); err != nil {
		return 0, err
	}

	buf := make([]byte, headerSize)
	if err := readExact(f, buf[:4]); err != nil {
		return 0, err
	}

	if !bytes.Equal(buf[:4], magic[:]) {
		return 0, ErrInvalidHeader
	}

	if err := readExact(f, buf[4:headerSize]); err != nil {
		return 0, err
	}

	dataEnd = int64(binary.LittleEndian.Uint64(buf[4:headerSize]))
	return dataEnd, nil
}

// writeFreshHeader writes the initial header (data_end == headerSize)
// followed by chunkSize zero bytes of preallocation, to a newly created,
// empty file.
func writeFreshHeader(f *os.File, chunkSize int64) error {
	buf := make([]byte, headerSize)
	copy(buf[:4], magic[:])
	binary.LittleEndian.PutUint64(buf[4:headerSize], uint64(headerSize))

	if _, err := f.Write(buf); err != nil {
		return err
	}

	zeros := make([]byte, chunkSize)
	if _, err := f.Write(zeros); err != nil {
		return err
	}

	return nil
}

// patchDataEnd rewrites bytes [4:12) of the header with the current
// data_end value. f must already be open for writing.
func patchDataEnd(f *os.File, dataEnd int64) error {
	if _, err := f.Seek(dataEndOffset, 0); err != nil {
		return err
	}

	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(dataEnd))

	if _, err := f.Write(buf); err != nil {
		return err
	}

	return nil
}

// readExact reads exactly len(buf) bytes from r, wrapping a short read
// in ErrShortIO.
func readExact(r io.Reader, buf []byte) error {
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return fmt.Errorf("%w: wanted %d bytes, got %d: %v", ErrShortIO, len(buf), n, err)
	}
	return nil
}
