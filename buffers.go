package ggtr

// bufferPool owns the two scratch buffers a FileSystem reuses across
// calls: a stream buffer sized to the largest single transfer the
// engine has been asked to perform, and a staging buffer used to
// coalesce a batch of payloads before one write. Neither buffer
// preserves contents across a grow; callers must only grow a slot
// immediately before writing into it.
type bufferPool struct {
	stream  []byte
	staging []byte
}

// ensureStream guarantees len(stream) >= n, reallocating at exactly n
// bytes if the current buffer is too small. No geometric growth:
// demand is assumed monotonically non-decreasing in practice.
func (b *bufferPool) ensureStream(n int64) []byte {
	b.stream = ensure(b.stream, n)
	return b.stream
}

// ensureStaging guarantees len(staging) >= n, same growth policy as
// ensureStream.
func (b *bufferPool) ensureStaging(n int64) []byte {
	b.staging = ensure(b.staging, n)
	return b.staging
}

func ensure(buf []byte, n int64) []byte {
	if int64(len(buf)) >= n {
		return buf
	}
	return make([]byte, n)
}
