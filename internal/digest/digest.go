// Package digest computes the optional whole-stream integrity fingerprint
// written as a trailer by codec.Writer and checked (non-fatally) by
// codec.Reader, using the same non-cryptographic xxHash64 primitive the
// rest of ledgerbin already depends on — deliberately weaker than a
// cryptographic MAC, consistent with spec.md's "not cryptographically
// authenticated" non-goal.
package digest

import "github.com/cespare/xxhash/v2"

// Writer accumulates a running xxHash64 digest over every byte appended to
// it. It implements io.Writer so codec.Reader can chain it with an
// io.TeeReader around its read path without buffering the payload twice;
// codec.Writer uses the one-shot Sum64 instead.
type Writer struct {
	h *xxhash.Digest
}

// NewWriter creates a fresh digest accumulator.
func NewWriter() *Writer {
	return &Writer{h: xxhash.New()}
}

// Write feeds p into the running digest. It never returns an error.
func (w *Writer) Write(p []byte) (int, error) {
	return w.h.Write(p)
}

// Sum64 returns the digest of everything written so far.
func (w *Writer) Sum64() uint64 {
	return w.h.Sum64()
}

// Sum64 is a convenience one-shot digest of a complete byte slice.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
