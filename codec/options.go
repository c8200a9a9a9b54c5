package codec

import (
	"fmt"

	"github.com/ledgerbin/ledgerbin/errs"
	"github.com/ledgerbin/ledgerbin/format"
	"github.com/ledgerbin/ledgerbin/internal/options"
)

// WriterOption configures a Writer, built on the shared internal/options
// functional-option framework.
type WriterOption = options.Option[*Writer]

// WithDebugGuards brackets every string with the guard words spec.md §4.1
// describes. The setting is recorded in the stream header
// (format.HeaderFlag) and the reader takes it from there, so each stream
// is read back with the setting it was written with, closing the "mixing
// guarded and unguarded files is undefined" hazard Design Notes §9 calls
// out.
func WithDebugGuards(enabled bool) WriterOption {
	return options.NoError(func(w *Writer) {
		w.debugGuards = enabled
	})
}

// WithPoolCompression compresses the string pool region before it hits the
// stream. The string pool is the only contiguous, size-prefixed byte range
// in the format (account/entry/commodity records and bigint quantities are
// interleaved with other fixed-width fields, not a compressible span of
// their own) and is also the most repetitive: payee names and recurring
// notes dominate it. Default is format.CompressionNone: the pool bytes are
// stored as-is, still preceded by both the uncompressed and compressed
// length fields.
func WithPoolCompression(c format.CompressionType) WriterOption {
	return options.New(func(w *Writer) error {
		switch c {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			w.compression = c
			return nil
		default:
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompressionType, c)
		}
	})
}

// WithIntegrityDigest appends a trailing xxHash64 fingerprint of the whole
// stream after the back-patched counts. It is a soft integrity aid, not
// cryptographic authentication (spec.md §1 non-goals).
func WithIntegrityDigest(enabled bool) WriterOption {
	return options.NoError(func(w *Writer) {
		w.digest = enabled
	})
}

// ReaderOption configures a Reader.
type ReaderOption = options.Option[*Reader]

// WithIntegrityCheck enables the optional, non-fatal digest verification
// on read. A mismatch is reported via Reader.IntegrityError after Parse
// returns rather than failing the load outright, consistent with
// spec.md's "not cryptographically authenticated" non-goal.
func WithIntegrityCheck(enabled bool) ReaderOption {
	return options.NoError(func(r *Reader) {
		r.checkDigest = enabled
	})
}
