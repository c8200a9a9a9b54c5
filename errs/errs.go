// Package errs collects the sentinel errors returned across ledgerbin's
// codec packages. Callers use errors.Is against these values; call sites
// wrap them with fmt.Errorf("%w: ...") to attach the offending detail.
package errs

import "errors"

var (
	// ErrInvalidHeaderSize is returned when a fixed-size header record is
	// parsed from a byte slice of the wrong length.
	ErrInvalidHeaderSize = errors.New("ledgerbin: invalid header size")

	// ErrMagicMismatch is returned by Reader.Parse when the leading magic
	// word does not match the expected constant (Reader.Test reports the
	// same condition as false).
	ErrMagicMismatch = errors.New("ledgerbin: magic number mismatch")

	// ErrVersionMismatch is returned by Reader.Parse when the format version
	// word does not match the expected constant exactly (Reader.Test
	// reports the same condition as false).
	ErrVersionMismatch = errors.New("ledgerbin: format version mismatch")

	// ErrStale is returned by Parse when a recorded source file's mtime is
	// older than the file's current on-disk mtime. A requested source path
	// that doesn't match the first recorded source is not an error: Parse
	// returns 0 entries and a nil error.
	ErrStale = errors.New("ledgerbin: cache is stale")

	// ErrSourceStat is returned when stat-ing a recorded source file fails.
	ErrSourceStat = errors.New("ledgerbin: failed to stat source file")

	// ErrStringPoolOverrun is returned when a pooled string read would
	// advance the string-pool cursor past the declared pool length.
	ErrStringPoolOverrun = errors.New("ledgerbin: string pool overrun")

	// ErrStringPoolNotExhausted is returned when, after all entries are
	// constructed, the string-pool cursor has not reached the pool's end.
	ErrStringPoolNotExhausted = errors.New("ledgerbin: string pool not fully consumed")

	// ErrStringPoolSizeMismatch is returned when a decompressed string
	// pool's length does not match the uncompressed size recorded on write.
	ErrStringPoolSizeMismatch = errors.New("ledgerbin: decompressed string pool size mismatch")

	// ErrStringTooLong is returned when a string exceeds the escape-prefix
	// encoding's maximum representable length (65535 bytes).
	ErrStringTooLong = errors.New("ledgerbin: string exceeds maximum length")

	// ErrDebugGuardMismatch is returned when a debug-mode string's leading
	// or trailing guard word doesn't match the expected constant.
	ErrDebugGuardMismatch = errors.New("ledgerbin: debug string guard mismatch")

	// ErrAccountIdentOutOfRange is returned when a transaction or child
	// account references an account identifier outside the table just read.
	ErrAccountIdentOutOfRange = errors.New("ledgerbin: account identifier out of range")

	// ErrCommodityIdentOutOfRange is returned when an amount references a
	// commodity identifier outside the table just read.
	ErrCommodityIdentOutOfRange = errors.New("ledgerbin: commodity identifier out of range")

	// ErrCommoditySymbolCollision is returned when inserting a commodity
	// into a CommodityTable whose symbol already exists in the table.
	ErrCommoditySymbolCollision = errors.New("ledgerbin: commodity symbol collision")

	// ErrArenaExhausted is returned when the arena loader would construct
	// more entries, transactions, or quantities than the pre-read counts
	// declared.
	ErrArenaExhausted = errors.New("ledgerbin: arena pool exhausted")

	// ErrArenaNotExhausted is returned when a load completes without
	// consuming every entry/transaction/quantity slot the header promised.
	ErrArenaNotExhausted = errors.New("ledgerbin: arena pool not fully consumed")

	// ErrInvalidCompressionType is returned by codec.WithPoolCompression
	// when given a compression type ledgerbin doesn't recognize. An
	// unrecognized type in a stream header is reported by Parse with
	// compress.GetCodec's own error instead.
	ErrInvalidCompressionType = errors.New("ledgerbin: invalid compression type")

	// ErrNotSeekable is returned when back-patch finalization is attempted
	// against a sink that cannot report or rewrite a prior position.
	ErrNotSeekable = errors.New("ledgerbin: sink does not support back-patching")

	// ErrDigestMismatch is returned by the optional integrity check when
	// the trailing xxHash64 fingerprint doesn't match the payload read.
	// It is never fatal on its own (see Reader.IntegrityError).
	ErrDigestMismatch = errors.New("ledgerbin: integrity digest mismatch")
)
