package section

import (
	"github.com/ledgerbin/ledgerbin/endian"
	"github.com/ledgerbin/ledgerbin/errs"
	"github.com/ledgerbin/ledgerbin/format"
)

// Header is the fixed-size record at the very start of a journal stream:
// magic, format version, and the packed run-time flag byte. Every later
// count (file_count, account_count, string_pool_size, entry_count,
// transaction_count, bigint_count, commodity_count) is written at its own
// point in the stream, exactly where spec.md §6 places it, rather than
// gathered up front. codec.Writer writes each directly, except
// bigint_count, which it reserves with pool.ByteBuffer.Reserve and fills in
// with Fill once the entries have been written.
type Header struct {
	Magic         uint32
	FormatVersion uint32
	Flag          format.HeaderFlag
}

// NewHeader creates a header with the current magic and format version.
func NewHeader(flag format.HeaderFlag) Header {
	return Header{
		Magic:         format.Magic,
		FormatVersion: format.FormatVersion,
		Flag:          flag,
	}
}

// Bytes serializes h into a HeaderSize-byte little-endian record. The
// wire format is fixed little-endian (SPEC_FULL.md Open Question
// resolution #2); engine is accepted for symmetry with the rest of the
// package's Bytes/Parse pairs, so a future big-endian revision is a
// config change here rather than a rewrite.
func (h Header) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, HeaderSize)

	engine.PutUint32(b[0:4], h.Magic)
	engine.PutUint32(b[4:8], h.FormatVersion)
	b[8] = h.Flag.Pack()

	return b
}

// Parse parses a HeaderSize-byte record into h. It does not check Magic
// or FormatVersion — codec.Reader.Test and Parse do that explicitly so a
// mismatch can be reported before any other parsing is attempted.
func (h *Header) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Magic = engine.Uint32(data[0:4])
	h.FormatVersion = engine.Uint32(data[4:8])
	h.Flag = format.UnpackHeaderFlag(data[8])

	return nil
}
