package section

import (
	"fmt"
	"io"
	"time"

	"github.com/ledgerbin/ledgerbin/endian"
	"github.com/ledgerbin/ledgerbin/internal/pool"
	"github.com/ledgerbin/ledgerbin/wire"
)

// WriteSourceEntry appends one source-file record: an 8-byte mtime
// followed by path as a streamed string. codec.Writer calls this once
// per ledger.SourceFile before the account table, in the order
// Journal.Sources lists them.
func WriteSourceEntry(buf *pool.ByteBuffer, engine endian.EndianEngine, codec wire.StringCodec, path string, modTime time.Time) error {
	wire.PutTimestamp(buf, engine, modTime)

	return codec.WriteString(buf, path)
}

// ReadSourceEntry reads one record written by WriteSourceEntry.
func ReadSourceEntry(r io.Reader, engine endian.EndianEngine, codec wire.StringCodec) (path string, modTime time.Time, err error) {
	modTime, err = wire.ReadTimestamp(r, engine)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("read source entry mtime: %w", err)
	}

	path, err = codec.ReadStringStream(r)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("read source entry path: %w", err)
	}

	return path, modTime, nil
}
