package section

import (
	"fmt"
	"io"

	"github.com/ledgerbin/ledgerbin/endian"
	"github.com/ledgerbin/ledgerbin/internal/pool"
	"github.com/ledgerbin/ledgerbin/wire"
)

// CommodityEntry is the fixed-shape metadata of one commodity record:
// ident, precision, flags, symbol, name, and note. History, last-lookup,
// and conversion amount follow in the stream but are written directly by
// codec.Writer, since they reference other commodities by identifier and
// so need the full commodity-ident side table codec builds at write time.
type CommodityEntry struct {
	Ident     uint32
	Precision uint8
	Flags     uint32
	Symbol    string
	Name      string
	Note      string
}

// WriteCommodityEntry appends one commodity record's fixed metadata: a
// uint32 ident, a uint8 precision, and a uint32 flag word, then symbol,
// name, and note as streamed strings. The null commodity is never
// written — spec.md §3 — so Symbol here is always non-empty.
func WriteCommodityEntry(buf *pool.ByteBuffer, engine endian.EndianEngine, codec wire.StringCodec, e CommodityEntry) error {
	wire.PutUint32(buf, engine, e.Ident)
	buf.MustWrite([]byte{e.Precision})
	wire.PutUint32(buf, engine, e.Flags)

	if err := codec.WriteString(buf, e.Symbol); err != nil {
		return fmt.Errorf("write commodity symbol: %w", err)
	}
	if err := codec.WriteString(buf, e.Name); err != nil {
		return fmt.Errorf("write commodity name: %w", err)
	}

	return codec.WriteString(buf, e.Note)
}

// ReadCommodityEntry reads the fixed metadata written by
// WriteCommodityEntry.
func ReadCommodityEntry(r io.Reader, engine endian.EndianEngine, codec wire.StringCodec) (CommodityEntry, error) {
	var e CommodityEntry
	var err error

	if e.Ident, err = wire.ReadUint32(r, engine); err != nil {
		return e, fmt.Errorf("read commodity ident: %w", err)
	}

	var p [1]byte
	if _, err = io.ReadFull(r, p[:]); err != nil {
		return e, fmt.Errorf("read commodity precision: %w", err)
	}
	e.Precision = p[0]

	if e.Flags, err = wire.ReadUint32(r, engine); err != nil {
		return e, fmt.Errorf("read commodity flags: %w", err)
	}
	if e.Symbol, err = codec.ReadStringStream(r); err != nil {
		return e, fmt.Errorf("read commodity symbol: %w", err)
	}
	if e.Name, err = codec.ReadStringStream(r); err != nil {
		return e, fmt.Errorf("read commodity name: %w", err)
	}
	if e.Note, err = codec.ReadStringStream(r); err != nil {
		return e, fmt.Errorf("read commodity note: %w", err)
	}

	return e, nil
}
