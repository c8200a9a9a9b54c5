package section

import (
	"fmt"
	"io"

	"github.com/ledgerbin/ledgerbin/endian"
	"github.com/ledgerbin/ledgerbin/format"
	"github.com/ledgerbin/ledgerbin/internal/pool"
	"github.com/ledgerbin/ledgerbin/wire"
)

// AccountEntry is the fixed-shape payload of one account record:
// ident, parent_ident (format.NoneIdent for the root), depth, and the
// number of children immediately following in the pre-order stream.
// child_count is what lets a recursive reader know where the children of
// one account end and its next sibling begins.
type AccountEntry struct {
	Ident       uint32
	ParentIdent uint32
	Depth       uint32
	ChildCount  uint32
	Name        string
	Note        string
}

// WriteAccountEntry appends one account record: ident, parent identifier,
// depth, and child count as fixed uint32 fields, then the account's name
// and note as streamed strings. codec.Writer emits these in the same
// pre-order traversal that assigns idents, so parent always precedes
// child in the stream.
func WriteAccountEntry(buf *pool.ByteBuffer, engine endian.EndianEngine, codec wire.StringCodec, e AccountEntry) error {
	wire.PutUint32(buf, engine, e.Ident)
	wire.PutUint32(buf, engine, e.ParentIdent)
	wire.PutUint32(buf, engine, e.Depth)
	wire.PutUint32(buf, engine, e.ChildCount)

	if err := codec.WriteString(buf, e.Name); err != nil {
		return fmt.Errorf("write account name: %w", err)
	}

	return codec.WriteString(buf, e.Note)
}

// ReadAccountEntry reads one record written by WriteAccountEntry.
func ReadAccountEntry(r io.Reader, engine endian.EndianEngine, codec wire.StringCodec) (AccountEntry, error) {
	var e AccountEntry
	var err error

	if e.Ident, err = wire.ReadUint32(r, engine); err != nil {
		return e, fmt.Errorf("read account ident: %w", err)
	}
	if e.ParentIdent, err = wire.ReadUint32(r, engine); err != nil {
		return e, fmt.Errorf("read account parent ident: %w", err)
	}
	if e.Depth, err = wire.ReadUint32(r, engine); err != nil {
		return e, fmt.Errorf("read account depth: %w", err)
	}
	if e.ChildCount, err = wire.ReadUint32(r, engine); err != nil {
		return e, fmt.Errorf("read account child count: %w", err)
	}
	if e.Name, err = codec.ReadStringStream(r); err != nil {
		return e, fmt.Errorf("read account name: %w", err)
	}
	if e.Note, err = codec.ReadStringStream(r); err != nil {
		return e, fmt.Errorf("read account note: %w", err)
	}

	return e, nil
}

// IsRootIdent reports whether ident marks "no parent" — format.NoneIdent.
func IsRootIdent(ident uint32) bool {
	return ident == format.NoneIdent
}
