package codec

import (
	"fmt"
	"io"

	"github.com/ledgerbin/ledgerbin/endian"
	"github.com/ledgerbin/ledgerbin/errs"
	"github.com/ledgerbin/ledgerbin/internal/pool"
	"github.com/ledgerbin/ledgerbin/ledger"
	"github.com/ledgerbin/ledgerbin/section"
	"github.com/ledgerbin/ledgerbin/wire"
)

// writeAccountTree appends a in pre-order, assigning it the next dense
// identifier out of *next and recording it in identOf so later phases
// (entries referencing accounts by pointer) can resolve it to the
// identifier just written, per spec.md §4.3.
func writeAccountTree(buf *pool.ByteBuffer, engine endian.EndianEngine, sc wire.StringCodec, a *ledger.Account, parentIdent uint32, identOf map[*ledger.Account]uint32, next *uint32) error {
	ident := *next
	*next++
	identOf[a] = ident

	entry := section.AccountEntry{
		Ident:       ident,
		ParentIdent: parentIdent,
		Depth:       uint32(a.Depth), //nolint:gosec
		ChildCount:  uint32(len(a.Children)),
		Name:        a.Name,
		Note:        a.Note,
	}
	if err := section.WriteAccountEntry(buf, engine, sc, entry); err != nil {
		return fmt.Errorf("write account %q: %w", a.Name, err)
	}

	for _, child := range a.Children {
		if err := writeAccountTree(buf, engine, sc, child, ident, identOf, next); err != nil {
			return err
		}
	}

	return nil
}

// readAccountTree reads one account record and, recursively, its
// child_count children, inserting each into accountsByIdent (indexed by
// ident-1) as it is allocated — pre-order read order matches write order,
// per spec.md §4.3.
func readAccountTree(r io.Reader, engine endian.EndianEngine, sc wire.StringCodec, accountsByIdent []*ledger.Account) (*ledger.Account, error) {
	e, err := section.ReadAccountEntry(r, engine, sc)
	if err != nil {
		return nil, err
	}

	idx := int(e.Ident) - 1
	if idx < 0 || idx >= len(accountsByIdent) {
		return nil, fmt.Errorf("%w: %d", errs.ErrAccountIdentOutOfRange, e.Ident)
	}

	a := ledger.NewAccount(e.Name)
	a.Note = e.Note
	a.Ident = e.Ident
	a.Depth = int(e.Depth)
	accountsByIdent[idx] = a

	for i := uint32(0); i < e.ChildCount; i++ {
		child, err := readAccountTree(r, engine, sc, accountsByIdent)
		if err != nil {
			return nil, err
		}
		child.Parent = a
		a.Children = append(a.Children, child)
	}
	a.IndexChildren()

	return a, nil
}
