package codec

import (
	"fmt"
	"io"

	"github.com/ledgerbin/ledgerbin/arena"
	"github.com/ledgerbin/ledgerbin/endian"
	"github.com/ledgerbin/ledgerbin/errs"
	"github.com/ledgerbin/ledgerbin/format"
	"github.com/ledgerbin/ledgerbin/internal/pool"
	"github.com/ledgerbin/ledgerbin/ledger"
	"github.com/ledgerbin/ledgerbin/wire"
)

// writeAmount implements spec.md §4.2's amount codec: the commodity's
// identifier (format.NoneIdent if amt has no commodity), looked up in
// identOf rather than read off amt.Commodity.Ident directly — the side
// table Design Notes §9's Open Question resolution #3 calls for — then
// the opaque bigint quantity bytes. bigintsCount is advanced by one,
// mirroring the external arithmetic library's write-side contract.
func writeAmount(buf *pool.ByteBuffer, engine endian.EndianEngine, identOf map[*ledger.Commodity]uint32, amt ledger.Amount, bigintsCount *uint64) error {
	ident := format.NoneIdent
	if amt.Commodity != nil && !amt.Commodity.IsNull() {
		ident = identOf[amt.Commodity]
	}

	wire.PutUint32(buf, engine, ident)

	if err := ledger.WriteQuantity(buf, engine, amt.Quantity); err != nil {
		return fmt.Errorf("write amount quantity: %w", err)
	}

	*bigintsCount++

	return nil
}

// readAmount implements the read side of the amount codec: resolve the
// commodity by identifier (format.NoneIdent means no commodity), then
// deserialize the quantity into the next slot of bigints, the pre-sized
// arena pool that enforces spec.md §8's arena-exactness property.
func readAmount(r io.Reader, engine endian.EndianEngine, commoditiesByIdent []*ledger.Commodity, bigints *arena.Pool[ledger.Quantity]) (ledger.Amount, error) {
	ident, err := wire.ReadUint32(r, engine)
	if err != nil {
		return ledger.Amount{}, fmt.Errorf("read amount commodity ident: %w", err)
	}

	var commodity *ledger.Commodity
	if ident != format.NoneIdent {
		idx := int(ident) - 1
		if idx < 0 || idx >= len(commoditiesByIdent) {
			return ledger.Amount{}, fmt.Errorf("%w: %d", errs.ErrCommodityIdentOutOfRange, ident)
		}
		commodity = commoditiesByIdent[idx]
	}

	q, err := ledger.ReadQuantity(r, engine)
	if err != nil {
		return ledger.Amount{}, fmt.Errorf("read amount quantity: %w", err)
	}

	slot, err := bigints.Next()
	if err != nil {
		return ledger.Amount{}, err
	}
	*slot = q

	return ledger.Amount{Quantity: *slot, Commodity: commodity}, nil
}
