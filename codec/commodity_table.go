package codec

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/ledgerbin/ledgerbin/arena"
	"github.com/ledgerbin/ledgerbin/endian"
	"github.com/ledgerbin/ledgerbin/errs"
	"github.com/ledgerbin/ledgerbin/internal/pool"
	"github.com/ledgerbin/ledgerbin/ledger"
	"github.com/ledgerbin/ledgerbin/section"
	"github.com/ledgerbin/ledgerbin/wire"
)

// assignCommodityIdents builds the write-time ident side table for every
// non-null commodity in j, in a deterministic (lexicographic) order so a
// given journal always serializes to the same bytes. Building the whole
// table before any record is written lets a commodity's price history or
// conversion amount reference another commodity that sorts later.
func assignCommodityIdents(j *ledger.Journal) (symbols []string, identOf map[*ledger.Commodity]uint32) {
	symbols = j.Commodities.Symbols()
	sort.Strings(symbols)

	identOf = make(map[*ledger.Commodity]uint32, len(symbols))
	for i, sym := range symbols {
		identOf[j.Commodities.Lookup(sym)] = uint32(i + 1) //nolint:gosec
	}

	return symbols, identOf
}

// writeCommodityTable appends spec.md §4.3's commodity table: a count
// followed by each commodity's metadata, price history, last-lookup
// timestamp, and optional conversion amount. bigintsCount is advanced once
// per serialized amount (history entries and the conversion amount).
func writeCommodityTable(buf *pool.ByteBuffer, engine endian.EndianEngine, sc wire.StringCodec, j *ledger.Journal, symbols []string, identOf map[*ledger.Commodity]uint32, bigintsCount *uint64) error {
	wire.PutUint64(buf, engine, uint64(len(symbols)))

	for _, sym := range symbols {
		c := j.Commodities.Lookup(sym)

		entry := section.CommodityEntry{
			Ident:     identOf[c],
			Precision: c.Precision,
			Flags:     uint32(c.Flags),
			Symbol:    c.Symbol,
			Name:      c.Name,
			Note:      c.Note,
		}
		if err := section.WriteCommodityEntry(buf, engine, sc, entry); err != nil {
			return fmt.Errorf("write commodity %q: %w", c.Symbol, err)
		}

		ticks := make([]int64, 0, len(c.History))
		for tick := range c.History {
			ticks = append(ticks, tick)
		}
		sort.Slice(ticks, func(a, b int) bool { return ticks[a] < ticks[b] })

		wire.PutUint64(buf, engine, uint64(len(ticks)))
		for _, tick := range ticks {
			wire.PutUint64(buf, engine, uint64(tick)) //nolint:gosec
			if err := writeAmount(buf, engine, identOf, *c.History[tick], bigintsCount); err != nil {
				return fmt.Errorf("write commodity %q price history: %w", c.Symbol, err)
			}
		}

		wire.PutTimestamp(buf, engine, c.LastLookup)

		if c.Conversion != nil {
			buf.MustWrite([]byte{1})
			if err := writeAmount(buf, engine, identOf, *c.Conversion, bigintsCount); err != nil {
				return fmt.Errorf("write commodity %q conversion amount: %w", c.Symbol, err)
			}
		} else {
			buf.MustWrite([]byte{0})
		}
	}

	return nil
}

// readCommodityTable reads spec.md §4.3's commodity table, inserting each
// commodity into journal.Commodities as it is deserialized (asserting the
// insertion is fresh — errs.ErrCommoditySymbolCollision otherwise) and
// indexing commoditiesByIdent for amounts read afterward.
func readCommodityTable(r io.Reader, engine endian.EndianEngine, sc wire.StringCodec, journal *ledger.Journal, bigints *arena.Pool[ledger.Quantity]) ([]*ledger.Commodity, error) {
	count, err := wire.ReadUint64(r, engine)
	if err != nil {
		return nil, fmt.Errorf("read commodity count: %w", err)
	}

	commoditiesByIdent := make([]*ledger.Commodity, count)

	for i := uint64(0); i < count; i++ {
		e, err := section.ReadCommodityEntry(r, engine, sc)
		if err != nil {
			return nil, err
		}

		idx := int(e.Ident) - 1
		if idx < 0 || idx >= len(commoditiesByIdent) {
			return nil, fmt.Errorf("%w: %d", errs.ErrCommodityIdentOutOfRange, e.Ident)
		}

		c := ledger.NewCommodity(e.Symbol)
		c.Ident = e.Ident
		c.Name = e.Name
		c.Note = e.Note
		c.Precision = e.Precision
		c.Flags = ledger.CommodityFlag(e.Flags)
		commoditiesByIdent[idx] = c

		historySize, err := wire.ReadUint64(r, engine)
		if err != nil {
			return nil, fmt.Errorf("read commodity %q history size: %w", c.Symbol, err)
		}
		for h := uint64(0); h < historySize; h++ {
			tick, err := wire.ReadUint64(r, engine)
			if err != nil {
				return nil, fmt.Errorf("read commodity %q history tick: %w", c.Symbol, err)
			}
			amt, err := readAmount(r, engine, commoditiesByIdent, bigints)
			if err != nil {
				return nil, fmt.Errorf("read commodity %q history amount: %w", c.Symbol, err)
			}
			c.SetPrice(time.UnixMicro(int64(tick)).UTC(), &amt) //nolint:gosec
		}

		c.LastLookup, err = wire.ReadTimestamp(r, engine)
		if err != nil {
			return nil, fmt.Errorf("read commodity %q last lookup: %w", c.Symbol, err)
		}

		var hasConversion [1]byte
		if _, err := io.ReadFull(r, hasConversion[:]); err != nil {
			return nil, fmt.Errorf("read commodity %q conversion flag: %w", c.Symbol, err)
		}
		if hasConversion[0] != 0 {
			amt, err := readAmount(r, engine, commoditiesByIdent, bigints)
			if err != nil {
				return nil, fmt.Errorf("read commodity %q conversion amount: %w", c.Symbol, err)
			}
			c.Conversion = &amt
		}

		if err := journal.Commodities.Insert(c); err != nil {
			return nil, err
		}
	}

	journal.Commodities.SetIdentIndex(commoditiesByIdent)

	return commoditiesByIdent, nil
}
