package ledger

import (
	"fmt"
	"time"

	"github.com/ledgerbin/ledgerbin/errs"
	"github.com/ledgerbin/ledgerbin/internal/collision"
)

// CommodityFlag holds the bit-flag attributes spec.md §3 lists for
// Commodity ("bit flags") without prescribing their meaning; ledgerbin
// reserves the low two bits for the two behaviors the original ledger
// format and its callers actually rely on, leaving the rest free for a
// caller's own use (round-tripped unchanged either way).
type CommodityFlag uint32

const (
	// FlagNoMarket marks a commodity that has no market price history. It
	// is stored and round-tripped like any other flag; PriceAt does not
	// consult it.
	FlagNoMarket CommodityFlag = 1 << iota
	// FlagBuiltin marks one of the small set of commodities a journal
	// implicitly defines (e.g. a default "$") rather than one declared
	// explicitly in the source text.
	FlagBuiltin
)

// Commodity is a unit of value: a currency, a security, or any other
// symbol with a decimal precision and, optionally, a price history.
type Commodity struct {
	// Ident is the dense, 1-based identifier assigned by the writer.
	// Like Account.Ident, it is only meaningful around a single
	// Write/Read call.
	Ident uint32

	// Symbol is the primary key in a journal's CommodityTable. The empty
	// symbol denotes the null commodity, which is never serialized
	// (spec.md §3); amounts with no commodity use format.NoneIdent
	// instead of an identifier.
	Symbol string

	Name      string
	Note      string
	Precision uint8
	Flags     CommodityFlag

	// History maps a unix-microsecond timestamp to the recorded price at
	// that time, keyed by time as spec.md §3 requires.
	History map[int64]*Amount

	LastLookup time.Time
	Conversion *Amount
}

// NewCommodity creates a commodity with the given symbol and an empty
// price history.
func NewCommodity(symbol string) *Commodity {
	return &Commodity{
		Symbol:  symbol,
		History: make(map[int64]*Amount),
	}
}

// IsNull reports whether c is the null commodity (empty symbol).
func (c *Commodity) IsNull() bool {
	return c == nil || c.Symbol == ""
}

// SetPrice records amt as the recorded price of c at t, keyed by
// t.UnixMicro() per spec.md §3.
func (c *Commodity) SetPrice(t time.Time, amt *Amount) {
	if c.History == nil {
		c.History = make(map[int64]*Amount)
	}
	c.History[t.UnixMicro()] = amt
}

// PriceAt returns the recorded price of c at exactly t, if any.
func (c *Commodity) PriceAt(t time.Time) (*Amount, bool) {
	amt, ok := c.History[t.UnixMicro()]

	return amt, ok
}

// CommodityTable is a journal-scoped symbol → *Commodity map. Per
// SPEC_FULL.md §5 / Design Notes §9, this replaces the original design's
// process-wide global commodity map: every Journal owns one, so two
// concurrent codec calls over two different journals never share state.
type CommodityTable struct {
	bySymbol   map[string]*Commodity
	byIdent    []*Commodity // index by ident-1; built fresh on each Read
	collisions *collision.Tracker
}

// NewCommodityTable creates an empty CommodityTable.
func NewCommodityTable() *CommodityTable {
	return &CommodityTable{bySymbol: make(map[string]*Commodity), collisions: collision.NewTracker()}
}

// Insert adds c to the table, keyed by c.Symbol. It returns
// errs.ErrCommoditySymbolCollision if a distinct commodity with the same
// symbol is already present — the Open Question resolution in
// SPEC_FULL.md §9 that replaces the original design's bare assertion.
// Inserting the null commodity (empty symbol) is a no-op and never an
// error: it is conceptually always present and never collides.
//
// The collision.Tracker is the sole gate for this check: it is keyed by
// xxHash64(c.Symbol) rather than the symbol itself, so it catches both a
// duplicate insert of the same symbol and the astronomically rare case of
// two distinct symbols hashing to the same value — a case a plain
// string-keyed check would miss entirely, silently letting
// CollisionFingerprint become ambiguous between two symbol sets that are
// not actually equal.
func (t *CommodityTable) Insert(c *Commodity) error {
	if c.IsNull() {
		return nil
	}

	if t.collisions.Track(c.Symbol) {
		return fmt.Errorf("%w: symbol %q", errs.ErrCommoditySymbolCollision, c.Symbol)
	}

	t.bySymbol[c.Symbol] = c

	return nil
}

// CollisionFingerprint returns the order-independent xxHash64 fingerprint
// of every distinct symbol inserted so far, for callers that want a cheap
// way to compare two tables' symbol sets (e.g. folding it into a larger
// integrity check) without iterating Symbols() and re-hashing.
func (t *CommodityTable) CollisionFingerprint() uint64 {
	return t.collisions.Fingerprint()
}

// Get looks up a commodity by symbol. The empty symbol always misses —
// callers represent "no commodity" with a nil *Commodity, never a lookup
// of "".
func (t *CommodityTable) Get(symbol string) (*Commodity, bool) {
	if symbol == "" {
		return nil, false
	}
	c, ok := t.bySymbol[symbol]

	return c, ok
}

// GetByIdent resolves a 1-based commodity identifier against the index
// array built by the most recent Read. It returns
// errs.ErrCommodityIdentOutOfRange if ident is out of bounds.
func (t *CommodityTable) GetByIdent(ident uint32) (*Commodity, error) {
	idx := int(ident) - 1
	if idx < 0 || idx >= len(t.byIdent) {
		return nil, fmt.Errorf("%w: %d", errs.ErrCommodityIdentOutOfRange, ident)
	}

	return t.byIdent[idx], nil
}

// SetIdentIndex replaces the ident→commodity index array used by
// GetByIdent. Called once by the symbol-table reader after the commodity
// table has been fully read.
func (t *CommodityTable) SetIdentIndex(byIdent []*Commodity) {
	t.byIdent = byIdent
}

// Count returns the number of distinct symbols in the table, not counting
// the null commodity.
func (t *CommodityTable) Count() int {
	return len(t.bySymbol)
}

// Symbols returns every distinct symbol currently in the table. The order
// is unspecified; callers that need a deterministic write order should sort
// it themselves.
func (t *CommodityTable) Symbols() []string {
	out := make([]string, 0, len(t.bySymbol))
	for s := range t.bySymbol {
		out = append(out, s)
	}

	return out
}

// Lookup resolves symbol, falling back to the null commodity (nil) for "".
// It never inserts.
func (t *CommodityTable) Lookup(symbol string) *Commodity {
	if symbol == "" {
		return nil
	}

	return t.bySymbol[symbol]
}
