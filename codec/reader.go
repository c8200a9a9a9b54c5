package codec

import (
	"fmt"
	"io"

	"github.com/ledgerbin/ledgerbin/arena"
	"github.com/ledgerbin/ledgerbin/compress"
	"github.com/ledgerbin/ledgerbin/endian"
	"github.com/ledgerbin/ledgerbin/errs"
	"github.com/ledgerbin/ledgerbin/format"
	"github.com/ledgerbin/ledgerbin/internal/digest"
	"github.com/ledgerbin/ledgerbin/internal/options"
	"github.com/ledgerbin/ledgerbin/ledger"
	"github.com/ledgerbin/ledgerbin/section"
	"github.com/ledgerbin/ledgerbin/wire"
)

// Reader deserializes the journal binary format into a *ledger.Journal,
// following the read sequence of spec.md §4.5. A Reader accumulates state
// across repeated Parse calls against its own Journal, mirroring the
// "accept several caches, unify them" role SPEC_FULL.md's ReadAll plays
// over several files.
type Reader struct {
	engine      endian.EndianEngine
	checkDigest bool

	journal      *ledger.Journal
	integrityErr error
}

// NewReader creates a Reader with an empty Journal and ledgerbin's fixed
// little-endian wire order.
func NewReader(opts ...ReaderOption) (*Reader, error) {
	r := &Reader{
		engine:  endian.GetLittleEndianEngine(),
		journal: ledger.NewJournal(),
	}

	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// Journal returns the Journal this Reader accumulates into across Parse
// calls.
func (r *Reader) Journal() *ledger.Journal {
	return r.journal
}

// IntegrityError returns the non-fatal digest mismatch recorded by the
// most recent Parse, if WithIntegrityCheck is enabled and a mismatch was
// found. It is nil otherwise, including when no digest trailer is
// present at all (an older or digest-less stream is not itself an
// integrity failure).
func (r *Reader) IntegrityError() error {
	return r.integrityErr
}

func readHeaderFrom(r io.Reader, engine endian.EndianEngine) (section.Header, error) {
	var buf [section.HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return section.Header{}, err
	}

	var h section.Header
	if err := h.Parse(buf[:], engine); err != nil {
		return section.Header{}, err
	}

	return h, nil
}

// Test reports whether src begins with ledgerbin's magic number and an
// exactly matching format version, per spec.md §4.5 step 1. The stream is
// always rewound to position 0 before returning, so a parser registry can
// either hand src to the next candidate codec or call Parse fresh.
func (r *Reader) Test(src io.ReadSeeker) bool {
	h, err := readHeaderFrom(src, r.engine)
	ok := err == nil && h.Magic == format.Magic && h.FormatVersion == format.FormatVersion

	_, _ = src.Seek(0, io.SeekStart)

	return ok
}

// Parse implements spec.md §4.5's read sequence. sourcePath, if non-empty,
// must match the first recorded source path or Parse returns (0, nil) —
// the stream is well-formed but not applicable to this caller. master, if
// non-nil, replaces the freshly-read account tree's root: its top-level
// children are re-parented onto master (ledger.Account.AdoptChild) rather
// than the read-time root being kept. On success the newly read entries,
// accounts, and commodities are merged into r.Journal().
func (r *Reader) Parse(src io.ReadSeeker, sourcePath string, master *ledger.Account) (int, error) {
	r.integrityErr = nil

	var dw *digest.Writer
	var in io.Reader = src
	if r.checkDigest {
		dw = digest.NewWriter()
		in = io.TeeReader(src, dw)
	}

	h, err := readHeaderFrom(in, r.engine)
	if err != nil {
		return 0, err
	}
	if h.Magic != format.Magic {
		_, _ = src.Seek(0, io.SeekStart)
		return 0, errs.ErrMagicMismatch
	}
	if h.FormatVersion != format.FormatVersion {
		_, _ = src.Seek(0, io.SeekStart)
		return 0, errs.ErrVersionMismatch
	}

	sc := wire.StringCodec{Engine: r.engine, DebugGuards: h.Flag.DebugGuards}

	sources, matched, err := readFileTable(in, r.engine, sc, sourcePath)
	if err != nil {
		return 0, err
	}
	if !matched {
		return 0, nil
	}
	for _, src := range sources {
		r.journal.AddSource(src)
	}

	accountCount, err := wire.ReadUint64(in, r.engine)
	if err != nil {
		return 0, err
	}
	accountsByIdent := make([]*ledger.Account, accountCount)

	root, err := readAccountTree(in, r.engine, sc, accountsByIdent)
	if err != nil {
		return 0, err
	}

	if master != nil {
		for _, child := range root.Children {
			master.AdoptChild(child)
		}
	} else {
		r.journal.Root = root
	}

	poolSize, err := wire.ReadUint64(in, r.engine)
	if err != nil {
		return 0, err
	}
	compressedPoolSize, err := wire.ReadUint64(in, r.engine)
	if err != nil {
		return 0, err
	}
	compressedPool := make([]byte, compressedPoolSize)
	if _, err := io.ReadFull(in, compressedPool); err != nil {
		return 0, err
	}
	poolCodec, err := compress.GetCodec(h.Flag.Compression)
	if err != nil {
		return 0, fmt.Errorf("resolve pool codec: %w", err)
	}
	poolBytes, err := poolCodec.Decompress(compressedPool)
	if err != nil {
		return 0, fmt.Errorf("decompress string pool: %w", err)
	}
	if uint64(len(poolBytes)) != poolSize { //nolint:gosec
		return 0, errs.ErrStringPoolSizeMismatch
	}

	entryCount, err := wire.ReadUint64(in, r.engine)
	if err != nil {
		return 0, err
	}
	xactCount, err := wire.ReadUint64(in, r.engine)
	if err != nil {
		return 0, err
	}
	bigintCount, err := wire.ReadUint64(in, r.engine)
	if err != nil {
		return 0, err
	}

	entryPool := arena.NewPool[ledger.Entry](int(bound(entryCount)))
	xactPool := arena.NewPool[ledger.Transaction](int(bound(xactCount)))
	bigintPool := arena.NewPool[ledger.Quantity](int(bound(bigintCount)))

	fpBefore := r.journal.Commodities.CollisionFingerprint()
	commoditiesByIdent, err := readCommodityTable(in, r.engine, sc, r.journal, bigintPool)
	if err != nil {
		return 0, err
	}
	// Only this stream's own commodities should count toward its digest —
	// a Reader accumulating several Parse calls (codec.ReadAll) would
	// otherwise fold in symbols from earlier files the writer never saw.
	streamCommodityFingerprint := r.journal.Commodities.CollisionFingerprint() ^ fpBefore

	poolCursor := 0
	for i := uint64(0); i < entryCount; i++ {
		entrySlot, err := entryPool.Next()
		if err != nil {
			return 0, err
		}

		date, err := wire.ReadTimestamp(in, r.engine)
		if err != nil {
			return 0, err
		}
		var stateByte [1]byte
		if _, err := io.ReadFull(in, stateByte[:]); err != nil {
			return 0, err
		}
		xactN, err := wire.ReadUint32(in, r.engine)
		if err != nil {
			return 0, err
		}

		var code, payee string
		code, poolCursor, err = sc.ReadStringPool(poolBytes, poolCursor)
		if err != nil {
			return 0, err
		}
		payee, poolCursor, err = sc.ReadStringPool(poolBytes, poolCursor)
		if err != nil {
			return 0, err
		}

		entrySlot.Date = date
		entrySlot.State = ledger.EntryState(stateByte[0])
		entrySlot.Code = code
		entrySlot.Payee = payee

		for t := uint32(0); t < xactN; t++ {
			xactSlot, err := xactPool.Next()
			if err != nil {
				return 0, err
			}

			accIdent, err := wire.ReadUint32(in, r.engine)
			if err != nil {
				return 0, err
			}

			amt, err := readAmount(in, r.engine, commoditiesByIdent, bigintPool)
			if err != nil {
				return 0, err
			}

			var hasCost [1]byte
			if _, err := io.ReadFull(in, hasCost[:]); err != nil {
				return 0, err
			}
			var cost *ledger.Amount
			if hasCost[0] != 0 {
				costAmt, err := readAmount(in, r.engine, commoditiesByIdent, bigintPool)
				if err != nil {
					return 0, err
				}
				cost = &costAmt
			}

			flags, err := wire.ReadUint32(in, r.engine)
			if err != nil {
				return 0, err
			}
			xdate, err := wire.ReadTimestamp(in, r.engine)
			if err != nil {
				return 0, err
			}

			var note string
			note, poolCursor, err = sc.ReadStringPool(poolBytes, poolCursor)
			if err != nil {
				return 0, err
			}

			var account *ledger.Account
			if accIdent != format.NoneIdent {
				idx := int(accIdent) - 1
				if idx < 0 || idx >= len(accountsByIdent) {
					return 0, errs.ErrAccountIdentOutOfRange
				}
				account = accountsByIdent[idx]
			}

			xactSlot.Account = account
			xactSlot.Amount = amt
			xactSlot.Cost = cost
			xactSlot.Note = note
			xactSlot.Date = xdate
			xactSlot.Flags = ledger.TransactionFlag(flags) | ledger.FlagBulkAlloc

			entrySlot.AddTransaction(xactSlot)
		}

		r.journal.AddEntry(entrySlot)
	}

	if poolCursor != len(poolBytes) {
		return 0, errs.ErrStringPoolNotExhausted
	}
	if err := entryPool.Exhausted(); err != nil {
		return 0, err
	}
	if err := xactPool.Exhausted(); err != nil {
		return 0, err
	}
	if err := bigintPool.Exhausted(); err != nil {
		return 0, err
	}

	if r.checkDigest {
		var trailer [8]byte
		if _, err := io.ReadFull(src, trailer[:]); err == nil {
			want := r.engine.Uint64(trailer[:])
			if got := dw.Sum64() ^ streamCommodityFingerprint; got != want {
				r.integrityErr = errs.ErrDigestMismatch
			}
		}
	}

	return int(entryCount), nil //nolint:gosec
}

// bound caps a stream-declared count at a sane maximum before it is used
// to size an allocation, so a corrupt or adversarial header can't be used
// to force an enormous allocation before any other validation runs.
func bound(n uint64) uint64 {
	const maxBound = 1 << 32
	if n > maxBound {
		return maxBound
	}

	return n
}
