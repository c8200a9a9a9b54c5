package codec

import (
	"fmt"
	"io"

	"github.com/ledgerbin/ledgerbin/compress"
	"github.com/ledgerbin/ledgerbin/endian"
	"github.com/ledgerbin/ledgerbin/format"
	"github.com/ledgerbin/ledgerbin/internal/digest"
	"github.com/ledgerbin/ledgerbin/internal/options"
	"github.com/ledgerbin/ledgerbin/internal/pool"
	"github.com/ledgerbin/ledgerbin/ledger"
	"github.com/ledgerbin/ledgerbin/section"
	"github.com/ledgerbin/ledgerbin/wire"
)

// Writer serializes a *ledger.Journal into the journal binary format
// described in SPEC_FULL.md §6, following the write sequence of §4.5: a
// fixed header, the source-file table, the account tree, an optionally
// compressed string pool, the arena counts, the commodity table, and
// finally the entries themselves.
type Writer struct {
	engine      endian.EndianEngine
	debugGuards bool
	compression format.CompressionType
	digest      bool
}

// NewWriter creates a Writer with ledgerbin's fixed little-endian wire
// order and the given options applied.
func NewWriter(opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		engine:      endian.GetLittleEndianEngine(),
		compression: format.CompressionNone,
	}

	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Writer) stringCodec() wire.StringCodec {
	return wire.StringCodec{Engine: w.engine, DebugGuards: w.debugGuards}
}

// Write serializes j to dst in full. It never partially flushes: the
// entire stream is assembled in a pooled in-memory buffer (so back-patch
// offsets never need a seekable destination) and written to dst only once
// complete.
func (w *Writer) Write(dst io.Writer, j *ledger.Journal) error {
	buf := pool.GetJournalBuffer()
	defer pool.PutJournalBuffer(buf)

	sc := w.stringCodec()
	engine := w.engine

	header := section.NewHeader(format.HeaderFlag{DebugGuards: w.debugGuards, Compression: w.compression})
	buf.MustWrite(header.Bytes(engine))

	if err := w.writeFileTable(buf, sc, j); err != nil {
		return err
	}

	identOf := make(map[*ledger.Account]uint32, j.AccountCount())
	var nextAccountIdent uint32 = 1

	wire.PutUint64(buf, engine, uint64(j.AccountCount()))
	if err := writeAccountTree(buf, engine, sc, j.Root, format.NoneIdent, identOf, &nextAccountIdent); err != nil {
		return fmt.Errorf("write account tree: %w", err)
	}

	poolBuf := pool.GetJournalBuffer()
	defer pool.PutJournalBuffer(poolBuf)

	var xactCount int
	for _, e := range j.Entries {
		if err := sc.WriteString(poolBuf, e.Code); err != nil {
			return fmt.Errorf("write entry code: %w", err)
		}
		if err := sc.WriteString(poolBuf, e.Payee); err != nil {
			return fmt.Errorf("write entry payee: %w", err)
		}
		for _, xact := range e.Transactions {
			if err := sc.WriteString(poolBuf, xact.Note); err != nil {
				return fmt.Errorf("write transaction note: %w", err)
			}
			xactCount++
		}
	}

	poolCodec, err := compress.GetCodec(w.compression)
	if err != nil {
		return fmt.Errorf("resolve pool codec: %w", err)
	}
	compressed, err := poolCodec.Compress(poolBuf.Bytes())
	if err != nil {
		return fmt.Errorf("compress string pool: %w", err)
	}

	wire.PutUint64(buf, engine, uint64(poolBuf.Len()))
	wire.PutUint64(buf, engine, uint64(len(compressed)))
	buf.MustWrite(compressed)

	wire.PutUint64(buf, engine, uint64(len(j.Entries)))
	wire.PutUint64(buf, engine, uint64(xactCount))

	bigintCountOffset := buf.Reserve(8)
	var bigintsCount uint64

	symbols, commodityIdentOf := assignCommodityIdents(j)
	if err := writeCommodityTable(buf, engine, sc, j, symbols, commodityIdentOf, &bigintsCount); err != nil {
		return err
	}

	if err := w.writeEntries(buf, sc, j, identOf, commodityIdentOf, &bigintsCount); err != nil {
		return err
	}

	bigintCountBytes := make([]byte, 8)
	engine.PutUint64(bigintCountBytes, bigintsCount)
	buf.Fill(bigintCountOffset, bigintCountBytes)

	if w.digest {
		sum := digest.Sum64(buf.Bytes()) ^ j.Commodities.CollisionFingerprint()
		wire.PutUint64(buf, engine, sum)
	}

	if _, err := buf.WriteTo(dst); err != nil {
		return fmt.Errorf("flush journal stream: %w", err)
	}

	// Only a completed write copies the side table onto the live commodities.
	for c, ident := range commodityIdentOf {
		c.Ident = ident
	}

	return nil
}

func (w *Writer) writeFileTable(buf *pool.ByteBuffer, sc wire.StringCodec, j *ledger.Journal) error {
	engine := w.engine

	wire.PutUint64(buf, engine, uint64(len(j.Sources)))
	for _, src := range j.Sources {
		if err := section.WriteSourceEntry(buf, engine, sc, src.Path, src.ModTime); err != nil {
			return fmt.Errorf("write source entry %q: %w", src.Path, err)
		}
	}

	return nil
}

func (w *Writer) writeEntries(buf *pool.ByteBuffer, sc wire.StringCodec, j *ledger.Journal, accountIdentOf map[*ledger.Account]uint32, commodityIdentOf map[*ledger.Commodity]uint32, bigintsCount *uint64) error {
	engine := w.engine

	for _, e := range j.Entries {
		wire.PutTimestamp(buf, engine, e.Date)
		buf.MustWrite([]byte{byte(e.State)})
		wire.PutUint32(buf, engine, uint32(len(e.Transactions))) //nolint:gosec

		for _, xact := range e.Transactions {
			accIdent := format.NoneIdent
			if xact.Account != nil {
				accIdent = accountIdentOf[xact.Account]
			}
			wire.PutUint32(buf, engine, accIdent)

			if err := writeAmount(buf, engine, commodityIdentOf, xact.Amount, bigintsCount); err != nil {
				return fmt.Errorf("write transaction amount: %w", err)
			}

			if xact.Cost != nil {
				buf.MustWrite([]byte{1})
				if err := writeAmount(buf, engine, commodityIdentOf, *xact.Cost, bigintsCount); err != nil {
					return fmt.Errorf("write transaction cost: %w", err)
				}
			} else {
				buf.MustWrite([]byte{0})
			}

			wire.PutUint32(buf, engine, uint32(xact.Flags))
			wire.PutTimestamp(buf, engine, xact.Date)
		}
	}

	return nil
}
