package codec

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ledgerbin/ledgerbin/endian"
	"github.com/ledgerbin/ledgerbin/errs"
	"github.com/ledgerbin/ledgerbin/ledger"
	"github.com/ledgerbin/ledgerbin/section"
	"github.com/ledgerbin/ledgerbin/wire"
)

// readFileTable reads spec.md §4.5's source-file table and performs the
// staleness check of §4.5 step 2: if sourcePath is non-empty and the
// first recorded path doesn't match it, the stream is "not a match" for
// this caller (matched=false, err=nil — not an error, just inapplicable).
// Otherwise every recorded path is stat'd; a newer on-disk mtime than
// recorded makes the cache stale (errs.ErrStale). The on-disk mtime is
// truncated to microseconds first, the resolution the stream records.
func readFileTable(r io.Reader, engine endian.EndianEngine, sc wire.StringCodec, sourcePath string) (sources []*ledger.SourceFile, matched bool, err error) {
	count, err := wire.ReadUint64(r, engine)
	if err != nil {
		return nil, false, fmt.Errorf("read file count: %w", err)
	}

	sources = make([]*ledger.SourceFile, 0, count)
	for i := uint64(0); i < count; i++ {
		path, mtime, err := section.ReadSourceEntry(r, engine, sc)
		if err != nil {
			return nil, false, err
		}
		if i == 0 && sourcePath != "" && path != sourcePath {
			return nil, false, nil
		}
		sources = append(sources, &ledger.SourceFile{Path: path, ModTime: mtime})
	}

	for _, src := range sources {
		info, err := os.Stat(src.Path)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %s: %v", errs.ErrSourceStat, src.Path, err)
		}
		if info.ModTime().Truncate(time.Microsecond).After(src.ModTime) {
			return nil, false, errs.ErrStale
		}
	}

	return sources, true, nil
}
