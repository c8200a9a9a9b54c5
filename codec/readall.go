package codec

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ledgerbin/ledgerbin/internal/pool"
	"github.com/ledgerbin/ledgerbin/ledger"
)

// ReadAll loads each of paths as its own cache stream, merging every
// journal's accounts, commodities, and entries into r.Journal(). It is
// the "accept N, unify" counterpart to a single Reader.Parse call, driven
// through repeated Parse calls rather than a one-shot constructor, since
// each stream independently decides whether it is stale before anything
// is merged.
//
// Each file is staged through the pool package's journal-set buffer
// (sized for holding several whole cache files at once, larger than the
// per-journal buffer Writer uses) rather than read straight off the
// os.File: Parse needs an io.ReadSeeker, and seeking within a pooled
// in-memory buffer is cheaper than seeking the underlying file.
//
// master, if non-nil, plays the same role it does in a single Parse
// call: every read's top-level accounts are adopted under master instead
// of staying on their own read-time root, so a multi-file include tree
// lands on one shared account tree rather than len(paths) disconnected
// ones. Each stream is parsed with an empty sourcePath — the caller has
// already chosen paths explicitly, so ReadAll accepts whatever each
// stream contains rather than matching it against a recorded source
// file. ReadAll stops at the first error, returning the entry count
// successfully merged so far alongside it.
func ReadAll(r *Reader, paths []string, master *ledger.Account) (int, error) {
	var total int

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return total, fmt.Errorf("open %s: %w", path, err)
		}

		n, parseErr := parseBuffered(r, f, master)
		closeErr := f.Close()

		if parseErr != nil {
			return total, fmt.Errorf("parse %s: %w", path, parseErr)
		}
		if closeErr != nil {
			return total, fmt.Errorf("close %s: %w", path, closeErr)
		}

		total += n
	}

	return total, nil
}

// parseBuffered stages f through the pool package's journal-set buffer
// before handing it to r.Parse as a seekable in-memory reader.
func parseBuffered(r *Reader, f *os.File, master *ledger.Account) (int, error) {
	bb := pool.GetJournalSetBuffer()
	defer pool.PutJournalSetBuffer(bb)

	if _, err := bb.ReadFrom(f); err != nil {
		return 0, fmt.Errorf("buffer stream: %w", err)
	}

	return r.Parse(bytes.NewReader(bb.Bytes()), "", master)
}
