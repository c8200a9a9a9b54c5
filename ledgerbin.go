// Package ledgerbin provides a binary cache format for a double-entry
// accounting journal: a parsed journal's account tree, commodity table,
// and entries are serialized once and read back without re-parsing the
// original plain-text ledger, as long as none of its source files have
// changed since.
//
// # Core Features
//
//   - Pre-order account-tree linearization with dense identifiers
//   - A dedicated string pool for repeated text (payees, notes)
//   - Arena allocation on load: entries, transactions, and quantities are
//     constructed into pre-sized slices instead of one-by-one
//   - Source-file staleness detection via recorded path + mtime
//   - Optional string-pool compression (None, Zstd, S2, LZ4)
//   - Optional whole-stream xxHash64 integrity fingerprint
//
// # Basic Usage
//
// Writing a journal to a cache stream:
//
//	import "github.com/ledgerbin/ledgerbin"
//
//	w, err := ledgerbin.NewWriter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f, _ := os.Create("main.journal.cache")
//	defer f.Close()
//	if err := w.Write(f, journal); err != nil {
//	    log.Fatal(err)
//	}
//
// Reading it back:
//
//	r, err := ledgerbin.NewReader()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f, _ := os.Open("main.journal.cache")
//	defer f.Close()
//	n, err := r.Parse(f, "main.journal", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if n == 0 {
//	    // stream didn't match "main.journal" (a stale source file is
//	    // reported above as errs.ErrStale instead)
//	}
//	loaded := r.Journal()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec
// package, covering the most common entry points. For per-section
// control (account/commodity record shapes, string-pool codec details,
// arena sizing), use the codec, section, and ledger packages directly.
package ledgerbin

import (
	"github.com/ledgerbin/ledgerbin/codec"
	"github.com/ledgerbin/ledgerbin/ledger"
)

// NewWriter creates a Writer configured with opts. With no options, it
// writes ledgerbin's fixed little-endian, uncompressed, digest-less
// stream layout — the closest equivalent to the original format's plain
// byte-for-byte cache.
func NewWriter(opts ...codec.WriterOption) (*codec.Writer, error) {
	return codec.NewWriter(opts...)
}

// NewReader creates a Reader with an empty Journal, ready to accumulate
// one or more Parse calls.
func NewReader(opts ...codec.ReaderOption) (*codec.Reader, error) {
	return codec.NewReader(opts...)
}

// ReadAll loads each of paths into a fresh Reader, merging every journal
// under master (if non-nil) the same way a single Parse call does, and
// returns the populated Reader alongside the total entry count merged.
//
// Use this when a ledger's cache is split across several files that
// share one accounts/commodities namespace — an include tree — rather
// than driving Reader.Parse by hand for each one.
func ReadAll(paths []string, master *ledger.Account, opts ...codec.ReaderOption) (*codec.Reader, int, error) {
	r, err := codec.NewReader(opts...)
	if err != nil {
		return nil, 0, err
	}

	n, err := codec.ReadAll(r, paths, master)
	return r, n, err
}
