// Package collision tracks commodity symbols by their xxHash64 digest
// while a journal's commodity table is read or written, so both a
// duplicate symbol and a genuine hash collision between two distinct
// symbols are reported as the same typed error instead of the original
// design's bare assertion.
package collision

import "github.com/ledgerbin/ledgerbin/internal/hash"

// Tracker maps xxHash64(symbol) to the symbol that produced it. Track
// looks up only the hash and never compares the stored symbol, so it
// reports both "the same symbol twice" and "two different symbols, same
// hash" as a collision; accepting the latter would make
// CollisionFingerprint ambiguous between two symbol sets that are not
// actually equal.
type Tracker struct {
	byHash      map[uint64]string
	fingerprint uint64
}

// NewTracker creates a new, empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{byHash: make(map[uint64]string)}
}

// Track registers symbol under its xxHash64 digest and reports whether
// doing so found a collision: either symbol was already tracked, or a
// different symbol previously claimed the same hash. The empty symbol
// (the null commodity) is never tracked and never reported as a
// collision — it is not serialized per spec §3 and every amount
// referencing it uses the 0xFFFFFFFF sentinel.
func (t *Tracker) Track(symbol string) (collision bool) {
	if symbol == "" {
		return false
	}

	h := hash.ID(symbol)
	if _, ok := t.byHash[h]; ok {
		return true
	}

	t.byHash[h] = symbol
	t.fingerprint ^= h

	return false
}

// Count returns the number of distinct hashes tracked so far.
func (t *Tracker) Count() int {
	return len(t.byHash)
}

// Fingerprint returns the running XOR of xxHash64(symbol) over every
// distinct symbol tracked. XOR makes it insertion-order independent, which
// matters because account/commodity traversal order is deterministic but
// callers shouldn't have to rely on that to compare two trackers.
func (t *Tracker) Fingerprint() uint64 {
	return t.fingerprint
}

// Reset clears all tracked symbols, allowing the Tracker to be reused.
func (t *Tracker) Reset() {
	for k := range t.byHash {
		delete(t.byHash, k)
	}
	t.fingerprint = 0
}
