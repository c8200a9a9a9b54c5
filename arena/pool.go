// Package arena provides the fixed-count, pre-sized object pool
// codec.Reader uses to satisfy the "exactly entry_count entries,
// transaction_count transactions, and bigint_count bigint payloads
// constructed; no over-run" invariant (spec.md §8) without a literal
// placement-new byte arena: Pool[T] allocates its backing slice once, up
// front, and every subsequent Next() call hands out a pointer into that
// slice rather than allocating a fresh T.
//
// Pool is deliberately generic over T with no dependency on package
// ledger — codec is the one package that instantiates
// arena.Pool[ledger.Entry], arena.Pool[ledger.Transaction], and
// arena.Pool[ledger.Quantity] and wires the results into a ledger.Journal,
// which keeps ledger and arena free of an import cycle.
package arena

import (
	"fmt"

	"github.com/ledgerbin/ledgerbin/errs"
)

// Pool is a pre-sized, append-only arena of exactly n values of type T.
// It is not safe for concurrent use; codec.Reader owns one per journal
// load and never shares it across goroutines.
type Pool[T any] struct {
	items []T
	next  int
}

// NewPool allocates a Pool sized for exactly n values. count is known up
// front from the header fields codec.Reader reads before entering the
// entry/transaction/bigint decode loop.
func NewPool[T any](count int) *Pool[T] {
	return &Pool[T]{items: make([]T, count)}
}

// Next returns a pointer to the next unconstructed slot, or
// errs.ErrArenaExhausted if the pool's count has already been reached.
func (p *Pool[T]) Next() (*T, error) {
	if p.next >= len(p.items) {
		return nil, fmt.Errorf("%w: capacity %d", errs.ErrArenaExhausted, len(p.items))
	}

	item := &p.items[p.next]
	p.next++

	return item, nil
}

// Len returns the pool's total capacity (the count it was constructed with).
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Count returns the number of slots constructed so far via Next.
func (p *Pool[T]) Count() int {
	return p.next
}

// Exhausted reports whether every slot has been constructed. Returning
// errs.ErrArenaNotExhausted from this check (wrapped with the shortfall)
// is how codec.Reader enforces the "no under-run" half of the construction
// count invariant once a load finishes.
func (p *Pool[T]) Exhausted() error {
	if p.next != len(p.items) {
		return fmt.Errorf("%w: constructed %d of %d", errs.ErrArenaNotExhausted, p.next, len(p.items))
	}

	return nil
}

// Items returns the pool's backing slice. Valid only after Exhausted
// returns nil; codec.Reader uses it to hand the constructed values off to
// the ledger.Journal it assembles.
func (p *Pool[T]) Items() []T {
	return p.items
}

// Reset clears the pool back to an empty, zero-count state over the same
// backing slice, discarding any values already constructed. Not used by
// codec.Reader's single-pass load; provided for callers that reuse a Pool
// across repeated test fixtures.
func (p *Pool[T]) Reset() {
	var zero T
	for i := range p.items {
		p.items[i] = zero
	}
	p.next = 0
}
