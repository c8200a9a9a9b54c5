package ledger

import "time"

// EntryState is the clearedness of a whole entry (as opposed to a single
// transaction within it): uncleared, pending, or cleared, per spec.md §3.
type EntryState uint8

const (
	StateUncleared EntryState = iota
	StatePending
	StateCleared
)

// Entry is one user-recorded journal entry: a date, a payee/description,
// an optional code, and the set of Transactions (postings) it owns.
type Entry struct {
	Date         time.Time
	Code         string
	Payee        string
	Note         string
	State        EntryState
	Transactions []*Transaction

	// Source records where this entry came from, for staleness tracking
	// and error reporting (spec.md §4.2).
	Source     *SourceFile
	SourceLine uint32
}

// NewEntry creates an entry dated t with the given payee.
func NewEntry(t time.Time, payee string) *Entry {
	return &Entry{Date: t, Payee: payee}
}

// AddTransaction attaches xact to e, setting xact's owning entry and
// appending it to xact.Account's non-owning transaction view.
func (e *Entry) AddTransaction(xact *Transaction) {
	xact.entry = e
	e.Transactions = append(e.Transactions, xact)
	if xact.Account != nil {
		xact.Account.AddTransaction(xact)
	}
}

// ClearState sets State to StateCleared for e and every Transaction it
// owns that isn't individually marked pending.
func (e *Entry) ClearState() {
	e.State = StateCleared
	for _, xact := range e.Transactions {
		if !xact.Pending() {
			xact.Flags |= FlagCleared
		}
	}
}
