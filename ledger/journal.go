package ledger

import "time"

// SourceFile records one source text file a Journal was built from: its
// path and the mtime observed at load time, the pair codec.Reader.Parse
// compares against a fresh os.Stat to detect staleness (spec.md §4.2).
type SourceFile struct {
	Path    string
	ModTime time.Time
}

// Journal is the root of a loaded accounting journal: the account tree,
// the commodity table, and every entry, in the order they were read.
type Journal struct {
	Root        *Account
	Commodities *CommodityTable
	Entries     []*Entry
	Sources     []*SourceFile

	// Transactions is a flat view over every transaction across every
	// entry, in entry order then posting order — the order the arena
	// pool constructs them in on Read.
	Transactions []*Transaction
}

// NewJournal creates an empty journal with an unnamed root account and an
// empty commodity table.
func NewJournal() *Journal {
	return &Journal{
		Root:        NewAccount(""),
		Commodities: NewCommodityTable(),
	}
}

// AddEntry appends e to the journal and its transactions to the flat
// Transactions view.
func (j *Journal) AddEntry(e *Entry) {
	j.Entries = append(j.Entries, e)
	j.Transactions = append(j.Transactions, e.Transactions...)
}

// AddSource records that src contributed to this journal.
func (j *Journal) AddSource(src *SourceFile) {
	j.Sources = append(j.Sources, src)
}

// AccountCount returns the number of accounts in the journal's tree,
// including the root.
func (j *Journal) AccountCount() int {
	return j.Root.Count()
}

// EntryCount returns the number of entries in the journal.
func (j *Journal) EntryCount() int {
	return len(j.Entries)
}

// TransactionCount returns the number of transactions (postings) across
// every entry in the journal.
func (j *Journal) TransactionCount() int {
	return len(j.Transactions)
}
