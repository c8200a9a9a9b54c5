package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEntry_AddTransaction(t *testing.T) {
	root := NewAccount("")
	assets := root.AddAccount(NewAccount("Assets"))

	e := NewEntry(time.Now(), "Coffee Shop")
	xact := &Transaction{Account: assets, Amount: *NewAmount(NewQuantity(-500, 2), nil)}
	e.AddTransaction(xact)

	require.Len(t, e.Transactions, 1)
	require.Same(t, e, xact.Entry())
	require.Equal(t, []*Transaction{xact}, assets.Transactions, "attaching a transaction must register it on its account")
}

func TestEntry_ClearState(t *testing.T) {
	root := NewAccount("")
	assets := root.AddAccount(NewAccount("Assets"))

	e := NewEntry(time.Now(), "Coffee Shop")
	cleared := &Transaction{Account: assets}
	pending := &Transaction{Account: assets, Flags: FlagPending}
	e.AddTransaction(cleared)
	e.AddTransaction(pending)

	e.ClearState()

	require.Equal(t, StateCleared, e.State)
	require.True(t, cleared.Cleared())
	require.False(t, pending.Cleared(), "a transaction individually marked pending must not be force-cleared")
}
