package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.Equal(t, uint64(0), tracker.Fingerprint())
}

func TestTracker_Track(t *testing.T) {
	tracker := NewTracker()

	require.False(t, tracker.Track("USD"))
	require.Equal(t, 1, tracker.Count())

	require.False(t, tracker.Track("EUR"))
	require.Equal(t, 2, tracker.Count())

	require.True(t, tracker.Track("USD"), "re-tracking the same symbol is a collision")
	require.Equal(t, 2, tracker.Count(), "a collision does not grow the tracked set")
}

func TestTracker_Track_EmptySymbolNeverCollides(t *testing.T) {
	tracker := NewTracker()

	require.False(t, tracker.Track(""))
	require.False(t, tracker.Track(""))
	require.Equal(t, 0, tracker.Count())
}

func TestTracker_Fingerprint_OrderIndependent(t *testing.T) {
	a := NewTracker()
	a.Track("USD")
	a.Track("EUR")
	a.Track("AAPL")

	b := NewTracker()
	b.Track("AAPL")
	b.Track("USD")
	b.Track("EUR")

	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	require.NotZero(t, a.Fingerprint())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	tracker.Track("USD")
	tracker.Track("EUR")
	require.Equal(t, 2, tracker.Count())

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.Equal(t, uint64(0), tracker.Fingerprint())
	require.False(t, tracker.Track("USD"), "symbols tracked before Reset must be forgotten")
}
