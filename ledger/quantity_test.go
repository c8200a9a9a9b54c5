package ledger

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ledgerbin/ledgerbin/endian"
	"github.com/ledgerbin/ledgerbin/internal/pool"
	"github.com/stretchr/testify/require"
)

func TestQuantity_WriteReadRoundTrip(t *testing.T) {
	cases := []Quantity{
		ZeroQuantity(),
		NewQuantity(12345, 2),
		NewQuantity(-12345, 2),
		{Unscaled: new(big.Int).SetBytes(bytes.Repeat([]byte{0xFF}, 40)), Scale: 8},
	}

	engine := endian.GetLittleEndianEngine()

	for _, q := range cases {
		buf := pool.GetJournalBuffer()

		err := WriteQuantity(buf, engine, q)
		require.NoError(t, err)

		got, err := ReadQuantity(bytes.NewReader(buf.B), engine)
		require.NoError(t, err)
		require.Equal(t, q.Scale, got.Scale)
		require.Equal(t, 0, q.Unscaled.Cmp(got.Unscaled))

		pool.PutJournalBuffer(buf)
	}
}

func TestQuantity_String(t *testing.T) {
	tests := []struct {
		name string
		q    Quantity
		want string
	}{
		{"zero", ZeroQuantity(), "0"},
		{"positive scaled", NewQuantity(12345, 2), "123.45"},
		{"negative scaled", NewQuantity(-12345, 2), "-123.45"},
		{"unscaled integer", NewQuantity(42, 0), "42"},
		{"leading zero pad", NewQuantity(5, 2), "0.05"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.q.String())
		})
	}
}

func TestQuantity_IsZero(t *testing.T) {
	require.True(t, ZeroQuantity().IsZero())
	require.True(t, Quantity{}.IsZero())
	require.False(t, NewQuantity(1, 0).IsZero())
}

func TestSizeOf_MatchesWrittenLength(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	q := NewQuantity(123456789, 4)

	buf := pool.GetJournalBuffer()
	require.NoError(t, WriteQuantity(buf, engine, q))

	require.Equal(t, SizeOf(q), len(buf.B))

	pool.PutJournalBuffer(buf)
}
