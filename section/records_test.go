package section

import (
	"bytes"
	"testing"
	"time"

	"github.com/ledgerbin/ledgerbin/endian"
	"github.com/ledgerbin/ledgerbin/format"
	"github.com/ledgerbin/ledgerbin/internal/pool"
	"github.com/ledgerbin/ledgerbin/wire"
	"github.com/stretchr/testify/require"
)

func stringCodec() wire.StringCodec {
	return wire.StringCodec{Engine: endian.GetLittleEndianEngine()}
}

func TestSourceEntry_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	buf := pool.GetJournalBuffer()
	defer pool.PutJournalBuffer(buf)

	modTime := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, WriteSourceEntry(buf, engine, stringCodec(), "main.journal", modTime))

	path, got, err := ReadSourceEntry(bytes.NewReader(buf.B), engine, stringCodec())
	require.NoError(t, err)
	require.Equal(t, "main.journal", path)
	require.True(t, modTime.Equal(got))
}

func TestAccountEntry_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	buf := pool.GetJournalBuffer()
	defer pool.PutJournalBuffer(buf)

	want := AccountEntry{
		Ident:       1,
		ParentIdent: format.NoneIdent,
		Depth:       0,
		ChildCount:  2,
		Name:        "Assets",
		Note:        "top-level",
	}
	require.NoError(t, WriteAccountEntry(buf, engine, stringCodec(), want))

	got, err := ReadAccountEntry(bytes.NewReader(buf.B), engine, stringCodec())
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.True(t, IsRootIdent(got.ParentIdent))
}

func TestCommodityEntry_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	buf := pool.GetJournalBuffer()
	defer pool.PutJournalBuffer(buf)

	want := CommodityEntry{
		Ident:     1,
		Precision: 2,
		Flags:     0x1,
		Symbol:    "USD",
		Name:      "US Dollar",
		Note:      "",
	}
	require.NoError(t, WriteCommodityEntry(buf, engine, stringCodec(), want))

	got, err := ReadCommodityEntry(bytes.NewReader(buf.B), engine, stringCodec())
	require.NoError(t, err)
	require.Equal(t, want, got)
}
