package section

import (
	"testing"

	"github.com/ledgerbin/ledgerbin/endian"
	"github.com/ledgerbin/ledgerbin/format"
	"github.com/stretchr/testify/require"
)

func TestHeader_BytesParseRoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	h := NewHeader(format.HeaderFlag{DebugGuards: true, Compression: format.CompressionZstd})

	data := h.Bytes(engine)
	require.Len(t, data, HeaderSize)

	var got Header
	require.NoError(t, got.Parse(data, engine))
	require.Equal(t, h, got)
}

func TestHeader_ParseRejectsWrongSize(t *testing.T) {
	var h Header
	err := h.Parse(make([]byte, HeaderSize-1), endian.GetLittleEndianEngine())
	require.Error(t, err)
}

func TestHeader_DefaultsToNoDebugGuardsNoCompression(t *testing.T) {
	h := NewHeader(format.HeaderFlag{})
	require.False(t, h.Flag.DebugGuards)
	require.Equal(t, format.CompressionType(0), h.Flag.Compression)
}
