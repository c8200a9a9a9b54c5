// Package format defines the wire-level constants shared by every ledgerbin
// codec package: the magic number and version that gate a stream, and the
// compression types available for the optional string-pool compression
// feature.
package format

// Magic and FormatVersion gate every stream. FormatVersion is bumped
// relative to the original word-width-ambiguous design: every count field
// in the stream is now a fixed uint64 (see SPEC_FULL.md, Open Question
// resolution #1), which is an incompatible wire change from any prior
// revision, hence the major bump.
const (
	Magic         uint32 = 0xFFEED765
	FormatVersion uint32 = 0x00030000
)

// NoneIdent is the sentinel identifier meaning "no account" / "no
// commodity" wherever a 32-bit identifier field is written.
const NoneIdent uint32 = 0xFFFFFFFF

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone disables string-pool compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd compresses with zstd.
	CompressionS2   CompressionType = 0x3 // CompressionS2 compresses with S2 (snappy-compatible, faster).
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 compresses with LZ4.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// HeaderFlag packs the run-time options that must agree between writer and
// reader: the debug string-guard mode and the string-pool compression type.
// Folding these into the header (rather than leaving them as an undeclared,
// compile-time-only convention) closes the "mixing guarded and unguarded
// files is undefined behavior" hazard the original design called out — a
// reader takes both settings from the header instead of assuming them.
type HeaderFlag struct {
	DebugGuards bool
	Compression CompressionType
}

// Pack encodes the flag into a single byte: bit 0 is the debug-guard bit,
// bits 1-3 carry the compression type.
func (f HeaderFlag) Pack() byte {
	var b byte
	if f.DebugGuards {
		b |= 0x01
	}
	b |= byte(f.Compression) << 1

	return b
}

// UnpackHeaderFlag reverses Pack.
func UnpackHeaderFlag(b byte) HeaderFlag {
	return HeaderFlag{
		DebugGuards: b&0x01 != 0,
		Compression: CompressionType((b >> 1) & 0x07),
	}
}
