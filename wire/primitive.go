package wire

import (
	"fmt"
	"io"
	"time"

	"github.com/ledgerbin/ledgerbin/endian"
	"github.com/ledgerbin/ledgerbin/internal/pool"
)

// PutUint16/32/64 append a fixed-width little-endian integer to buf.
func PutUint16(buf *pool.ByteBuffer, engine endian.EndianEngine, v uint16) {
	b := make([]byte, 2)
	engine.PutUint16(b, v)
	buf.MustWrite(b)
}

func PutUint32(buf *pool.ByteBuffer, engine endian.EndianEngine, v uint32) {
	b := make([]byte, 4)
	engine.PutUint32(b, v)
	buf.MustWrite(b)
}

func PutUint64(buf *pool.ByteBuffer, engine endian.EndianEngine, v uint64) {
	b := make([]byte, 8)
	engine.PutUint64(b, v)
	buf.MustWrite(b)
}

// PutTimestamp appends a unix-microsecond timestamp as a fixed-width int64.
// The int64→uint64 conversion is bit-preserving (two's complement), so no
// unsafe pointer reinterpretation is needed to round-trip negative values
// (dates before 1970).
func PutTimestamp(buf *pool.ByteBuffer, engine endian.EndianEngine, t time.Time) {
	PutUint64(buf, engine, uint64(t.UnixMicro())) //nolint:gosec
}

// ReadUint16/32/64 read a fixed-width little-endian integer from r.
func ReadUint16(r io.Reader, engine endian.EndianEngine) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("read uint16: %w", err)
	}

	return engine.Uint16(b[:]), nil
}

func ReadUint32(r io.Reader, engine endian.EndianEngine) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("read uint32: %w", err)
	}

	return engine.Uint32(b[:]), nil
}

func ReadUint64(r io.Reader, engine endian.EndianEngine) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("read uint64: %w", err)
	}

	return engine.Uint64(b[:]), nil
}

// ReadTimestamp reads a unix-microsecond timestamp written by PutTimestamp.
func ReadTimestamp(r io.Reader, engine endian.EndianEngine) (time.Time, error) {
	u, err := ReadUint64(r, engine)
	if err != nil {
		return time.Time{}, fmt.Errorf("read timestamp: %w", err)
	}

	return time.UnixMicro(int64(u)).UTC(), nil //nolint:gosec
}
