package ledger

import (
	"fmt"
	"io"
	"math/big"

	"github.com/ledgerbin/ledgerbin/endian"
	"github.com/ledgerbin/ledgerbin/internal/pool"
	"github.com/ledgerbin/ledgerbin/wire"
)

// Quantity is ledgerbin's stand-in for the spec's opaque "bigint payload":
// an arbitrary-precision decimal represented as an unscaled integer
// mantissa plus a power-of-ten scale, the representation a ledger amount
// (e.g. "12.3456 AAPL") needs regardless of which arithmetic library a
// caller eventually builds on top of Read/WriteQuantity.
type Quantity struct {
	Unscaled *big.Int
	Scale    uint8
}

// ZeroQuantity returns the additive identity at scale 0.
func ZeroQuantity() Quantity {
	return Quantity{Unscaled: big.NewInt(0)}
}

// NewQuantity builds a Quantity from an int64 mantissa and a scale.
func NewQuantity(unscaled int64, scale uint8) Quantity {
	return Quantity{Unscaled: big.NewInt(unscaled), Scale: scale}
}

// IsZero reports whether q is exactly zero, independent of scale.
func (q Quantity) IsZero() bool {
	return q.Unscaled == nil || q.Unscaled.Sign() == 0
}

// String renders q as a plain decimal, e.g. "-12.3400".
func (q Quantity) String() string {
	if q.Unscaled == nil {
		return "0"
	}

	digits := new(big.Int).Abs(q.Unscaled).String()
	for len(digits) <= int(q.Scale) {
		digits = "0" + digits
	}

	sign := ""
	if q.Unscaled.Sign() < 0 {
		sign = "-"
	}

	if q.Scale == 0 {
		return sign + digits
	}

	split := len(digits) - int(q.Scale)

	return sign + digits[:split] + "." + digits[split:]
}

// WriteQuantity appends q to buf as: one scale byte, one sign byte (1 for
// negative, else 0, since big.Int.Bytes has no sign), a uint16 byte-count
// of the magnitude, then the unsigned big-endian magnitude bytes.
// This is the wire contract any external arbitrary-precision library can
// substitute for, as long as it round-trips through the same four fields.
func WriteQuantity(buf *pool.ByteBuffer, engine endian.EndianEngine, q Quantity) error {
	buf.MustWrite([]byte{q.Scale})

	u := q.Unscaled
	if u == nil {
		u = big.NewInt(0)
	}

	sign := byte(0)
	if u.Sign() < 0 {
		sign = 1
	}
	buf.MustWrite([]byte{sign})

	mag := u.Bytes()
	if len(mag) > 0xFFFF {
		return fmt.Errorf("ledgerbin: quantity magnitude too large: %d bytes", len(mag))
	}
	wire.PutUint16(buf, engine, uint16(len(mag))) //nolint:gosec
	buf.MustWrite(mag)

	return nil
}

// ReadQuantity reads a Quantity written by WriteQuantity.
func ReadQuantity(r io.Reader, engine endian.EndianEngine) (Quantity, error) {
	var header [2]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return Quantity{}, fmt.Errorf("read quantity header: %w", err)
	}
	scale, sign := header[0], header[1]

	n, err := wire.ReadUint16(r, engine)
	if err != nil {
		return Quantity{}, fmt.Errorf("read quantity length: %w", err)
	}

	mag := make([]byte, n)
	if _, err := io.ReadFull(r, mag); err != nil {
		return Quantity{}, fmt.Errorf("read quantity magnitude: %w", err)
	}

	u := new(big.Int).SetBytes(mag)
	if sign == 1 {
		u.Neg(u)
	}

	return Quantity{Unscaled: u, Scale: scale}, nil
}

// SizeOf returns the number of bytes WriteQuantity would emit for q.
func SizeOf(q Quantity) int {
	u := q.Unscaled
	if u == nil {
		u = big.NewInt(0)
	}

	return 1 + 1 + 2 + len(u.Bytes())
}
