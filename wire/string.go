// Package wire implements ledgerbin's primitive I/O: fixed-width integers,
// timestamps, and length-prefixed strings, with an optional debug guard
// framing. This is "Primitive I/O", component 1 of SPEC_FULL.md's codec —
// the leaf package every other ledgerbin codec package builds on.
package wire

import (
	"fmt"
	"io"

	"github.com/ledgerbin/ledgerbin/endian"
	"github.com/ledgerbin/ledgerbin/errs"
	"github.com/ledgerbin/ledgerbin/internal/pool"
)

// Length-prefix and debug-guard constants for the string wire format:
//
//	prefix byte: 0x00 = empty, 1..254 = byte length, 0xFF = escape + uint16 length
//	debug guards (when enabled): uint16 0x3001 before, uint16 0x3002 after
const (
	prefixEmpty    = 0x00
	prefixEscape   = 0xFF
	maxShortLength = 254
	MaxStringLen   = 0xFFFF

	guardBefore uint16 = 0x3001
	guardAfter  uint16 = 0x3002
)

// StringCodec carries the two run-time settings that a writer and a reader
// of the same stream must agree on: byte order and whether strings are
// bracketed by debug guards. The guard setting is recorded in the stream
// header (format.HeaderFlag) and the reader takes it from there; byte
// order is not recorded, since every stream is little-endian.
type StringCodec struct {
	Engine      endian.EndianEngine
	DebugGuards bool
}

// WriteString appends s to buf using the length-prefixed format, optionally
// bracketed by debug guards. It returns ErrStringTooLong if s exceeds
// MaxStringLen bytes.
func (c StringCodec) WriteString(buf *pool.ByteBuffer, s string) error {
	n := len(s)
	if n > MaxStringLen {
		return fmt.Errorf("%w: length %d", errs.ErrStringTooLong, n)
	}

	if c.DebugGuards {
		c.writeGuard(buf, guardBefore)
	}

	switch {
	case n == 0:
		buf.MustWrite([]byte{prefixEmpty})
	case n <= maxShortLength:
		buf.MustWrite([]byte{byte(n)})
		buf.MustWrite([]byte(s))
	default:
		lenBuf := make([]byte, 2)
		c.Engine.PutUint16(lenBuf, uint16(n)) //nolint:gosec
		buf.MustWrite([]byte{prefixEscape})
		buf.MustWrite(lenBuf)
		buf.MustWrite([]byte(s))
	}

	if c.DebugGuards {
		c.writeGuard(buf, guardAfter)
	}

	return nil
}

func (c StringCodec) writeGuard(buf *pool.ByteBuffer, guard uint16) {
	g := make([]byte, 2)
	c.Engine.PutUint16(g, guard)
	buf.MustWrite(g)
}

// ReadStringStream reads one length-prefixed string directly from r (the
// "streamed" read entry point used for account/commodity attributes and
// source-file paths, per SPEC_FULL.md §4.1).
func (c StringCodec) ReadStringStream(r io.Reader) (string, error) {
	if c.DebugGuards {
		if err := c.expectGuardStream(r, guardBefore); err != nil {
			return "", err
		}
	}

	var prefix [1]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return "", fmt.Errorf("read string prefix: %w", err)
	}

	s, err := c.readStringBody(r, prefix[0])
	if err != nil {
		return "", err
	}

	if c.DebugGuards {
		if err := c.expectGuardStream(r, guardAfter); err != nil {
			return "", err
		}
	}

	return s, nil
}

func (c StringCodec) readStringBody(r io.Reader, prefix byte) (string, error) {
	switch {
	case prefix == prefixEmpty:
		return "", nil
	case prefix == prefixEscape:
		var lenBuf [2]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return "", fmt.Errorf("read string length: %w", err)
		}
		n := c.Engine.Uint16(lenBuf[:])
		data := make([]byte, n)
		if _, err := io.ReadFull(r, data); err != nil {
			return "", fmt.Errorf("read string body: %w", err)
		}

		return string(data), nil
	default:
		data := make([]byte, prefix)
		if _, err := io.ReadFull(r, data); err != nil {
			return "", fmt.Errorf("read string body: %w", err)
		}

		return string(data), nil
	}
}

func (c StringCodec) expectGuardStream(r io.Reader, want uint16) error {
	var g [2]byte
	if _, err := io.ReadFull(r, g[:]); err != nil {
		return fmt.Errorf("read debug guard: %w", err)
	}
	if c.Engine.Uint16(g[:]) != want {
		return fmt.Errorf("%w: want 0x%04x, got 0x%04x", errs.ErrDebugGuardMismatch, want, c.Engine.Uint16(g[:]))
	}

	return nil
}

// ReadStringPool reads one length-prefixed string out of a pre-read pool
// byte region starting at offset, returning the string (an owned copy —
// the string(data) conversion below always copies, so the returned value
// has no lingering reference into pool) and the offset just past it. This
// is the "pooled" read entry point used for entry code/payee and
// transaction note, per SPEC_FULL.md §4.1.
func (c StringCodec) ReadStringPool(pool []byte, offset int) (s string, next int, err error) {
	if c.DebugGuards {
		offset, err = c.expectGuardPool(pool, offset, guardBefore)
		if err != nil {
			return "", offset, err
		}
	}

	if offset >= len(pool) {
		return "", offset, fmt.Errorf("%w: at offset %d", errs.ErrStringPoolOverrun, offset)
	}
	prefix := pool[offset]
	offset++

	switch {
	case prefix == prefixEmpty:
		s = ""
	case prefix == prefixEscape:
		if offset+2 > len(pool) {
			return "", offset, fmt.Errorf("%w: length prefix at offset %d", errs.ErrStringPoolOverrun, offset)
		}
		n := int(c.Engine.Uint16(pool[offset : offset+2]))
		offset += 2
		if offset+n > len(pool) {
			return "", offset, fmt.Errorf("%w: body at offset %d", errs.ErrStringPoolOverrun, offset)
		}
		s = string(pool[offset : offset+n])
		offset += n
	default:
		n := int(prefix)
		if offset+n > len(pool) {
			return "", offset, fmt.Errorf("%w: body at offset %d", errs.ErrStringPoolOverrun, offset)
		}
		s = string(pool[offset : offset+n])
		offset += n
	}

	if c.DebugGuards {
		offset, err = c.expectGuardPool(pool, offset, guardAfter)
		if err != nil {
			return "", offset, err
		}
	}

	return s, offset, nil
}

func (c StringCodec) expectGuardPool(data []byte, offset int, want uint16) (int, error) {
	if offset+2 > len(data) {
		return offset, fmt.Errorf("%w: at offset %d", errs.ErrStringPoolOverrun, offset)
	}
	got := c.Engine.Uint16(data[offset : offset+2])
	if got != want {
		return offset, fmt.Errorf("%w: want 0x%04x, got 0x%04x", errs.ErrDebugGuardMismatch, want, got)
	}

	return offset + 2, nil
}

// SizeOf returns the number of bytes WriteString would emit for s, useful
// for pre-sizing buffers before the pooled-string phase.
func (c StringCodec) SizeOf(s string) int {
	n := 1
	if len(s) > maxShortLength {
		n = 3
	}
	n += len(s)
	if c.DebugGuards {
		n += 4
	}

	return n
}
