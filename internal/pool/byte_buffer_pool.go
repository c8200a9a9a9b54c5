package pool

import (
	"io"
	"sync"
)

// JournalBufferDefaultSize is the default size of the ByteBuffer obtained
// from the per-journal pool; JournalSetBufferDefaultSize backs the larger
// buffer codec.ReadAll stages each cache file through when several
// journals are merged in one call.
const (
	JournalBufferDefaultSize     = 1024 * 16       // 16KiB
	JournalBufferMaxThreshold    = 1024 * 128      // 128KiB
	JournalSetBufferDefaultSize  = 1024 * 1024     // 1MiB
	JournalSetBufferMaxThreshold = 1024 * 1024 * 8 // 8MiB
)

// ByteBuffer is a growable byte buffer that doubles as the back-patchable
// write sink Design Notes §9 calls for: Reserve records a placeholder
// position, Fill writes the final value there once known, without requiring
// the underlying destination to support Seek.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite writes data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Slice returns a slice of the buffer from start to end.
// Panics if the indices are out of bounds.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("Slice: invalid indices")
	}

	return bb.B[start:end]
}

// SetLength sets the length of the buffer to n.
// Panics if n is negative or greater than the capacity.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// Extend extends the buffer by n bytes if there is sufficient capacity.
func (bb *ByteBuffer) Extend(n int) bool {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		return false
	}

	bb.B = bb.B[:curLen+n]

	return true
}

// ExtendOrGrow extends the buffer by n bytes, growing it if necessary.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if bb.Extend(n) {
		return
	}

	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes without reallocating.
// If the buffer has sufficient capacity, Grow does nothing.
//
// The growth strategy is as follows:
//   - For small buffers (capacity up to 4*JournalBufferDefaultSize, 64KB), grow by JournalBufferDefaultSize to minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity to balance memory usage and reallocation cost.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return // Sufficient capacity
	}

	growBy := JournalBufferDefaultSize
	if cap(bb.B) > 4*JournalBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ReadFrom reads from r until EOF, appending into the buffer and growing
// it as needed.
func (bb *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		if len(bb.B) == cap(bb.B) {
			bb.Grow(JournalBufferDefaultSize)
		}

		n, err := r.Read(bb.B[len(bb.B):cap(bb.B)])
		bb.B = bb.B[:len(bb.B)+n]
		total += int64(n)

		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Reserve appends a zeroed placeholder of n bytes and returns its starting
// offset, to be filled in later via Fill once the value is known. This is
// the "reserve_u32() -> handle" half of the back-patch sink Design Notes §9
// describes.
func (bb *ByteBuffer) Reserve(n int) int {
	start := len(bb.B)
	bb.ExtendOrGrow(n)

	return start
}

// Fill copies value into the placeholder previously returned by Reserve;
// value is already encoded in the caller's byte order. It does not change
// the buffer's length or current write position.
func (bb *ByteBuffer) Fill(offset int, value []byte) {
	copy(bb.B[offset:offset+len(value)], value)
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers.
// The pool can be configured with a maximum size threshold to avoid retaining
// overly large buffers that could lead to memory bloat.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int // Optional maximum size threshold for buffers
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	journalDefaultPool    = NewByteBufferPool(JournalBufferDefaultSize, JournalBufferMaxThreshold)
	journalSetDefaultPool = NewByteBufferPool(JournalSetBufferDefaultSize, JournalSetBufferMaxThreshold)
)

// GetJournalBuffer retrieves a ByteBuffer from the default per-journal pool.
func GetJournalBuffer() *ByteBuffer {
	return journalDefaultPool.Get()
}

// PutJournalBuffer returns a ByteBuffer to the default per-journal pool.
func PutJournalBuffer(bb *ByteBuffer) {
	journalDefaultPool.Put(bb)
}

// GetJournalSetBuffer retrieves a ByteBuffer from the default multi-journal pool.
func GetJournalSetBuffer() *ByteBuffer {
	return journalSetDefaultPool.Get()
}

// PutJournalSetBuffer returns a ByteBuffer to the default multi-journal pool.
func PutJournalSetBuffer(bb *ByteBuffer) {
	journalSetDefaultPool.Put(bb)
}
