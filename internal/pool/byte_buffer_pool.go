// Package pool provides pooled byte buffers for the export workers.
package pool

import "sync"

const (
	// BufferDefaultSize is the initial capacity of a pooled buffer, sized
	// for a typical per-tag CSV file.
	BufferDefaultSize = 64 * 1024

	// BufferMaxThreshold is the largest buffer returned to the pool.
	// Occasional huge tags would otherwise pin their peak footprint.
	BufferMaxThreshold = 8 * 1024 * 1024
)

// ByteBuffer is a minimal growable buffer that satisfies io.Writer.
type ByteBuffer struct {
	B []byte
}

func (bb *ByteBuffer) Write(p []byte) (int, error) {
	bb.B = append(bb.B, p...)
	return len(p), nil
}

// Bytes returns the accumulated bytes. The slice is valid until Reset.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer, retaining its allocation.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

var bufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, BufferDefaultSize)}
	},
}

// GetBuffer retrieves an empty buffer from the pool.
func GetBuffer() *ByteBuffer {
	bb, _ := bufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutBuffer returns a buffer to the pool, dropping oversized ones.
func PutBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > BufferMaxThreshold {
		return
	}

	bufferPool.Put(bb)
}
