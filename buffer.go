package membuf

import (
	"encoding/binary"
	"fmt"
)

// RawBuffer is an owned, fixed-size, zero-initialized byte region. It is the
// substrate that every other structure in this package builds on: all access
// is byte-granular, bounds-checked against [0, Len()), and little-endian for
// multi-byte values.
//
// A RawBuffer is never resized after creation. Out-of-range writes are
// rejected (returning false) and out-of-range reads yield zero values;
// callers that need strict failure semantics check bounds before calling.
type RawBuffer struct {
	data []byte
}

// NewRawBuffer allocates a zeroed buffer of the given byte size.
func NewRawBuffer(size int) (*RawBuffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("membuf: invalid buffer size %d (must be > 0)", size)
	}
	return &RawBuffer{data: make([]byte, size)}, nil
}

// Len returns the buffer size in bytes.
func (b *RawBuffer) Len() int {
	return len(b.data)
}

// Bytes returns the raw backing bytes. The slice aliases the buffer's
// storage; callers must not hold it across operations that expect exclusive
// ownership.
func (b *RawBuffer) Bytes() []byte {
	return b.data
}

// inRange reports whether [offset, offset+n) lies within the buffer.
// The subtraction form avoids overflow for offsets near the int maximum,
// where offset+n would wrap negative and falsely pass.
func (b *RawBuffer) inRange(offset, n int) bool {
	return offset >= 0 && n >= 0 && offset <= len(b.data) && n <= len(b.data)-offset
}

// WriteBytesAt copies data into the buffer at the given byte offset.
// Returns false without writing if any part of the range is out of bounds.
func (b *RawBuffer) WriteBytesAt(offset int, data []byte) bool {
	if !b.inRange(offset, len(data)) {
		return false
	}
	copy(b.data[offset:], data)
	return true
}

// ReadBytesAt returns a copy of n bytes starting at offset, or nil if the
// range is out of bounds.
func (b *RawBuffer) ReadBytesAt(offset, n int) []byte {
	if !b.inRange(offset, n) {
		return nil
	}
	out := make([]byte, n)
	copy(out, b.data[offset:offset+n])
	return out
}

// WriteInt32At writes v at the given byte offset in little-endian order.
// Returns false if fewer than 4 bytes remain.
func (b *RawBuffer) WriteInt32At(offset int, v int32) bool {
	return b.WriteUint32At(offset, uint32(v))
}

// ReadInt32At reads a little-endian int32 at the given byte offset.
// Returns 0 if fewer than 4 bytes remain.
func (b *RawBuffer) ReadInt32At(offset int) int32 {
	return int32(b.ReadUint32At(offset))
}

// WriteUint32At writes v at the given byte offset in little-endian order.
func (b *RawBuffer) WriteUint32At(offset int, v uint32) bool {
	if !b.inRange(offset, 4) {
		return false
	}
	binary.LittleEndian.PutUint32(b.data[offset:], v)
	return true
}

// ReadUint32At reads a little-endian uint32 at the given byte offset,
// or 0 when out of range.
func (b *RawBuffer) ReadUint32At(offset int) uint32 {
	if !b.inRange(offset, 4) {
		return 0
	}
	return binary.LittleEndian.Uint32(b.data[offset:])
}

// ByteAt returns the byte at offset, or 0 when out of range.
func (b *RawBuffer) ByteAt(offset int) byte {
	if !b.inRange(offset, 1) {
		return 0
	}
	return b.data[offset]
}

// SetByteAt stores one byte at offset. Returns false when out of range.
func (b *RawBuffer) SetByteAt(offset int, v byte) bool {
	if !b.inRange(offset, 1) {
		return false
	}
	b.data[offset] = v
	return true
}

// CopyFrom bulk-copies the contents of src over this buffer. Both buffers
// must have the same size; returns false otherwise.
func (b *RawBuffer) CopyFrom(src *RawBuffer) bool {
	if src == nil || len(src.data) != len(b.data) {
		return false
	}
	copy(b.data, src.data)
	return true
}
