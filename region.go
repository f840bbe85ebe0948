package membuf

import "fmt"

// MemoryMappedRegion simulates a byte-addressable memory-mapped file: a
// fixed-size region with typed reads/writes and a dirty/flush protocol.
// Flush is an in-memory state transition only — it never performs disk I/O.
// The region reports size bytes "written" per flush purely as an accounting
// artifact of the simulation.
//
// Writes are rejected (false) when any part of the range falls outside the
// region. Reads are lenient: out-of-range access yields nil or 0.
type MemoryMappedRegion struct {
	buf   *RawBuffer
	dirty bool // any write since last flush
}

// NewMemoryMappedRegion creates a zeroed region of the given byte size.
func NewMemoryMappedRegion(size int) (*MemoryMappedRegion, error) {
	if size <= 0 {
		return nil, fmt.Errorf("membuf: invalid region size %d (must be > 0)", size)
	}
	buf, err := NewRawBuffer(size)
	if err != nil {
		return nil, err
	}
	return &MemoryMappedRegion{buf: buf}, nil
}

// Size returns the region size in bytes.
func (m *MemoryMappedRegion) Size() int {
	return m.buf.Len()
}

// IsDirty reports whether the region has writes not yet flushed.
func (m *MemoryMappedRegion) IsDirty() bool {
	return m.dirty
}

// WriteBytes copies data into the region at offset and marks it dirty.
// Returns false, writing nothing, when offset+len(data) exceeds the region.
func (m *MemoryMappedRegion) WriteBytes(offset int, data []byte) bool {
	if !m.buf.WriteBytesAt(offset, data) {
		return false
	}
	m.dirty = true
	return true
}

// ReadBytes returns a copy of length bytes at offset, or nil when the range
// exceeds the region.
func (m *MemoryMappedRegion) ReadBytes(offset, length int) []byte {
	return m.buf.ReadBytesAt(offset, length)
}

// WriteInt32 writes a little-endian int32 at offset and marks the region
// dirty. Returns false when fewer than 4 bytes remain.
func (m *MemoryMappedRegion) WriteInt32(offset int, v int32) bool {
	if !m.buf.WriteInt32At(offset, v) {
		return false
	}
	m.dirty = true
	return true
}

// ReadInt32 reads a little-endian int32 at offset, or 0 when fewer than
// 4 bytes remain.
func (m *MemoryMappedRegion) ReadInt32(offset int) int32 {
	return m.buf.ReadInt32At(offset)
}

// WriteUint32 writes a little-endian uint32 at offset and marks the region
// dirty. Returns false when fewer than 4 bytes remain.
func (m *MemoryMappedRegion) WriteUint32(offset int, v uint32) bool {
	if !m.buf.WriteUint32At(offset, v) {
		return false
	}
	m.dirty = true
	return true
}

// ReadUint32 reads a little-endian uint32 at offset, or 0 when fewer than
// 4 bytes remain.
func (m *MemoryMappedRegion) ReadUint32(offset int) uint32 {
	return m.buf.ReadUint32At(offset)
}

// Flush simulates persisting the region. When dirty it clears the flag and
// returns the region size as the bytes-written count; when clean it returns
// 0 and does nothing. No disk I/O takes place.
func (m *MemoryMappedRegion) Flush() int {
	if !m.dirty {
		return 0
	}
	m.dirty = false
	Logger().Debug("region flushed", "bytes", m.buf.Len())
	return m.buf.Len()
}
