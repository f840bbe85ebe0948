package membuf

import (
	"fmt"
	"strings"
)

// BitArray is a packed boolean vector storing 8 bits per byte in a
// RawBuffer. Bit i lives in byte i>>3 at mask 1<<(i&7): bit 0 is the
// least-significant bit of byte 0, and that ordering is shared by all
// operations including String, so set/get round-trips are exact.
//
// Out-of-range indices are lenient: mutators return false without touching
// the array, GetBit returns false. Nothing here ever panics on a bad index.
type BitArray struct {
	buf     *RawBuffer
	numBits int
}

// NewBitArray creates a zeroed array of numBits bits backed by
// ceil(numBits/8) bytes.
func NewBitArray(numBits int) (*BitArray, error) {
	if numBits <= 0 {
		return nil, fmt.Errorf("membuf: invalid bit count %d (must be > 0)", numBits)
	}
	buf, err := NewRawBuffer((numBits + 7) / 8)
	if err != nil {
		return nil, err
	}
	return &BitArray{buf: buf, numBits: numBits}, nil
}

// Len returns the number of addressable bits.
func (a *BitArray) Len() int {
	return a.numBits
}

// SetBit sets bit i to 1. Returns false for an out-of-range index.
func (a *BitArray) SetBit(i int) bool {
	if i < 0 || i >= a.numBits {
		return false
	}
	off := i >> 3
	a.buf.SetByteAt(off, a.buf.ByteAt(off)|byte(1)<<(i&7))
	return true
}

// ClearBit sets bit i to 0. Returns false for an out-of-range index.
func (a *BitArray) ClearBit(i int) bool {
	if i < 0 || i >= a.numBits {
		return false
	}
	off := i >> 3
	a.buf.SetByteAt(off, a.buf.ByteAt(off)&^(byte(1)<<(i&7)))
	return true
}

// ToggleBit inverts bit i. Returns false for an out-of-range index.
func (a *BitArray) ToggleBit(i int) bool {
	if i < 0 || i >= a.numBits {
		return false
	}
	off := i >> 3
	a.buf.SetByteAt(off, a.buf.ByteAt(off)^byte(1)<<(i&7))
	return true
}

// GetBit reports whether bit i is set. Out-of-range indices read as false.
func (a *BitArray) GetBit(i int) bool {
	if i < 0 || i >= a.numBits {
		return false
	}
	return a.buf.ByteAt(i>>3)&(byte(1)<<(i&7)) != 0
}

// CountSetBits returns the population count. Each byte is counted by
// repeatedly clearing its lowest set bit (Kernighan's method), so the cost
// scales with the number of set bits rather than the bit width.
func (a *BitArray) CountSetBits() int {
	count := 0
	for _, b := range a.buf.Bytes() {
		for b != 0 {
			b &= b - 1
			count++
		}
	}
	return count
}

// Bytes returns a copy of the packed backing bytes.
func (a *BitArray) Bytes() []byte {
	return a.buf.ReadBytesAt(0, a.buf.Len())
}

// Format renders up to maxBits bits as '0'/'1' characters, oldest (bit 0)
// first, with a space between every group of 8. When the array holds more
// bits than maxBits, the output ends with a "..." truncation marker.
func (a *BitArray) Format(maxBits int) string {
	n := a.numBits
	if maxBits < n {
		n = maxBits
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 && i%8 == 0 {
			sb.WriteByte(' ')
		}
		if a.GetBit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	if a.numBits > maxBits {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("...")
	}
	return sb.String()
}

// String renders the full array; implements fmt.Stringer.
func (a *BitArray) String() string {
	return a.Format(a.numBits)
}
