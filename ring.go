package membuf

import (
	"errors"
	"fmt"
)

// Sentinel errors for the strict-fail queue operations.
var (
	// ErrFull is returned by Enqueue when the buffer holds Capacity elements.
	ErrFull = errors.New("membuf: circular buffer full")

	// ErrEmpty is returned by Dequeue and Peek when the buffer holds no elements.
	ErrEmpty = errors.New("membuf: circular buffer empty")
)

// elemSize is the byte width of one circular buffer element (int32).
const elemSize = 4

// CircularBuffer is a fixed-capacity FIFO of int32 values stored in a
// RawBuffer with wraparound indices. Dequeue never shifts or reallocates:
// head and tail advance modulo the capacity, so both operations are O(1)
// with zero allocations.
//
// Enqueue and Dequeue fail loudly (ErrFull, ErrEmpty) and never write past
// bounds or corrupt state, even when callers skip the IsFull/IsEmpty checks.
type CircularBuffer struct {
	buf      *RawBuffer
	capacity int // max element count
	size     int // current element count
	head     int // next write index, mod capacity
	tail     int // next read index, mod capacity
}

// NewCircularBuffer creates an empty buffer holding at most capacity int32
// values. The backing storage is allocated once and never resized.
func NewCircularBuffer(capacity int) (*CircularBuffer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("membuf: invalid capacity %d (must be > 0)", capacity)
	}
	buf, err := NewRawBuffer(capacity * elemSize)
	if err != nil {
		return nil, err
	}
	return &CircularBuffer{buf: buf, capacity: capacity}, nil
}

// Enqueue appends v at the logical end of the FIFO.
// Returns ErrFull, leaving all state unchanged, when the buffer is full.
func (c *CircularBuffer) Enqueue(v int32) error {
	if c.size == c.capacity {
		return ErrFull
	}
	c.buf.WriteInt32At(c.head*elemSize, v)
	c.head = (c.head + 1) % c.capacity
	c.size++
	return nil
}

// Dequeue removes and returns the oldest element.
// Returns ErrEmpty, leaving all state unchanged, when the buffer is empty.
func (c *CircularBuffer) Dequeue() (int32, error) {
	if c.size == 0 {
		return 0, ErrEmpty
	}
	v := c.buf.ReadInt32At(c.tail * elemSize)
	c.tail = (c.tail + 1) % c.capacity
	c.size--
	return v, nil
}

// Peek returns the oldest element without removing it.
// Returns ErrEmpty when the buffer is empty.
func (c *CircularBuffer) Peek() (int32, error) {
	if c.size == 0 {
		return 0, ErrEmpty
	}
	return c.buf.ReadInt32At(c.tail * elemSize), nil
}

// IsEmpty reports whether the buffer holds no elements.
func (c *CircularBuffer) IsEmpty() bool {
	return c.size == 0
}

// IsFull reports whether the buffer holds Capacity elements.
func (c *CircularBuffer) IsFull() bool {
	return c.size == c.capacity
}

// Size returns the current element count.
func (c *CircularBuffer) Size() int {
	return c.size
}

// Capacity returns the maximum element count.
func (c *CircularBuffer) Capacity() int {
	return c.capacity
}

// ToSlice returns the logical contents in FIFO order (oldest first),
// walking from tail and wrapping at capacity. The buffer is not mutated;
// each call computes a fresh slice.
func (c *CircularBuffer) ToSlice() []int32 {
	out := make([]int32, c.size)
	for i := 0; i < c.size; i++ {
		idx := (c.tail + i) % c.capacity
		out[i] = c.buf.ReadInt32At(idx * elemSize)
	}
	return out
}

// Clear resets the buffer to empty without deallocating or zeroing the
// backing bytes; stale bytes are unreachable until overwritten.
func (c *CircularBuffer) Clear() {
	c.size = 0
	c.head = 0
	c.tail = 0
	Logger().Debug("circular buffer cleared", "capacity", c.capacity)
}
