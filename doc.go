// Package membuf provides raw-memory data structures for Go.
//
// # Overview
//
// membuf is a pure Go library of fixed-capacity data structures that operate
// on owned byte buffers with explicit offset arithmetic: a circular FIFO of
// 32-bit integers, a packed bit array, a double-buffered RGBA framebuffer
// with integer line drawing, a memory-mapped-region simulator with a
// dirty/flush protocol, and a batch integer transformer.
//
// # Quick Start
//
//	import "github.com/membuf/membuf"
//
//	// Fixed-capacity FIFO of int32 values
//	rb, _ := membuf.NewCircularBuffer(5)
//	rb.Enqueue(10)
//	rb.Enqueue(20)
//	v, _ := rb.Dequeue() // 10
//
//	// Double-buffered framebuffer
//	fb, _ := membuf.NewDoubleFramebuffer(320, 240)
//	fb.DrawLine(0, 0, 319, 239, membuf.RGB(255, 0, 0))
//	fb.Swap()
//	fb.SavePNG("output.png")
//
// # Buffer Ownership
//
// Every structure exclusively owns its backing RawBuffer for its entire
// lifetime. Buffers are fixed-size, zero-initialized at construction, and
// never resized; a structure needing more capacity must be reconstructed.
// All offset arithmetic is byte-granular and bounds-checked.
//
// # Error Policy
//
// Two policies coexist. Queue operations fail loudly with ErrFull/ErrEmpty
// and leave state untouched. Read-style and pixel operations are lenient:
// out-of-range access returns a harmless zero value (false, zeroed Pixel,
// empty slice) rather than an error, so display code never crashes on a
// stray coordinate.
//
// # Coordinate System
//
// The framebuffer uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixels are 4 bytes (RGBA) at byte offset (y*width+x)*4
//
// # Concurrency
//
// All operations are synchronous and non-blocking. Instances are not safe
// for concurrent use; guard each instance with its own lock or confine it
// to one goroutine.
package membuf

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
