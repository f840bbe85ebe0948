package membuf

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
)

// TestBitArray_RoundTrip verifies set/get/clear/toggle for every index.
func TestBitArray_RoundTrip(t *testing.T) {
	const numBits = 19 // deliberately not a multiple of 8
	a, err := NewBitArray(numBits)
	if err != nil {
		t.Fatalf("NewBitArray(%d) returned error: %v", numBits, err)
	}

	for i := 0; i < numBits; i++ {
		if !a.SetBit(i) {
			t.Fatalf("SetBit(%d) = false, want true", i)
		}
		if !a.GetBit(i) {
			t.Errorf("GetBit(%d) = false after SetBit, want true", i)
		}
		if !a.ClearBit(i) {
			t.Fatalf("ClearBit(%d) = false, want true", i)
		}
		if a.GetBit(i) {
			t.Errorf("GetBit(%d) = true after ClearBit, want false", i)
		}
		if !a.ToggleBit(i) || !a.GetBit(i) {
			t.Errorf("bit %d not set after ToggleBit", i)
		}
		if !a.ToggleBit(i) || a.GetBit(i) {
			t.Errorf("bit %d not restored by second ToggleBit", i)
		}
	}
}

// TestBitArray_InvalidSize verifies constructor validation.
func TestBitArray_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -5} {
		if _, err := NewBitArray(n); err == nil {
			t.Errorf("NewBitArray(%d) = nil error, want error", n)
		}
	}
}

// TestBitArray_OutOfRangeLeniency verifies that bad indices are harmless
// no-ops: mutators return false, GetBit reads as false, nothing panics.
func TestBitArray_OutOfRangeLeniency(t *testing.T) {
	a, _ := NewBitArray(16)

	for _, i := range []int{-1, 16, 17, 1000} {
		if a.SetBit(i) {
			t.Errorf("SetBit(%d) = true, want false", i)
		}
		if a.ClearBit(i) {
			t.Errorf("ClearBit(%d) = true, want false", i)
		}
		if a.ToggleBit(i) {
			t.Errorf("ToggleBit(%d) = true, want false", i)
		}
		if a.GetBit(i) {
			t.Errorf("GetBit(%d) = true, want false", i)
		}
	}
	if a.CountSetBits() != 0 {
		t.Errorf("CountSetBits() = %d after rejected mutations, want 0", a.CountSetBits())
	}
}

// TestBitArray_CountSetBits verifies the population count over a known bit
// pattern spanning all four backing bytes.
func TestBitArray_CountSetBits(t *testing.T) {
	a, _ := NewBitArray(32)
	for _, i := range []int{0, 7, 15, 23, 31} {
		a.SetBit(i)
	}
	if got := a.CountSetBits(); got != 5 {
		t.Errorf("CountSetBits() = %d, want 5", got)
	}

	a.ClearBit(15)
	if got := a.CountSetBits(); got != 4 {
		t.Errorf("CountSetBits() = %d after ClearBit(15), want 4", got)
	}
}

// TestBitArray_CountAgainstBitset cross-checks CountSetBits against the
// bits-and-blooms bitset on a pseudo-random pattern.
func TestBitArray_CountAgainstBitset(t *testing.T) {
	const numBits = 200
	a, _ := NewBitArray(numBits)
	ref := bitset.New(numBits)

	// Simple LCG keeps the pattern deterministic.
	state := uint32(12345)
	for i := 0; i < numBits; i++ {
		state = state*1664525 + 1013904223
		if state&1 == 1 {
			a.SetBit(i)
			ref.Set(uint(i))
		}
	}

	if got, want := a.CountSetBits(), int(ref.Count()); got != want {
		t.Errorf("CountSetBits() = %d, bitset reference = %d", got, want)
	}
	for i := 0; i < numBits; i++ {
		if a.GetBit(i) != ref.Test(uint(i)) {
			t.Errorf("GetBit(%d) = %v, bitset reference = %v", i, a.GetBit(i), ref.Test(uint(i)))
		}
	}
}

// TestBitArray_Format verifies the '0'/'1' rendering, grouping, and
// truncation marker.
func TestBitArray_Format(t *testing.T) {
	a, _ := NewBitArray(12)
	a.SetBit(0)
	a.SetBit(8)

	if got, want := a.Format(12), "10000000 1000"; got != want {
		t.Errorf("Format(12) = %q, want %q", got, want)
	}
	if got, want := a.Format(8), "10000000 ..."; got != want {
		t.Errorf("Format(8) = %q, want %q", got, want)
	}
	if got, want := a.String(), "10000000 1000"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// TestBitArray_Bytes verifies the packed LSB-first layout and that the
// accessor returns a copy.
func TestBitArray_Bytes(t *testing.T) {
	a, _ := NewBitArray(16)
	a.SetBit(0)
	a.SetBit(9)

	got := a.Bytes()
	if len(got) != 2 || got[0] != 0x01 || got[1] != 0x02 {
		t.Errorf("Bytes() = %v, want [0x01 0x02]", got)
	}
	got[0] = 0xFF
	if a.CountSetBits() != 2 {
		t.Error("mutating Bytes() result changed the array")
	}
}
