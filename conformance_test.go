package gfloat

import (
	"math"
	"testing"

	x448 "github.com/x448/float16"
)

// TestHalfConformsToX448Float16 cross-checks the Half instantiation's
// native-float bridge against an independent binary16 implementation, the
// one place in this package an external oracle can verify the generic
// transform machinery against a concrete, widely used format.
func TestHalfConformsToX448Float16(t *testing.T) {
	// This package rounds away from zero on any nonzero discarded residue,
	// not to nearest, so the two implementations only agree in general on
	// values Half represents exactly. Restrict the oracle comparison to
	// those: float32 has more precision than Half everywhere finite, so an
	// inexact value would make the two rounding rules diverge rather than
	// exercise a shared, verifiable result.
	values := []float32{
		0, 1, -1, 2, -2, 0.5, -0.5, 3, -3.5, 4, 8, 16, 65504, -65504,
		float32(math.Ldexp(1, -24)),    // smallest subnormal, 2^-24
		float32(math.Ldexp(1023, -24)), // largest subnormal
		float32(math.Ldexp(1, -14)),    // smallest normal, 2^-14
	}
	for _, v := range values {
		ours := FromFloat32[Half](v)
		theirs := x448.Fromfloat32(v)
		if ours.Bits() != uint64(theirs.Bits()) {
			t.Errorf("Half(%v) bits = 0x%04x, x448 bits = 0x%04x", v, ours.Bits(), theirs.Bits())
		}
	}
}

func TestHalfToFloat32ConformsToX448(t *testing.T) {
	patterns := []uint16{0x0000, 0x8000, 0x3C00, 0xC000, 0x7C00, 0xFC00, 0x0001, 0x03FF}
	for _, p := range patterns {
		ours := FromBits[Half](uint64(p)).ToFloat32()
		theirs := x448.Frombits(p).Float32()
		if ours != theirs && !(math.IsNaN(float64(ours)) && math.IsNaN(float64(theirs))) {
			t.Errorf("bits 0x%04x: ours=%v, x448=%v", p, ours, theirs)
		}
	}
}
