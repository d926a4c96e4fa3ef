package gfloat

import (
	"math"
	"math/bits"
)

// FromInt converts a native int64 to format F, rounding away from zero if
// v needs more than mantBits+1 significant bits to represent exactly.
func FromInt[F Format](v int64) Float[F] {
	if v == 0 {
		return Zero[F]()
	}
	sign := v < 0
	mag := uint64(v)
	if sign {
		mag = uint64(-v)
	}

	expBits, mantBits := widths[F]()
	topBit := bits.Len64(mag) - 1
	e := int64(topBit) + (int64(1)<<(expBits-1) - 1)
	dstExpMask := uint64(1)<<expBits - 1
	if e >= int64(dstExpMask) {
		return signedInf[F](sign)
	}

	var m uint64
	if topBit <= int(mantBits) {
		m = mag << uint(int(mantBits)-topBit)
	} else {
		m = roundShiftRight(mag, uint(topBit-int(mantBits)))
		if m&(uint64(1)<<(mantBits+1)) != 0 {
			m = 0
			e++
			if e >= int64(dstExpMask) {
				return signedInf[F](sign)
			}
		}
	}
	mantMask := uint64(1)<<mantBits - 1
	return FromParts[F](sign, uint64(e), m&mantMask)
}

// FromFloat32 converts a native float32, via Single, to format F.
func FromFloat32[F Format](v float32) Float[F] {
	return Convert[F](Float[Single]{bits: uint64(math.Float32bits(v))})
}

// FromFloat64 converts a native float64, via Double, to format F.
func FromFloat64[F Format](v float64) Float[F] {
	return Convert[F](Float[Double]{bits: math.Float64bits(v)})
}

// ToFloat32 converts x to a native float32, via Single.
func (x Float[F]) ToFloat32() float32 {
	return math.Float32frombits(uint32(Convert[Single](x).bits))
}

// ToFloat64 converts x to a native float64, via Double. This is the
// canonical export path the rest of the host bridge (and Exp) routes
// through. Normal Half and Single values convert exactly; a Wide value
// outside Double's exponent range overflows to infinity or underflows
// into Double's subnormal range, and subnormal sources follow the
// transform's subnormal rule (see transformBits).
func (x Float[F]) ToFloat64() float64 {
	return math.Float64frombits(Convert[Double](x).bits)
}

// Exp returns e**x, computed by delegating to the host's math.Exp through
// the canonical double bridge. This is the sole transcendental function
// this package provides; anything beyond it is left to the caller's own
// use of ToFloat64/FromFloat64.
func Exp[F Format](x Float[F]) Float[F] {
	return FromFloat64[F](math.Exp(x.ToFloat64()))
}
