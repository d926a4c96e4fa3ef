package gfloat

import "fmt"

// Float is a binary floating-point value whose encoding is parametrized
// by F: F.ExpBits() exponent bits and F.MantBits() mantissa bits, plus
// one sign bit, packed into the low 1+E+M bits of an unexported uint64.
// The zero value is positive zero.
type Float[F Format] struct {
	bits uint64
}

// Zero returns positive zero in format F.
func Zero[F Format]() Float[F] {
	widths[F]() // validate the format even though the zero value needs no packing
	return Float[F]{}
}

// FromBits reinterprets a raw bit pattern as a Float[F]. Bits above the
// format's 1+E+M width are ignored.
func FromBits[F Format](bitsVal uint64) Float[F] {
	expBits, mantBits := widths[F]()
	mask := uint64(1)<<(1+expBits+mantBits) - 1
	return Float[F]{bits: bitsVal & mask}
}

// FromParts assembles a Float[F] from a sign, biased exponent, and
// mantissa field. The caller is responsible for the fields being
// meaningful for F; FromParts does no rounding or range checking beyond
// masking each field to its declared width.
func FromParts[F Format](sign bool, e, m uint64) Float[F] {
	expBits, mantBits := widths[F]()
	var s uint64
	if sign {
		s = 1
	}
	e &= uint64(1)<<expBits - 1
	m &= uint64(1)<<mantBits - 1
	return Float[F]{bits: pack(s, e, m, expBits, mantBits)}
}

// Bits returns the raw bit pattern of x.
func (x Float[F]) Bits() uint64 {
	return x.bits
}

func (x Float[F]) decode() decoded {
	expBits, mantBits := widths[F]()
	return decode(x.bits, expBits, mantBits)
}

// Class reports whether x is zero, subnormal, normal, infinite, or NaN.
func (x Float[F]) Class() Class {
	return x.decode().class
}

func (x Float[F]) IsZero() bool      { return x.Class() == ClassZero }
func (x Float[F]) IsSubnormal() bool { return x.Class() == ClassSubnormal }
func (x Float[F]) IsNormal() bool    { return x.Class() == ClassNormal }
func (x Float[F]) IsInf() bool       { return x.Class() == ClassInf }
func (x Float[F]) IsNaN() bool       { return x.Class() == ClassNaN }

// Signbit reports the sign bit of x, independent of its class (so -0 and
// NaN both report a meaningful sign).
func (x Float[F]) Signbit() bool {
	expBits, mantBits := widths[F]()
	return (x.bits>>(expBits+mantBits))&1 != 0
}

// Sign returns -1, 0, or 1 for negative, zero, or positive x respectively
// (NaN reports 0, matching its lack of a magnitude).
func (x Float[F]) Sign() int {
	if x.IsZero() || x.IsNaN() {
		return 0
	}
	if x.Signbit() {
		return -1
	}
	return 1
}

// Neg returns x with its sign bit flipped.
func (x Float[F]) Neg() Float[F] {
	expBits, mantBits := widths[F]()
	signBit := uint64(1) << (expBits + mantBits)
	return Float[F]{bits: x.bits ^ signBit}
}

// Abs returns x with its sign bit cleared.
func (x Float[F]) Abs() Float[F] {
	expBits, mantBits := widths[F]()
	signBit := uint64(1) << (expBits + mantBits)
	return Float[F]{bits: x.bits &^ signBit}
}

func (x Float[F]) String() string {
	switch x.Class() {
	case ClassNaN:
		if x.Signbit() {
			return "-NaN"
		}
		return "NaN"
	case ClassInf:
		if x.Signbit() {
			return "-Inf"
		}
		return "+Inf"
	default:
		return fmt.Sprintf("%.6g", x.ToFloat64())
	}
}

// GoString renders x as a FromBits call on its raw bits, with the format
// written as the placeholder F and its exponent and mantissa widths given
// in a trailing comment.
func (x Float[F]) GoString() string {
	expBits, mantBits := widths[F]()
	hexDigits := int(1+expBits+mantBits+3) / 4
	return fmt.Sprintf("gfloat.FromBits[F](0x%0*x) /* %d,%d */", hexDigits, x.bits, expBits, mantBits)
}
