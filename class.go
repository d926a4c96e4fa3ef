package gfloat

// Class is the IEEE-754-like classification of an encoded value, derived
// deterministically from its biased exponent and mantissa fields.
type Class int

const (
	ClassZero Class = iota
	ClassSubnormal
	ClassNormal
	ClassInf
	ClassNaN
)

func (c Class) String() string {
	switch c {
	case ClassZero:
		return "Zero"
	case ClassSubnormal:
		return "Subnormal"
	case ClassNormal:
		return "Normal"
	case ClassInf:
		return "Inf"
	case ClassNaN:
		return "NaN"
	default:
		return "Unknown"
	}
}

// classify determines the Class of a biased exponent/mantissa pair given
// the all-ones exponent value (expMask) for the format in question. It
// implements the table in the data model: exponent zero with zero
// mantissa is Zero, exponent zero with nonzero mantissa is Subnormal, the
// all-ones exponent with zero mantissa is Inf, the all-ones exponent with
// nonzero mantissa is NaN, and anything else is Normal.
func classify(e, m, expMask uint64) Class {
	switch {
	case e == 0 && m == 0:
		return ClassZero
	case e == 0:
		return ClassSubnormal
	case e == expMask && m == 0:
		return ClassInf
	case e == expMask:
		return ClassNaN
	default:
		return ClassNormal
	}
}

// pack assembles a bit image from its sign/exponent/mantissa fields given
// the field widths of the target format.
func pack(sign, e, m uint64, expBits, mantBits uint) uint64 {
	return (sign << (expBits + mantBits)) | (e << mantBits) | m
}

// unpack splits a bit image into its sign/exponent/mantissa fields given
// the field widths of the source format.
func unpack(bitsVal uint64, expBits, mantBits uint) (sign, e, m uint64) {
	mantMask := uint64(1)<<mantBits - 1
	expMask := uint64(1)<<expBits - 1
	sign = (bitsVal >> (expBits + mantBits)) & 1
	e = (bitsVal >> mantBits) & expMask
	m = bitsVal & mantMask
	return
}

// decoded is the expanded view of an encoded value used internally by the
// arithmetic and transform kernels: an unbiased exponent and a full
// significand (the mantissa with the implicit leading bit folded in for
// normals, or the bare mantissa for subnormals — which is exactly the
// "treat the implicit bit as 0" rule the data model specifies).
type decoded struct {
	sign  bool
	exp   int64
	sig   uint64
	class Class
}

// decode expands a bit image into its decoded form for a format with the
// given field widths.
func decode(bitsVal uint64, expBits, mantBits uint) decoded {
	sign, e, m := unpack(bitsVal, expBits, mantBits)
	expMask := uint64(1)<<expBits - 1
	class := classify(e, m, expMask)
	bias := int64(1)<<(expBits-1) - 1

	d := decoded{sign: sign != 0, class: class}
	switch class {
	case ClassZero, ClassInf, ClassNaN:
		d.sig = m
		d.exp = 0
	case ClassSubnormal:
		d.sig = m
		d.exp = 1 - bias
	case ClassNormal:
		d.sig = m | (uint64(1) << mantBits)
		d.exp = int64(e) - bias
	}
	return d
}
