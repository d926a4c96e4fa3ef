package gfloat

import "math/big"

// roundShiftRightBig shifts v right by shift bits in place conceptually,
// returning a new value rounded away from zero whenever any discarded bit
// is nonzero. v is treated as a non-negative magnitude; arithmetic.go
// never hands it a negative big.Int.
func roundShiftRightBig(v *big.Int, shift uint) *big.Int {
	if shift == 0 {
		return new(big.Int).Set(v)
	}
	result := new(big.Int).Rsh(v, shift)
	mask := new(big.Int).Lsh(big.NewInt(1), shift)
	mask.Sub(mask, big.NewInt(1))
	residue := new(big.Int).And(v, mask)
	if residue.Sign() != 0 {
		result.Add(result, big.NewInt(1))
	}
	return result
}

func signedZero[F Format](sign bool) Float[F] {
	return FromParts[F](sign, 0, 0)
}

func signedInf[F Format](sign bool) Float[F] {
	expBits, _ := widths[F]()
	return FromParts[F](sign, uint64(1)<<expBits-1, 0)
}

// magnitudeLess reports whether the magnitude of decoded value a is
// strictly less than that of decoded value b, using the (exponent,
// significand) lexicographic order that holds across both subnormal and
// normal values alike: subnormals decode to the same exponent (1-bias) as
// the smallest normals, and the normal's implicit leading bit makes its
// significand larger than any subnormal's full mantissa.
func magnitudeLess(a, b decoded) bool {
	if a.exp != b.exp {
		return a.exp < b.exp
	}
	return a.sig < b.sig
}

// Add returns x+y, rounded away from zero on any discarded residue. An
// operand more than mantBits+2 binades below the other is dropped without
// rounding, and the larger operand is returned unchanged.
func Add[F Format](x, y Float[F]) Float[F] {
	if x.IsNaN() {
		return x
	}
	if y.IsNaN() {
		return y
	}
	if x.IsInf() && y.IsInf() {
		if x.Signbit() == y.Signbit() {
			return x
		}
		return signedZero[F](false) // opposite-signed infinities: reference behavior is +0, not NaN
	}
	if x.IsInf() {
		return x
	}
	if y.IsInf() {
		return y
	}
	if x.IsZero() {
		if y.IsZero() && x.Signbit() == y.Signbit() {
			return x
		}
		if y.IsZero() {
			return signedZero[F](false)
		}
		return y
	}
	if y.IsZero() {
		return x
	}

	_, mantBits := widths[F]()

	dx, dy := x.decode(), y.decode()
	larger := x
	if magnitudeLess(dx, dy) {
		dx, dy = dy, dx
		larger = y
	}

	d := dx.exp - dy.exp
	if d > int64(mantBits)+2 {
		// The smaller operand is dropped; no rounding step is applied.
		return larger
	}

	// Express both significands on the smaller operand's (finer) scale:
	// dy.sig stays as is, dx.sig widens by d bits left, so both are exact
	// integers counted in units of 2^(dy.exp-mantBits).
	sigX := new(big.Int).SetUint64(dx.sig)
	sigY := new(big.Int).SetUint64(dy.sig)
	if d > 0 {
		sigX.Lsh(sigX, uint(d))
	}

	var sum *big.Int
	resultSign := dx.sign
	if dx.sign == dy.sign {
		sum = new(big.Int).Add(sigX, sigY)
	} else {
		sum = new(big.Int).Sub(sigX, sigY)
		if sum.Sign() < 0 {
			sum.Neg(sum)
			resultSign = dy.sign
		}
	}

	if sum.Sign() == 0 {
		return signedZero[F](false)
	}

	return normalizeSum[F](resultSign, dy.exp, sum, mantBits)
}

// normalizeSum renormalizes an aligned significand sum so its leading bit
// sits at position mantBits (the implicit-bit slot for a Normal), packing
// it into the destination format with overflow-to-infinity and
// underflow-to-subnormal handling mirroring transformNormal.
func normalizeSum[F Format](sign bool, baseExp int64, sum *big.Int, mantBits uint) Float[F] {
	expBits, dstMantBits := widths[F]()
	dstExpMask := uint64(1)<<expBits - 1
	dstMantMask := uint64(1)<<dstMantBits - 1
	dstBias := int64(1)<<(expBits-1) - 1

	topBit := sum.BitLen() - 1
	resultExp := baseExp + int64(topBit) - int64(mantBits)
	ePrime := resultExp + dstBias

	shift := topBit - int(dstMantBits)

	if ePrime >= int64(dstExpMask) {
		return signedInf[F](sign)
	}

	if ePrime <= 0 {
		// Result lands in the subnormal range: align so the output carries
		// exactly dstMantBits fractional bits with no implicit leading bit.
		extraShift := int(1 - ePrime)
		totalShift := shift + extraShift
		var mantDst uint64
		if totalShift <= 0 {
			mantDst = new(big.Int).Lsh(sum, uint(-totalShift)).Uint64()
		} else if totalShift >= sum.BitLen()+1 {
			mantDst = 0
		} else {
			mantDst = roundShiftRightBig(sum, uint(totalShift)).Uint64()
		}
		if mantDst&(uint64(1)<<dstMantBits) != 0 {
			return FromParts[F](sign, 1, 0)
		}
		return FromParts[F](sign, 0, mantDst&dstMantMask)
	}

	var mantDst uint64
	if shift <= 0 {
		mantDst = new(big.Int).Lsh(sum, uint(-shift)).Uint64()
	} else {
		mantDst = roundShiftRightBig(sum, uint(shift)).Uint64()
	}

	// The expected top bit of mantDst sits at dstMantBits (the implicit
	// leading one); a rounding carry that pushes it one bit higher needs an
	// exponent bump, the same carry-propagation transformNormal performs.
	ePrimeFinal := ePrime
	if mantDst&(uint64(1)<<(dstMantBits+1)) != 0 {
		mantDst = 0
		ePrimeFinal++
		if ePrimeFinal >= int64(dstExpMask) {
			return signedInf[F](sign)
		}
	}
	return FromParts[F](sign, uint64(ePrimeFinal), mantDst&dstMantMask)
}

// Sub returns x-y.
func Sub[F Format](x, y Float[F]) Float[F] {
	return Add(x, y.Neg())
}

// Mul returns x*y, rounded away from zero on any discarded residue.
func Mul[F Format](x, y Float[F]) Float[F] {
	resultSign := x.Signbit() != y.Signbit()

	if x.IsNaN() {
		return x
	}
	if y.IsNaN() {
		return y
	}
	if x.IsInf() || y.IsInf() {
		// Reference behavior: zero times infinity yields a signed infinity,
		// not NaN, the same as any other infinite product.
		return signedInf[F](resultSign)
	}
	if x.IsZero() || y.IsZero() {
		return signedZero[F](resultSign)
	}

	_, mantBits := widths[F]()
	dx, dy := x.decode(), y.decode()

	product := new(big.Int).Mul(new(big.Int).SetUint64(dx.sig), new(big.Int).SetUint64(dy.sig))
	topBit := product.BitLen() - 1
	resultExp := int64(topBit) + dx.exp + dy.exp - 2*int64(mantBits)

	return normalizeProduct[F](resultSign, resultExp, product, topBit, mantBits)
}

// normalizeProduct packs a raw significand product (with its top set bit
// at position topBit) into the destination format. Multiplication
// underflow flushes straight to a signed zero rather than emitting a
// subnormal, matching the reference's narrower underflow handling for
// products.
func normalizeProduct[F Format](sign bool, resultExp int64, product *big.Int, topBit int, mantBits uint) Float[F] {
	expBits, dstMantBits := widths[F]()
	dstExpMask := uint64(1)<<expBits - 1
	dstMantMask := uint64(1)<<dstMantBits - 1
	dstBias := int64(1)<<(expBits-1) - 1

	shift := topBit - int(dstMantBits)
	ePrime := resultExp + dstBias

	if ePrime >= int64(dstExpMask) {
		return signedInf[F](sign)
	}
	if ePrime <= 0 {
		return signedZero[F](sign)
	}

	var mantDst uint64
	if shift <= 0 {
		mantDst = new(big.Int).Lsh(product, uint(-shift)).Uint64()
	} else {
		mantDst = roundShiftRightBig(product, uint(shift)).Uint64()
	}

	ePrimeFinal := ePrime
	if mantDst&(uint64(1)<<(dstMantBits+1)) != 0 {
		mantDst = 0
		ePrimeFinal++
		if ePrimeFinal >= int64(dstExpMask) {
			return signedInf[F](sign)
		}
	}
	return FromParts[F](sign, uint64(ePrimeFinal), mantDst&dstMantMask)
}
