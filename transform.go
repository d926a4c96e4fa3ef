package gfloat

// roundShiftRight shifts value right by shift bits, rounding away from
// zero whenever any discarded bit is nonzero. This is the module's one
// and only rounding rule: there is no round-to-nearest-even, no
// round-toward-zero, and no configuration point for a different policy.
func roundShiftRight(value uint64, shift uint) uint64 {
	if shift == 0 {
		return value
	}
	if shift >= 64 {
		if value != 0 {
			return 1
		}
		return 0
	}
	residue := value & (uint64(1)<<shift - 1)
	result := value >> shift
	if residue != 0 {
		result++
	}
	return result
}

// alignSignificand shifts sig by shift places, left if shift is negative
// and right (with away-from-zero rounding) if shift is positive. A shift
// of 64 or more collapses to either 0 or the smallest representable
// nonzero magnitude, matching the underflow clamp in the transform's
// subnormal case.
func alignSignificand(sig uint64, shift int) uint64 {
	if shift <= 0 {
		return sig << uint(-shift)
	}
	if shift >= 64 {
		if sig != 0 {
			return 1
		}
		return 0
	}
	return roundShiftRight(sig, uint(shift))
}

// shiftMantissa re-expresses a mantissa field of width srcM as one of
// width dstM without rounding: it is used only for the NaN and Subnormal
// cases of the transform, where the exponent field is carried over as
// all-ones or zero rather than rebiased; any widening is an exact
// zero-extension and narrowing simply drops low bits.
func shiftMantissa(m uint64, srcM, dstM uint) uint64 {
	if dstM >= srcM {
		return m << (dstM - srcM)
	}
	return m >> (srcM - dstM)
}

// transformBits converts a bit image from a format with (srcE, srcM)
// field widths to one with (dstE, dstM) field widths. It implements the
// five-way class dispatch: Zero and Inf carry no payload and are
// reconstructed directly; NaN re-expresses its mantissa without rounding
// (quiet/signaling distinction and payload propagation rules are out of
// scope); Subnormal always stays subnormal in the destination, a plain
// mantissa-width reshape with the destination exponent field pinned to
// 0, regardless of how much headroom the destination's exponent range
// has; Normal routes through transformNormal's bias rescale.
func transformBits(srcE, srcM, dstE, dstM uint, bitsVal uint64) uint64 {
	sign, e, m := unpack(bitsVal, srcE, srcM)
	srcExpMask := uint64(1)<<srcE - 1
	dstExpMask := uint64(1)<<dstE - 1
	class := classify(e, m, srcExpMask)

	switch class {
	case ClassZero:
		return pack(sign, 0, 0, dstE, dstM)
	case ClassInf:
		return pack(sign, dstExpMask, 0, dstE, dstM)
	case ClassNaN:
		mant := shiftMantissa(m, srcM, dstM)
		if mant == 0 {
			mant = 1 // preserve "is NaN" across a narrowing that would otherwise zero the payload
		}
		return pack(sign, dstExpMask, mant, dstE, dstM)
	case ClassSubnormal:
		return pack(sign, 0, shiftMantissa(m, srcM, dstM), dstE, dstM)
	default:
		return transformNormal(sign, e, m, srcE, srcM, dstE, dstM)
	}
}

// transformNormal implements the Normal branch of the transform: rebias
// the exponent into the destination format, then dispatch on whether the
// rebiased exponent overflows the destination's representable range,
// underflows into or below its subnormal range, or falls in range (in
// which case the mantissa either widens exactly or narrows with
// away-from-zero rounding, with carry-out of that rounding able to push
// the exponent up by one and, at the top of range, all the way to
// infinity).
func transformNormal(sign, e, m uint64, srcE, srcM, dstE, dstM uint) uint64 {
	srcBias := int64(1)<<(srcE-1) - 1
	dstBias := int64(1)<<(dstE-1) - 1
	dstExpMask := uint64(1)<<dstE - 1
	dstMantMask := uint64(1)<<dstM - 1

	fullSig := m | (uint64(1) << srcM)
	u := int64(e) - srcBias
	ePrime := u + dstBias

	if ePrime >= int64(dstExpMask) {
		return pack(sign, dstExpMask, 0, dstE, dstM) // overflow to infinity
	}

	if ePrime <= 0 {
		// Underflow: the value lands in the destination's subnormal range
		// (or below it). The source significand carries srcM fractional
		// bits plus one implicit integer bit; the destination subnormal
		// field holds only dstM bits with no implicit bit, so the total
		// right-shift is the mantissa-width difference plus the additional
		// (1-ePrime) places the smaller exponent demands.
		shift := (int(srcM) - int(dstM)) + int(1-ePrime)
		if int(1-ePrime) > int(dstM)+1 {
			return pack(sign, 0, 1, dstE, dstM) // clamp: minimum subnormal magnitude, never true zero
		}
		mantDst := alignSignificand(fullSig, shift)
		if mantDst&(uint64(1)<<dstM) != 0 {
			return pack(sign, 1, 0, dstE, dstM) // rounded up into the smallest normal
		}
		return pack(sign, 0, mantDst&dstMantMask, dstE, dstM)
	}

	if dstM >= srcM {
		return pack(sign, uint64(ePrime), m<<(dstM-srcM), dstE, dstM) // exact widening
	}

	mantDst := roundShiftRight(m, srcM-dstM)
	ePrimeFinal := ePrime
	if mantDst&(uint64(1)<<dstM) != 0 {
		mantDst = 0
		ePrimeFinal++
		if ePrimeFinal >= int64(dstExpMask) {
			return pack(sign, dstExpMask, 0, dstE, dstM)
		}
	}
	return pack(sign, uint64(ePrimeFinal), mantDst&dstMantMask, dstE, dstM)
}

// Convert re-expresses x, a value of format G, as a value of format F.
// Converting between the same format is a no-op bit copy.
func Convert[F, G Format](x Float[G]) Float[F] {
	srcE, srcM := widths[G]()
	dstE, dstM := widths[F]()
	if srcE == dstE && srcM == dstM {
		return Float[F]{bits: x.bits}
	}
	return Float[F]{bits: transformBits(srcE, srcM, dstE, dstM, x.bits)}
}
