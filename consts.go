package gfloat

// PositiveZero returns +0 in format F.
func PositiveZero[F Format]() Float[F] {
	return FromParts[F](false, 0, 0)
}

// NegativeZero returns -0 in format F.
func NegativeZero[F Format]() Float[F] {
	return FromParts[F](true, 0, 0)
}

// PositiveInfinity returns +Inf in format F.
func PositiveInfinity[F Format]() Float[F] {
	expBits, _ := widths[F]()
	return FromParts[F](false, uint64(1)<<expBits-1, 0)
}

// NegativeInfinity returns -Inf in format F.
func NegativeInfinity[F Format]() Float[F] {
	expBits, _ := widths[F]()
	return FromParts[F](true, uint64(1)<<expBits-1, 0)
}

// QuietNaN returns a NaN in format F with its most significant mantissa
// bit set, the conventional "quiet" payload pattern (this package makes
// no distinction between quiet and signaling NaNs beyond this choice of
// default payload).
func QuietNaN[F Format]() Float[F] {
	expBits, mantBits := widths[F]()
	return FromParts[F](false, uint64(1)<<expBits-1, uint64(1)<<(mantBits-1))
}
