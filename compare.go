package gfloat

// Ordering is the result of a successful Compare.
type Ordering int

const (
	OrderLess    Ordering = -1
	OrderEqual   Ordering = 0
	OrderGreater Ordering = 1
)

// Compare returns the total order of x and y: -0 and +0 compare equal,
// and otherwise values order by sign, then by magnitude (exponent, then
// significand). If either operand is NaN, Compare returns ErrNotOrdered
// instead of a silently wrong answer.
func Compare[F Format](x, y Float[F]) (Ordering, error) {
	if x.IsNaN() || y.IsNaN() {
		return OrderEqual, ErrNotOrdered
	}
	if x.IsZero() && y.IsZero() {
		return OrderEqual, nil
	}

	sx, sy := x.Signbit(), y.Signbit()
	if sx != sy {
		if sx {
			return OrderLess, nil
		}
		return OrderGreater, nil
	}

	dx, dy := x.decode(), y.decode()
	var order Ordering
	switch {
	case magnitudeLess(dx, dy):
		order = OrderLess
	case magnitudeLess(dy, dx):
		order = OrderGreater
	default:
		order = OrderEqual
	}
	if sx {
		order = -order
	}
	return order, nil
}

// Equal reports whether x and y compare equal. A NaN operand makes it
// report false, the same relationship IEEE-754 NaN comparisons have.
func Equal[F Format](x, y Float[F]) bool {
	order, err := Compare(x, y)
	return err == nil && order == OrderEqual
}

// Less reports whether x orders strictly before y.
func Less[F Format](x, y Float[F]) bool {
	order, err := Compare(x, y)
	return err == nil && order == OrderLess
}

// Greater reports whether x orders strictly after y.
func Greater[F Format](x, y Float[F]) bool {
	order, err := Compare(x, y)
	return err == nil && order == OrderGreater
}

// LessEqual reports whether x orders before or equal to y.
func LessEqual[F Format](x, y Float[F]) bool {
	order, err := Compare(x, y)
	return err == nil && order != OrderGreater
}

// GreaterEqual reports whether x orders after or equal to y.
func GreaterEqual[F Format](x, y Float[F]) bool {
	order, err := Compare(x, y)
	return err == nil && order != OrderLess
}

// Min returns whichever of x, y orders first. Callers that need to
// distinguish a NaN operand from a genuine ordering should use Compare
// directly instead.
func Min[F Format](x, y Float[F]) Float[F] {
	if Less(y, x) {
		return y
	}
	return x
}

// Max returns whichever of x, y orders last.
func Max[F Format](x, y Float[F]) Float[F] {
	if Greater(y, x) {
		return y
	}
	return x
}
