package gfloat

// AddSlice returns the element-wise sum of a and b. It panics if the
// slices have different lengths rather than silently truncating.
func AddSlice[F Format](a, b []Float[F]) []Float[F] {
	return zipSlice(a, b, Add[F])
}

// SubSlice returns the element-wise difference of a and b.
func SubSlice[F Format](a, b []Float[F]) []Float[F] {
	return zipSlice(a, b, Sub[F])
}

// MulSlice returns the element-wise product of a and b.
func MulSlice[F Format](a, b []Float[F]) []Float[F] {
	return zipSlice(a, b, Mul[F])
}

func zipSlice[F Format](a, b []Float[F], op func(Float[F], Float[F]) Float[F]) []Float[F] {
	if len(a) != len(b) {
		panic("gfloat: slice length mismatch")
	}
	out := make([]Float[F], len(a))
	for i := range a {
		out[i] = op(a[i], b[i])
	}
	return out
}

// SumSlice folds Add across xs, left to right, starting from positive
// zero.
func SumSlice[F Format](xs []Float[F]) Float[F] {
	acc := Zero[F]()
	for _, x := range xs {
		acc = Add(acc, x)
	}
	return acc
}

// DotProduct returns the sum of the element-wise products of a and b.
func DotProduct[F Format](a, b []Float[F]) Float[F] {
	if len(a) != len(b) {
		panic("gfloat: slice length mismatch")
	}
	acc := Zero[F]()
	for i := range a {
		acc = Add(acc, Mul(a[i], b[i]))
	}
	return acc
}

// ScaleSlice returns xs with every element multiplied by factor.
func ScaleSlice[F Format](xs []Float[F], factor Float[F]) []Float[F] {
	out := make([]Float[F], len(xs))
	for i, x := range xs {
		out[i] = Mul(x, factor)
	}
	return out
}
