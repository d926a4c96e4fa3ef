package gfloat

import "testing"

func TestAddEndToEndScenario(t *testing.T) {
	one := FromFloat64[Double](1.0)
	two := FromFloat64[Double](2.0)
	want := FromFloat64[Double](3.0)

	got := Add(one, two)
	if got.Bits() != want.Bits() {
		t.Fatalf("1.0+2.0 = 0x%016x, want 0x%016x", got.Bits(), want.Bits())
	}
	if got.Bits() != 0x4008000000000000 {
		t.Fatalf("1.0+2.0 bits = 0x%016x, want 0x4008000000000000", got.Bits())
	}
}

func TestFromIntMatchesFromFloat64(t *testing.T) {
	a := FromInt[Double](2)
	b := FromFloat64[Double](2.0)
	if a.Bits() != b.Bits() || a.Bits() != 0x4000000000000000 {
		t.Fatalf("FromInt(2) = 0x%016x, FromFloat64(2.0) = 0x%016x, want 0x4000000000000000", a.Bits(), b.Bits())
	}
}

func TestMulEndToEndScenario(t *testing.T) {
	three := FromFloat64[Double](3.0)
	one := FromFloat64[Double](1.0)
	got := Mul(three, one)
	if got.Bits() != three.Bits() {
		t.Fatalf("3.0*1.0 = 0x%016x, want 0x%016x", got.Bits(), three.Bits())
	}
}

func TestAddCommutative(t *testing.T) {
	xs := []float64{1.5, -2.25, 0.1, 100, -0.0009765625}
	ys := []float64{3.0, 7.75, -0.1, -50, 123456.5}
	for i := range xs {
		x := FromFloat64[Double](xs[i])
		y := FromFloat64[Double](ys[i])
		if Add(x, y).Bits() != Add(y, x).Bits() {
			t.Errorf("Add not commutative for (%v, %v)", xs[i], ys[i])
		}
	}
}

func TestAddIdentity(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 2.5, 1e10, 1e-10} {
		x := FromFloat64[Single](v)
		sum := Add(x, PositiveZero[Single]())
		if sum.Bits() != x.Bits() {
			t.Errorf("%v + 0 changed bits: 0x%08x -> 0x%08x", v, x.Bits(), sum.Bits())
		}
	}
}

func TestMulByOneIsIdentity(t *testing.T) {
	one := FromFloat64[Single](1.0)
	for _, v := range []float64{0, 1, -1, 2.5, 1e10, 1e-10} {
		x := FromFloat64[Single](v)
		got := Mul(x, one)
		if got.Bits() != x.Bits() {
			t.Errorf("%v * 1 changed bits: 0x%08x -> 0x%08x", v, x.Bits(), got.Bits())
		}
	}
}

func TestAddNaNPropagates(t *testing.T) {
	nan := QuietNaN[Single]()
	one := FromFloat64[Single](1.0)
	if !Add(nan, one).IsNaN() {
		t.Error("NaN + 1 should be NaN")
	}
	if !Add(one, nan).IsNaN() {
		t.Error("1 + NaN should be NaN")
	}
}

func TestMulNaNPropagates(t *testing.T) {
	nan := QuietNaN[Single]()
	one := FromFloat64[Single](1.0)
	if !Mul(nan, one).IsNaN() {
		t.Error("NaN * 1 should be NaN")
	}
}

func TestAddOppositeInfinitiesYieldZero(t *testing.T) {
	posInf := PositiveInfinity[Single]()
	negInf := NegativeInfinity[Single]()
	got := Add(posInf, negInf)
	if !got.IsZero() {
		t.Fatalf("+Inf + -Inf = %v, want a signed zero (reference behavior)", got)
	}
}

func TestAddSameSignedInfinities(t *testing.T) {
	posInf := PositiveInfinity[Single]()
	got := Add(posInf, posInf)
	if !got.IsInf() || got.Signbit() {
		t.Fatalf("+Inf + +Inf = %v, want +Inf", got)
	}
}

func TestMulZeroTimesInfinityYieldsInfinity(t *testing.T) {
	zero := PositiveZero[Single]()
	posInf := PositiveInfinity[Single]()
	got := Mul(zero, posInf)
	if !got.IsInf() || got.Signbit() {
		t.Fatalf("0 * +Inf = %v, want +Inf (reference behavior, not NaN)", got)
	}

	negZero := NegativeZero[Single]()
	got2 := Mul(negZero, posInf)
	if !got2.IsInf() || !got2.Signbit() {
		t.Fatalf("-0 * +Inf = %v, want -Inf", got2)
	}
}

func TestMulUnderflowFlushesToZero(t *testing.T) {
	tiny := FromBits[Half](pack(0, 0, 1, 5, 10)) // smallest subnormal
	got := Mul(tiny, tiny)
	if !got.IsZero() {
		t.Fatalf("tiny*tiny = %v, want zero (product underflow flushes, no subnormal)", got)
	}
}

func TestSubIsAddOfNegation(t *testing.T) {
	x := FromFloat64[Single](5.0)
	y := FromFloat64[Single](3.0)
	if Sub(x, y).Bits() != Add(x, y.Neg()).Bits() {
		t.Error("Sub(x, y) != Add(x, -y)")
	}
	got := Sub(x, y)
	want := FromFloat64[Single](2.0)
	if got.Bits() != want.Bits() {
		t.Errorf("5.0 - 3.0 = 0x%08x, want 0x%08x", got.Bits(), want.Bits())
	}
}

func TestAddPreservesClassOfSubnormalOperands(t *testing.T) {
	a := FromBits[Half](pack(0, 0, 3, 5, 10))
	b := FromBits[Half](pack(0, 0, 5, 5, 10))
	got := Add(a, b)
	if got.Class() != ClassSubnormal {
		t.Errorf("subnormal + subnormal with small sum should stay subnormal, got %v", got.Class())
	}
	_, _, m := unpack(got.Bits(), 5, 10)
	if m != 8 {
		t.Errorf("mantissa = %d, want 8", m)
	}
}

func TestAddSubnormalCarriesIntoNormalRange(t *testing.T) {
	a := FromBits[Half](pack(0, 0, 1023, 5, 10))
	b := FromBits[Half](pack(0, 0, 1, 5, 10))
	got := Add(a, b)
	if got.Class() != ClassNormal {
		t.Errorf("sum of subnormals at the top of the range should carry into Normal, got %v", got.Class())
	}
}
