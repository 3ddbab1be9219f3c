// Package sbmath provides the single-precision math core of the SugarBomb
// engine: scalar routines in a 32-bit and a faster 16-bit precision tier,
// vectors, Euler angles, quaternions and 3x3/4x4 matrices.
//
// All types are small values. Methods that end in Self mutate their
// receiver; everything else returns a new value.
package sbmath

import (
	"math"
	"sync"
)

const (
	Pi           float32 = math.Pi
	TwoPi        float32 = 2 * math.Pi
	HalfPi       float32 = 0.5 * math.Pi
	OneFourthPi  float32 = 0.25 * math.Pi
	OneOverPi    float32 = 1 / math.Pi
	OneOverTwoPi float32 = 1 / (2 * math.Pi)
	E            float32 = math.E
	SqrtTwo      float32 = math.Sqrt2
	SqrtThree    float32 = 1.73205080756887729352
	Sqrt1Over2   float32 = 0.70710678118654752440
	Sqrt1Over3   float32 = 0.57735026918962576450
	Deg2RadScale float32 = math.Pi / 180
	Rad2DegScale float32 = 180 / math.Pi
	Sec2Ms       float32 = 1000
	Ms2Sec       float32 = 0.001

	// Infinity is larger than any valid number the engine uses. It is
	// finite on purpose so that it survives further arithmetic.
	Infinity float32 = 1e30

	// FltEpsilon is the smallest positive number such that 1+FltEpsilon != 1.
	FltEpsilon float32 = 1.192092896e-07

	// FltSmallestNonDenormal is the smallest normal float32.
	FltSmallestNonDenormal float32 = 1.1754943508222875e-38

	// MatrixEpsilon is the default tolerance of the matrix predicates.
	MatrixEpsilon float32 = 1e-6

	// MatrixInverseEpsilon is the determinant magnitude below which a
	// matrix is treated as singular.
	MatrixInverseEpsilon = 1e-14
)

// IEEE-754 single precision layout.
const (
	fltMantissaBits = 23
	fltExponentBits = 8
	fltExponentBias = 127
	fltSignBit      = 31
)

// Seed table layout for InvSqrt16.
const (
	lookupBits    = 8
	expPos        = 23
	expBias       = 127
	lookupPos     = expPos - lookupBits
	seedPos       = expPos - 8
	sqrtTableSize = 2 << lookupBits
	lookupMask    = sqrtTableSize - 1
)

var (
	iSqrt    [sqrtTableSize]uint32
	initOnce sync.Once
)

// Init builds the inverse square root seed table used by InvSqrt16 and
// Sqrt16. It is safe to call more than once and from several goroutines;
// the fast routines call it themselves on first use.
func Init() {
	initOnce.Do(buildSqrtTable)
}

func buildSqrtTable() {
	for i := range uint32(sqrtTableSize) {
		fi := math.Float32frombits((expBias-1)<<expPos | i<<lookupPos)
		fo := math.Float32bits(float32(1 / math.Sqrt(float64(fi))))
		iSqrt[i] = ((fo + 1<<(seedPos-2)) >> seedPos & 0xFF) << seedPos
	}
	iSqrt[sqrtTableSize/2] = 0xFF << seedPos
}

// InvSqrt returns 1/sqrt(x) with 32 bits of precision. It returns Infinity
// for zero, negative and denormal inputs.
func InvSqrt(x float32) float32 {
	if x > FltSmallestNonDenormal {
		return float32(1 / math.Sqrt(float64(x)))
	}
	return Infinity
}

// InvSqrt16 returns 1/sqrt(x) with roughly 16 bits of precision using a
// table seed and a single Newton-Raphson step. It returns Infinity for zero,
// negative and denormal inputs, and 0 for +Inf.
func InvSqrt16(x float32) float32 {
	if x <= FltSmallestNonDenormal {
		return Infinity
	}
	if math.IsInf(float64(x), 1) {
		return 0
	}
	Init()
	a := math.Float32bits(x)
	y := float64(x * 0.5)
	seed := ((3*expBias-1)-(a>>expPos&0xFF))>>1<<expPos | iSqrt[a>>(expPos-lookupBits)&lookupMask]
	r := float64(math.Float32frombits(seed))
	r *= 1.5 - r*r*y
	return float32(r)
}

// Sqrt returns the square root of x with 32 bits of precision.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Sqrt16 returns the square root of x with roughly 16 bits of precision.
func Sqrt16(x float32) float32 {
	if x <= FltSmallestNonDenormal {
		return 0
	}
	if math.IsInf(float64(x), 1) {
		return x
	}
	return x * InvSqrt16(x)
}

func Sin(a float32) float32 { return float32(math.Sin(float64(a))) }
func Cos(a float32) float32 { return float32(math.Cos(float64(a))) }
func Tan(a float32) float32 { return float32(math.Tan(float64(a))) }

// SinCos returns sin(a) and cos(a).
func SinCos(a float32) (s, c float32) {
	s64, c64 := math.Sincos(float64(a))
	return float32(s64), float32(c64)
}

// Sin16 returns sin(a) using a polynomial over [-pi/2, pi/2]. The polynomial
// itself has a maximum absolute error of 2.3082e-09.
func Sin16(a float32) float32 {
	if a < 0 || a >= TwoPi {
		a -= Floor(a/TwoPi) * TwoPi
	}
	if a < Pi {
		if a > HalfPi {
			a = Pi - a
		}
	} else {
		if a > Pi+HalfPi {
			a -= TwoPi
		} else {
			a = Pi - a
		}
	}
	s := a * a
	return a * (((((-2.39e-08*s+2.7526e-06)*s-1.98409e-04)*s+8.3333315e-03)*s-1.666666664e-01)*s + 1)
}

// Cos16 returns cos(a) using a polynomial over [-pi/2, pi/2]. The polynomial
// itself has a maximum absolute error of 2.3082e-09.
func Cos16(a float32) float32 {
	if a < 0 || a >= TwoPi {
		a -= Floor(a/TwoPi) * TwoPi
	}
	var d float32
	if a < Pi {
		if a > HalfPi {
			a = Pi - a
			d = -1
		} else {
			d = 1
		}
	} else {
		if a > Pi+HalfPi {
			a -= TwoPi
			d = 1
		} else {
			a = Pi - a
			d = -1
		}
	}
	s := a * a
	return d * (((((-2.605e-07*s+2.47609e-05)*s-1.3888397e-03)*s+4.16666418e-02)*s-4.999999963e-01)*s + 1)
}

// SinCos16 returns Sin16(a) and Cos16(a).
func SinCos16(a float32) (s, c float32) {
	return Sin16(a), Cos16(a)
}

// Tan16 returns tan(a) using a polynomial over [-pi/4, pi/4]. The polynomial
// itself has a maximum absolute error of 1.8897e-08.
func Tan16(a float32) float32 {
	if a < 0 || a >= Pi {
		a -= Floor(a/Pi) * Pi
	}
	reciprocal := false
	if a < HalfPi {
		if a > OneFourthPi {
			a = HalfPi - a
			reciprocal = true
		}
	} else {
		if a > HalfPi+OneFourthPi {
			a -= Pi
		} else {
			a = HalfPi - a
			reciprocal = true
		}
	}
	s := a * a
	s = a * ((((((9.5168091e-03*s+2.900525e-03)*s+2.45650893e-02)*s+5.33740603e-02)*s+1.333923995e-01)*s+3.333314036e-01)*s + 1)
	if reciprocal {
		return 1 / s
	}
	return s
}

// ASin returns asin(a). The input is clamped to [-1, 1] so rounding noise
// never produces NaN.
func ASin(a float32) float32 {
	if a <= -1 {
		return -HalfPi
	}
	if a >= 1 {
		return HalfPi
	}
	return float32(math.Asin(float64(a)))
}

// ASin16 returns asin(a) with a maximum absolute error of 6.7626e-05. The
// input is clamped to [-1, 1].
func ASin16(a float32) float32 {
	if a < 0 {
		if a <= -1 {
			return -HalfPi
		}
		a = -a
		return (((-0.0187293*a+0.0742610)*a-0.2121144)*a+1.5707288)*Sqrt(1-a) - HalfPi
	}
	if a >= 1 {
		return HalfPi
	}
	return HalfPi - (((-0.0187293*a+0.0742610)*a-0.2121144)*a+1.5707288)*Sqrt(1-a)
}

// ACos returns acos(a). The input is clamped to [-1, 1] so rounding noise
// never produces NaN.
func ACos(a float32) float32 {
	if a <= -1 {
		return Pi
	}
	if a >= 1 {
		return 0
	}
	return float32(math.Acos(float64(a)))
}

// ACos16 returns acos(a) with a maximum absolute error of 6.7626e-05. The
// input is clamped to [-1, 1].
func ACos16(a float32) float32 {
	if a < 0 {
		if a <= -1 {
			return Pi
		}
		a = -a
		return Pi - (((-0.0187293*a+0.0742610)*a-0.2121144)*a+1.5707288)*Sqrt(1-a)
	}
	if a >= 1 {
		return 0
	}
	return (((-0.0187293*a+0.0742610)*a-0.2121144)*a + 1.5707288) * Sqrt(1-a)
}

func ATan(a float32) float32 { return float32(math.Atan(float64(a))) }

// ATan2 returns the arc tangent of y/x using the signs of both to pick the
// quadrant.
func ATan2(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }

// atanPoly evaluates the arc tangent polynomial for |a| <= 1.
func atanPoly(a float32) float32 {
	s := a * a
	return (((((((((0.0028662257*s-0.0161657367)*s+0.0429096138)*s-0.0752896400)*s+0.1065626393)*s-0.1420889944)*s+0.1999355085)*s-0.3333314528)*s)+1) * a
}

// ATan16 returns atan(a) with a maximum absolute error of 1.3593e-08.
func ATan16(a float32) float32 {
	if Fabs(a) > 1 {
		a = 1 / a
		s := -atanPoly(a)
		if MaskForFloatSign(a) != 0 {
			return s - HalfPi
		}
		return s + HalfPi
	}
	return atanPoly(a)
}

// ATan216 returns atan(y/x) with a maximum absolute error of 1.3593e-08.
// Unlike ATan2 the result stays in [-pi/2, pi/2]; the quadrant is not
// recovered.
func ATan216(y, x float32) float32 {
	if Fabs(y) > Fabs(x) {
		a := x / y
		s := -atanPoly(a)
		if MaskForFloatSign(a) != 0 {
			return s - HalfPi
		}
		return s + HalfPi
	}
	return atanPoly(y / x)
}

func Pow(x, y float32) float32 { return float32(math.Pow(float64(x), float64(y))) }
func Exp(f float32) float32    { return float32(math.Exp(float64(f))) }
func Log(f float32) float32    { return float32(math.Log(float64(f))) }

// Pow16 returns x raised to the power y with roughly 16 bits of precision.
func Pow16(x, y float32) float32 {
	return Exp16(y * Log16(x))
}

// Exp16 returns e raised to the power f with roughly 16 bits of precision.
// Results that do not fit a normal float32 saturate to 0 or Infinity.
func Exp16(f float32) float32 {
	x := f * 1.44269504088896340 // 1 / ln(2)
	if x < -(fltExponentBias - 1) {
		return 0
	}
	if x >= fltExponentBias {
		return Infinity
	}
	i := int32(math.Floor(float64(x)))
	y := math.Float32frombits(uint32(i+fltExponentBias) << fltMantissaBits)
	x -= float32(i)
	if x >= 0.5 {
		x -= 0.5
		y *= SqrtTwo
	}
	x2 := x * x
	p := x * (7.2152891511493 + x2*0.0576900723731)
	q := 20.8189237930062 + x2
	return y * (q + p) / (q - p)
}

// Log16 returns the natural logarithm of f with roughly 16 bits of
// precision. Non-positive inputs return -Infinity.
func Log16(f float32) float32 {
	if f <= 0 {
		return -Infinity
	}
	i := math.Float32bits(f)
	exponent := int32(i>>fltMantissaBits&(1<<fltExponentBits-1)) - fltExponentBias
	i -= uint32(exponent+1) << fltMantissaBits // mantissa in [0.5, 1)
	y := math.Float32frombits(i) * SqrtTwo
	y = (y - 1) / (y + 1)
	y2 := y * y
	y *= 2.000000000046727 + y2*(0.666666635059382+y2*(0.4000059794795+y2*(0.28525381498+y2*0.2376245609)))
	y += 0.693147180559945 * (float32(exponent) + 0.5)
	return y
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(a float32) float32 { return a * Deg2RadScale }

// Rad2Deg converts radians to degrees.
func Rad2Deg(a float32) float32 { return a * Rad2DegScale }

func Fabs(f float32) float32 {
	return math.Float32frombits(math.Float32bits(f) &^ (1 << fltSignBit))
}

func Floor(f float32) float32 { return float32(math.Floor(float64(f))) }
func Ceil(f float32) float32  { return float32(math.Ceil(float64(f))) }

// Rint rounds to the nearest integer, halves away from negative infinity.
func Rint(f float32) float32 { return Floor(f + 0.5) }

// Frac returns f - Floor(f).
func Frac(f float32) float32 { return f - Floor(f) }

// Min returns the smaller of a and b.
func Min[T ~int | ~int32 | ~float32 | ~float64](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T ~int | ~int32 | ~float32 | ~float64](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// LerpToWithScale moves cur toward dest by scale times the remaining
// distance, never stepping past dest.
func LerpToWithScale(cur, dest, scale float32) float32 {
	if dest == cur {
		return dest
	}
	delta := dest - cur
	step := delta * scale
	if Fabs(step) >= Fabs(delta) {
		return dest
	}
	return cur + step
}
