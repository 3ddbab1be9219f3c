package sbmath

import (
	"math"
	"math/bits"
)

// IPow returns x raised to the non-negative integral power y.
func IPow(x, y int32) int32 {
	r := int32(1)
	for ; y > 0; y-- {
		r *= x
	}
	return r
}

// ILog2 returns the unbiased binary exponent of f.
func ILog2(f float32) int32 {
	return int32(math.Float32bits(f)>>fltMantissaBits&(1<<fltExponentBits-1)) - fltExponentBias
}

// ILog2Int returns the integral base-2 logarithm of i.
func ILog2Int(i int32) int32 {
	return ILog2(float32(i))
}

// BitsForFloat returns the minimum number of bits required to represent
// ceil(f).
func BitsForFloat(f float32) int32 {
	return ILog2(f) + 1
}

// BitsForInteger returns the minimum number of bits required to represent i.
func BitsForInteger(i int32) int32 {
	return ILog2(float32(i)) + 1
}

// MaskForFloatSign returns 0 when the sign bit of f is clear and -1 (all
// bits set) when it is set, so -0 counts as negative.
func MaskForFloatSign(f float32) int32 {
	return int32(math.Float32bits(f)) >> fltSignBit
}

// MaskForIntegerSign returns 0 for i >= 0 and -1 for i < 0.
func MaskForIntegerSign(i int32) int32 {
	return i >> 31
}

// FloorPowerOfTwo rounds x down to the nearest power of two.
func FloorPowerOfTwo(x int32) int32 {
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x++
	return x >> 1
}

// CeilPowerOfTwo rounds x up to the nearest power of two.
func CeilPowerOfTwo(x int32) int32 {
	x--
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x++
	return x
}

func IsPowerOfTwo(x int32) bool {
	return x > 0 && x&(x-1) == 0
}

// BitCount returns the number of set bits in x.
func BitCount(x int32) int32 {
	return int32(bits.OnesCount32(uint32(x)))
}

// BitReverse returns x with its 32 bits in reverse order.
func BitReverse(x int32) int32 {
	return int32(bits.Reverse32(uint32(x)))
}

func Abs(x int32) int32 {
	y := x >> 31
	return (x ^ y) - y
}

// Ftoi truncates f toward zero.
func Ftoi(f float32) int32 {
	return int32(f)
}

// Ftoi8 truncates f and saturates the result to [-128, 127].
func Ftoi8(f float32) int8 {
	return int8(clampTrunc(f, math.MinInt8, math.MaxInt8))
}

// Ftoi16 truncates f and saturates the result to [-32768, 32767].
func Ftoi16(f float32) int16 {
	return int16(clampTrunc(f, math.MinInt16, math.MaxInt16))
}

// Ftoui16 truncates f and saturates the result to [0, 65535].
func Ftoui16(f float32) uint16 {
	return uint16(clampTrunc(f, 0, math.MaxUint16))
}

// Ftob truncates f and saturates the result to [0, 255].
func Ftob(f float32) uint8 {
	return uint8(clampTrunc(f, 0, math.MaxUint8))
}

func clampTrunc(f float32, lo, hi int32) int32 {
	switch {
	case math.IsNaN(float64(f)):
		return 0
	case f <= float32(lo):
		return lo
	case f >= float32(hi):
		return hi
	}
	return int32(f)
}

func ClampChar(i int32) int8 {
	return int8(ClampInt(math.MinInt8, math.MaxInt8, i))
}

func ClampShort(i int32) int16 {
	return int16(ClampInt(math.MinInt16, math.MaxInt16, i))
}

// ClampInt saturates value to [lo, hi].
func ClampInt(lo, hi, value int32) int32 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// ClampFloat saturates value to [lo, hi].
func ClampFloat(lo, hi, value float32) float32 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// FloatToBits packs f into a sign bit, an exponentBits wide signed exponent
// and mantissaBits of mantissa. Values outside the representable range
// saturate to the largest or smallest encodable magnitude. exponentBits must
// be in [2, 8] and mantissaBits in [2, 23].
func FloatToBits(f float32, exponentBits, mantissaBits int) int32 {
	checkFloatBits(exponentBits, mantissaBits)

	maxBits := int32((1<<(exponentBits-1)-1)<<mantissaBits | (1<<mantissaBits - 1))
	minBits := int32((1<<exponentBits-2)<<mantissaBits | 1)
	signFlag := int32(1) << (exponentBits + mantissaBits)

	hi := BitsToFloat(maxBits, exponentBits, mantissaBits)
	lo := BitsToFloat(minBits, exponentBits, mantissaBits)
	if f >= 0 {
		if f >= hi {
			return maxBits
		}
		if f <= lo {
			return minBits
		}
	} else {
		if f <= -hi {
			return maxBits | signFlag
		}
		if f >= -lo {
			return minBits | signFlag
		}
	}

	exponentBits--
	i := math.Float32bits(f)
	sign := int32(i >> fltSignBit & 1)
	exponent := int32(i>>fltMantissaBits&(1<<fltExponentBits-1)) - fltExponentBias
	mantissa := int32(i & (1<<fltMantissaBits - 1))

	expSign := int32(0)
	if exponent < 0 {
		expSign = 1
	}
	value := sign << (1 + exponentBits + mantissaBits)
	value |= (expSign<<exponentBits | Abs(exponent)&(1<<exponentBits-1)) << mantissaBits
	value |= mantissa >> (fltMantissaBits - mantissaBits)
	return value
}

// BitsToFloat decodes a value produced by FloatToBits with the same widths.
func BitsToFloat(i int32, exponentBits, mantissaBits int) float32 {
	checkFloatBits(exponentBits, mantissaBits)

	exponentBits--
	u := uint32(i)
	sign := u >> (1 + exponentBits + mantissaBits) & 1
	exponent := int32(u >> mantissaBits & (1<<exponentBits - 1))
	if u>>(exponentBits+mantissaBits)&1 != 0 {
		exponent = -exponent
	}
	mantissa := (u & (1<<mantissaBits - 1)) << (fltMantissaBits - mantissaBits)
	value := sign<<fltSignBit | uint32(exponent+fltExponentBias)<<fltMantissaBits | mantissa
	return math.Float32frombits(value)
}

func checkFloatBits(exponentBits, mantissaBits int) {
	if exponentBits < 2 || exponentBits > fltExponentBits {
		panic("sbmath: exponent bits out of range")
	}
	if mantissaBits < 2 || mantissaBits > fltMantissaBits {
		panic("sbmath: mantissa bits out of range")
	}
}

// FloatHash xors together the bit patterns of values.
func FloatHash(values []float32) int32 {
	var hash uint32
	for _, v := range values {
		hash ^= math.Float32bits(v)
	}
	return int32(hash)
}
