package sbmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sweep calls fn on n evenly spaced samples covering [lo, hi].
func sweep(lo, hi float32, n int, fn func(x float32)) {
	step := (hi - lo) / float32(n-1)
	for i := range n {
		fn(lo + float32(i)*step)
	}
}

func TestInvSqrt(t *testing.T) {
	t.Run("zero is finite", func(t *testing.T) {
		for _, f := range []func(float32) float32{InvSqrt, InvSqrt16} {
			got := f(0)
			require.Equal(t, Infinity, got)
			require.False(t, math.IsInf(float64(got), 0))
			require.False(t, math.IsNaN(float64(got)))
		}
	})

	t.Run("negative and denormal", func(t *testing.T) {
		assert.Equal(t, Infinity, InvSqrt(-4))
		assert.Equal(t, Infinity, InvSqrt16(-4))
		assert.Equal(t, Infinity, InvSqrt16(1e-40))
	})

	t.Run("positive infinity", func(t *testing.T) {
		inf := float32(math.Inf(1))
		assert.Equal(t, InvSqrt(inf), InvSqrt16(inf))
		assert.Equal(t, float32(0), InvSqrt16(inf))
		assert.True(t, math.IsInf(float64(Sqrt16(inf)), 1))
		big := float32(math.MaxFloat32)
		assert.InEpsilon(t, float64(InvSqrt(big)), float64(InvSqrt16(big)), 1e-4)
	})

	t.Run("16 bit relative error", func(t *testing.T) {
		sweep(1e-3, 1e4, 20000, func(x float32) {
			want := 1 / math.Sqrt(float64(x))
			got := float64(InvSqrt16(x))
			require.InEpsilon(t, want, got, 1e-4, "x=%v", x)
		})
	})

	t.Run("sqrt", func(t *testing.T) {
		assert.Equal(t, float32(3), Sqrt(9))
		assert.InEpsilon(t, 3.0, Sqrt16(9), 1e-4)
		assert.Equal(t, float32(0), Sqrt16(0))
	})

	t.Run("init is idempotent", func(t *testing.T) {
		before := InvSqrt16(2)
		Init()
		Init()
		require.Equal(t, before, InvSqrt16(2))
	})
}

func TestTrig16(t *testing.T) {
	tests := []struct {
		name   string
		fast   func(float32) float32
		ref    func(float64) float64
		lo, hi float32
		bound  float64
	}{
		{"Sin16", Sin16, math.Sin, -2 * Pi, 2 * Pi, 2e-6},
		{"Cos16", Cos16, math.Cos, -2 * Pi, 2 * Pi, 2e-6},
		{"Tan16", Tan16, math.Tan, -OneFourthPi, OneFourthPi, 1e-5},
		{"ASin16", ASin16, math.Asin, -1, 1, 1e-4},
		{"ACos16", ACos16, math.Acos, -1, 1, 1e-4},
		{"ATan16", ATan16, math.Atan, -10, 10, 2e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var maxErr float64
			sweep(tt.lo, tt.hi, 10001, func(x float32) {
				err := math.Abs(float64(tt.fast(x)) - tt.ref(float64(x)))
				maxErr = math.Max(maxErr, err)
			})
			require.LessOrEqual(t, maxErr, tt.bound)
		})
	}
}

func TestInverseTrigClamps(t *testing.T) {
	for _, f := range []func(float32) float32{ASin, ASin16, ACos, ACos16} {
		assert.False(t, math.IsNaN(float64(f(1.0001))))
		assert.False(t, math.IsNaN(float64(f(-1.0001))))
	}
	assert.Equal(t, HalfPi, ASin(2))
	assert.Equal(t, -HalfPi, ASin16(-2))
	assert.Equal(t, Pi, ACos(-2))
	assert.Equal(t, float32(0), ACos16(2))
}

func TestATan216(t *testing.T) {
	assert.InDelta(t, math.Atan2(1, 2), ATan216(1, 2), 2e-6)
	assert.InDelta(t, math.Atan2(3, 1), ATan216(3, 1), 2e-6)
	assert.InDelta(t, math.Atan2(-3, 1), ATan216(-3, 1), 2e-6)
}

func TestExpLog16(t *testing.T) {
	t.Run("Exp16", func(t *testing.T) {
		sweep(-10, 10, 4001, func(x float32) {
			require.InEpsilon(t, math.Exp(float64(x)), Exp16(x), 1e-4, "x=%v", x)
		})
	})

	t.Run("Exp16 saturates", func(t *testing.T) {
		assert.Equal(t, float32(0), Exp16(-200))
		assert.Equal(t, Infinity, Exp16(200))
	})

	t.Run("Log16", func(t *testing.T) {
		sweep(1e-3, 1e3, 4001, func(x float32) {
			require.InDelta(t, math.Log(float64(x)), Log16(x), 2e-4, "x=%v", x)
		})
		assert.Equal(t, -Infinity, Log16(0))
	})

	t.Run("Pow16", func(t *testing.T) {
		assert.InEpsilon(t, 8.0, Pow16(2, 3), 1e-3)
		assert.InEpsilon(t, math.Pow(3, 0.5), Pow16(3, 0.5), 1e-3)
	})
}

func TestRounding(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))

	assert.Equal(t, float32(2), Fabs(-2))
	assert.Equal(t, uint32(0), math.Float32bits(Fabs(negZero)))
	assert.Equal(t, float32(-2), Floor(-1.5))
	assert.Equal(t, float32(-1), Ceil(-1.5))
	assert.Equal(t, float32(3), Rint(2.5))
	assert.InDelta(t, 0.25, Frac(-1.75), 1e-7)
	assert.Equal(t, 3, Min(3, 4))
	assert.Equal(t, float32(4), Max[float32](3, 4))
}

func TestLerpToWithScale(t *testing.T) {
	assert.Equal(t, float32(5), LerpToWithScale(0, 10, 0.5))
	assert.Equal(t, float32(10), LerpToWithScale(9, 10, 2))
	assert.Equal(t, float32(10), LerpToWithScale(10, 10, 0.5))
}

func TestDegreesRadians(t *testing.T) {
	assert.InDelta(t, math.Pi, Deg2Rad(180), 1e-6)
	assert.InDelta(t, 90, Rad2Deg(HalfPi), 1e-4)
}
